package workers

import (
	"context"
	"time"

	"pawmatch_backend/internal/logger"
	"pawmatch_backend/internal/repositories"
)

// BookingWorker runs the periodic booking housekeeping: active bookings whose
// end time has passed are marked completed, and expired refresh tokens are
// purged.
type BookingWorker struct {
	bookingRepo repositories.BookingRepository
	userRepo    repositories.UserRepository
}

func NewBookingWorker(bookingRepo repositories.BookingRepository, userRepo repositories.UserRepository) *BookingWorker {
	return &BookingWorker{
		bookingRepo: bookingRepo,
		userRepo:    userRepo,
	}
}

func (w *BookingWorker) Start(ctx context.Context) {
	go w.completeOverdueBookings(ctx)
	go w.cleanExpiredTokens(ctx)
}

func (w *BookingWorker) completeOverdueBookings(ctx context.Context) {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("Booking worker stopped")
			return
		case <-ticker.C:
			count, err := w.bookingRepo.CompleteOverdue(time.Now())
			if err != nil {
				logger.WorkerLog("booking", "complete_overdue", err)
				continue
			}
			if count > 0 {
				logger.Info("Auto-completed overdue bookings", "count", count)
			}
		}
	}
}

func (w *BookingWorker) cleanExpiredTokens(ctx context.Context) {
	ticker := time.NewTicker(1 * time.Hour)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := w.userRepo.CleanExpiredRefreshTokens(); err != nil {
				logger.WorkerLog("booking", "clean_expired_tokens", err)
			}
		}
	}
}
