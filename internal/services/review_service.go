package services

import (
	"pawmatch_backend/internal/models"
	"pawmatch_backend/internal/repositories"
	"pawmatch_backend/internal/services/dto"
	"pawmatch_backend/pkg/apperrors"
)

type ReviewService interface {
	Create(ownerID, bookingID string, req *dto.CreateReviewRequest) (*dto.ReviewResponse, error)
	GetByBooking(bookingID string) (*dto.ReviewResponse, error)
	ListForCaregiver(caregiverID string, page, pageSize int) (*dto.ReviewListResponse, error)
	Delete(callerID string, callerRole models.UserRole, reviewID string) error
}

type ReviewServiceImpl struct {
	reviewRepo  repositories.ReviewRepository
	bookingRepo repositories.BookingRepository
}

func NewReviewService(
	reviewRepo repositories.ReviewRepository,
	bookingRepo repositories.BookingRepository,
) ReviewService {
	return &ReviewServiceImpl{
		reviewRepo:  reviewRepo,
		bookingRepo: bookingRepo,
	}
}

// Create accepts a review only from the booking's owner, only after the
// booking completed, and only once per booking. The caregiver's aggregate
// rating is recomputed in the same transaction as the insert.
func (s *ReviewServiceImpl) Create(ownerID, bookingID string, req *dto.CreateReviewRequest) (*dto.ReviewResponse, error) {
	booking, err := s.bookingRepo.FindByID(bookingID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrBookingNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	if booking.OwnerID != ownerID {
		return nil, apperrors.ErrInsufficientPermissions
	}
	if booking.Status != models.BookingStatusCompleted {
		return nil, apperrors.ErrBookingNotCompleted
	}

	review := &models.Review{
		BookingID:   booking.ID,
		CaregiverID: booking.CaregiverID,
		OwnerID:     ownerID,
		Rating:      req.Rating,
		Comment:     req.Comment,
	}

	if err := s.reviewRepo.CreateWithAggregates(review); err != nil {
		if apperrors.Is(err, repositories.ErrReviewAlreadyExists) {
			return nil, apperrors.ErrBookingAlreadyReviewed
		}
		return nil, apperrors.InternalError(err)
	}

	created, err := s.reviewRepo.FindByID(review.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return toReviewResponse(created), nil
}

func (s *ReviewServiceImpl) GetByBooking(bookingID string) (*dto.ReviewResponse, error) {
	review, err := s.reviewRepo.FindByBooking(bookingID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrReviewNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	return toReviewResponse(review), nil
}

func (s *ReviewServiceImpl) ListForCaregiver(caregiverID string, page, pageSize int) (*dto.ReviewListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	reviews, total, err := s.reviewRepo.FindByCaregiver(caregiverID, page, pageSize)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	totalPages := int((total + int64(pageSize) - 1) / int64(pageSize))

	resp := &dto.ReviewListResponse{
		Reviews:    make([]*dto.ReviewResponse, 0, len(reviews)),
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}
	for i := range reviews {
		resp.Reviews = append(resp.Reviews, toReviewResponse(&reviews[i]))
	}
	return resp, nil
}

// Delete removes a review; the author or an admin may do it. Aggregates are
// recomputed transactionally with the delete.
func (s *ReviewServiceImpl) Delete(callerID string, callerRole models.UserRole, reviewID string) error {
	review, err := s.reviewRepo.FindByID(reviewID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrReviewNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}

	if review.OwnerID != callerID && callerRole != models.UserRoleAdmin {
		return apperrors.ErrInsufficientPermissions
	}

	if err := s.reviewRepo.DeleteWithAggregates(review); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func toReviewResponse(r *models.Review) *dto.ReviewResponse {
	resp := &dto.ReviewResponse{
		ID:          r.ID,
		BookingID:   r.BookingID,
		CaregiverID: r.CaregiverID,
		OwnerID:     r.OwnerID,
		Rating:      r.Rating,
		Comment:     r.Comment,
		CreatedAt:   r.CreatedAt,
	}
	if r.Owner.ID != "" {
		resp.OwnerName = r.Owner.Name
	}
	return resp
}
