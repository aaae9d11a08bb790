package services

import (
	"fmt"
	"time"

	"pawmatch_backend/internal/email"
	"pawmatch_backend/internal/logger"
	"pawmatch_backend/internal/models"
	"pawmatch_backend/internal/repositories"
	"pawmatch_backend/internal/services/dto"
	"pawmatch_backend/pkg/apperrors"
)

type BookingService interface {
	Create(ownerID string, req *dto.CreateBookingRequest) (*dto.BookingResponse, error)
	GetByID(callerID string, callerRole models.UserRole, bookingID string) (*dto.BookingResponse, error)
	ListForOwner(ownerID string) (*dto.BookingListResponse, error)
	ListForCaregiver(userID string) (*dto.BookingListResponse, error)
	UpdateStatus(callerID string, callerRole models.UserRole, bookingID string, req *dto.UpdateBookingStatusRequest) (*dto.BookingResponse, error)
}

type BookingServiceImpl struct {
	bookingRepo   repositories.BookingRepository
	petRepo       repositories.PetRepository
	caregiverRepo repositories.CaregiverRepository
	serviceRepo   repositories.ServiceRepository
	mailer        email.Provider
}

func NewBookingService(
	bookingRepo repositories.BookingRepository,
	petRepo repositories.PetRepository,
	caregiverRepo repositories.CaregiverRepository,
	serviceRepo repositories.ServiceRepository,
	mailer email.Provider,
) BookingService {
	return &BookingServiceImpl{
		bookingRepo:   bookingRepo,
		petRepo:       petRepo,
		caregiverRepo: caregiverRepo,
		serviceRepo:   serviceRepo,
		mailer:        mailer,
	}
}

// Create validates the booking request end to end: time range, pet ownership,
// caregiver verification, published rate, service duration limits and overlap
// with the caregiver's existing bookings. The total price is always computed
// server-side from the caregiver's rate.
func (s *BookingServiceImpl) Create(ownerID string, req *dto.CreateBookingRequest) (*dto.BookingResponse, error) {
	if !req.StartTime.Before(req.EndTime) {
		return nil, apperrors.ErrBookingTimeRange
	}
	if req.StartTime.Before(time.Now()) {
		return nil, apperrors.ErrInvalidOperation("booking", "Booking start time must be in the future")
	}

	pet, err := s.petRepo.FindByID(req.PetID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrPetNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	if pet.OwnerID != ownerID {
		return nil, apperrors.ErrInsufficientPermissions
	}
	if !pet.IsActive {
		return nil, apperrors.ErrInvalidOperation("booking", "Pet is deactivated and cannot be booked")
	}

	caregiver, err := s.caregiverRepo.FindByID(req.CaregiverID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrCaregiverNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	if !caregiver.IsVerified {
		return nil, apperrors.ErrCaregiverNotVerified
	}
	if caregiver.UserID == ownerID {
		return nil, apperrors.ErrInvalidOperation("booking", "You cannot book your own services")
	}

	service, err := s.serviceRepo.FindByID(req.ServiceID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrServiceNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	durationMinutes := int(req.EndTime.Sub(req.StartTime).Minutes())
	if durationMinutes < service.MinDurationMinutes {
		return nil, apperrors.ErrInvalidOperation("booking",
			fmt.Sprintf("Booking duration is below the minimum of %d minutes", service.MinDurationMinutes))
	}
	if durationMinutes > service.MaxDurationMinutes {
		return nil, apperrors.ErrInvalidOperation("booking",
			fmt.Sprintf("Booking duration exceeds the maximum of %d minutes", service.MaxDurationMinutes))
	}

	rate, err := s.caregiverRepo.FindRate(caregiver.ID, service.ID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrRateNotFound) {
			return nil, apperrors.ErrNoRateForService
		}
		return nil, apperrors.InternalError(err)
	}

	overlapping, err := s.bookingRepo.CountOverlapping(caregiver.ID, req.StartTime, req.EndTime)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if overlapping > 0 {
		return nil, apperrors.ErrBookingOverlap
	}

	booking := &models.Booking{
		OwnerID:      ownerID,
		CaregiverID:  caregiver.ID,
		PetID:        pet.ID,
		ServiceID:    service.ID,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		Status:       models.BookingStatusScheduled,
		TotalPrice:   models.CalculateTotalPrice(req.StartTime, req.EndTime, rate.BasePrice),
		Instructions: req.Instructions,
	}

	if err := s.bookingRepo.Create(booking); err != nil {
		return nil, apperrors.InternalError(err)
	}

	created, err := s.bookingRepo.FindByID(booking.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	s.notifyBookingCreated(created)

	return toBookingResponse(created), nil
}

func (s *BookingServiceImpl) GetByID(callerID string, callerRole models.UserRole, bookingID string) (*dto.BookingResponse, error) {
	booking, err := s.findAuthorized(callerID, callerRole, bookingID)
	if err != nil {
		return nil, err
	}
	return toBookingResponse(booking), nil
}

func (s *BookingServiceImpl) ListForOwner(ownerID string) (*dto.BookingListResponse, error) {
	bookings, err := s.bookingRepo.FindByOwner(ownerID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return toBookingListResponse(bookings), nil
}

// ListForCaregiver resolves the caller's caregiver profile first, so a user
// can never list another caregiver's bookings by guessing IDs.
func (s *BookingServiceImpl) ListForCaregiver(userID string) (*dto.BookingListResponse, error) {
	profile, err := s.caregiverRepo.FindByUserID(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrCaregiverNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	bookings, err := s.bookingRepo.FindByCaregiver(profile.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return toBookingListResponse(bookings), nil
}

// UpdateStatus drives the booking state machine. The transition must be legal
// (scheduled -> active|cancelled, active -> completed|cancelled) and the
// caller must hold the right side of the booking: owners may only cancel,
// caregivers may accept, complete or cancel, admins may do anything.
func (s *BookingServiceImpl) UpdateStatus(callerID string, callerRole models.UserRole, bookingID string, req *dto.UpdateBookingStatusRequest) (*dto.BookingResponse, error) {
	booking, err := s.findAuthorized(callerID, callerRole, bookingID)
	if err != nil {
		return nil, err
	}

	next := req.Status
	if !booking.Status.CanTransitionTo(next) {
		return nil, apperrors.ErrInvalidTransition
	}

	if callerRole != models.UserRoleAdmin {
		isOwner := booking.OwnerID == callerID
		if isOwner && next != models.BookingStatusCancelled {
			return nil, apperrors.ErrInsufficientPermissions
		}
	}

	if err := s.bookingRepo.UpdateStatus(booking.ID, booking.Status, next); err != nil {
		if apperrors.Is(err, repositories.ErrBookingNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		if apperrors.Is(err, repositories.ErrBookingStatusStale) {
			return nil, apperrors.ErrInvalidTransition
		}
		return nil, apperrors.InternalError(err)
	}

	updated, err := s.bookingRepo.FindByID(booking.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	s.notifyStatusChanged(updated)

	return toBookingResponse(updated), nil
}

// findAuthorized loads a booking and checks the caller is the owner, the
// caregiver or an admin.
func (s *BookingServiceImpl) findAuthorized(callerID string, callerRole models.UserRole, bookingID string) (*models.Booking, error) {
	booking, err := s.bookingRepo.FindByID(bookingID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrBookingNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	if callerRole == models.UserRoleAdmin {
		return booking, nil
	}
	if booking.OwnerID == callerID || booking.Caregiver.UserID == callerID {
		return booking, nil
	}
	return nil, apperrors.ErrInsufficientPermissions
}

// Notifications are best-effort: a mail failure never fails the request.

func (s *BookingServiceImpl) notifyBookingCreated(booking *models.Booking) {
	if s.mailer == nil || booking.Caregiver.User.Email == "" {
		return
	}

	go func() {
		data := bookingTemplateData(booking)
		data["OwnerName"] = booking.Owner.Name

		msg := &email.Email{
			To:      []string{booking.Caregiver.User.Email},
			Subject: "New booking request",
		}
		if err := s.mailer.SendWithTemplate(email.TemplateBookingCreated, data, msg); err != nil {
			logger.WithError(err).Warn("failed to send booking created email", "booking_id", booking.ID)
		}
	}()
}

func (s *BookingServiceImpl) notifyStatusChanged(booking *models.Booking) {
	if s.mailer == nil || booking.Owner.Email == "" {
		return
	}

	go func() {
		data := bookingTemplateData(booking)
		data["Status"] = booking.Status.String()

		msg := &email.Email{
			To:      []string{booking.Owner.Email},
			Subject: "Your booking was updated",
		}
		if err := s.mailer.SendWithTemplate(email.TemplateBookingStatusChanged, data, msg); err != nil {
			logger.WithError(err).Warn("failed to send booking status email", "booking_id", booking.ID)
		}
	}()
}

func bookingTemplateData(booking *models.Booking) email.TemplateData {
	return email.TemplateData{
		"ServiceName": booking.Service.Name,
		"PetName":     booking.Pet.Name,
		"StartTime":   booking.StartTime.Format(time.RFC1123),
		"EndTime":     booking.EndTime.Format(time.RFC1123),
		"TotalPrice":  fmt.Sprintf("%.2f", booking.TotalPrice),
	}
}

func toBookingResponse(b *models.Booking) *dto.BookingResponse {
	resp := &dto.BookingResponse{
		ID:           b.ID,
		OwnerID:      b.OwnerID,
		CaregiverID:  b.CaregiverID,
		PetID:        b.PetID,
		ServiceID:    b.ServiceID,
		StartTime:    b.StartTime,
		EndTime:      b.EndTime,
		Status:       b.Status,
		StatusName:   b.Status.String(),
		TotalPrice:   b.TotalPrice,
		Instructions: b.Instructions,
		CreatedAt:    b.CreatedAt,
	}

	if b.Pet.ID != "" {
		resp.Pet = toPetResponse(&b.Pet)
	}
	if b.Owner.ID != "" {
		resp.Owner = toUserResponse(&b.Owner)
	}
	if b.Caregiver.ID != "" {
		resp.Caregiver = toCaregiverProfileResponse(&b.Caregiver)
	}
	if b.Service.ID != "" {
		resp.Service = toServiceResponse(&b.Service)
	}

	return resp
}

func toBookingListResponse(bookings []models.Booking) *dto.BookingListResponse {
	resp := &dto.BookingListResponse{
		Bookings: make([]*dto.BookingResponse, 0, len(bookings)),
		Total:    len(bookings),
	}
	for i := range bookings {
		resp.Bookings = append(resp.Bookings, toBookingResponse(&bookings[i]))
	}
	return resp
}
