package service

import (
	"context"
	"fmt"

	"gearshare-backend/internal/domain"
	"gearshare-backend/internal/logger"
	"gearshare-backend/internal/metrics"
	"gearshare-backend/internal/repository"
)

type bookingService struct {
	bookingRepo repository.BookingRepository
	itemRepo    repository.ItemRepository
	userRepo    repository.UserRepository
	emailSvc    EmailService
	clock       Clock
}

func NewBookingService(
	bookingRepo repository.BookingRepository,
	itemRepo repository.ItemRepository,
	userRepo repository.UserRepository,
	emailSvc EmailService,
	clock Clock,
) BookingService {
	return &bookingService{
		bookingRepo: bookingRepo,
		itemRepo:    itemRepo,
		userRepo:    userRepo,
		emailSvc:    emailSvc,
		clock:       clock,
	}
}

func (s *bookingService) CreateBooking(ctx context.Context, req NewBookingRequest, userID int64) (*domain.Booking, error) {
	logger.Debug("creating booking", "user_id", userID, "item_id", req.ItemID)

	user, err := s.requireUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	item, err := s.itemRepo.GetByIDWithOwner(ctx, req.ItemID)
	if err != nil {
		return nil, err
	}
	if !item.Available {
		return nil, fmt.Errorf("item %d: %w", item.ID, domain.ErrItemNotAvailable)
	}

	// Overlapping bookings of the same item are accepted; the owner decides
	// which request to approve.
	booking := &domain.Booking{
		Start:    req.Start,
		End:      req.End,
		Status:   domain.BookingStatusWaiting,
		BookerID: user.ID,
		ItemID:   item.ID,
	}
	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, err
	}
	booking.Booker = user
	booking.Item = item

	metrics.BookingsCreated.Inc()
	logger.Info("booking created", "booking_id", booking.ID, "item_id", item.ID, "booker_id", user.ID)

	if item.Owner != nil {
		if err := s.emailSvc.SendBookingRequestNotification(ctx, item.Owner.Email, user.Name, item.Name); err != nil {
			logger.Warn("failed to notify owner about booking request", "booking_id", booking.ID, "error", err)
		}
	}
	return booking, nil
}

func (s *bookingService) ApproveBooking(ctx context.Context, userID, bookingID int64, approved bool) (*domain.Booking, error) {
	logger.Debug("deciding booking", "user_id", userID, "booking_id", bookingID, "approved", approved)

	booking, err := s.bookingRepo.GetByIDWithRelations(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.Item.Owner.ID != userID {
		return nil, fmt.Errorf("user %d is not the owner of item %d: %w", userID, booking.ItemID, domain.ErrNotEnoughRights)
	}

	// A decided booking can be decided again; the last decision wins.
	status := domain.BookingStatusRejected
	if approved {
		status = domain.BookingStatusApproved
	}
	if err := s.bookingRepo.UpdateStatus(ctx, bookingID, status); err != nil {
		return nil, err
	}
	booking.Status = status

	metrics.BookingDecisions.WithLabelValues(string(status)).Inc()
	logger.Info("booking decided", "booking_id", bookingID, "status", status)

	if err := s.emailSvc.SendBookingDecisionNotification(ctx, booking.Booker.Email, booking.Item.Name, approved); err != nil {
		logger.Warn("failed to notify booker about decision", "booking_id", bookingID, "error", err)
	}
	return booking, nil
}

func (s *bookingService) GetBooking(ctx context.Context, userID, bookingID int64) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByIDWithRelations(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.Booker.ID != userID && booking.Item.Owner.ID != userID {
		return nil, fmt.Errorf("user %d is neither booker nor item owner: %w", userID, domain.ErrNotEnoughRights)
	}
	return booking, nil
}

func (s *bookingService) ListBookingsOfUser(ctx context.Context, userID int64, state domain.SearchState) ([]domain.Booking, error) {
	if _, err := s.requireUser(ctx, userID); err != nil {
		return nil, err
	}
	return s.bookingRepo.ListByBooker(ctx, userID, state, s.clock.Now())
}

func (s *bookingService) ListOwnersBookings(ctx context.Context, userID int64, state domain.SearchState) ([]domain.Booking, error) {
	if _, err := s.requireUser(ctx, userID); err != nil {
		return nil, err
	}
	return s.bookingRepo.ListByOwner(ctx, userID, state, s.clock.Now())
}

func (s *bookingService) HasUserBookedItem(ctx context.Context, userID, itemID int64) (*domain.Booking, error) {
	return s.bookingRepo.FindByBookerAndItem(ctx, userID, itemID)
}

func (s *bookingService) requireUser(ctx context.Context, userID int64) (*domain.User, error) {
	return s.userRepo.GetByID(ctx, userID)
}
