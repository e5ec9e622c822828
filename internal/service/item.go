package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gearshare-backend/internal/domain"
	"gearshare-backend/internal/logger"
	"gearshare-backend/internal/repository"
)

type itemService struct {
	itemRepo    repository.ItemRepository
	userRepo    repository.UserRepository
	commentRepo repository.CommentRepository
	bookingSvc  BookingService
	clock       Clock
}

func NewItemService(
	itemRepo repository.ItemRepository,
	userRepo repository.UserRepository,
	commentRepo repository.CommentRepository,
	bookingSvc BookingService,
	clock Clock,
) ItemService {
	return &itemService{
		itemRepo:    itemRepo,
		userRepo:    userRepo,
		commentRepo: commentRepo,
		bookingSvc:  bookingSvc,
		clock:       clock,
	}
}

func (s *itemService) CreateItem(ctx context.Context, item *domain.Item, ownerID int64) (*domain.Item, error) {
	owner, err := s.userRepo.GetByID(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	item.OwnerID = owner.ID
	if err := s.itemRepo.Create(ctx, item); err != nil {
		return nil, err
	}
	logger.Info("item created", "item_id", item.ID, "owner_id", ownerID)
	return item, nil
}

func (s *itemService) UpdateItem(ctx context.Context, update ItemUpdate, ownerID, itemID int64) (*domain.Item, error) {
	item, err := s.itemRepo.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item.OwnerID != ownerID {
		return nil, fmt.Errorf("user %d is not the owner of item %d: %w", ownerID, itemID, domain.ErrNotEnoughRights)
	}
	if update.Name != nil {
		item.Name = *update.Name
	}
	if update.Description != nil {
		item.Description = *update.Description
	}
	if update.Available != nil {
		item.Available = *update.Available
	}
	if err := s.itemRepo.Update(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *itemService) GetItem(ctx context.Context, itemID, userID int64) (*ItemDetails, error) {
	item, err := s.itemRepo.GetByIDWithOwner(ctx, itemID)
	if err != nil {
		return nil, err
	}
	bookings, err := s.bookingSvc.ListOwnersBookings(ctx, userID, domain.SearchStateAll)
	if err != nil {
		return nil, err
	}
	dates := ComputeBookingDates(bookings, s.clock.Now())
	comments, err := s.commentRepo.ListByItem(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if comments == nil {
		comments = []domain.Comment{}
	}
	return &ItemDetails{
		Item:             *item,
		LastBookingEnd:   dates.LastBookingEnd,
		NextBookingStart: dates.NextBookingStart,
		Comments:         comments,
	}, nil
}

func (s *itemService) ListOwnersItems(ctx context.Context, userID int64) ([]ItemDetails, error) {
	// One owner-wide pair of booking dates is applied to every item in the
	// listing; see ComputeBookingDates.
	bookings, err := s.bookingSvc.ListOwnersBookings(ctx, userID, domain.SearchStateAll)
	if err != nil {
		return nil, err
	}
	dates := ComputeBookingDates(bookings, s.clock.Now())

	items, err := s.itemRepo.ListByOwner(ctx, userID)
	if err != nil {
		return nil, err
	}
	details := make([]ItemDetails, 0, len(items))
	for _, item := range items {
		details = append(details, ItemDetails{
			Item:             item,
			LastBookingEnd:   dates.LastBookingEnd,
			NextBookingStart: dates.NextBookingStart,
			Comments:         []domain.Comment{},
		})
	}
	return details, nil
}

func (s *itemService) SearchItems(ctx context.Context, text string) ([]domain.Item, error) {
	if strings.TrimSpace(text) == "" {
		return []domain.Item{}, nil
	}
	items, err := s.itemRepo.SearchAvailable(ctx, strings.ToLower(text))
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []domain.Item{}
	}
	return items, nil
}

func (s *itemService) CreateComment(ctx context.Context, text string, itemID, userID int64) (*domain.Comment, error) {
	item, err := s.itemRepo.GetByIDWithOwner(ctx, itemID)
	if err != nil {
		return nil, err
	}
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	booking, err := s.bookingSvc.HasUserBookedItem(ctx, userID, itemID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("user %d never booked item %d: %w", userID, itemID, domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	if booking.End.After(s.clock.Now()) {
		return nil, fmt.Errorf("booking must be in the past to comment: %w", domain.ErrNotEnoughRights)
	}

	comment := &domain.Comment{
		Text:       text,
		ItemID:     item.ID,
		AuthorID:   user.ID,
		AuthorName: user.Name,
		Created:    s.clock.Now(),
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}
