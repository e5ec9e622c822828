package service

import (
	"context"
	"time"

	"gearshare-backend/internal/domain"
)

// NewBookingRequest is the caller's proposed booking: an interval on an item.
type NewBookingRequest struct {
	ItemID int64     `json:"item_id"`
	Start  time.Time `json:"start"`
	End    time.Time `json:"end"`
}

// ItemDetails is an item view annotated with booking dates and comments,
// returned to owners and item browsers.
type ItemDetails struct {
	Item             domain.Item      `json:"item"`
	LastBookingEnd   *time.Time       `json:"last_booking_end,omitempty"`
	NextBookingStart *time.Time       `json:"next_booking_start,omitempty"`
	Comments         []domain.Comment `json:"comments"`
}

type BookingService interface {
	CreateBooking(ctx context.Context, req NewBookingRequest, userID int64) (*domain.Booking, error)
	ApproveBooking(ctx context.Context, userID, bookingID int64, approved bool) (*domain.Booking, error)
	GetBooking(ctx context.Context, userID, bookingID int64) (*domain.Booking, error)
	ListBookingsOfUser(ctx context.Context, userID int64, state domain.SearchState) ([]domain.Booking, error)
	ListOwnersBookings(ctx context.Context, userID int64, state domain.SearchState) ([]domain.Booking, error)
	// HasUserBookedItem returns any booking record of the item by the user,
	// regardless of status or time; domain.ErrNotFound when none exists.
	HasUserBookedItem(ctx context.Context, userID, itemID int64) (*domain.Booking, error)
}

type ItemService interface {
	CreateItem(ctx context.Context, item *domain.Item, ownerID int64) (*domain.Item, error)
	UpdateItem(ctx context.Context, update ItemUpdate, ownerID, itemID int64) (*domain.Item, error)
	GetItem(ctx context.Context, itemID, userID int64) (*ItemDetails, error)
	ListOwnersItems(ctx context.Context, userID int64) ([]ItemDetails, error)
	SearchItems(ctx context.Context, text string) ([]domain.Item, error)
	CreateComment(ctx context.Context, text string, itemID, userID int64) (*domain.Comment, error)
}

// ItemUpdate carries a partial item update; nil fields are left unchanged.
type ItemUpdate struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Available   *bool   `json:"available"`
}

type RequestService interface {
	CreateRequest(ctx context.Context, description string, userID int64) (*domain.ItemRequest, error)
	// ListOwnRequests returns the caller's requests, ListAllRequests every
	// request in the system; both oldest first, with answering items.
	ListOwnRequests(ctx context.Context, userID int64) ([]domain.ItemRequest, error)
	ListAllRequests(ctx context.Context) ([]domain.ItemRequest, error)
	GetRequest(ctx context.Context, requestID int64) (*domain.ItemRequest, error)
}

type UserService interface {
	CreateUser(ctx context.Context, user *domain.User) (*domain.User, error)
	UpdateUser(ctx context.Context, update UserUpdate, userID int64) (*domain.User, error)
	GetUser(ctx context.Context, userID int64) (*domain.User, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
	DeleteUser(ctx context.Context, userID int64) error
}

// UserUpdate carries a partial user update; nil fields are left unchanged.
type UserUpdate struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
}

type EmailService interface {
	SendBookingRequestNotification(ctx context.Context, ownerEmail, bookerName, itemName string) error
	SendBookingDecisionNotification(ctx context.Context, bookerEmail, itemName string, approved bool) error
	SendPendingApprovalReminder(ctx context.Context, ownerEmail string, pendingCount int) error
}
