package repository

import (
	"context"
	"time"

	"gearshare-backend/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	List(ctx context.Context) ([]domain.User, error)
	Delete(ctx context.Context, id int64) error
}

type ItemRepository interface {
	Create(ctx context.Context, item *domain.Item) error
	GetByID(ctx context.Context, id int64) (*domain.Item, error)
	// GetByIDWithOwner joins the owning user so authorization checks do not
	// need a second round trip.
	GetByIDWithOwner(ctx context.Context, id int64) (*domain.Item, error)
	Update(ctx context.Context, item *domain.Item) error
	ListByOwner(ctx context.Context, ownerID int64) ([]domain.Item, error)
	// SearchAvailable matches the query against name and description,
	// case-insensitively, restricted to available items.
	SearchAvailable(ctx context.Context, query string) ([]domain.Item, error)
}

type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) error
	// GetByIDWithRelations joins booker, item and item owner.
	GetByIDWithRelations(ctx context.Context, id int64) (*domain.Booking, error)
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error
	// ListByBooker and ListByOwner return bookings matching the identity
	// predicate ANDed with the state predicate, sorted by start descending.
	// The caller supplies the instant the temporal states are evaluated
	// against so a single listing uses one consistent "now".
	ListByBooker(ctx context.Context, bookerID int64, state domain.SearchState, now time.Time) ([]domain.Booking, error)
	ListByOwner(ctx context.Context, ownerID int64, state domain.SearchState, now time.Time) ([]domain.Booking, error)
	// FindByBookerAndItem returns any one booking of the item by the user,
	// regardless of status or time; domain.ErrNotFound when none exists.
	FindByBookerAndItem(ctx context.Context, bookerID, itemID int64) (*domain.Booking, error)
	// ListWaitingWithRelations returns all bookings still waiting for an
	// owner decision, with relations joined. Used by the reminder job.
	ListWaitingWithRelations(ctx context.Context) ([]domain.Booking, error)
}

type ItemRequestRepository interface {
	Create(ctx context.Context, request *domain.ItemRequest) error
	// GetByID loads a request together with the items answering it;
	// domain.ErrNotFound when no such request exists.
	GetByID(ctx context.Context, id int64) (*domain.ItemRequest, error)
	// ListByRequestor and ListAll return requests with answering items
	// attached, oldest first.
	ListByRequestor(ctx context.Context, requestorID int64) ([]domain.ItemRequest, error)
	ListAll(ctx context.Context) ([]domain.ItemRequest, error)
}

type CommentRepository interface {
	Create(ctx context.Context, comment *domain.Comment) error
	ListByItem(ctx context.Context, itemID int64) ([]domain.Comment, error)
}
