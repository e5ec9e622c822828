package http

import (
	"context"

	"gearshare-backend/internal/domain"
	"gearshare-backend/internal/service"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/mock"
)

func testRouter(bookingSvc service.BookingService, itemSvc service.ItemService, userSvc service.UserService) *mux.Router {
	return NewRouter(bookingSvc, itemSvc, userSvc, new(mockRequestService))
}

func requestTestRouter(requestSvc service.RequestService) *mux.Router {
	return NewRouter(new(mockBookingService), new(mockItemService), new(mockUserService), requestSvc)
}

type mockBookingService struct {
	mock.Mock
}

func (m *mockBookingService) CreateBooking(ctx context.Context, req service.NewBookingRequest, userID int64) (*domain.Booking, error) {
	args := m.Called(ctx, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}
func (m *mockBookingService) ApproveBooking(ctx context.Context, userID, bookingID int64, approved bool) (*domain.Booking, error) {
	args := m.Called(ctx, userID, bookingID, approved)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}
func (m *mockBookingService) GetBooking(ctx context.Context, userID, bookingID int64) (*domain.Booking, error) {
	args := m.Called(ctx, userID, bookingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}
func (m *mockBookingService) ListBookingsOfUser(ctx context.Context, userID int64, state domain.SearchState) ([]domain.Booking, error) {
	args := m.Called(ctx, userID, state)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}
func (m *mockBookingService) ListOwnersBookings(ctx context.Context, userID int64, state domain.SearchState) ([]domain.Booking, error) {
	args := m.Called(ctx, userID, state)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}
func (m *mockBookingService) HasUserBookedItem(ctx context.Context, userID, itemID int64) (*domain.Booking, error) {
	args := m.Called(ctx, userID, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

type mockItemService struct {
	mock.Mock
}

func (m *mockItemService) CreateItem(ctx context.Context, item *domain.Item, ownerID int64) (*domain.Item, error) {
	args := m.Called(ctx, item, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Item), args.Error(1)
}
func (m *mockItemService) UpdateItem(ctx context.Context, update service.ItemUpdate, ownerID, itemID int64) (*domain.Item, error) {
	args := m.Called(ctx, update, ownerID, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Item), args.Error(1)
}
func (m *mockItemService) GetItem(ctx context.Context, itemID, userID int64) (*service.ItemDetails, error) {
	args := m.Called(ctx, itemID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ItemDetails), args.Error(1)
}
func (m *mockItemService) ListOwnersItems(ctx context.Context, userID int64) ([]service.ItemDetails, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]service.ItemDetails), args.Error(1)
}
func (m *mockItemService) SearchItems(ctx context.Context, text string) ([]domain.Item, error) {
	args := m.Called(ctx, text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Item), args.Error(1)
}
func (m *mockItemService) CreateComment(ctx context.Context, text string, itemID, userID int64) (*domain.Comment, error) {
	args := m.Called(ctx, text, itemID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Comment), args.Error(1)
}

type mockRequestService struct {
	mock.Mock
}

func (m *mockRequestService) CreateRequest(ctx context.Context, description string, userID int64) (*domain.ItemRequest, error) {
	args := m.Called(ctx, description, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ItemRequest), args.Error(1)
}
func (m *mockRequestService) ListOwnRequests(ctx context.Context, userID int64) ([]domain.ItemRequest, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ItemRequest), args.Error(1)
}
func (m *mockRequestService) ListAllRequests(ctx context.Context) ([]domain.ItemRequest, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ItemRequest), args.Error(1)
}
func (m *mockRequestService) GetRequest(ctx context.Context, requestID int64) (*domain.ItemRequest, error) {
	args := m.Called(ctx, requestID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ItemRequest), args.Error(1)
}

type mockUserService struct {
	mock.Mock
}

func (m *mockUserService) CreateUser(ctx context.Context, user *domain.User) (*domain.User, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *mockUserService) UpdateUser(ctx context.Context, update service.UserUpdate, userID int64) (*domain.User, error) {
	args := m.Called(ctx, update, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *mockUserService) GetUser(ctx context.Context, userID int64) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *mockUserService) ListUsers(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}
func (m *mockUserService) DeleteUser(ctx context.Context, userID int64) error {
	return m.Called(ctx, userID).Error(0)
}
