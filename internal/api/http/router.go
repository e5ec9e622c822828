package http

import (
	"net/http"

	"gearshare-backend/internal/service"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter wires all handlers into the HTTP surface. Identity is carried
// in the X-Sharer-User-Id header set by the gateway.
func NewRouter(bookingSvc service.BookingService, itemSvc service.ItemService, userSvc service.UserService, requestSvc service.RequestService) *mux.Router {
	bookings := NewBookingHandler(bookingSvc)
	items := NewItemHandler(itemSvc)
	users := NewUserHandler(userSvc)
	requests := NewRequestHandler(requestSvc)

	r := mux.NewRouter()
	r.Use(loggingMiddleware)

	r.HandleFunc("/bookings", bookings.CreateBooking).Methods(http.MethodPost)
	r.HandleFunc("/bookings/owner", bookings.ListOwnersBookings).Methods(http.MethodGet)
	r.HandleFunc("/bookings/{bookingId:[0-9]+}", bookings.ApproveBooking).Methods(http.MethodPatch)
	r.HandleFunc("/bookings/{bookingId:[0-9]+}", bookings.GetBooking).Methods(http.MethodGet)
	r.HandleFunc("/bookings", bookings.ListBookings).Methods(http.MethodGet)

	r.HandleFunc("/items", items.CreateItem).Methods(http.MethodPost)
	r.HandleFunc("/items/search", items.SearchItems).Methods(http.MethodGet)
	r.HandleFunc("/items/{itemId:[0-9]+}", items.UpdateItem).Methods(http.MethodPatch)
	r.HandleFunc("/items/{itemId:[0-9]+}", items.GetItem).Methods(http.MethodGet)
	r.HandleFunc("/items/{itemId:[0-9]+}/comment", items.CreateComment).Methods(http.MethodPost)
	r.HandleFunc("/items", items.ListOwnersItems).Methods(http.MethodGet)

	r.HandleFunc("/requests", requests.CreateRequest).Methods(http.MethodPost)
	r.HandleFunc("/requests/all", requests.ListAllRequests).Methods(http.MethodGet)
	r.HandleFunc("/requests/{requestId:[0-9]+}", requests.GetRequest).Methods(http.MethodGet)
	r.HandleFunc("/requests", requests.ListOwnRequests).Methods(http.MethodGet)

	r.HandleFunc("/users", users.CreateUser).Methods(http.MethodPost)
	r.HandleFunc("/users/{userId:[0-9]+}", users.UpdateUser).Methods(http.MethodPatch)
	r.HandleFunc("/users/{userId:[0-9]+}", users.GetUser).Methods(http.MethodGet)
	r.HandleFunc("/users/{userId:[0-9]+}", users.DeleteUser).Methods(http.MethodDelete)
	r.HandleFunc("/users", users.ListUsers).Methods(http.MethodGet)

	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	return r
}
