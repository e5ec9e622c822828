package http

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"gearshare-backend/internal/domain"
	"gearshare-backend/internal/service"
)

// BookingHandler exposes the booking lifecycle over HTTP
type BookingHandler struct {
	bookingSvc service.BookingService
}

func NewBookingHandler(bookingSvc service.BookingService) *BookingHandler {
	return &BookingHandler{bookingSvc: bookingSvc}
}

// CreateBooking handles POST /bookings
func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	userID, err := requesterID(r)
	if err != nil {
		writeBadRequest(w, "missing or invalid "+userIDHeader+" header")
		return
	}
	var req service.NewBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}
	if req.ItemID <= 0 || req.Start.IsZero() || req.End.IsZero() || !req.End.After(req.Start) {
		writeBadRequest(w, "booking requires an item and an interval with end after start")
		return
	}

	booking, err := h.bookingSvc.CreateBooking(r.Context(), req, userID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, booking)
}

// ApproveBooking handles PATCH /bookings/{bookingId}?approved=
func (h *BookingHandler) ApproveBooking(w http.ResponseWriter, r *http.Request) {
	userID, err := requesterID(r)
	if err != nil {
		writeBadRequest(w, "missing or invalid "+userIDHeader+" header")
		return
	}
	bookingID, err := pathID(r, "bookingId")
	if err != nil {
		writeBadRequest(w, "invalid booking id")
		return
	}
	approved, err := strconv.ParseBool(r.URL.Query().Get("approved"))
	if err != nil {
		writeBadRequest(w, "approved query parameter must be true or false")
		return
	}

	booking, err := h.bookingSvc.ApproveBooking(r.Context(), userID, bookingID, approved)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, booking)
}

// GetBooking handles GET /bookings/{bookingId}
func (h *BookingHandler) GetBooking(w http.ResponseWriter, r *http.Request) {
	userID, err := requesterID(r)
	if err != nil {
		writeBadRequest(w, "missing or invalid "+userIDHeader+" header")
		return
	}
	bookingID, err := pathID(r, "bookingId")
	if err != nil {
		writeBadRequest(w, "invalid booking id")
		return
	}

	booking, err := h.bookingSvc.GetBooking(r.Context(), userID, bookingID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, booking)
}

// ListBookings handles GET /bookings?state=
func (h *BookingHandler) ListBookings(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, h.bookingSvc.ListBookingsOfUser)
}

// ListOwnersBookings handles GET /bookings/owner?state=
func (h *BookingHandler) ListOwnersBookings(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, h.bookingSvc.ListOwnersBookings)
}

func (h *BookingHandler) list(
	w http.ResponseWriter,
	r *http.Request,
	listFn func(ctx context.Context, userID int64, state domain.SearchState) ([]domain.Booking, error),
) {
	userID, err := requesterID(r)
	if err != nil {
		writeBadRequest(w, "missing or invalid "+userIDHeader+" header")
		return
	}
	state, err := domain.ParseSearchState(r.URL.Query().Get("state"))
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	bookings, err := listFn(r.Context(), userID, state)
	if err != nil {
		writeError(w, err)
		return
	}
	if bookings == nil {
		bookings = []domain.Booking{}
	}
	writeJSON(w, http.StatusOK, bookings)
}
