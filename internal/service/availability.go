package service

import (
	"time"

	"gearshare-backend/internal/domain"
)

// BookingDates holds the booking-derived annotations for item views:
// the end of the most recent completed booking and the start of the
// closest upcoming one. Either may be nil when no booking qualifies.
type BookingDates struct {
	LastBookingEnd   *time.Time
	NextBookingStart *time.Time
}

// ComputeBookingDates derives BookingDates from an already-fetched booking
// list. Both bounds are evaluated against the same instant: a booking whose
// end equals now is not yet last, one whose start equals now is not next.
//
// The caller passes a single owner-wide booking set, so every item in that
// owner's listing gets the same pair. A per-item variant only needs this
// function applied to a per-item booking set.
func ComputeBookingDates(bookings []domain.Booking, now time.Time) BookingDates {
	var dates BookingDates
	for i := range bookings {
		bk := &bookings[i]
		if bk.End.Before(now) && (dates.LastBookingEnd == nil || bk.End.After(*dates.LastBookingEnd)) {
			end := bk.End
			dates.LastBookingEnd = &end
		}
		if bk.Start.After(now) && (dates.NextBookingStart == nil || bk.Start.Before(*dates.NextBookingStart)) {
			start := bk.Start
			dates.NextBookingStart = &start
		}
	}
	return dates
}
