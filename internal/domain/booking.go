package domain

import "time"

type BookingStatus string

const (
	BookingStatusWaiting  BookingStatus = "WAITING"
	BookingStatusApproved BookingStatus = "APPROVED"
	BookingStatusRejected BookingStatus = "REJECTED"
)

type Booking struct {
	ID       int64         `json:"id"`
	Start    time.Time     `json:"start"`
	End      time.Time     `json:"end"`
	Status   BookingStatus `json:"status"`
	BookerID int64         `json:"booker_id"`
	ItemID   int64         `json:"item_id"`
	Booker   *User         `json:"booker,omitempty"` // Populated when fetching with relations joined
	Item     *Item         `json:"item,omitempty"`
}
