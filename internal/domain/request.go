package domain

import "time"

// ItemRequest is a wish for an item that is not in the catalog yet. Owners
// answer a request by creating an item that references it.
type ItemRequest struct {
	ID          int64     `json:"id"`
	Description string    `json:"description"`
	RequestorID int64     `json:"requestor_id"`
	Created     time.Time `json:"created"`
	Requestor   *User     `json:"requestor,omitempty"`
	Items       []Item    `json:"items"`
}
