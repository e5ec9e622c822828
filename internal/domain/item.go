package domain

type Item struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Available   bool   `json:"available"`
	OwnerID     int64  `json:"owner_id"`
	Owner       *User  `json:"owner,omitempty"` // Populated when fetching with the owning user joined
	RequestID   *int64 `json:"request_id,omitempty"` // Set when the item answers an item request
}
