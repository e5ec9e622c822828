package domain

import "errors"

// Error kinds shared across services and repositories. Repositories translate
// driver-level "no rows" results into ErrNotFound; services wrap these with
// entity context using %w so callers can match with errors.Is.
var (
	ErrNotFound         = errors.New("entity not found")
	ErrItemNotAvailable = errors.New("item is not available")
	ErrNotEnoughRights  = errors.New("not enough rights to change data")
	ErrEmailExists      = errors.New("email already in use")
)
