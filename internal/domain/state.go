package domain

import "fmt"

// SearchState is the temporal/status filter a caller applies to a booking
// listing. CURRENT means the booking's interval has not fully elapsed
// (end is still in the future), PAST and FUTURE compare strictly against
// the query instant.
type SearchState string

const (
	SearchStateAll      SearchState = "ALL"
	SearchStateCurrent  SearchState = "CURRENT"
	SearchStatePast     SearchState = "PAST"
	SearchStateFuture   SearchState = "FUTURE"
	SearchStateWaiting  SearchState = "WAITING"
	SearchStateRejected SearchState = "REJECTED"
)

// ParseSearchState maps a raw query value to a SearchState. An empty value
// defaults to ALL, matching the REST surface's default.
func ParseSearchState(raw string) (SearchState, error) {
	switch SearchState(raw) {
	case "":
		return SearchStateAll, nil
	case SearchStateAll, SearchStateCurrent, SearchStatePast, SearchStateFuture, SearchStateWaiting, SearchStateRejected:
		return SearchState(raw), nil
	default:
		return "", fmt.Errorf("unknown search state: %q", raw)
	}
}
