package model

import "fmt"

// LoadingState is the presentation-facing projection of feed fetch activity.
type LoadingState int

const (
	LoadingIdle LoadingState = iota
	LoadingInitial
	LoadingRefreshing
	LoadingPaginating
)

func (s LoadingState) String() string {
	switch s {
	case LoadingIdle:
		return "idle"
	case LoadingInitial:
		return "initialLoad"
	case LoadingRefreshing:
		return "refreshing"
	case LoadingPaginating:
		return "paginating"
	default:
		return "unknown"
	}
}

// IsActive reports whether a fetch cycle is running.
func (s LoadingState) IsActive() bool {
	return s != LoadingIdle
}

// MarshalText encodes the state by name.
func (s LoadingState) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *LoadingState) UnmarshalText(text []byte) error {
	switch string(text) {
	case "idle":
		*s = LoadingIdle
	case "initialLoad":
		*s = LoadingInitial
	case "refreshing":
		*s = LoadingRefreshing
	case "paginating":
		*s = LoadingPaginating
	default:
		return fmt.Errorf("unknown loading state %q", text)
	}
	return nil
}
