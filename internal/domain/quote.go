package domain

import "time"

// QuoteStatus enumerates lifecycle states for quote requests.
type QuoteStatus string

const (
	QuoteStatusPending   QuoteStatus = "pending"
	QuoteStatusProcessed QuoteStatus = "processed"
)

// Valid reports whether the status is a known quote state.
func (s QuoteStatus) Valid() bool {
	switch s {
	case QuoteStatusPending, QuoteStatusProcessed:
		return true
	}
	return false
}

// CanTransitionTo reports whether moving to next keeps the quote lifecycle
// moving forward. Staying in the same state counts as forward.
func (s QuoteStatus) CanTransitionTo(next QuoteStatus) bool {
	if s == next {
		return true
	}
	switch s {
	case QuoteStatusPending:
		return next == QuoteStatusProcessed
	case QuoteStatusProcessed:
		return false
	}
	return false
}

// Quote is a garden quote request submitted from the public site.
type Quote struct {
	ID          string
	Name        string
	Email       string
	ServiceType ServiceType
	GardenSize  float64
	Comments    string
	Status      QuoteStatus
	CreatedAt   time.Time
}
