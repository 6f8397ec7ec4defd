package repository

//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mock_repository

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/greentouch-site/internal/domain"
)

// ErrNotFound is returned when no record matches the requested id.
var ErrNotFound = errors.New("record not found")

const maxIDAttempts = 8

// StatsRepository derives dashboard counters.
type StatsRepository interface {
	Stats(ctx context.Context) (domain.DashboardStats, error)
}

// Store holds the authoritative in-memory collections. Every exported
// operation runs under the store lock, so a read-modify-write is never
// observed half done.
type Store struct {
	mu           sync.RWMutex
	quotes       []domain.Quote
	appointments []domain.Appointment
	testimonials []domain.Testimonial
	gallery      []domain.GalleryItem

	newID func() string
	now   func() time.Time
}

// Option customises a Store.
type Option func(*Store)

// WithIDGenerator overrides the identifier source.
func WithIDGenerator(fn func() string) Option {
	return func(s *Store) {
		if fn != nil {
			s.newID = fn
		}
	}
}

// WithClock overrides the timestamp source.
func WithClock(fn func() time.Time) Option {
	return func(s *Store) {
		if fn != nil {
			s.now = fn
		}
	}
}

// NewStore returns an empty store.
func NewStore(opts ...Option) *Store {
	s := &Store{
		newID: uuid.NewString,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewSeededStore returns a store preloaded with the showcase data the site
// starts with on every boot.
func NewSeededStore(opts ...Option) *Store {
	s := NewStore(opts...)
	s.seed()
	return s
}

// GenerateID returns a fresh opaque identifier.
func (s *Store) GenerateID() string {
	return s.newID()
}

// Now returns the current time in UTC.
func (s *Store) Now() time.Time {
	return s.now().UTC()
}

// uniqueID draws ids until one is unused. Callers must hold s.mu.
func (s *Store) uniqueID(taken func(id string) bool) string {
	for i := 0; i < maxIDAttempts; i++ {
		id := s.GenerateID()
		if id != "" && !taken(id) {
			return id
		}
	}
	for {
		id := uuid.NewString()
		if !taken(id) {
			return id
		}
	}
}

// Stats derives the dashboard counters from one consistent snapshot.
func (s *Store) Stats(_ context.Context) (domain.DashboardStats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := domain.DashboardStats{
		TotalAppointments: len(s.appointments),
		GalleryItems:      len(s.gallery),
	}
	for _, q := range s.quotes {
		if q.Status == domain.QuoteStatusPending {
			stats.PendingQuotes++
		}
	}
	for _, t := range s.testimonials {
		if t.Approved {
			stats.ApprovedTestimonials++
		}
	}
	return stats, nil
}
