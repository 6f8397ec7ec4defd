package repository

//go:generate mockgen -source=quote_repository.go -destination=mocks/mock_quote_repository.go -package=mock_repository

import (
	"context"
	"slices"

	"github.com/spec-kit/greentouch-site/internal/domain"
)

// QuoteRepository encapsulates quote persistence.
type QuoteRepository interface {
	Create(ctx context.Context, quote *domain.Quote) error
	List(ctx context.Context) ([]domain.Quote, error)
	UpdateStatus(ctx context.Context, id string, status domain.QuoteStatus) (*domain.Quote, domain.QuoteStatus, error)
}

type quoteRepository struct {
	store *Store
}

// NewQuoteRepository instantiates repository.
func NewQuoteRepository(store *Store) QuoteRepository {
	return &quoteRepository{store: store}
}

// Create assigns the id and creation time, then appends the quote.
func (r *quoteRepository) Create(_ context.Context, quote *domain.Quote) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	quote.ID = s.uniqueID(func(id string) bool {
		return slices.ContainsFunc(s.quotes, func(q domain.Quote) bool { return q.ID == id })
	})
	quote.CreatedAt = s.Now()
	s.quotes = append(s.quotes, *quote)
	return nil
}

func (r *quoteRepository) List(_ context.Context) ([]domain.Quote, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return slices.Clone(r.store.quotes), nil
}

// UpdateStatus sets the status in place and returns the updated quote with
// its previous status.
func (r *quoteRepository) UpdateStatus(_ context.Context, id string, status domain.QuoteStatus) (*domain.Quote, domain.QuoteStatus, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := slices.IndexFunc(s.quotes, func(q domain.Quote) bool { return q.ID == id })
	if idx < 0 {
		return nil, "", ErrNotFound
	}
	previous := s.quotes[idx].Status
	s.quotes[idx].Status = status
	updated := s.quotes[idx]
	return &updated, previous, nil
}
