package repository

//go:generate mockgen -source=testimonial_repository.go -destination=mocks/mock_testimonial_repository.go -package=mock_repository

import (
	"context"
	"slices"

	"github.com/spec-kit/greentouch-site/internal/domain"
)

// TestimonialRepository encapsulates testimonial persistence.
type TestimonialRepository interface {
	Create(ctx context.Context, testimonial *domain.Testimonial) error
	List(ctx context.Context) ([]domain.Testimonial, error)
	ListApproved(ctx context.Context) ([]domain.Testimonial, error)
	SetApproval(ctx context.Context, id string, approved bool) (*domain.Testimonial, error)
}

type testimonialRepository struct {
	store *Store
}

// NewTestimonialRepository instantiates repository.
func NewTestimonialRepository(store *Store) TestimonialRepository {
	return &testimonialRepository{store: store}
}

func (r *testimonialRepository) Create(_ context.Context, testimonial *domain.Testimonial) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	testimonial.ID = s.uniqueID(func(id string) bool {
		return slices.ContainsFunc(s.testimonials, func(t domain.Testimonial) bool { return t.ID == id })
	})
	testimonial.CreatedAt = s.Now()
	s.testimonials = append(s.testimonials, *testimonial)
	return nil
}

func (r *testimonialRepository) List(_ context.Context) ([]domain.Testimonial, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return slices.Clone(r.store.testimonials), nil
}

func (r *testimonialRepository) ListApproved(_ context.Context) ([]domain.Testimonial, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	result := make([]domain.Testimonial, 0, len(r.store.testimonials))
	for _, t := range r.store.testimonials {
		if t.Approved {
			result = append(result, t)
		}
	}
	return result, nil
}

func (r *testimonialRepository) SetApproval(_ context.Context, id string, approved bool) (*domain.Testimonial, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := slices.IndexFunc(s.testimonials, func(t domain.Testimonial) bool { return t.ID == id })
	if idx < 0 {
		return nil, ErrNotFound
	}
	s.testimonials[idx].Approved = approved
	updated := s.testimonials[idx]
	return &updated, nil
}
