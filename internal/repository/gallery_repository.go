package repository

//go:generate mockgen -source=gallery_repository.go -destination=mocks/mock_gallery_repository.go -package=mock_repository

import (
	"context"
	"slices"

	"github.com/spec-kit/greentouch-site/internal/domain"
)

// GalleryRepository encapsulates gallery persistence.
type GalleryRepository interface {
	Create(ctx context.Context, item *domain.GalleryItem) error
	List(ctx context.Context) ([]domain.GalleryItem, error)
	ListApproved(ctx context.Context) ([]domain.GalleryItem, error)
	Delete(ctx context.Context, id string) (*domain.GalleryItem, error)
}

type galleryRepository struct {
	store *Store
}

// NewGalleryRepository instantiates repository.
func NewGalleryRepository(store *Store) GalleryRepository {
	return &galleryRepository{store: store}
}

func (r *galleryRepository) Create(_ context.Context, item *domain.GalleryItem) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	item.ID = s.uniqueID(func(id string) bool {
		return slices.ContainsFunc(s.gallery, func(g domain.GalleryItem) bool { return g.ID == id })
	})
	item.CreatedAt = s.Now()
	s.gallery = append(s.gallery, *item)
	return nil
}

func (r *galleryRepository) List(_ context.Context) ([]domain.GalleryItem, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return slices.Clone(r.store.gallery), nil
}

func (r *galleryRepository) ListApproved(_ context.Context) ([]domain.GalleryItem, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	result := make([]domain.GalleryItem, 0, len(r.store.gallery))
	for _, g := range r.store.gallery {
		if g.Approved {
			result = append(result, g)
		}
	}
	return result, nil
}

// Delete removes the item and returns it.
func (r *galleryRepository) Delete(_ context.Context, id string) (*domain.GalleryItem, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := slices.IndexFunc(s.gallery, func(g domain.GalleryItem) bool { return g.ID == id })
	if idx < 0 {
		return nil, ErrNotFound
	}
	removed := s.gallery[idx]
	s.gallery = slices.Delete(s.gallery, idx, idx+1)
	return &removed, nil
}
