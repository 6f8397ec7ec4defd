package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/spec-kit/greentouch-site/internal/domain"
	"github.com/spec-kit/greentouch-site/internal/events"
	"github.com/spec-kit/greentouch-site/internal/repository"
	apperrors "github.com/spec-kit/greentouch-site/pkg/util"
)

// GalleryService manages the work showcase.
type GalleryService struct {
	gallery    repository.GalleryRepository
	dispatcher events.Dispatcher
	latency    *Latency
	logger     *zap.Logger
}

// GalleryCreateInput describes gallery item payload.
type GalleryCreateInput struct {
	Title       string
	Description string
	ImageURL    string
	Category    domain.ServiceType
}

// NewGalleryService constructs the service.
func NewGalleryService(deps Dependencies) *GalleryService {
	return &GalleryService{
		gallery:    deps.GalleryRepo,
		dispatcher: deps.Dispatcher,
		latency:    deps.Latency,
		logger:     deps.logger(),
	}
}

// ListGalleryItems returns every gallery item.
func (s *GalleryService) ListGalleryItems(ctx context.Context) ([]domain.GalleryItem, error) {
	if err := s.latency.Wait(ctx, OpList); err != nil {
		return nil, err
	}
	return s.gallery.List(ctx)
}

// ListApprovedGalleryItems returns the publicly visible subset.
func (s *GalleryService) ListApprovedGalleryItems(ctx context.Context) ([]domain.GalleryItem, error) {
	if err := s.latency.Wait(ctx, OpList); err != nil {
		return nil, err
	}
	return s.gallery.ListApproved(ctx)
}

// CreateGalleryItem adds an item. Gallery items are admin-authored and so
// start out approved, unlike testimonials.
func (s *GalleryService) CreateGalleryItem(ctx context.Context, input GalleryCreateInput) (*domain.GalleryItem, error) {
	if err := s.latency.Wait(ctx, OpCreate); err != nil {
		return nil, err
	}

	item := &domain.GalleryItem{
		Title:       input.Title,
		Description: input.Description,
		ImageURL:    input.ImageURL,
		Category:    input.Category,
		Approved:    true,
	}
	if err := s.gallery.Create(ctx, item); err != nil {
		return nil, err
	}

	publishEvent(ctx, s.dispatcher, s.logger, events.Event{
		Type:     events.EventGalleryItemAdded,
		RecordID: item.ID,
		Payload:  events.GalleryItemPayload{Title: item.Title, Category: item.Category},
	})
	return item, nil
}

// DeleteGalleryItem removes an item permanently.
func (s *GalleryService) DeleteGalleryItem(ctx context.Context, id string) error {
	if err := s.latency.Wait(ctx, OpDelete); err != nil {
		return err
	}

	removed, err := s.gallery.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperrors.NewNotFound("gallery item", map[string]any{"id": id})
		}
		return err
	}

	publishEvent(ctx, s.dispatcher, s.logger, events.Event{
		Type:     events.EventGalleryItemDeleted,
		RecordID: removed.ID,
		Payload:  events.GalleryItemPayload{Title: removed.Title, Category: removed.Category},
	})
	return nil
}
