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

// TestimonialService coordinates review submission and moderation.
type TestimonialService struct {
	testimonials repository.TestimonialRepository
	dispatcher   events.Dispatcher
	latency      *Latency
	logger       *zap.Logger
}

// TestimonialCreateInput describes testimonial payload.
type TestimonialCreateInput struct {
	Name     string
	Text     string
	Rating   int
	PhotoURL string
}

// NewTestimonialService constructs the service.
func NewTestimonialService(deps Dependencies) *TestimonialService {
	return &TestimonialService{
		testimonials: deps.TestimonialRepo,
		dispatcher:   deps.Dispatcher,
		latency:      deps.Latency,
		logger:       deps.logger(),
	}
}

// ListTestimonials returns all testimonials, approved or not.
func (s *TestimonialService) ListTestimonials(ctx context.Context) ([]domain.Testimonial, error) {
	if err := s.latency.Wait(ctx, OpList); err != nil {
		return nil, err
	}
	return s.testimonials.List(ctx)
}

// ListApprovedTestimonials returns the publicly visible subset.
func (s *TestimonialService) ListApprovedTestimonials(ctx context.Context) ([]domain.Testimonial, error) {
	if err := s.latency.Wait(ctx, OpList); err != nil {
		return nil, err
	}
	return s.testimonials.ListApproved(ctx)
}

// CreateTestimonial stores a testimonial awaiting moderation.
func (s *TestimonialService) CreateTestimonial(ctx context.Context, input TestimonialCreateInput) (*domain.Testimonial, error) {
	if err := s.latency.Wait(ctx, OpCreate); err != nil {
		return nil, err
	}

	testimonial := &domain.Testimonial{
		Name:     input.Name,
		Text:     input.Text,
		Rating:   input.Rating,
		PhotoURL: input.PhotoURL,
		Approved: false,
	}
	if err := s.testimonials.Create(ctx, testimonial); err != nil {
		return nil, err
	}

	publishEvent(ctx, s.dispatcher, s.logger, events.Event{
		Type:     events.EventTestimonialSubmitted,
		RecordID: testimonial.ID,
		Payload: events.TestimonialSubmittedPayload{
			Name:   testimonial.Name,
			Rating: testimonial.Rating,
		},
	})
	return testimonial, nil
}

// UpdateTestimonialApproval toggles public visibility.
func (s *TestimonialService) UpdateTestimonialApproval(ctx context.Context, id string, approved bool) (*domain.Testimonial, error) {
	if err := s.latency.Wait(ctx, OpUpdate); err != nil {
		return nil, err
	}

	testimonial, err := s.testimonials.SetApproval(ctx, id, approved)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NewNotFound("testimonial", map[string]any{"id": id})
		}
		return nil, err
	}

	publishEvent(ctx, s.dispatcher, s.logger, events.Event{
		Type:     events.EventTestimonialModerated,
		RecordID: testimonial.ID,
		Payload:  events.TestimonialModeratedPayload{Approved: approved},
	})
	return testimonial, nil
}
