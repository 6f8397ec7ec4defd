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

// QuoteService coordinates quote request workflows.
type QuoteService struct {
	quotes     repository.QuoteRepository
	dispatcher events.Dispatcher
	latency    *Latency
	logger     *zap.Logger
}

// QuoteCreateInput describes quote creation payload.
type QuoteCreateInput struct {
	Name        string
	Email       string
	ServiceType domain.ServiceType
	GardenSize  float64
	Comments    string
}

// NewQuoteService constructs the service.
func NewQuoteService(deps Dependencies) *QuoteService {
	return &QuoteService{
		quotes:     deps.QuoteRepo,
		dispatcher: deps.Dispatcher,
		latency:    deps.Latency,
		logger:     deps.logger(),
	}
}

// ListQuotes returns every quote in submission order.
func (s *QuoteService) ListQuotes(ctx context.Context) ([]domain.Quote, error) {
	if err := s.latency.Wait(ctx, OpList); err != nil {
		return nil, err
	}
	return s.quotes.List(ctx)
}

// CreateQuote stores a new pending quote. Input is stored as given; shape
// and normalisation are the caller's concern.
func (s *QuoteService) CreateQuote(ctx context.Context, input QuoteCreateInput) (*domain.Quote, error) {
	if err := s.latency.Wait(ctx, OpCreate); err != nil {
		return nil, err
	}

	quote := &domain.Quote{
		Name:        input.Name,
		Email:       input.Email,
		ServiceType: input.ServiceType,
		GardenSize:  input.GardenSize,
		Comments:    input.Comments,
		Status:      domain.QuoteStatusPending,
	}
	if err := s.quotes.Create(ctx, quote); err != nil {
		return nil, err
	}

	publishEvent(ctx, s.dispatcher, s.logger, events.Event{
		Type:     events.EventQuoteRequested,
		RecordID: quote.ID,
		Payload: events.QuoteRequestedPayload{
			Name:        quote.Name,
			Email:       quote.Email,
			ServiceType: quote.ServiceType,
			GardenSize:  quote.GardenSize,
		},
	})
	return quote, nil
}

// UpdateQuoteStatus sets the status of a quote. Any known status is
// accepted; moving backwards is logged but allowed.
func (s *QuoteService) UpdateQuoteStatus(ctx context.Context, id string, status domain.QuoteStatus) (*domain.Quote, error) {
	if !status.Valid() {
		return nil, apperrors.NewValidationError("invalid quote status", map[string]any{"status": status})
	}
	if err := s.latency.Wait(ctx, OpUpdate); err != nil {
		return nil, err
	}

	quote, previous, err := s.quotes.UpdateStatus(ctx, id, status)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NewNotFound("quote", map[string]any{"id": id})
		}
		return nil, err
	}
	if !previous.CanTransitionTo(status) {
		s.logger.Warn("quote status moved backwards",
			zap.String("quote_id", id),
			zap.String("from", string(previous)),
			zap.String("to", string(status)))
	}

	publishEvent(ctx, s.dispatcher, s.logger, events.Event{
		Type:     events.EventQuoteStatusChanged,
		RecordID: quote.ID,
		Payload: events.QuoteStatusChangedPayload{
			OldStatus: previous,
			NewStatus: status,
		},
	})
	return quote, nil
}
