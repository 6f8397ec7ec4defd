package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/greentouch-site/internal/events"
	"github.com/spec-kit/greentouch-site/internal/repository"
)

// Dependencies bundles what the content services share.
type Dependencies struct {
	QuoteRepo       repository.QuoteRepository
	AppointmentRepo repository.AppointmentRepository
	TestimonialRepo repository.TestimonialRepository
	GalleryRepo     repository.GalleryRepository
	StatsRepo       repository.StatsRepository
	Dispatcher      events.Dispatcher
	Latency         *Latency
	Logger          *zap.Logger
}

// NewDependencies wires every repository over one store.
func NewDependencies(store *repository.Store, dispatcher events.Dispatcher, latency *Latency, logger *zap.Logger) Dependencies {
	return Dependencies{
		QuoteRepo:       repository.NewQuoteRepository(store),
		AppointmentRepo: repository.NewAppointmentRepository(store),
		TestimonialRepo: repository.NewTestimonialRepository(store),
		GalleryRepo:     repository.NewGalleryRepository(store),
		StatsRepo:       store,
		Dispatcher:      dispatcher,
		Latency:         latency,
		Logger:          logger,
	}
}

func (d Dependencies) logger() *zap.Logger {
	if d.Logger == nil {
		return zap.NewNop()
	}
	return d.Logger
}

// publishEvent fills in the event envelope and hands it to the dispatcher.
// Delivery failures are logged and never fail the caller's operation.
func publishEvent(ctx context.Context, dispatcher events.Dispatcher, logger *zap.Logger, event events.Event) {
	if dispatcher == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}
	if err := dispatcher.Publish(ctx, event); err != nil {
		logger.Warn("event delivery failed",
			zap.String("event_type", string(event.Type)),
			zap.String("record_id", event.RecordID),
			zap.Error(err))
	}
}
