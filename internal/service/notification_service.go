package service

//go:generate mockgen -source=notification_service.go -destination=mocks/mock_notification_service.go -package=mock_service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/spec-kit/greentouch-site/internal/config"
	"github.com/spec-kit/greentouch-site/internal/events"
)

// EventJournal durably records emitted events.
type EventJournal interface {
	Append(ctx context.Context, event events.Event) error
}

// EventBus fans events out to external subscribers.
type EventBus interface {
	Publish(ctx context.Context, event events.Event) error
}

// NotificationService reacts to domain events: it notifies the business
// about new leads and forwards every event to the optional journal and bus.
type NotificationService struct {
	journal EventJournal
	bus     EventBus
	logger  *zap.Logger
	cfg     config.NotificationConfig
}

// NewNotificationService creates the service. journal and bus may be nil.
func NewNotificationService(journal EventJournal, bus EventBus, logger *zap.Logger, cfg config.NotificationConfig) *NotificationService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &NotificationService{
		journal: journal,
		bus:     bus,
		logger:  logger,
		cfg:     cfg,
	}
}

// HandleEvent processes one event.
func (n *NotificationService) HandleEvent(ctx context.Context, event events.Event) error {
	n.logger.Info("site event",
		zap.String("event_type", string(event.Type)),
		zap.String("record_id", event.RecordID),
		zap.Any("payload", event.Payload))

	if isLead(event.Type) {
		n.sendEmailNotificationStub(ctx, event)
	}
	n.sendWebhookNotificationStub(ctx, event)

	var errs []error
	if n.journal != nil {
		if err := n.journal.Append(ctx, event); err != nil {
			errs = append(errs, fmt.Errorf("journal %s: %w", event.ID, err))
		}
	}
	if n.bus != nil {
		if err := n.bus.Publish(ctx, event); err != nil {
			errs = append(errs, fmt.Errorf("bus %s: %w", event.ID, err))
		}
	}
	return errors.Join(errs...)
}

func isLead(t events.EventType) bool {
	switch t {
	case events.EventQuoteRequested, events.EventAppointmentRequested, events.EventTestimonialSubmitted:
		return true
	}
	return false
}

func (n *NotificationService) sendEmailNotificationStub(_ context.Context, event events.Event) {
	if strings.TrimSpace(n.cfg.EmailFrom) == "" {
		return
	}
	n.logger.Debug("sendEmailNotificationStub",
		zap.String("from", n.cfg.EmailFrom),
		zap.String("record_id", event.RecordID),
		zap.String("event_type", string(event.Type)))
}

func (n *NotificationService) sendWebhookNotificationStub(_ context.Context, event events.Event) {
	if strings.TrimSpace(n.cfg.WebhookURL) == "" {
		return
	}
	n.logger.Debug("sendWebhookNotificationStub",
		zap.String("url", n.cfg.WebhookURL),
		zap.String("record_id", event.RecordID),
		zap.String("event_type", string(event.Type)))
}
