package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/spec-kit/greentouch-site/internal/config"
	"github.com/spec-kit/greentouch-site/internal/events"
	mock_service "github.com/spec-kit/greentouch-site/internal/service/mocks"
)

func TestNotificationService_ForwardsToSinks(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	journal := mock_service.NewMockEventJournal(ctrl)
	bus := mock_service.NewMockEventBus(ctrl)
	svc := NewNotificationService(journal, bus, nil, config.NotificationConfig{EmailFrom: "noreply@greentouch.com"})

	event := events.Event{ID: "e1", Type: events.EventQuoteRequested}
	gomock.InOrder(
		journal.EXPECT().Append(gomock.Any(), event).Return(nil),
		bus.EXPECT().Publish(gomock.Any(), event).Return(nil),
	)

	if err := svc.HandleEvent(context.Background(), event); err != nil {
		t.Fatalf("handle: %v", err)
	}
}

func TestNotificationService_JoinsSinkErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	journal := mock_service.NewMockEventJournal(ctrl)
	bus := mock_service.NewMockEventBus(ctrl)
	svc := NewNotificationService(journal, bus, nil, config.NotificationConfig{})

	journalErr := errors.New("journal down")
	busErr := errors.New("bus down")
	journal.EXPECT().Append(gomock.Any(), gomock.Any()).Return(journalErr)
	bus.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(busErr)

	err := svc.HandleEvent(context.Background(), events.Event{ID: "e2", Type: events.EventGalleryItemDeleted})
	if !errors.Is(err, journalErr) || !errors.Is(err, busErr) {
		t.Fatalf("expected both sink errors, got %v", err)
	}
}

func TestNotificationService_NilSinks(t *testing.T) {
	svc := NewNotificationService(nil, nil, nil, config.NotificationConfig{WebhookURL: "https://hooks.example.com"})
	if err := svc.HandleEvent(context.Background(), events.Event{ID: "e3", Type: events.EventTestimonialSubmitted}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestLatency(t *testing.T) {
	l := NewLatency(config.LatencyConfig{Enabled: true, Scale: 0.5})
	if got := l.Delay(OpLogin); got != defaultDelays[OpLogin]/2 {
		t.Fatalf("expected half login delay, got %v", got)
	}
	if got := NewLatency(config.LatencyConfig{Enabled: false, Scale: 1}).Delay(OpList); got != 0 {
		t.Fatalf("disabled latency should not delay, got %v", got)
	}
	var nilLatency *Latency
	if err := nilLatency.Wait(context.Background(), OpCreate); err != nil {
		t.Fatalf("nil latency wait: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := NoLatency().Wait(ctx, OpList); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected canceled, got %v", err)
	}
}
