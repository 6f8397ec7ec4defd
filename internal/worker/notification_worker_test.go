package worker

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/spec-kit/greentouch-site/internal/events"
	mock_worker "github.com/spec-kit/greentouch-site/internal/worker/mocks"
)

func TestNotificationWorker_ProcessesPublishedEvents(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	handler := mock_worker.NewMockEventHandler(ctrl)

	// Handler failures are logged and do not stop the worker.
	handler.EXPECT().HandleEvent(gomock.Any(), gomock.Any()).Return(errors.New("ignored")).Times(3)

	w := NewNotificationWorker(handler, nil, 8, time.Second)
	dispatcher := events.NewInMemoryDispatcher()
	w.Register(dispatcher)
	w.Start(context.Background())

	for _, id := range []string{"a", "b", "c"} {
		if err := dispatcher.Publish(context.Background(), events.Event{ID: id, Type: events.EventQuoteRequested}); err != nil {
			t.Fatalf("publish: %v", err)
		}
	}
	w.Stop()
}

func TestNotificationWorker_QueueFull(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	w := NewNotificationWorker(mock_worker.NewMockEventHandler(ctrl), nil, 1, time.Second)

	if err := w.enqueue(context.Background(), events.Event{ID: "1"}); err != nil {
		t.Fatalf("first enqueue: %v", err)
	}
	if err := w.enqueue(context.Background(), events.Event{ID: "2"}); !errors.Is(err, ErrQueueFull) {
		t.Fatalf("expected ErrQueueFull, got %v", err)
	}
}

func TestNotificationWorker_RejectsAfterStop(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	w := NewNotificationWorker(mock_worker.NewMockEventHandler(ctrl), nil, 4, time.Second)
	w.Start(context.Background())
	w.Stop()
	w.Stop()

	if err := w.enqueue(context.Background(), events.Event{ID: "late"}); !errors.Is(err, ErrStopped) {
		t.Fatalf("expected ErrStopped, got %v", err)
	}
}
