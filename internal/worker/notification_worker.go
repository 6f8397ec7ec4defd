package worker

//go:generate mockgen -source=notification_worker.go -destination=mocks/mock_notification_worker.go -package=mock_worker

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/greentouch-site/internal/events"
)

// ErrQueueFull is returned when an event cannot be queued without blocking.
var ErrQueueFull = errors.New("notification queue full")

// ErrStopped is returned for events arriving after Stop.
var ErrStopped = errors.New("notification worker stopped")

const defaultQueueSize = 256

// EventHandler processes a single queued event.
type EventHandler interface {
	HandleEvent(ctx context.Context, event events.Event) error
}

// NotificationWorker moves event handling off the request path. Services
// publish synchronously; the worker only queues and returns.
type NotificationWorker struct {
	handler EventHandler
	logger  *zap.Logger
	queue   chan events.Event
	timeout time.Duration

	stopped atomic.Bool
	cancel  context.CancelFunc
	wg      sync.WaitGroup
}

// NewNotificationWorker builds a worker with the given queue size and
// per-event timeout.
func NewNotificationWorker(handler EventHandler, logger *zap.Logger, queueSize int, timeout time.Duration) *NotificationWorker {
	if queueSize <= 0 {
		queueSize = defaultQueueSize
	}
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &NotificationWorker{
		handler: handler,
		logger:  logger,
		queue:   make(chan events.Event, queueSize),
		timeout: timeout,
	}
}

// Register subscribes the worker to every site event.
func (w *NotificationWorker) Register(dispatcher events.Dispatcher) {
	if dispatcher == nil {
		return
	}
	for _, et := range events.AllEventTypes {
		dispatcher.Subscribe(et, w.enqueue)
	}
}

func (w *NotificationWorker) enqueue(_ context.Context, event events.Event) error {
	if w.stopped.Load() {
		return ErrStopped
	}
	select {
	case w.queue <- event:
		return nil
	default:
		return ErrQueueFull
	}
}

// Start launches the consumer goroutine.
func (w *NotificationWorker) Start(parent context.Context) {
	ctx, cancel := context.WithCancel(parent)
	w.cancel = cancel
	w.wg.Add(1)
	go w.run(ctx)
}

func (w *NotificationWorker) run(ctx context.Context) {
	defer w.wg.Done()
	for {
		select {
		case <-ctx.Done():
			w.drain()
			return
		case event := <-w.queue:
			w.process(event)
		}
	}
}

// drain handles whatever was queued before shutdown.
func (w *NotificationWorker) drain() {
	for {
		select {
		case event := <-w.queue:
			w.process(event)
		default:
			return
		}
	}
}

func (w *NotificationWorker) process(event events.Event) {
	ctx, cancel := context.WithTimeout(context.Background(), w.timeout)
	defer cancel()
	if err := w.handler.HandleEvent(ctx, event); err != nil {
		w.logger.Warn("notification handling failed",
			zap.String("event_id", event.ID),
			zap.String("event_type", string(event.Type)),
			zap.Error(err))
	}
}

// Stop refuses new events, processes the backlog and waits for the consumer.
func (w *NotificationWorker) Stop() {
	if !w.stopped.CompareAndSwap(false, true) {
		return
	}
	if w.cancel != nil {
		w.cancel()
	}
	w.wg.Wait()
}
