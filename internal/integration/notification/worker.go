package notification

import (
	"context"
	"log/slog"
	"time"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
)

// Worker relays change events to a downstream notifier in the background,
// so use cases return before the downstream network call happens.
type Worker struct {
	downstream     adapter.ChangeNotifier
	queue          chan entity.ChangeEvent
	publishTimeout time.Duration
	done           chan struct{}
}

// WorkerConfig holds configuration for the relay worker.
type WorkerConfig struct {
	QueueSize      int
	PublishTimeout time.Duration
}

// DefaultWorkerConfig returns the default worker configuration.
func DefaultWorkerConfig() WorkerConfig {
	return WorkerConfig{
		QueueSize:      256,
		PublishTimeout: 2 * time.Second,
	}
}

// NewWorker creates a new relay worker.
func NewWorker(downstream adapter.ChangeNotifier, config WorkerConfig) *Worker {
	defaults := DefaultWorkerConfig()
	if config.QueueSize <= 0 {
		config.QueueSize = defaults.QueueSize
	}
	if config.PublishTimeout <= 0 {
		config.PublishTimeout = defaults.PublishTimeout
	}

	return &Worker{
		downstream:     downstream,
		queue:          make(chan entity.ChangeEvent, config.QueueSize),
		publishTimeout: config.PublishTimeout,
		done:           make(chan struct{}),
	}
}

// Notify queues the event. It fails with ErrQueueFull instead of blocking.
func (w *Worker) Notify(_ context.Context, event entity.ChangeEvent) error {
	select {
	case w.queue <- event:
		return nil
	default:
		return domainerror.NewNotificationError(
			domainerror.ErrCodeQueueFull,
			"dropping "+string(event.Kind),
			domainerror.ErrQueueFull,
		)
	}
}

// Start begins the worker loop. It blocks until the context is cancelled,
// then delivers whatever is still queued and returns.
func (w *Worker) Start(ctx context.Context) {
	defer close(w.done)

	slog.Info("Change relay started",
		"queue_size", cap(w.queue),
		"publish_timeout", w.publishTimeout,
	)

	for {
		select {
		case <-ctx.Done():
			w.drain()
			slog.Info("Change relay shutting down")
			return
		case event := <-w.queue:
			w.deliver(context.WithoutCancel(ctx), event)
		}
	}
}

// Done is closed once Start has returned.
func (w *Worker) Done() <-chan struct{} {
	return w.done
}

// Pending returns the number of queued events.
func (w *Worker) Pending() int {
	return len(w.queue)
}

func (w *Worker) drain() {
	for {
		select {
		case event := <-w.queue:
			w.deliver(context.Background(), event)
		default:
			return
		}
	}
}

// deliver publishes a single event.
func (w *Worker) deliver(ctx context.Context, event entity.ChangeEvent) {
	ctx, cancel := context.WithTimeout(ctx, w.publishTimeout)
	defer cancel()

	if err := w.downstream.Notify(ctx, event); err != nil {
		slog.Error("Failed to relay change event",
			"kind", event.Kind,
			"entity_id", event.EntityID,
			"error", err,
		)
		return
	}

	slog.Debug("Change event relayed", "kind", event.Kind, "entity_id", event.EntityID)
}
