package changes

import (
	"context"
	"sync"

	"github.com/finance-tracker/ledger/internal/domain/entity"
)

// Recorder is a ChangeNotifier that keeps every event it receives.
// Use cases are tested against it.
type Recorder struct {
	mu     sync.Mutex
	events []entity.ChangeEvent
	err    error
}

// NewRecorder creates an empty Recorder. If err is non-nil every Notify call returns it.
func NewRecorder(err error) *Recorder {
	return &Recorder{err: err}
}

// Notify records the event.
func (r *Recorder) Notify(_ context.Context, event entity.ChangeEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
	return r.err
}

// Kinds returns the kinds of recorded events in order.
func (r *Recorder) Kinds() []entity.ChangeKind {
	r.mu.Lock()
	defer r.mu.Unlock()

	kinds := make([]entity.ChangeKind, len(r.events))
	for i, e := range r.events {
		kinds[i] = e.Kind
	}
	return kinds
}
