package notification

import (
	"context"
	"errors"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/domain/entity"
)

// Fanout delivers each event to every notifier in order.
type Fanout []adapter.ChangeNotifier

// NewFanout creates a Fanout, skipping nil notifiers.
func NewFanout(notifiers ...adapter.ChangeNotifier) Fanout {
	f := make(Fanout, 0, len(notifiers))
	for _, n := range notifiers {
		if n != nil {
			f = append(f, n)
		}
	}
	return f
}

// Notify implements adapter.ChangeNotifier. A failing notifier does not stop the rest.
func (f Fanout) Notify(ctx context.Context, event entity.ChangeEvent) error {
	var errs []error
	for _, n := range f {
		if err := n.Notify(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
