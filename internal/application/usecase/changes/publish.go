// Package changes delivers ledger change events to the configured notifier.
package changes

import (
	"context"
	"log/slog"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/domain/entity"
)

// Publish hands every event to notifier. The mutation behind the events has
// already been committed, so delivery failures are logged and not returned.
func Publish(ctx context.Context, notifier adapter.ChangeNotifier, events ...entity.ChangeEvent) {
	if notifier == nil {
		return
	}

	for _, event := range events {
		if err := notifier.Notify(ctx, event); err != nil {
			slog.Warn("Failed to publish ledger change",
				"kind", event.Kind,
				"entity_id", event.EntityID,
				"error", err,
			)
		}
	}
}
