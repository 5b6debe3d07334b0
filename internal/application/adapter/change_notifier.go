package adapter

import (
	"context"

	"github.com/finance-tracker/ledger/internal/domain/entity"
)

// ChangeNotifier is told about every committed ledger mutation.
type ChangeNotifier interface {
	Notify(ctx context.Context, event entity.ChangeEvent) error
}
