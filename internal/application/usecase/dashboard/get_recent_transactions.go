package dashboard

import (
	"context"
	"fmt"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/domain/metrics"
)

// DefaultRecentLimit is how many transactions the feed shows when no limit is given.
const DefaultRecentLimit = 10

// MaxRecentLimit caps the feed length.
const MaxRecentLimit = 100

// GetRecentTransactionsInput represents the input for the activity feed.
type GetRecentTransactionsInput struct {
	Limit int
}

// GetRecentTransactionsOutput is the merged income/expense feed, newest first.
type GetRecentTransactionsOutput struct {
	Transactions []metrics.Transaction
}

// GetRecentTransactionsUseCase builds the recent activity feed.
type GetRecentTransactionsUseCase struct {
	snapshots adapter.SnapshotReader
}

// NewGetRecentTransactionsUseCase creates a new GetRecentTransactionsUseCase instance.
func NewGetRecentTransactionsUseCase(snapshots adapter.SnapshotReader) *GetRecentTransactionsUseCase {
	return &GetRecentTransactionsUseCase{
		snapshots: snapshots,
	}
}

// Execute merges expenses and income from one snapshot.
func (uc *GetRecentTransactionsUseCase) Execute(
	ctx context.Context,
	input GetRecentTransactionsInput,
) (*GetRecentTransactionsOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = DefaultRecentLimit
	}
	if limit > MaxRecentLimit {
		limit = MaxRecentLimit
	}

	snapshot, err := uc.snapshots.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get recent transactions: %w", err)
	}

	return &GetRecentTransactionsOutput{
		Transactions: metrics.RecentTransactions(snapshot.Expenses, snapshot.Income, limit),
	}, nil
}
