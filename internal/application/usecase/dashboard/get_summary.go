// Package dashboard contains the read-only ledger overviews.
package dashboard

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/domain/metrics"
)

// GetSummaryInput represents the input for the ledger summary.
type GetSummaryInput struct{}

// GetSummaryOutput holds the headline totals of the ledger.
type GetSummaryOutput struct {
	TotalIncome           decimal.Decimal
	TotalExpenses         decimal.Decimal
	NetBalance            decimal.Decimal
	TotalInvestmentValue  decimal.Decimal
	TotalInvestmentReturn decimal.Decimal
	TotalReturnPercent    decimal.Decimal
	TotalLoanRemaining    decimal.Decimal
	ExpenseCount          int
	IncomeCount           int
	BudgetCount           int
	GoalCount             int
	InvestmentCount       int
	LoanCount             int
}

// GetSummaryUseCase computes the ledger totals.
type GetSummaryUseCase struct {
	snapshots adapter.SnapshotReader
}

// NewGetSummaryUseCase creates a new GetSummaryUseCase instance.
func NewGetSummaryUseCase(snapshots adapter.SnapshotReader) *GetSummaryUseCase {
	return &GetSummaryUseCase{
		snapshots: snapshots,
	}
}

// Execute reads one snapshot and derives every total from it.
func (uc *GetSummaryUseCase) Execute(ctx context.Context, _ GetSummaryInput) (*GetSummaryOutput, error) {
	snapshot, err := uc.snapshots.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get summary: %w", err)
	}

	return &GetSummaryOutput{
		TotalIncome:           metrics.TotalIncome(snapshot.Income),
		TotalExpenses:         metrics.TotalExpenses(snapshot.Expenses),
		NetBalance:            metrics.NetBalance(snapshot.Income, snapshot.Expenses),
		TotalInvestmentValue:  metrics.TotalInvestmentValue(snapshot.Investments),
		TotalInvestmentReturn: metrics.TotalInvestmentReturn(snapshot.Investments),
		TotalReturnPercent:    metrics.TotalReturnPercent(snapshot.Investments),
		TotalLoanRemaining:    metrics.TotalLoanRemaining(snapshot.Loans),
		ExpenseCount:          len(snapshot.Expenses),
		IncomeCount:           len(snapshot.Income),
		BudgetCount:           len(snapshot.Budgets),
		GoalCount:             len(snapshot.Goals),
		InvestmentCount:       len(snapshot.Investments),
		LoanCount:             len(snapshot.Loans),
	}, nil
}
