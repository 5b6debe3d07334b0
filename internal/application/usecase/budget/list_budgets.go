package budget

import (
	"context"
	"fmt"
	"slices"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	"github.com/finance-tracker/ledger/internal/domain/metrics"
)

// ListBudgetsInput represents the input for listing budgets.
type ListBudgetsInput struct {
	NewestFirst bool
}

// ListBudgetsOutput represents the output of listing budgets.
type ListBudgetsOutput struct {
	Budgets []*BudgetOutput
}

// BudgetOutput is a budget together with its derived figures.
type BudgetOutput struct {
	Budget      *entity.Budget
	Utilization decimal.Decimal // spent/amount, unclamped
	Remaining   decimal.Decimal
	OverBudget  bool
}

// ListBudgetsUseCase handles listing budgets.
type ListBudgetsUseCase struct {
	budgetRepo adapter.BudgetRepository
}

// NewListBudgetsUseCase creates a new ListBudgetsUseCase instance.
func NewListBudgetsUseCase(budgetRepo adapter.BudgetRepository) *ListBudgetsUseCase {
	return &ListBudgetsUseCase{
		budgetRepo: budgetRepo,
	}
}

// Execute returns every budget with its utilization.
func (uc *ListBudgetsUseCase) Execute(ctx context.Context, input ListBudgetsInput) (*ListBudgetsOutput, error) {
	budgets, err := uc.budgetRepo.ListBudgets(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list budgets: %w", err)
	}

	if input.NewestFirst {
		slices.Reverse(budgets)
	}

	outputs := make([]*BudgetOutput, len(budgets))
	for i, b := range budgets {
		outputs[i] = &BudgetOutput{
			Budget:      b,
			Utilization: metrics.BudgetUtilization(b),
			Remaining:   b.Remaining(),
			OverBudget:  b.IsOverBudget(),
		}
	}

	return &ListBudgetsOutput{Budgets: outputs}, nil
}
