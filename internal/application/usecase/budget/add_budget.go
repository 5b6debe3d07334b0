// Package budget contains budget-related use cases.
package budget

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/application/usecase/changes"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
)

// AddBudgetInput represents the input for budget creation.
type AddBudgetInput struct {
	Category entity.ExpenseCategory
	Amount   decimal.Decimal
	Period   entity.BudgetPeriod
}

// AddBudgetOutput represents the output of budget creation.
type AddBudgetOutput struct {
	Budget *entity.Budget
}

// AddBudgetUseCase handles budget creation.
type AddBudgetUseCase struct {
	budgetRepo adapter.BudgetRepository
	notifier   adapter.ChangeNotifier
}

// NewAddBudgetUseCase creates a new AddBudgetUseCase instance.
func NewAddBudgetUseCase(budgetRepo adapter.BudgetRepository, notifier adapter.ChangeNotifier) *AddBudgetUseCase {
	return &AddBudgetUseCase{
		budgetRepo: budgetRepo,
		notifier:   notifier,
	}
}

// Execute creates a budget with nothing spent. Expenses recorded earlier are not counted.
func (uc *AddBudgetUseCase) Execute(ctx context.Context, input AddBudgetInput) (*AddBudgetOutput, error) {
	// Validate category
	if !input.Category.IsValid() {
		return nil, domainerror.NewInvalidEnumError("category", input.Category)
	}

	// Validate limit
	if !input.Amount.IsPositive() {
		return nil, domainerror.NewInvalidAmountError("amount")
	}

	// Validate period
	if !input.Period.IsValid() {
		return nil, domainerror.NewInvalidEnumError("period", input.Period)
	}

	budget := entity.NewBudget(input.Category, input.Amount, input.Period)

	if err := uc.budgetRepo.CreateBudget(ctx, budget); err != nil {
		return nil, fmt.Errorf("failed to create budget: %w", err)
	}

	slog.Debug("Budget created", "budget_id", budget.ID, "category", budget.Category)
	changes.Publish(ctx, uc.notifier, entity.NewChangeEvent(entity.ChangeBudgetAdded, budget.ID))

	return &AddBudgetOutput{Budget: budget}, nil
}
