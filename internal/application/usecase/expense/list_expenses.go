package expense

import (
	"context"
	"fmt"
	"slices"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/domain/entity"
)

// ListExpensesInput represents the input for listing expenses.
type ListExpensesInput struct {
	// NewestFirst reverses the canonical insertion order.
	NewestFirst bool
}

// ListExpensesOutput represents the output of listing expenses.
type ListExpensesOutput struct {
	Expenses []*entity.Expense
}

// ListExpensesUseCase handles listing expenses.
type ListExpensesUseCase struct {
	expenseRepo adapter.ExpenseRepository
}

// NewListExpensesUseCase creates a new ListExpensesUseCase instance.
func NewListExpensesUseCase(expenseRepo adapter.ExpenseRepository) *ListExpensesUseCase {
	return &ListExpensesUseCase{
		expenseRepo: expenseRepo,
	}
}

// Execute returns every expense in insertion order, or newest first when asked.
func (uc *ListExpensesUseCase) Execute(ctx context.Context, input ListExpensesInput) (*ListExpensesOutput, error) {
	expenses, err := uc.expenseRepo.ListExpenses(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}

	if input.NewestFirst {
		slices.Reverse(expenses)
	}

	return &ListExpensesOutput{Expenses: expenses}, nil
}
