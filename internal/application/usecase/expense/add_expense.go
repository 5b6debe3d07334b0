// Package expense contains expense-related use cases.
package expense

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/application/usecase/changes"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
)

// AddExpenseInput represents the input for recording an expense.
type AddExpenseInput struct {
	Amount        decimal.Decimal
	Category      entity.ExpenseCategory
	Description   string
	Date          time.Time
	PaymentMethod entity.PaymentMethod
	Notes         string
}

// AddExpenseOutput represents the output of recording an expense.
type AddExpenseOutput struct {
	Expense        *entity.Expense
	UpdatedBudgets []*entity.Budget
}

// AddExpenseUseCase records expenses and charges them to matching budgets.
type AddExpenseUseCase struct {
	expenseRepo adapter.ExpenseRepository
	notifier    adapter.ChangeNotifier
}

// NewAddExpenseUseCase creates a new AddExpenseUseCase instance.
func NewAddExpenseUseCase(expenseRepo adapter.ExpenseRepository, notifier adapter.ChangeNotifier) *AddExpenseUseCase {
	return &AddExpenseUseCase{
		expenseRepo: expenseRepo,
		notifier:    notifier,
	}
}

// Execute validates and records the expense. Every budget of the same category
// that exists at this moment has its spend increased in the same step.
func (uc *AddExpenseUseCase) Execute(ctx context.Context, input AddExpenseInput) (*AddExpenseOutput, error) {
	if err := validateAddExpenseInput(input); err != nil {
		return nil, err
	}

	expense := entity.NewExpense(
		input.Amount,
		input.Category,
		strings.TrimSpace(input.Description),
		input.Date,
		input.PaymentMethod,
		strings.TrimSpace(input.Notes),
	)

	budgets, err := uc.expenseRepo.CreateExpense(ctx, expense)
	if err != nil {
		return nil, fmt.Errorf("failed to create expense: %w", err)
	}

	slog.Debug("Expense recorded",
		"expense_id", expense.ID,
		"category", expense.Category,
		"budgets_updated", len(budgets),
	)

	events := []entity.ChangeEvent{entity.NewChangeEvent(entity.ChangeExpenseAdded, expense.ID)}
	for _, b := range budgets {
		events = append(events, entity.NewChangeEvent(entity.ChangeBudgetSpentUpdated, b.ID))
	}
	changes.Publish(ctx, uc.notifier, events...)

	return &AddExpenseOutput{
		Expense:        expense,
		UpdatedBudgets: budgets,
	}, nil
}

func validateAddExpenseInput(input AddExpenseInput) error {
	if !input.Amount.IsPositive() {
		return domainerror.NewInvalidAmountError("amount")
	}

	if !input.Category.IsValid() {
		return domainerror.NewInvalidEnumError("category", input.Category)
	}

	if strings.TrimSpace(input.Description) == "" {
		return domainerror.NewMissingFieldError("description")
	}

	if input.Date.IsZero() {
		return domainerror.NewMissingFieldError("date")
	}

	if !input.PaymentMethod.IsValid() {
		return domainerror.NewInvalidEnumError("payment_method", input.PaymentMethod)
	}

	return nil
}
