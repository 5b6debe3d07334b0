package dashboard

import (
	"context"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	"github.com/finance-tracker/ledger/internal/domain/metrics"
)

// CategoryTotal is the summed spending of one category.
type CategoryTotal struct {
	Category   entity.ExpenseCategory
	Amount     decimal.Decimal
	Percentage decimal.Decimal // share of total expenses, 0-100
}

// GetCategoryTotalsOutput lists only categories that have expenses, largest first.
type GetCategoryTotalsOutput struct {
	TotalExpenses decimal.Decimal
	Categories    []CategoryTotal
}

// GetCategoryTotalsUseCase computes spending per category.
type GetCategoryTotalsUseCase struct {
	expenseRepo adapter.ExpenseRepository
}

// NewGetCategoryTotalsUseCase creates a new GetCategoryTotalsUseCase instance.
func NewGetCategoryTotalsUseCase(expenseRepo adapter.ExpenseRepository) *GetCategoryTotalsUseCase {
	return &GetCategoryTotalsUseCase{
		expenseRepo: expenseRepo,
	}
}

// Execute sums expenses by category.
func (uc *GetCategoryTotalsUseCase) Execute(ctx context.Context) (*GetCategoryTotalsOutput, error) {
	expenses, err := uc.expenseRepo.ListExpenses(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get category totals: %w", err)
	}

	total := metrics.TotalExpenses(expenses)
	byCategory := metrics.CategoryExpenseTotals(expenses)

	categories := make([]CategoryTotal, 0, len(byCategory))
	for category, amount := range byCategory {
		item := CategoryTotal{Category: category, Amount: amount}
		if !total.IsZero() {
			item.Percentage = amount.Mul(decimal.NewFromInt(100)).Div(total).Round(2)
		}
		categories = append(categories, item)
	}

	// Largest first, ties by name so repeated calls agree
	sort.Slice(categories, func(i, j int) bool {
		if !categories[i].Amount.Equal(categories[j].Amount) {
			return categories[i].Amount.GreaterThan(categories[j].Amount)
		}
		return categories[i].Category < categories[j].Category
	})

	return &GetCategoryTotalsOutput{
		TotalExpenses: total,
		Categories:    categories,
	}, nil
}
