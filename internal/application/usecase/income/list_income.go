package income

import (
	"context"
	"fmt"
	"slices"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/domain/entity"
)

// ListIncomeInput represents the input for listing income.
type ListIncomeInput struct {
	NewestFirst bool
}

// ListIncomeOutput represents the output of listing income.
type ListIncomeOutput struct {
	Income []*entity.Income
}

// ListIncomeUseCase handles listing income.
type ListIncomeUseCase struct {
	incomeRepo adapter.IncomeRepository
}

// NewListIncomeUseCase creates a new ListIncomeUseCase instance.
func NewListIncomeUseCase(incomeRepo adapter.IncomeRepository) *ListIncomeUseCase {
	return &ListIncomeUseCase{
		incomeRepo: incomeRepo,
	}
}

// Execute returns every income entry in insertion order, or newest first when asked.
func (uc *ListIncomeUseCase) Execute(ctx context.Context, input ListIncomeInput) (*ListIncomeOutput, error) {
	income, err := uc.incomeRepo.ListIncome(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list income: %w", err)
	}

	if input.NewestFirst {
		slices.Reverse(income)
	}

	return &ListIncomeOutput{Income: income}, nil
}
