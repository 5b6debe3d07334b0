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

// AllocationSlice is the value held in one investment type.
type AllocationSlice struct {
	Type       entity.InvestmentType
	Value      decimal.Decimal
	Percentage decimal.Decimal
}

// GetInvestmentAllocationOutput is the portfolio split by type, largest first.
type GetInvestmentAllocationOutput struct {
	TotalValue decimal.Decimal
	Slices     []AllocationSlice
}

// GetInvestmentAllocationUseCase computes the portfolio split.
type GetInvestmentAllocationUseCase struct {
	investmentRepo adapter.InvestmentRepository
}

// NewGetInvestmentAllocationUseCase creates a new GetInvestmentAllocationUseCase instance.
func NewGetInvestmentAllocationUseCase(investmentRepo adapter.InvestmentRepository) *GetInvestmentAllocationUseCase {
	return &GetInvestmentAllocationUseCase{
		investmentRepo: investmentRepo,
	}
}

// Execute sums current value per investment type.
func (uc *GetInvestmentAllocationUseCase) Execute(ctx context.Context) (*GetInvestmentAllocationOutput, error) {
	investments, err := uc.investmentRepo.ListInvestments(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get investment allocation: %w", err)
	}

	total := metrics.TotalInvestmentValue(investments)
	allocation := metrics.InvestmentAllocation(investments)

	items := make([]AllocationSlice, 0, len(allocation))
	for investmentType, value := range allocation {
		slice := AllocationSlice{Type: investmentType, Value: value}
		if !total.IsZero() {
			slice.Percentage = value.Mul(decimal.NewFromInt(100)).Div(total).Round(2)
		}
		items = append(items, slice)
	}

	sort.Slice(items, func(i, j int) bool {
		if !items[i].Value.Equal(items[j].Value) {
			return items[i].Value.GreaterThan(items[j].Value)
		}
		return items[i].Type < items[j].Type
	})

	return &GetInvestmentAllocationOutput{
		TotalValue: total,
		Slices:     items,
	}, nil
}
