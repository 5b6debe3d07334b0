package investment

import (
	"context"
	"fmt"
	"slices"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/domain/entity"
)

// ListInvestmentsInput represents the input for listing investments.
type ListInvestmentsInput struct {
	NewestFirst bool
}

// ListInvestmentsOutput represents the output of listing investments.
type ListInvestmentsOutput struct {
	Investments []*InvestmentOutput
}

// InvestmentOutput is an investment with its realized return.
type InvestmentOutput struct {
	Investment    *entity.Investment
	Return        decimal.Decimal
	ReturnPercent decimal.Decimal
}

// ListInvestmentsUseCase handles listing investments.
type ListInvestmentsUseCase struct {
	investmentRepo adapter.InvestmentRepository
}

// NewListInvestmentsUseCase creates a new ListInvestmentsUseCase instance.
func NewListInvestmentsUseCase(investmentRepo adapter.InvestmentRepository) *ListInvestmentsUseCase {
	return &ListInvestmentsUseCase{
		investmentRepo: investmentRepo,
	}
}

// Execute returns every investment with its return figures.
func (uc *ListInvestmentsUseCase) Execute(ctx context.Context, input ListInvestmentsInput) (*ListInvestmentsOutput, error) {
	investments, err := uc.investmentRepo.ListInvestments(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list investments: %w", err)
	}

	if input.NewestFirst {
		slices.Reverse(investments)
	}

	outputs := make([]*InvestmentOutput, len(investments))
	for i, inv := range investments {
		outputs[i] = &InvestmentOutput{
			Investment:    inv,
			Return:        inv.Return(),
			ReturnPercent: inv.ReturnPercent(),
		}
	}

	return &ListInvestmentsOutput{Investments: outputs}, nil
}
