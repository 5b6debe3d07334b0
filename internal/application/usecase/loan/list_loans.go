package loan

import (
	"context"
	"fmt"
	"slices"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	"github.com/finance-tracker/ledger/internal/domain/metrics"
)

// ListLoansInput represents the input for listing loans.
type ListLoansInput struct {
	NewestFirst bool
}

// ListLoansOutput represents the output of listing loans.
type ListLoansOutput struct {
	Loans []*LoanOutput
}

// LoanOutput is a loan with its repayment progress.
type LoanOutput struct {
	Loan            *entity.Loan
	Progress        decimal.Decimal
	RemainingMonths int
}

// ListLoansUseCase handles listing loans.
type ListLoansUseCase struct {
	loanRepo adapter.LoanRepository
}

// NewListLoansUseCase creates a new ListLoansUseCase instance.
func NewListLoansUseCase(loanRepo adapter.LoanRepository) *ListLoansUseCase {
	return &ListLoansUseCase{
		loanRepo: loanRepo,
	}
}

// Execute returns every loan with its progress.
func (uc *ListLoansUseCase) Execute(ctx context.Context, input ListLoansInput) (*ListLoansOutput, error) {
	loans, err := uc.loanRepo.ListLoans(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list loans: %w", err)
	}

	if input.NewestFirst {
		slices.Reverse(loans)
	}

	outputs := make([]*LoanOutput, len(loans))
	for i, l := range loans {
		outputs[i] = &LoanOutput{
			Loan:            l,
			Progress:        metrics.LoanProgress(l),
			RemainingMonths: l.RemainingMonths(),
		}
	}

	return &ListLoansOutput{Loans: outputs}, nil
}
