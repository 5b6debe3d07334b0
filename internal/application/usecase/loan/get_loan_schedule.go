package loan

import (
	"context"

	"github.com/google/uuid"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	"github.com/finance-tracker/ledger/internal/domain/valueobject"
)

// GetLoanScheduleInput represents the input for a repayment schedule.
type GetLoanScheduleInput struct {
	LoanID uuid.UUID
}

// GetLoanScheduleOutput represents a loan and its full repayment schedule.
type GetLoanScheduleOutput struct {
	Loan     *entity.Loan
	Schedule []valueobject.AmortizationPeriod
}

// GetLoanScheduleUseCase builds the amortization schedule of a stored loan.
type GetLoanScheduleUseCase struct {
	loanRepo adapter.LoanRepository
}

// NewGetLoanScheduleUseCase creates a new GetLoanScheduleUseCase instance.
func NewGetLoanScheduleUseCase(loanRepo adapter.LoanRepository) *GetLoanScheduleUseCase {
	return &GetLoanScheduleUseCase{
		loanRepo: loanRepo,
	}
}

// Execute lays out the original principal over the loan's term from its start date.
func (uc *GetLoanScheduleUseCase) Execute(ctx context.Context, input GetLoanScheduleInput) (*GetLoanScheduleOutput, error) {
	loan, err := uc.loanRepo.FindLoanByID(ctx, input.LoanID)
	if err != nil {
		return nil, err
	}

	months, err := valueobject.TermMonths(loan.StartDate, loan.EndDate)
	if err != nil {
		return nil, err
	}

	schedule, err := valueobject.AmortizationSchedule(loan.Amount, loan.InterestRate.InexactFloat64(), months, loan.StartDate)
	if err != nil {
		return nil, err
	}

	return &GetLoanScheduleOutput{
		Loan:     loan,
		Schedule: schedule,
	}, nil
}
