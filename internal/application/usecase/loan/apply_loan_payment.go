package loan

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/application/usecase/changes"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
)

// ApplyLoanPaymentInput represents the input for a loan payment.
type ApplyLoanPaymentInput struct {
	LoanID uuid.UUID
	Amount decimal.Decimal
}

// ApplyLoanPaymentOutput represents the output of a loan payment.
type ApplyLoanPaymentOutput struct {
	Loan *entity.Loan
	// Applied is false when the loan was already paid and nothing changed.
	Applied bool
}

// ApplyLoanPaymentUseCase handles loan payments.
type ApplyLoanPaymentUseCase struct {
	loanRepo adapter.LoanRepository
	notifier adapter.ChangeNotifier
}

// NewApplyLoanPaymentUseCase creates a new ApplyLoanPaymentUseCase instance.
func NewApplyLoanPaymentUseCase(loanRepo adapter.LoanRepository, notifier adapter.ChangeNotifier) *ApplyLoanPaymentUseCase {
	return &ApplyLoanPaymentUseCase{
		loanRepo: loanRepo,
		notifier: notifier,
	}
}

// Execute lowers the outstanding balance, flooring it at zero and marking the loan paid once it gets there.
// Payments against a paid loan change nothing.
func (uc *ApplyLoanPaymentUseCase) Execute(ctx context.Context, input ApplyLoanPaymentInput) (*ApplyLoanPaymentOutput, error) {
	if !input.Amount.IsPositive() {
		return nil, domainerror.NewInvalidAmountError("amount")
	}

	applied := false
	loan, err := uc.loanRepo.UpdateLoan(ctx, input.LoanID, func(l *entity.Loan) error {
		applied = l.ApplyPayment(input.Amount)
		return nil
	})
	if err != nil {
		return nil, err
	}

	if !applied {
		slog.Debug("Payment ignored for paid loan", "loan_id", loan.ID)
		return &ApplyLoanPaymentOutput{Loan: loan, Applied: false}, nil
	}

	slog.Debug("Loan payment applied",
		"loan_id", loan.ID,
		"remaining", loan.RemainingAmount.String(),
		"status", loan.Status,
	)
	changes.Publish(ctx, uc.notifier, entity.NewChangeEvent(entity.ChangeLoanPaymentApplied, loan.ID))

	return &ApplyLoanPaymentOutput{Loan: loan, Applied: true}, nil
}
