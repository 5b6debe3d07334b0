// Package loan contains loan-related use cases.
package loan

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
	"github.com/finance-tracker/ledger/internal/domain/valueobject"
)

// AddLoanInput represents the input for loan creation.
type AddLoanInput struct {
	Name          string
	Description   string
	Amount        decimal.Decimal
	InterestRate  decimal.Decimal
	StartDate     time.Time
	EndDate       time.Time
	Lender        string
	ItemPurchased string

	// MonthlyPayment, when set, is stored as given instead of being computed.
	MonthlyPayment *decimal.Decimal
}

// AddLoanOutput represents the output of loan creation.
type AddLoanOutput struct {
	Loan *entity.Loan
}

// AddLoanUseCase handles loan creation.
type AddLoanUseCase struct {
	loanRepo adapter.LoanRepository
	notifier adapter.ChangeNotifier
}

// NewAddLoanUseCase creates a new AddLoanUseCase instance.
func NewAddLoanUseCase(loanRepo adapter.LoanRepository, notifier adapter.ChangeNotifier) *AddLoanUseCase {
	return &AddLoanUseCase{
		loanRepo: loanRepo,
		notifier: notifier,
	}
}

// Execute validates the loan, prices it when no payment was supplied and stores it as active.
func (uc *AddLoanUseCase) Execute(ctx context.Context, input AddLoanInput) (*AddLoanOutput, error) {
	if err := validateAddLoanInput(input); err != nil {
		return nil, err
	}

	// Compute the payment unless one was supplied
	var monthlyPayment decimal.Decimal
	if input.MonthlyPayment != nil {
		monthlyPayment = *input.MonthlyPayment
	} else {
		quote, err := valueobject.NewAmortizationQuote(
			input.Amount,
			input.InterestRate.InexactFloat64(),
			entity.NormalizeDate(input.StartDate),
			entity.NormalizeDate(input.EndDate),
		)
		if err != nil {
			return nil, err
		}
		monthlyPayment = quote.MonthlyPayment
	}

	loan := entity.NewLoan(
		strings.TrimSpace(input.Name),
		strings.TrimSpace(input.Description),
		input.Amount,
		input.InterestRate,
		input.StartDate,
		input.EndDate,
		monthlyPayment,
		strings.TrimSpace(input.Lender),
		strings.TrimSpace(input.ItemPurchased),
	)

	if err := uc.loanRepo.CreateLoan(ctx, loan); err != nil {
		return nil, fmt.Errorf("failed to create loan: %w", err)
	}

	slog.Debug("Loan created",
		"loan_id", loan.ID,
		"monthly_payment", loan.MonthlyPayment.StringFixed(2),
	)
	changes.Publish(ctx, uc.notifier, entity.NewChangeEvent(entity.ChangeLoanAdded, loan.ID))

	return &AddLoanOutput{Loan: loan}, nil
}

func validateAddLoanInput(input AddLoanInput) error {
	if strings.TrimSpace(input.Name) == "" {
		return domainerror.NewMissingFieldError("name")
	}

	if !input.Amount.IsPositive() {
		return domainerror.NewInvalidAmountError("amount")
	}

	if input.InterestRate.IsNegative() {
		return domainerror.NewNegativeValueError("interest_rate")
	}

	if input.StartDate.IsZero() {
		return domainerror.NewMissingFieldError("start_date")
	}
	if input.EndDate.IsZero() {
		return domainerror.NewMissingFieldError("end_date")
	}

	if !entity.NormalizeDate(input.EndDate).After(entity.NormalizeDate(input.StartDate)) {
		return domainerror.NewLoanError(
			domainerror.ErrCodeInvalidTerm,
			"end_date must be after start_date",
			domainerror.ErrInvalidTerm,
		)
	}

	if input.MonthlyPayment != nil && !input.MonthlyPayment.IsPositive() {
		return domainerror.NewInvalidAmountError("monthly_payment")
	}

	return nil
}
