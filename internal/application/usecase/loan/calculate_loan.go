package loan

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/ledger/internal/domain/entity"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
	"github.com/finance-tracker/ledger/internal/domain/valueobject"
)

// CalculateLoanInput represents the input for a loan quote.
type CalculateLoanInput struct {
	Amount       decimal.Decimal
	InterestRate decimal.Decimal
	StartDate    time.Time
	EndDate      time.Time
}

// CalculateLoanOutput represents a loan quote.
type CalculateLoanOutput struct {
	Quote valueobject.AmortizationQuote
}

// CalculateLoanUseCase prices a loan without recording it.
type CalculateLoanUseCase struct{}

// NewCalculateLoanUseCase creates a new CalculateLoanUseCase instance.
func NewCalculateLoanUseCase() *CalculateLoanUseCase {
	return &CalculateLoanUseCase{}
}

// Execute returns the term, monthly payment, total paid and total interest.
func (uc *CalculateLoanUseCase) Execute(_ context.Context, input CalculateLoanInput) (*CalculateLoanOutput, error) {
	if input.StartDate.IsZero() {
		return nil, domainerror.NewMissingFieldError("start_date")
	}
	if input.EndDate.IsZero() {
		return nil, domainerror.NewMissingFieldError("end_date")
	}

	quote, err := valueobject.NewAmortizationQuote(
		input.Amount,
		input.InterestRate.InexactFloat64(),
		entity.NormalizeDate(input.StartDate),
		entity.NormalizeDate(input.EndDate),
	)
	if err != nil {
		return nil, err
	}

	return &CalculateLoanOutput{Quote: quote}, nil
}
