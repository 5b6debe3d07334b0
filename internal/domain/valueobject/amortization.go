// Package valueobject contains domain value objects for the ledger.
package valueobject

import (
	"math"
	"time"

	"github.com/shopspring/decimal"

	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
)

// AverageDaysPerMonth is the month length used to turn a date range into a loan term.
// Month boundaries can make this differ from a calendar month count by one.
const AverageDaysPerMonth = 30.44

// AmortizationQuote summarizes a fixed-rate loan.
type AmortizationQuote struct {
	TermMonths     int
	MonthlyPayment decimal.Decimal
	TotalPayment   decimal.Decimal
	TotalInterest  decimal.Decimal
}

// TermMonths returns floor((end - start) / 30.44 days).
func TermMonths(start, end time.Time) (int, error) {
	days := end.Sub(start).Hours() / 24
	months := int(math.Floor(days / AverageDaysPerMonth))
	if months <= 0 {
		return 0, domainerror.NewLoanError(
			domainerror.ErrCodeInvalidTerm,
			"loan term must be at least one month",
			domainerror.ErrInvalidTerm,
		)
	}
	return months, nil
}

// MonthlyPayment returns the fixed payment that amortizes principal over months
// equal payments at annualRatePercent. The formula runs in float64 and only the
// result is rounded to cents.
func MonthlyPayment(principal decimal.Decimal, annualRatePercent float64, months int) (decimal.Decimal, error) {
	if !principal.IsPositive() {
		return decimal.Zero, domainerror.NewInvalidAmountError("amount")
	}
	if annualRatePercent < 0 {
		return decimal.Zero, domainerror.NewNegativeValueError("interest_rate")
	}
	if months <= 0 {
		return decimal.Zero, domainerror.NewLoanError(
			domainerror.ErrCodeInvalidTerm,
			"loan term must be at least one month",
			domainerror.ErrInvalidTerm,
		)
	}

	p := principal.InexactFloat64()
	if math.IsInf(p, 0) {
		return decimal.Zero, domainerror.NewOutOfRangeError("amount")
	}
	if math.IsInf(annualRatePercent, 0) || math.IsNaN(annualRatePercent) {
		return decimal.Zero, domainerror.NewOutOfRangeError("interest_rate")
	}

	r := annualRatePercent / 100 / 12
	n := float64(months)

	var payment float64
	factor := math.Pow(1+r, n)
	switch {
	case r == 0 || factor == 1:
		// Rates too small to move 1+r amortize like a zero rate.
		payment = p / n
	case math.IsInf(factor, 0):
		return decimal.Zero, domainerror.NewOutOfRangeError("interest_rate")
	default:
		payment = p * r * factor / (factor - 1)
	}

	if math.IsInf(payment, 0) || math.IsNaN(payment) {
		return decimal.Zero, domainerror.NewOutOfRangeError("amount")
	}

	return decimal.NewFromFloat(payment).Round(2), nil
}

// NewAmortizationQuote derives the term from the date range and prices the loan.
func NewAmortizationQuote(principal decimal.Decimal, annualRatePercent float64, start, end time.Time) (AmortizationQuote, error) {
	months, err := TermMonths(start, end)
	if err != nil {
		return AmortizationQuote{}, err
	}

	payment, err := MonthlyPayment(principal, annualRatePercent, months)
	if err != nil {
		return AmortizationQuote{}, err
	}

	total := payment.Mul(decimal.NewFromInt(int64(months)))
	return AmortizationQuote{
		TermMonths:     months,
		MonthlyPayment: payment,
		TotalPayment:   total,
		TotalInterest:  total.Sub(principal),
	}, nil
}
