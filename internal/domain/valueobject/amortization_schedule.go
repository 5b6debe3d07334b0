package valueobject

import (
	"time"

	"github.com/shopspring/decimal"
)

// AmortizationPeriod is one row of a repayment schedule.
type AmortizationPeriod struct {
	Number    int
	DueDate   time.Time
	Payment   decimal.Decimal
	Principal decimal.Decimal
	Interest  decimal.Decimal
	Balance   decimal.Decimal
}

// AmortizationSchedule lays out months payments of the fixed monthly amount.
// The final period absorbs cent rounding so the balance closes at exactly zero.
func AmortizationSchedule(
	principal decimal.Decimal,
	annualRatePercent float64,
	months int,
	startDate time.Time,
) ([]AmortizationPeriod, error) {
	payment, err := MonthlyPayment(principal, annualRatePercent, months)
	if err != nil {
		return nil, err
	}

	monthlyRate := decimal.NewFromFloat(annualRatePercent).Div(decimal.NewFromInt(1200))
	balance := principal
	schedule := make([]AmortizationPeriod, 0, months)

	for number := 1; number <= months; number++ {
		interest := balance.Mul(monthlyRate).Round(2)
		principalPart := payment.Sub(interest)
		due := payment

		if number == months || principalPart.GreaterThan(balance) {
			principalPart = balance
			due = principalPart.Add(interest)
		}

		balance = balance.Sub(principalPart)

		schedule = append(schedule, AmortizationPeriod{
			Number:    number,
			DueDate:   startDate.AddDate(0, number, 0),
			Payment:   due,
			Principal: principalPart,
			Interest:  interest,
			Balance:   balance,
		})

		if balance.IsZero() {
			break
		}
	}

	return schedule, nil
}
