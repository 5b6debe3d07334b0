package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// IncomeType classifies where income comes from.
type IncomeType string

const (
	IncomeTypeSalary     IncomeType = "Salary"
	IncomeTypeFreelance  IncomeType = "Freelance"
	IncomeTypeBusiness   IncomeType = "Business"
	IncomeTypeInvestment IncomeType = "Investment"
	IncomeTypeRental     IncomeType = "Rental"
	IncomeTypeOther      IncomeType = "Other"
)

// IsValid reports whether t is one of the known income types.
func (t IncomeType) IsValid() bool {
	switch t {
	case IncomeTypeSalary, IncomeTypeFreelance, IncomeTypeBusiness,
		IncomeTypeInvestment, IncomeTypeRental, IncomeTypeOther:
		return true
	}
	return false
}

// IncomeFrequency is how often an income entry recurs.
type IncomeFrequency string

const (
	IncomeFrequencyOneTime   IncomeFrequency = "One-time"
	IncomeFrequencyWeekly    IncomeFrequency = "Weekly"
	IncomeFrequencyBiWeekly  IncomeFrequency = "Bi-weekly"
	IncomeFrequencyMonthly   IncomeFrequency = "Monthly"
	IncomeFrequencyQuarterly IncomeFrequency = "Quarterly"
	IncomeFrequencyYearly    IncomeFrequency = "Yearly"
)

// IsValid reports whether f is one of the known frequencies.
func (f IncomeFrequency) IsValid() bool {
	switch f {
	case IncomeFrequencyOneTime, IncomeFrequencyWeekly, IncomeFrequencyBiWeekly,
		IncomeFrequencyMonthly, IncomeFrequencyQuarterly, IncomeFrequencyYearly:
		return true
	}
	return false
}

// Income is a single recorded inflow. Income entries are immutable once created.
type Income struct {
	ID        uuid.UUID
	Amount    decimal.Decimal
	Source    string
	Type      IncomeType
	Date      time.Time
	Frequency IncomeFrequency
	CreatedAt time.Time
}

// NewIncome creates a new Income entity.
func NewIncome(amount decimal.Decimal, source string, incomeType IncomeType, date time.Time, frequency IncomeFrequency) *Income {
	return &Income{
		ID:        uuid.New(),
		Amount:    amount,
		Source:    source,
		Type:      incomeType,
		Date:      NormalizeDate(date),
		Frequency: frequency,
		CreatedAt: time.Now().UTC(),
	}
}
