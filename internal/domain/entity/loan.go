package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LoanStatus represents where a loan is in its lifecycle.
type LoanStatus string

const (
	LoanStatusActive    LoanStatus = "active"
	LoanStatusPaid      LoanStatus = "paid"
	LoanStatusDefaulted LoanStatus = "defaulted"
)

// IsValid reports whether s is one of the known statuses.
func (s LoanStatus) IsValid() bool {
	return s == LoanStatusActive || s == LoanStatusPaid || s == LoanStatusDefaulted
}

// Loan is a fixed-rate amortizing loan.
// RemainingAmount never increases and never drops below zero; Status is paid exactly when it reaches zero.
type Loan struct {
	ID              uuid.UUID
	Name            string
	Description     string
	Amount          decimal.Decimal
	InterestRate    decimal.Decimal // annual, percent
	StartDate       time.Time
	EndDate         time.Time
	MonthlyPayment  decimal.Decimal
	Lender          string
	ItemPurchased   string
	RemainingAmount decimal.Decimal
	Status          LoanStatus
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// NewLoan creates a new active Loan with the full principal outstanding.
func NewLoan(
	name, description string,
	amount, interestRate decimal.Decimal,
	startDate, endDate time.Time,
	monthlyPayment decimal.Decimal,
	lender, itemPurchased string,
) *Loan {
	now := time.Now().UTC()

	return &Loan{
		ID:              uuid.New(),
		Name:            name,
		Description:     description,
		Amount:          amount,
		InterestRate:    interestRate,
		StartDate:       NormalizeDate(startDate),
		EndDate:         NormalizeDate(endDate),
		MonthlyPayment:  monthlyPayment,
		Lender:          lender,
		ItemPurchased:   itemPurchased,
		RemainingAmount: amount,
		Status:          LoanStatusActive,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

// ApplyPayment reduces the outstanding balance by payment, flooring at zero.
// Overpayment is absorbed. A paid loan is left untouched and false is returned.
func (l *Loan) ApplyPayment(payment decimal.Decimal) bool {
	if l.Status == LoanStatusPaid {
		return false
	}

	remaining := l.RemainingAmount.Sub(payment)
	if remaining.LessThanOrEqual(decimal.Zero) {
		remaining = decimal.Zero
	}

	l.RemainingAmount = remaining
	if remaining.IsZero() {
		l.Status = LoanStatusPaid
	}
	l.UpdatedAt = time.Now().UTC()
	return true
}

// RemainingMonths is the number of monthly payments still needed, 0 once paid.
func (l *Loan) RemainingMonths() int {
	if l.Status == LoanStatusPaid || l.RemainingAmount.IsZero() || !l.MonthlyPayment.IsPositive() {
		return 0
	}
	return int(l.RemainingAmount.Div(l.MonthlyPayment).Ceil().IntPart())
}
