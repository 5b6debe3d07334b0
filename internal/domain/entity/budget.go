package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BudgetPeriod is the period a budget limit applies to.
type BudgetPeriod string

const (
	BudgetPeriodWeekly    BudgetPeriod = "Weekly"
	BudgetPeriodMonthly   BudgetPeriod = "Monthly"
	BudgetPeriodQuarterly BudgetPeriod = "Quarterly"
	BudgetPeriodYearly    BudgetPeriod = "Yearly"
)

// IsValid reports whether p is one of the known periods.
func (p BudgetPeriod) IsValid() bool {
	switch p {
	case BudgetPeriodWeekly, BudgetPeriodMonthly, BudgetPeriodQuarterly, BudgetPeriodYearly:
		return true
	}
	return false
}

// Budget is a spending limit for one expense category.
// Spent only ever grows, and only when an expense of the same category is added.
type Budget struct {
	ID        uuid.UUID
	Category  ExpenseCategory
	Amount    decimal.Decimal
	Spent     decimal.Decimal
	Period    BudgetPeriod
	CreatedAt time.Time
}

// NewBudget creates a new Budget entity with nothing spent.
func NewBudget(category ExpenseCategory, amount decimal.Decimal, period BudgetPeriod) *Budget {
	return &Budget{
		ID:        uuid.New(),
		Category:  category,
		Amount:    amount,
		Spent:     decimal.Zero,
		Period:    period,
		CreatedAt: time.Now().UTC(),
	}
}

// Record adds an expense amount to the budget's running total.
func (b *Budget) Record(amount decimal.Decimal) {
	b.Spent = b.Spent.Add(amount)
}

// Remaining is the unspent part of the limit. It is negative when overspent.
func (b *Budget) Remaining() decimal.Decimal {
	return b.Amount.Sub(b.Spent)
}

// IsOverBudget reports whether spending exceeds the limit.
func (b *Budget) IsOverBudget() bool {
	return b.Spent.GreaterThan(b.Amount)
}
