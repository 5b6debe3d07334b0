package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Expense is a single recorded outflow. Expenses are immutable once created.
type Expense struct {
	ID            uuid.UUID
	Amount        decimal.Decimal
	Category      ExpenseCategory
	Description   string
	Date          time.Time
	PaymentMethod PaymentMethod
	Notes         string
	CreatedAt     time.Time
}

// NewExpense creates a new Expense entity.
func NewExpense(
	amount decimal.Decimal,
	category ExpenseCategory,
	description string,
	date time.Time,
	paymentMethod PaymentMethod,
	notes string,
) *Expense {
	return &Expense{
		ID:            uuid.New(),
		Amount:        amount,
		Category:      category,
		Description:   description,
		Date:          NormalizeDate(date),
		PaymentMethod: paymentMethod,
		Notes:         notes,
		CreatedAt:     time.Now().UTC(),
	}
}
