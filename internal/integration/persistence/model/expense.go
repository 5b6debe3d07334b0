// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/ledger/internal/domain/entity"
)

// ExpenseModel represents the expenses table in the database.
// Seq records insertion order.
type ExpenseModel struct {
	Seq           uint64          `gorm:"primaryKey;autoIncrement"`
	ID            uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex"`
	Amount        decimal.Decimal `gorm:"type:text;not null"`
	Category      string          `gorm:"type:varchar(50);not null;index"`
	Description   string          `gorm:"type:varchar(255);not null"`
	Date          time.Time       `gorm:"not null"`
	PaymentMethod string          `gorm:"type:varchar(30);not null"`
	Notes         string          `gorm:"type:text"`
	CreatedAt     time.Time       `gorm:"not null"`
}

// TableName returns the table name for the ExpenseModel.
func (ExpenseModel) TableName() string {
	return "expenses"
}

// ToEntity converts an ExpenseModel to a domain Expense entity.
func (m *ExpenseModel) ToEntity() *entity.Expense {
	return &entity.Expense{
		ID:            m.ID,
		Amount:        m.Amount,
		Category:      entity.ExpenseCategory(m.Category),
		Description:   m.Description,
		Date:          m.Date.UTC(),
		PaymentMethod: entity.PaymentMethod(m.PaymentMethod),
		Notes:         m.Notes,
		CreatedAt:     m.CreatedAt.UTC(),
	}
}

// ExpenseFromEntity creates an ExpenseModel from a domain Expense entity.
func ExpenseFromEntity(expense *entity.Expense) *ExpenseModel {
	return &ExpenseModel{
		ID:            expense.ID,
		Amount:        expense.Amount,
		Category:      string(expense.Category),
		Description:   expense.Description,
		Date:          expense.Date,
		PaymentMethod: string(expense.PaymentMethod),
		Notes:         expense.Notes,
		CreatedAt:     expense.CreatedAt,
	}
}
