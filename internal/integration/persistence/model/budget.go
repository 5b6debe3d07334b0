package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/ledger/internal/domain/entity"
)

// BudgetModel represents the budgets table in the database.
type BudgetModel struct {
	Seq       uint64          `gorm:"primaryKey;autoIncrement"`
	ID        uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex"`
	Category  string          `gorm:"type:varchar(50);not null;index"`
	Amount    decimal.Decimal `gorm:"type:text;not null"`
	Spent     decimal.Decimal `gorm:"type:text;not null"`
	Period    string          `gorm:"type:varchar(20);not null"`
	CreatedAt time.Time       `gorm:"not null"`
}

// TableName returns the table name for the BudgetModel.
func (BudgetModel) TableName() string {
	return "budgets"
}

// ToEntity converts a BudgetModel to a domain Budget entity.
func (m *BudgetModel) ToEntity() *entity.Budget {
	return &entity.Budget{
		ID:        m.ID,
		Category:  entity.ExpenseCategory(m.Category),
		Amount:    m.Amount,
		Spent:     m.Spent,
		Period:    entity.BudgetPeriod(m.Period),
		CreatedAt: m.CreatedAt.UTC(),
	}
}

// BudgetFromEntity creates a BudgetModel from a domain Budget entity.
func BudgetFromEntity(budget *entity.Budget) *BudgetModel {
	return &BudgetModel{
		ID:        budget.ID,
		Category:  string(budget.Category),
		Amount:    budget.Amount,
		Spent:     budget.Spent,
		Period:    string(budget.Period),
		CreatedAt: budget.CreatedAt,
	}
}
