package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/ledger/internal/domain/entity"
)

// IncomeModel represents the income table in the database.
type IncomeModel struct {
	Seq       uint64          `gorm:"primaryKey;autoIncrement"`
	ID        uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex"`
	Amount    decimal.Decimal `gorm:"type:text;not null"`
	Source    string          `gorm:"type:varchar(255);not null"`
	Type      string          `gorm:"type:varchar(30);not null"`
	Date      time.Time       `gorm:"not null"`
	Frequency string          `gorm:"type:varchar(20);not null"`
	CreatedAt time.Time       `gorm:"not null"`
}

// TableName returns the table name for the IncomeModel.
func (IncomeModel) TableName() string {
	return "income"
}

// ToEntity converts an IncomeModel to a domain Income entity.
func (m *IncomeModel) ToEntity() *entity.Income {
	return &entity.Income{
		ID:        m.ID,
		Amount:    m.Amount,
		Source:    m.Source,
		Type:      entity.IncomeType(m.Type),
		Date:      m.Date.UTC(),
		Frequency: entity.IncomeFrequency(m.Frequency),
		CreatedAt: m.CreatedAt.UTC(),
	}
}

// IncomeFromEntity creates an IncomeModel from a domain Income entity.
func IncomeFromEntity(income *entity.Income) *IncomeModel {
	return &IncomeModel{
		ID:        income.ID,
		Amount:    income.Amount,
		Source:    income.Source,
		Type:      string(income.Type),
		Date:      income.Date,
		Frequency: string(income.Frequency),
		CreatedAt: income.CreatedAt,
	}
}
