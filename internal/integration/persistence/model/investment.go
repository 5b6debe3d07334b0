package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/ledger/internal/domain/entity"
)

// InvestmentModel represents the investments table in the database.
type InvestmentModel struct {
	Seq               uint64          `gorm:"primaryKey;autoIncrement"`
	ID                uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex"`
	Name              string          `gorm:"type:varchar(100);not null"`
	Type              string          `gorm:"type:varchar(30);not null;index"`
	Value             decimal.Decimal `gorm:"type:text;not null"`
	InitialInvestment decimal.Decimal `gorm:"type:text;not null"`
	PurchaseDate      time.Time       `gorm:"not null"`
	ReturnRate        decimal.Decimal `gorm:"type:text;not null"`
	Risk              string          `gorm:"type:varchar(10);not null"`
	CreatedAt         time.Time       `gorm:"not null"`
}

// TableName returns the table name for the InvestmentModel.
func (InvestmentModel) TableName() string {
	return "investments"
}

// ToEntity converts an InvestmentModel to a domain Investment entity.
func (m *InvestmentModel) ToEntity() *entity.Investment {
	return &entity.Investment{
		ID:                m.ID,
		Name:              m.Name,
		Type:              entity.InvestmentType(m.Type),
		Value:             m.Value,
		InitialInvestment: m.InitialInvestment,
		PurchaseDate:      m.PurchaseDate.UTC(),
		ReturnRate:        m.ReturnRate,
		Risk:              entity.RiskLevel(m.Risk),
		CreatedAt:         m.CreatedAt.UTC(),
	}
}

// InvestmentFromEntity creates an InvestmentModel from a domain Investment entity.
func InvestmentFromEntity(investment *entity.Investment) *InvestmentModel {
	return &InvestmentModel{
		ID:                investment.ID,
		Name:              investment.Name,
		Type:              string(investment.Type),
		Value:             investment.Value,
		InitialInvestment: investment.InitialInvestment,
		PurchaseDate:      investment.PurchaseDate,
		ReturnRate:        investment.ReturnRate,
		Risk:              string(investment.Risk),
		CreatedAt:         investment.CreatedAt,
	}
}
