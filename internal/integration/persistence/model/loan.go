package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/ledger/internal/domain/entity"
)

// LoanModel represents the loans table in the database.
type LoanModel struct {
	Seq             uint64          `gorm:"primaryKey;autoIncrement"`
	ID              uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex"`
	Name            string          `gorm:"type:varchar(100);not null"`
	Description     string          `gorm:"type:text"`
	Amount          decimal.Decimal `gorm:"type:text;not null"`
	InterestRate    decimal.Decimal `gorm:"type:text;not null"`
	StartDate       time.Time       `gorm:"not null"`
	EndDate         time.Time       `gorm:"not null"`
	MonthlyPayment  decimal.Decimal `gorm:"type:text;not null"`
	Lender          string          `gorm:"type:varchar(100)"`
	ItemPurchased   string          `gorm:"type:varchar(100)"`
	RemainingAmount decimal.Decimal `gorm:"type:text;not null"`
	Status          string          `gorm:"type:varchar(20);not null;default:'active'"`
	CreatedAt       time.Time       `gorm:"not null"`
	UpdatedAt       time.Time       `gorm:"not null"`
}

// TableName returns the table name for the LoanModel.
func (LoanModel) TableName() string {
	return "loans"
}

// ToEntity converts a LoanModel to a domain Loan entity.
func (m *LoanModel) ToEntity() *entity.Loan {
	return &entity.Loan{
		ID:              m.ID,
		Name:            m.Name,
		Description:     m.Description,
		Amount:          m.Amount,
		InterestRate:    m.InterestRate,
		StartDate:       m.StartDate.UTC(),
		EndDate:         m.EndDate.UTC(),
		MonthlyPayment:  m.MonthlyPayment,
		Lender:          m.Lender,
		ItemPurchased:   m.ItemPurchased,
		RemainingAmount: m.RemainingAmount,
		Status:          entity.LoanStatus(m.Status),
		CreatedAt:       m.CreatedAt.UTC(),
		UpdatedAt:       m.UpdatedAt.UTC(),
	}
}

// LoanFromEntity creates a LoanModel from a domain Loan entity.
func LoanFromEntity(loan *entity.Loan) *LoanModel {
	return &LoanModel{
		ID:              loan.ID,
		Name:            loan.Name,
		Description:     loan.Description,
		Amount:          loan.Amount,
		InterestRate:    loan.InterestRate,
		StartDate:       loan.StartDate,
		EndDate:         loan.EndDate,
		MonthlyPayment:  loan.MonthlyPayment,
		Lender:          loan.Lender,
		ItemPurchased:   loan.ItemPurchased,
		RemainingAmount: loan.RemainingAmount,
		Status:          string(loan.Status),
		CreatedAt:       loan.CreatedAt,
		UpdatedAt:       loan.UpdatedAt,
	}
}
