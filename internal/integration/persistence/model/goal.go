package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/ledger/internal/domain/entity"
)

// GoalModel represents the goals table in the database.
type GoalModel struct {
	Seq           uint64          `gorm:"primaryKey;autoIncrement"`
	ID            uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex"`
	Name          string          `gorm:"type:varchar(100);not null"`
	Description   string          `gorm:"type:text"`
	TargetAmount  decimal.Decimal `gorm:"type:text;not null"`
	CurrentAmount decimal.Decimal `gorm:"type:text;not null"`
	Type          string          `gorm:"type:varchar(20);not null"`
	Deadline      time.Time       `gorm:"not null"`
	CreatedAt     time.Time       `gorm:"not null"`
}

// TableName returns the table name for the GoalModel.
func (GoalModel) TableName() string {
	return "goals"
}

// ToEntity converts a GoalModel to a domain Goal entity.
func (m *GoalModel) ToEntity() *entity.Goal {
	return &entity.Goal{
		ID:            m.ID,
		Name:          m.Name,
		Description:   m.Description,
		TargetAmount:  m.TargetAmount,
		CurrentAmount: m.CurrentAmount,
		Type:          entity.GoalType(m.Type),
		Deadline:      m.Deadline.UTC(),
		CreatedAt:     m.CreatedAt.UTC(),
	}
}

// GoalFromEntity creates a GoalModel from a domain Goal entity.
func GoalFromEntity(goal *entity.Goal) *GoalModel {
	return &GoalModel{
		ID:            goal.ID,
		Name:          goal.Name,
		Description:   goal.Description,
		TargetAmount:  goal.TargetAmount,
		CurrentAmount: goal.CurrentAmount,
		Type:          string(goal.Type),
		Deadline:      goal.Deadline,
		CreatedAt:     goal.CreatedAt,
	}
}
