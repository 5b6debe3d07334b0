package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// GoalType represents the horizon of a savings goal.
type GoalType string

const (
	GoalTypeShortTerm GoalType = "short-term"
	GoalTypeLongTerm  GoalType = "long-term"
)

// IsValid reports whether t is one of the known goal types.
func (t GoalType) IsValid() bool {
	return t == GoalTypeShortTerm || t == GoalTypeLongTerm
}

// Goal represents a savings target.
type Goal struct {
	ID            uuid.UUID
	Name          string
	Description   string
	TargetAmount  decimal.Decimal
	CurrentAmount decimal.Decimal
	Type          GoalType
	Deadline      time.Time
	CreatedAt     time.Time
}

// NewGoal creates a new Goal entity with no progress.
func NewGoal(name, description string, targetAmount decimal.Decimal, goalType GoalType, deadline time.Time) *Goal {
	return &Goal{
		ID:            uuid.New(),
		Name:          name,
		Description:   description,
		TargetAmount:  targetAmount,
		CurrentAmount: decimal.Zero,
		Type:          goalType,
		Deadline:      NormalizeDate(deadline),
		CreatedAt:     time.Now().UTC(),
	}
}

// Progress returns CurrentAmount/TargetAmount as a ratio.
func (g *Goal) Progress() decimal.Decimal {
	if g.TargetAmount.IsZero() {
		return decimal.Zero
	}
	return g.CurrentAmount.Div(g.TargetAmount)
}
