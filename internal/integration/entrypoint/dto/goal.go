package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/ledger/internal/application/usecase/goal"
	"github.com/finance-tracker/ledger/internal/domain/entity"
)

// CreateGoalRequest represents the request body for goal creation.
type CreateGoalRequest struct {
	Name         string          `json:"name"`
	Description  string          `json:"description,omitempty" binding:"max=500"`
	TargetAmount decimal.Decimal `json:"target_amount"`
	Type         string          `json:"type"`
	Deadline     string          `json:"deadline"`
}

// GoalResponse represents a single goal in API responses.
type GoalResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description,omitempty"`
	TargetAmount  string    `json:"target_amount"`
	CurrentAmount string    `json:"current_amount"`
	Progress      string    `json:"progress"`
	Type          string    `json:"type"`
	Deadline      string    `json:"deadline"`
	CreatedAt     time.Time `json:"created_at"`
}

// GoalListResponse represents the response for listing goals.
type GoalListResponse struct {
	Goals []GoalResponse `json:"goals"`
}

// ToGoalResponse converts a domain Goal entity to a GoalResponse DTO.
func ToGoalResponse(g *entity.Goal) GoalResponse {
	return GoalResponse{
		ID:            g.ID.String(),
		Name:          g.Name,
		Description:   g.Description,
		TargetAmount:  Money(g.TargetAmount),
		CurrentAmount: Money(g.CurrentAmount),
		Progress:      g.Progress().StringFixed(4),
		Type:          string(g.Type),
		Deadline:      Date(g.Deadline),
		CreatedAt:     g.CreatedAt,
	}
}

// ToGoalListResponse converts a list of GoalOutput to GoalListResponse.
func ToGoalListResponse(outputs []*goal.GoalOutput) GoalListResponse {
	goals := make([]GoalResponse, len(outputs))
	for i, output := range outputs {
		response := ToGoalResponse(output.Goal)
		response.Progress = output.Progress.StringFixed(4)
		goals[i] = response
	}
	return GoalListResponse{Goals: goals}
}
