package goal

import (
	"context"
	"fmt"
	"slices"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/domain/entity"
)

// ListGoalsInput represents the input for listing goals.
type ListGoalsInput struct {
	NewestFirst bool
}

// ListGoalsOutput represents the output of listing goals.
type ListGoalsOutput struct {
	Goals []*GoalOutput
}

// GoalOutput represents a single goal in the output.
type GoalOutput struct {
	Goal     *entity.Goal
	Progress decimal.Decimal
}

// ListGoalsUseCase handles listing goals logic.
type ListGoalsUseCase struct {
	goalRepo adapter.GoalRepository
}

// NewListGoalsUseCase creates a new ListGoalsUseCase instance.
func NewListGoalsUseCase(goalRepo adapter.GoalRepository) *ListGoalsUseCase {
	return &ListGoalsUseCase{
		goalRepo: goalRepo,
	}
}

// Execute performs the goal listing.
func (uc *ListGoalsUseCase) Execute(ctx context.Context, input ListGoalsInput) (*ListGoalsOutput, error) {
	goals, err := uc.goalRepo.ListGoals(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list goals: %w", err)
	}

	if input.NewestFirst {
		slices.Reverse(goals)
	}

	outputs := make([]*GoalOutput, len(goals))
	for i, g := range goals {
		outputs[i] = &GoalOutput{
			Goal:     g,
			Progress: g.Progress(),
		}
	}

	return &ListGoalsOutput{Goals: outputs}, nil
}
