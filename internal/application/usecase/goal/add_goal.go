// Package goal contains goal-related use cases.
package goal

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/application/usecase/changes"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
)

// MaxGoalNameLength is the maximum allowed length for goal names.
const MaxGoalNameLength = 100

// AddGoalInput represents the input for goal creation.
type AddGoalInput struct {
	Name         string
	Description  string
	TargetAmount decimal.Decimal
	Type         entity.GoalType
	Deadline     time.Time
}

// AddGoalOutput represents the output of goal creation.
type AddGoalOutput struct {
	Goal *entity.Goal
}

// AddGoalUseCase handles goal creation logic.
type AddGoalUseCase struct {
	goalRepo adapter.GoalRepository
	notifier adapter.ChangeNotifier
}

// NewAddGoalUseCase creates a new AddGoalUseCase instance.
func NewAddGoalUseCase(goalRepo adapter.GoalRepository, notifier adapter.ChangeNotifier) *AddGoalUseCase {
	return &AddGoalUseCase{
		goalRepo: goalRepo,
		notifier: notifier,
	}
}

// Execute performs the goal creation.
func (uc *AddGoalUseCase) Execute(ctx context.Context, input AddGoalInput) (*AddGoalOutput, error) {
	// Validate name
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerror.NewMissingFieldError("name")
	}
	if len(name) > MaxGoalNameLength {
		return nil, domainerror.NewValidationError(
			domainerror.ErrCodeInvalidRange,
			"name",
			fmt.Sprintf("name must not exceed %d characters", MaxGoalNameLength),
			domainerror.ErrInvalidRange,
		)
	}

	// Validate target
	if !input.TargetAmount.IsPositive() {
		return nil, domainerror.NewInvalidAmountError("target_amount")
	}

	// Validate goal type
	if !input.Type.IsValid() {
		return nil, domainerror.NewInvalidEnumError("type", input.Type)
	}

	// Validate deadline
	if input.Deadline.IsZero() {
		return nil, domainerror.NewMissingFieldError("deadline")
	}

	goal := entity.NewGoal(name, strings.TrimSpace(input.Description), input.TargetAmount, input.Type, input.Deadline)

	if err := uc.goalRepo.CreateGoal(ctx, goal); err != nil {
		return nil, fmt.Errorf("failed to create goal: %w", err)
	}

	slog.Debug("Goal created", "goal_id", goal.ID, "type", goal.Type)
	changes.Publish(ctx, uc.notifier, entity.NewChangeEvent(entity.ChangeGoalAdded, goal.ID))

	return &AddGoalOutput{Goal: goal}, nil
}
