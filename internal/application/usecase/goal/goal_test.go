package goal

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/ledger/internal/application/usecase/changes"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
	"github.com/finance-tracker/ledger/internal/integration/persistence"
)

func emergencyFund() AddGoalInput {
	return AddGoalInput{
		Name:         "Emergency fund",
		Description:  "Six months of expenses",
		TargetAmount: decimal.NewFromInt(10000),
		Type:         entity.GoalTypeLongTerm,
		Deadline:     time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC),
	}
}

func TestAddGoalUseCase(t *testing.T) {
	ctx := context.Background()
	store := persistence.NewMemoryLedgerStore()
	recorder := changes.NewRecorder(nil)

	output, err := NewAddGoalUseCase(store, recorder).Execute(ctx, emergencyFund())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !output.Goal.CurrentAmount.IsZero() {
		t.Errorf("expected current amount 0, got %s", output.Goal.CurrentAmount)
	}
	if kinds := recorder.Kinds(); len(kinds) != 1 || kinds[0] != entity.ChangeGoalAdded {
		t.Errorf("expected one %s event, got %v", entity.ChangeGoalAdded, kinds)
	}
}

func TestAddGoalUseCase_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*AddGoalInput)
		target error
	}{
		{name: "blank name", mutate: func(in *AddGoalInput) { in.Name = " " }, target: domainerror.ErrMissingField},
		{name: "name too long", mutate: func(in *AddGoalInput) { in.Name = strings.Repeat("a", MaxGoalNameLength+1) }, target: domainerror.ErrInvalidRange},
		{name: "zero target", mutate: func(in *AddGoalInput) { in.TargetAmount = decimal.Zero }, target: domainerror.ErrInvalidAmount},
		{name: "unknown type", mutate: func(in *AddGoalInput) { in.Type = "mid-term" }, target: domainerror.ErrInvalidEnum},
		{name: "missing deadline", mutate: func(in *AddGoalInput) { in.Deadline = time.Time{} }, target: domainerror.ErrMissingField},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			store := persistence.NewMemoryLedgerStore()

			input := emergencyFund()
			tt.mutate(&input)

			if _, err := NewAddGoalUseCase(store, nil).Execute(ctx, input); !errors.Is(err, tt.target) {
				t.Fatalf("expected %v, got %v", tt.target, err)
			}

			goals, _ := store.ListGoals(ctx)
			if len(goals) != 0 {
				t.Errorf("expected no goal stored, got %d", len(goals))
			}
		})
	}
}

func TestListGoalsUseCase(t *testing.T) {
	ctx := context.Background()
	store := persistence.NewMemoryLedgerStore()

	if _, err := NewAddGoalUseCase(store, nil).Execute(ctx, emergencyFund()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	output, err := NewListGoalsUseCase(store).Execute(ctx, ListGoalsInput{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(output.Goals) != 1 {
		t.Fatalf("expected 1 goal, got %d", len(output.Goals))
	}
	if !output.Goals[0].Progress.IsZero() {
		t.Errorf("expected progress 0, got %s", output.Goals[0].Progress)
	}
}
