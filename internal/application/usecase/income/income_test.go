package income

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/ledger/internal/application/usecase/changes"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
	"github.com/finance-tracker/ledger/internal/integration/persistence"
)

func salary(amount string, date time.Time) AddIncomeInput {
	return AddIncomeInput{
		Amount:    decimal.RequireFromString(amount),
		Source:    "  Acme Corp ",
		Type:      entity.IncomeTypeSalary,
		Date:      date,
		Frequency: entity.IncomeFrequencyMonthly,
	}
}

func TestAddIncomeUseCase(t *testing.T) {
	ctx := context.Background()
	store := persistence.NewMemoryLedgerStore()
	recorder := changes.NewRecorder(nil)
	uc := NewAddIncomeUseCase(store, recorder)

	output, err := uc.Execute(ctx, salary("3000", time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if output.Income.Source != "Acme Corp" {
		t.Errorf("expected trimmed source, got %q", output.Income.Source)
	}
	if !output.Income.Date.Equal(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("expected date normalized to midnight, got %s", output.Income.Date)
	}

	kinds := recorder.Kinds()
	if len(kinds) != 1 || kinds[0] != entity.ChangeIncomeAdded {
		t.Errorf("expected one %s event, got %v", entity.ChangeIncomeAdded, kinds)
	}
}

func TestAddIncomeUseCase_Validation(t *testing.T) {
	date := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		mutate func(*AddIncomeInput)
		field  string
		target error
	}{
		{name: "zero amount", mutate: func(in *AddIncomeInput) { in.Amount = decimal.Zero }, field: "amount", target: domainerror.ErrInvalidAmount},
		{name: "blank source", mutate: func(in *AddIncomeInput) { in.Source = "   " }, field: "source", target: domainerror.ErrMissingField},
		{name: "unknown type", mutate: func(in *AddIncomeInput) { in.Type = "Lottery" }, field: "type", target: domainerror.ErrInvalidEnum},
		{name: "unknown frequency", mutate: func(in *AddIncomeInput) { in.Frequency = "Hourly" }, field: "frequency", target: domainerror.ErrInvalidEnum},
		{name: "missing date", mutate: func(in *AddIncomeInput) { in.Date = time.Time{} }, field: "date", target: domainerror.ErrMissingField},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			store := persistence.NewMemoryLedgerStore()
			uc := NewAddIncomeUseCase(store, nil)

			input := salary("100", date)
			tt.mutate(&input)

			_, err := uc.Execute(ctx, input)
			if !errors.Is(err, tt.target) {
				t.Fatalf("expected %v, got %v", tt.target, err)
			}

			var validationErr *domainerror.ValidationError
			if !errors.As(err, &validationErr) || validationErr.Field != tt.field {
				t.Errorf("expected field %s, got %v", tt.field, err)
			}

			income, _ := store.ListIncome(ctx)
			if len(income) != 0 {
				t.Errorf("expected nothing stored, got %d entries", len(income))
			}
		})
	}
}

func TestListIncomeUseCase(t *testing.T) {
	ctx := context.Background()
	store := persistence.NewMemoryLedgerStore()
	add := NewAddIncomeUseCase(store, nil)

	for _, amount := range []string{"100", "200", "300"} {
		if _, err := add.Execute(ctx, salary(amount, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	tests := []struct {
		name        string
		newestFirst bool
		expected    []string
	}{
		{name: "insertion order", expected: []string{"100", "200", "300"}},
		{name: "newest first", newestFirst: true, expected: []string{"300", "200", "100"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output, err := NewListIncomeUseCase(store).Execute(ctx, ListIncomeInput{NewestFirst: tt.newestFirst})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(output.Income) != len(tt.expected) {
				t.Fatalf("expected %d entries, got %d", len(tt.expected), len(output.Income))
			}
			for i, expected := range tt.expected {
				if !output.Income[i].Amount.Equal(decimal.RequireFromString(expected)) {
					t.Errorf("position %d: expected %s, got %s", i, expected, output.Income[i].Amount)
				}
			}
		})
	}
}
