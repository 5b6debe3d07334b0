package expense

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/ledger/internal/application/usecase/changes"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
	"github.com/finance-tracker/ledger/internal/domain/metrics"
	"github.com/finance-tracker/ledger/internal/integration/persistence"
)

func validInput(category entity.ExpenseCategory, amount string) AddExpenseInput {
	return AddExpenseInput{
		Amount:        decimal.RequireFromString(amount),
		Category:      category,
		Description:   "Supermarket",
		Date:          time.Date(2024, 3, 1, 15, 30, 0, 0, time.UTC),
		PaymentMethod: entity.PaymentMethodDebitCard,
	}
}

func addBudget(t *testing.T, store *persistence.MemoryLedgerStore, category entity.ExpenseCategory, amount string) {
	t.Helper()
	b := entity.NewBudget(category, decimal.RequireFromString(amount), entity.BudgetPeriodMonthly)
	if err := store.CreateBudget(context.Background(), b); err != nil {
		t.Fatalf("failed to create budget: %v", err)
	}
}

func TestAddExpenseUseCase_GroceriesBudgetScenario(t *testing.T) {
	ctx := context.Background()
	store := persistence.NewMemoryLedgerStore()
	recorder := changes.NewRecorder(nil)
	uc := NewAddExpenseUseCase(store, recorder)

	addBudget(t, store, entity.ExpenseCategoryGroceries, "500")

	for _, amount := range []string{"120", "80"} {
		output, err := uc.Execute(ctx, validInput(entity.ExpenseCategoryGroceries, amount))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(output.UpdatedBudgets) != 1 {
			t.Errorf("expected 1 updated budget, got %d", len(output.UpdatedBudgets))
		}
	}

	budgets, _ := store.ListBudgets(ctx)
	if !budgets[0].Spent.Equal(decimal.NewFromInt(200)) {
		t.Errorf("expected spent 200, got %s", budgets[0].Spent)
	}
	if got := metrics.BudgetUtilization(budgets[0]); !got.Equal(decimal.RequireFromString("0.4")) {
		t.Errorf("expected utilization 0.4, got %s", got)
	}

	expectedKinds := []entity.ChangeKind{
		entity.ChangeExpenseAdded, entity.ChangeBudgetSpentUpdated,
		entity.ChangeExpenseAdded, entity.ChangeBudgetSpentUpdated,
	}
	kinds := recorder.Kinds()
	if len(kinds) != len(expectedKinds) {
		t.Fatalf("expected %d events, got %d", len(expectedKinds), len(kinds))
	}
	for i := range expectedKinds {
		if kinds[i] != expectedKinds[i] {
			t.Errorf("event %d: expected %s, got %s", i, expectedKinds[i], kinds[i])
		}
	}
}

func TestAddExpenseUseCase_BudgetAccumulation(t *testing.T) {
	ctx := context.Background()
	store := persistence.NewMemoryLedgerStore()
	uc := NewAddExpenseUseCase(store, nil)

	// Recorded before any budget exists
	if _, err := uc.Execute(ctx, validInput(entity.ExpenseCategoryTravel, "300")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	addBudget(t, store, entity.ExpenseCategoryTravel, "1000")
	if _, err := uc.Execute(ctx, validInput(entity.ExpenseCategoryTravel, "10.10")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	addBudget(t, store, entity.ExpenseCategoryTravel, "50")
	if _, err := uc.Execute(ctx, validInput(entity.ExpenseCategoryTravel, "5.05")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := uc.Execute(ctx, validInput(entity.ExpenseCategoryShopping, "99")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	budgets, _ := store.ListBudgets(ctx)
	if !budgets[0].Spent.Equal(decimal.RequireFromString("15.15")) {
		t.Errorf("expected first budget spent 15.15, got %s", budgets[0].Spent)
	}
	if !budgets[1].Spent.Equal(decimal.RequireFromString("5.05")) {
		t.Errorf("expected second budget spent 5.05, got %s", budgets[1].Spent)
	}
}

func TestAddExpenseUseCase_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*AddExpenseInput)
		field  string
		target error
	}{
		{
			name:   "zero amount",
			mutate: func(in *AddExpenseInput) { in.Amount = decimal.Zero },
			field:  "amount",
			target: domainerror.ErrInvalidAmount,
		},
		{
			name:   "negative amount",
			mutate: func(in *AddExpenseInput) { in.Amount = decimal.NewFromInt(-5) },
			field:  "amount",
			target: domainerror.ErrInvalidAmount,
		},
		{
			name:   "unknown category",
			mutate: func(in *AddExpenseInput) { in.Category = "Gambling" },
			field:  "category",
			target: domainerror.ErrInvalidEnum,
		},
		{
			name:   "blank description",
			mutate: func(in *AddExpenseInput) { in.Description = "   " },
			field:  "description",
			target: domainerror.ErrMissingField,
		},
		{
			name:   "missing date",
			mutate: func(in *AddExpenseInput) { in.Date = time.Time{} },
			field:  "date",
			target: domainerror.ErrMissingField,
		},
		{
			name:   "unknown payment method",
			mutate: func(in *AddExpenseInput) { in.PaymentMethod = "Cheque" },
			field:  "payment_method",
			target: domainerror.ErrInvalidEnum,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			store := persistence.NewMemoryLedgerStore()
			addBudget(t, store, entity.ExpenseCategoryGroceries, "500")
			uc := NewAddExpenseUseCase(store, nil)

			input := validInput(entity.ExpenseCategoryGroceries, "25")
			tt.mutate(&input)

			_, err := uc.Execute(ctx, input)
			if !errors.Is(err, tt.target) {
				t.Fatalf("expected %v, got %v", tt.target, err)
			}

			var validationErr *domainerror.ValidationError
			if !errors.As(err, &validationErr) {
				t.Fatalf("expected ValidationError, got %T", err)
			}
			if validationErr.Field != tt.field {
				t.Errorf("expected field %s, got %s", tt.field, validationErr.Field)
			}

			// Nothing is written when validation fails
			expenses, _ := store.ListExpenses(ctx)
			if len(expenses) != 0 {
				t.Errorf("expected no expenses, got %d", len(expenses))
			}
			budgets, _ := store.ListBudgets(ctx)
			if !budgets[0].Spent.IsZero() {
				t.Errorf("expected budget untouched, got spent %s", budgets[0].Spent)
			}
		})
	}
}

func TestAddExpenseUseCase_NotifierFailureDoesNotFailMutation(t *testing.T) {
	ctx := context.Background()
	store := persistence.NewMemoryLedgerStore()
	uc := NewAddExpenseUseCase(store, changes.NewRecorder(errors.New("broker down")))

	output, err := uc.Execute(ctx, validInput(entity.ExpenseCategoryOther, "1"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !output.Expense.Date.Equal(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("expected date truncated to the day, got %s", output.Expense.Date)
	}
}

func TestListExpensesUseCase_Order(t *testing.T) {
	ctx := context.Background()
	store := persistence.NewMemoryLedgerStore()
	add := NewAddExpenseUseCase(store, nil)
	list := NewListExpensesUseCase(store)

	var ids []string
	for _, amount := range []string{"1", "2", "3"} {
		output, err := add.Execute(ctx, validInput(entity.ExpenseCategoryOther, amount))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		ids = append(ids, output.Expense.ID.String())
	}

	tests := []struct {
		name        string
		newestFirst bool
		expected    []string
	}{
		{name: "insertion order", newestFirst: false, expected: ids},
		{name: "newest first", newestFirst: true, expected: []string{ids[2], ids[1], ids[0]}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output, err := list.Execute(ctx, ListExpensesInput{NewestFirst: tt.newestFirst})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			for i, e := range output.Expenses {
				if e.ID.String() != tt.expected[i] {
					t.Errorf("position %d: expected %s, got %s", i, tt.expected[i], e.ID)
				}
			}
		})
	}
}
