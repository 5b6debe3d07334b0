package persistence

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/ledger/config"
	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
	"github.com/finance-tracker/ledger/internal/infra/db"
	"github.com/finance-tracker/ledger/internal/integration/persistence/model"
)

type storeFactory func(t *testing.T) adapter.LedgerStore

func newMemoryStore(t *testing.T) adapter.LedgerStore {
	store := NewMemoryLedgerStore()
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func newSQLStore(t *testing.T) adapter.LedgerStore {
	database, err := db.NewSQLiteConnection(&config.StoreConfig{Driver: config.StoreDriverSQLite, DSN: ":memory:"})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	if err := database.AutoMigrate(model.All()...); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	store := NewSQLLedgerStore(database.DB())
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func stores() map[string]storeFactory {
	return map[string]storeFactory{
		"memory": newMemoryStore,
		"sqlite": newSQLStore,
	}
}

func amount(value string) decimal.Decimal {
	return decimal.RequireFromString(value)
}

func day(value string) time.Time {
	t, _ := entity.ParseDate(value)
	return t
}

func groceries(value string) *entity.Expense {
	return entity.NewExpense(amount(value), entity.ExpenseCategoryGroceries, "Groceries", day("2024-03-01"), entity.PaymentMethodDebitCard, "")
}

func TestLedgerStore_CreateExpenseUpdatesMatchingBudgets(t *testing.T) {
	for name, newStore := range stores() {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			store := newStore(t)

			// An expense recorded before the budget exists is never counted.
			if _, err := store.CreateExpense(ctx, groceries("999")); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			groceryBudget := entity.NewBudget(entity.ExpenseCategoryGroceries, amount("500"), entity.BudgetPeriodMonthly)
			secondGroceryBudget := entity.NewBudget(entity.ExpenseCategoryGroceries, amount("300"), entity.BudgetPeriodWeekly)
			travelBudget := entity.NewBudget(entity.ExpenseCategoryTravel, amount("1000"), entity.BudgetPeriodYearly)
			for _, b := range []*entity.Budget{groceryBudget, secondGroceryBudget, travelBudget} {
				if err := store.CreateBudget(ctx, b); err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
			}

			touched, err := store.CreateExpense(ctx, groceries("120"))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(touched) != 2 {
				t.Fatalf("expected 2 budgets updated, got %d", len(touched))
			}
			if _, err := store.CreateExpense(ctx, groceries("80")); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			budgets, err := store.ListBudgets(ctx)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			expected := []string{"200", "200", "0"}
			for i, b := range budgets {
				if !b.Spent.Equal(amount(expected[i])) {
					t.Errorf("budget %d (%s): expected spent %s, got %s", i, b.Category, expected[i], b.Spent)
				}
			}
		})
	}
}

func TestLedgerStore_InsertionOrder(t *testing.T) {
	for name, newStore := range stores() {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			store := newStore(t)

			var ids []uuid.UUID
			for _, source := range []string{"first", "second", "third"} {
				income := entity.NewIncome(amount("10"), source, entity.IncomeTypeOther, day("2024-01-01"), entity.IncomeFrequencyOneTime)
				ids = append(ids, income.ID)
				if err := store.CreateIncome(ctx, income); err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
			}

			listed, err := store.ListIncome(ctx)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(listed) != len(ids) {
				t.Fatalf("expected %d entries, got %d", len(ids), len(listed))
			}
			for i := range ids {
				if listed[i].ID != ids[i] {
					t.Errorf("position %d: expected %s, got %s", i, ids[i], listed[i].ID)
				}
			}
		})
	}
}

func TestLedgerStore_KeepsFullPrecision(t *testing.T) {
	for name, newStore := range stores() {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			store := newStore(t)

			budget := entity.NewBudget(entity.ExpenseCategoryGroceries, amount("500.005"), entity.BudgetPeriodMonthly)
			if err := store.CreateBudget(ctx, budget); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			for _, value := range []string{"1234567890.123456789", "0.1", "0.2"} {
				if _, err := store.CreateExpense(ctx, groceries(value)); err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
			}

			expenses, err := store.ListExpenses(ctx)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !expenses[0].Amount.Equal(amount("1234567890.123456789")) {
				t.Errorf("expected amount 1234567890.123456789, got %s", expenses[0].Amount)
			}

			budgets, err := store.ListBudgets(ctx)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !budgets[0].Amount.Equal(amount("500.005")) {
				t.Errorf("expected budget amount 500.005, got %s", budgets[0].Amount)
			}
			if !budgets[0].Spent.Equal(amount("1234567890.423456789")) {
				t.Errorf("expected spent 1234567890.423456789, got %s", budgets[0].Spent)
			}

			loan := entity.NewLoan("Bike", "", amount("1500.987654321"), amount("4.125"), day("2024-01-01"), day("2025-01-01"), amount("128.123"), "Shop", "Bike")
			if err := store.CreateLoan(ctx, loan); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			found, err := store.FindLoanByID(ctx, loan.ID)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !found.RemainingAmount.Equal(amount("1500.987654321")) || !found.InterestRate.Equal(amount("4.125")) {
				t.Errorf("expected exact loan figures, got remaining %s rate %s", found.RemainingAmount, found.InterestRate)
			}
		})
	}
}

func TestLedgerStore_UpdateLoan(t *testing.T) {
	for name, newStore := range stores() {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			store := newStore(t)

			loan := entity.NewLoan("Car", "", amount("5000"), amount("5"), day("2024-01-01"), day("2025-01-01"), amount("428.04"), "Bank", "Car")
			if err := store.CreateLoan(ctx, loan); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			updated, err := store.UpdateLoan(ctx, loan.ID, func(l *entity.Loan) error {
				l.ApplyPayment(amount("500"))
				return nil
			})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !updated.RemainingAmount.Equal(amount("4500")) {
				t.Errorf("expected remaining 4500, got %s", updated.RemainingAmount)
			}

			t.Run("failed mutation stores nothing", func(t *testing.T) {
				failure := errors.New("boom")
				_, err := store.UpdateLoan(ctx, loan.ID, func(l *entity.Loan) error {
					l.ApplyPayment(amount("1000"))
					return failure
				})
				if !errors.Is(err, failure) {
					t.Fatalf("expected mutation error, got %v", err)
				}

				found, err := store.FindLoanByID(ctx, loan.ID)
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if !found.RemainingAmount.Equal(amount("4500")) {
					t.Errorf("expected remaining 4500, got %s", found.RemainingAmount)
				}
			})

			t.Run("unknown loan", func(t *testing.T) {
				_, err := store.UpdateLoan(ctx, uuid.New(), func(*entity.Loan) error { return nil })
				if !errors.Is(err, domainerror.ErrUnknownLoan) {
					t.Errorf("expected ErrUnknownLoan, got %v", err)
				}

				_, err = store.FindLoanByID(ctx, uuid.New())
				if !errors.Is(err, domainerror.ErrUnknownLoan) {
					t.Errorf("expected ErrUnknownLoan, got %v", err)
				}
			})
		})
	}
}

func TestLedgerStore_ReturnsCopies(t *testing.T) {
	for name, newStore := range stores() {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			store := newStore(t)

			budget := entity.NewBudget(entity.ExpenseCategoryShopping, amount("100"), entity.BudgetPeriodMonthly)
			if err := store.CreateBudget(ctx, budget); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			budget.Record(amount("50"))
			listed, _ := store.ListBudgets(ctx)
			listed[0].Record(amount("70"))

			again, _ := store.ListBudgets(ctx)
			if !again[0].Spent.IsZero() {
				t.Errorf("expected stored spend to stay 0, got %s", again[0].Spent)
			}
		})
	}
}

func TestLedgerStore_Snapshot(t *testing.T) {
	for name, newStore := range stores() {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			store := newStore(t)

			_ = store.CreateGoal(ctx, entity.NewGoal("Trip", "", amount("2000"), entity.GoalTypeShortTerm, day("2025-06-01")))
			_ = store.CreateInvestment(ctx, entity.NewInvestment("Fund", entity.InvestmentTypeETFs, amount("1100"), amount("1000"), day("2023-01-01"), amount("6.5"), entity.RiskLevelLow))
			_, _ = store.CreateExpense(ctx, groceries("12.34"))

			snapshot, err := store.Snapshot(ctx)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(snapshot.Goals) != 1 || len(snapshot.Investments) != 1 || len(snapshot.Expenses) != 1 {
				t.Fatalf("unexpected snapshot sizes: %d goals, %d investments, %d expenses",
					len(snapshot.Goals), len(snapshot.Investments), len(snapshot.Expenses))
			}
			if !snapshot.Expenses[0].Amount.Equal(amount("12.34")) {
				t.Errorf("expected amount 12.34, got %s", snapshot.Expenses[0].Amount)
			}
			if !snapshot.Investments[0].ReturnRate.Equal(amount("6.5")) {
				t.Errorf("expected return rate 6.5, got %s", snapshot.Investments[0].ReturnRate)
			}
			if !snapshot.Goals[0].Deadline.Equal(day("2025-06-01")) {
				t.Errorf("expected deadline 2025-06-01, got %s", snapshot.Goals[0].Deadline)
			}
			if !store.HealthCheck() {
				t.Error("expected store to be healthy")
			}
		})
	}
}

func TestMemoryLedgerStore_ConcurrentExpensesStayConsistent(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryLedgerStore()

	budget := entity.NewBudget(entity.ExpenseCategoryGroceries, amount("1000"), entity.BudgetPeriodMonthly)
	_ = store.CreateBudget(ctx, budget)

	const writers = 50
	var wg sync.WaitGroup
	stop := make(chan struct{})
	inconsistent := make(chan string, 1)

	// Readers check that every snapshot has the budget matching its expenses.
	var readers sync.WaitGroup
	for r := 0; r < 4; r++ {
		readers.Add(1)
		go func() {
			defer readers.Done()
			for {
				select {
				case <-stop:
					return
				default:
				}

				snapshot, _ := store.Snapshot(ctx)
				sum := decimal.Zero
				for _, e := range snapshot.Expenses {
					sum = sum.Add(e.Amount)
				}
				if !snapshot.Budgets[0].Spent.Equal(sum) {
					select {
					case inconsistent <- "spent " + snapshot.Budgets[0].Spent.String() + " vs expenses " + sum.String():
					default:
					}
				}
			}
		}()
	}

	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = store.CreateExpense(ctx, groceries("2.50"))
		}()
	}
	wg.Wait()
	close(stop)
	readers.Wait()

	select {
	case msg := <-inconsistent:
		t.Fatalf("reader observed a partial write: %s", msg)
	default:
	}

	budgets, _ := store.ListBudgets(ctx)
	if !budgets[0].Spent.Equal(amount("125")) {
		t.Errorf("expected spent 125, got %s", budgets[0].Spent)
	}
}
