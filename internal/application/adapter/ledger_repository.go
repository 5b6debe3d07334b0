// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/finance-tracker/ledger/internal/domain/entity"
)

// ExpenseRepository defines the interface for expense persistence operations.
type ExpenseRepository interface {
	// CreateExpense inserts the expense and adds its amount to the spend of every
	// existing budget of the same category as one atomic step. It returns the
	// budgets it updated.
	CreateExpense(ctx context.Context, expense *entity.Expense) ([]*entity.Budget, error)

	// ListExpenses returns every expense in insertion order.
	ListExpenses(ctx context.Context) ([]*entity.Expense, error)
}

// IncomeRepository defines the interface for income persistence operations.
type IncomeRepository interface {
	CreateIncome(ctx context.Context, income *entity.Income) error
	ListIncome(ctx context.Context) ([]*entity.Income, error)
}

// BudgetRepository defines the interface for budget persistence operations.
// Budget spend is only ever changed through ExpenseRepository.CreateExpense.
type BudgetRepository interface {
	CreateBudget(ctx context.Context, budget *entity.Budget) error
	ListBudgets(ctx context.Context) ([]*entity.Budget, error)
}

// GoalRepository defines the interface for goal persistence operations.
type GoalRepository interface {
	CreateGoal(ctx context.Context, goal *entity.Goal) error
	ListGoals(ctx context.Context) ([]*entity.Goal, error)
}

// InvestmentRepository defines the interface for investment persistence operations.
type InvestmentRepository interface {
	CreateInvestment(ctx context.Context, investment *entity.Investment) error
	ListInvestments(ctx context.Context) ([]*entity.Investment, error)
}

// LoanRepository defines the interface for loan persistence operations.
type LoanRepository interface {
	// CreateLoan inserts a new loan.
	CreateLoan(ctx context.Context, loan *entity.Loan) error

	// FindLoanByID retrieves a loan by its ID.
	// Returns a LoanError wrapping ErrUnknownLoan when no loan has that ID.
	FindLoanByID(ctx context.Context, id uuid.UUID) (*entity.Loan, error)

	// UpdateLoan loads the loan, passes it to mutate and stores the result,
	// with no other write able to interleave. Nothing is stored if mutate fails.
	UpdateLoan(ctx context.Context, id uuid.UUID, mutate func(loan *entity.Loan) error) (*entity.Loan, error)

	// ListLoans returns every loan in insertion order.
	ListLoans(ctx context.Context) ([]*entity.Loan, error)
}

// SnapshotReader provides a consistent view across all collections.
type SnapshotReader interface {
	// Snapshot copies every collection at a single point between mutations.
	Snapshot(ctx context.Context) (*entity.LedgerSnapshot, error)
}

// LedgerStore owns all six collections. One instance is created per session
// and shared by every use case.
type LedgerStore interface {
	ExpenseRepository
	IncomeRepository
	BudgetRepository
	GoalRepository
	InvestmentRepository
	LoanRepository
	SnapshotReader

	// HealthCheck reports whether the store can serve requests.
	HealthCheck() bool

	// Close releases the store's resources.
	Close() error
}
