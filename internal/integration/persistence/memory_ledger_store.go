// Package persistence provides implementations of the ledger repositories.
package persistence

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/finance-tracker/ledger/internal/domain/entity"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
)

// MemoryLedgerStore keeps the ledger in process memory for the lifetime of the session.
// A single lock covers every collection: writers take it exclusively and readers
// share it, so a reader never sees an expense without its budget updates.
type MemoryLedgerStore struct {
	mu          sync.RWMutex
	expenses    []*entity.Expense
	income      []*entity.Income
	budgets     []*entity.Budget
	goals       []*entity.Goal
	investments []*entity.Investment
	loans       []*entity.Loan
	loanIndex   map[uuid.UUID]int
}

// NewMemoryLedgerStore creates an empty in-memory ledger.
func NewMemoryLedgerStore() *MemoryLedgerStore {
	return &MemoryLedgerStore{
		loanIndex: make(map[uuid.UUID]int),
	}
}

// CreateExpense inserts the expense and charges it to matching budgets under one lock.
func (s *MemoryLedgerStore) CreateExpense(_ context.Context, expense *entity.Expense) ([]*entity.Budget, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.expenses = append(s.expenses, copyOf(expense))

	var touched []*entity.Budget
	for _, budget := range s.budgets {
		if budget.Category != expense.Category {
			continue
		}
		budget.Record(expense.Amount)
		touched = append(touched, copyOf(budget))
	}

	return touched, nil
}

// ListExpenses returns every expense in insertion order.
func (s *MemoryLedgerStore) ListExpenses(_ context.Context) ([]*entity.Expense, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyAll(s.expenses), nil
}

// CreateIncome inserts an income entry.
func (s *MemoryLedgerStore) CreateIncome(_ context.Context, income *entity.Income) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.income = append(s.income, copyOf(income))
	return nil
}

// ListIncome returns every income entry in insertion order.
func (s *MemoryLedgerStore) ListIncome(_ context.Context) ([]*entity.Income, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyAll(s.income), nil
}

// CreateBudget inserts a budget.
func (s *MemoryLedgerStore) CreateBudget(_ context.Context, budget *entity.Budget) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.budgets = append(s.budgets, copyOf(budget))
	return nil
}

// ListBudgets returns every budget in insertion order.
func (s *MemoryLedgerStore) ListBudgets(_ context.Context) ([]*entity.Budget, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyAll(s.budgets), nil
}

// CreateGoal inserts a goal.
func (s *MemoryLedgerStore) CreateGoal(_ context.Context, goal *entity.Goal) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.goals = append(s.goals, copyOf(goal))
	return nil
}

// ListGoals returns every goal in insertion order.
func (s *MemoryLedgerStore) ListGoals(_ context.Context) ([]*entity.Goal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyAll(s.goals), nil
}

// CreateInvestment inserts an investment.
func (s *MemoryLedgerStore) CreateInvestment(_ context.Context, investment *entity.Investment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.investments = append(s.investments, copyOf(investment))
	return nil
}

// ListInvestments returns every investment in insertion order.
func (s *MemoryLedgerStore) ListInvestments(_ context.Context) ([]*entity.Investment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyAll(s.investments), nil
}

// CreateLoan inserts a loan.
func (s *MemoryLedgerStore) CreateLoan(_ context.Context, loan *entity.Loan) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loanIndex[loan.ID] = len(s.loans)
	s.loans = append(s.loans, copyOf(loan))
	return nil
}

// FindLoanByID retrieves a loan by its ID.
func (s *MemoryLedgerStore) FindLoanByID(_ context.Context, id uuid.UUID) (*entity.Loan, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx, ok := s.loanIndex[id]
	if !ok {
		return nil, unknownLoan(id)
	}
	return copyOf(s.loans[idx]), nil
}

// UpdateLoan applies mutate to a working copy and keeps it only if mutate succeeds.
func (s *MemoryLedgerStore) UpdateLoan(
	_ context.Context,
	id uuid.UUID,
	mutate func(loan *entity.Loan) error,
) (*entity.Loan, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx, ok := s.loanIndex[id]
	if !ok {
		return nil, unknownLoan(id)
	}

	working := copyOf(s.loans[idx])
	if err := mutate(working); err != nil {
		return nil, err
	}

	s.loans[idx] = working
	return copyOf(working), nil
}

// ListLoans returns every loan in insertion order.
func (s *MemoryLedgerStore) ListLoans(_ context.Context) ([]*entity.Loan, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyAll(s.loans), nil
}

// Snapshot copies every collection under one read lock.
func (s *MemoryLedgerStore) Snapshot(_ context.Context) (*entity.LedgerSnapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return &entity.LedgerSnapshot{
		Expenses:    copyAll(s.expenses),
		Income:      copyAll(s.income),
		Budgets:     copyAll(s.budgets),
		Goals:       copyAll(s.goals),
		Investments: copyAll(s.investments),
		Loans:       copyAll(s.loans),
	}, nil
}

// HealthCheck always succeeds for the in-memory store.
func (s *MemoryLedgerStore) HealthCheck() bool {
	return true
}

// Close drops every collection.
func (s *MemoryLedgerStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.expenses = nil
	s.income = nil
	s.budgets = nil
	s.goals = nil
	s.investments = nil
	s.loans = nil
	s.loanIndex = make(map[uuid.UUID]int)
	return nil
}

func copyOf[T any](item *T) *T {
	c := *item
	return &c
}

func copyAll[T any](items []*T) []*T {
	out := make([]*T, len(items))
	for i, item := range items {
		out[i] = copyOf(item)
	}
	return out
}

func unknownLoan(id uuid.UUID) error {
	return domainerror.NewLoanError(
		domainerror.ErrCodeUnknownLoan,
		"loan "+id.String()+" does not exist",
		domainerror.ErrUnknownLoan,
	)
}
