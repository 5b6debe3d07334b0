package entity

import (
	"time"

	"github.com/google/uuid"
)

// ChangeKind identifies what happened to the ledger.
type ChangeKind string

const (
	ChangeExpenseAdded       ChangeKind = "expense.added"
	ChangeIncomeAdded        ChangeKind = "income.added"
	ChangeBudgetAdded        ChangeKind = "budget.added"
	ChangeBudgetSpentUpdated ChangeKind = "budget.spent_updated"
	ChangeGoalAdded          ChangeKind = "goal.added"
	ChangeInvestmentAdded    ChangeKind = "investment.added"
	ChangeLoanAdded          ChangeKind = "loan.added"
	ChangeLoanPaymentApplied ChangeKind = "loan.payment_applied"
)

// ChangeEvent tells subscribers that the ledger state changed.
type ChangeEvent struct {
	Kind       ChangeKind `json:"kind"`
	EntityID   uuid.UUID  `json:"entity_id"`
	OccurredAt time.Time  `json:"occurred_at"`
}

// NewChangeEvent creates a ChangeEvent stamped with the current time.
func NewChangeEvent(kind ChangeKind, entityID uuid.UUID) ChangeEvent {
	return ChangeEvent{
		Kind:       kind,
		EntityID:   entityID,
		OccurredAt: time.Now().UTC(),
	}
}

// LedgerSnapshot is a consistent copy of every collection, in insertion order.
type LedgerSnapshot struct {
	Expenses    []*Expense
	Income      []*Income
	Budgets     []*Budget
	Goals       []*Goal
	Investments []*Investment
	Loans       []*Loan
}
