// Package metrics computes read-only figures derived from ledger contents.
// Every function is pure: it reads its arguments and never modifies them.
package metrics

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/ledger/internal/domain/entity"
)

var hundred = decimal.NewFromInt(100)

// TotalIncome sums every income amount.
func TotalIncome(income []*entity.Income) decimal.Decimal {
	total := decimal.Zero
	for _, i := range income {
		total = total.Add(i.Amount)
	}
	return total
}

// TotalExpenses sums every expense amount.
func TotalExpenses(expenses []*entity.Expense) decimal.Decimal {
	total := decimal.Zero
	for _, e := range expenses {
		total = total.Add(e.Amount)
	}
	return total
}

// NetBalance is total income minus total expenses.
func NetBalance(income []*entity.Income, expenses []*entity.Expense) decimal.Decimal {
	return TotalIncome(income).Sub(TotalExpenses(expenses))
}

// TotalInvestmentValue sums the current value of every investment.
func TotalInvestmentValue(investments []*entity.Investment) decimal.Decimal {
	total := decimal.Zero
	for _, i := range investments {
		total = total.Add(i.Value)
	}
	return total
}

// TotalInitialInvestment sums the amount originally invested.
func TotalInitialInvestment(investments []*entity.Investment) decimal.Decimal {
	total := decimal.Zero
	for _, i := range investments {
		total = total.Add(i.InitialInvestment)
	}
	return total
}

// TotalInvestmentReturn sums value minus initial investment over the portfolio.
func TotalInvestmentReturn(investments []*entity.Investment) decimal.Decimal {
	total := decimal.Zero
	for _, i := range investments {
		total = total.Add(i.Return())
	}
	return total
}

// TotalReturnPercent is the portfolio return as a percentage of the amount invested.
// It is 0 when nothing has been invested.
func TotalReturnPercent(investments []*entity.Investment) decimal.Decimal {
	initial := TotalInitialInvestment(investments)
	if initial.IsZero() {
		return decimal.Zero
	}
	return TotalInvestmentReturn(investments).Div(initial).Mul(hundred)
}

// TotalLoanRemaining sums the outstanding balance of every loan.
func TotalLoanRemaining(loans []*entity.Loan) decimal.Decimal {
	total := decimal.Zero
	for _, l := range loans {
		total = total.Add(l.RemainingAmount)
	}
	return total
}

// CategoryExpenseTotals maps each category that has expenses to their sum.
// Categories without expenses are absent from the result.
func CategoryExpenseTotals(expenses []*entity.Expense) map[entity.ExpenseCategory]decimal.Decimal {
	totals := make(map[entity.ExpenseCategory]decimal.Decimal)
	for _, e := range expenses {
		totals[e.Category] = totals[e.Category].Add(e.Amount)
	}
	return totals
}

// InvestmentAllocation maps each investment type held to the sum of its current value.
func InvestmentAllocation(investments []*entity.Investment) map[entity.InvestmentType]decimal.Decimal {
	allocation := make(map[entity.InvestmentType]decimal.Decimal)
	for _, i := range investments {
		allocation[i.Type] = allocation[i.Type].Add(i.Value)
	}
	return allocation
}

// BudgetUtilization is spent/amount. It is not clamped, so overspending yields a ratio above 1.
func BudgetUtilization(budget *entity.Budget) decimal.Decimal {
	if budget.Amount.IsZero() {
		return decimal.Zero
	}
	return budget.Spent.Div(budget.Amount)
}

// LoanProgress is the share of the principal already repaid, in [0, 1].
func LoanProgress(loan *entity.Loan) decimal.Decimal {
	if loan.Amount.IsZero() {
		return decimal.Zero
	}
	return loan.Amount.Sub(loan.RemainingAmount).Div(loan.Amount)
}

// TransactionKind distinguishes the two sides of the recent activity feed.
type TransactionKind string

const (
	TransactionKindExpense TransactionKind = "expense"
	TransactionKindIncome  TransactionKind = "income"
)

// Transaction is one entry of the combined income/expense feed.
// Amount is negative for expenses.
type Transaction struct {
	ID          string
	Kind        TransactionKind
	Description string
	Category    string
	Amount      decimal.Decimal
	Date        time.Time
	createdAt   time.Time
}

// RecentTransactions merges expenses and income, newest date first, and keeps at most limit entries.
// Entries sharing a date put the most recently recorded first. A limit of 0 or less keeps everything.
func RecentTransactions(expenses []*entity.Expense, income []*entity.Income, limit int) []Transaction {
	merged := make([]Transaction, 0, len(expenses)+len(income))
	for _, e := range expenses {
		merged = append(merged, Transaction{
			ID:          e.ID.String(),
			Kind:        TransactionKindExpense,
			Description: e.Description,
			Category:    string(e.Category),
			Amount:      e.Amount.Neg(),
			Date:        e.Date,
			createdAt:   e.CreatedAt,
		})
	}
	for _, i := range income {
		merged = append(merged, Transaction{
			ID:          i.ID.String(),
			Kind:        TransactionKindIncome,
			Description: string(i.Type) + " from " + i.Source,
			Category:    string(i.Type),
			Amount:      i.Amount,
			Date:        i.Date,
			createdAt:   i.CreatedAt,
		})
	}

	sort.SliceStable(merged, func(a, b int) bool {
		if !merged[a].Date.Equal(merged[b].Date) {
			return merged[a].Date.After(merged[b].Date)
		}
		return merged[a].createdAt.After(merged[b].createdAt)
	})

	if limit > 0 && len(merged) > limit {
		merged = merged[:limit]
	}
	return merged
}
