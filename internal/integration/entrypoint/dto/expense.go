package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/ledger/internal/domain/entity"
)

// CreateExpenseRequest represents the request body for recording an expense.
type CreateExpenseRequest struct {
	Amount        decimal.Decimal `json:"amount"`
	Category      string          `json:"category"`
	Description   string          `json:"description" binding:"max=255"`
	Date          string          `json:"date"`
	PaymentMethod string          `json:"payment_method"`
	Notes         string          `json:"notes,omitempty" binding:"max=1000"`
}

// ExpenseResponse represents a single expense in API responses.
type ExpenseResponse struct {
	ID            string    `json:"id"`
	Amount        string    `json:"amount"`
	Category      string    `json:"category"`
	Description   string    `json:"description"`
	Date          string    `json:"date"`
	PaymentMethod string    `json:"payment_method"`
	Notes         string    `json:"notes,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// CreateExpenseResponse is the recorded expense and the budgets it counted against.
type CreateExpenseResponse struct {
	Expense        ExpenseResponse  `json:"expense"`
	UpdatedBudgets []BudgetResponse `json:"updated_budgets"`
}

// ExpenseListResponse represents the response for listing expenses.
type ExpenseListResponse struct {
	Expenses []ExpenseResponse `json:"expenses"`
}

// ToExpenseResponse converts a domain Expense entity to an ExpenseResponse DTO.
func ToExpenseResponse(e *entity.Expense) ExpenseResponse {
	return ExpenseResponse{
		ID:            e.ID.String(),
		Amount:        Money(e.Amount),
		Category:      string(e.Category),
		Description:   e.Description,
		Date:          Date(e.Date),
		PaymentMethod: string(e.PaymentMethod),
		Notes:         e.Notes,
		CreatedAt:     e.CreatedAt,
	}
}

// ToExpenseListResponse converts expenses to an ExpenseListResponse.
func ToExpenseListResponse(expenses []*entity.Expense) ExpenseListResponse {
	items := make([]ExpenseResponse, len(expenses))
	for i, e := range expenses {
		items[i] = ToExpenseResponse(e)
	}
	return ExpenseListResponse{Expenses: items}
}
