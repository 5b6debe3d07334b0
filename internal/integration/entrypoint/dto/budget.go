package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/ledger/internal/application/usecase/budget"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	"github.com/finance-tracker/ledger/internal/domain/metrics"
)

// CreateBudgetRequest represents the request body for budget creation.
type CreateBudgetRequest struct {
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
	Period   string          `json:"period"`
}

// BudgetResponse represents a single budget in API responses.
type BudgetResponse struct {
	ID          string    `json:"id"`
	Category    string    `json:"category"`
	Amount      string    `json:"amount"`
	Spent       string    `json:"spent"`
	Remaining   string    `json:"remaining"`
	Utilization string    `json:"utilization"`
	OverBudget  bool      `json:"over_budget"`
	Period      string    `json:"period"`
	CreatedAt   time.Time `json:"created_at"`
}

// BudgetListResponse represents the response for listing budgets.
type BudgetListResponse struct {
	Budgets []BudgetResponse `json:"budgets"`
}

// ToBudgetResponse converts a domain Budget entity to a BudgetResponse DTO.
func ToBudgetResponse(b *entity.Budget) BudgetResponse {
	return BudgetResponse{
		ID:          b.ID.String(),
		Category:    string(b.Category),
		Amount:      Money(b.Amount),
		Spent:       Money(b.Spent),
		Remaining:   Money(b.Remaining()),
		Utilization: metrics.BudgetUtilization(b).StringFixed(4),
		OverBudget:  b.IsOverBudget(),
		Period:      string(b.Period),
		CreatedAt:   b.CreatedAt,
	}
}

// ToBudgetResponses converts budgets to BudgetResponse DTOs.
func ToBudgetResponses(budgets []*entity.Budget) []BudgetResponse {
	items := make([]BudgetResponse, len(budgets))
	for i, b := range budgets {
		items[i] = ToBudgetResponse(b)
	}
	return items
}

// ToBudgetListResponse converts listed budgets to a BudgetListResponse.
func ToBudgetListResponse(outputs []*budget.BudgetOutput) BudgetListResponse {
	items := make([]BudgetResponse, len(outputs))
	for i, output := range outputs {
		response := ToBudgetResponse(output.Budget)
		response.Utilization = output.Utilization.StringFixed(4)
		response.Remaining = Money(output.Remaining)
		response.OverBudget = output.OverBudget
		items[i] = response
	}
	return BudgetListResponse{Budgets: items}
}
