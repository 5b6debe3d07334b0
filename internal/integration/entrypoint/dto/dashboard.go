package dto

import (
	"github.com/finance-tracker/ledger/internal/application/usecase/dashboard"
)

// SummaryResponse represents the ledger totals.
type SummaryResponse struct {
	TotalIncome           string `json:"total_income"`
	TotalExpenses         string `json:"total_expenses"`
	NetBalance            string `json:"net_balance"`
	TotalInvestmentValue  string `json:"total_investment_value"`
	TotalInvestmentReturn string `json:"total_investment_return"`
	TotalReturnPercent    string `json:"total_return_percent"`
	TotalLoanRemaining    string `json:"total_loan_remaining"`
	Counts                struct {
		Expenses    int `json:"expenses"`
		Income      int `json:"income"`
		Budgets     int `json:"budgets"`
		Goals       int `json:"goals"`
		Investments int `json:"investments"`
		Loans       int `json:"loans"`
	} `json:"counts"`
}

// CategoryTotalResponse represents spending in one category.
type CategoryTotalResponse struct {
	Category   string `json:"category"`
	Amount     string `json:"amount"`
	Percentage string `json:"percentage"`
}

// CategoryTotalsResponse represents spending per category.
type CategoryTotalsResponse struct {
	TotalExpenses string                  `json:"total_expenses"`
	Categories    []CategoryTotalResponse `json:"categories"`
}

// AllocationSliceResponse represents the value held in one investment type.
type AllocationSliceResponse struct {
	Type       string `json:"type"`
	Value      string `json:"value"`
	Percentage string `json:"percentage"`
}

// AllocationResponse represents the portfolio split.
type AllocationResponse struct {
	TotalValue string                    `json:"total_value"`
	Allocation []AllocationSliceResponse `json:"allocation"`
}

// TransactionResponse represents one entry of the activity feed.
type TransactionResponse struct {
	ID          string `json:"id"`
	Kind        string `json:"kind"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Amount      string `json:"amount"`
	Date        string `json:"date"`
}

// RecentTransactionsResponse represents the activity feed.
type RecentTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
}

// ToSummaryResponse converts summary output to a SummaryResponse DTO.
func ToSummaryResponse(output *dashboard.GetSummaryOutput) SummaryResponse {
	response := SummaryResponse{
		TotalIncome:           Money(output.TotalIncome),
		TotalExpenses:         Money(output.TotalExpenses),
		NetBalance:            Money(output.NetBalance),
		TotalInvestmentValue:  Money(output.TotalInvestmentValue),
		TotalInvestmentReturn: Money(output.TotalInvestmentReturn),
		TotalReturnPercent:    output.TotalReturnPercent.StringFixed(2),
		TotalLoanRemaining:    Money(output.TotalLoanRemaining),
	}
	response.Counts.Expenses = output.ExpenseCount
	response.Counts.Income = output.IncomeCount
	response.Counts.Budgets = output.BudgetCount
	response.Counts.Goals = output.GoalCount
	response.Counts.Investments = output.InvestmentCount
	response.Counts.Loans = output.LoanCount
	return response
}

// ToCategoryTotalsResponse converts category totals to a CategoryTotalsResponse DTO.
func ToCategoryTotalsResponse(output *dashboard.GetCategoryTotalsOutput) CategoryTotalsResponse {
	categories := make([]CategoryTotalResponse, len(output.Categories))
	for i, c := range output.Categories {
		categories[i] = CategoryTotalResponse{
			Category:   string(c.Category),
			Amount:     Money(c.Amount),
			Percentage: c.Percentage.StringFixed(2),
		}
	}
	return CategoryTotalsResponse{
		TotalExpenses: Money(output.TotalExpenses),
		Categories:    categories,
	}
}

// ToAllocationResponse converts the portfolio split to an AllocationResponse DTO.
func ToAllocationResponse(output *dashboard.GetInvestmentAllocationOutput) AllocationResponse {
	items := make([]AllocationSliceResponse, len(output.Slices))
	for i, s := range output.Slices {
		items[i] = AllocationSliceResponse{
			Type:       string(s.Type),
			Value:      Money(s.Value),
			Percentage: s.Percentage.StringFixed(2),
		}
	}
	return AllocationResponse{
		TotalValue: Money(output.TotalValue),
		Allocation: items,
	}
}

// ToRecentTransactionsResponse converts the activity feed to a RecentTransactionsResponse DTO.
func ToRecentTransactionsResponse(output *dashboard.GetRecentTransactionsOutput) RecentTransactionsResponse {
	items := make([]TransactionResponse, len(output.Transactions))
	for i, t := range output.Transactions {
		items[i] = TransactionResponse{
			ID:          t.ID,
			Kind:        string(t.Kind),
			Description: t.Description,
			Category:    t.Category,
			Amount:      Money(t.Amount),
			Date:        Date(t.Date),
		}
	}
	return RecentTransactionsResponse{Transactions: items}
}
