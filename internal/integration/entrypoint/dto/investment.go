package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/ledger/internal/application/usecase/investment"
	"github.com/finance-tracker/ledger/internal/domain/entity"
)

// CreateInvestmentRequest represents the request body for recording an investment.
type CreateInvestmentRequest struct {
	Name              string          `json:"name"`
	Type              string          `json:"type"`
	Value             decimal.Decimal `json:"value"`
	InitialInvestment decimal.Decimal `json:"initial_investment"`
	PurchaseDate      string          `json:"purchase_date"`
	ReturnRate        decimal.Decimal `json:"return_rate"`
	Risk              string          `json:"risk"`
}

// InvestmentResponse represents a single investment in API responses.
type InvestmentResponse struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	Type              string    `json:"type"`
	Value             string    `json:"value"`
	InitialInvestment string    `json:"initial_investment"`
	Return            string    `json:"return"`
	ReturnPercent     string    `json:"return_percent"`
	PurchaseDate      string    `json:"purchase_date"`
	ReturnRate        string    `json:"return_rate"`
	Risk              string    `json:"risk"`
	CreatedAt         time.Time `json:"created_at"`
}

// InvestmentListResponse represents the response for listing investments.
type InvestmentListResponse struct {
	Investments []InvestmentResponse `json:"investments"`
}

// ToInvestmentResponse converts a domain Investment entity to an InvestmentResponse DTO.
func ToInvestmentResponse(i *entity.Investment) InvestmentResponse {
	return InvestmentResponse{
		ID:                i.ID.String(),
		Name:              i.Name,
		Type:              string(i.Type),
		Value:             Money(i.Value),
		InitialInvestment: Money(i.InitialInvestment),
		Return:            Money(i.Return()),
		ReturnPercent:     i.ReturnPercent().StringFixed(2),
		PurchaseDate:      Date(i.PurchaseDate),
		ReturnRate:        i.ReturnRate.StringFixed(2),
		Risk:              string(i.Risk),
		CreatedAt:         i.CreatedAt,
	}
}

// ToInvestmentListResponse converts listed investments to an InvestmentListResponse.
func ToInvestmentListResponse(outputs []*investment.InvestmentOutput) InvestmentListResponse {
	items := make([]InvestmentResponse, len(outputs))
	for i, output := range outputs {
		response := ToInvestmentResponse(output.Investment)
		response.Return = Money(output.Return)
		response.ReturnPercent = output.ReturnPercent.StringFixed(2)
		items[i] = response
	}
	return InvestmentListResponse{Investments: items}
}
