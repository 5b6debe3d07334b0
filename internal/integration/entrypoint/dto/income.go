package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/ledger/internal/domain/entity"
)

// CreateIncomeRequest represents the request body for recording income.
type CreateIncomeRequest struct {
	Amount    decimal.Decimal `json:"amount"`
	Source    string          `json:"source" binding:"max=255"`
	Type      string          `json:"type"`
	Date      string          `json:"date"`
	Frequency string          `json:"frequency"`
}

// IncomeResponse represents a single income entry in API responses.
type IncomeResponse struct {
	ID        string    `json:"id"`
	Amount    string    `json:"amount"`
	Source    string    `json:"source"`
	Type      string    `json:"type"`
	Date      string    `json:"date"`
	Frequency string    `json:"frequency"`
	CreatedAt time.Time `json:"created_at"`
}

// IncomeListResponse represents the response for listing income.
type IncomeListResponse struct {
	Income []IncomeResponse `json:"income"`
}

// ToIncomeResponse converts a domain Income entity to an IncomeResponse DTO.
func ToIncomeResponse(i *entity.Income) IncomeResponse {
	return IncomeResponse{
		ID:        i.ID.String(),
		Amount:    Money(i.Amount),
		Source:    i.Source,
		Type:      string(i.Type),
		Date:      Date(i.Date),
		Frequency: string(i.Frequency),
		CreatedAt: i.CreatedAt,
	}
}

// ToIncomeListResponse converts income entries to an IncomeListResponse.
func ToIncomeListResponse(income []*entity.Income) IncomeListResponse {
	items := make([]IncomeResponse, len(income))
	for i, entry := range income {
		items[i] = ToIncomeResponse(entry)
	}
	return IncomeListResponse{Income: items}
}
