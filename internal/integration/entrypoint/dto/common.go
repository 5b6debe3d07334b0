// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/ledger/internal/domain/entity"
)

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Field   string `json:"field,omitempty"`
	Details string `json:"details,omitempty"`
}

// Money renders an amount with two decimal places.
func Money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// Date renders a calendar date as YYYY-MM-DD.
func Date(t time.Time) string {
	return t.Format(entity.DateLayout)
}

// ParseDate parses an optional YYYY-MM-DD value. Empty input yields the zero time.
func ParseDate(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	return entity.ParseDate(value)
}
