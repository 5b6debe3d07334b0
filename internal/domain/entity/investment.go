package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InvestmentType is the asset class of an investment.
type InvestmentType string

const (
	InvestmentTypeStocks         InvestmentType = "Stocks"
	InvestmentTypeBonds          InvestmentType = "Bonds"
	InvestmentTypeETFs           InvestmentType = "ETFs"
	InvestmentTypeMutualFunds    InvestmentType = "Mutual Funds"
	InvestmentTypeRealEstate     InvestmentType = "Real Estate"
	InvestmentTypeCryptocurrency InvestmentType = "Cryptocurrency"
	InvestmentTypeCommodities    InvestmentType = "Commodities"
	InvestmentTypeCash           InvestmentType = "Cash"
	InvestmentTypeOther          InvestmentType = "Other"
)

// IsValid reports whether t is one of the known asset classes.
func (t InvestmentType) IsValid() bool {
	switch t {
	case InvestmentTypeStocks, InvestmentTypeBonds, InvestmentTypeETFs,
		InvestmentTypeMutualFunds, InvestmentTypeRealEstate, InvestmentTypeCryptocurrency,
		InvestmentTypeCommodities, InvestmentTypeCash, InvestmentTypeOther:
		return true
	}
	return false
}

// RiskLevel grades an investment's risk.
type RiskLevel string

const (
	RiskLevelLow    RiskLevel = "low"
	RiskLevelMedium RiskLevel = "medium"
	RiskLevelHigh   RiskLevel = "high"
)

// IsValid reports whether r is one of the known risk levels.
func (r RiskLevel) IsValid() bool {
	return r == RiskLevelLow || r == RiskLevelMedium || r == RiskLevelHigh
}

// Investment is a holding in the portfolio. Investments are immutable once created.
type Investment struct {
	ID                uuid.UUID
	Name              string
	Type              InvestmentType
	Value             decimal.Decimal
	InitialInvestment decimal.Decimal
	PurchaseDate      time.Time
	ReturnRate        decimal.Decimal // annualized, percent
	Risk              RiskLevel
	CreatedAt         time.Time
}

// NewInvestment creates a new Investment entity.
func NewInvestment(
	name string,
	investmentType InvestmentType,
	value, initialInvestment decimal.Decimal,
	purchaseDate time.Time,
	returnRate decimal.Decimal,
	risk RiskLevel,
) *Investment {
	return &Investment{
		ID:                uuid.New(),
		Name:              name,
		Type:              investmentType,
		Value:             value,
		InitialInvestment: initialInvestment,
		PurchaseDate:      NormalizeDate(purchaseDate),
		ReturnRate:        returnRate,
		Risk:              risk,
		CreatedAt:         time.Now().UTC(),
	}
}

// Return is the gain (or loss) over the initial investment.
func (i *Investment) Return() decimal.Decimal {
	return i.Value.Sub(i.InitialInvestment)
}

// ReturnPercent is Return as a percentage of the initial investment, 0 when nothing was invested.
func (i *Investment) ReturnPercent() decimal.Decimal {
	if i.InitialInvestment.IsZero() {
		return decimal.Zero
	}
	return i.Return().Div(i.InitialInvestment).Mul(decimal.NewFromInt(100))
}
