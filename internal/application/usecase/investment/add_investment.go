// Package investment contains investment-related use cases.
package investment

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/application/usecase/changes"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
)

// AddInvestmentInput represents the input for recording an investment.
type AddInvestmentInput struct {
	Name              string
	Type              entity.InvestmentType
	Value             decimal.Decimal
	InitialInvestment decimal.Decimal
	PurchaseDate      time.Time
	ReturnRate        decimal.Decimal
	Risk              entity.RiskLevel
}

// AddInvestmentOutput represents the output of recording an investment.
type AddInvestmentOutput struct {
	Investment *entity.Investment
}

// AddInvestmentUseCase handles recording investments.
type AddInvestmentUseCase struct {
	investmentRepo adapter.InvestmentRepository
	notifier       adapter.ChangeNotifier
}

// NewAddInvestmentUseCase creates a new AddInvestmentUseCase instance.
func NewAddInvestmentUseCase(investmentRepo adapter.InvestmentRepository, notifier adapter.ChangeNotifier) *AddInvestmentUseCase {
	return &AddInvestmentUseCase{
		investmentRepo: investmentRepo,
		notifier:       notifier,
	}
}

// Execute validates and records the investment.
func (uc *AddInvestmentUseCase) Execute(ctx context.Context, input AddInvestmentInput) (*AddInvestmentOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerror.NewMissingFieldError("name")
	}

	if !input.Type.IsValid() {
		return nil, domainerror.NewInvalidEnumError("type", input.Type)
	}

	// Value and cost basis may be zero but never negative
	if input.Value.IsNegative() {
		return nil, domainerror.NewNegativeValueError("value")
	}
	if input.InitialInvestment.IsNegative() {
		return nil, domainerror.NewNegativeValueError("initial_investment")
	}

	if input.PurchaseDate.IsZero() {
		return nil, domainerror.NewMissingFieldError("purchase_date")
	}

	if !input.Risk.IsValid() {
		return nil, domainerror.NewInvalidEnumError("risk", input.Risk)
	}

	investment := entity.NewInvestment(
		name,
		input.Type,
		input.Value,
		input.InitialInvestment,
		input.PurchaseDate,
		input.ReturnRate,
		input.Risk,
	)

	if err := uc.investmentRepo.CreateInvestment(ctx, investment); err != nil {
		return nil, fmt.Errorf("failed to create investment: %w", err)
	}

	slog.Debug("Investment recorded", "investment_id", investment.ID, "type", investment.Type)
	changes.Publish(ctx, uc.notifier, entity.NewChangeEvent(entity.ChangeInvestmentAdded, investment.ID))

	return &AddInvestmentOutput{Investment: investment}, nil
}
