// Package income contains income-related use cases.
package income

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

// AddIncomeInput represents the input for recording income.
type AddIncomeInput struct {
	Amount    decimal.Decimal
	Source    string
	Type      entity.IncomeType
	Date      time.Time
	Frequency entity.IncomeFrequency
}

// AddIncomeOutput represents the output of recording income.
type AddIncomeOutput struct {
	Income *entity.Income
}

// AddIncomeUseCase handles recording income.
type AddIncomeUseCase struct {
	incomeRepo adapter.IncomeRepository
	notifier   adapter.ChangeNotifier
}

// NewAddIncomeUseCase creates a new AddIncomeUseCase instance.
func NewAddIncomeUseCase(incomeRepo adapter.IncomeRepository, notifier adapter.ChangeNotifier) *AddIncomeUseCase {
	return &AddIncomeUseCase{
		incomeRepo: incomeRepo,
		notifier:   notifier,
	}
}

// Execute validates and records the income entry.
func (uc *AddIncomeUseCase) Execute(ctx context.Context, input AddIncomeInput) (*AddIncomeOutput, error) {
	// Validate amount
	if !input.Amount.IsPositive() {
		return nil, domainerror.NewInvalidAmountError("amount")
	}

	// Validate source
	source := strings.TrimSpace(input.Source)
	if source == "" {
		return nil, domainerror.NewMissingFieldError("source")
	}

	// Validate enumerations
	if !input.Type.IsValid() {
		return nil, domainerror.NewInvalidEnumError("type", input.Type)
	}
	if !input.Frequency.IsValid() {
		return nil, domainerror.NewInvalidEnumError("frequency", input.Frequency)
	}

	// Validate date
	if input.Date.IsZero() {
		return nil, domainerror.NewMissingFieldError("date")
	}

	income := entity.NewIncome(input.Amount, source, input.Type, input.Date, input.Frequency)

	if err := uc.incomeRepo.CreateIncome(ctx, income); err != nil {
		return nil, fmt.Errorf("failed to create income: %w", err)
	}

	slog.Debug("Income recorded", "income_id", income.ID, "type", income.Type)
	changes.Publish(ctx, uc.notifier, entity.NewChangeEvent(entity.ChangeIncomeAdded, income.ID))

	return &AddIncomeOutput{Income: income}, nil
}
