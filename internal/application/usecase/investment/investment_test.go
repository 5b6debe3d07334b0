package investment

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/ledger/internal/domain/entity"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
	"github.com/finance-tracker/ledger/internal/integration/persistence"
)

func indexFund(value, initial string) AddInvestmentInput {
	return AddInvestmentInput{
		Name:              "World index",
		Type:              entity.InvestmentTypeETFs,
		Value:             decimal.RequireFromString(value),
		InitialInvestment: decimal.RequireFromString(initial),
		PurchaseDate:      time.Date(2023, 1, 10, 0, 0, 0, 0, time.UTC),
		ReturnRate:        decimal.NewFromInt(7),
		Risk:              entity.RiskLevelMedium,
	}
}

func TestAddInvestmentUseCase_Validation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*AddInvestmentInput)
		target  error
		wantErr bool
	}{
		{name: "zero value is allowed", mutate: func(in *AddInvestmentInput) { in.Value = decimal.Zero }},
		{name: "zero initial investment is allowed", mutate: func(in *AddInvestmentInput) { in.InitialInvestment = decimal.Zero }},
		{name: "blank name", mutate: func(in *AddInvestmentInput) { in.Name = "" }, target: domainerror.ErrMissingField, wantErr: true},
		{name: "unknown type", mutate: func(in *AddInvestmentInput) { in.Type = "NFT" }, target: domainerror.ErrInvalidEnum, wantErr: true},
		{name: "negative value", mutate: func(in *AddInvestmentInput) { in.Value = decimal.NewFromInt(-1) }, target: domainerror.ErrInvalidRange, wantErr: true},
		{name: "negative initial investment", mutate: func(in *AddInvestmentInput) { in.InitialInvestment = decimal.NewFromInt(-5) }, target: domainerror.ErrInvalidRange, wantErr: true},
		{name: "missing purchase date", mutate: func(in *AddInvestmentInput) { in.PurchaseDate = time.Time{} }, target: domainerror.ErrMissingField, wantErr: true},
		{name: "unknown risk", mutate: func(in *AddInvestmentInput) { in.Risk = "extreme" }, target: domainerror.ErrInvalidEnum, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			store := persistence.NewMemoryLedgerStore()

			input := indexFund("1200", "1000")
			tt.mutate(&input)

			_, err := NewAddInvestmentUseCase(store, nil).Execute(ctx, input)
			investments, _ := store.ListInvestments(ctx)

			if !tt.wantErr {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if len(investments) != 1 {
					t.Errorf("expected 1 investment stored, got %d", len(investments))
				}
				return
			}

			if !errors.Is(err, tt.target) {
				t.Fatalf("expected %v, got %v", tt.target, err)
			}
			if len(investments) != 0 {
				t.Errorf("expected nothing stored, got %d", len(investments))
			}
		})
	}
}

func TestListInvestmentsUseCase(t *testing.T) {
	ctx := context.Background()
	store := persistence.NewMemoryLedgerStore()
	add := NewAddInvestmentUseCase(store, nil)

	for _, in := range []AddInvestmentInput{indexFund("1200", "1000"), indexFund("50", "0")} {
		if _, err := add.Execute(ctx, in); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	output, err := NewListInvestmentsUseCase(store).Execute(ctx, ListInvestmentsInput{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := []struct {
		name          string
		index         int
		returnAmount  string
		returnPercent string
	}{
		{name: "gain", index: 0, returnAmount: "200", returnPercent: "20"},
		{name: "nothing invested", index: 1, returnAmount: "50", returnPercent: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := output.Investments[tt.index]
			if !item.Return.Equal(decimal.RequireFromString(tt.returnAmount)) {
				t.Errorf("expected return %s, got %s", tt.returnAmount, item.Return)
			}
			if !item.ReturnPercent.Equal(decimal.RequireFromString(tt.returnPercent)) {
				t.Errorf("expected return percent %s, got %s", tt.returnPercent, item.ReturnPercent)
			}
		})
	}
}
