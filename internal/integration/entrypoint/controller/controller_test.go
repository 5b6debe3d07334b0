package controller_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/finance-tracker/ledger/config"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
	"github.com/finance-tracker/ledger/internal/infra/dependency"
	"github.com/finance-tracker/ledger/internal/integration/entrypoint/dto"
	"github.com/finance-tracker/ledger/internal/integration/persistence"
)

type apiClient struct {
	t      *testing.T
	engine *gin.Engine
}

func newAPIClient(t *testing.T) *apiClient {
	t.Helper()
	cfg := &config.Config{
		Server: config.ServerConfig{Environment: "test"},
		Store:  config.StoreConfig{Driver: config.StoreDriverMemory},
	}
	injector := dependency.NewInjector(cfg, persistence.NewMemoryLedgerStore(), nil, nil)
	return &apiClient{t: t, engine: injector.Router.Setup(cfg.Server.Environment)}
}

func (c *apiClient) do(method, path string, body any) *httptest.ResponseRecorder {
	c.t.Helper()
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			c.t.Fatalf("failed to encode body: %v", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	c.engine.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("failed to decode response %q: %v", rec.Body.String(), err)
	}
	return out
}

func expectStatus(t *testing.T, rec *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if rec.Code != expected {
		t.Fatalf("expected status %d, got %d: %s", expected, rec.Code, rec.Body.String())
	}
}

func TestExpenseEndpoints(t *testing.T) {
	api := newAPIClient(t)

	rec := api.do(http.MethodPost, "/api/v1/budgets", map[string]any{
		"category": "Groceries",
		"amount":   500,
		"period":   "Monthly",
	})
	expectStatus(t, rec, http.StatusCreated)

	rec = api.do(http.MethodPost, "/api/v1/expenses", map[string]any{
		"amount":         120,
		"category":       "Groceries",
		"description":    "Weekly shop",
		"date":           "2024-03-01",
		"payment_method": "Debit Card",
	})
	expectStatus(t, rec, http.StatusCreated)

	created := decode[dto.CreateExpenseResponse](t, rec)
	if created.Expense.Amount != "120.00" {
		t.Errorf("expected amount 120.00, got %s", created.Expense.Amount)
	}
	if len(created.UpdatedBudgets) != 1 || created.UpdatedBudgets[0].Spent != "120.00" {
		t.Fatalf("expected one budget with spent 120.00, got %+v", created.UpdatedBudgets)
	}
	if created.UpdatedBudgets[0].Utilization != "0.2400" {
		t.Errorf("expected utilization 0.2400, got %s", created.UpdatedBudgets[0].Utilization)
	}

	rec = api.do(http.MethodGet, "/api/v1/expenses?order=newest", nil)
	expectStatus(t, rec, http.StatusOK)
	if list := decode[dto.ExpenseListResponse](t, rec); len(list.Expenses) != 1 {
		t.Errorf("expected 1 expense, got %d", len(list.Expenses))
	}
}

func TestLedgerErrorResponses(t *testing.T) {
	api := newAPIClient(t)

	tests := []struct {
		name   string
		method string
		path   string
		body   any
		status int
		code   string
		field  string
	}{
		{
			name:   "non-positive expense amount",
			method: http.MethodPost,
			path:   "/api/v1/expenses",
			body:   map[string]any{"amount": -5, "category": "Groceries", "description": "x", "date": "2024-03-01", "payment_method": "Cash"},
			status: http.StatusBadRequest,
			code:   string(domainerror.ErrCodeInvalidAmount),
			field:  "amount",
		},
		{
			name:   "unknown category",
			method: http.MethodPost,
			path:   "/api/v1/expenses",
			body:   map[string]any{"amount": 5, "category": "Pets", "description": "x", "date": "2024-03-01", "payment_method": "Cash"},
			status: http.StatusBadRequest,
			code:   string(domainerror.ErrCodeInvalidEnum),
			field:  "category",
		},
		{
			name:   "malformed date",
			method: http.MethodPost,
			path:   "/api/v1/income",
			body:   map[string]any{"amount": 5, "source": "Acme", "type": "Salary", "date": "03/01/2024", "frequency": "Monthly"},
			status: http.StatusBadRequest,
			code:   string(domainerror.ErrCodeMalformedRequest),
			field:  "date",
		},
		{
			name:   "unknown list order",
			method: http.MethodGet,
			path:   "/api/v1/goals?order=sideways",
			status: http.StatusBadRequest,
			code:   string(domainerror.ErrCodeMalformedRequest),
			field:  "order",
		},
		{
			name:   "payment for unknown loan",
			method: http.MethodPost,
			path:   "/api/v1/loans/" + uuid.NewString() + "/payments",
			body:   map[string]any{"amount": 100},
			status: http.StatusNotFound,
			code:   string(domainerror.ErrCodeUnknownLoan),
		},
		{
			name:   "loan ending before it starts",
			method: http.MethodPost,
			path:   "/api/v1/loans",
			body:   map[string]any{"name": "Car", "amount": 5000, "interest_rate": 5, "start_date": "2024-01-01", "end_date": "2023-01-01"},
			status: http.StatusUnprocessableEntity,
			code:   string(domainerror.ErrCodeInvalidTerm),
		},
		{
			name:   "invalid loan id",
			method: http.MethodGet,
			path:   "/api/v1/loans/not-a-uuid/schedule",
			status: http.StatusBadRequest,
			code:   string(domainerror.ErrCodeMalformedRequest),
			field:  "id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := api.do(tt.method, tt.path, tt.body)
			expectStatus(t, rec, tt.status)

			body := decode[dto.ErrorResponse](t, rec)
			if body.Code != tt.code {
				t.Errorf("expected code %s, got %s", tt.code, body.Code)
			}
			if body.Field != tt.field {
				t.Errorf("expected field %q, got %q", tt.field, body.Field)
			}
		})
	}
}

func TestLoanEndpoints(t *testing.T) {
	api := newAPIClient(t)

	rec := api.do(http.MethodPost, "/api/v1/loans", map[string]any{
		"name":          "Car",
		"amount":        5000,
		"interest_rate": 5,
		"start_date":    "2024-01-01",
		"end_date":      "2025-01-01",
		"lender":        "Credit Union",
	})
	expectStatus(t, rec, http.StatusCreated)

	created := decode[dto.LoanResponse](t, rec)
	if created.MonthlyPayment != "428.04" {
		t.Errorf("expected monthly payment 428.04, got %s", created.MonthlyPayment)
	}
	if created.Status != "active" || created.RemainingAmount != "5000.00" {
		t.Errorf("expected active loan with 5000.00 remaining, got %s %s", created.Status, created.RemainingAmount)
	}

	paymentPath := "/api/v1/loans/" + created.ID + "/payments"
	rec = api.do(http.MethodPost, paymentPath, map[string]any{"amount": 6000})
	expectStatus(t, rec, http.StatusOK)

	paid := decode[dto.LoanPaymentResponse](t, rec)
	if !paid.Applied || paid.Loan.Status != "paid" || paid.Loan.RemainingAmount != "0.00" {
		t.Errorf("expected paid loan at 0.00, got %+v", paid)
	}

	rec = api.do(http.MethodPost, paymentPath, map[string]any{"amount": 10})
	expectStatus(t, rec, http.StatusOK)
	if again := decode[dto.LoanPaymentResponse](t, rec); again.Applied {
		t.Error("expected payment on a paid loan to be ignored")
	}

	rec = api.do(http.MethodGet, "/api/v1/loans/"+created.ID+"/schedule", nil)
	expectStatus(t, rec, http.StatusOK)
	schedule := decode[dto.LoanScheduleResponse](t, rec)
	if len(schedule.Schedule) != 12 || schedule.Schedule[11].Balance != "0.00" {
		t.Errorf("expected 12 periods closing at 0.00, got %d", len(schedule.Schedule))
	}

	rec = api.do(http.MethodPost, "/api/v1/loans/calculate", map[string]any{
		"amount":        10000,
		"interest_rate": 6,
		"start_date":    "2024-01-01",
		"end_date":      "2027-01-01",
	})
	expectStatus(t, rec, http.StatusOK)
	quote := decode[dto.LoanQuoteResponse](t, rec)
	if quote.TermMonths != 36 || quote.MonthlyPayment != "304.22" || quote.TotalInterest != "951.92" {
		t.Errorf("unexpected quote: %+v", quote)
	}
}

func TestDashboardEndpoints(t *testing.T) {
	api := newAPIClient(t)

	expectStatus(t, api.do(http.MethodPost, "/api/v1/income", map[string]any{
		"amount": 3000, "source": "Acme Corp", "type": "Salary", "date": "2024-03-02", "frequency": "Monthly",
	}), http.StatusCreated)
	expectStatus(t, api.do(http.MethodPost, "/api/v1/expenses", map[string]any{
		"amount": 45.5, "category": "Transportation", "description": "Fuel", "date": "2024-03-03", "payment_method": "Credit Card",
	}), http.StatusCreated)
	expectStatus(t, api.do(http.MethodPost, "/api/v1/investments", map[string]any{
		"name": "Index fund", "type": "ETFs", "value": 1200, "initial_investment": 1000,
		"purchase_date": "2023-01-10", "return_rate": 7, "risk": "medium",
	}), http.StatusCreated)

	rec := api.do(http.MethodGet, "/api/v1/dashboard/summary", nil)
	expectStatus(t, rec, http.StatusOK)
	summary := decode[dto.SummaryResponse](t, rec)
	if summary.NetBalance != "2954.50" {
		t.Errorf("expected net balance 2954.50, got %s", summary.NetBalance)
	}
	if summary.TotalReturnPercent != "20.00" {
		t.Errorf("expected return percent 20.00, got %s", summary.TotalReturnPercent)
	}

	rec = api.do(http.MethodGet, "/api/v1/dashboard/recent?limit=1", nil)
	expectStatus(t, rec, http.StatusOK)
	recent := decode[dto.RecentTransactionsResponse](t, rec)
	if len(recent.Transactions) != 1 || recent.Transactions[0].Amount != "-45.50" {
		t.Errorf("expected the fuel expense first, got %+v", recent.Transactions)
	}

	rec = api.do(http.MethodGet, "/api/v1/dashboard/categories", nil)
	expectStatus(t, rec, http.StatusOK)
	if categories := decode[dto.CategoryTotalsResponse](t, rec); len(categories.Categories) != 1 || categories.Categories[0].Percentage != "100.00" {
		t.Errorf("unexpected category totals: %+v", categories)
	}

	rec = api.do(http.MethodGet, "/api/v1/dashboard/allocation", nil)
	expectStatus(t, rec, http.StatusOK)
	if allocation := decode[dto.AllocationResponse](t, rec); allocation.TotalValue != "1200.00" {
		t.Errorf("expected total value 1200.00, got %s", allocation.TotalValue)
	}

	expectStatus(t, api.do(http.MethodGet, "/api/v1/dashboard/recent?limit=zero", nil), http.StatusBadRequest)
}

func TestHealthEndpoint(t *testing.T) {
	rec := newAPIClient(t).do(http.MethodGet, "/health", nil)
	expectStatus(t, rec, http.StatusOK)

	body := decode[map[string]string](t, rec)
	if body["store"] != "connected" {
		t.Errorf("expected store connected, got %s", body["store"])
	}
	if _, ok := body["broker"]; ok {
		t.Error("expected no broker status without a broker")
	}
}
