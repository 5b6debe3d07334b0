package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/ledger/internal/application/usecase/loan"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	"github.com/finance-tracker/ledger/internal/domain/metrics"
	"github.com/finance-tracker/ledger/internal/domain/valueobject"
)

// CreateLoanRequest represents the request body for loan creation.
// MonthlyPayment is computed from the term and rate when omitted.
type CreateLoanRequest struct {
	Name           string           `json:"name"`
	Description    string           `json:"description,omitempty" binding:"max=500"`
	Amount         decimal.Decimal  `json:"amount"`
	InterestRate   decimal.Decimal  `json:"interest_rate"`
	StartDate      string           `json:"start_date"`
	EndDate        string           `json:"end_date"`
	MonthlyPayment *decimal.Decimal `json:"monthly_payment,omitempty"`
	Lender         string           `json:"lender,omitempty"`
	ItemPurchased  string           `json:"item_purchased,omitempty"`
}

// LoanPaymentRequest represents the request body for a loan payment.
type LoanPaymentRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

// CalculateLoanRequest represents the request body for a loan quote.
type CalculateLoanRequest struct {
	Amount       decimal.Decimal `json:"amount"`
	InterestRate decimal.Decimal `json:"interest_rate"`
	StartDate    string          `json:"start_date"`
	EndDate      string          `json:"end_date"`
}

// LoanResponse represents a single loan in API responses.
type LoanResponse struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Description     string    `json:"description,omitempty"`
	Amount          string    `json:"amount"`
	InterestRate    string    `json:"interest_rate"`
	StartDate       string    `json:"start_date"`
	EndDate         string    `json:"end_date"`
	MonthlyPayment  string    `json:"monthly_payment"`
	Lender          string    `json:"lender,omitempty"`
	ItemPurchased   string    `json:"item_purchased,omitempty"`
	RemainingAmount string    `json:"remaining_amount"`
	RemainingMonths int       `json:"remaining_months"`
	Progress        string    `json:"progress"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// LoanListResponse represents the response for listing loans.
type LoanListResponse struct {
	Loans []LoanResponse `json:"loans"`
}

// LoanPaymentResponse is the loan after a payment.
type LoanPaymentResponse struct {
	Loan    LoanResponse `json:"loan"`
	Applied bool         `json:"applied"`
}

// LoanQuoteResponse represents an amortization quote.
type LoanQuoteResponse struct {
	TermMonths     int    `json:"term_months"`
	MonthlyPayment string `json:"monthly_payment"`
	TotalPayment   string `json:"total_payment"`
	TotalInterest  string `json:"total_interest"`
}

// SchedulePeriodResponse represents one month of a repayment schedule.
type SchedulePeriodResponse struct {
	Number    int    `json:"number"`
	DueDate   string `json:"due_date"`
	Payment   string `json:"payment"`
	Principal string `json:"principal"`
	Interest  string `json:"interest"`
	Balance   string `json:"balance"`
}

// LoanScheduleResponse represents a loan with its repayment schedule.
type LoanScheduleResponse struct {
	LoanID   string                   `json:"loan_id"`
	Schedule []SchedulePeriodResponse `json:"schedule"`
}

// ToLoanResponse converts a domain Loan entity to a LoanResponse DTO.
func ToLoanResponse(l *entity.Loan) LoanResponse {
	return LoanResponse{
		ID:              l.ID.String(),
		Name:            l.Name,
		Description:     l.Description,
		Amount:          Money(l.Amount),
		InterestRate:    l.InterestRate.StringFixed(2),
		StartDate:       Date(l.StartDate),
		EndDate:         Date(l.EndDate),
		MonthlyPayment:  Money(l.MonthlyPayment),
		Lender:          l.Lender,
		ItemPurchased:   l.ItemPurchased,
		RemainingAmount: Money(l.RemainingAmount),
		RemainingMonths: l.RemainingMonths(),
		Progress:        metrics.LoanProgress(l).StringFixed(4),
		Status:          string(l.Status),
		CreatedAt:       l.CreatedAt,
		UpdatedAt:       l.UpdatedAt,
	}
}

// ToLoanListResponse converts listed loans to a LoanListResponse.
func ToLoanListResponse(outputs []*loan.LoanOutput) LoanListResponse {
	items := make([]LoanResponse, len(outputs))
	for i, output := range outputs {
		response := ToLoanResponse(output.Loan)
		response.Progress = output.Progress.StringFixed(4)
		response.RemainingMonths = output.RemainingMonths
		items[i] = response
	}
	return LoanListResponse{Loans: items}
}

// ToLoanQuoteResponse converts an amortization quote to a LoanQuoteResponse.
func ToLoanQuoteResponse(q valueobject.AmortizationQuote) LoanQuoteResponse {
	return LoanQuoteResponse{
		TermMonths:     q.TermMonths,
		MonthlyPayment: Money(q.MonthlyPayment),
		TotalPayment:   Money(q.TotalPayment),
		TotalInterest:  Money(q.TotalInterest),
	}
}

// ToLoanScheduleResponse converts a schedule output to a LoanScheduleResponse.
func ToLoanScheduleResponse(output *loan.GetLoanScheduleOutput) LoanScheduleResponse {
	periods := make([]SchedulePeriodResponse, len(output.Schedule))
	for i, p := range output.Schedule {
		periods[i] = SchedulePeriodResponse{
			Number:    p.Number,
			DueDate:   Date(p.DueDate),
			Payment:   Money(p.Payment),
			Principal: Money(p.Principal),
			Interest:  Money(p.Interest),
			Balance:   Money(p.Balance),
		}
	}
	return LoanScheduleResponse{
		LoanID:   output.Loan.ID.String(),
		Schedule: periods,
	}
}
