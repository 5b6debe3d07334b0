package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/finance-tracker/ledger/internal/application/usecase/loan"
	"github.com/finance-tracker/ledger/internal/integration/entrypoint/dto"
)

// LoanController handles loan endpoints.
type LoanController struct {
	addUseCase       *loan.AddLoanUseCase
	listUseCase      *loan.ListLoansUseCase
	paymentUseCase   *loan.ApplyLoanPaymentUseCase
	scheduleUseCase  *loan.GetLoanScheduleUseCase
	calculateUseCase *loan.CalculateLoanUseCase
}

// NewLoanController creates a new loan controller instance.
func NewLoanController(
	addUseCase *loan.AddLoanUseCase,
	listUseCase *loan.ListLoansUseCase,
	paymentUseCase *loan.ApplyLoanPaymentUseCase,
	scheduleUseCase *loan.GetLoanScheduleUseCase,
	calculateUseCase *loan.CalculateLoanUseCase,
) *LoanController {
	return &LoanController{
		addUseCase:       addUseCase,
		listUseCase:      listUseCase,
		paymentUseCase:   paymentUseCase,
		scheduleUseCase:  scheduleUseCase,
		calculateUseCase: calculateUseCase,
	}
}

// List handles GET /loans requests.
func (c *LoanController) List(ctx *gin.Context) {
	newest, ok := newestFirst(ctx)
	if !ok {
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), loan.ListLoansInput{NewestFirst: newest})
	if err != nil {
		handleLedgerError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToLoanListResponse(output.Loans))
}

// Create handles POST /loans requests.
func (c *LoanController) Create(ctx *gin.Context) {
	var req dto.CreateLoanRequest
	if !bindJSON(ctx, &req) {
		return
	}

	startDate, ok := parseDate(ctx, "start_date", req.StartDate)
	if !ok {
		return
	}
	endDate, ok := parseDate(ctx, "end_date", req.EndDate)
	if !ok {
		return
	}

	output, err := c.addUseCase.Execute(ctx.Request.Context(), loan.AddLoanInput{
		Name:           req.Name,
		Description:    req.Description,
		Amount:         req.Amount,
		InterestRate:   req.InterestRate,
		StartDate:      startDate,
		EndDate:        endDate,
		MonthlyPayment: req.MonthlyPayment,
		Lender:         req.Lender,
		ItemPurchased:  req.ItemPurchased,
	})
	if err != nil {
		handleLedgerError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToLoanResponse(output.Loan))
}

// ApplyPayment handles POST /loans/:id/payments requests.
func (c *LoanController) ApplyPayment(ctx *gin.Context) {
	loanID, ok := parseLoanID(ctx)
	if !ok {
		return
	}

	var req dto.LoanPaymentRequest
	if !bindJSON(ctx, &req) {
		return
	}

	output, err := c.paymentUseCase.Execute(ctx.Request.Context(), loan.ApplyLoanPaymentInput{
		LoanID: loanID,
		Amount: req.Amount,
	})
	if err != nil {
		handleLedgerError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.LoanPaymentResponse{
		Loan:    dto.ToLoanResponse(output.Loan),
		Applied: output.Applied,
	})
}

// Schedule handles GET /loans/:id/schedule requests.
func (c *LoanController) Schedule(ctx *gin.Context) {
	loanID, ok := parseLoanID(ctx)
	if !ok {
		return
	}

	output, err := c.scheduleUseCase.Execute(ctx.Request.Context(), loan.GetLoanScheduleInput{LoanID: loanID})
	if err != nil {
		handleLedgerError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToLoanScheduleResponse(output))
}

// Calculate handles POST /loans/calculate requests.
func (c *LoanController) Calculate(ctx *gin.Context) {
	var req dto.CalculateLoanRequest
	if !bindJSON(ctx, &req) {
		return
	}

	startDate, ok := parseDate(ctx, "start_date", req.StartDate)
	if !ok {
		return
	}
	endDate, ok := parseDate(ctx, "end_date", req.EndDate)
	if !ok {
		return
	}

	output, err := c.calculateUseCase.Execute(ctx.Request.Context(), loan.CalculateLoanInput{
		Amount:       req.Amount,
		InterestRate: req.InterestRate,
		StartDate:    startDate,
		EndDate:      endDate,
	})
	if err != nil {
		handleLedgerError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToLoanQuoteResponse(output.Quote))
}

// parseLoanID reads the :id path parameter.
func parseLoanID(ctx *gin.Context) (uuid.UUID, bool) {
	loanID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		respondMalformed(ctx, "Invalid loan ID format", "id")
		return uuid.Nil, false
	}
	return loanID, true
}
