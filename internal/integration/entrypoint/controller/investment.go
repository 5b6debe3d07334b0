package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finance-tracker/ledger/internal/application/usecase/investment"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	"github.com/finance-tracker/ledger/internal/integration/entrypoint/dto"
)

// InvestmentController handles investment endpoints.
type InvestmentController struct {
	addUseCase  *investment.AddInvestmentUseCase
	listUseCase *investment.ListInvestmentsUseCase
}

// NewInvestmentController creates a new investment controller instance.
func NewInvestmentController(addUseCase *investment.AddInvestmentUseCase, listUseCase *investment.ListInvestmentsUseCase) *InvestmentController {
	return &InvestmentController{
		addUseCase:  addUseCase,
		listUseCase: listUseCase,
	}
}

// List handles GET /investments requests.
func (c *InvestmentController) List(ctx *gin.Context) {
	newest, ok := newestFirst(ctx)
	if !ok {
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), investment.ListInvestmentsInput{NewestFirst: newest})
	if err != nil {
		handleLedgerError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToInvestmentListResponse(output.Investments))
}

// Create handles POST /investments requests.
func (c *InvestmentController) Create(ctx *gin.Context) {
	var req dto.CreateInvestmentRequest
	if !bindJSON(ctx, &req) {
		return
	}

	purchaseDate, ok := parseDate(ctx, "purchase_date", req.PurchaseDate)
	if !ok {
		return
	}

	output, err := c.addUseCase.Execute(ctx.Request.Context(), investment.AddInvestmentInput{
		Name:              req.Name,
		Type:              entity.InvestmentType(req.Type),
		Value:             req.Value,
		InitialInvestment: req.InitialInvestment,
		PurchaseDate:      purchaseDate,
		ReturnRate:        req.ReturnRate,
		Risk:              entity.RiskLevel(req.Risk),
	})
	if err != nil {
		handleLedgerError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToInvestmentResponse(output.Investment))
}
