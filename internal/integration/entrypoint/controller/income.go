package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finance-tracker/ledger/internal/application/usecase/income"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	"github.com/finance-tracker/ledger/internal/integration/entrypoint/dto"
)

// IncomeController handles income endpoints.
type IncomeController struct {
	addUseCase  *income.AddIncomeUseCase
	listUseCase *income.ListIncomeUseCase
}

// NewIncomeController creates a new income controller instance.
func NewIncomeController(addUseCase *income.AddIncomeUseCase, listUseCase *income.ListIncomeUseCase) *IncomeController {
	return &IncomeController{
		addUseCase:  addUseCase,
		listUseCase: listUseCase,
	}
}

// List handles GET /income requests.
func (c *IncomeController) List(ctx *gin.Context) {
	newest, ok := newestFirst(ctx)
	if !ok {
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), income.ListIncomeInput{NewestFirst: newest})
	if err != nil {
		handleLedgerError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToIncomeListResponse(output.Income))
}

// Create handles POST /income requests.
func (c *IncomeController) Create(ctx *gin.Context) {
	var req dto.CreateIncomeRequest
	if !bindJSON(ctx, &req) {
		return
	}

	date, ok := parseDate(ctx, "date", req.Date)
	if !ok {
		return
	}

	output, err := c.addUseCase.Execute(ctx.Request.Context(), income.AddIncomeInput{
		Amount:    req.Amount,
		Source:    req.Source,
		Type:      entity.IncomeType(req.Type),
		Date:      date,
		Frequency: entity.IncomeFrequency(req.Frequency),
	})
	if err != nil {
		handleLedgerError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToIncomeResponse(output.Income))
}
