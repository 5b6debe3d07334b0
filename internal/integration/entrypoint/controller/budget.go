package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finance-tracker/ledger/internal/application/usecase/budget"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	"github.com/finance-tracker/ledger/internal/integration/entrypoint/dto"
)

// BudgetController handles budget endpoints.
type BudgetController struct {
	addUseCase  *budget.AddBudgetUseCase
	listUseCase *budget.ListBudgetsUseCase
}

// NewBudgetController creates a new budget controller instance.
func NewBudgetController(addUseCase *budget.AddBudgetUseCase, listUseCase *budget.ListBudgetsUseCase) *BudgetController {
	return &BudgetController{
		addUseCase:  addUseCase,
		listUseCase: listUseCase,
	}
}

// List handles GET /budgets requests.
func (c *BudgetController) List(ctx *gin.Context) {
	newest, ok := newestFirst(ctx)
	if !ok {
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), budget.ListBudgetsInput{NewestFirst: newest})
	if err != nil {
		handleLedgerError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBudgetListResponse(output.Budgets))
}

// Create handles POST /budgets requests.
func (c *BudgetController) Create(ctx *gin.Context) {
	var req dto.CreateBudgetRequest
	if !bindJSON(ctx, &req) {
		return
	}

	output, err := c.addUseCase.Execute(ctx.Request.Context(), budget.AddBudgetInput{
		Category: entity.ExpenseCategory(req.Category),
		Amount:   req.Amount,
		Period:   entity.BudgetPeriod(req.Period),
	})
	if err != nil {
		handleLedgerError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToBudgetResponse(output.Budget))
}
