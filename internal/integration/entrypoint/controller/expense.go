package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finance-tracker/ledger/internal/application/usecase/expense"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	"github.com/finance-tracker/ledger/internal/integration/entrypoint/dto"
)

// ExpenseController handles expense endpoints.
type ExpenseController struct {
	addUseCase  *expense.AddExpenseUseCase
	listUseCase *expense.ListExpensesUseCase
}

// NewExpenseController creates a new expense controller instance.
func NewExpenseController(addUseCase *expense.AddExpenseUseCase, listUseCase *expense.ListExpensesUseCase) *ExpenseController {
	return &ExpenseController{
		addUseCase:  addUseCase,
		listUseCase: listUseCase,
	}
}

// List handles GET /expenses requests.
func (c *ExpenseController) List(ctx *gin.Context) {
	newest, ok := newestFirst(ctx)
	if !ok {
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), expense.ListExpensesInput{NewestFirst: newest})
	if err != nil {
		handleLedgerError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToExpenseListResponse(output.Expenses))
}

// Create handles POST /expenses requests.
func (c *ExpenseController) Create(ctx *gin.Context) {
	var req dto.CreateExpenseRequest
	if !bindJSON(ctx, &req) {
		return
	}

	date, ok := parseDate(ctx, "date", req.Date)
	if !ok {
		return
	}

	input := expense.AddExpenseInput{
		Amount:        req.Amount,
		Category:      entity.ExpenseCategory(req.Category),
		Description:   req.Description,
		Date:          date,
		PaymentMethod: entity.PaymentMethod(req.PaymentMethod),
		Notes:         req.Notes,
	}

	output, err := c.addUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleLedgerError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.CreateExpenseResponse{
		Expense:        dto.ToExpenseResponse(output.Expense),
		UpdatedBudgets: dto.ToBudgetResponses(output.UpdatedBudgets),
	})
}
