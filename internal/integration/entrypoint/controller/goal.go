package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finance-tracker/ledger/internal/application/usecase/goal"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	"github.com/finance-tracker/ledger/internal/integration/entrypoint/dto"
)

// GoalController handles goal endpoints.
type GoalController struct {
	addUseCase  *goal.AddGoalUseCase
	listUseCase *goal.ListGoalsUseCase
}

// NewGoalController creates a new goal controller instance.
func NewGoalController(addUseCase *goal.AddGoalUseCase, listUseCase *goal.ListGoalsUseCase) *GoalController {
	return &GoalController{
		addUseCase:  addUseCase,
		listUseCase: listUseCase,
	}
}

// List handles GET /goals requests.
func (c *GoalController) List(ctx *gin.Context) {
	newest, ok := newestFirst(ctx)
	if !ok {
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), goal.ListGoalsInput{NewestFirst: newest})
	if err != nil {
		handleLedgerError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToGoalListResponse(output.Goals))
}

// Create handles POST /goals requests.
func (c *GoalController) Create(ctx *gin.Context) {
	var req dto.CreateGoalRequest
	if !bindJSON(ctx, &req) {
		return
	}

	deadline, ok := parseDate(ctx, "deadline", req.Deadline)
	if !ok {
		return
	}

	output, err := c.addUseCase.Execute(ctx.Request.Context(), goal.AddGoalInput{
		Name:         req.Name,
		Description:  req.Description,
		TargetAmount: req.TargetAmount,
		Type:         entity.GoalType(req.Type),
		Deadline:     deadline,
	})
	if err != nil {
		handleLedgerError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToGoalResponse(output.Goal))
}
