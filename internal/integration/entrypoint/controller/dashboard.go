package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/finance-tracker/ledger/internal/application/usecase/dashboard"
	"github.com/finance-tracker/ledger/internal/integration/entrypoint/dto"
)

// DashboardController handles the read-only overview endpoints.
type DashboardController struct {
	summaryUseCase    *dashboard.GetSummaryUseCase
	categoriesUseCase *dashboard.GetCategoryTotalsUseCase
	allocationUseCase *dashboard.GetInvestmentAllocationUseCase
	recentUseCase     *dashboard.GetRecentTransactionsUseCase
}

// NewDashboardController creates a new dashboard controller instance.
func NewDashboardController(
	summaryUseCase *dashboard.GetSummaryUseCase,
	categoriesUseCase *dashboard.GetCategoryTotalsUseCase,
	allocationUseCase *dashboard.GetInvestmentAllocationUseCase,
	recentUseCase *dashboard.GetRecentTransactionsUseCase,
) *DashboardController {
	return &DashboardController{
		summaryUseCase:    summaryUseCase,
		categoriesUseCase: categoriesUseCase,
		allocationUseCase: allocationUseCase,
		recentUseCase:     recentUseCase,
	}
}

// GetSummary handles GET /dashboard/summary requests.
func (c *DashboardController) GetSummary(ctx *gin.Context) {
	output, err := c.summaryUseCase.Execute(ctx.Request.Context(), dashboard.GetSummaryInput{})
	if err != nil {
		handleLedgerError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSummaryResponse(output))
}

// GetCategories handles GET /dashboard/categories requests.
func (c *DashboardController) GetCategories(ctx *gin.Context) {
	output, err := c.categoriesUseCase.Execute(ctx.Request.Context())
	if err != nil {
		handleLedgerError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCategoryTotalsResponse(output))
}

// GetAllocation handles GET /dashboard/allocation requests.
func (c *DashboardController) GetAllocation(ctx *gin.Context) {
	output, err := c.allocationUseCase.Execute(ctx.Request.Context())
	if err != nil {
		handleLedgerError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToAllocationResponse(output))
}

// GetRecent handles GET /dashboard/recent requests.
func (c *DashboardController) GetRecent(ctx *gin.Context) {
	var limit int
	if raw := ctx.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			respondMalformed(ctx, "limit must be a positive integer", "limit")
			return
		}
		limit = parsed
	}

	output, err := c.recentUseCase.Execute(ctx.Request.Context(), dashboard.GetRecentTransactionsInput{Limit: limit})
	if err != nil {
		handleLedgerError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToRecentTransactionsResponse(output))
}
