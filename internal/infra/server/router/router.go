// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/finance-tracker/ledger/internal/integration/entrypoint/controller"
	"github.com/finance-tracker/ledger/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine               *gin.Engine
	healthController     *controller.HealthController
	expenseController    *controller.ExpenseController
	incomeController     *controller.IncomeController
	budgetController     *controller.BudgetController
	goalController       *controller.GoalController
	investmentController *controller.InvestmentController
	loanController       *controller.LoanController
	dashboardController  *controller.DashboardController
	eventsController     *controller.EventsController
	rateLimiter          *middleware.RateLimiter
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	expenseController *controller.ExpenseController,
	incomeController *controller.IncomeController,
	budgetController *controller.BudgetController,
	goalController *controller.GoalController,
	investmentController *controller.InvestmentController,
	loanController *controller.LoanController,
	dashboardController *controller.DashboardController,
	eventsController *controller.EventsController,
	rateLimiter *middleware.RateLimiter,
) *Router {
	return &Router{
		healthController:     healthController,
		expenseController:    expenseController,
		incomeController:     incomeController,
		budgetController:     budgetController,
		goalController:       goalController,
		investmentController: investmentController,
		loanController:       loanController,
		dashboardController:  dashboardController,
		eventsController:     eventsController,
		rateLimiter:          rateLimiter,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()

	// Setup routes
	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	limit := r.rateLimiter.Middleware()

	// API v1 group
	v1 := r.engine.Group("/api/v1")
	{
		expenses := v1.Group("/expenses")
		{
			expenses.GET("", r.expenseController.List)
			expenses.POST("", limit, r.expenseController.Create)
		}

		income := v1.Group("/income")
		{
			income.GET("", r.incomeController.List)
			income.POST("", limit, r.incomeController.Create)
		}

		budgets := v1.Group("/budgets")
		{
			budgets.GET("", r.budgetController.List)
			budgets.POST("", limit, r.budgetController.Create)
		}

		goals := v1.Group("/goals")
		{
			goals.GET("", r.goalController.List)
			goals.POST("", limit, r.goalController.Create)
		}

		investments := v1.Group("/investments")
		{
			investments.GET("", r.investmentController.List)
			investments.POST("", limit, r.investmentController.Create)
		}

		loans := v1.Group("/loans")
		{
			loans.GET("", r.loanController.List)
			loans.POST("", limit, r.loanController.Create)
			loans.POST("/calculate", r.loanController.Calculate)
			loans.POST("/:id/payments", limit, r.loanController.ApplyPayment)
			loans.GET("/:id/schedule", r.loanController.Schedule)
		}

		dashboard := v1.Group("/dashboard")
		{
			dashboard.GET("/summary", r.dashboardController.GetSummary)
			dashboard.GET("/categories", r.dashboardController.GetCategories)
			dashboard.GET("/allocation", r.dashboardController.GetAllocation)
			dashboard.GET("/recent", r.dashboardController.GetRecent)
		}

		if r.eventsController != nil {
			v1.GET("/events", r.eventsController.Stream)
		}
	}
}
