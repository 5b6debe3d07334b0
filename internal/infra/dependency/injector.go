// Package dependency provides dependency injection for the application.
package dependency

import (
	"github.com/redis/go-redis/v9"

	"github.com/finance-tracker/ledger/config"
	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/application/usecase/budget"
	"github.com/finance-tracker/ledger/internal/application/usecase/dashboard"
	"github.com/finance-tracker/ledger/internal/application/usecase/expense"
	"github.com/finance-tracker/ledger/internal/application/usecase/goal"
	"github.com/finance-tracker/ledger/internal/application/usecase/income"
	"github.com/finance-tracker/ledger/internal/application/usecase/investment"
	"github.com/finance-tracker/ledger/internal/application/usecase/loan"
	"github.com/finance-tracker/ledger/internal/infra/server/router"
	"github.com/finance-tracker/ledger/internal/integration/entrypoint/controller"
	"github.com/finance-tracker/ledger/internal/integration/entrypoint/middleware"
	"github.com/finance-tracker/ledger/internal/integration/notification"
)

// eventStreamBuffer is the per-client buffer of the /events stream.
const eventStreamBuffer = 64

// Injector holds all application dependencies.
type Injector struct {
	Config      *config.Config
	Store       adapter.LedgerStore
	Broadcaster *notification.Broadcaster
	// Relay is nil unless change events are published to Redis.
	Relay       *notification.Worker
	RateLimiter *middleware.RateLimiter
	Router      *router.Router
}

// NewInjector creates a new dependency injector with all dependencies wired.
// redisClient may be nil, in which case changes only reach in-process subscribers.
func NewInjector(cfg *config.Config, store adapter.LedgerStore, redisClient *redis.Client, brokerHealthChecker func() bool) *Injector {
	// Create change notifiers
	broadcaster := notification.NewBroadcaster()
	var relay *notification.Worker
	if redisClient != nil {
		publisher := notification.NewRedisPublisher(redisClient, cfg.Redis.Channel)
		relay = notification.NewWorker(publisher, notification.WorkerConfig{
			QueueSize:      cfg.Notification.QueueSize,
			PublishTimeout: cfg.Notification.PublishTimeout,
		})
	}

	var notifier adapter.ChangeNotifier = broadcaster
	if relay != nil {
		notifier = notification.NewFanout(broadcaster, relay)
	}

	// Create ledger use cases
	addExpenseUseCase := expense.NewAddExpenseUseCase(store, notifier)
	listExpensesUseCase := expense.NewListExpensesUseCase(store)

	addIncomeUseCase := income.NewAddIncomeUseCase(store, notifier)
	listIncomeUseCase := income.NewListIncomeUseCase(store)

	addBudgetUseCase := budget.NewAddBudgetUseCase(store, notifier)
	listBudgetsUseCase := budget.NewListBudgetsUseCase(store)

	addGoalUseCase := goal.NewAddGoalUseCase(store, notifier)
	listGoalsUseCase := goal.NewListGoalsUseCase(store)

	addInvestmentUseCase := investment.NewAddInvestmentUseCase(store, notifier)
	listInvestmentsUseCase := investment.NewListInvestmentsUseCase(store)

	addLoanUseCase := loan.NewAddLoanUseCase(store, notifier)
	listLoansUseCase := loan.NewListLoansUseCase(store)
	applyLoanPaymentUseCase := loan.NewApplyLoanPaymentUseCase(store, notifier)
	getLoanScheduleUseCase := loan.NewGetLoanScheduleUseCase(store)
	calculateLoanUseCase := loan.NewCalculateLoanUseCase()

	// Create dashboard use cases
	getSummaryUseCase := dashboard.NewGetSummaryUseCase(store)
	getCategoryTotalsUseCase := dashboard.NewGetCategoryTotalsUseCase(store)
	getInvestmentAllocationUseCase := dashboard.NewGetInvestmentAllocationUseCase(store)
	getRecentTransactionsUseCase := dashboard.NewGetRecentTransactionsUseCase(store)

	// Create controllers
	healthController := controller.NewHealthController(store.HealthCheck, brokerHealthChecker)
	expenseController := controller.NewExpenseController(addExpenseUseCase, listExpensesUseCase)
	incomeController := controller.NewIncomeController(addIncomeUseCase, listIncomeUseCase)
	budgetController := controller.NewBudgetController(addBudgetUseCase, listBudgetsUseCase)
	goalController := controller.NewGoalController(addGoalUseCase, listGoalsUseCase)
	investmentController := controller.NewInvestmentController(addInvestmentUseCase, listInvestmentsUseCase)
	loanController := controller.NewLoanController(
		addLoanUseCase,
		listLoansUseCase,
		applyLoanPaymentUseCase,
		getLoanScheduleUseCase,
		calculateLoanUseCase,
	)
	dashboardController := controller.NewDashboardController(
		getSummaryUseCase,
		getCategoryTotalsUseCase,
		getInvestmentAllocationUseCase,
		getRecentTransactionsUseCase,
	)
	eventsController := controller.NewEventsController(broadcaster, eventStreamBuffer)

	// Create middleware
	// Rate limiting is off in the test environment so scenarios can post freely
	rateLimiter := middleware.NewRateLimiter(
		cfg.RateLimit.MaxRequests,
		cfg.RateLimit.Window,
		cfg.Server.Environment != "test",
	)

	r := router.NewRouter(
		healthController,
		expenseController,
		incomeController,
		budgetController,
		goalController,
		investmentController,
		loanController,
		dashboardController,
		eventsController,
		rateLimiter,
	)

	return &Injector{
		Config:      cfg,
		Store:       store,
		Broadcaster: broadcaster,
		Relay:       relay,
		RateLimiter: rateLimiter,
		Router:      r,
	}
}
