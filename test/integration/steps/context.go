// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/finance-tracker/ledger/config"
	"github.com/finance-tracker/ledger/internal/infra/dependency"
	"github.com/finance-tracker/ledger/internal/integration/persistence"
	"github.com/finance-tracker/ledger/internal/integration/persistence/model"
	"github.com/finance-tracker/ledger/test/integration/mock"
)

// changeChannel is the Redis channel scenarios listen on.
const changeChannel = "ledger:test:changes"

// suite holds resources shared by every scenario.
var suite struct {
	db        *mock.Db
	redis     *redis.Client
	injector  *dependency.Injector
	engine    *gin.Engine
	stopRelay context.CancelFunc
}

// TestContext holds the test state for each scenario.
type TestContext struct {
	// HTTP
	server       *httptest.Server
	response     *http.Response
	responseBody []byte

	// Request building
	requestHeaders map[string]string

	// Values captured from earlier responses, substituted as {name}
	saved map[string]string

	changes *mock.ChangeCollector
}

// contextKey is used to store TestContext in context.Context.
type contextKey struct{}

// GetTestContext retrieves the TestContext from context.
func GetTestContext(ctx context.Context) *TestContext {
	if tc, ok := ctx.Value(contextKey{}).(*TestContext); ok {
		return tc
	}
	return nil
}

// SetTestContext stores the TestContext in context.
func SetTestContext(ctx context.Context, tc *TestContext) context.Context {
	return context.WithValue(ctx, contextKey{}, tc)
}

func testConfig() *config.Config {
	cfg := config.Load()
	cfg.Server.Environment = "test"
	cfg.Store.Driver = config.StoreDriverSQLite
	cfg.Redis.Enabled = true
	cfg.Redis.Channel = changeChannel
	cfg.Notification.PublishTimeout = time.Second
	return cfg
}

// InitializeTestSuite sets up resources before any scenarios run.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		gin.SetMode(gin.TestMode)

		models := make(map[string]any)
		for _, m := range model.All() {
			if tabler, ok := m.(interface{ TableName() string }); ok {
				models[tabler.TableName()] = m
			}
		}

		suite.db = mock.NewDb(models)
		suite.redis = mock.NewRedis()

		store := persistence.NewSQLLedgerStore(suite.db.DbConn)
		suite.injector = dependency.NewInjector(testConfig(), store, suite.redis, func() bool {
			return suite.redis.Ping(context.Background()).Err() == nil
		})
		suite.engine = suite.injector.Router.Setup("test")

		relayCtx, cancel := context.WithCancel(context.Background())
		suite.stopRelay = cancel
		go suite.injector.Relay.Start(relayCtx)
	})

	ctx.AfterSuite(func() {
		if suite.stopRelay != nil {
			suite.stopRelay()
			<-suite.injector.Relay.Done()
		}
	})
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		if err := suite.db.ClearDB(); err != nil {
			return ctx, fmt.Errorf("failed to clear database: %w", err)
		}
		if err := mock.ClearRedis(suite.redis); err != nil {
			return ctx, fmt.Errorf("failed to clear redis: %w", err)
		}

		changes, err := mock.CollectChanges(ctx, suite.redis, changeChannel)
		if err != nil {
			return ctx, fmt.Errorf("failed to subscribe to changes: %w", err)
		}

		tc := &TestContext{
			server:         httptest.NewServer(suite.engine),
			requestHeaders: make(map[string]string),
			saved:          make(map[string]string),
			changes:        changes,
		}

		return SetTestContext(ctx, tc), nil
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		tc := GetTestContext(ctx)
		if tc == nil {
			return ctx, nil
		}
		if tc.server != nil {
			tc.server.Close()
		}
		if tc.changes != nil {
			_ = tc.changes.Close()
		}
		return ctx, nil
	})

	// Register step definitions
	registerAPISteps(ctx)
	registerResponseSteps(ctx)
	registerLedgerSteps(ctx)
}
