//go:build integration

// Package integration drives the ledger API end to end with Godog.
package integration

import (
	"os"
	"testing"

	"github.com/cucumber/godog"
	"github.com/cucumber/godog/colors"

	"github.com/finance-tracker/ledger/test/integration/steps"
)

// TestLedgerFeatures runs every feature under features/ against one shared
// SQLite store and miniredis broker, cleared between scenarios.
func TestLedgerFeatures(t *testing.T) {
	opts := godog.Options{
		Format:        envOr("GODOG_FORMAT", "pretty"),
		Paths:         []string{envOr("GODOG_PATHS", "features")},
		Output:        colors.Colored(os.Stdout),
		Concurrency:   1, // Scenarios share one database and change channel
		Strict:        true,
		StopOnFailure: os.Getenv("GODOG_STOP_ON_FAILURE") == "true",
		TestingT:      t,
	}

	if tags := os.Getenv("GODOG_TAGS"); tags != "" {
		opts.Tags = tags
	}

	suite := godog.TestSuite{
		Name:                 "ledger-api",
		ScenarioInitializer:  steps.InitializeScenario,
		TestSuiteInitializer: steps.InitializeTestSuite,
		Options:              &opts,
	}

	if suite.Run() != 0 {
		t.Fatal("ledger feature suite failed")
	}
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
