package steps

import (
	"context"
	"fmt"
	"time"

	"github.com/cucumber/godog"

	"github.com/finance-tracker/ledger/internal/domain/entity"
)

// changeWait bounds how long a scenario waits for the relay to publish.
const changeWait = 2 * time.Second

// registerLedgerSteps registers steps that inspect the store and the change channel.
func registerLedgerSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^the db should contain (\d+) objects? in the "([^"]*)" table$`, theDbShouldContainObjectsInTheTable)
	ctx.Step(`^(\d+) "([^"]*)" changes? should be published$`, changesShouldBePublished)
}

func theDbShouldContainObjectsInTheTable(ctx context.Context, expected int, table string) error {
	count, err := suite.db.Count(table)
	if err != nil {
		return err
	}
	if count != int64(expected) {
		return fmt.Errorf("expected %d rows in %s, got %d", expected, table, count)
	}
	return nil
}

func changesShouldBePublished(ctx context.Context, expected int, kind string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	deadline := time.Now().Add(changeWait)
	for {
		got := tc.changes.Count(entity.ChangeKind(kind))
		if got == expected {
			return nil
		}
		if got > expected || time.Now().After(deadline) {
			return fmt.Errorf("expected %d %s changes, got %d", expected, kind, got)
		}
		time.Sleep(20 * time.Millisecond)
	}
}
