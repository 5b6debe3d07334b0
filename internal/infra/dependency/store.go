package dependency

import (
	"fmt"

	"github.com/finance-tracker/ledger/config"
	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/infra/db"
	"github.com/finance-tracker/ledger/internal/integration/persistence"
	"github.com/finance-tracker/ledger/internal/integration/persistence/model"
)

// OpenLedgerStore creates the store selected by cfg.Driver.
// A SQLite store is migrated before it is returned.
func OpenLedgerStore(cfg *config.StoreConfig) (adapter.LedgerStore, error) {
	switch cfg.Driver {
	case config.StoreDriverMemory, "":
		return persistence.NewMemoryLedgerStore(), nil
	case config.StoreDriverSQLite:
		database, err := db.NewSQLiteConnection(cfg)
		if err != nil {
			return nil, err
		}
		if err := database.AutoMigrate(model.All()...); err != nil {
			_ = database.Close()
			return nil, err
		}
		return persistence.NewSQLLedgerStore(database.DB()), nil
	default:
		return nil, fmt.Errorf("unsupported store driver %q", cfg.Driver)
	}
}
