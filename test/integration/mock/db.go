package mock

import (
	"database/sql"
	"fmt"
	"strings"
	"sync"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var once sync.Once
var db *Db

// Db is a shared in-memory SQLite database whose tables are rebuilt for every scenario.
type Db struct {
	DbConn *gorm.DB
	models map[string]any
}

// NewDb opens the shared database once and migrates the given models, keyed by table name.
func NewDb(models map[string]any) *Db {
	once.Do(
		func() {
			db = open(models)
		},
	)

	return db
}

func open(models map[string]any) *Db {
	dbSQL, err := sql.Open("sqlite", "file::memory:?cache=shared")
	if err != nil {
		panic(err)
	}

	dbSQL.SetMaxOpenConns(1)

	dbConn, err := gorm.Open(sqlite.Dialector{Conn: dbSQL}, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		panic("failed to connect to database. err: " + err.Error())
	}

	newDbMock := &Db{
		DbConn: dbConn,
		models: models,
	}

	if err := newDbMock.init(); err != nil {
		panic(fmt.Sprintf("failed to migrate database. err: %s", err.Error()))
	}

	return newDbMock
}

// ClearDB removes every row and resets the autoincrement counters.
func (d *Db) ClearDB() error {
	if err := d.checkTables(); err != nil {
		if err := d.init(); err != nil {
			return err
		}
	}

	return d.reset()
}

func (d *Db) init() error {
	return d.DbConn.Transaction(func(tx *gorm.DB) error {
		modelList := make([]any, 0, len(d.models))
		for table, model := range d.models {
			modelList = append(modelList, model)

			if err := tx.Exec(fmt.Sprintf("DROP TABLE IF EXISTS %s", table)).Error; err != nil {
				return err
			}
		}

		if err := tx.AutoMigrate(modelList...); err != nil {
			return err
		}

		for table, model := range d.models {
			if !tx.Migrator().HasTable(model) {
				return fmt.Errorf("table %s was not created", table)
			}
		}

		return nil
	})
}

func (d *Db) reset() error {
	for table, model := range d.models {
		err := d.DbConn.Session(&gorm.Session{AllowGlobalUpdate: true}).Unscoped().Delete(model).Error
		if err != nil {
			return err
		}

		err = d.DbConn.Exec("DELETE FROM sqlite_sequence WHERE name = ?", table).Error
		if err != nil && !strings.Contains(err.Error(), "no such table: sqlite_sequence") {
			return err
		}
	}

	return nil
}

func (d *Db) checkTables() error {
	for table, model := range d.models {
		if !d.DbConn.Migrator().HasTable(model) {
			return fmt.Errorf("table %s is missing", table)
		}
	}

	return nil
}

// GetModel returns the model registered for a table.
func (d *Db) GetModel(table string) (any, bool) {
	model, ok := d.models[table]
	return model, ok
}

// Count returns the number of rows in a registered table.
func (d *Db) Count(table string) (int64, error) {
	model, ok := d.models[table]
	if !ok {
		return 0, fmt.Errorf("table %s is not registered", table)
	}

	var count int64
	if err := d.DbConn.Model(model).Count(&count).Error; err != nil {
		return 0, err
	}

	return count, nil
}
