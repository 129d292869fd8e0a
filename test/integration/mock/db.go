package mock

import (
	"database/sql"
	"fmt"
	"sync"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	dbinfra "github.com/bcrezende/erp-rezendetech-sub000/internal/infra/db"
	"github.com/bcrezende/erp-rezendetech-sub000/internal/integration/persistence/model"
)

var once sync.Once
var db *Db

// Db is an in-memory SQLite database with the full ERP schema.
type Db struct {
	DbConn *gorm.DB
	models map[string]any
	tables []string
}

// NewDb opens the process-wide test database on first use.
func NewDb() *Db {
	once.Do(
		func() {
			db = open()
		},
	)

	return db
}

func open() *Db {
	dbSQL, err := sql.Open("sqlite", "file:erp?mode=memory&cache=shared")
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

	if err := dbinfra.Migrate(dbConn); err != nil {
		panic(err)
	}

	newDbMock := &Db{
		DbConn: dbConn,
		models: map[string]any{},
	}
	for _, m := range model.All() {
		stmt := &gorm.Statement{DB: dbConn}
		if err := stmt.Parse(m); err != nil {
			panic(err)
		}
		newDbMock.models[stmt.Schema.Table] = m
		newDbMock.tables = append(newDbMock.tables, stmt.Schema.Table)
	}

	return newDbMock
}

// ClearDB deletes every row, children first.
func (d *Db) ClearDB() error {
	for i := len(d.tables) - 1; i >= 0; i-- {
		if err := d.DbConn.Exec(fmt.Sprintf("DELETE FROM %s", d.tables[i])).Error; err != nil {
			return fmt.Errorf("failed to clear %s: %w", d.tables[i], err)
		}
	}
	return nil
}

func (d *Db) GetModel(table string) (any, bool) {
	m, ok := d.models[table]
	return m, ok
}
