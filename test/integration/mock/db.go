// Package mock provides test doubles for the BDD integration suite.
package mock

import (
	"database/sql"
	"sync"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var dbOnce sync.Once
var dbConn *gorm.DB

// NewDb returns a shared in-memory SQLite connection for the document store.
// The connection lives for the whole suite; scenarios reset state by wiping
// the stored documents, not by reopening the database.
func NewDb() *gorm.DB {
	dbOnce.Do(func() {
		dbConn = open()
	})
	return dbConn
}

func open() *gorm.DB {
	dbSQL, err := sql.Open("sqlite", "file::memory:?cache=shared")
	if err != nil {
		panic(err)
	}

	// SQLite handles one writer at a time.
	dbSQL.SetMaxOpenConns(1)

	conn, err := gorm.Open(sqlite.Dialector{Conn: dbSQL}, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		panic("failed to connect to database. err: " + err.Error())
	}

	return conn
}
