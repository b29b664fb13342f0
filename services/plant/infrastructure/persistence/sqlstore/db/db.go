// Package db holds the SQL statements for the plant schema.
package db

import (
	"context"
	"database/sql"

	"github.com/ghuser/grow/pkg/database"
)

// DBTX is satisfied by both *sql.DB and *sql.Tx.
type DBTX interface {
	ExecContext(context.Context, string, ...interface{}) (sql.Result, error)
	QueryContext(context.Context, string, ...interface{}) (*sql.Rows, error)
	QueryRowContext(context.Context, string, ...interface{}) *sql.Row
}

// New returns Queries bound to db. driver selects the placeholder syntax.
func New(db DBTX, driver string) *Queries {
	return &Queries{db: db, driver: driver}
}

type Queries struct {
	db     DBTX
	driver string
}

func (q *Queries) sql(query string) string {
	return database.Rebind(q.driver, query)
}
