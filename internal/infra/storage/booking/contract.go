package booking

import (
	"context"
	"database/sql"

	"github.com/tadbeer-it/TDB-FieldService/pkg/dbmetrics"
)

// Re-export the dbmetrics executor interfaces for repository consumers
type DBExecutor = dbmetrics.DBExecutor
type TxExecutor = dbmetrics.TxExecutor

// TxBeginner interface for starting transactions.
// Satisfied by *sql.DB and *dbmetrics.DB.
type TxBeginner interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (TxExecutor, error)
}
