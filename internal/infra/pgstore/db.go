// Package pgstore holds the SQL for the menu tables and the row types it reads
// and writes. Callers pass the connection, or the transaction, on every call.
package pgstore

import (
	"cafe-menu-service/internal/infra/db"
)

type DBTX = db.DBTX

type Queries struct{}

func New() *Queries {
	return &Queries{}
}
