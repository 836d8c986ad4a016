package pgsql

import "github.com/jackc/pgx/v5/pgxpool"

// BaseRepository holds the shared connection pool. The search core is
// read-only, so repositories issue plain queries without transactions.
type BaseRepository struct {
	Pool *pgxpool.Pool
}
