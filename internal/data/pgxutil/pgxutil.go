// Package pgxutil bridges database/sql pools to pgx-native calls so row
// scanning helpers like pgx.CollectOneRow can be used on shared pools.
package pgxutil

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
)

// WithPgxConn checks a raw connection out of db, unwraps the underlying
// *pgx.Conn, and runs fn against it. The checkout is returned to the pool
// when fn completes.
func WithPgxConn(ctx context.Context, db *sql.DB, fn func(conn *pgx.Conn) error) error {
	sqlConn, err := db.Conn(ctx)
	if err != nil {
		return fmt.Errorf("acquire connection: %w", err)
	}
	defer sqlConn.Close()

	return sqlConn.Raw(func(driverConn any) error {
		stdlibConn, ok := driverConn.(*stdlib.Conn)
		if !ok {
			return fmt.Errorf("unexpected driver connection type %T", driverConn)
		}
		return fn(stdlibConn.Conn())
	})
}
