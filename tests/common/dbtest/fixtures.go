//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// ResetDB truncates every application table so each subtest starts from an
// empty ledger. Sellers live in JWT claims only, so there is no reference
// data to reseed.
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return nil
}

// PoolState reads the persisted committed count and status of one pool.
func PoolState(t *testing.T, db DBLike, poolID uuid.UUID) (int, string) {
	t.Helper()

	var committed int
	var status string
	err := db.QueryRow(context.Background(),
		"SELECT committed, status FROM pools WHERE id = $1", poolID).Scan(&committed, &status)
	require.NoError(t, err)
	return committed, status
}

// SaleState reads the persisted paid amount and status of one sale.
func SaleState(t *testing.T, db DBLike, saleID uuid.UUID) (string, string) {
	t.Helper()

	var paid, status string
	err := db.QueryRow(context.Background(),
		"SELECT paid_amount::text, status FROM sales WHERE id = $1", saleID).Scan(&paid, &status)
	require.NoError(t, err)
	return paid, status
}

// CountRows counts the rows of one table, optionally filtered.
func CountRows(t *testing.T, db DBLike, table, where string, args ...any) int {
	t.Helper()

	query := "SELECT count(*) FROM " + table
	if where != "" {
		query += " WHERE " + where
	}
	var n int
	err := db.QueryRow(context.Background(), query, args...).Scan(&n)
	require.NoError(t, err)
	return n
}
