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

// returns ticket counts keyed by state, straight from the tickets table
func TicketStateCounts(t *testing.T, db DBLike, raffleID uuid.UUID) map[string]int {
	t.Helper()

	ctx := context.Background()
	counts := map[string]int{}
	for _, state := range []string{"available", "reserved", "sold"} {
		var n int
		err := db.QueryRow(ctx, "SELECT count(*) FROM tickets WHERE raffle_id = $1 AND state = $2", raffleID, state).Scan(&n)
		require.NoError(t, err)
		counts[state] = n
	}
	return counts
}

// reads the stored counters of a raffle
func RaffleCounters(t *testing.T, db DBLike, raffleID uuid.UUID) (available, reserved, sold int) {
	t.Helper()

	err := db.QueryRow(context.Background(),
		"SELECT available_tickets, reserved_tickets, sold_tickets FROM raffles WHERE id = $1", raffleID).
		Scan(&available, &reserved, &sold)
	require.NoError(t, err)
	return available, reserved, sold
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables
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
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
