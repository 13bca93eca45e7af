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

// MenuState reads the stored state of a menu, including deleted ones.
func MenuState(t *testing.T, db DBLike, menuID uuid.UUID) string {
	t.Helper()

	var state string
	err := db.QueryRow(context.Background(), "SELECT state FROM menus WHERE id = $1", menuID).Scan(&state)
	require.NoError(t, err)
	return state
}

func CountActiveMenus(t *testing.T, db DBLike, cafeID uuid.UUID) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(),
		"SELECT count(*) FROM menus WHERE cafe_id = $1 AND state = 'active'", cafeID).Scan(&n)
	require.NoError(t, err)
	return n
}

// CountContent counts the section and item rows stored for a menu.
func CountContent(t *testing.T, db DBLike, menuID uuid.UUID) (sections, items int) {
	t.Helper()

	ctx := context.Background()
	err := db.QueryRow(ctx, "SELECT count(*) FROM menu_sections WHERE menu_id = $1", menuID).Scan(&sections)
	require.NoError(t, err)
	err = db.QueryRow(ctx,
		"SELECT count(*) FROM menu_items i JOIN menu_sections s ON s.id = i.section_id WHERE s.menu_id = $1",
		menuID).Scan(&items)
	require.NoError(t, err)
	return sections, items
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// ResetDB truncates every table in the public schema.
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'`)
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
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
