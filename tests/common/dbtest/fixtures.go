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

	"campsite-reservation/internal/pkg/calendar"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// CreateTestReservation inserts an active reservation together with its occupied days.
func CreateTestReservation(t *testing.T, db DBLike, guestName, guestEmail string, checkin, checkout time.Time) uuid.UUID {
	t.Helper()

	id := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx, `INSERT INTO reservations (id, guest_name, guest_email, checkin_date, checkout_date)
		VALUES ($1, $2, $3, $4, $5)`,
		id, guestName, guestEmail, calendar.Format(checkin), calendar.Format(checkout))
	require.NoError(t, err)

	for _, day := range calendar.DaysInRange(checkin, checkout) {
		_, err := db.Exec(ctx, "INSERT INTO occupied_days (day, reservation_id) VALUES ($1, $2)",
			calendar.Format(day), id)
		require.NoError(t, err)
	}

	return id
}

// CountOccupiedDays counts the markers held by reservationID.
func CountOccupiedDays(t *testing.T, db DBLike, reservationID uuid.UUID) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(),
		"SELECT count(*) FROM occupied_days WHERE reservation_id = $1", reservationID).Scan(&n)
	require.NoError(t, err)
	return n
}

// CountEvents counts the outbox rows written for reservationID, optionally only those in status.
func CountEvents(t *testing.T, db DBLike, reservationID uuid.UUID, status ...string) int {
	t.Helper()

	query := "SELECT count(*) FROM reservation_events WHERE payload->>'reservation_id' = $1"
	args := []any{reservationID.String()}
	if len(status) > 0 {
		query += " AND status = $2"
		args = append(args, status[0])
	}

	var n int
	err := db.QueryRow(context.Background(), query, args...).Scan(&n)
	require.NoError(t, err)
	return n
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables
func ResetDB(pool PoolLike) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('atlas_schema_revisions')`)
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
