//go:build unit

package uow

import (
	"errors"
	"testing"
	"time"

	"campsite-reservation/internal/infra"
	"campsite-reservation/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestCalculateBackoff(t *testing.T) {
	base := 50 * time.Millisecond
	for attempt := range 4 {
		want := time.Duration(1<<attempt) * base
		for range 20 {
			got := calculateBackoff(attempt, base)
			assert.GreaterOrEqual(t, got, want)
			assert.Less(t, got, want+want/5+time.Nanosecond)
		}
	}
}

func TestCryptoRandInt63n(t *testing.T) {
	assert.Zero(t, cryptoRandInt63n(0))
	assert.Zero(t, cryptoRandInt63n(-5))
	for range 100 {
		n := cryptoRandInt63n(7)
		assert.GreaterOrEqual(t, n, int64(0))
		assert.Less(t, n, int64(7))
	}
}

func TestMarkContention(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		transient bool
	}{
		{name: "lock not available", err: &pgconn.PgError{Code: infra.PgErrCodeLockNotAvailable}, transient: true},
		{name: "lock timeout", err: infra.WrapRepoErr("lock days", &pgconn.PgError{Code: infra.PgErrCodeQueryCanceled}), transient: true},
		{name: "unique violation", err: &pgconn.PgError{Code: infra.PgErrCodeUniqueViolation}},
		{name: "plain error", err: errors.New("boom")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := markContention(tt.err)

			assert.Equal(t, tt.transient, errs.Is(got, errs.ErrTransient))
			assert.ErrorIs(t, got, tt.err)
		})
	}
}
