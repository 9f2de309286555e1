//go:build unit

package infra_test

import (
	"errors"
	"testing"

	"campsite-reservation/internal/infra"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestWrapRepoErr(t *testing.T) {
	testCases := []struct {
		name       string
		err        error
		kind       []infra.RepositoryErrorKind
		expectKind infra.RepositoryErrorKind
		retryable  bool
		contention bool
	}{
		{name: "success: no rows", err: pgx.ErrNoRows, expectKind: infra.KindNotFound},
		{name: "success: unique violation", err: &pgconn.PgError{Code: "23505"}, expectKind: infra.KindDuplicateKey},
		{name: "success: foreign key violation", err: &pgconn.PgError{Code: "23503"}, expectKind: infra.KindForeignKeyViolated},
		{name: "success: serialization failure", err: &pgconn.PgError{Code: "40001"}, expectKind: infra.KindSerialization, retryable: true},
		{name: "success: deadlock", err: &pgconn.PgError{Code: "40P01"}, expectKind: infra.KindSerialization, retryable: true},
		{name: "success: lock not available", err: &pgconn.PgError{Code: "55P03"}, expectKind: infra.KindLockTimeout, contention: true},
		{name: "success: statement cancelled", err: &pgconn.PgError{Code: "57014"}, expectKind: infra.KindLockTimeout, contention: true},
		{name: "success: other pg error", err: &pgconn.PgError{Code: "42P01"}, expectKind: infra.KindDBFailure},
		{name: "success: plain error", err: errors.New("eof"), expectKind: infra.KindDBFailure},
		{name: "success: explicit kind wins", err: &pgconn.PgError{Code: "23505"}, kind: []infra.RepositoryErrorKind{infra.KindDBFailure}, expectKind: infra.KindDBFailure},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := infra.WrapRepoErr("query failed", tc.err, tc.kind...)

			assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
			assert.Equal(t, tc.retryable, infra.IsRetryable(err))
			assert.Equal(t, tc.contention, infra.IsContention(err))
			assert.Contains(t, err.Error(), "query failed")
		})
	}
}

func TestNewRepoErr(t *testing.T) {
	err := infra.NewRepoErr(infra.KindStaleVersion, "version changed")

	assert.True(t, infra.IsKind(err, infra.KindStaleVersion))
	assert.False(t, infra.IsKind(err, infra.KindNotFound))
	assert.False(t, infra.IsKind(errors.New("other"), infra.KindStaleVersion))
	assert.Equal(t, "STALE_VERSION: version changed", err.Error())
}
