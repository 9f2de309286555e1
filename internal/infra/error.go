package infra

import (
	"errors"

	"campsite-reservation/internal/pkg/errs"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type RepositoryErrorKind string

type RepositoryError struct {
	Kind RepositoryErrorKind
	msg  string
	err  error // wrapped low-level error
}

func (e RepositoryError) Error() string {
	if e.err != nil {
		return string(e.Kind) + ": " + e.msg + ": " + e.err.Error()
	}
	return string(e.Kind) + ": " + e.msg
}

func (e RepositoryError) Unwrap() error {
	return e.err
}

// WrapRepoErr classifies err by its PostgreSQL error code unless kind is given explicitly.
func WrapRepoErr(msg string, err error, kind ...RepositoryErrorKind) error {
	k := classify(err)
	if len(kind) > 0 {
		k = kind[0]
	}
	if err != nil {
		err = errs.Wrap(err, msg)
	}
	return RepositoryError{Kind: k, msg: msg, err: err}
}

func NewRepoErr(kind RepositoryErrorKind, msg string) error {
	return RepositoryError{Kind: kind, msg: msg}
}

func IsKind(err error, kind RepositoryErrorKind) bool {
	var e RepositoryError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// Infrastructure-specific error kinds
const (
	KindNotFound           RepositoryErrorKind = "NOT_FOUND"
	KindDBFailure          RepositoryErrorKind = "DB_FAILURE"
	KindDuplicateKey       RepositoryErrorKind = "DUPLICATE_KEY"
	KindForeignKeyViolated RepositoryErrorKind = "FOREIGN_KEY_VIOLATED"
	KindStaleVersion       RepositoryErrorKind = "STALE_VERSION"
	KindLockTimeout        RepositoryErrorKind = "LOCK_TIMEOUT"
	KindSerialization      RepositoryErrorKind = "SERIALIZATION_FAILURE"
)

const (
	PgErrCodeUniqueViolation      = "23505"
	PgErrCodeForeignKeyViolation  = "23503"
	PgErrCodeSerializationFailure = "40001"
	PgErrCodeDeadlockDetected     = "40P01"
	PgErrCodeLockNotAvailable     = "55P03"
	PgErrCodeQueryCanceled        = "57014"
)

func classify(err error) RepositoryErrorKind {
	if errors.Is(err, pgx.ErrNoRows) {
		return KindNotFound
	}
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return KindDBFailure
	}
	switch pgErr.Code {
	case PgErrCodeUniqueViolation:
		return KindDuplicateKey
	case PgErrCodeForeignKeyViolation:
		return KindForeignKeyViolated
	case PgErrCodeSerializationFailure, PgErrCodeDeadlockDetected:
		return KindSerialization
	case PgErrCodeLockNotAvailable, PgErrCodeQueryCanceled:
		return KindLockTimeout
	default:
		return KindDBFailure
	}
}

// IsRetryable reports whether the transaction that produced err may simply be run again.
func IsRetryable(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	switch pgErr.Code {
	case PgErrCodeSerializationFailure, PgErrCodeDeadlockDetected:
		return true
	default:
		return false
	}
}

// IsContention reports lock waits that gave up; callers may retry later.
func IsContention(err error) bool {
	if IsKind(err, KindLockTimeout) {
		return true
	}
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == PgErrCodeLockNotAvailable || pgErr.Code == PgErrCodeQueryCanceled
}
