package pgconv

import (
	"errors"
	"time"

	"campsite-reservation/internal/pkg/calendar"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

func DateToPgtype(day time.Time) pgtype.Date {
	return pgtype.Date{Time: calendar.Truncate(day), Valid: true}
}

func DatePtrToPgtype(day *time.Time) pgtype.Date {
	if day == nil {
		return pgtype.Date{Valid: false}
	}
	return DateToPgtype(*day)
}

func DatesToPgtype(days []time.Time) []pgtype.Date {
	out := make([]pgtype.Date, len(days))
	for i, d := range days {
		out[i] = DateToPgtype(d)
	}
	return out
}

func DateFromPgtype(pd pgtype.Date) time.Time {
	return calendar.Truncate(pd.Time)
}

func DatePtrFromPgtype(pd pgtype.Date) *time.Time {
	if !pd.Valid {
		return nil
	}
	d := DateFromPgtype(pd)
	return &d
}

func StringPtrFromPgtype(pt pgtype.Text) *string {
	if !pt.Valid {
		return nil
	}
	return &pt.String
}

func StringToPgtype(s string) pgtype.Text {
	return pgtype.Text{String: s, Valid: true}
}

func TimeFromPgtype(pt pgtype.Timestamptz) time.Time {
	return pt.Time
}

func TimeToPgtype(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: t, Valid: true}
}

// IsNoRows checks if the error is pgx's "no rows" error
func IsNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}
