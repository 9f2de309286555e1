package shared

import (
	"campsite-reservation/internal/infra"
	"campsite-reservation/internal/pkg/errs"
)

var (
	ErrReservationNotFound = errs.Mark(errs.New("reservation not found"), errs.ErrNotFound)
	ErrPeriodOccupied      = errs.Mark(errs.New("the requested period is already occupied"), errs.ErrConflict)
	// the row changed between read and write; the whole command can be retried
	ErrConcurrentModification = errs.Mark(errs.New("reservation was modified concurrently"), errs.ErrTransient)
	// markers and reservation rows disagree; the transaction is rolled back
	ErrAvailabilityIndexCorrupted = errs.New("availability index out of sync with reservations")
)

// TranslateLookupErr maps a repository lookup failure onto the use case vocabulary.
func TranslateLookupErr(err error) error {
	switch {
	case err == nil:
		return nil
	case infra.IsKind(err, infra.KindNotFound):
		return ErrReservationNotFound
	default:
		return err
	}
}

// TranslateWriteErr maps a repository write failure onto the use case vocabulary.
func TranslateWriteErr(err error) error {
	switch {
	case err == nil:
		return nil
	case infra.IsKind(err, infra.KindDuplicateKey):
		return errs.Wrap(ErrPeriodOccupied, err.Error())
	case infra.IsKind(err, infra.KindStaleVersion):
		return errs.Wrap(ErrConcurrentModification, err.Error())
	case infra.IsKind(err, infra.KindNotFound):
		return ErrReservationNotFound
	default:
		return err
	}
}
