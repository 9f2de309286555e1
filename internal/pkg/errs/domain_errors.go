package errs

// Error kinds shared by every layer. Concrete errors are marked with one of
// these so the boundary can translate them without knowing the concrete type.
var (
	// malformed or out-of-policy input; retrying with the same input fails again
	ErrValidation = New("validation failed")
	// the requested period is claimed by another active reservation
	ErrConflict = New("conflict")
	ErrNotFound = New("not found")
	// operation is invalid for the current state of the target
	ErrNotAllowed = New("operation not allowed")
	// lock or serialization contention; safe to retry
	ErrTransient = New("transient failure")
)

// KindOf returns the kind sentinel carried by err, or nil.
func KindOf(err error) error {
	for _, kind := range []error{ErrValidation, ErrConflict, ErrNotFound, ErrNotAllowed, ErrTransient} {
		if Is(err, kind) {
			return kind
		}
	}
	return nil
}
