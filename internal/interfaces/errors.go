package interfaces

import "errors"

var (
	// ErrNotFound is returned when an operation references an entity id that
	// does not exist in the store.
	ErrNotFound = errors.New("entity not found")

	// ErrSnapshotNotFound is returned when a persisted snapshot key is absent.
	// Absence is not an error condition for callers: it means "seed defaults".
	ErrSnapshotNotFound = errors.New("snapshot not found")

	// ErrNotAuthorized is returned when a mutation is attempted by a user
	// whose role does not permit it.
	ErrNotAuthorized = errors.New("not authorized")

	// ErrAlreadyResolved is returned when a status change targets a signal
	// that has already left ACTIVE. Resolved signals are immutable except for
	// deletion.
	ErrAlreadyResolved = errors.New("signal already resolved")

	// ErrInvalidAccessCode is returned by the login gate on a wrong code.
	ErrInvalidAccessCode = errors.New("invalid access code")
)
