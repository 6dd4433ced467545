package errs

import "errors"

// Common sentinel errors for cross-layer signaling.
var (
	// ErrNotFound reports a store lookup that matched nothing.
	ErrNotFound = errors.New("not found")
	// ErrConflict signals a uniqueness violation (duplicate username).
	ErrConflict = errors.New("conflict")
	// ErrInvalid is wrapped by every validation failure in the service layer.
	ErrInvalid = errors.New("invalid")
	// ErrUnauthorized indicates credentials that do not match a stored account.
	ErrUnauthorized = errors.New("unauthorized")
)
