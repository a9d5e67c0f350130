package errs

import "errors"

// Sentinel errors for the service layer. Handlers map these to HTTP status
// codes; services wrap them with fmt.Errorf("...: %w", ...) for context.
var (
	// ErrNotFound indicates a lookup miss (unknown employee or session).
	ErrNotFound = errors.New("not found")

	// ErrConflict indicates a business rule collision, e.g. a duplicate
	// employee code, a device with an open session, or a double close.
	ErrConflict = errors.New("conflict")

	// ErrValidation indicates malformed input, e.g. a negative snapshot
	// quantity or a missing required field.
	ErrValidation = errors.New("validation failed")

	// ErrPersistence indicates an underlying store failure. Fatal for the
	// in-flight operation; never retried automatically.
	ErrPersistence = errors.New("persistence failure")
)

// IsNotFound reports whether err wraps ErrNotFound.
func IsNotFound(err error) bool { return errors.Is(err, ErrNotFound) }

// IsConflict reports whether err wraps ErrConflict.
func IsConflict(err error) bool { return errors.Is(err, ErrConflict) }

// IsValidation reports whether err wraps ErrValidation.
func IsValidation(err error) bool { return errors.Is(err, ErrValidation) }

// StatusCode maps a service error to an HTTP status code.
func StatusCode(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return 404
	case errors.Is(err, ErrConflict):
		return 409
	case errors.Is(err, ErrValidation):
		return 422
	default:
		return 500
	}
}
