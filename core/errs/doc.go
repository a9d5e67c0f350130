// Package errs defines the error taxonomy shared by all features.
//
// Services return errors wrapping one of the sentinels (ErrNotFound,
// ErrConflict, ErrValidation, ErrPersistence). HTTP handlers translate them
// into status codes (404, 409, 422, 500) without inspecting error strings.
package errs
