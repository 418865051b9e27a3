package entities

import "errors"

var (
	ErrInvalidOrder  = errors.New("invalid order")
	ErrNotFound      = errors.New("not found")
	ErrStoreFailure  = errors.New("store failure")
	ErrPoolExhausted = errors.New("connection pool exhausted")
	ErrDecode        = errors.New("failed to decode order")
	ErrUnexpected    = errors.New("unexpected error")
)

// Retryable reports whether saving an order may succeed on a later attempt.
func Retryable(err error) bool {
	return errors.Is(err, ErrStoreFailure) ||
		errors.Is(err, ErrPoolExhausted) ||
		errors.Is(err, ErrUnexpected)
}
