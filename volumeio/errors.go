package volumeio

import "errors"

// ErrIOFailure wraps any underlying filesystem or short-read condition
// encountered by the reference adapter. Never retried internally.
var ErrIOFailure = errors.New("volumeio: i/o failure")
