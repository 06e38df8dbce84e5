package kmedoids

import "errors"

// ErrInvalidInput reports a caller contract violation: data that is not a
// well-formed 2-D matrix, an out-of-range k, NaN entries, or an invalid
// Config. Every validation failure wraps it with a descriptive cause, so
// callers can match with errors.Is.
var ErrInvalidInput = errors.New("kmedoids: invalid input")
