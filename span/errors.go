package span

import "errors"

var (
	// ErrInvalidInput indicates an endpoint that is not a rational number.
	ErrInvalidInput = errors.New("invalid interval input")

	// ErrDegenerateMapping indicates a coordinate mapping from a zero-length span.
	ErrDegenerateMapping = errors.New("degenerate mapping: source span has zero length")
)
