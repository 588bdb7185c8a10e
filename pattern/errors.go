package pattern

import "errors"

// ErrNoEvents indicates a document with neither events nor a sequence.
var ErrNoEvents = errors.New("document has no events or sequence")
