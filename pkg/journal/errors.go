package journal

import "errors"

var (
	// ErrInvalidInput is returned by the builder for empty text or a malformed analysis.
	ErrInvalidInput = errors.New("invalid input")
	// ErrDuplicateID means two entries share an id. Ids come from the generator,
	// so this is a programming error rather than a user-facing one.
	ErrDuplicateID = errors.New("duplicate entry id")
)
