package kafconf

import (
	"errors"
	"fmt"
)

// Sentinel errors for errors.Is() checking. Every resolution failure wraps
// exactly one of these.
var (
	// ErrMissingKey reports a required key absent from the fully-merged tree.
	ErrMissingKey = errors.New("missing required key")

	// ErrTypeMismatch reports a key whose value cannot be coerced to the
	// expected type.
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrUnknownEnum reports an enumerated field set to a code outside its
	// fixed table.
	ErrUnknownEnum = errors.New("unrecognized enum code")

	// ErrSourceNotFound reports a config source that does not exist or cannot
	// be parsed. It is raised before any field extraction begins.
	ErrSourceNotFound = errors.New("config source not found")
)

// KeyError ties a resolution failure to the config key that caused it.
// Err wraps one of the sentinel errors above.
type KeyError struct {
	Key string
	Err error
}

func (e *KeyError) Error() string {
	return fmt.Sprintf("resolving %s: %v", e.Key, e.Err)
}

func (e *KeyError) Unwrap() error { return e.Err }

// SourceError reports a config source that could not be loaded. It unwraps to
// both ErrSourceNotFound and the underlying parser or filesystem error.
type SourceError struct {
	Source string
	Err    error
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("config source %s: %v", e.Source, e.Err)
}

func (e *SourceError) Unwrap() []error {
	return []error{ErrSourceNotFound, e.Err}
}
