package loader

import (
	"errors"
	"fmt"
)

var (
	// ErrSourceUnavailable covers every failure to obtain the document
	// bytes: missing file, unreachable host, non-2xx status.
	ErrSourceUnavailable = errors.New("projects source unavailable")

	// ErrDecodeFailed covers a retrieved document that is not valid JSON
	// or does not decode to a project sequence.
	ErrDecodeFailed = errors.New("projects document malformed")
)

// LoadError wraps a retrieval or decode failure with its kind and the
// source it came from. Callers that only want the user-facing fallback
// can treat it as one opaque error; diagnostics can errors.Is against
// the kind sentinels.
type LoadError struct {
	Kind   error
	Source string
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Kind.Error(), e.Source, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Kind }

func sourceErr(source string, err error) error {
	return &LoadError{Kind: ErrSourceUnavailable, Source: source, Err: err}
}

func decodeErr(source string, err error) error {
	return &LoadError{Kind: ErrDecodeFailed, Source: source, Err: err}
}
