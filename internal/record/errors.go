package record

import (
	"errors"
	"fmt"
)

// Errors shared by the source adapters.
var (
	// ErrNotFound indicates the requested identifier has no record upstream.
	ErrNotFound = errors.New("record not found")

	// ErrMalformedResponse indicates the upstream body could not be parsed.
	ErrMalformedResponse = errors.New("malformed upstream response")
)

// UpstreamError represents a transport or HTTP level failure while talking
// to a metadata source.
type UpstreamError struct {
	Source Source
	Status int // HTTP status code, 0 for connection-level failures
	Detail string
}

func (e *UpstreamError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s: upstream error (status %d): %s", e.Source, e.Status, e.Detail)
	}
	return fmt.Sprintf("%s: upstream error: %s", e.Source, e.Detail)
}

// IsNotFound returns true if the error indicates a missing upstream record.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
