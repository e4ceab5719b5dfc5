package source

import (
	"errors"
	"fmt"
)

// ErrFetch is matched by every retrieval failure. Fetches are never retried.
var ErrFetch = errors.New("source: fetch failed")

// FetchError describes a failed retrieval. Status is zero for transport and
// filesystem failures.
type FetchError struct {
	Location string
	Status   int
	Err      error
}

func (e *FetchError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("source: fetch %s: HTTP status %d", e.Location, e.Status)
	}
	return fmt.Sprintf("source: fetch %s: %v", e.Location, e.Err)
}

func (e *FetchError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrFetch}
	}
	return []error{ErrFetch, e.Err}
}
