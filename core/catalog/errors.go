package catalog

import (
	"errors"
	"fmt"
)

var (
	// ErrLoadFailed wraps every failure of a dataset load (transport, status, decode).
	ErrLoadFailed = errors.New("dataset load failed")
	// ErrInvalidTournament is returned for tournament names that cannot name a dataset.
	ErrInvalidTournament = errors.New("invalid tournament name")
	// ErrUnknownMode is returned by New for an unsupported execution mode.
	ErrUnknownMode = errors.New("unknown catalog mode")
)

// StatusError reports a non-success HTTP response for a dataset.
type StatusError struct {
	Kind       string
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("fetch %s: unexpected status %d for %s", e.URL, e.StatusCode, e.Kind)
}
