package models

import (
	"errors"
	"fmt"
)

// ErrEmptyCSV signals a sheet export with no header or no data rows. It is
// a benign condition, not a transport failure; the endpoint reports it with
// HTTP 200. The message doubles as the client-visible error string.
var ErrEmptyCSV = errors.New("CSV appears empty or headers missing.")

// UpstreamError reports a non-success response from the sheet export URL.
type UpstreamError struct {
	Status int
	Body   string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream returned status %d", e.Status)
}

// BodySnippet returns at most max characters of the upstream response body,
// for debugging misconfigured or unshared sheets.
func (e *UpstreamError) BodySnippet(max int) string {
	if len(e.Body) <= max {
		return e.Body
	}
	return e.Body[:max]
}
