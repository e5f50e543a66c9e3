package llm

import "fmt"

// UpstreamError reports a failed generator call: a non-success status from
// the provider, with whatever body it returned for diagnostics.
type UpstreamError struct {
	Status int
	Body   string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("llm: upstream status %d: %s", e.Status, e.Body)
}
