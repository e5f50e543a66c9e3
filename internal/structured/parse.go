package structured

import (
	"encoding/json"
	"strings"
)

// DecodeError reports a candidate span that did not decode as JSON. Raw is
// the text that failed, kept verbatim for the repair prompt and diagnostics.
type DecodeError struct {
	Reason string
	Raw    string
}

func (e *DecodeError) Error() string { return "structured: " + e.Reason }

// Parse validates span as a single JSON value and returns it verbatim. An
// empty or whitespace-only span fails immediately without invoking the
// decoder. Numbers are decoded with UseNumber so nothing is rounded through
// float64 on the way in.
func Parse(span string) (json.RawMessage, error) {
	if strings.TrimSpace(span) == "" {
		return nil, &DecodeError{Reason: "empty candidate text", Raw: span}
	}
	dec := json.NewDecoder(strings.NewReader(span))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, &DecodeError{Reason: err.Error(), Raw: span}
	}
	return json.RawMessage(span), nil
}
