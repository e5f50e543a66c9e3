package structured

import (
	"encoding/json"
	"errors"
	"reflect"
	"testing"
)

func TestParseEmptyFailsWithoutDecoding(t *testing.T) {
	for _, span := range []string{"", "   ", "\n\t"} {
		_, err := Parse(span)
		var derr *DecodeError
		if !errors.As(err, &derr) {
			t.Fatalf("expected DecodeError for %q, got %v", span, err)
		}
	}
}

func TestParseInvalidCarriesRawText(t *testing.T) {
	raw := `{"a": oops}`
	_, err := Parse(raw)
	var derr *DecodeError
	if !errors.As(err, &derr) {
		t.Fatalf("expected DecodeError, got %v", err)
	}
	if derr.Raw != raw {
		t.Fatalf("Raw = %q, want %q", derr.Raw, raw)
	}
	if derr.Reason == "" {
		t.Fatal("expected a decode reason")
	}
}

func TestParseValidReturnsSpanVerbatim(t *testing.T) {
	span := `{"a": 1, "b": "x"}`
	out, err := Parse(span)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if string(out) != span {
		t.Fatalf("got %q, want %q", out, span)
	}
}

func TestRoundTripThroughExtractAndParse(t *testing.T) {
	values := []any{
		map[string]any{"x": float64(1)},
		map[string]any{"a": "{not json}", "b": []any{float64(1), float64(2)}},
		map[string]any{"quote": `x"y`, "slash": `a\b`},
		map[string]any{"nested": map[string]any{"deep": map[string]any{"n": float64(3)}}},
	}
	for _, v := range values {
		enc, err := json.Marshal(v)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		span := FirstJSONObject("noise before " + string(enc) + " noise after")
		out, err := Parse(span)
		if err != nil {
			t.Fatalf("parse %q: %v", span, err)
		}
		var got any
		if err := json.Unmarshal(out, &got); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if !reflect.DeepEqual(got, v) {
			t.Fatalf("round trip mismatch: got %#v, want %#v", got, v)
		}
	}
}
