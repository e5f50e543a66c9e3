package structured

import "testing"

func TestFirstJSONObjectNoBrace(t *testing.T) {
	for _, text := range []string{"", "no json here", "just } a closer", `"quoted" prose`} {
		if got := FirstJSONObject(text); got != "" {
			t.Fatalf("expected empty for %q, got %q", text, got)
		}
	}
}

func TestFirstJSONObjectSurroundingProse(t *testing.T) {
	obj := `{"x":1}`
	text := "Sure! Here is the data: " + obj + " Hope that helps."
	if got := FirstJSONObject(text); got != obj {
		t.Fatalf("got %q, want %q", got, obj)
	}
}

func TestFirstJSONObjectBracesInsideStrings(t *testing.T) {
	obj := `{"a": "{not json}"}`
	if got := FirstJSONObject("prefix " + obj + " suffix"); got != obj {
		t.Fatalf("got %q, want %q", got, obj)
	}
}

func TestFirstJSONObjectEscapedQuotes(t *testing.T) {
	obj := `{"a": "x\"y"}`
	if got := FirstJSONObject(obj); got != obj {
		t.Fatalf("got %q, want %q", got, obj)
	}
	// A literal backslash before the closing quote must not swallow it.
	obj = `{"a": "x\\"}`
	if got := FirstJSONObject(obj + " tail"); got != obj {
		t.Fatalf("got %q, want %q", got, obj)
	}
}

func TestFirstJSONObjectTruncated(t *testing.T) {
	for _, text := range []string{`{"a": 1, "b": {`, `{"a": "unterminated`, `{`} {
		if got := FirstJSONObject(text); got != "" {
			t.Fatalf("expected empty for truncated %q, got %q", text, got)
		}
	}
}

func TestFirstJSONObjectNested(t *testing.T) {
	obj := `{"a": {"b": {"c": 1}}, "d": [1, 2]}`
	if got := FirstJSONObject(obj); got != obj {
		t.Fatalf("got %q, want %q", got, obj)
	}
}

func TestFirstJSONObjectReturnsFirstOnly(t *testing.T) {
	if got := FirstJSONObject(`{"first": 1} and then {"second": 2}`); got != `{"first": 1}` {
		t.Fatalf("got %q", got)
	}
}

func TestFirstJSONObjectUnmatchedBracesAroundObject(t *testing.T) {
	// Unmatched closers in the prefix are ignored because scanning starts at
	// the first '{'; anything after the balanced object is ignored too.
	obj := `{"x": 1}`
	text := `closers "}" }} before ` + obj + ` and "{" after`
	if got := FirstJSONObject(text); got != obj {
		t.Fatalf("got %q, want %q", got, obj)
	}
}
