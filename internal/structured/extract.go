package structured

import "strings"

// FirstJSONObject returns the first brace-balanced JSON object found in
// text, from the first '{' to its matching '}'. Brace counting is suspended
// inside double-quoted strings, where a backslash escapes the following
// character. Returns "" when no balanced object exists; a half-formed
// object is never returned as if complete. Anything after the closing brace
// is ignored.
func FirstJSONObject(text string) string {
	start := strings.IndexByte(text, '{')
	if start < 0 {
		return ""
	}

	depth := 0
	inString := false
	escape := false
	for i := start; i < len(text); i++ {
		c := text[i]
		if inString {
			switch {
			case escape:
				escape = false
			case c == '\\':
				escape = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return text[start : i+1]
			}
		}
	}
	return ""
}
