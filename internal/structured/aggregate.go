package structured

import (
	"strings"

	genai "google.golang.org/genai"
)

// CollectText flattens every text fragment of every candidate into one
// newline-joined blob, in candidate-then-part order. Missing candidates,
// contents, parts, and empty or whitespace-only fragments contribute
// nothing; the result is always a (possibly empty) string.
func CollectText(resp *genai.GenerateContentResponse) string {
	if resp == nil {
		return ""
	}
	var texts []string
	for _, cand := range resp.Candidates {
		if cand == nil || cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if part == nil {
				continue
			}
			if strings.TrimSpace(part.Text) != "" {
				texts = append(texts, part.Text)
			}
		}
	}
	return strings.TrimSpace(strings.Join(texts, "\n"))
}
