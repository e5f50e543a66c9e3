package structured

import (
	"context"
	"encoding/json"
	"log"

	genai "google.golang.org/genai"
)

// Generator is the external text-generation collaborator. Implementations
// report transport failures as errors; the resolver surfaces those as-is and
// never retries them.
type Generator interface {
	Generate(ctx context.Context, prompt string) (*genai.GenerateContentResponse, error)
}

// TerminalError is returned when both the primary and the single permitted
// repair attempt fail to yield parsable JSON. It keeps the raw aggregated
// text and extracted span of both attempts for server-side logging.
type TerminalError struct {
	PrimaryRaw  string
	PrimarySpan string
	RepairRaw   string
	RepairSpan  string
}

func (e *TerminalError) Error() string {
	return "structured: no valid JSON object after repair attempt"
}

// Resolver drives one primary generation and at most one repair round-trip
// against a Generator. It holds no per-request state and is safe for
// concurrent use.
type Resolver struct {
	gen Generator
}

func NewResolver(gen Generator) *Resolver { return &Resolver{gen: gen} }

// Resolve asks the generator to produce JSON matching schema and extracts
// the first balanced object from its output. On extraction or decode
// failure it issues exactly one repair call whose prompt embeds the failing
// raw text verbatim together with the schema; a second failure is terminal.
// Generator errors from either call are surfaced immediately with no
// further attempts. At most two generator calls are ever made.
func (r *Resolver) Resolve(ctx context.Context, prompt, schema string) (json.RawMessage, error) {
	primary, err := r.attempt(ctx, prompt)
	if err != nil {
		return nil, err
	}
	if primary.err == nil {
		return primary.value, nil
	}
	log.Printf("structured: primary response not parsable, issuing repair call: %v", primary.err)

	repair, err := r.attempt(ctx, RepairPrompt(primary.raw, schema))
	if err != nil {
		return nil, err
	}
	if repair.err == nil {
		return repair.value, nil
	}
	return nil, &TerminalError{
		PrimaryRaw:  primary.raw,
		PrimarySpan: primary.span,
		RepairRaw:   repair.raw,
		RepairSpan:  repair.span,
	}
}

// attempt is one generate -> aggregate -> extract -> parse cycle. A non-nil
// second return value means the generator call itself failed; att.err holds
// extraction/decode failures that the caller may still repair. Each attempt
// works on its own aggregated text only.
type attempt struct {
	raw   string
	span  string
	value json.RawMessage
	err   error
}

func (r *Resolver) attempt(ctx context.Context, prompt string) (attempt, error) {
	resp, err := r.gen.Generate(ctx, prompt)
	if err != nil {
		return attempt{}, err
	}
	att := attempt{raw: CollectText(resp)}
	att.span = FirstJSONObject(att.raw)
	att.value, att.err = Parse(att.span)
	return att, nil
}

// RepairPrompt asks the generator to rebuild its previous malformed output
// into a pure JSON object matching schema. The failing raw text is embedded
// verbatim.
func RepairPrompt(raw, schema string) string {
	return "이전 API 응답이 유효한 JSON이 아닙니다. 아래 원본 텍스트를 분석하여 주어진 JSON 스키마에 맞는 '순수한 JSON 객체'로 복구해주세요.\n" +
		"--- 복구할 원본 텍스트 ---\n" +
		raw + "\n" +
		"--- JSON 스키마 ---\n" +
		schema + "\n" +
		"--- 절대 규칙 ---\n" +
		"1. 모든 텍스트 값은 '한국어'로 번역하거나 작성해야 합니다. (ABSOLUTELY MANDATORY: All values must be in Korean.)\n" +
		"2. 설명, 주석, 마크다운 등 다른 어떤 텍스트도 없이, 오직 '{'로 시작해서 '}'로 끝나는 JSON 객체 하나만 출력해야 합니다."
}
