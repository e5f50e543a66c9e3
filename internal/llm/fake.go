package llm

import (
	"context"
	"errors"
	"sync"

	genai "google.golang.org/genai"
)

// FakeTurn is one scripted generator reply: either a text body wrapped into
// a single-candidate response, or an error.
type FakeTurn struct {
	Text string
	Err  error
}

// FakeClient replays scripted responses for offline tests. Each Generate
// call consumes the next turn and records the prompt it was given.
type FakeClient struct {
	mu      sync.Mutex
	Script  []FakeTurn
	Prompts []string
}

func (f *FakeClient) Name() string { return "FakeLLM" }

func (f *FakeClient) Generate(_ context.Context, prompt string) (*genai.GenerateContentResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Prompts = append(f.Prompts, prompt)
	if len(f.Script) == 0 {
		return nil, errors.New("llm: fake script exhausted")
	}
	turn := f.Script[0]
	f.Script = f.Script[1:]
	if turn.Err != nil {
		return nil, turn.Err
	}
	return TextResponse(turn.Text), nil
}

// Calls reports how many Generate calls the fake has served.
func (f *FakeClient) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.Prompts)
}

// TextResponse builds a single-candidate response carrying one text part per
// argument.
func TextResponse(texts ...string) *genai.GenerateContentResponse {
	parts := make([]*genai.Part, 0, len(texts))
	for _, t := range texts {
		parts = append(parts, &genai.Part{Text: t})
	}
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{Content: &genai.Content{Role: "model", Parts: parts}},
		},
	}
}
