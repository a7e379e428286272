package oracle

import (
	"context"
	"time"
)

// MockEngine is a canned-response engine for tests and the --offline flag.
type MockEngine struct {
	modelID string

	// Responses overrides the canned reply per request kind when set.
	Responses map[RequestKind]string
}

// NewMockEngine creates a new mock engine.
func NewMockEngine(modelID string) *MockEngine {
	return &MockEngine{modelID: modelID}
}

func (m *MockEngine) Initialize(ctx context.Context) error {
	return nil
}

// Complete returns a canned structured reply matching what the client's
// parser expects for the request kind.
func (m *MockEngine) Complete(ctx context.Context, req *Request) (*Response, error) {
	start := time.Now()

	output, ok := m.Responses[req.Kind]
	if !ok {
		switch req.Kind {
		case KindRequirements:
			output = "Requirements extracted.\n\n```json\n" +
				`{"performance":{"weight":1},"concurrency":{"weight":0.8},"useCase":"api","useCaseWeight":1.5}` +
				"\n```\n"
		case KindDecomposition:
			output = "Proposed modules:\n\n```json\n" +
				`[{"name":"server","description":"HTTP entry point.","filename":"server"},` +
				`{"name":"handlers","description":"Request handlers.","filename":"handlers"}]` +
				"\n```\n"
		case KindModule:
			output = "```\n// generated placeholder\n```\n"
		default:
			output = "Mock response for: " + req.Prompt
		}
	}

	return &Response{
		Output:     output,
		ModelID:    m.modelID,
		DurationMs: time.Since(start).Milliseconds(),
	}, nil
}

func (m *MockEngine) Shutdown(ctx context.Context) error {
	return nil
}
