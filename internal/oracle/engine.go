// Package oracle is the LLM collaborator: it turns natural-language service
// descriptions into structured requirement, decomposition, and code results,
// or fails. Everything retryable and failure-prone lives here; the scoring
// core never performs I/O.
package oracle

import (
	"context"
	"errors"
)

// ErrNoCredentials is the one deliberate hard stop in polygen: without any
// credentials there is no oracle to talk to. Reported from Initialize, never
// from the scoring core.
var ErrNoCredentials = errors.New("no LLM credentials: set POLYGEN_API_KEY or llm.apiKey in configuration")

// RequestKind tells the engine what sort of structured reply the prompt asks
// for. Real engines ignore it; the mock engine uses it to pick a canned
// response.
type RequestKind string

const (
	KindRequirements  RequestKind = "requirements"
	KindDecomposition RequestKind = "decomposition"
	KindModule        RequestKind = "module"
)

// Request is a single completion request.
type Request struct {
	Kind       RequestKind
	Prompt     string
	ModelID    string // overrides the engine default when set
	TimeoutSec int
}

// Response is the raw model output plus timing metadata.
type Response struct {
	Output     string
	ModelID    string
	DurationMs int64
}

// Engine abstracts the model backend so the client and the CLI can run
// against the real SDK or a mock interchangeably.
type Engine interface {
	// Initialize verifies the engine is usable. Missing credentials are
	// reported here as ErrNoCredentials.
	Initialize(ctx context.Context) error

	// Complete sends one prompt and waits for the full reply.
	Complete(ctx context.Context, req *Request) (*Response, error)

	// Shutdown cleans up resources.
	Shutdown(ctx context.Context) error
}
