package oracle

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"polygen/internal/query"
)

// DefaultTimeoutSec bounds each oracle round trip.
const DefaultTimeoutSec = 120

// ModuleSpec is one unit of a decomposed service, in generation order.
type ModuleSpec struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Filename    string `json:"filename,omitempty"`
}

// Client layers structured operations over a raw completion Engine. It owns
// prompt construction and reply parsing; the engine stays a plain
// prompt-in/text-out service.
type Client struct {
	engine     Engine
	modelID    string
	timeoutSec int
}

// NewClient creates a client. modelID may be blank to use the engine's
// default model.
func NewClient(engine Engine, modelID string) *Client {
	return &Client{
		engine:     engine,
		modelID:    modelID,
		timeoutSec: DefaultTimeoutSec,
	}
}

const requirementsPromptFormat = `Analyze this service description and extract a weighted requirement vector.

Description: %s

Reply with a single JSON object in a fenced code block. Recognized keys:
"performance", "memory", "startupTime", "ecosystem", "concurrency" - each an
object {"weight": <non-negative number>} present only when that dimension
matters; "useCase" - one short lowercase word such as "web", "api", "data",
"ml", "system"; "useCaseWeight" - a non-negative number. Omit keys that do
not apply.`

// ExtractRequirements asks the oracle for a requirement vector and returns
// it as a validated raw object. Schema violations are an error here; the
// caller decides whether to degrade to an empty query or give up.
func (c *Client) ExtractRequirements(ctx context.Context, description string) (map[string]any, error) {
	resp, err := c.complete(ctx, KindRequirements, fmt.Sprintf(requirementsPromptFormat, description))
	if err != nil {
		return nil, err
	}

	raw, ok := ExtractFencedBlock(resp.Output, "json")
	if !ok {
		return nil, fmt.Errorf("no JSON object in oracle reply")
	}

	var requirements map[string]any
	if err := json.Unmarshal([]byte(raw), &requirements); err != nil {
		return nil, fmt.Errorf("parsing requirement object: %w", err)
	}

	if errs := query.Validate(requirements); len(errs) > 0 {
		return nil, fmt.Errorf("requirement object failed validation: %s", strings.Join(errs, "; "))
	}

	return requirements, nil
}

const decomposePromptFormat = `Decompose this service into implementation modules for %s.

Description: %s

Reply with a JSON array in a fenced code block. Each element:
{"name": "<module name>", "description": "<one sentence>", "filename": "<source file name>"}.
Order the array so earlier modules have no dependency on later ones.`

// Decompose asks the oracle to split the service into ordered modules for
// the chosen language.
func (c *Client) Decompose(ctx context.Context, description, language string) ([]ModuleSpec, error) {
	resp, err := c.complete(ctx, KindDecomposition, fmt.Sprintf(decomposePromptFormat, language, description))
	if err != nil {
		return nil, err
	}

	raw, ok := ExtractFencedBlock(resp.Output, "json")
	if !ok {
		return nil, fmt.Errorf("no JSON array in oracle reply")
	}

	var modules []ModuleSpec
	if err := json.Unmarshal([]byte(raw), &modules); err != nil {
		return nil, fmt.Errorf("parsing decomposition: %w", err)
	}
	if len(modules) == 0 {
		return nil, fmt.Errorf("oracle returned an empty decomposition")
	}
	return modules, nil
}

const modulePromptFormat = `Write the %s module of this %s service.

Service description: %s
Module: %s - %s

Reply with complete, idiomatic source code in a single fenced code block.`

// GenerateModule asks the oracle for the source of one module. The reply's
// first fenced block is taken verbatim; a fence-less reply is used whole.
func (c *Client) GenerateModule(ctx context.Context, description, language string, mod ModuleSpec) (string, error) {
	prompt := fmt.Sprintf(modulePromptFormat, mod.Name, language, description, mod.Name, mod.Description)
	resp, err := c.complete(ctx, KindModule, prompt)
	if err != nil {
		return "", err
	}

	if code, ok := ExtractFencedBlock(resp.Output, ""); ok {
		return code, nil
	}
	return resp.Output, nil
}

func (c *Client) complete(ctx context.Context, kind RequestKind, prompt string) (*Response, error) {
	resp, err := c.engine.Complete(ctx, &Request{
		Kind:       kind,
		Prompt:     prompt,
		ModelID:    c.modelID,
		TimeoutSec: c.timeoutSec,
	})
	if err != nil {
		return nil, fmt.Errorf("oracle %s request: %w", kind, err)
	}

	slog.Debug("oracle reply", "kind", kind, "model", resp.ModelID, "durationMs", resp.DurationMs)
	return resp, nil
}
