package oracle

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	copilot "github.com/github/copilot-sdk/go"
)

// CopilotEngine runs prompts through the GitHub Copilot SDK.
type CopilotEngine struct {
	defaultModelID string
	token          string

	client copilotClient

	startOnce sync.Once
}

// CopilotEngineBuilder builds a CopilotEngine with options.
type CopilotEngineBuilder struct {
	engine *CopilotEngine
}

type CopilotEngineBuilderOptions struct {
	NewCopilotClient func(clientOptions *copilot.ClientOptions) copilotClient
}

// NewCopilotEngineBuilder creates a builder for CopilotEngine.
//   - defaultModelID - used if no model ID is specified on the request. Can be
//     blank, which means the copilot CLI chooses its own fallback model.
//   - token - the resolved credential. Initialize fails with ErrNoCredentials
//     when it is empty.
func NewCopilotEngineBuilder(defaultModelID, token string, options *CopilotEngineBuilderOptions) *CopilotEngineBuilder {
	var client copilotClient

	copilotOptions := &copilot.ClientOptions{
		LogLevel:  "error",
		AutoStart: copilot.Bool(false),
	}

	if options == nil || options.NewCopilotClient == nil {
		client = newCopilotClient(copilotOptions)
	} else {
		client = options.NewCopilotClient(copilotOptions)
	}

	builder := &CopilotEngineBuilder{
		engine: &CopilotEngine{
			defaultModelID: defaultModelID,
			token:          token,
		},
	}

	builder.engine.client = client
	return builder
}

func (b *CopilotEngineBuilder) Build() *CopilotEngine {
	return b.engine
}

// Initialize verifies credentials are present. This is the single hard-stop
// failure in the system; every other oracle failure is recoverable.
func (e *CopilotEngine) Initialize(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	if strings.TrimSpace(e.token) == "" {
		return ErrNoCredentials
	}
	return nil
}

// Complete sends a single prompt in a fresh session and collects the
// assistant's reply.
func (e *CopilotEngine) Complete(ctx context.Context, req *Request) (*Response, error) {
	if req == nil {
		return nil, fmt.Errorf("nil req was passed to CopilotEngine.Complete")
	}

	var startErr error

	e.startOnce.Do(func() {
		// NOTE: copilot client has an 'autostart' feature, but it runs into
		// issues when it tries to autostart from separate goroutines.
		startErr = e.client.Start(ctx)
	})

	if startErr != nil {
		return nil, fmt.Errorf("copilot failed to start: %w", startErr)
	}

	modelID := e.defaultModelID
	if req.ModelID != "" {
		modelID = req.ModelID
	}

	if req.TimeoutSec <= 0 {
		return nil, fmt.Errorf("positive TimeoutSec is required")
	}

	ctx, cancel := context.WithTimeout(ctx, time.Duration(req.TimeoutSec)*time.Second)
	defer cancel()

	start := time.Now()

	session, err := e.client.CreateSession(ctx, &copilot.SessionConfig{
		Model:               modelID,
		OnPermissionRequest: denyAllTools,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	var parts []string
	unsubscribe := session.On(func(event copilot.SessionEvent) {
		if event.Type == copilot.AssistantMessage && event.Data.Content != nil {
			parts = append(parts, *event.Data.Content)
		}
	})
	defer unsubscribe()

	_, err = session.SendAndWait(ctx, copilot.MessageOptions{
		Prompt: req.Prompt,
	})
	if err != nil {
		return nil, fmt.Errorf("completion failed: %w", err)
	}

	slog.Debug("oracle completion finished",
		"kind", req.Kind,
		"model", modelID,
		"parts", len(parts))

	return &Response{
		Output:     strings.Join(parts, "\n"),
		ModelID:    modelID,
		DurationMs: time.Since(start).Milliseconds(),
	}, nil
}

// Shutdown cleans up resources.
func (e *CopilotEngine) Shutdown(ctx context.Context) error {
	if err := e.client.Stop(); err != nil {
		// Log but continue; there is nothing else to clean up.
		slog.Info("failed to stop client", "error", err)
	}
	return nil
}

func denyAllTools(request copilot.PermissionRequest, invocation copilot.PermissionInvocation) (copilot.PermissionRequestResult, error) {
	// The oracle only ever asks for text; a completion that reaches for a
	// tool is doing something we did not ask for.
	return copilot.PermissionRequestResult{Kind: "denied"}, nil
}
