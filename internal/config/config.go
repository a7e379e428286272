// Package config provides the nested settings document that parametrizes
// polygen: hardcoded defaults, dotted-path access, recursive merge of
// override files, and JSON/YAML persistence.
package config

// Default values for the settings document. Defaults() is the single source
// of truth; no other code should duplicate them.
const (
	DefaultProvider = "openai"
	DefaultModel    = "gpt-4"

	DefaultOutputDir    = "./generated"
	DefaultTemplatesDir = "./templates"
)

// Defaults returns a fresh copy of the complete default document. Every
// process starts from this; overrides only ever add or replace keys.
func Defaults() map[string]any {
	return map[string]any{
		"llm": map[string]any{
			"provider": DefaultProvider,
			"model":    DefaultModel,
			"apiKey":   "",
		},
		"languages": map[string]any{
			"javascript": map[string]any{
				"priority": 1,
				"useCases": []any{"web", "api", "scripting", "data"},
			},
			"python": map[string]any{
				"priority": 2,
				"useCases": []any{"data", "ml", "scripting", "web"},
			},
			"go": map[string]any{
				"priority": 3,
				"useCases": []any{"performance", "concurrency", "api", "system"},
			},
			"rust": map[string]any{
				"priority": 4,
				"useCases": []any{"system", "performance", "concurrency", "embedded"},
			},
		},
		"paths": map[string]any{
			"outputDir":    DefaultOutputDir,
			"templatesDir": DefaultTemplatesDir,
		},
	}
}
