// Package wizard collects project settings through an interactive form.
package wizard

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"golang.org/x/term"
)

// Setup holds all fields collected during the interactive project wizard.
type Setup struct {
	Provider  string
	Model     string
	OutputDir string
}

// RunSetupWizard runs an interactive huh form to collect project settings.
// defaults pre-populates the fields; blank answers keep them.
func RunSetupWizard(in io.Reader, out io.Writer, defaults Setup) (*Setup, error) {
	var (
		provider  = defaults.Provider
		model     = defaults.Model
		outputDir = defaults.OutputDir
	)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("LLM provider").
				Description("Which provider should power requirement extraction and code generation?").
				Options(
					huh.NewOption("openai", "openai"),
					huh.NewOption("anthropic", "anthropic"),
					huh.NewOption("copilot", "copilot"),
				).
				Value(&provider),
			huh.NewInput().
				Title("Model").
				Description("Model identifier to request from the provider").
				Placeholder(defaults.Model).
				Value(&model).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("model is required")
					}
					return nil
				}),
			huh.NewInput().
				Title("Output directory").
				Description("Where generated services are written").
				Placeholder(defaults.OutputDir).
				Value(&outputDir),
		),
	).
		WithInput(in).
		WithOutput(out)

	// Use accessible mode for non-TTY input (e.g., tests, piped input).
	if f, ok := in.(*os.File); !ok || !term.IsTerminal(int(f.Fd())) {
		form = form.WithAccessible(true)
	}

	if err := form.Run(); err != nil {
		return nil, fmt.Errorf("wizard failed: %w", err)
	}

	setup := &Setup{
		Provider:  strings.TrimSpace(provider),
		Model:     strings.TrimSpace(model),
		OutputDir: strings.TrimSpace(outputDir),
	}
	if setup.OutputDir == "" {
		setup.OutputDir = defaults.OutputDir
	}
	return setup, nil
}

// Apply writes the collected settings into a config document shaped like the
// store's default document.
func (s *Setup) Apply(set func(path string, value any)) {
	set("llm.provider", s.Provider)
	set("llm.model", s.Model)
	set("paths.outputDir", s.OutputDir)
}
