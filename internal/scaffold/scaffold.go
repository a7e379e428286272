// Package scaffold maps a chosen language and a module decomposition to a
// concrete file tree and writes it to disk.
package scaffold

import (
	"fmt"
	"path/filepath"
	"strings"
	"text/template"

	"polygen/internal/oracle"
)

// ValidateName rejects names with path-traversal characters or empty names.
func ValidateName(name string) error {
	if name == "" {
		return fmt.Errorf("project name must not be empty")
	}
	cleaned := filepath.Clean(name)
	if cleaned == ".." || strings.Contains(cleaned, "/") || strings.Contains(cleaned, "\\") {
		return fmt.Errorf("project name %q contains invalid path characters", name)
	}
	return nil
}

// TitleCase converts a kebab-case name to Title Case.
func TitleCase(s string) string {
	words := strings.Split(s, "-")
	for i, w := range words {
		if len(w) > 0 {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}

// File is one file of a planned project tree. Path is relative to the
// project root and always slash-separated.
type File struct {
	Path    string
	Content string
}

// Plan is a fully resolved project tree, ready to write.
type Plan struct {
	ProjectName string
	Language    string
	Files       []File
}

var readmeTemplate = template.Must(template.New("readme").Parse(`# {{ .Title }}

{{ .Description }}

Implementation language: {{ .Language }} (suitability score {{ printf "%.2f" .Score }}).

## Modules
{{ range .Modules }}- **{{ .Name }}**{{ if .Description }} - {{ .Description }}{{ end }}
{{ end }}`))

// NewPlan assembles the file tree for a generated service: one source file
// per module (content from sources, keyed by module name), the language's
// dependency manifest, and a README describing the decomposition.
func NewPlan(projectName, language, description string, score float64, modules []oracle.ModuleSpec, sources map[string]string) (*Plan, error) {
	if err := ValidateName(projectName); err != nil {
		return nil, err
	}
	if len(modules) == 0 {
		return nil, fmt.Errorf("cannot plan a project with no modules")
	}

	plan := &Plan{ProjectName: projectName, Language: language}

	for _, mod := range modules {
		name := mod.Filename
		if name == "" {
			name = mod.Name
		}
		plan.Files = append(plan.Files, File{
			Path:    sourcePath(language, name),
			Content: ensureTrailingNewline(sources[mod.Name]),
		})
	}

	if path, content, ok := manifest(projectName, language); ok {
		plan.Files = append(plan.Files, File{Path: path, Content: content})
	}

	var readme strings.Builder
	err := readmeTemplate.Execute(&readme, map[string]any{
		"Title":       TitleCase(projectName),
		"Description": description,
		"Language":    language,
		"Score":       score,
		"Modules":     modules,
	})
	if err != nil {
		return nil, fmt.Errorf("rendering README: %w", err)
	}
	plan.Files = append(plan.Files, File{Path: "README.md", Content: readme.String()})

	return plan, nil
}

// sourcePath places a module's source file where the language's ecosystem
// expects it.
func sourcePath(language, name string) string {
	switch language {
	case "javascript":
		return "src/" + name + ".js"
	case "python":
		return name + ".py"
	case "go":
		return name + ".go"
	case "rust":
		return "src/" + name + ".rs"
	default:
		return name + ".txt"
	}
}

// manifest returns the dependency manifest file for languages that have one.
func manifest(projectName, language string) (path, content string, ok bool) {
	switch language {
	case "javascript":
		return "package.json", fmt.Sprintf(`{
  "name": %q,
  "version": "0.1.0",
  "private": true,
  "main": "src/index.js"
}
`, projectName), true
	case "python":
		return "requirements.txt", "# add runtime dependencies here\n", true
	case "go":
		return "go.mod", fmt.Sprintf("module %s\n\ngo 1.26\n", projectName), true
	case "rust":
		return "Cargo.toml", fmt.Sprintf("[package]\nname = %q\nversion = \"0.1.0\"\nedition = \"2021\"\n", projectName), true
	default:
		return "", "", false
	}
}

func ensureTrailingNewline(s string) string {
	if s == "" || strings.HasSuffix(s, "\n") {
		return s
	}
	return s + "\n"
}
