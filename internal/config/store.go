package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Store owns a nested settings document. It is a single-owner, sequential
// structure; no locking is provided or needed.
type Store struct {
	doc map[string]any
}

// NewStore creates a store seeded with the complete default document.
func NewStore() *Store {
	return &Store{doc: Defaults()}
}

// Get walks the document along a dotted path. It returns (nil, false) the
// moment any intermediate key is missing or is not a mapping; it never
// errors on a malformed path.
func (s *Store) Get(path string) (any, bool) {
	current := any(s.doc)
	for _, key := range strings.Split(path, ".") {
		m, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}
		current, ok = m[key]
		if !ok {
			return nil, false
		}
	}
	return current, true
}

// GetString is Get narrowed to string values; non-strings report absent.
func (s *Store) GetString(path string) (string, bool) {
	v, ok := s.Get(path)
	if !ok {
		return "", false
	}
	str, ok := v.(string)
	return str, ok
}

// Set assigns value at the dotted path, creating intermediate mappings as it
// goes. An intermediate that exists but is not a mapping is silently
// replaced by a fresh one.
func (s *Store) Set(path string, value any) {
	keys := strings.Split(path, ".")
	current := s.doc
	for _, key := range keys[:len(keys)-1] {
		next, ok := current[key].(map[string]any)
		if !ok {
			next = map[string]any{}
			current[key] = next
		}
		current = next
	}
	current[keys[len(keys)-1]] = value
}

// Document returns the live document. Callers that need a stable snapshot
// should merge it into an empty map first.
func (s *Store) Document() map[string]any {
	return s.doc
}

// LoadFrom reads a JSON or YAML override file (dispatched on the filename
// suffix) and deep-merges it over the current document: loaded values win on
// conflicting keys, keys absent from the file keep their current values.
// Any failure leaves the document untouched; configuration is best-effort
// and the caller decides whether to care.
func (s *Store) LoadFrom(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config %s: %w", path, err)
	}

	var override map[string]any
	switch ext := filepath.Ext(path); ext {
	case ".json":
		if err := json.Unmarshal(data, &override); err != nil {
			return fmt.Errorf("parsing config %s: %w", path, err)
		}
	case ".yml", ".yaml":
		if err := yaml.Unmarshal(data, &override); err != nil {
			return fmt.Errorf("parsing config %s: %w", path, err)
		}
	default:
		return fmt.Errorf("unsupported config format %q (want .json, .yml, or .yaml)", ext)
	}

	s.doc = DeepMerge(s.doc, override)
	return nil
}

// SaveTo serializes the document to the format matching the filename suffix
// and writes it. Failures are reported, never fatal.
func (s *Store) SaveTo(path string) error {
	var (
		data []byte
		err  error
	)
	switch ext := filepath.Ext(path); ext {
	case ".json":
		data, err = json.MarshalIndent(s.doc, "", "  ")
		if err == nil {
			data = append(data, '\n')
		}
	case ".yml", ".yaml":
		data, err = yaml.Marshal(s.doc)
	default:
		return fmt.Errorf("unsupported config format %q (want .json, .yml, or .yaml)", ext)
	}
	if err != nil {
		return fmt.Errorf("serializing config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config %s: %w", path, err)
	}
	return nil
}
