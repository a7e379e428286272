package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStore_Defaults(t *testing.T) {
	s := NewStore()

	provider, ok := s.GetString("llm.provider")
	require.True(t, ok)
	assert.Equal(t, "openai", provider)

	model, ok := s.GetString("llm.model")
	require.True(t, ok)
	assert.Equal(t, DefaultModel, model)

	outputDir, ok := s.GetString("paths.outputDir")
	require.True(t, ok)
	assert.Equal(t, DefaultOutputDir, outputDir)

	_, ok = s.Get("languages.go.useCases")
	assert.True(t, ok)
}

func TestGet_MissingIntermediate(t *testing.T) {
	s := NewStore()

	_, ok := s.Get("llm.nope.deeper")
	assert.False(t, ok)

	_, ok = s.Get("totally.absent")
	assert.False(t, ok)

	// Walking through a scalar is "no value", not an error.
	_, ok = s.Get("llm.provider.sub")
	assert.False(t, ok)
}

func TestSet_CreatesIntermediates(t *testing.T) {
	s := NewStore()

	_, ok := s.Get("services.cache.ttl")
	require.False(t, ok)

	s.Set("services.cache.ttl", 300)

	v, ok := s.Get("services.cache.ttl")
	require.True(t, ok)
	assert.Equal(t, 300, v)
}

func TestSet_OverwritesNonMapIntermediate(t *testing.T) {
	s := NewStore()
	s.Set("leaf", "scalar")
	s.Set("leaf.child", true)

	v, ok := s.Get("leaf.child")
	require.True(t, ok)
	assert.Equal(t, true, v)
}

func TestLoadFrom_JSONMergesOverDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "override.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"llm":{"model":"custom"}}`), 0o644))

	s := NewStore()
	require.NoError(t, s.LoadFrom(path))

	model, ok := s.GetString("llm.model")
	require.True(t, ok)
	assert.Equal(t, "custom", model)

	// Keys the override omits keep their prior values.
	provider, ok := s.GetString("llm.provider")
	require.True(t, ok)
	assert.Equal(t, "openai", provider)
}

func TestLoadFrom_YAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "override.yaml")
	content := "llm:\n  model: claude-3\npaths:\n  outputDir: ./out\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	s := NewStore()
	require.NoError(t, s.LoadFrom(path))

	model, _ := s.GetString("llm.model")
	assert.Equal(t, "claude-3", model)
	outputDir, _ := s.GetString("paths.outputDir")
	assert.Equal(t, "./out", outputDir)
	provider, _ := s.GetString("llm.provider")
	assert.Equal(t, "openai", provider)
}

func TestLoadFrom_UnsupportedSuffix(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "override.toml")
	require.NoError(t, os.WriteFile(path, []byte("x = 1"), 0o644))

	s := NewStore()
	err := s.LoadFrom(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported config format")
}

func TestLoadFrom_FailuresLeaveStateUntouched(t *testing.T) {
	dir := t.TempDir()
	badJSON := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(badJSON, []byte("{not json"), 0o644))

	s := NewStore()
	before, err := json.Marshal(s.Document())
	require.NoError(t, err)

	assert.Error(t, s.LoadFrom(badJSON))
	assert.Error(t, s.LoadFrom(filepath.Join(dir, "missing.json")))

	after, err := json.Marshal(s.Document())
	require.NoError(t, err)
	assert.JSONEq(t, string(before), string(after))
}

func TestSaveTo_LoadFrom_JSONRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "polygen.json")

	s := NewStore()
	s.Set("llm.model", "gpt-4o")
	s.Set("paths.outputDir", "/tmp/out")
	require.NoError(t, s.SaveTo(path))

	original, err := json.Marshal(s.Document())
	require.NoError(t, err)

	reloaded := NewStore()
	require.NoError(t, reloaded.LoadFrom(path))
	restored, err := json.Marshal(reloaded.Document())
	require.NoError(t, err)

	assert.JSONEq(t, string(original), string(restored))
}

func TestSaveTo_YAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "polygen.yaml")

	s := NewStore()
	require.NoError(t, s.SaveTo(path))

	reloaded := NewStore()
	reloaded.Set("llm.provider", "other")
	require.NoError(t, reloaded.LoadFrom(path))

	// The saved defaults win back over the local change on merge.
	provider, _ := reloaded.GetString("llm.provider")
	assert.Equal(t, "openai", provider)
}

func TestSaveTo_UnsupportedSuffix(t *testing.T) {
	s := NewStore()
	err := s.SaveTo(filepath.Join(t.TempDir(), "config.ini"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported config format")
}
