package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"polygen/internal/profile"
)

func TestSelectCommand_SystemQueryPicksRust(t *testing.T) {
	var buf bytes.Buffer
	cmd := newSelectCommand(profile.Builtin())
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{
		"--weight", "performance=1",
		"--weight", "concurrency=1",
		"--use-case", "system",
	})
	require.NoError(t, cmd.Execute())

	output := buf.String()
	assert.Contains(t, output, "Best match: rust")
	assert.Contains(t, output, "RANK")
	assert.Contains(t, output, "javascript")
}

func TestSelectCommand_RequirementsFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "req.json")
	content := `{"performance":{"weight":1},"concurrency":{"weight":1},"useCase":"system"}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	var buf bytes.Buffer
	cmd := newSelectCommand(profile.Builtin())
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"--requirements", path})
	require.NoError(t, cmd.Execute())

	assert.Contains(t, buf.String(), "Best match: rust")
}

func TestSelectCommand_RequirementsFileValidation(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "req.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"performance":{"weight":"lots"}}`), 0o644))

	cmd := newSelectCommand(profile.Builtin())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--requirements", path})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed validation")
}

func TestSelectCommand_RejectsMixedSources(t *testing.T) {
	cmd := newSelectCommand(profile.Builtin())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--requirements", "req.json", "--weight", "performance=1"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot be combined")
}

func TestSelectCommand_InvalidWeightFlag(t *testing.T) {
	tests := []struct {
		name string
		flag string
	}{
		{"no equals", "performance"},
		{"bad number", "performance=heavy"},
		{"unknown dimension", "speed=1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := newSelectCommand(profile.Builtin())
			cmd.SetOut(&bytes.Buffer{})
			cmd.SetErr(&bytes.Buffer{})
			cmd.SetArgs([]string{"--weight", tt.flag})
			assert.Error(t, cmd.Execute())
		})
	}
}

func TestSelectCommand_EmptyRegistry(t *testing.T) {
	cmd := newSelectCommand(profile.NewRegistry())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--weight", "performance=1"})

	err := cmd.Execute()
	require.Error(t, err)

	var noMatch *NoMatchError
	assert.ErrorAs(t, err, &noMatch)
}

func TestSelectCommand_EmptyQueryStillRanks(t *testing.T) {
	var buf bytes.Buffer
	cmd := newSelectCommand(profile.Builtin())
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{})
	require.NoError(t, cmd.Execute())

	// All profiles score zero; earliest registration wins.
	assert.Contains(t, buf.String(), "Best match: javascript (score 0.00)")
}
