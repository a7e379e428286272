package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"polygen/internal/profile"
)

func TestProfilesCommand_Table(t *testing.T) {
	var buf bytes.Buffer
	cmd := newProfilesCommand(profile.Builtin())
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{})
	require.NoError(t, cmd.Execute())

	output := buf.String()
	assert.Contains(t, output, "LANGUAGE")
	assert.Contains(t, output, "javascript")
	assert.Contains(t, output, "rust")
	assert.Contains(t, output, "use cases: web=9, api=8, scripting=9, data=6")
}

func TestProfilesCommand_JSON(t *testing.T) {
	var buf bytes.Buffer
	cmd := newProfilesCommand(profile.Builtin())
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"--format", "json"})
	require.NoError(t, cmd.Execute())

	var profiles []profile.Portable
	require.NoError(t, json.Unmarshal(buf.Bytes(), &profiles))
	require.Len(t, profiles, 4)
	assert.Equal(t, "javascript", profiles[0].Name)
	assert.Equal(t, "rust", profiles[3].Name)
}

func TestProfilesCommand_YAML(t *testing.T) {
	var buf bytes.Buffer
	cmd := newProfilesCommand(profile.Builtin())
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"--format", "yaml"})
	require.NoError(t, cmd.Execute())

	var profiles []profile.Portable
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &profiles))
	require.Len(t, profiles, 4)
	assert.Equal(t, "python", profiles[1].Name)
}

func TestProfilesCommand_UnknownFormat(t *testing.T) {
	cmd := newProfilesCommand(profile.Builtin())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--format", "toml"})
	assert.Error(t, cmd.Execute())
}
