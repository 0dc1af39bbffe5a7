package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeScript(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "script.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const goodScript = `
name: demo
selector: main
steps:
  - type: text
    value: Hi
  - type: clear
`

const badScript = `
selector: main
steps:
  - type: teleport
`

func TestValidateValidScript(t *testing.T) {
	path := writeScript(t, goodScript)

	buf := &bytes.Buffer{}
	cmd := NewValidateCommand(&RootOptions{Format: "text"})
	cmd.SetOut(buf)
	cmd.SetArgs([]string{path})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "demo: valid")
	assert.Contains(t, buf.String(), "3 nodes")
}

func TestValidateValidScriptJSON(t *testing.T) {
	path := writeScript(t, goodScript)

	buf := &bytes.Buffer{}
	cmd := NewValidateCommand(&RootOptions{Format: "json"})
	cmd.SetOut(buf)
	cmd.SetArgs([]string{path})

	require.NoError(t, cmd.Execute())

	var resp Response
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)

	data, err := json.Marshal(resp.Data)
	require.NoError(t, err)
	var result ValidationResult
	require.NoError(t, json.Unmarshal(data, &result))
	assert.True(t, result.Valid)
	assert.Equal(t, "demo", result.Script)
	assert.Equal(t, 3, result.Nodes)
}

func TestValidateInvalidScript(t *testing.T) {
	path := writeScript(t, badScript)

	buf := &bytes.Buffer{}
	cmd := NewValidateCommand(&RootOptions{Format: "text"})
	cmd.SetOut(buf)
	cmd.SetArgs([]string{path})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, buf.String(), "Error:")
}

func TestValidateInvalidScriptJSON(t *testing.T) {
	path := writeScript(t, badScript)

	buf := &bytes.Buffer{}
	cmd := NewValidateCommand(&RootOptions{Format: "json"})
	cmd.SetOut(buf)
	cmd.SetArgs([]string{path})

	err := cmd.Execute()
	require.Error(t, err)

	var resp Response
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status, "invalid scripts are a result, not a command error")

	data, merr := json.Marshal(resp.Data)
	require.NoError(t, merr)
	var result ValidationResult
	require.NoError(t, json.Unmarshal(data, &result))
	assert.False(t, result.Valid)
	assert.NotEmpty(t, result.Error)
}

func TestValidateMissingFile(t *testing.T) {
	buf := &bytes.Buffer{}
	cmd := NewValidateCommand(&RootOptions{Format: "text"})
	cmd.SetOut(buf)
	cmd.SetArgs([]string{filepath.Join(t.TempDir(), "absent.yaml")})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, buf.String(), "not found")
}
