package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("TEAKIT_CONFIG", filepath.Join(dir, "config.toml"))
	t.Setenv("TEAKIT_LOG_FILE", filepath.Join(dir, "teakit.log"))

	var out bytes.Buffer
	cmd := NewRootCmd("test")
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRootRendersSingleFrameWithoutTerminal(t *testing.T) {
	out, err := execute(t)
	require.NoError(t, err)
	assert.Contains(t, out, "Progress")
	assert.Contains(t, out, "Press enter to start")
}

func TestRootOpenSelectsTab(t *testing.T) {
	out, err := execute(t, "--open", "stat")
	require.NoError(t, err)
	assert.Contains(t, out, "No run yet")
	assert.NotContains(t, out, "Press enter to start")
}

func TestRootRejectsBadLogLevel(t *testing.T) {
	_, err := execute(t, "--log-level", "loud")
	assert.Error(t, err)
}

func TestSchemaCommand(t *testing.T) {
	out, err := execute(t, "schema")
	require.NoError(t, err)
	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Contains(t, doc, "properties")
}

func TestConfigCommand(t *testing.T) {
	t.Setenv("TEAKIT_UI_INITIAL_TAB", "help")
	out, err := execute(t, "config", "--log-level", "debug")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, 9)
	assert.Contains(t, out, `ui.initial_tab = "help"`)
	assert.Contains(t, out, `log.level = "debug"`)
	assert.Contains(t, out, `demo.step_delay = "400ms"`)
	assert.Contains(t, out, `demo.steps = ["Login", "Load goods", "Check stock", "Exchange"]`)
}

func TestConfigPathFlag(t *testing.T) {
	out, err := execute(t, "config", "--path")
	require.NoError(t, err)
	assert.Equal(t, os.Getenv("TEAKIT_CONFIG"), strings.TrimSpace(out))
}
