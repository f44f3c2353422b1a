package cli

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dotdb/internal/store"
	"dotdb/internal/value"
)

// writeTestConfig points the CLI at a file-backed store in a temp dir.
func writeTestConfig(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := fmt.Sprintf("backend: file\nfile:\n  path: %s\n", filepath.Join(dir, "store.json"))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// run executes the CLI with args and returns stdout.
func run(t *testing.T, cfg string, args ...string) (string, error) {
	t.Helper()

	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--config", cfg}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestSetGetRoundTrip(t *testing.T) {
	cfg := writeTestConfig(t)

	_, err := run(t, cfg, "set", "user.data.age", "21")
	require.NoError(t, err)

	out, err := run(t, cfg, "get", "user.data.age")
	require.NoError(t, err)
	assert.Equal(t, "21\n", out)
}

func TestSetStoresNonJSONAsString(t *testing.T) {
	cfg := writeTestConfig(t)

	_, err := run(t, cfg, "set", "user.name", "tyler")
	require.NoError(t, err)

	out, err := run(t, cfg, "get", "user.name")
	require.NoError(t, err)
	assert.Equal(t, "\"tyler\"\n", out)
}

func TestHasCommand(t *testing.T) {
	cfg := writeTestConfig(t)

	_, err := run(t, cfg, "set", "flag", "false")
	require.NoError(t, err)

	out, err := run(t, cfg, "has", "flag")
	require.NoError(t, err)
	assert.Equal(t, "true\n", out, "stored false is still present")

	out, err = run(t, cfg, "has", "missing")
	require.NoError(t, err)
	assert.Equal(t, "false\n", out)
}

func TestGetMissingKeyFails(t *testing.T) {
	cfg := writeTestConfig(t)

	_, err := run(t, cfg, "get", "missing")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
}

func TestPushPullScenario(t *testing.T) {
	cfg := writeTestConfig(t)

	_, err := run(t, cfg, "push", "tags", "x")
	require.NoError(t, err)
	_, err = run(t, cfg, "push", "tags", "y")
	require.NoError(t, err)
	_, err = run(t, cfg, "pull", "tags", "x")
	require.NoError(t, err)

	out, err := run(t, cfg, "get", "tags")
	require.NoError(t, err)
	assert.Equal(t, "[\"y\"]\n", out)
}

func TestAddSubtractCommands(t *testing.T) {
	cfg := writeTestConfig(t)

	out, err := run(t, cfg, "add", "stats.visits", "2")
	require.NoError(t, err)
	assert.Equal(t, "2\n", out)

	out, err = run(t, cfg, "add", "stats.visits", "3")
	require.NoError(t, err)
	assert.Equal(t, "5\n", out)

	out, err = run(t, cfg, "subtract", "stats.visits", "1")
	require.NoError(t, err)
	assert.Equal(t, "4\n", out)

	_, err = run(t, cfg, "add", "stats.visits", "many")
	require.Error(t, err, "non-numeric amount rejected")
}

func TestWipeRequiresSentence(t *testing.T) {
	cfg := writeTestConfig(t)

	_, err := run(t, cfg, "set", "a", "1")
	require.NoError(t, err)

	_, err = run(t, cfg, "wipe", "yes")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, err.Error(), store.ConfirmationTR, "hint names the expected sentence")

	out, err := run(t, cfg, "get", "a")
	require.NoError(t, err)
	assert.Equal(t, "1\n", out)

	_, err = run(t, cfg, "wipe", store.ConfirmationEN)
	require.NoError(t, err)

	out, err = run(t, cfg, "all")
	require.NoError(t, err)
	assert.Equal(t, "{}\n", out)
}

func TestAllCommand(t *testing.T) {
	cfg := writeTestConfig(t)

	_, err := run(t, cfg, "set", "user.data.age", "21")
	require.NoError(t, err)

	out, err := run(t, cfg, "all")
	require.NoError(t, err)
	assert.Equal(t, "{\"user\":{\"data\":{\"age\":21}}}\n", out)
}

func TestJSONFormatOutput(t *testing.T) {
	cfg := writeTestConfig(t)

	_, err := run(t, cfg, "--format", "json", "set", "user.age", "21")
	require.NoError(t, err)

	out, err := run(t, cfg, "--format", "json", "get", "user.age")
	require.NoError(t, err)
	assert.JSONEq(t, `{"status":"ok","data":21}`, out)
}

func TestInvalidFormatRejected(t *testing.T) {
	cfg := writeTestConfig(t)

	_, err := run(t, cfg, "--format", "xml", "get", "a")
	require.Error(t, err)
}

func TestParseValue(t *testing.T) {
	assert.Equal(t, value.Number(21), parseValue("21"))
	assert.Equal(t, value.String("21"), parseValue(`"21"`))
	assert.Equal(t, value.Bool(true), parseValue("true"))
	assert.Equal(t, value.String("tyler"), parseValue("tyler"))
	assert.True(t, value.DeepEqual(value.Object{"a": value.Number(1)}, parseValue(`{"a":1}`)))
}
