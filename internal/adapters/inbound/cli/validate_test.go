package cli_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codevet/codevet/internal/adapters/inbound/cli"
)

func runCommand(args ...string) (string, error) {
	cmd := cli.NewRootCmdForTest()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestValidateCommand_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gone.py")
	out, err := runCommand("validate", path, "--json")

	require.Error(t, err, "error status must map to a non-zero exit")
	assert.Contains(t, out, "File does not exist:")
	assert.Contains(t, out, "gone.py")
}

func TestValidateCommand_MissingFileJSONShape(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gone.py")
	out, _ := runCommand("validate", path, "--json")

	var rep map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &rep), "output should be valid JSON")
	assert.Equal(t, "error", rep["status"])
	assert.Contains(t, rep, "text")
}

func TestValidateCommand_UnsupportedExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("hello"), 0644))

	out, err := runCommand("validate", path, "--json", "--no-history")
	require.Error(t, err)
	assert.Contains(t, out, "Unsupported file type or language selection.")
}

func TestValidateCommand_LanguageMismatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.py")
	require.NoError(t, os.WriteFile(path, []byte("print('hi')"), 0644))

	out, err := runCommand("validate", path, "--language", "java", "--json", "--no-history")
	require.Error(t, err)
	assert.Contains(t, out, "Selected language doesn't match the file extension.")
}

func TestValidateCommand_UnknownLanguageFlag(t *testing.T) {
	_, err := runCommand("validate", "whatever.py", "--language", "cobol")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cobol")
}

func TestLanguagesCommand(t *testing.T) {
	out, err := runCommand("languages", "--path", t.TempDir())
	require.NoError(t, err)
	assert.Contains(t, out, "Java")
	assert.Contains(t, out, "javac")
	assert.Contains(t, out, ".php")
}

func TestHistoryCommand_EmptyDirectory(t *testing.T) {
	out, err := runCommand("history", t.TempDir())
	require.NoError(t, err)
	assert.Contains(t, out, "No validation history.")
}

func TestVersionCommand(t *testing.T) {
	out, err := runCommand("version")
	require.NoError(t, err)
	assert.Contains(t, out, "codevet")
}
