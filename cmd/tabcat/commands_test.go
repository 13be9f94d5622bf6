package tabcat

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wolfe-services/tabcat/pkg/config"
	"github.com/wolfe-services/tabcat/pkg/errors"
)

// runTabcat executes the root command with args and buffered output.
// The environment is sealed off first: color-forcing variables are
// neutralized, TABCAT_* config overrides are removed, and the XDG
// directories point into the test's temp dir so a developer's real
// tabcat.toml never leaks into assertions.
func runTabcat(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	// Registered first so it runs last, after t.Setenv has restored
	// the original environment.
	t.Cleanup(xdg.Reload)

	t.Setenv("NO_COLOR", "")
	t.Setenv("CLICOLOR_FORCE", "")
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(t.TempDir(), "config"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(t.TempDir(), "state"))
	for _, kv := range os.Environ() {
		if name, _, _ := strings.Cut(kv, "="); strings.HasPrefix(name, "TABCAT_") {
			t.Setenv(name, "")
			_ = os.Unsetenv(name)
		}
	}
	xdg.Reload()

	cmd := NewRootCmd()
	out := new(bytes.Buffer)
	cmd.SetOut(out)
	cmd.SetErr(out)
	if stdin != "" {
		cmd.SetIn(strings.NewReader(stdin))
	}
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestRenderCommand_CSVFile(t *testing.T) {
	path := writeTempFile(t, "data.csv", "name,value\nfoo,123\nbar,45678\n")

	out, err := runTabcat(t, "", "render", path, "--max-width", "80")
	require.NoError(t, err)

	expected := strings.Join([]string{
		"name   value",
		"----   -----",
		"foo    123",
		"bar    45678",
	}, "\n") + "\n"
	assert.Equal(t, expected, out)
}

func TestRenderCommand_Stdin(t *testing.T) {
	out, err := runTabcat(t, "a,b\n1,2\n", "render", "--max-width", "80")
	require.NoError(t, err)
	assert.Equal(t, "a   b\n-   -\n1   2\n", out)
}

func TestRenderCommand_MarkdownStyle(t *testing.T) {
	path := writeTempFile(t, "data.csv", "name,value\nfoo,123\n")

	out, err := runTabcat(t, "", "render", path, "-s", "markdown", "--max-width", "80")
	require.NoError(t, err)

	expected := strings.Join([]string{
		"| name | value |",
		"|:-----|:------|",
		"| foo  | 123   |",
	}, "\n") + "\n"
	assert.Equal(t, expected, out)
}

func TestRenderCommand_BorderedStyle(t *testing.T) {
	path := writeTempFile(t, "data.csv", "name,value\nfoo,123\n")

	out, err := runTabcat(t, "", "render", path, "-s", "bordered", "--max-width", "80")
	require.NoError(t, err)

	expected := strings.Join([]string{
		"┌──────┬───────┐",
		"│ name │ value │",
		"├──────┼───────┤",
		"│ foo  │ 123   │",
		"└──────┴───────┘",
	}, "\n") + "\n"
	assert.Equal(t, expected, out)
}

func TestRenderCommand_CompactStyle(t *testing.T) {
	path := writeTempFile(t, "data.csv", "name,value\nfoo,123\n")

	out, err := runTabcat(t, "", "render", path, "-s", "compact", "--max-width", "80")
	require.NoError(t, err)
	assert.Equal(t, "foo  123\n", out)
}

func TestRenderCommand_JSONFormat(t *testing.T) {
	path := writeTempFile(t, "data.csv", "name,value\nfoo,123\nbar,45678\n")

	out, err := runTabcat(t, "", "render", path, "--format", "json")
	require.NoError(t, err)

	var doc struct {
		Columns []string   `json:"columns"`
		Rows    [][]string `json:"rows"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, []string{"name", "value"}, doc.Columns)
	assert.Equal(t, [][]string{{"foo", "123"}, {"bar", "45678"}}, doc.Rows)
}

func TestRenderCommand_JSONInput(t *testing.T) {
	stdin := `[{"name":"foo","n":1},{"name":"bar","n":22}]`

	out, err := runTabcat(t, stdin, "render", "--max-width", "80")
	require.NoError(t, err)

	expected := strings.Join([]string{
		"name   n",
		"----   --",
		"foo    1",
		"bar    22",
	}, "\n") + "\n"
	assert.Equal(t, expected, out)
}

func TestRenderCommand_TSVByExtension(t *testing.T) {
	path := writeTempFile(t, "data.tsv", "name\tvalue\nfoo\t123\n")

	out, err := runTabcat(t, "", "render", path, "--max-width", "80")
	require.NoError(t, err)
	assert.Equal(t, "name   value\n----   -----\nfoo    123\n", out)
}

func TestRenderCommand_CustomDelimiter(t *testing.T) {
	path := writeTempFile(t, "data.txt", "name;value\nfoo;123\n")

	out, err := runTabcat(t, "", "render", path, "--input", "csv", "-d", ";", "--max-width", "80")
	require.NoError(t, err)
	assert.Equal(t, "name   value\n----   -----\nfoo    123\n", out)
}

func TestRenderCommand_NoHeader(t *testing.T) {
	path := writeTempFile(t, "data.csv", "1,2\n3,4\n")

	out, err := runTabcat(t, "", "render", path, "--no-header", "--max-width", "80")
	require.NoError(t, err)

	expected := strings.Join([]string{
		"c1   c2",
		"--   --",
		"1    2",
		"3    4",
	}, "\n") + "\n"
	assert.Equal(t, expected, out)
}

func TestRenderCommand_AlignRight(t *testing.T) {
	path := writeTempFile(t, "data.csv", "name,value\nfoo,123\n")

	out, err := runTabcat(t, "", "render", path, "--align", "right", "--max-width", "80")
	require.NoError(t, err)

	expected := strings.Join([]string{
		"name   value",
		"----   -----",
		" foo     123",
	}, "\n") + "\n"
	assert.Equal(t, expected, out)
}

func TestRenderCommand_MaxColWidthTruncates(t *testing.T) {
	path := writeTempFile(t, "data.csv", "name,value\nabcdefghij,1\n")

	out, err := runTabcat(t, "", "render", path, "--max-col-width", "6", "--max-width", "80")
	require.NoError(t, err)
	assert.Contains(t, out, "abc...")
	assert.NotContains(t, out, "abcdefghij")
}

func TestRenderCommand_InvalidStyle(t *testing.T) {
	path := writeTempFile(t, "data.csv", "a\n1\n")

	_, err := runTabcat(t, "", "render", path, "-s", "fancy")
	require.Error(t, err)
	assert.Equal(t, errors.ErrInvalidInput, errors.CodeOf(err))
	assert.Contains(t, err.Error(), "invalid --style")
}

func TestRenderCommand_InvalidAlign(t *testing.T) {
	path := writeTempFile(t, "data.csv", "a\n1\n")

	_, err := runTabcat(t, "", "render", path, "--align", "sideways")
	require.Error(t, err)
	assert.Equal(t, errors.ErrInvalidInput, errors.CodeOf(err))
}

func TestRenderCommand_MissingInputFile(t *testing.T) {
	_, err := runTabcat(t, "", "render", filepath.Join(t.TempDir(), "nope.csv"))
	require.Error(t, err)
	assert.Equal(t, errors.ErrInputOpen, errors.CodeOf(err))
}

func TestRenderCommand_OutputFile(t *testing.T) {
	path := writeTempFile(t, "data.csv", "a,b\n1,2\n")
	dest := filepath.Join(t.TempDir(), "out.txt")

	out, err := runTabcat(t, "", "render", path, "-o", dest, "--max-width", "80")
	require.NoError(t, err)
	assert.Empty(t, out)

	content, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, "a   b\n-   -\n1   2\n", string(content))
}

func TestRenderCommand_OutputFileExistsAborts(t *testing.T) {
	path := writeTempFile(t, "data.csv", "a,b\n1,2\n")
	dest := writeTempFile(t, "out.txt", "precious")

	// Stdin is not a terminal, so the overwrite prompt resolves to its
	// default answer: no.
	_, err := runTabcat(t, "", "render", path, "-o", dest)
	require.Error(t, err)
	assert.Equal(t, errors.ErrAborted, errors.CodeOf(err))

	content, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, "precious", string(content))
}

func TestStylesCommand(t *testing.T) {
	out, err := runTabcat(t, "", "styles")
	require.NoError(t, err)

	for _, name := range []string{"plain", "bordered", "markdown", "compact"} {
		assert.Contains(t, out, name+":")
	}
	assert.Contains(t, out, "┌")
	assert.Contains(t, out, "| Name | Value |")
}

func TestTopicsCommand_List(t *testing.T) {
	out, err := runTabcat(t, "", "topics")
	require.NoError(t, err)
	assert.Contains(t, out, "Available topics:")
	for _, name := range []string{"config", "formats", "styles"} {
		assert.Contains(t, out, name)
	}
}

func TestTopicsCommand_Show(t *testing.T) {
	out, err := runTabcat(t, "", "topics", "styles")
	require.NoError(t, err)
	assert.Contains(t, out, "Table styles")
}

func TestResolveColor(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	t.Setenv("CLICOLOR_FORCE", "")
	t.Setenv("TABCAT_NO_COLOR", "")

	colorMode := func(mode string) *config.Config {
		cfg := &config.Config{}
		cfg.Output.Color = mode
		return cfg
	}

	// --no-color wins over everything.
	assert.False(t, resolveColor(&rootOptions{noColor: true}, &renderOptions{color: true}, true, colorMode("always"), nil))

	// An explicit --color, either way, beats the config.
	assert.True(t, resolveColor(&rootOptions{}, &renderOptions{color: true}, true, colorMode("never"), nil))
	assert.False(t, resolveColor(&rootOptions{}, &renderOptions{color: false}, true, colorMode("always"), nil))

	// No flag: the config decides.
	assert.True(t, resolveColor(&rootOptions{}, &renderOptions{}, false, colorMode("always"), nil))
	assert.False(t, resolveColor(&rootOptions{}, &renderOptions{}, false, colorMode("never"), nil))

	// Auto with nothing to probe stays off.
	assert.False(t, resolveColor(&rootOptions{}, &renderOptions{}, false, colorMode("auto"), nil))
}

func TestTopicsCommand_Unknown(t *testing.T) {
	_, err := runTabcat(t, "", "topics", "nonsense")
	require.Error(t, err)
	assert.Equal(t, errors.ErrNotFound, errors.CodeOf(err))
}
