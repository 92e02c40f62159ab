package iconsgen

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testConfig writes content to an index.d.ts in a temp dir and returns a
// config that reads it and writes into <dir>/out
func testConfig(t *testing.T, content string) Config {
	t.Helper()
	dir := t.TempDir()
	src := filepath.Join(dir, "index.d.ts")
	require.NoError(t, os.WriteFile(src, []byte(content), 0644))

	config := DefaultConfig()
	config.Sources = []string{src}
	config.OutputDir = filepath.Join(dir, "out")
	config.Now = fixedTime
	return config
}

func readOutput(t *testing.T, config Config, kind DocumentKind) string {
	t.Helper()
	data, err := os.ReadFile(config.Path(kind))
	require.NoError(t, err)
	return string(data)
}

// failingWriter delegates to the OS writer until it sees failOn
type failingWriter struct {
	failOn string
	calls  []string
}

func (w *failingWriter) WriteFile(path string, data []byte) error {
	w.calls = append(w.calls, path)
	if strings.HasSuffix(path, w.failOn) {
		return errors.New("disk full")
	}
	return NewOSWriter().WriteFile(path, data)
}

func TestGenerate(t *testing.T) {
	config := testConfig(t, `export type MaterialSymbol = "face" | "face" | "account_circle";`)

	var out bytes.Buffer
	result, err := Generate(config, NewReporter(&out, false))
	require.NoError(t, err)

	assert.Equal(t, 1, result.FilesScanned)
	assert.Equal(t, 3, result.IconsExtracted)
	assert.Equal(t, 2, result.IconsGenerated)
	assert.Empty(t, result.Warnings)
	assert.Equal(t, []string{config.Path(KindSCSS), config.Path(KindCSS), config.Path(KindReference)}, result.Written)

	scss := readOutput(t, config, KindSCSS)
	assert.Contains(t, scss, `.el-face::before { font-family: "Material Symbols Outlined"; content: 'face'; }`)
	assert.Contains(t, scss, `.el-account-circle::before { font-family: "Material Symbols Outlined"; content: 'account_circle'; }`)
	assert.Contains(t, scss, "// Generated: 3/4/2025, 1:05:09 PM\n")

	css := readOutput(t, config, KindCSS)
	assert.Contains(t, css, `.el-account-circle::before { font-family: "Material Symbols Outlined"; content: "account_circle"; }`)

	ref := readOutput(t, config, KindReference)
	assert.Contains(t, ref, "Total icons: 2")

	assert.Equal(t, "Found 2 Material Symbols icons\n"+
		"✓ Generated outlined.scss with 2 icon classes\n"+
		"✓ Generated outlined.css with 2 icon classes\n"+
		"✓ Generated ICON-REFERENCE.md with icon name mapping\n"+
		"\n✅ All files generated successfully!\n", out.String())
}

func TestGenerateCustomFileNames(t *testing.T) {
	config := testConfig(t, `"home"`)
	config.SCSSFile = "icons.scss"
	config.CSSFile = "icons.css"
	config.ReferenceFile = "ICONS.md"

	result, err := Generate(config, nil)
	require.NoError(t, err)

	assert.Equal(t, []string{
		filepath.Join(config.OutputDir, "icons.scss"),
		filepath.Join(config.OutputDir, "icons.css"),
		filepath.Join(config.OutputDir, "ICONS.md"),
	}, result.Written)
	for _, path := range result.Written {
		assert.FileExists(t, path)
	}
}

func TestGenerateEmptyInput(t *testing.T) {
	config := testConfig(t, "export type MaterialSymbol = never;")

	result, err := Generate(config, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, result.IconsGenerated)
	require.Len(t, result.Warnings, 1)
	assert.Contains(t, result.Warnings[0], "no icons extracted")

	assert.Contains(t, readOutput(t, config, KindSCSS), "// Total icons: 0")
	assert.Contains(t, readOutput(t, config, KindCSS), "/* Total icons: 0 */")
	assert.Contains(t, readOutput(t, config, KindReference), "Total icons: 0")
}

func TestGenerateFailOnEmpty(t *testing.T) {
	config := testConfig(t, "")
	config.FailOnEmpty = true

	_, err := Generate(config, nil)
	require.ErrorIs(t, err, ErrNoIcons)

	_, statErr := os.Stat(config.OutputDir)
	assert.True(t, errors.Is(statErr, fs.ErrNotExist), "nothing should be written")
}

func TestGenerateMissingSource(t *testing.T) {
	dir := t.TempDir()
	config := DefaultConfig()
	config.Sources = []string{filepath.Join(dir, "index.d.ts")}
	config.OutputDir = filepath.Join(dir, "out")

	var out bytes.Buffer
	result, err := Generate(config, NewReporter(&out, false))
	assert.Nil(t, result)

	var readErr *ReadError
	require.ErrorAs(t, err, &readErr)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
	assert.Empty(t, out.String())

	_, statErr := os.Stat(config.OutputDir)
	assert.True(t, errors.Is(statErr, fs.ErrNotExist), "nothing should be written")
}

func TestGenerateWriteFailure(t *testing.T) {
	config := testConfig(t, `"face" | "home"`)
	writer := &failingWriter{failOn: "outlined.css"}
	config.Writer = writer

	var out bytes.Buffer
	result, err := Generate(config, NewReporter(&out, false))

	var writeErr *WriteError
	require.ErrorAs(t, err, &writeErr)
	assert.Equal(t, config.Path(KindCSS), writeErr.Path)
	assert.Contains(t, err.Error(), "disk full")

	// The SCSS file already written stays; the reference is never attempted
	require.NotNil(t, result)
	assert.Equal(t, []string{config.Path(KindSCSS)}, result.Written)
	assert.Len(t, writer.calls, 2)
	assert.FileExists(t, config.Path(KindSCSS))
	assert.NoFileExists(t, config.Path(KindReference))
	assert.NotContains(t, out.String(), "All files generated successfully")
}

func TestGenerateOverwritesExisting(t *testing.T) {
	config := testConfig(t, `"face"`)
	require.NoError(t, os.MkdirAll(config.OutputDir, 0755))
	require.NoError(t, os.WriteFile(config.Path(KindCSS), []byte("stale"), 0644))

	_, err := Generate(config, nil)
	require.NoError(t, err)

	css := readOutput(t, config, KindCSS)
	assert.NotContains(t, css, "stale")
	assert.Contains(t, css, ".el-face::before")
}

func TestGenerateDeterministic(t *testing.T) {
	config := testConfig(t, `"home" | "face" | "arrow_back" | "face"`)

	_, err := Generate(config, nil)
	require.NoError(t, err)
	first := map[DocumentKind]string{}
	for _, kind := range []DocumentKind{KindSCSS, KindCSS, KindReference} {
		first[kind] = readOutput(t, config, kind)
	}

	_, err = Generate(config, nil)
	require.NoError(t, err)
	for _, kind := range []DocumentKind{KindSCSS, KindCSS, KindReference} {
		if diff := cmp.Diff(first[kind], readOutput(t, config, kind)); diff != "" {
			t.Errorf("%s changed between runs (-first +second):\n%s", kind, diff)
		}
	}
}

func TestGenerateWithoutTimestamp(t *testing.T) {
	config := testConfig(t, `"face"`)
	config.Timestamp = false

	_, err := Generate(config, nil)
	require.NoError(t, err)

	assert.NotContains(t, readOutput(t, config, KindSCSS), "Generated:")
	assert.NotContains(t, readOutput(t, config, KindCSS), "Generated:")
}

func TestGenerateFilters(t *testing.T) {
	config := testConfig(t, `"arrow_back" | "arrow_forward" | "face" | "wifi_off" | "toggle_off"`)
	config.Include = []string{"arrow_*", "*_off"}
	config.Exclude = []string{"*_off", "!toggle_off"}

	result, err := Generate(config, nil)
	require.NoError(t, err)
	assert.Equal(t, 3, result.IconsGenerated)
	assert.Equal(t, 2, result.IconsFiltered)

	ref := readOutput(t, config, KindReference)
	assert.Contains(t, ref, "```\narrow_back\narrow_forward\ntoggle_off\n```")
}

func TestGenerateInvalidInclude(t *testing.T) {
	config := testConfig(t, `"face"`)
	config.Include = []string{"[unclosed"}

	_, err := Generate(config, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid include pattern")
}

func TestGenerateCollisionWarning(t *testing.T) {
	config := testConfig(t, `"arrow_back" | "arrow-back"`)

	var out bytes.Buffer
	reporter := NewReporter(&out, false)
	result, err := Generate(config, reporter)
	require.NoError(t, err)

	require.Len(t, result.Warnings, 1)
	assert.Contains(t, result.Warnings[0], ".el-arrow-back")
}
