package iconsgen

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractIcons(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{
			name:    "union type",
			content: `export type MaterialSymbol = "face" | "home";`,
			want:    []string{"face", "home"},
		},
		{
			name:    "duplicates kept in source order",
			content: `"face" | "face" | "account_circle"`,
			want:    []string{"face", "face", "account_circle"},
		},
		{
			name:    "multi-line declarations",
			content: "declare const symbols: [\n  \"10k\",\n  \"arrow_back\",\n];",
			want:    []string{"10k", "arrow_back"},
		},
		{
			name:    "no quoted strings",
			content: "export type MaterialSymbol = never;",
			want:    []string{},
		},
		{
			// An empty pair is skipped, so the next quote opens a match
			// that runs to the following one
			name:    "empty quotes shift pairing",
			content: `"" | "face"`,
			want:    []string{" | "},
		},
		{
			// Lexical extraction picks up any quoted text, not just icon names
			name:    "unrelated quoted strings",
			content: `import x from "material-symbols"; type T = "face";`,
			want:    []string{"material-symbols", "face"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractIcons(tt.content))
		})
	}
}

func TestNewIconSet(t *testing.T) {
	tests := []struct {
		name  string
		input []string
		want  IconSet
	}{
		{
			name:  "dedup and sort",
			input: []string{"face", "face", "account_circle"},
			want:  IconSet{"account_circle", "face"},
		},
		{
			name:  "byte order puts digits before letters",
			input: []string{"home", "10k", "Abc", "_private"},
			want:  IconSet{"10k", "Abc", "_private", "home"},
		},
		{
			name:  "empty names dropped",
			input: []string{"", "face", ""},
			want:  IconSet{"face"},
		},
		{
			name:  "nil input",
			input: nil,
			want:  IconSet{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewIconSet(tt.input)
			assert.Equal(t, tt.want, got)

			for i := 1; i < len(got); i++ {
				assert.Less(t, got[i-1], got[i], "set must be strictly ascending")
			}
		})
	}
}

func TestNewIconSetDedupLaw(t *testing.T) {
	input := []string{"home", "face", "home", "home", "face", "arrow_back"}
	set := NewIconSet(input)

	counts := make(map[string]int)
	for _, name := range set {
		counts[name]++
	}
	for _, name := range input {
		assert.Equal(t, 1, counts[name], "%s must appear exactly once", name)
	}
}

func TestClassName(t *testing.T) {
	tests := []struct {
		prefix string
		icon   string
		want   string
	}{
		{"el", "face", "el-face"},
		{"el", "account_circle", "el-account-circle"},
		{"el", "arrow_back_ios_new", "el-arrow-back-ios-new"},
		{"el", "10k", "el-10k"},
		{"", "home", "el-home"},
		{"ms", "check_box", "ms-check-box"},
	}

	for _, tt := range tests {
		t.Run(tt.icon, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassName(tt.prefix, tt.icon))
		})
	}
}

func TestClassCollisions(t *testing.T) {
	set := NewIconSet([]string{"arrow_back", "arrow-back", "home"})
	warnings := classCollisions(set, "el")
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], `"arrow-back" and "arrow_back"`)
	assert.Contains(t, warnings[0], ".el-arrow-back")

	assert.Empty(t, classCollisions(NewIconSet([]string{"face", "home"}), "el"))
}

func TestResolveSources(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "a", "b"), 0755))
	for _, p := range []string{"index.d.ts", "a/extra.d.ts", "a/b/deep.d.ts", "a/notes.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, p), []byte(`"x"`), 0644))
	}

	t.Run("literal path", func(t *testing.T) {
		files, err := resolveSources([]string{filepath.Join(dir, "index.d.ts")})
		require.NoError(t, err)
		assert.Equal(t, []string{filepath.Join(dir, "index.d.ts")}, files)
	})

	t.Run("doublestar pattern sorted and deduplicated", func(t *testing.T) {
		files, err := resolveSources([]string{
			filepath.Join(dir, "**", "*.d.ts"),
			filepath.Join(dir, "index.d.ts"),
		})
		require.NoError(t, err)
		assert.Equal(t, []string{
			filepath.Join(dir, "a", "b", "deep.d.ts"),
			filepath.Join(dir, "a", "extra.d.ts"),
			filepath.Join(dir, "index.d.ts"),
		}, files)
	})

	t.Run("literal path with glob characters", func(t *testing.T) {
		literal := filepath.Join(dir, "icons[1].d.ts")
		require.NoError(t, os.WriteFile(literal, []byte(`"face"`), 0644))
		t.Cleanup(func() { _ = os.Remove(literal) })

		files, err := resolveSources([]string{literal})
		require.NoError(t, err)
		assert.Equal(t, []string{literal}, files)
	})

	t.Run("missing file is a ReadError", func(t *testing.T) {
		_, err := resolveSources([]string{filepath.Join(dir, "missing.d.ts")})
		var readErr *ReadError
		require.ErrorAs(t, err, &readErr)
		assert.True(t, errors.Is(err, fs.ErrNotExist))
	})

	t.Run("no patterns", func(t *testing.T) {
		_, err := resolveSources(nil)
		var readErr *ReadError
		require.ErrorAs(t, err, &readErr)
	})
}

func TestScanSources(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "one.d.ts"), []byte(`"face" | "home"`), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "two.d.ts"), []byte(`"home" | "account_circle"`), 0644))

	scan, err := ScanSources([]string{filepath.Join(dir, "*.d.ts")})
	require.NoError(t, err)
	assert.Len(t, scan.Files, 2)
	assert.Equal(t, []string{"face", "home", "home", "account_circle"}, scan.Candidates)
}

func TestScanSourcesUnreadable(t *testing.T) {
	dir := t.TempDir()
	// A directory matches the pattern but cannot be read as a file
	require.NoError(t, os.Mkdir(filepath.Join(dir, "index.d.ts"), 0755))

	_, err := ScanSources([]string{filepath.Join(dir, "index.d.ts")})
	var readErr *ReadError
	require.ErrorAs(t, err, &readErr)
	assert.Equal(t, filepath.Join(dir, "index.d.ts"), readErr.Path)
}

func TestLoadIconSet(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "index.d.ts")
	require.NoError(t, os.WriteFile(src, []byte(`"wifi" | "wifi_off" | "toggle_off" | "arrow_back" | "arrow_forward" | "wifi"`), 0644))

	config := DefaultConfig()
	config.Sources = []string{src}
	config.Exclude = []string{"*_off", "!toggle_off"}

	set, result, err := LoadIconSet(config)
	require.NoError(t, err)
	assert.Equal(t, IconSet{"arrow_back", "arrow_forward", "toggle_off", "wifi"}, set)
	assert.Equal(t, 1, result.FilesScanned)
	assert.Equal(t, 6, result.IconsExtracted)
	assert.Equal(t, 1, result.IconsFiltered)
	assert.Equal(t, 4, result.IconsGenerated)
}
