package iconsgen

import (
	"path/filepath"
	"time"
)

// IconSet is a deduplicated, ascending list of icon names
type IconSet []string

// Variant describes one visual rendering of the icon font
type Variant struct {
	Name     string // "rounded" (class modifier suffix)
	Title    string // "Rounded"
	Family   string // "Material Symbols Rounded"
	FontFile string // "material-symbols-rounded.woff2"
}

// Variants lists the three Material Symbols styles. The first entry is the default.
var Variants = []Variant{
	{Name: "outlined", Title: "Outlined", Family: "Material Symbols Outlined", FontFile: "material-symbols-outlined.woff2"},
	{Name: "rounded", Title: "Rounded", Family: "Material Symbols Rounded", FontFile: "material-symbols-rounded.woff2"},
	{Name: "sharp", Title: "Sharp", Family: "Material Symbols Sharp", FontFile: "material-symbols-sharp.woff2"},
}

// DocumentKind identifies a generated artifact
type DocumentKind string

// Generated artifact kinds, in write order
const (
	KindSCSS      DocumentKind = "scss"
	KindCSS       DocumentKind = "css"
	KindReference DocumentKind = "reference"
)

// Document is one rendered artifact
type Document struct {
	Kind    DocumentKind
	Path    string
	Content []byte
}

// Writer persists rendered documents
type Writer interface {
	WriteFile(path string, data []byte) error
}

// Config holds generator configuration
type Config struct {
	Sources        []string  // ["index.d.ts"] (doublestar patterns)
	OutputDir      string    // "." (directory for all three artifacts)
	SCSSFile       string    // "outlined.scss"
	CSSFile        string    // "outlined.css"
	ReferenceFile  string    // "ICON-REFERENCE.md"
	Prefix         string    // "el" (class prefix, joined with "-")
	FontURLPrefix  string    // "./" (prepended to woff2 file names)
	Include        []string  // Icon name globs to keep (empty = all)
	Exclude        []string  // gitignore-style icon name patterns to drop
	ReferenceLimit int       // Rows in the reference usage table (default: 20)
	Timestamp      bool      // Emit "Generated:" header lines (default: true)
	FailOnEmpty    bool      // Return ErrNoIcons when nothing was extracted
	Now            time.Time // Header timestamp (zero = time.Now())
	Writer         Writer    // Output writer (nil = atomic OS writer)
}

// DefaultConfig returns the configuration used when nothing is overridden
func DefaultConfig() Config {
	return Config{
		Sources:        []string{"index.d.ts"},
		OutputDir:      ".",
		SCSSFile:       "outlined.scss",
		CSSFile:        "outlined.css",
		ReferenceFile:  "ICON-REFERENCE.md",
		Prefix:         DefaultPrefix,
		FontURLPrefix:  DefaultFontURLPrefix,
		ReferenceLimit: DefaultReferenceLimit,
		Timestamp:      true,
	}
}

// Path returns the output path for a document kind
func (c Config) Path(kind DocumentKind) string {
	var name string
	switch kind {
	case KindSCSS:
		name = c.SCSSFile
	case KindCSS:
		name = c.CSSFile
	case KindReference:
		name = c.ReferenceFile
	}
	return filepath.Join(c.OutputDir, name)
}

// Options derives render options from the config, resolving the timestamp
func (c Config) Options() RenderOptions {
	opts := RenderOptions{
		Prefix:         c.Prefix,
		FontURLPrefix:  c.FontURLPrefix,
		ReferenceLimit: c.ReferenceLimit,
	}
	if c.Timestamp {
		opts.GeneratedAt = c.Now
		if opts.GeneratedAt.IsZero() {
			opts.GeneratedAt = time.Now()
		}
	}
	return opts
}

// GenerateResult contains generation stats
type GenerateResult struct {
	FilesScanned   int      // Source files read
	IconsExtracted int      // Quoted strings found, before dedup
	IconsFiltered  int      // Unique names dropped by Include/Exclude
	IconsGenerated int      // Size of the final icon set
	Written        []string // Paths written, in order
	Warnings       []string
}
