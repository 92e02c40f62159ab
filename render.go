package iconsgen

import (
	"bytes"
	"embed"
	"fmt"
	"text/template"
	"time"
)

// DefaultReferenceLimit is the number of icons shown in the reference usage table
const DefaultReferenceLimit = 20

// DefaultFontURLPrefix points @font-face src at woff2 files next to the stylesheet
const DefaultFontURLPrefix = "./"

// timestampLayout mirrors an en-US locale date string: "1/2/2006, 3:04:05 PM"
const timestampLayout = "1/2/2006, 3:04:05 PM"

// exampleIcons are the worked examples listed in every reference document
var exampleIcons = []string{"face", "account_circle", "arrow_back", "home"}

//go:embed templates/*.tmpl
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.tmpl"))

// templateNames maps each document kind to its embedded template
var templateNames = map[DocumentKind]string{
	KindSCSS:      "outlined.scss.tmpl",
	KindCSS:       "outlined.css.tmpl",
	KindReference: "reference.md.tmpl",
}

// RenderOptions controls the fixed parts of the generated documents
type RenderOptions struct {
	Prefix         string    // Class prefix (default: "el")
	FontURLPrefix  string    // Prepended to woff2 file names in @font-face src (default: "./")
	ReferenceLimit int       // Table rows in the reference (default: 20)
	GeneratedAt    time.Time // Header timestamp; zero omits the "Generated:" lines
}

func (o RenderOptions) withDefaults() RenderOptions {
	if o.Prefix == "" {
		o.Prefix = DefaultPrefix
	}
	if o.FontURLPrefix == "" {
		o.FontURLPrefix = DefaultFontURLPrefix
	}
	if o.ReferenceLimit <= 0 {
		o.ReferenceLimit = DefaultReferenceLimit
	}
	return o
}

// iconRow is one icon as seen by the templates
type iconRow struct {
	Name  string
	Class string
}

// templateData is shared by all three templates
type templateData struct {
	Prefix        string
	FontURLPrefix string
	GeneratedAt   string
	Total         int
	Variants      []Variant
	Default       Variant
	Alternates    []Variant
	Icons         []iconRow
	Table         []iconRow
	Remaining     int
	Examples      []iconRow
	ExampleClass  string
}

func newTemplateData(set IconSet, opts RenderOptions) templateData {
	opts = opts.withDefaults()

	data := templateData{
		Prefix:        opts.Prefix,
		FontURLPrefix: opts.FontURLPrefix,
		Total:         len(set),
		Variants:      Variants,
		Default:       Variants[0],
		Alternates:    Variants[1:],
		Icons:         rows(set, opts.Prefix),
		Examples:      rows(exampleIcons, opts.Prefix),
		ExampleClass:  ClassName(opts.Prefix, exampleIcons[0]),
	}
	if !opts.GeneratedAt.IsZero() {
		data.GeneratedAt = opts.GeneratedAt.Format(timestampLayout)
	}

	data.Table = data.Icons
	if len(data.Icons) > opts.ReferenceLimit {
		data.Table = data.Icons[:opts.ReferenceLimit]
		data.Remaining = len(data.Icons) - opts.ReferenceLimit
	}

	return data
}

func rows(names []string, prefix string) []iconRow {
	out := make([]iconRow, len(names))
	for i, name := range names {
		out[i] = iconRow{Name: name, Class: ClassName(prefix, name)}
	}
	return out
}

// Render renders a single document kind for set
func Render(kind DocumentKind, set IconSet, opts RenderOptions) ([]byte, error) {
	name, ok := templateNames[kind]
	if !ok {
		return nil, fmt.Errorf("unknown document kind %q", kind)
	}

	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, newTemplateData(set, opts)); err != nil {
		return nil, fmt.Errorf("failed to render template '%s': %w", name, err)
	}
	return buf.Bytes(), nil
}

// RenderSCSS renders the SCSS source with one ::before rule per icon
func RenderSCSS(set IconSet, opts RenderOptions) ([]byte, error) {
	return Render(KindSCSS, set, opts)
}

// RenderCSS renders the plain stylesheet, including @font-face declarations
func RenderCSS(set IconSet, opts RenderOptions) ([]byte, error) {
	return Render(KindCSS, set, opts)
}

// RenderReference renders the Markdown icon reference
func RenderReference(set IconSet, opts RenderOptions) ([]byte, error) {
	return Render(KindReference, set, opts)
}

// RenderAll renders every document kind in write order. Paths are taken from config.
func RenderAll(set IconSet, config Config) ([]Document, error) {
	opts := config.Options()

	docs := make([]Document, 0, len(templateNames))
	for _, kind := range []DocumentKind{KindSCSS, KindCSS, KindReference} {
		content, err := Render(kind, set, opts)
		if err != nil {
			return nil, err
		}
		docs = append(docs, Document{Kind: kind, Path: config.Path(kind), Content: content})
	}
	return docs, nil
}
