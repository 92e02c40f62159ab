package iconsgen

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/mattn/go-isatty"
)

// Reporter prints generation progress and verification results.
// A nil *Reporter is valid and prints nothing.
type Reporter struct {
	w         io.Writer
	useColors bool
}

// NewReporter creates a new reporter writing to w
func NewReporter(w io.Writer, useColors bool) *Reporter {
	return &Reporter{
		w:         w,
		useColors: useColors,
	}
}

// ShouldUseColors determines if colors should be enabled
func ShouldUseColors(force bool) bool {
	// Explicit flag wins
	if force {
		return true
	}

	// NO_COLOR (https://no-color.org) disables colors unless forced
	if os.Getenv("NO_COLOR") != "" {
		return false
	}

	// Check for FORCE_COLOR environment variable (GitHub Actions, etc.)
	if os.Getenv("FORCE_COLOR") != "" {
		return true
	}

	// GitHub Actions supports colors
	if os.Getenv("GITHUB_ACTIONS") == "true" {
		return true
	}

	// Auto-detect TTY
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Found reports how many icons the sources produced
func (r *Reporter) Found(count int) {
	if r == nil {
		return
	}
	fmt.Fprintf(r.w, "Found %d Material Symbols icons\n", count)
}

// Written reports one artifact persisted to disk
func (r *Reporter) Written(doc Document, icons int) {
	if r == nil {
		return
	}
	name := filepath.Base(doc.Path)

	var msg string
	switch doc.Kind {
	case KindReference:
		msg = fmt.Sprintf("Generated %s with icon name mapping", name)
	default:
		msg = fmt.Sprintf("Generated %s with %d icon classes", name, icons)
	}
	fmt.Fprintf(r.w, "%s %s\n", r.paint(styleSuccess, "✓"), msg)
}

// Done reports that every artifact was written
func (r *Reporter) Done() {
	if r == nil {
		return
	}
	fmt.Fprintf(r.w, "\n%s\n", r.paint(styleSuccess, "✅ All files generated successfully!"))
}

// Warnings prints generation warnings
func (r *Reporter) Warnings(warnings []string) {
	if r == nil || len(warnings) == 0 {
		return
	}
	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, r.paint(severityStyles[SeverityWarning], "Warnings"))
	for _, w := range warnings {
		fmt.Fprintf(r.w, "  - %s\n", w)
	}
}

// PrintIssues outputs verify issues as "file: message (severity)", sorted by file
func (r *Reporter) PrintIssues(issues []Issue) {
	if r == nil {
		return
	}
	sorted := make([]Issue, len(issues))
	copy(sorted, issues)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].File < sorted[j].File
	})

	for _, issue := range sorted {
		location := "sources:"
		if issue.File != "" {
			location = issue.File + ":"
		}
		fmt.Fprintf(r.w, "%s %s %s\n",
			r.paint(styleLocation, location),
			issue.Text,
			r.paint(severityStyles[issue.Severity], "("+issue.Severity+")"))
	}
}

// PrintVerifySummary outputs the issue count and per-artifact totals
func (r *Reporter) PrintVerifySummary(result *VerifyResult) {
	if r == nil {
		return
	}
	fmt.Fprintln(r.w, "")
	fmt.Fprintf(r.w, "Sources define %s\n", pluralizeCount(result.Expected, "icon", "icons"))
	for _, check := range result.Artifacts {
		if !check.Present {
			fmt.Fprintf(r.w, "* %s: missing\n", check.Path)
			continue
		}
		fmt.Fprintf(r.w, "* %s: %s\n", check.Path, pluralizeCount(len(check.Icons), "icon", "icons"))
	}

	if len(result.Issues) == 0 {
		fmt.Fprintln(r.w, r.paint(styleSuccess, "✓ Generated files are up to date"))
		return
	}
	fmt.Fprintf(r.w, "%s (%s)\n",
		pluralizeCount(len(result.Issues), "issue", "issues"),
		pluralizeCount(result.ErrorCount, "error", "errors"))
	fmt.Fprintln(r.w, r.paint(styleHint, "Hint: Run iconsgen generate to refresh the outputs"))
}

// pluralizeCount returns a formatted string with count and singular/plural form
func pluralizeCount(count int, singular, plural string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, singular)
	}
	return fmt.Sprintf("%d %s", count, plural)
}
