package iconsgen

import (
	"fmt"
	"io"
)

// OutputFormat selects how a verify result is printed
type OutputFormat string

// Verify output formats
const (
	OutputText    OutputFormat = "text"    // Issues followed by the summary
	OutputIssues  OutputFormat = "issues"  // Issues only
	OutputSummary OutputFormat = "summary" // Per-artifact totals only
	OutputJSON    OutputFormat = "json"
)

// DetermineOutputFormat maps a --output-format value to an OutputFormat.
// Unknown values are an error rather than a silent fallback.
func DetermineOutputFormat(formatFlag string) (OutputFormat, error) {
	switch formatFlag {
	case "", "text":
		return OutputText, nil
	case "issues":
		return OutputIssues, nil
	case "summary":
		return OutputSummary, nil
	case "json":
		return OutputJSON, nil
	default:
		return "", fmt.Errorf("unknown output format %q (want text, issues, summary or json)", formatFlag)
	}
}

// WriteVerifyOutput writes the verify result in the specified format
func WriteVerifyOutput(w io.Writer, result *VerifyResult, format OutputFormat, useColors bool) error {
	if format == OutputJSON {
		return WriteVerifyJSON(w, result)
	}

	reporter := NewReporter(w, useColors)
	switch format {
	case OutputIssues:
		reporter.PrintIssues(result.Issues)
	case OutputSummary:
		reporter.PrintVerifySummary(result)
	default:
		reporter.PrintIssues(result.Issues)
		reporter.PrintVerifySummary(result)
	}
	return nil
}
