package iconsgen

import (
	"encoding/json"
	"io"
	"time"
)

// JSONIconList is the structured export of an icon set
type JSONIconList struct {
	Version   string      `json:"version"`
	Timestamp string      `json:"timestamp"`
	Summary   JSONSummary `json:"summary"`
	Icons     []JSONIcon  `json:"icons"`
}

// JSONSummary contains the generation counts
type JSONSummary struct {
	FilesScanned   int `json:"files_scanned"`
	IconsExtracted int `json:"icons_extracted"`
	IconsFiltered  int `json:"icons_filtered"`
	Total          int `json:"total"`
}

// JSONIcon is one icon and its derived class
type JSONIcon struct {
	Name  string `json:"name"`
	Class string `json:"class"`
}

// JSONVerifyReport is the structured export of a verify run
type JSONVerifyReport struct {
	Version   string              `json:"version"`
	Timestamp string              `json:"timestamp"`
	Expected  int                 `json:"expected"`
	Errors    int                 `json:"errors"`
	Artifacts []JSONArtifactCheck `json:"artifacts"`
	Issues    []Issue             `json:"issues"`
}

// JSONArtifactCheck summarizes one checked file
type JSONArtifactCheck struct {
	Kind    string `json:"kind"`
	Path    string `json:"path"`
	Present bool   `json:"present"`
	Icons   int    `json:"icons"`
}

// WriteIconsJSON writes the icon set with derived class names as JSON
func WriteIconsJSON(w io.Writer, set IconSet, prefix string, result *GenerateResult) error {
	icons := make([]JSONIcon, len(set))
	for i, name := range set {
		icons[i] = JSONIcon{Name: name, Class: ClassName(prefix, name)}
	}

	output := JSONIconList{
		Version:   "1.0",
		Timestamp: time.Now().Format(time.RFC3339),
		Icons:     icons,
	}
	if result != nil {
		output.Summary = JSONSummary{
			FilesScanned:   result.FilesScanned,
			IconsExtracted: result.IconsExtracted,
			IconsFiltered:  result.IconsFiltered,
			Total:          len(set),
		}
	}

	return encodeJSON(w, output)
}

// WriteVerifyJSON writes a verify result as JSON
func WriteVerifyJSON(w io.Writer, result *VerifyResult) error {
	artifacts := make([]JSONArtifactCheck, len(result.Artifacts))
	for i, check := range result.Artifacts {
		artifacts[i] = JSONArtifactCheck{
			Kind:    string(check.Kind),
			Path:    check.Path,
			Present: check.Present,
			Icons:   len(check.Icons),
		}
	}

	issues := result.Issues
	if issues == nil {
		issues = []Issue{}
	}

	return encodeJSON(w, JSONVerifyReport{
		Version:   "1.0",
		Timestamp: time.Now().Format(time.RFC3339),
		Expected:  result.Expected,
		Errors:    result.ErrorCount,
		Artifacts: artifacts,
		Issues:    issues,
	})
}

func encodeJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
