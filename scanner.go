package iconsgen

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/yacobolo/iconsgen/internal/logging"
)

// SourceScan is the raw result of reading every source file
type SourceScan struct {
	Files      []string // Resolved source paths, sorted
	Candidates []string // Quoted strings in file order, duplicates kept
}

// resolveSources expands source patterns to files. An existing file is taken
// literally even when its name contains glob metacharacters. A pattern that
// matches nothing is a ReadError, so a literal path to a missing file fails
// the same way a failed read does.
func resolveSources(patterns []string) ([]string, error) {
	if len(patterns) == 0 {
		return nil, &ReadError{Path: "sources", Err: errors.New("no source patterns configured")}
	}

	seen := make(map[string]bool)
	var files []string

	for _, pattern := range patterns {
		matches, err := expandSource(pattern)
		if err != nil {
			return nil, err
		}

		for _, match := range matches {
			if !seen[match] {
				seen[match] = true
				files = append(files, match)
			}
		}
	}

	sort.Strings(files)
	return files, nil
}

// expandSource resolves one source entry to its matching paths
func expandSource(pattern string) ([]string, error) {
	if info, err := os.Stat(pattern); err == nil && !info.IsDir() {
		return []string{pattern}, nil
	}

	// Use doublestar for ** glob support
	matches, err := doublestar.FilepathGlob(pattern)
	if err != nil {
		return nil, &ReadError{Path: pattern, Err: fmt.Errorf("glob pattern: %w", err)}
	}
	if len(matches) == 0 {
		return nil, &ReadError{Path: pattern, Err: fs.ErrNotExist}
	}
	return matches, nil
}

// ScanSources reads every file matching patterns and extracts quoted names
func ScanSources(patterns []string) (*SourceScan, error) {
	log := logging.Logger("scanner")

	files, err := resolveSources(patterns)
	if err != nil {
		return nil, err
	}

	scan := &SourceScan{Files: files}
	for _, file := range files {
		// #nosec G304 - path comes from trusted configuration
		content, err := os.ReadFile(file)
		if err != nil {
			return nil, &ReadError{Path: file, Err: err}
		}

		names := ExtractIcons(string(content))
		log.Debug().Str("file", file).Int("candidates", len(names)).Msg("Scanned source")
		scan.Candidates = append(scan.Candidates, names...)
	}

	return scan, nil
}

// LoadIconSet scans the configured sources and returns the filtered icon set
// together with the generation stats gathered along the way.
func LoadIconSet(config Config) (IconSet, *GenerateResult, error) {
	result := &GenerateResult{}

	filter, err := newNameFilter(config.Include, config.Exclude)
	if err != nil {
		return nil, nil, fmt.Errorf("filter: %w", err)
	}

	scan, err := ScanSources(config.Sources)
	if err != nil {
		return nil, nil, err
	}
	result.FilesScanned = len(scan.Files)
	result.IconsExtracted = len(scan.Candidates)

	set, dropped := filter.Apply(NewIconSet(scan.Candidates))
	result.IconsFiltered = dropped
	result.IconsGenerated = len(set)

	return set, result, nil
}
