package iconsgen

import (
	"fmt"

	"github.com/bmatcuk/doublestar/v4"
	ignore "github.com/sabhiram/go-gitignore"
)

// nameFilter decides which extracted names make it into the icon set
//
// Two layers:
// 1. Include globs (doublestar syntax, e.g. "arrow_*", "{home,face}"). Empty keeps all.
// 2. Exclude lines in gitignore syntax, so "!arrow_back" re-includes a name.
type nameFilter struct {
	include []string
	exclude *ignore.GitIgnore
}

// newNameFilter validates include patterns and compiles exclude lines
func newNameFilter(include, exclude []string) (*nameFilter, error) {
	for _, pattern := range include {
		if !doublestar.ValidatePattern(pattern) {
			return nil, fmt.Errorf("invalid include pattern %q", pattern)
		}
	}

	f := &nameFilter{include: include}
	if len(exclude) > 0 {
		f.exclude = ignore.CompileIgnoreLines(exclude...)
	}
	return f, nil
}

// Keep reports whether name passes both layers
func (f *nameFilter) Keep(name string) bool {
	if len(f.include) > 0 && !f.matchesInclude(name) {
		return false
	}
	if f.exclude != nil && f.exclude.MatchesPath(name) {
		return false
	}
	return true
}

func (f *nameFilter) matchesInclude(name string) bool {
	for _, pattern := range f.include {
		// Patterns were validated in newNameFilter
		if ok, _ := doublestar.Match(pattern, name); ok {
			return true
		}
	}
	return false
}

// Apply returns the names in set that pass, plus how many were dropped
func (f *nameFilter) Apply(set IconSet) (IconSet, int) {
	kept := make(IconSet, 0, len(set))
	for _, name := range set {
		if f.Keep(name) {
			kept = append(kept, name)
		}
	}
	return kept, len(set) - len(kept)
}
