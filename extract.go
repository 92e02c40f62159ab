package iconsgen

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// DefaultPrefix is the class prefix used by the Material Symbols stylesheets
const DefaultPrefix = "el"

// quotedPattern matches any double-quoted run. It does not understand string
// escapes or comments in the source language. An empty pair `""` cannot
// match, so its closing quote opens the next match: `"" | "face"` yields " | ".
var quotedPattern = regexp.MustCompile(`"[^"]+"`)

// ExtractIcons returns every double-quoted substring in content with the
// quotes removed, in source order. Duplicates are kept.
func ExtractIcons(content string) []string {
	matches := quotedPattern.FindAllString(content, -1)
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, m[1:len(m)-1])
	}
	return names
}

// NewIconSet deduplicates and sorts names. Empty names are dropped.
func NewIconSet(names []string) IconSet {
	seen := make(map[string]bool, len(names))
	set := make(IconSet, 0, len(names))
	for _, name := range names {
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		set = append(set, name)
	}
	sort.Strings(set)
	return set
}

// ClassName derives the CSS class for an icon: prefix, a hyphen, then the
// icon name with every underscore replaced by a hyphen.
//
//	ClassName("el", "account_circle") == "el-account-circle"
func ClassName(prefix, icon string) string {
	if prefix == "" {
		prefix = DefaultPrefix
	}
	return prefix + "-" + strings.ReplaceAll(icon, "_", "-")
}

// classCollisions reports icons that derive the same class name as an
// earlier icon in the set (e.g. "arrow_back" and "arrow-back").
func classCollisions(set IconSet, prefix string) []string {
	owners := make(map[string]string, len(set))
	var warnings []string
	for _, icon := range set {
		class := ClassName(prefix, icon)
		if prev, ok := owners[class]; ok {
			warnings = append(warnings, fmt.Sprintf("icons %q and %q both map to class .%s", prev, icon, class))
			continue
		}
		owners[class] = icon
	}
	return warnings
}
