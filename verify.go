package iconsgen

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"

	"github.com/yacobolo/iconsgen/internal/logging"
)

var (
	// SCSS is checked line by line; the icon rules are always single-line
	scssRulePattern = regexp.MustCompile(`(?m)^(\.[^\s{]+) \{[^}]*content: '([^']*)';`)

	referenceListPattern  = regexp.MustCompile("(?s)## Icon List\n\n```\n(.*?)```")
	referenceTotalPattern = regexp.MustCompile(`(?m)^Total icons: (\d+)$`)
)

// iconRule is one generated `.class::before { content: ... }` rule
type iconRule struct {
	Selector string // ".el-account-circle::before"
	Content  string // "account_circle"
}

// ArtifactCheck holds what Verify found in one generated file
type ArtifactCheck struct {
	Kind    DocumentKind
	Path    string
	Present bool
	Icons   []string // Icon names declared, in file order
}

// VerifyResult contains the outcome of checking generated files against sources
type VerifyResult struct {
	Expected   int // Icons in the current source set
	Artifacts  []ArtifactCheck
	Issues     []Issue
	ErrorCount int
}

func (r *VerifyResult) addIssue(file, severity, format string, args ...any) {
	r.Issues = append(r.Issues, Issue{File: file, Text: fmt.Sprintf(format, args...), Severity: severity})
	if severity == SeverityError {
		r.ErrorCount++
	}
}

// Verify re-derives the icon set from the configured sources and checks that
// every generated artifact declares exactly those icons, with class names
// derived the way Generate derives them. Missing or stale artifacts are
// reported as issues; only source read failures are returned as errors.
func Verify(config Config) (*VerifyResult, error) {
	log := logging.Logger("verify")
	done := logging.LogOperationStart(log, "verify")
	defer done()

	set, _, err := LoadIconSet(config)
	if err != nil {
		return nil, err
	}

	result := &VerifyResult{Expected: len(set)}
	if len(set) == 0 {
		result.addIssue("", SeverityWarning, IssueEmptyIconSet)
	}

	for _, kind := range []DocumentKind{KindSCSS, KindCSS, KindReference} {
		path := config.Path(kind)
		check := ArtifactCheck{Kind: kind, Path: path}

		// #nosec G304 - path comes from trusted configuration
		content, err := os.ReadFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			result.addIssue(path, SeverityError, IssueMissingOutput, filepath.Base(path))
			result.Artifacts = append(result.Artifacts, check)
			continue
		}
		if err != nil {
			return nil, &ReadError{Path: path, Err: err}
		}
		check.Present = true

		check.Icons, err = result.checkArtifact(kind, path, content, config.Prefix)
		if err != nil {
			result.addIssue(path, SeverityError, IssueUnparsable, filepath.Base(path), err)
		} else {
			result.compareNames(path, check.Icons, set)
		}

		log.Debug().Str("file", path).Int("icons", len(check.Icons)).Msg("Checked artifact")
		result.Artifacts = append(result.Artifacts, check)
	}

	return result, nil
}

// checkArtifact extracts declared icon names and flags rules whose selector
// does not match their content
func (r *VerifyResult) checkArtifact(kind DocumentKind, path string, content []byte, prefix string) ([]string, error) {
	switch kind {
	case KindReference:
		return parseReference(content)
	case KindSCSS, KindCSS:
		var rules []iconRule
		var err error
		if kind == KindCSS {
			rules, err = parseCSSRules(content)
		} else {
			rules = parseSCSSRules(content)
		}
		if err != nil {
			return nil, err
		}

		names := make([]string, 0, len(rules))
		for _, rule := range rules {
			want := ClassName(prefix, rule.Content)
			if rule.Selector != "."+want+"::before" {
				r.addIssue(path, SeverityError, IssueClassMismatch, filepath.Base(path), rule.Selector, rule.Content, want)
			}
			names = append(names, rule.Content)
		}
		return names, nil
	}
	return nil, fmt.Errorf("unknown document kind %q", kind)
}

// compareNames reports duplicates, missing icons and icons unknown to the sources
func (r *VerifyResult) compareNames(path string, names []string, set IconSet) {
	file := filepath.Base(path)

	unique := NewIconSet(names)
	if len(unique) != len(names) {
		r.addIssue(path, SeverityError, IssueDuplicateRules, file, len(names), len(unique))
	}

	declared := make(map[string]bool, len(unique))
	for _, name := range unique {
		declared[name] = true
	}
	expected := make(map[string]bool, len(set))
	var missing []string
	for _, name := range set {
		expected[name] = true
		if !declared[name] {
			missing = append(missing, name)
		}
	}
	var unknown []string
	for _, name := range unique {
		if !expected[name] {
			unknown = append(unknown, name)
		}
	}

	if len(missing) > 0 {
		r.addIssue(path, SeverityError, IssueMissingIcons, file, len(missing), missing[0])
	}
	if len(unknown) > 0 {
		r.addIssue(path, SeverityError, IssueUnknownIcons, file, len(unknown), unknown[0])
	}
}

// parseCSSRules walks the stylesheet with the tdewolff CSS parser and returns
// every ruleset that carries a content declaration. @font-face blocks and the
// base/variant rules have none.
func parseCSSRules(content []byte) ([]iconRule, error) {
	p := css.NewParser(parse.NewInputBytes(content), false)

	var rules []iconRule
	var selector string
	inRuleset := false

	for {
		gt, _, data := p.Next()
		switch gt {
		case css.ErrorGrammar:
			if p.Err() == io.EOF {
				return rules, nil
			}
			return rules, p.Err()
		case css.BeginRulesetGrammar:
			selector = joinTokens(p.Values())
			inRuleset = true
		case css.EndRulesetGrammar:
			inRuleset = false
		case css.DeclarationGrammar:
			if inRuleset && string(data) == "content" {
				rules = append(rules, iconRule{
					Selector: selector,
					Content:  strings.Trim(joinTokens(p.Values()), `"'`),
				})
			}
		}
	}
}

func joinTokens(tokens []css.Token) string {
	var b strings.Builder
	for _, t := range tokens {
		b.Write(t.Data)
	}
	return strings.TrimSpace(b.String())
}

// parseSCSSRules finds the single-line icon rules in the SCSS source
func parseSCSSRules(content []byte) []iconRule {
	matches := scssRulePattern.FindAllSubmatch(content, -1)
	rules := make([]iconRule, 0, len(matches))
	for _, m := range matches {
		rules = append(rules, iconRule{Selector: string(m[1]), Content: string(m[2])})
	}
	return rules
}

// parseReference returns the fenced icon list and checks it against the
// reported total
func parseReference(content []byte) ([]string, error) {
	list := referenceListPattern.FindSubmatch(content)
	if list == nil {
		return nil, errors.New("icon list section not found")
	}
	totalMatch := referenceTotalPattern.FindSubmatch(content)
	if totalMatch == nil {
		return nil, errors.New(`"Total icons" line not found`)
	}

	var names []string
	for _, line := range strings.Split(string(list[1]), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			names = append(names, line)
		}
	}

	total, err := strconv.Atoi(string(totalMatch[1]))
	if err != nil {
		return nil, fmt.Errorf("total icons: %w", err)
	}
	if total != len(names) {
		return nil, fmt.Errorf(IssueTotalMismatch, "reference", total, len(names))
	}
	return names, nil
}
