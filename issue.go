package iconsgen

// Issue is one inconsistency found by Verify
type Issue struct {
	File     string `json:"file"`     // "web/icons/outlined.css"
	Text     string `json:"text"`     // "outlined.css is missing 2 icons (first: \"face\")"
	Severity string `json:"severity"` // "error", "warning"
}

// IssueSeverity constants
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
)

// Issue message formats
const (
	IssueMissingOutput  = "%s not found (run iconsgen generate)"
	IssueUnparsable     = "%s could not be parsed: %v"
	IssueMissingIcons   = "%s is missing %d icons (first: %q)"
	IssueUnknownIcons   = "%s declares %d icons not present in sources (first: %q)"
	IssueDuplicateRules = "%s declares %d rules for %d unique icons"
	IssueClassMismatch  = "%s: rule %s has content %q, expected selector .%s"
	IssueTotalMismatch  = "%s reports a total of %d icons but lists %d"
	IssueEmptyIconSet   = "sources contain no quoted icon names"
)
