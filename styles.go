package iconsgen

import "github.com/charmbracelet/lipgloss"

var (
	styleLocation = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	styleSuccess  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	styleHint     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

	// severityStyles colors the "(error)" / "(warning)" suffix of an issue line
	severityStyles = map[string]lipgloss.Style{
		SeverityError:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1")),
		SeverityWarning: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("3")),
	}
)

// paint renders text with style, or returns it unchanged when colors are off
func (r *Reporter) paint(style lipgloss.Style, text string) string {
	if !r.useColors {
		return text
	}
	return style.Render(text)
}
