package tui

import "github.com/charmbracelet/lipgloss"

// styleSet holds the lipgloss styles for the dashboard.
type styleSet struct {
	Header   lipgloss.Style
	Badge    lipgloss.Style
	Status   lipgloss.Style
	Cursor   lipgloss.Style
	Done     lipgloss.Style
	Fixed    lipgloss.Style
	Message  lipgloss.Style
	Error    lipgloss.Style
	Help     lipgloss.Style
	FormBox  lipgloss.Style
	FormName lipgloss.Style
}

// newStyles builds a style set for the given theme. "mono" drops all
// color for unstyled terminals; anything else gets the green theme the
// planner has always had.
func newStyles(theme string) styleSet {
	if theme == "mono" {
		plain := lipgloss.NewStyle()
		return styleSet{
			Header:   plain.Bold(true),
			Badge:    plain.Reverse(true),
			Status:   plain.Bold(true),
			Cursor:   plain.Reverse(true),
			Done:     plain.Faint(true),
			Fixed:    plain.Faint(true),
			Message:  plain,
			Error:    plain.Bold(true),
			Help:     plain.Faint(true),
			FormBox:  plain.Border(lipgloss.NormalBorder()).Padding(0, 1),
			FormName: plain.Bold(true),
		}
	}

	green := lipgloss.Color("42")
	dim := lipgloss.Color("243")
	yellow := lipgloss.Color("220")
	red := lipgloss.Color("203")

	return styleSet{
		Header:   lipgloss.NewStyle().Bold(true).Foreground(green),
		Badge:    lipgloss.NewStyle().Foreground(yellow).Bold(true),
		Status:   lipgloss.NewStyle().Bold(true),
		Cursor:   lipgloss.NewStyle().Reverse(true),
		Done:     lipgloss.NewStyle().Foreground(dim).Strikethrough(true),
		Fixed:    lipgloss.NewStyle().Foreground(dim),
		Message:  lipgloss.NewStyle().Foreground(green),
		Error:    lipgloss.NewStyle().Foreground(red),
		Help:     lipgloss.NewStyle().Foreground(dim),
		FormBox:  lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(green).Padding(0, 1),
		FormName: lipgloss.NewStyle().Bold(true).Foreground(green),
	}
}
