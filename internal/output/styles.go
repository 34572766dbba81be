package output

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color palette. Never use inline lipgloss.Color literals outside this block.
var (
	// ColorCyan is used for identifiable nouns: project names, paths, frameworks.
	ColorCyan = lipgloss.Color("14")

	// colorGreen is used for created files and passed checks.
	colorGreen = lipgloss.Color("82")

	// ColorYellow is used for skipped files and warnings.
	ColorYellow = lipgloss.Color("220")

	// colorBoldRed is used for failed checks (matches ERROR level).
	colorBoldRed = lipgloss.Color("204")

	// colorGreenCheck is used for the completion checkmark.
	colorGreenCheck = lipgloss.Color("10")

	// ColorDimGray is used for borders and other structural chrome.
	ColorDimGray = lipgloss.Color("240")

	// colorBlue is used for table headers.
	colorBlue = lipgloss.Color("12")
)

// Semantic styles.
var (
	// StyleNoun styles identifiable nouns (project names, paths, frameworks).
	StyleNoun = lipgloss.NewStyle().Foreground(ColorCyan)

	// StyleAction styles action verbs (creating, rendering, rolling back).
	StyleAction = lipgloss.NewStyle().Bold(true)

	// StyleDim styles structural chrome (separators, descriptions).
	StyleDim = lipgloss.NewStyle().Faint(true)

	// StyleSummary styles completion and summary lines.
	StyleSummary = lipgloss.NewStyle().Bold(true)
)

// Styles groups the styles used by renderers that take a style set.
type Styles struct {
	Bold    lipgloss.Style
	Muted   lipgloss.Style
	Noun    lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Failure lipgloss.Style
}

// GetStyles returns the default style set.
func GetStyles() Styles {
	return Styles{
		Bold:    lipgloss.NewStyle().Bold(true),
		Muted:   StyleDim,
		Noun:    StyleNoun,
		Success: lipgloss.NewStyle().Foreground(colorGreen),
		Warning: lipgloss.NewStyle().Foreground(ColorYellow),
		Failure: lipgloss.NewStyle().Bold(true).Foreground(colorBoldRed),
	}
}

// File status constants.
const (
	StatusCreated = "created"
	StatusSkipped = "skipped"
	StatusValid   = "valid"
	StatusMissing = "missing"
	statusFailed  = "failed"
)

// statusStyle returns the lipgloss style for a given status string.
// Unknown statuses return an unstyled default.
func statusStyle(status string) lipgloss.Style {
	switch status {
	case StatusCreated, StatusValid:
		return lipgloss.NewStyle().Foreground(colorGreen)
	case StatusSkipped:
		return lipgloss.NewStyle().Faint(true)
	case StatusMissing:
		return lipgloss.NewStyle().Foreground(ColorYellow)
	case statusFailed:
		return lipgloss.NewStyle().Bold(true).Foreground(colorBoldRed)
	default:
		return lipgloss.NewStyle()
	}
}

// minPathColumnWidth is the minimum width of the path column before the
// status suffix, so status words align.
const minPathColumnWidth = 40

// FormatFileLine renders a project-relative path with a right-aligned,
// color-coded status suffix.
//
// Format: f:<path>  <status>
func FormatFileLine(path, status string) string {
	padding := minPathColumnWidth - len(path)
	if padding < 2 {
		padding = 2
	}

	prefix := StyleDim.Render("f:")
	styledPath := StyleNoun.Render(path)
	styledStatus := statusStyle(status).Render(status)

	return prefix + styledPath + strings.Repeat(" ", padding) + styledStatus
}

// FormatCheckmark renders a green checkmark with a message for stdout output.
func FormatCheckmark(msg string) string {
	check := lipgloss.NewStyle().Foreground(colorGreenCheck).Render("✔")
	return check + " " + msg
}

// vetCheckLabelWidth is the label column width for check lines.
const vetCheckLabelWidth = 28

// FormatVetCheck renders a passed check line: checkmark, label, dim detail.
func FormatVetCheck(label, detail string) string {
	line := FormatCheckmark(label)
	if detail == "" {
		return line
	}
	padding := vetCheckLabelWidth - len(label)
	if padding < 2 {
		padding = 2
	}
	return line + strings.Repeat(" ", padding) + StyleDim.Render(detail)
}

// FormatVetFailure renders a failed check line with a red cross.
func FormatVetFailure(label, detail string) string {
	cross := lipgloss.NewStyle().Bold(true).Foreground(colorBoldRed).Render("✘")
	line := cross + " " + label
	if detail == "" {
		return line
	}
	padding := vetCheckLabelWidth - len(label)
	if padding < 2 {
		padding = 2
	}
	return line + strings.Repeat(" ", padding) + StyleDim.Render(detail)
}

// FeatureMark renders an enabled/disabled marker for summary tables.
func FeatureMark(enabled bool, on, off string) string {
	if enabled {
		return lipgloss.NewStyle().Foreground(colorGreen).Render("✔ " + on)
	}
	return StyleDim.Render("✘ " + off)
}
