package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/biollante/internal/version"
)

// Application branding constants
const (
	AppName   = "BIOLLANTE RUN CONFIGURATOR"
	GitHubURL = "github.com/muurk/biollante"
)

// AppVersion returns the application version from the centralized version package
func AppVersion() string {
	return version.Version
}

// Layout constants for responsive terminal width
const (
	MinTerminalWidth = 72 // Minimum supported terminal width
	DefaultWidth     = 80 // Used until the first WindowSizeMsg arrives
	DefaultHeight    = 24
	LabelWidth       = 26 // Column for parameter labels
)

// Color palette
var (
	// Primary colors
	PrimaryColor   = lipgloss.Color("#7D56F4") // Purple
	SecondaryColor = lipgloss.Color("#43BF6D") // Green
	WarningColor   = lipgloss.Color("#FFA500") // Orange
	ErrorColor     = lipgloss.Color("#FF0000") // Red

	// Neutral colors
	TextColor      = lipgloss.Color("#FFFFFF") // White
	SubtleColor    = lipgloss.Color("#626262") // Gray
	BorderColor    = lipgloss.Color("#7D56F4") // Purple (same as primary)
	HighlightColor = lipgloss.Color("#43BF6D") // Green (same as secondary)
)

// Common styles
var (
	// Title style
	TitleStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Bold(true).
			MarginBottom(1)

	// Section heading inside a panel
	SectionStyle = lipgloss.NewStyle().
			Foreground(TextColor).
			Bold(true).
			Underline(true)

	// Tab styles
	ActiveTabStyle = lipgloss.NewStyle().
			Foreground(TextColor).
			Background(PrimaryColor).
			Bold(true).
			Padding(0, 1)

	InactiveTabStyle = lipgloss.NewStyle().
				Foreground(SubtleColor).
				Padding(0, 1)

	// Row styles
	RowStyle = lipgloss.NewStyle().
			PaddingLeft(2).
			Foreground(TextColor)

	SelectedRowStyle = lipgloss.NewStyle().
				Foreground(HighlightColor).
				Bold(true)

	DisabledRowStyle = lipgloss.NewStyle().
				PaddingLeft(2).
				Foreground(SubtleColor).
				Faint(true)

	// Focused input style
	FocusedInputStyle = lipgloss.NewStyle().
				Foreground(PrimaryColor).
				Bold(true)

	// Status line style
	StatusStyle = lipgloss.NewStyle().
			Foreground(SubtleColor).
			Italic(true)

	// Preview line style
	PreviewStyle = lipgloss.NewStyle().
			Foreground(SecondaryColor)

	// Warning box style
	WarningBoxStyle = lipgloss.NewStyle().
			Foreground(WarningColor).
			Bold(true).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(WarningColor).
			Padding(0, 1)
)

// RenderTitle renders a title with consistent styling
func RenderTitle(text string) string {
	return TitleStyle.Render(text)
}

// RenderTabs renders the tab strip, highlighting the active tab
func RenderTabs(titles []string, active int) string {
	parts := make([]string, 0, len(titles))
	for i, title := range titles {
		label := string(rune('1'+i)) + " " + title
		if i == active {
			parts = append(parts, ActiveTabStyle.Render(label))
		} else {
			parts = append(parts, InactiveTabStyle.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

// RenderSelector renders a radio or checkbox marker
func RenderSelector(radio, checked bool) string {
	switch {
	case radio && checked:
		return "(•)"
	case radio:
		return "( )"
	case checked:
		return "[x]"
	default:
		return "[ ]"
	}
}

// PadLabel pads a label to the label column
func PadLabel(label string) string {
	if len(label) >= LabelWidth {
		return label + " "
	}
	return label + strings.Repeat(" ", LabelWidth-len(label))
}

// BuildHeaderContent creates header content with app name and GitHub URL
func BuildHeaderContent() string {
	left := lipgloss.NewStyle().
		Foreground(TextColor).
		Bold(true).
		Render(AppName + " v" + AppVersion())

	right := lipgloss.NewStyle().
		Foreground(SubtleColor).
		Render(GitHubURL)

	return lipgloss.JoinHorizontal(lipgloss.Top, left, " ", right)
}

// BuildFooterContent creates footer content with help text
func BuildFooterContent(helpText string) string {
	return lipgloss.NewStyle().
		Foreground(SubtleColor).
		Render(helpText)
}

// RenderApplicationContainer wraps a screen in the full-terminal frame:
// header (name, version, URL), content, and a footer pinned to the bottom.
//
//	func (m Model) View() string {
//	    content := m.buildContent()
//	    helpText := m.Help.View(m.Keys)
//	    return RenderApplicationContainer(content, helpText, m.Width, m.Height)
//	}
func RenderApplicationContainer(content string, footerText string, terminalWidth int, terminalHeight int) string {
	if terminalWidth <= 0 {
		terminalWidth = DefaultWidth
	}
	if terminalHeight <= 0 {
		terminalHeight = DefaultHeight
	}

	headerStyle := lipgloss.NewStyle().
		BorderStyle(lipgloss.Border{Bottom: "─"}).
		BorderForeground(BorderColor).
		Width(terminalWidth-4). // Leave room for outer border
		Padding(0, 1)

	footerStyle := lipgloss.NewStyle().
		BorderStyle(lipgloss.Border{Top: "─"}).
		BorderForeground(BorderColor).
		Width(terminalWidth-4).
		Padding(0, 1)

	contentStyle := lipgloss.NewStyle().
		Width(terminalWidth-4).
		Padding(0, 1)

	innerContent := lipgloss.JoinVertical(
		lipgloss.Left,
		headerStyle.Render(BuildHeaderContent()),
		contentStyle.Render(content),
		footerStyle.Render(BuildFooterContent(footerText)),
	)

	borderStyle := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(BorderColor).
		Width(terminalWidth - 2).
		Height(terminalHeight - 2).
		AlignVertical(lipgloss.Top)

	return lipgloss.Place(
		terminalWidth,
		terminalHeight,
		lipgloss.Left,
		lipgloss.Top,
		borderStyle.Render(innerContent),
	)
}
