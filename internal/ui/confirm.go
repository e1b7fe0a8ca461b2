package ui

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Confirm displays a warning box and prompts the user to type phrase to
// proceed with an operation that cannot be undone. Returns true if the user
// typed it, false otherwise (including on end of input).
func Confirm(w io.Writer, r io.Reader, title string, warnings []string, phrase string) bool {
	width := GetTerminalWidth()

	lines := []string{"", WarningTitleStyle.Render(fmt.Sprintf("   %s  WARNING  ─  %s", WarningMarker, title)), ""}
	for _, warning := range warnings {
		lines = append(lines, lipgloss.NewStyle().Foreground(TextColor).Render("   • "+warning))
	}
	lines = append(lines, "")

	box := lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(WarningColor).
		Width(width-2).
		Padding(0, 2).
		Render(strings.Join(lines, "\n"))

	fmt.Fprintln(w, box)
	fmt.Fprintln(w)
	fmt.Fprint(w, WarningTitleStyle.Render(fmt.Sprintf("To proceed, type %q and press Enter: ", phrase)))

	input, err := bufio.NewReader(r).ReadString('\n')
	fmt.Fprintln(w)
	if err != nil && input == "" {
		return false
	}

	if strings.TrimSpace(input) == phrase {
		return true
	}

	fmt.Fprintln(w, lipgloss.NewStyle().Foreground(MutedColor).Render("  Operation cancelled."))
	fmt.Fprintln(w)
	return false
}

// FinishConfirmation asks before telling a job to finish
func FinishConfirmation(w io.Writer, r io.Reader, endpoint string) bool {
	return Confirm(w, r,
		"FINISH JOB",
		[]string{
			"The job at " + endpoint + " will keep its latest classifier and stop",
			"No further run configurations can be sent to it",
		},
		"FINISH",
	)
}
