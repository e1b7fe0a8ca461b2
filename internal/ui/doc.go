// Package ui renders the output of the one-shot biollante-cfg commands.
//
// Unlike the interactive wizard, these components follow a "run once and
// exit" pattern: they render output with Lipgloss but take no input, except
// for Confirm, which reads a single line.
//
// The package provides three component types:
//
//   - Header: Command banner showing operation name and parameters
//   - Result: Success, failure and warning boxes with details and
//     troubleshooting tips
//   - Confirm: A warning box that asks the user to type a phrase
//
// # Usage Example
//
//	fmt.Println(ui.NewHeader("Submit Configuration", "biollante-cfg submit",
//	    ui.Param{Key: "Endpoint", Value: endpoint},
//	).Render())
//
//	fmt.Println(ui.NewSuccessResult("Job accepted configuration",
//	    ui.Param{Key: "Status", Value: "200 OK"},
//	).Render())
//
// Widths follow the terminal (see GetTerminalWidth) and fall back to
// MinTerminalWidth when stdout is not a terminal.
package ui
