// Package tui implements the terminal user interface for the run configurator.
//
// The wizard shows one screen built with Bubble Tea: the base settings at the
// top, a tab strip with one tab per method section, and the rows of the
// active section's panel below it. A live preview of the configuration that
// would be sent is rendered under the panel.
//
// # Key Bindings
//
//   - Tab/Shift+Tab, ←/→ or 1-5: switch section
//   - ↑/↓: move between rows
//   - Space: toggle the method or flag under the cursor
//   - Enter: edit a value inline (Enter confirms, ESC cancels)
//   - s: submit the configuration
//   - ?: full help
//   - q: quit
//
// Toggling a method enables or disables its parameters. Disabled parameters
// keep their values and are left out of the submitted configuration.
//
// # Submission
//
// Submitting never blocks the screen. The request runs in the background and
// its outcome is written to the log file only; the status line shows how many
// submissions were sent and when the last one left.
//
// # Usage Example
//
//	f, err := form.DefaultLayout().Build()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	client := gaconfig.NewClient(endpoint)
//	err = tui.Run(f, tui.Options{
//	    Endpoint:  endpoint,
//	    Submitter: gaconfig.NewSubmitter(client),
//	})
package tui
