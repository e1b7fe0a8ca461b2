// Package logging provides structured logging for biollante-cfg.
//
// This package wraps a global zap logger with convenience functions. The logger
// is silent until a level is given, either directly or through the
// BIOLLANTE_LOG_LEVEL environment variable.
//
// # Log Levels
//
// The package supports standard log levels:
//   - Debug: Request bodies sizes, tab changes, form edits
//   - Info: Accepted submissions
//   - Warn: Non-fatal issues (unreadable layout, missing config)
//   - Error: Failed or rejected submissions
//
// # Outputs
//
// Initialize writes console lines to stdout. InitializeWithFile adds a JSON
// log file rotated by lumberjack; the wizard uses the file alone since it owns
// the terminal:
//
//	if err := logging.InitializeWithFile("debug", "/tmp/biollante.log", false); err != nil {
//	    log.Fatal(err)
//	}
//	defer logging.Sync()
//
// # Submission Logging
//
//	logging.LogSubmission(endpoint, "start", requestID, resp.StatusCode, resp.Duration)
//	logging.LogSubmissionError(endpoint, "start", err)
//
// # Thread Safety
//
// All logging functions are safe for concurrent use, including replacing the
// logger with SetLogger while submissions are in flight.
package logging
