package gaconfig

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"
	"os"
	"strings"
	"syscall"
)

// ErrorType represents the category of error that occurred
type ErrorType int

const (
	// ErrTypeNetwork indicates a network-level error
	ErrTypeNetwork ErrorType = iota
	// ErrTypeHTTP indicates the job answered with a non-2xx status
	ErrTypeHTTP
	// ErrTypeEncode indicates the request body could not be built
	ErrTypeEncode
	// ErrTypeValidation indicates an invalid configuration
	ErrTypeValidation
	// ErrTypeTimeout indicates a request timeout
	ErrTypeTimeout
	// ErrTypeConnectionRefused indicates the server refused the connection
	ErrTypeConnectionRefused
	// ErrTypeDNS indicates a DNS resolution failure
	ErrTypeDNS
	// ErrTypeCanceled indicates the caller's context ended the request
	ErrTypeCanceled
)

// String returns a human-readable name for the error type
func (et ErrorType) String() string {
	switch et {
	case ErrTypeNetwork:
		return "Network Error"
	case ErrTypeHTTP:
		return "HTTP Error"
	case ErrTypeEncode:
		return "Encode Error"
	case ErrTypeValidation:
		return "Validation Error"
	case ErrTypeTimeout:
		return "Timeout"
	case ErrTypeConnectionRefused:
		return "Connection Refused"
	case ErrTypeDNS:
		return "DNS Error"
	case ErrTypeCanceled:
		return "Canceled"
	default:
		return fmt.Sprintf("ErrorType(%d)", et)
	}
}

// SubmitError represents an error raised while talking to the job
type SubmitError struct {
	Type       ErrorType // Category of error
	Message    string    // Human-readable error message
	StatusCode int       // HTTP status code (if applicable)
	Body       string    // Response body (if applicable, truncated)
	Endpoint   string    // Endpoint the request went to
	Err        error     // Underlying error (if any)
}

// Error implements the error interface
func (e *SubmitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying error for error chain inspection
func (e *SubmitError) Unwrap() error {
	return e.Err
}

// ClassifyNetworkError analyzes a transport error and returns a more specific error type
func ClassifyNetworkError(err error, endpoint string) *SubmitError {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.Canceled) {
		return &SubmitError{Type: ErrTypeCanceled, Message: "Request canceled", Err: err, Endpoint: endpoint}
	}

	if os.IsTimeout(err) || errors.Is(err, context.DeadlineExceeded) {
		return &SubmitError{Type: ErrTypeTimeout, Message: "Request timed out", Err: err, Endpoint: endpoint}
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return &SubmitError{
			Type:     ErrTypeDNS,
			Message:  fmt.Sprintf("DNS resolution failed for %s", dnsErr.Name),
			Err:      err,
			Endpoint: endpoint,
		}
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) && errors.Is(opErr.Err, syscall.ECONNREFUSED) {
		return &SubmitError{Type: ErrTypeConnectionRefused, Message: "Server refused connection", Err: err, Endpoint: endpoint}
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Err != nil && urlErr.Err != err {
		return ClassifyNetworkError(urlErr.Err, endpoint)
	}

	return &SubmitError{Type: ErrTypeNetwork, Message: "Network error occurred", Err: err, Endpoint: endpoint}
}

// NewNetworkError creates a network-level error with automatic classification
func NewNetworkError(message string, endpoint string, err error) *SubmitError {
	classified := ClassifyNetworkError(err, endpoint)
	if classified != nil {
		classified.Message = message
		return classified
	}
	return &SubmitError{Type: ErrTypeNetwork, Message: message, Endpoint: endpoint}
}

// NewHTTPError creates an HTTP-level error
func NewHTTPError(statusCode int, endpoint string, body string) *SubmitError {
	return &SubmitError{
		Type:       ErrTypeHTTP,
		Message:    fmt.Sprintf("job answered with status %d", statusCode),
		StatusCode: statusCode,
		Body:       body,
		Endpoint:   endpoint,
	}
}

// NewEncodeError creates a request encoding error
func NewEncodeError(message string, err error) *SubmitError {
	return &SubmitError{Type: ErrTypeEncode, Message: message, Err: err}
}

// NewValidationError creates a validation error
func NewValidationError(message string) *SubmitError {
	return &SubmitError{Type: ErrTypeValidation, Message: message}
}

// IsNetworkError checks if an error is a network error (including timeout, connection refused, DNS)
func IsNetworkError(err error) bool {
	var subErr *SubmitError
	if errors.As(err, &subErr) {
		return subErr.Type == ErrTypeNetwork ||
			subErr.Type == ErrTypeTimeout ||
			subErr.Type == ErrTypeConnectionRefused ||
			subErr.Type == ErrTypeDNS
	}
	return false
}

// IsHTTPError checks if an error is an HTTP status error
func IsHTTPError(err error) bool {
	var subErr *SubmitError
	return errors.As(err, &subErr) && subErr.Type == ErrTypeHTTP
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	var subErr *SubmitError
	return errors.As(err, &subErr) && subErr.Type == ErrTypeValidation
}

// StatusCode returns the HTTP status carried by err, or 0
func StatusCode(err error) int {
	var subErr *SubmitError
	if errors.As(err, &subErr) {
		return subErr.StatusCode
	}
	return 0
}

// GetShortErrorMessage returns a concise, user-friendly error message
func GetShortErrorMessage(err error) string {
	var subErr *SubmitError
	if !errors.As(err, &subErr) {
		return err.Error()
	}

	switch subErr.Type {
	case ErrTypeTimeout:
		return "Job server not responding (timeout)"
	case ErrTypeConnectionRefused:
		return "Job server refused connection"
	case ErrTypeDNS:
		return "Cannot resolve job server hostname"
	case ErrTypeNetwork:
		return "Network error - check connection"
	case ErrTypeCanceled:
		return "Request canceled"
	case ErrTypeHTTP:
		return fmt.Sprintf("Job rejected request (HTTP %d)", subErr.StatusCode)
	default:
		return subErr.Message
	}
}

// GetTroubleshootingHint returns user-friendly troubleshooting advice for an error
func GetTroubleshootingHint(err error) string {
	var subErr *SubmitError
	if !errors.As(err, &subErr) {
		return "An unexpected error occurred. Please try again."
	}

	switch subErr.Type {
	case ErrTypeTimeout:
		return strings.Join([]string{
			"The job server did not respond in time.",
			"Troubleshooting:",
			"  • Check that the server is running",
			"  • Try a longer --timeout",
		}, "\n")

	case ErrTypeConnectionRefused, ErrTypeNetwork:
		return strings.Join([]string{
			"Could not reach the job server.",
			"Troubleshooting:",
			"  • Verify the endpoint URL: " + subErr.Endpoint,
			"  • Check that the server is running and reachable",
		}, "\n")

	case ErrTypeDNS:
		return strings.Join([]string{
			"Could not resolve the job server hostname.",
			"Troubleshooting:",
			"  • Check the endpoint URL for typos",
			"  • Use an IP address instead of a hostname",
		}, "\n")

	case ErrTypeHTTP:
		switch {
		case subErr.StatusCode == 401 || subErr.StatusCode == 403:
			return "The job server rejected the request. Check that you are logged in and own this job."
		case subErr.StatusCode == 404:
			return "The endpoint was not found. The interactive job may have finished or the URL is wrong."
		case subErr.StatusCode >= 500:
			return "The job server failed while handling the request. A configuration may be missing a required method; run 'validate' to check."
		default:
			return fmt.Sprintf("The job server returned HTTP %d. Check the configuration.", subErr.StatusCode)
		}

	case ErrTypeValidation:
		return "The configuration values are invalid. Check the error message for details."

	default:
		return "An error occurred. Please check the error message for details."
	}
}
