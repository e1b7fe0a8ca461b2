package gaconfig

import (
	"context"

	"github.com/muurk/biollante/internal/logging"
)

// Outcome is the result of one asynchronous submission
type Outcome struct {
	Configuration *Configuration
	Response      *Response
	Err           error
}

// Submitter builds a configuration from a form and sends it in the background.
// The outcome is only logged; the form is never updated from it.
type Submitter struct {
	Client *Client

	// OnComplete, if set, is called from the submitting goroutine once the
	// request finishes
	OnComplete func(Outcome)
}

// NewSubmitter creates a submitter that posts through client
func NewSubmitter(client *Client) *Submitter {
	return &Submitter{Client: client}
}

// Submit aggregates the form and posts it with the start discriminator
// without waiting for the answer. Every call sends a new request, even while
// an earlier one is still outstanding. The returned configuration is the one
// being sent.
func (s *Submitter) Submit(ctx context.Context, f Form) *Configuration {
	cfg := Aggregate(f)

	go func() {
		resp, err := s.Client.Start(ctx, cfg)
		if err != nil {
			logging.LogSubmissionError(s.Client.Endpoint, MethodStart, err)
		} else {
			logging.LogSubmission(s.Client.Endpoint, MethodStart, resp.RequestID, resp.StatusCode, resp.Duration)
		}

		if s.OnComplete != nil {
			s.OnComplete(Outcome{Configuration: cfg, Response: resp, Err: err})
		}
	}()

	return cfg
}
