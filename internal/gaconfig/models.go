package gaconfig

import "encoding/json"

const (
	// MethodStart is the discriminator that asks the job to begin optimizing
	MethodStart = "start"

	// MethodFinish is the discriminator that asks the job to save the latest
	// classifier and finish
	MethodFinish = "finish"

	// MethodField is the control name that carries a single-choice section's method
	MethodField = "method"
)

// Parameters holds a method's tunable values.
// Values are either string or float64.
type Parameters map[string]any

// Method is a named algorithm variant plus its parameters.
// It is used uniformly for selection, replacement, crossover, mutation and
// stop criteria choices.
type Method struct {
	Method     string     `json:"method,omitempty"` // Omitted when no choice was made
	Parameters Parameters `json:"parameters"`
}

// MarshalJSON keeps an empty parameter set encoded as {} rather than null.
func (m Method) MarshalJSON() ([]byte, error) {
	type method Method
	out := method(m)
	if out.Parameters == nil {
		out.Parameters = Parameters{}
	}
	return json.Marshal(out)
}

// Configuration describes one genetic-algorithm run.
// It is built fresh from the form on every submit and never changed afterwards.
//
// Field order matches the order the job reads sections in.
type Configuration struct {
	Base         map[string]string `json:"base"`
	Selection    Method            `json:"selection"`
	Replacement  Method            `json:"replacement"`
	Mutation     []Method          `json:"mutation"`
	Crossover    []Method          `json:"crossover"`
	StopCriteria []Method          `json:"stop_criteria"`
}

// StartRequest is the body POSTed to begin an optimization run
type StartRequest struct {
	Method string `json:"method"`
	Configuration
}

// FinishRequest is the body POSTed to end the interactive job
type FinishRequest struct {
	Method string `json:"method"`
}

// NewStartRequest wraps a configuration with the start discriminator.
// Nil sections are normalized so the body always carries [] and {} instead of null.
func NewStartRequest(cfg *Configuration) *StartRequest {
	req := &StartRequest{Method: MethodStart}
	if cfg != nil {
		req.Configuration = *cfg
	}
	req.Configuration.normalize()
	return req
}

// NewFinishRequest returns the finish body
func NewFinishRequest() *FinishRequest {
	return &FinishRequest{Method: MethodFinish}
}

// normalize replaces nil maps and slices with empty ones
func (c *Configuration) normalize() {
	if c.Base == nil {
		c.Base = map[string]string{}
	}
	if c.Mutation == nil {
		c.Mutation = []Method{}
	}
	if c.Crossover == nil {
		c.Crossover = []Method{}
	}
	if c.StopCriteria == nil {
		c.StopCriteria = []Method{}
	}
}

// MethodNames returns the method names of a sequence in order
func MethodNames(methods []Method) []string {
	names := make([]string, 0, len(methods))
	for _, m := range methods {
		names = append(names, m.Method)
	}
	return names
}
