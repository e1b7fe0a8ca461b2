package config

import "time"

// CurrentVersion is the registry format version this build reads and writes
const CurrentVersion = 1

// Defaults applied when a setting is absent
const (
	DefaultEndpoint       = "http://localhost:8000/interactive/"
	DefaultTimeoutSeconds = 0 // No timeout; the job may take a while to answer
	DefaultLogLevel       = ""
)

// Registry represents the entire user configuration file.
// It stores connection settings and wizard preferences, never run
// configurations.
type Registry struct {
	Version int                 `yaml:"version"`
	Server  *ServerConfig       `yaml:"server,omitempty"`
	Logging *LoggingConfig      `yaml:"logging,omitempty"`
	Wizard  *WizardPrefs        `yaml:"wizard,omitempty"`
	Jobs    map[string]*JobMeta `yaml:"jobs,omitempty"` // Keyed by endpoint URL
}

// ServerConfig holds the interactive job endpoint.
type ServerConfig struct {
	Endpoint       string `yaml:"endpoint"`        // URL configurations are POSTed to
	TimeoutSeconds int    `yaml:"timeout_seconds"` // 0 disables the request timeout
}

// LoggingConfig controls where logs go.
type LoggingConfig struct {
	Level string `yaml:"level,omitempty"` // debug, info, warn or error; empty is silent
	File  string `yaml:"file,omitempty"`  // Rotating JSON log file; required for wizard logs
}

// WizardPrefs represents preferences of the terminal wizard.
type WizardPrefs struct {
	LayoutPath string `yaml:"layout_path,omitempty"` // Form layout replacing the built-in one
	StartTab   string `yaml:"start_tab,omitempty"`   // Tab id activated on start (e.g., "tab-mutation")
}

// JobMeta represents user-defined metadata for an endpoint that was used.
type JobMeta struct {
	Nickname    string    `yaml:"nickname,omitempty"`    // User-friendly name
	LastUsed    time.Time `yaml:"last_used,omitempty"`   // Last successful submission
	Submissions int       `yaml:"submissions,omitempty"` // Accepted submissions so far
	LastStatus  int       `yaml:"last_status,omitempty"` // Last HTTP status received
}

// NewRegistry creates a new Registry with default values.
func NewRegistry() *Registry {
	r := &Registry{Version: CurrentVersion}
	r.applyDefaults()
	return r
}

// applyDefaults fills sections missing from a loaded file
func (r *Registry) applyDefaults() {
	if r.Server == nil {
		r.Server = &ServerConfig{
			Endpoint:       DefaultEndpoint,
			TimeoutSeconds: DefaultTimeoutSeconds,
		}
	}
	if r.Logging == nil {
		r.Logging = &LoggingConfig{Level: DefaultLogLevel}
	}
	if r.Wizard == nil {
		r.Wizard = &WizardPrefs{}
	}
	if r.Jobs == nil {
		r.Jobs = make(map[string]*JobMeta)
	}
}

// GetJob retrieves endpoint metadata.
// Returns nil if the endpoint was never used.
func (r *Registry) GetJob(endpoint string) *JobMeta {
	return r.Jobs[endpoint]
}

// EnsureJob ensures an endpoint entry exists in the registry.
func (r *Registry) EnsureJob(endpoint string) *JobMeta {
	if r.Jobs == nil {
		r.Jobs = make(map[string]*JobMeta)
	}

	if job, exists := r.Jobs[endpoint]; exists {
		return job
	}

	job := &JobMeta{}
	r.Jobs[endpoint] = job
	return job
}

// RecordSubmission notes a submission to endpoint and its HTTP status.
// Only 2xx answers count towards Submissions and LastUsed.
func (r *Registry) RecordSubmission(endpoint string, status int) {
	job := r.EnsureJob(endpoint)
	job.LastStatus = status
	if status >= 200 && status <= 299 {
		job.Submissions++
		job.LastUsed = time.Now()
	}
}

// SetJobNickname sets a user-friendly nickname for an endpoint.
func (r *Registry) SetJobNickname(endpoint, nickname string) {
	r.EnsureJob(endpoint).Nickname = nickname
}
