// Package config provides user configuration management for biollante-cfg.
//
// This package manages a YAML-based configuration file holding the interactive
// job endpoint, the request timeout, logging settings and wizard preferences.
// The configuration follows OS-specific conventions for storage location.
//
// # Configuration File Location
//
// The configuration file is stored in platform-appropriate locations:
//   - Linux: $XDG_CONFIG_HOME/biollante/config.yaml or $HOME/.config/biollante/config.yaml
//   - macOS: $HOME/.config/biollante/config.yaml
//   - Windows: %LOCALAPPDATA%\biollante\config.yaml
//
// # File Format
//
//	version: 1
//	server:
//	  endpoint: http://localhost:8000/interactive/5c7e.../
//	  timeout_seconds: 0
//	logging:
//	  level: debug
//	  file: /tmp/biollante.log
//	wizard:
//	  start_tab: tab-mutation
//
// The command line reads the same keys through viper, so every setting can
// also be given as a flag or a BIOLLANTE_* environment variable
// (BIOLLANTE_SERVER_ENDPOINT, BIOLLANTE_LOGGING_LEVEL, ...).
//
// # Thread Safety
//
// The global registry uses sync.Once for safe initialization across goroutines.
// File operations are protected by a mutex to ensure atomic writes.
package config
