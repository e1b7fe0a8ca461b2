package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/muurk/biollante/internal/config"
	"github.com/muurk/biollante/internal/logging"
)

// envPrefix prefixes every environment override (e.g., BIOLLANTE_SERVER_ENDPOINT)
const envPrefix = "BIOLLANTE"

// Setting keys, matching the layout of the configuration file
const (
	keyEndpoint   = "server.endpoint"
	keyTimeout    = "server.timeout_seconds"
	keyLogLevel   = "logging.level"
	keyLogFile    = "logging.file"
	keyLayoutPath = "wizard.layout_path"
	keyStartTab   = "wizard.start_tab"
)

// flagKeys binds each persistent flag to its setting key
var flagKeys = map[string]string{
	"endpoint":  keyEndpoint,
	"timeout":   keyTimeout,
	"log-level": keyLogLevel,
	"log-file":  keyLogFile,
	"layout":    keyLayoutPath,
	"tab":       keyStartTab,
}

// settings are the resolved options of one invocation
type settings struct {
	ConfigPath string
	Endpoint   string
	Timeout    time.Duration
	LogLevel   string
	LogFile    string
	LayoutPath string
	StartTab   string
}

// current holds the settings resolved by setup
var current = &settings{}

func addSettingsFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()
	flags.String("config", "", "Config file (default is $XDG_CONFIG_HOME/biollante/config.yaml)")
	flags.String("endpoint", "", "Interactive job endpoint URL")
	flags.Int("timeout", config.DefaultTimeoutSeconds, "Request timeout in seconds (0 waits indefinitely)")
	flags.String("log-level", "", "Log level (debug, info, warn, error)")
	flags.String("log-file", "", "Write JSON logs to this rotating file")
	flags.String("layout", "", "Form layout YAML replacing the built-in one")
	flags.String("tab", "", "Tab the wizard opens on (e.g., tab-mutation)")
}

// loadSettings resolves settings with precedence flag > environment > config
// file > default
func loadSettings(cmd *cobra.Command) (*settings, error) {
	v := viper.New()

	v.SetDefault(keyEndpoint, config.DefaultEndpoint)
	v.SetDefault(keyTimeout, config.DefaultTimeoutSeconds)
	v.SetDefault(keyLogLevel, config.DefaultLogLevel)

	for name, key := range flagKeys {
		if flag := cmd.Flags().Lookup(name); flag != nil {
			if err := v.BindPFlag(key, flag); err != nil {
				return nil, fmt.Errorf("failed to bind --%s: %w", name, err)
			}
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	configPath, err := cmd.Flags().GetString("config")
	if err != nil || configPath == "" {
		if configPath, err = config.GetConfigPath(); err != nil {
			return nil, err
		}
	}

	if _, err := os.Stat(configPath); err == nil {
		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	s := &settings{
		ConfigPath: configPath,
		Endpoint:   v.GetString(keyEndpoint),
		Timeout:    time.Duration(v.GetInt(keyTimeout)) * time.Second,
		LogLevel:   v.GetString(keyLogLevel),
		LogFile:    v.GetString(keyLogFile),
		LayoutPath: v.GetString(keyLayoutPath),
		StartTab:   v.GetString(keyStartTab),
	}
	if s.Timeout < 0 {
		return nil, fmt.Errorf("invalid timeout %v: must not be negative", s.Timeout)
	}
	return s, nil
}

// setup resolves settings and starts logging before any command runs.
// The wizard owns the terminal, so it logs to the file only.
func setup(cmd *cobra.Command, args []string) error {
	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	current = s

	console := !isWizard(cmd)
	if err := logging.InitializeWithFile(s.LogLevel, s.LogFile, console); err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}

	logging.Debug("Settings resolved",
		zap.String("config", s.ConfigPath),
		zap.String("endpoint", s.Endpoint),
		zap.String("layout", s.LayoutPath),
	)
	return nil
}

// isWizard reports whether cmd runs the wizard: the root command or "wizard"
func isWizard(cmd *cobra.Command) bool {
	return !cmd.HasParent() || cmd.Name() == "wizard"
}
