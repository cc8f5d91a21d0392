// Package config resolves runtime settings from flags, CAPY_* environment
// variables and an optional capy.yaml file, in that order of precedence.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/abhisek/capy/internal/session"
)

// Setting keys. Flags, env vars (CAPY_ + upper snake case) and config file
// entries all use these names.
const (
	KeyBank          = "bank"
	KeyMinThinkTime  = "min-think-time"
	KeyIdleThreshold = "idle-threshold"
	KeyTickInterval  = "tick-interval"
	KeyLogLevel      = "log-level"
	KeyLogFormat     = "log-format"
	KeyLogFile       = "log-file"
)

// EnvPrefix is prepended to every environment variable.
const EnvPrefix = "CAPY"

// Config is the resolved runtime configuration.
type Config struct {
	// BankPath is a JSON or YAML question bank. Empty means the built-in bank.
	BankPath string

	Session session.Config

	LogLevel  string
	LogFormat string
	// LogFile receives the logs. The TUI owns the terminal, so logs never go
	// to stderr while the quiz is running.
	LogFile string
}

// RegisterFlags adds the quiz flags to fs.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.StringP(KeyBank, "b", "", "Question bank file (.json, .yaml); built-in bank if empty")
	fs.Duration(KeyMinThinkTime, session.DefaultMinThinkTime, "Minimum time on a question before an answer is accepted")
	fs.Duration(KeyIdleThreshold, session.DefaultIdleThreshold, "Idle time before the pet offers help")
	fs.Duration(KeyTickInterval, session.DefaultTickInterval, "How often the idle check runs")
	RegisterLogFlags(fs)
}

// RegisterLogFlags adds only the logging flags to fs.
func RegisterLogFlags(fs *pflag.FlagSet) {
	fs.String(KeyLogLevel, "info", "Log level (debug, info, warn, error)")
	fs.String(KeyLogFormat, "text", "Log format (text, json)")
	fs.String(KeyLogFile, "", "Log file path (default $XDG_STATE_HOME/capy/capy.log)")
}

// NewViper binds fs and the environment to a fresh viper instance and reads
// capy.yaml from the usual locations if present.
func NewViper(fs *pflag.FlagSet) *viper.Viper {
	v := viper.New()
	_ = v.BindPFlags(fs)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetConfigName("capy")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.config/capy")
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			slog.Warn("error reading config file", "error", err)
		}
	} else {
		slog.Debug("loaded config file", "path", v.ConfigFileUsed())
	}

	return v
}

// Load resolves and validates the configuration held by v.
func Load(v *viper.Viper) (Config, error) {
	cfg := Config{
		BankPath: v.GetString(KeyBank),
		Session: session.Config{
			MinThinkTime:  durationOr(v, KeyMinThinkTime, session.DefaultMinThinkTime),
			IdleThreshold: durationOr(v, KeyIdleThreshold, session.DefaultIdleThreshold),
			TickInterval:  durationOr(v, KeyTickInterval, session.DefaultTickInterval),
		},
		LogLevel:  strings.ToLower(v.GetString(KeyLogLevel)),
		LogFormat: strings.ToLower(v.GetString(KeyLogFormat)),
		LogFile:   v.GetString(KeyLogFile),
	}

	if err := cfg.Session.Validate(); err != nil {
		return Config{}, fmt.Errorf("session config: %w", err)
	}

	if cfg.LogFile == "" {
		p, err := DefaultLogPath()
		if err != nil {
			return Config{}, err
		}
		cfg.LogFile = p
	}
	return cfg, nil
}

func durationOr(v *viper.Viper, key string, fallback time.Duration) time.Duration {
	if !v.IsSet(key) {
		return fallback
	}
	return v.GetDuration(key)
}

// DefaultLogPath returns $XDG_STATE_HOME/capy/capy.log, falling back to
// ~/.local/state when XDG_STATE_HOME is unset.
func DefaultLogPath() (string, error) {
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		stateHome = filepath.Join(home, ".local", "state")
	}
	return filepath.Join(stateHome, "capy", "capy.log"), nil
}
