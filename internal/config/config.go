// Package config resolves process options from flags, FOCUSDECK_* variables
// and an optional focusdeck.yaml in the data directory.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"focusdeck/internal/logger"
	"focusdeck/internal/platform"
	"focusdeck/internal/storage"
)

// AppName names the data directory and the single-instance lock.
const AppName = "FocusDeck"

// Option keys, shared by flags, env and the config file.
const (
	KeyDataDir  = "data-dir"
	KeyStore    = "store"
	KeyLogLevel = "log-level"
)

const (
	envPrefix      = "FOCUSDECK"
	configFileName = "focusdeck"
)

// Options are the resolved process options.
type Options struct {
	DataDir  string
	Store    string
	LogLevel string
	// ConfigFile is the focusdeck.yaml that was read, if any.
	ConfigFile string
}

// RegisterFlags adds the option flags to flags.
func RegisterFlags(flags *pflag.FlagSet) {
	flags.String(KeyDataDir, "", "directory for persisted state (default: user config dir)")
	flags.String(KeyStore, storage.BackendYAML, "state backend: yaml, sqlite or memory")
	flags.String(KeyLogLevel, logger.InfoLevel, "log level: debug, info, warn or error")
}

// Load resolves Options with precedence flag > env > config file > default.
func Load(v *viper.Viper, flags *pflag.FlagSet) (Options, error) {
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	v.SetDefault(KeyStore, storage.BackendYAML)
	v.SetDefault(KeyLogLevel, logger.InfoLevel)

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return Options{}, fmt.Errorf("bind flags: %w", err)
		}
	}

	dataDir := v.GetString(KeyDataDir)
	if dataDir == "" {
		resolved, err := platform.DataDir(AppName)
		if err != nil {
			return Options{}, fmt.Errorf("resolve data dir: %w", err)
		}
		dataDir = resolved
	}

	v.SetConfigName(configFileName)
	v.SetConfigType("yaml")
	v.AddConfigPath(dataDir)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Options{}, fmt.Errorf("read %s.yaml: %w", configFileName, err)
		}
	}

	options := Options{
		DataDir:    dataDir,
		Store:      strings.ToLower(strings.TrimSpace(v.GetString(KeyStore))),
		LogLevel:   strings.ToLower(strings.TrimSpace(v.GetString(KeyLogLevel))),
		ConfigFile: v.ConfigFileUsed(),
	}
	switch options.Store {
	case storage.BackendYAML, storage.BackendSQLite, storage.BackendMemory:
	default:
		return Options{}, fmt.Errorf("%w: %q", storage.ErrUnknownBackend, options.Store)
	}
	return options, nil
}
