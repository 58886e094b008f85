// SPDX-License-Identifier: MPL-2.0

package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/spf13/viper"

	"fastlane-cli/internal/issue"
)

const (
	// AppName is the application name, used for the config directory.
	AppName = "fastlane"
	// ConfigFileName is the config file name without extension.
	ConfigFileName = "config"
	// ConfigFileExt is the config file extension.
	ConfigFileExt = "cue"
)

//go:embed config_schema.cue
var configSchema string

// ConfigDir returns the fastlane configuration directory using
// platform-specific conventions: Windows uses %APPDATA%, macOS uses
// ~/Library/Application Support, and Linux/others use $XDG_CONFIG_HOME
// (defaulting to ~/.config).
//
//nolint:revive // ConfigDir is more descriptive than Dir for external callers
func ConfigDir() (string, error) {
	if configDirOverride != "" {
		return configDirOverride, nil
	}

	var configDir string

	switch runtime.GOOS {
	case "windows":
		configDir = os.Getenv("APPDATA")
		if configDir == "" {
			configDir = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		configDir = filepath.Join(home, "Library", "Application Support")
	default: // Linux and others
		configDir = os.Getenv("XDG_CONFIG_HOME")
		if configDir == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "", fmt.Errorf("failed to get home directory: %w", err)
			}
			configDir = filepath.Join(home, ".config")
		}
	}

	return filepath.Join(configDir, AppName), nil
}

// Load reads configuration from defaults, the optional config.cue file, and
// FASTLANE_* environment variables. It returns the resolved config and the
// path of the config file that was loaded ("" when running on defaults).
func Load() (*Config, string, error) {
	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("ui.verbose", defaults.UI.Verbose)
	v.SetDefault("update_check.enabled", defaults.UpdateCheck.Enabled)
	v.SetDefault("update_check.pause_seconds", defaults.UpdateCheck.PauseSeconds)
	v.SetDefault("runner.binary", defaults.Runner.Binary)

	// Env overrides. FASTLANE_SKIP_UPDATE_CHECK is the documented opt-out
	// spelling, so its presence (any value) disables the advisory.
	_ = v.BindEnv("ui.verbose", "FASTLANE_VERBOSE")
	if _, ok := os.LookupEnv("FASTLANE_SKIP_UPDATE_CHECK"); ok {
		v.Set("update_check.enabled", false)
	}

	resolvedPath := ""
	cfgDir, err := ConfigDir()
	if err != nil {
		return nil, "", err
	}

	cuePath := filepath.Join(cfgDir, ConfigFileName+"."+ConfigFileExt)
	if fileExists(cuePath) {
		if err := loadCUEIntoViper(v, cuePath); err != nil {
			return nil, "", issue.NewErrorContext().
				WithOperation("load configuration").
				WithResource(cuePath).
				WithSuggestion("Check that the file contains valid CUE syntax").
				WithSuggestion("Verify the values match the expected schema (see config_schema.cue)").
				Wrap(err).
				BuildError()
		}
		resolvedPath = cuePath
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, "", fmt.Errorf("failed to parse config: %w", err)
	}

	return &cfg, resolvedPath, nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
