// SPDX-License-Identifier: MPL-2.0

package config

type (
	// Config is the decoded CLI configuration.
	Config struct {
		UI          UIConfig          `mapstructure:"ui"`
		UpdateCheck UpdateCheckConfig `mapstructure:"update_check"`
		Runner      RunnerConfig      `mapstructure:"runner"`
	}

	// UIConfig controls terminal output behavior.
	UIConfig struct {
		// Verbose enables diagnostic logging on the dispatch path.
		Verbose bool `mapstructure:"verbose"`
	}

	// UpdateCheckConfig controls the non-essential update advisory.
	UpdateCheckConfig struct {
		// Enabled gates the whole advisory subsystem.
		Enabled bool `mapstructure:"enabled"`
		// PauseSeconds is how long the advisory stays on screen before
		// dispatch continues. Zero disables the pause; the warning is
		// advisory, not a correctness mechanism.
		PauseSeconds int `mapstructure:"pause_seconds"`
	}

	// RunnerConfig locates the lane-execution engine.
	RunnerConfig struct {
		// Binary is the executable implementing the lane engine.
		Binary string `mapstructure:"binary"`
	}
)

// DefaultConfig returns the built-in defaults applied before any config file
// or environment variable.
func DefaultConfig() *Config {
	return &Config{
		UI: UIConfig{Verbose: false},
		UpdateCheck: UpdateCheckConfig{
			Enabled:      true,
			PauseSeconds: 2,
		},
		Runner: RunnerConfig{Binary: "fastlane-runner"},
	}
}
