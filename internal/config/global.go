// SPDX-License-Identifier: MPL-2.0

package config

// configDirOverride allows tests to redirect the config directory.
// os.UserHomeDir() doesn't reliably respect the HOME environment variable on
// all platforms (e.g., macOS in CI), so tests set an explicit directory.
var configDirOverride string

// SetConfigDirOverride sets a custom config directory path. Intended for
// tests.
func SetConfigDirOverride(dir string) {
	configDirOverride = dir
}

// Reset clears test overrides. Call from test cleanup to restore defaults.
func Reset() {
	configDirOverride = ""
}
