// SPDX-License-Identifier: MPL-2.0

package update

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// StateFileName is the update-check state file, stored in the config dir.
const StateFileName = "update_check.toml"

// State records the result of the last update check so dispatch only
// touches the network once per check interval.
type State struct {
	LastCheckAt time.Time `toml:"last_check_at"`
	LatestSeen  string    `toml:"latest_seen"`
	ReleaseURL  string    `toml:"release_url"`
}

// LoadState reads the state file at path. A missing or unreadable file is
// not an error: the advisory simply behaves as if no check ever ran.
func LoadState(path string) State {
	data, err := os.ReadFile(path)
	if err != nil {
		return State{}
	}
	var s State
	if err := toml.Unmarshal(data, &s); err != nil {
		return State{}
	}
	return s
}

// SaveState writes the state file, creating parent directories as needed.
func SaveState(path string, s State) error {
	data, err := toml.Marshal(s)
	if err != nil {
		return fmt.Errorf("encoding update state: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating state directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing update state: %w", err)
	}
	return nil
}
