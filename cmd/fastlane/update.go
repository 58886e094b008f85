// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"fastlane-cli/internal/config"
	"fastlane-cli/internal/update"
)

// updateCmd runs a forced release check, ignoring the daily interval and
// the FASTLANE_SKIP_UPDATE_CHECK opt-out. Installation itself happens
// through whatever installed fastlane in the first place; this command
// only reports.
var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Check whether a newer fastlane release is available",
	RunE: func(cmd *cobra.Command, args []string) error {
		return checkForUpdate(cmd)
	},
}

func checkForUpdate(cmd *cobra.Command) error {
	if Version == "dev" {
		cmd.Println(SubtitleStyle.Render("Development build; update checks are disabled."))
		return nil
	}

	dir, err := config.ConfigDir()
	if err != nil {
		return fmt.Errorf("resolving config directory: %w", err)
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
	defer cancel()

	status, err := update.NewChecker(filepath.Join(dir, update.StateFileName)).Check(ctx, Version, true)
	if err != nil {
		return fmt.Errorf("checking for updates: %w", err)
	}

	if !status.UpdateAvailable {
		cmd.Println(SuccessStyle.Render("✓") + " fastlane " + Version + " is up to date.")
		return nil
	}

	cmd.Println(WarningStyle.Render("Update available: ") + status.LatestVersion +
		SubtitleStyle.Render(" (you are on "+Version+")"))
	if status.ReleaseURL != "" {
		cmd.Println("Release notes: " + CmdStyle.Render(status.ReleaseURL))
	}
	return nil
}
