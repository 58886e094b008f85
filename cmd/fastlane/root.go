// SPDX-License-Identifier: MPL-2.0

// Package cmd contains the umbrella CLI surface for fastlane.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"fastlane-cli/internal/config"
	"fastlane-cli/internal/launcher"
	"fastlane-cli/pkg/types"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"

	// cfg is the loaded configuration, defaulted until TakeOff replaces it.
	cfg = config.DefaultConfig()
	// cfgPath is the resolved config file path ("" on defaults).
	cfgPath string

	// rootCmd is the lane-command surface: the processor every invocation
	// falls through to when it names no satellite tool.
	rootCmd = &cobra.Command{
		Use:   "fastlane [lane]",
		Short: "Entry point for the fastlane command-line suite",
		Long: TitleStyle.Render("fastlane") + SubtitleStyle.Render(" - the entry point for the fastlane suite") + `

fastlane dispatches each invocation to the right place: a lane declared
in your project's Fastfile, one of the satellite tools bundled with the
distribution (gym, snapshot, match, …), or the legacy credentials tool.

Lanes declared in the local Fastfile always win over satellite tools of
the same name, so your project stays in charge of its own vocabulary.

` + SubtitleStyle.Render("Examples:") + `
  fastlane beta             Run the 'beta' lane from your Fastfile
  fastlane lanes            List lanes declared in this project
  fastlane gym              Hand off to the gym satellite tool
  fastlane env              Print a diagnostic snapshot`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return listLanes(cmd)
			}
			return runLane(args[0], args[1:])
		},
	}
)

func init() {
	rootCmd.AddCommand(lanesCmd)
	rootCmd.AddCommand(envCmd)
	rootCmd.AddCommand(updateCmd)
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// laneCommandSurface adapts the cobra tree to the launcher's Surface
// contract: it receives the full argument vector of a lane-command decision
// and performs its own argument parsing.
func laneCommandSurface() launcher.Surface {
	return launcher.SurfaceFunc(func(args []string) (types.ExitCode, error) {
		rootCmd.SetArgs(args)

		err := fang.Execute(
			context.Background(),
			rootCmd,
			fang.WithVersion(getVersionString()),
			fang.WithNotifySignal(os.Interrupt),
		)
		if err != nil {
			var exitErr *ExitError
			if errors.As(err, &exitErr) {
				return exitErr.Code, nil
			}
			// fang already rendered the error for the user.
			return types.ExitFailure, nil
		}
		return types.ExitSuccess, nil
	})
}
