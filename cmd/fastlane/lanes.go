// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"fastlane-cli/internal/launcher"
	"fastlane-cli/pkg/types"
)

// lanesCmd lists the lanes declared in the current project.
var lanesCmd = &cobra.Command{
	Use:   "lanes",
	Short: "List the lanes declared in this project's Fastfile",
	RunE: func(cmd *cobra.Command, args []string) error {
		return listLanes(cmd)
	},
}

// registerLaneCommands adds each discovered lane as a subcommand so lanes
// show up in help and shell completion. Lane flags are opaque to the
// umbrella; the lane engine parses them itself.
func registerLaneCommands(laneNames []string) {
	for _, name := range laneNames {
		lane := name
		rootCmd.AddCommand(&cobra.Command{
			Use:                lane,
			Short:              fmt.Sprintf("Run the %s lane", lane),
			DisableFlagParsing: true,
			RunE: func(cmd *cobra.Command, args []string) error {
				return runLane(lane, args)
			},
		})
	}
}

// runLane hands a lane invocation to the lane-execution engine, which ships
// as a separate executable. Its exit status becomes ours.
func runLane(lane string, args []string) error {
	surface, err := launcher.ExecBinary(launcher.RunnerBinary, cfg.Runner.Binary)()
	if err != nil {
		return &ExitError{Code: types.ExitFailure, Err: laneEngineMissing(err)}
	}

	code, err := surface.Run(append([]string{lane}, args...))
	if err != nil {
		return &ExitError{Code: code, Err: err}
	}
	if !code.IsSuccess() {
		return &ExitError{Code: code}
	}
	return nil
}

// laneEngineMissing decorates an engine lookup failure with next steps.
func laneEngineMissing(cause error) error {
	return fmt.Errorf("the lane engine (%s) is not installed: %w", cfg.Runner.Binary, cause)
}

// listLanes prints the project's lanes, or a pointer to 'fastlane init'
// when there is no Fastfile yet.
func listLanes(cmd *cobra.Command) error {
	path := laneProvider.FastfilePath()
	if path == "" {
		cmd.Println(SubtitleStyle.Render("No Fastfile found in this project."))
		cmd.Println("Create one at " + CmdStyle.Render("fastlane/Fastfile") + " to declare lanes.")
		return nil
	}

	laneNames := laneProvider.ListLocalLanes()
	if len(laneNames) == 0 {
		cmd.Println(SubtitleStyle.Render("No lanes declared in " + path + "."))
		return nil
	}

	cmd.Println(TitleStyle.Render("Lanes") + SubtitleStyle.Render(" ("+path+")"))
	for _, name := range laneNames {
		cmd.Println("  " + CmdStyle.Render(name))
	}
	return nil
}
