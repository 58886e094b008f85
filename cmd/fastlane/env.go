// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"os/exec"
	"runtime"

	"github.com/spf13/cobra"

	"fastlane-cli/internal/tools"
)

// envCmd prints a diagnostic snapshot of the installation: version, config,
// project Fastfile, and which satellite tools are actually reachable. The
// output is what we ask users to paste into bug reports.
var envCmd = &cobra.Command{
	Use:   "env",
	Short: "Print a diagnostic snapshot of this fastlane installation",
	RunE: func(cmd *cobra.Command, args []string) error {
		printEnv(cmd)
		return nil
	},
}

func printEnv(cmd *cobra.Command) {
	cmd.Println(TitleStyle.Render("fastlane environment"))
	cmd.Println()

	cmd.Println(SubtitleStyle.Render("Installation"))
	cmd.Println("  version:  " + getVersionString())
	cmd.Println("  platform: " + runtime.GOOS + "/" + runtime.GOARCH)
	if cfgPath != "" {
		cmd.Println("  config:   " + cfgPath)
	} else {
		cmd.Println("  config:   (defaults, no config file)")
	}
	cmd.Println()

	cmd.Println(SubtitleStyle.Render("Project"))
	if path := laneProvider.FastfilePath(); path != "" {
		cmd.Println("  Fastfile: " + path)
		for _, lane := range laneProvider.ListLocalLanes() {
			cmd.Println("    lane " + CmdStyle.Render(lane))
		}
	} else {
		cmd.Println("  Fastfile: (none)")
	}
	cmd.Println()

	cmd.Println(SubtitleStyle.Render("Satellite tools"))
	for _, tool := range tools.Names() {
		if path, err := exec.LookPath(tool); err == nil {
			cmd.Println(fmt.Sprintf("  %s %-12s %s", SuccessStyle.Render("✓"), tool, path))
		} else {
			cmd.Println(fmt.Sprintf("  %s %-12s not found", ErrorStyle.Render("✗"), tool))
		}
	}
}
