// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"fastlane-cli/internal/config"
	"fastlane-cli/internal/dispatch"
	"fastlane-cli/internal/issue"
	"fastlane-cli/internal/lanes"
	"fastlane-cli/internal/launcher"
	"fastlane-cli/internal/tools"
	"fastlane-cli/internal/update"
	"fastlane-cli/pkg/types"
)

// laneProvider is the process-wide lane name provider, rooted at the
// working directory. Swapped in tests.
var laneProvider = lanes.NewProvider("")

// Execute is the process entry point, called by main.main(). It resolves
// the invocation, hands off to the selected surface, and exits with the
// target's status.
func Execute() {
	os.Exit(int(TakeOff(os.Args[1:])))
}

// TakeOff runs one complete dispatch pass over the given argument vector
// and returns the process exit code. Resolution itself never fails; the one
// fatal path is a satellite tool that is known by name but whose entry
// point cannot be located.
func TakeOff(argv []string) types.ExitCode {
	loadRuntimeConfig()
	warnNonUTF8Locale(os.Getenv("LC_ALL"), os.Getenv("LANG"))
	maybeShowUpdateAdvisory()

	localLanes := laneProvider.ListLocalLanes()
	registerLaneCommands(localLanes)

	decision := dispatch.Resolve(argv, tools.Known(), dispatch.NewNameSet(localLanes...))
	log.Debug("resolved dispatch target",
		"target", decision.Target.String(), "tool", decision.Tool, "args", decision.Args)

	l := launcher.New(launcher.DefaultRegistry(tools.Names()), laneCommandSurface())
	code, err := l.Launch(decision)
	if err != nil {
		fmt.Fprintln(os.Stderr, renderFatal(err))
		if code.IsSuccess() {
			code = types.ExitFailure
		}
	}
	return code
}

// loadRuntimeConfig loads configuration and wires the log level. Config
// problems are surfaced as warnings, never as dispatch failures.
func loadRuntimeConfig() {
	loaded, path, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, WarningStyle.Render("Warning: ")+formatErrorForDisplay(err, false))
		return
	}
	cfg, cfgPath = loaded, path

	if cfg.UI.Verbose {
		log.SetLevel(log.DebugLevel)
	}
}

// warnNonUTF8Locale nudges users whose locale would mangle the suite's
// output. Advisory only; dispatch continues regardless.
func warnNonUTF8Locale(lcAll, lang string) {
	if localeIsUTF8(lcAll, lang) {
		return
	}
	fmt.Fprintln(os.Stderr, WarningStyle.Render(
		"WARNING: fastlane requires a UTF-8 locale; set LC_ALL=en_US.UTF-8 or similar to avoid broken output."))
}

// localeIsUTF8 checks the LC_ALL/LANG pair for a UTF-8 encoding. LC_ALL
// wins when both are set, matching libc precedence.
func localeIsUTF8(lcAll, lang string) bool {
	value := lcAll
	if value == "" {
		value = lang
	}
	if value == "" {
		// No locale configured at all; nothing useful to warn about.
		return true
	}
	upper := strings.ToUpper(value)
	return strings.Contains(upper, "UTF-8") || strings.Contains(upper, "UTF8")
}

// maybeShowUpdateAdvisory prints a short notice when a newer release
// exists. The short pause afterwards keeps the notice visible before the
// target's own output scrolls it away; it is presentation, not correctness,
// and both the check and the pause honor the opt-outs.
func maybeShowUpdateAdvisory() {
	if !cfg.UpdateCheck.Enabled || Version == "dev" {
		return
	}

	dir, err := config.ConfigDir()
	if err != nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	status, err := update.NewChecker(filepath.Join(dir, update.StateFileName)).Check(ctx, Version, false)
	if err != nil {
		log.Debug("update check skipped", "error", err)
		return
	}
	if !status.UpdateAvailable {
		return
	}

	fmt.Fprintln(os.Stderr, WarningStyle.Render(fmt.Sprintf(
		"fastlane %s is available (you are on %s). Run %s for details.",
		status.LatestVersion, Version, CmdStyle.Render("fastlane update"))))

	if pause := cfg.UpdateCheck.PauseSeconds; pause > 0 {
		time.Sleep(time.Duration(pause) * time.Second)
	}
}

// renderFatal formats a hand-off failure for the terminal. Unresolvable
// satellite tools get a full Markdown card; everything else gets the
// actionable single-error format.
func renderFatal(err error) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) && ae.Operation == "launch satellite tool" && ae.Resource != "" {
		return issue.RenderCard(issue.ToolNotFoundCard(ae.Resource, ae.Resource))
	}
	return ErrorStyle.Render("Error: ") + formatErrorForDisplay(err, cfg.UI.Verbose)
}

// formatErrorForDisplay formats an error for user display, using the
// actionable format when available.
func formatErrorForDisplay(err error, verbose bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verbose)
	}
	return err.Error()
}
