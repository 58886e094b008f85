// SPDX-License-Identifier: MPL-2.0

package launcher

import (
	"fmt"

	"github.com/charmbracelet/log"

	"fastlane-cli/internal/dispatch"
	"fastlane-cli/internal/issue"
	"fastlane-cli/pkg/types"
)

// RunnerBinary is the executable implementing the lane-execution engine. It
// ships with the distribution; this repository only dispatches to it.
const RunnerBinary = "fastlane-runner"

// ErrUnknownTarget is returned for a Decision whose target tag is not one of
// the three dispatch outcomes. It indicates a programming error upstream.
var ErrUnknownTarget = fmt.Errorf("unknown dispatch target")

// Launcher executes dispatch decisions. The registry supplies the satellite
// and credentials tool surfaces; the lane surface is the umbrella's own
// in-process command processor.
type Launcher struct {
	registry    *Registry
	laneSurface Surface
}

// New creates a Launcher. laneSurface receives every lane-command decision
// with the full argument vector.
func New(registry *Registry, laneSurface Surface) *Launcher {
	return &Launcher{registry: registry, laneSurface: laneSurface}
}

// DefaultRegistry builds the process-wide registry: every known satellite
// tool plus the legacy credentials tool, each backed by its bundled
// executable. toolNames is the closed satellite tool set.
func DefaultRegistry(toolNames []string) *Registry {
	r := NewRegistry()
	for _, name := range toolNames {
		r.Register(name, ExecBinary(name, name))
	}
	r.Register(dispatch.CredentialsToolName, ExecBinary(dispatch.CredentialsToolName, dispatch.CredentialsToolName))
	return r
}

// Launch hands control to the surface the decision selected and returns the
// target's exit status. The only error path is a recognized tool whose entry
// point cannot be located (or an unregistered tool name); such errors are
// fatal and actionable, never retried.
func (l *Launcher) Launch(d dispatch.Decision) (types.ExitCode, error) {
	switch d.Target {
	case dispatch.TargetLaneCommand:
		log.Debug("dispatching to lane command surface", "args", d.Args)
		return l.laneSurface.Run(d.Args)
	case dispatch.TargetSatelliteTool:
		return l.launchTool(d.Tool, d.Args)
	case dispatch.TargetCredentialsTool:
		return l.launchTool(dispatch.CredentialsToolName, d.Args)
	default:
		return types.ExitFailure, fmt.Errorf("%w: %d", ErrUnknownTarget, d.Target)
	}
}

func (l *Launcher) launchTool(name string, args []string) (types.ExitCode, error) {
	factory, ok := l.registry.Lookup(name)
	if !ok {
		return types.ExitFailure, unresolvableTool(name, fmt.Errorf("no surface registered for %q", name))
	}

	surface, err := factory()
	if err != nil {
		return types.ExitFailure, unresolvableTool(name, err)
	}

	log.Debug("dispatching to tool surface", "tool", name, "args", args)
	return surface.Run(args)
}

// unresolvableTool wraps an entry-point lookup failure with instructions, as
// this is the one terminal, user-facing failure the dispatcher owns.
func unresolvableTool(name string, cause error) error {
	return issue.NewErrorContext().
		WithOperation("launch satellite tool").
		WithResource(name).
		WithSuggestion(fmt.Sprintf("Install the fastlane distribution that bundles %q", name)).
		WithSuggestion(fmt.Sprintf("Or invoke the tool directly: %s --help", name)).
		Wrap(cause).
		BuildError()
}
