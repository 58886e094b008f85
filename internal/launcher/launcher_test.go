// SPDX-License-Identifier: MPL-2.0

package launcher

import (
	"errors"
	"reflect"
	"testing"

	"fastlane-cli/internal/dispatch"
	"fastlane-cli/internal/issue"
	"fastlane-cli/pkg/types"
)

// recordingSurface captures the args it was invoked with.
type recordingSurface struct {
	args   []string
	called bool
	code   types.ExitCode
}

func (s *recordingSurface) Run(args []string) (types.ExitCode, error) {
	s.called = true
	s.args = args
	return s.code, nil
}

func TestLaunch_LaneDecisionGoesToLaneSurface(t *testing.T) {
	t.Parallel()

	lane := &recordingSurface{}
	l := New(NewRegistry(), lane)

	code, err := l.Launch(dispatch.Decision{
		Target: dispatch.TargetLaneCommand,
		Args:   []string{"beta", "--verbose"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !code.IsSuccess() {
		t.Errorf("exit code = %v, want success", code)
	}
	if !reflect.DeepEqual(lane.args, []string{"beta", "--verbose"}) {
		t.Errorf("lane surface received %v, want full vector", lane.args)
	}
}

func TestLaunch_SatelliteToolUsesRegistry(t *testing.T) {
	t.Parallel()

	tool := &recordingSurface{code: 7}
	r := NewRegistry()
	r.Register("gym", func() (Surface, error) { return tool, nil })

	l := New(r, &recordingSurface{})
	code, err := l.Launch(dispatch.Decision{
		Target: dispatch.TargetSatelliteTool,
		Tool:   "gym",
		Args:   []string{"-q"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if code != 7 {
		t.Errorf("exit code = %v, want the tool's own status 7", code)
	}
	if !reflect.DeepEqual(tool.args, []string{"-q"}) {
		t.Errorf("tool surface received %v, want remaining args only", tool.args)
	}
}

func TestLaunch_CredentialsDecision(t *testing.T) {
	t.Parallel()

	creds := &recordingSurface{}
	r := NewRegistry()
	r.Register(dispatch.CredentialsToolName, func() (Surface, error) { return creds, nil })

	l := New(r, &recordingSurface{})
	if _, err := l.Launch(dispatch.Decision{
		Target: dispatch.TargetCredentialsTool,
		Args:   []string{"add"},
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !creds.called {
		t.Error("credentials surface was never invoked")
	}
}

func TestLaunch_UnresolvableToolIsActionable(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		register bool
	}{
		{name: "tool not registered at all", register: false},
		{name: "factory cannot locate the entry point", register: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := NewRegistry()
			if tt.register {
				r.Register("gym", func() (Surface, error) {
					return nil, errors.New("executable not found")
				})
			}

			l := New(r, &recordingSurface{})
			code, err := l.Launch(dispatch.Decision{
				Target: dispatch.TargetSatelliteTool,
				Tool:   "gym",
				Args:   nil,
			})
			if err == nil {
				t.Fatal("expected a fatal error for an unresolvable tool")
			}
			if code.IsSuccess() {
				t.Errorf("exit code = %v, want non-zero", code)
			}

			var ae *issue.ActionableError
			if !errors.As(err, &ae) {
				t.Fatalf("error %v is not actionable", err)
			}
			if ae.Resource != "gym" {
				t.Errorf("error resource = %q, want the tool name", ae.Resource)
			}
			if len(ae.Suggestions) == 0 {
				t.Error("error carries no suggestions")
			}
		})
	}
}

func TestDefaultRegistry_CoversToolsAndCredentials(t *testing.T) {
	t.Parallel()

	r := DefaultRegistry([]string{"gym", "snapshot"})

	for _, name := range []string{"gym", "snapshot", dispatch.CredentialsToolName} {
		if _, ok := r.Lookup(name); !ok {
			t.Errorf("Lookup(%q) missed, want a registered factory", name)
		}
	}
	if _, ok := r.Lookup("fastlane"); ok {
		t.Error("the umbrella must not be registered as a tool surface")
	}
}
