// SPDX-License-Identifier: MPL-2.0

package launcher

import "fastlane-cli/pkg/types"

type (
	// Surface is a command-processing entry point: it receives the remaining
	// argument vector and returns the exit status of the target. Run blocks
	// until the target finishes.
	Surface interface {
		Run(args []string) (types.ExitCode, error)
	}

	// SurfaceFunc adapts a plain function to the Surface interface.
	SurfaceFunc func(args []string) (types.ExitCode, error)

	// Factory produces a tool's command surface, or an error when the entry
	// point cannot be located. Factories run lazily at launch time so merely
	// knowing a tool name never touches the filesystem.
	Factory func() (Surface, error)

	// Registry maps canonical tool names to surface factories. It replaces
	// lookup-by-reflection with an explicit mapping populated at startup and
	// queried by exact key.
	Registry struct {
		factories map[string]Factory
	}
)

// Run implements Surface.
func (f SurfaceFunc) Run(args []string) (types.ExitCode, error) {
	return f(args)
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// Register associates a tool name with a surface factory. Later
// registrations replace earlier ones.
func (r *Registry) Register(name string, f Factory) {
	r.factories[name] = f
}

// Lookup returns the factory registered for name, if any.
func (r *Registry) Lookup(name string) (Factory, bool) {
	f, ok := r.factories[name]
	return f, ok
}
