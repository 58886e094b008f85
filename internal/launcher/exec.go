// SPDX-License-Identifier: MPL-2.0

package launcher

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"github.com/charmbracelet/log"

	"fastlane-cli/pkg/types"
)

// Test seams for executable resolution.
var (
	osExecutable = os.Executable
	lookPath     = exec.LookPath
)

// binarySurface executes an external tool binary with inherited stdio.
type binarySurface struct {
	tool string
	path string
}

// ExecBinary returns a Factory that resolves the named tool to an executable
// and hands over to it. Resolution checks the directory of the running
// fastlane binary first (suite installs keep the tools side by side), then
// falls back to PATH. A failed lookup is returned as an error so the
// launcher can abort with an instructive message.
func ExecBinary(tool, binary string) Factory {
	return func() (Surface, error) {
		path, err := resolveBinary(binary)
		if err != nil {
			return nil, fmt.Errorf("locating %s entry point: %w", tool, err)
		}
		return &binarySurface{tool: tool, path: path}, nil
	}
}

// Run executes the tool binary, wiring the child to this process's stdio.
// The child's exit status is returned verbatim; an error is only reported
// when the process could not be started at all.
func (s *binarySurface) Run(args []string) (types.ExitCode, error) {
	cmd := exec.Command(s.path, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	log.Debug("handing off", "tool", s.tool, "path", s.path, "args", args)

	err := cmd.Run()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			// The child ran and exited; its status is the verdict.
			return types.FromError(err), nil
		}
		return types.ExitFailure, fmt.Errorf("running %s: %w", s.tool, err)
	}
	return types.ExitSuccess, nil
}

// resolveBinary finds the executable for a tool, preferring a sibling of the
// running binary over PATH.
func resolveBinary(binary string) (string, error) {
	if self, err := osExecutable(); err == nil {
		sibling := filepath.Join(filepath.Dir(self), exeName(binary))
		if info, err := os.Stat(sibling); err == nil && !info.IsDir() {
			return sibling, nil
		}
	}
	return lookPath(binary)
}

func exeName(binary string) string {
	if runtime.GOOS == "windows" {
		return binary + ".exe"
	}
	return binary
}
