// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
)

// render is a seam for tests; glamour needs a real terminal profile to be
// deterministic.
var render = func(md string) (string, error) {
	return glamour.Render(md, "auto")
}

// RenderCard renders a Markdown message for terminal display. When rendering
// fails (no TTY, broken style), the raw Markdown is returned so the message
// is never lost.
func RenderCard(md string) string {
	out, err := render(md)
	if err != nil {
		return md
	}
	return out
}

// ToolNotFoundCard builds the fatal message shown when a satellite tool is
// recognized by name but its executable entry point cannot be located.
func ToolNotFoundCard(tool, binary string) string {
	var md strings.Builder

	fmt.Fprintf(&md, "# %s is part of the fastlane suite, but it isn't available here\n\n", tool)
	fmt.Fprintf(&md, "The `%s` executable could not be located next to fastlane or on your PATH.\n\n", binary)
	md.WriteString("## Things you can try\n\n")
	fmt.Fprintf(&md, "- Install the full fastlane distribution so `%s` is bundled alongside it\n", binary)
	fmt.Fprintf(&md, "- Invoke the tool directly once installed:\n\n")
	fmt.Fprintf(&md, "~~~\n$ %s --help\n~~~\n", tool)

	return md.String()
}
