// SPDX-License-Identifier: MPL-2.0

package dispatch

const (
	// UmbrellaName is the umbrella tool's own name. It is deliberately not a
	// satellite tool: an invocation that resolves to it falls through to the
	// lane-command surface.
	UmbrellaName = "fastlane"

	// CredentialsToolName is the legacy credentials tool literal. It is
	// checked only after satellite-tool and lane classification both miss.
	CredentialsToolName = "fastlane-credentials"

	// legacyAuthToken is the old spelling of the spaceship auth subcommand.
	// Invocations starting with it are rewritten to "spaceship spaceauth …"
	// so the renamed tool keeps its old invocation working.
	legacyAuthToken = "spaceauth"
	legacyAuthTool  = "spaceship"
)

// aliasTable maps the two recognized glyph aliases to canonical tool names.
// Process-wide constant; aliases can only ever resolve to a tool name, never
// directly to a lane.
var aliasTable = map[string]string{
	"🚀": UmbrellaName,
	"🔥": "gym",
}

// ResolveAlias maps a glyph alias to its canonical tool name. Any token that
// is not in the alias table passes through unchanged, so the function is
// total over all strings and has no error conditions.
func ResolveAlias(token string) string {
	if name, ok := aliasTable[token]; ok {
		return name
	}
	return token
}

// rewriteLegacy applies the legacy-rename rule to a non-empty argument
// vector: when the raw head token is the old spaceauth spelling, a fresh
// vector is returned with the renamed tool inserted at the front and the old
// token kept at index 1. The rule looks at the head before any alias or case
// processing. The input slice is never modified.
func rewriteLegacy(argv []string) []string {
	if argv[0] != legacyAuthToken {
		return argv
	}
	rewritten := make([]string, 0, len(argv)+1)
	rewritten = append(rewritten, legacyAuthTool)
	return append(rewritten, argv...)
}
