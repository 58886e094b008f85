// SPDX-License-Identifier: MPL-2.0

package dispatch

import "strings"

const (
	// TargetLaneCommand hands the full argument vector to the umbrella's own
	// lane-command surface, which performs its own argument parsing.
	TargetLaneCommand Target = iota
	// TargetSatelliteTool hands the remaining arguments to the named
	// satellite tool's command surface.
	TargetSatelliteTool
	// TargetCredentialsTool hands the remaining arguments to the legacy
	// credentials tool.
	TargetCredentialsTool
)

type (
	// Target identifies which command surface a Decision selects.
	Target int

	// Decision is the outcome of dispatch resolution: the selected target,
	// the canonical tool name (satellite tools only), and the argument
	// vector to hand over. Decisions carry fresh slices; the resolver never
	// aliases the caller's argv.
	Decision struct {
		Target Target
		// Tool is the lowercased canonical satellite tool name. Empty unless
		// Target is TargetSatelliteTool.
		Tool string
		// Args is the outgoing argument vector for the selected surface.
		Args []string
	}

	// NameSet is an unordered membership set of tool or lane identifiers.
	NameSet map[string]struct{}
)

// String returns a human-readable target name.
func (t Target) String() string {
	switch t {
	case TargetLaneCommand:
		return "lane command"
	case TargetSatelliteTool:
		return "satellite tool"
	case TargetCredentialsTool:
		return "credentials tool"
	default:
		return "unknown"
	}
}

// NewNameSet builds a NameSet from the given names.
func NewNameSet(names ...string) NameSet {
	s := make(NameSet, len(names))
	for _, n := range names {
		s[n] = struct{}{}
	}
	return s
}

// Has reports whether name is a member of the set.
func (s NameSet) Has(name string) bool {
	_, ok := s[name]
	return ok
}

// Resolve classifies an invocation's argument vector and returns the dispatch
// decision. Only the head token (after the legacy rewrite and alias
// substitution) participates in classification; classification is
// case-insensitive and local lanes always win over satellite tools, so a
// project can declare a lane named "gym" and still get its own lane.
//
// Resolve is total: it never fails, whatever the vector contains.
func Resolve(argv []string, knownTools, localLanes NameSet) Decision {
	if len(argv) == 0 {
		return Decision{Target: TargetLaneCommand, Args: []string{}}
	}

	args := rewriteLegacy(argv)
	if mapped := ResolveAlias(args[0]); mapped != args[0] {
		args = replaceHead(args, mapped)
	}

	first := strings.ToLower(args[0])

	switch {
	case knownTools.Has(first) && !localLanes.Has(first):
		return Decision{Target: TargetSatelliteTool, Tool: first, Args: cloneTail(args)}
	case first == CredentialsToolName:
		return Decision{Target: TargetCredentialsTool, Args: cloneTail(args)}
	default:
		return Decision{Target: TargetLaneCommand, Args: clone(args)}
	}
}

func clone(args []string) []string {
	out := make([]string, len(args))
	copy(out, args)
	return out
}

// cloneTail returns a copy of args with the head consumed.
func cloneTail(args []string) []string {
	return clone(args[1:])
}

// replaceHead returns a copy of args with the head swapped for token.
func replaceHead(args []string, token string) []string {
	out := clone(args)
	out[0] = token
	return out
}
