// SPDX-License-Identifier: MPL-2.0

// Package tools declares the closed set of satellite tools bundled with the
// fastlane distribution. The set is a process-wide constant: dispatch
// membership checks and launcher registry population both derive from it.
package tools

import (
	"slices"

	"fastlane-cli/internal/dispatch"
)

// names is the canonical, lowercase satellite tool list. The umbrella tool
// itself is deliberately absent so that it always resolves through its own
// lane-command surface.
var names = []string{
	"cert",
	"deliver",
	"frameit",
	"gym",
	"match",
	"pem",
	"pilot",
	"precheck",
	"produce",
	"scan",
	"screengrab",
	"sigh",
	"snapshot",
	"spaceship",
	"supply",
	"trainer",
}

// Names returns the satellite tool names in a stable, sorted order.
func Names() []string {
	return slices.Clone(names)
}

// Known returns the satellite tool set for dispatch classification.
func Known() dispatch.NameSet {
	return dispatch.NewNameSet(names...)
}

// IsKnown reports whether name is a satellite tool (canonical lowercase form).
func IsKnown(name string) bool {
	return slices.Contains(names, name)
}
