// SPDX-License-Identifier: MPL-2.0

// Package config loads the fastlane CLI configuration.
//
// Configuration comes from three layers, lowest precedence first: built-in
// defaults, an optional config.cue file in the platform config directory
// (validated against an embedded CUE schema), and FASTLANE_* environment
// variables. The dispatch resolver itself reads none of this; configuration
// only shapes the plumbing around it (verbosity, update advisories, the
// runner binary).
package config
