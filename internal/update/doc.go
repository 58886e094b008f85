// SPDX-License-Identifier: MPL-2.0

// Package update implements the advisory update check for the fastlane CLI.
//
// The check is plumbing around dispatch, not part of it: it queries the
// GitHub Releases API for the latest stable version, compares it to the
// running version, and persists a small state file so the network is only
// touched once per day. Every failure mode is soft — a broken network or a
// malformed response never blocks dispatch.
package update
