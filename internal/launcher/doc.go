// SPDX-License-Identifier: MPL-2.0

// Package launcher hands control to the command surface a dispatch decision
// selected.
//
// Satellite tools and the legacy credentials tool ship as separate
// executables in the fastlane distribution; their entry points are resolved
// through an explicit registry populated at startup and executed with
// inherited stdio. The umbrella's own lane-command surface is registered as
// an in-process Surface. A tool that is known by name but whose entry point
// cannot be located is a fatal, user-facing condition — the launcher reports
// it and the process aborts, it is never retried.
package launcher
