// SPDX-License-Identifier: MPL-2.0

// Package dispatch implements the entry-point resolution algorithm for the
// fastlane suite: classifying the first process argument against the known
// satellite tool names, the lanes declared in the local Fastfile, the fixed
// alias table, and the legacy credentials tool name.
//
// Resolution is a pure, total function. It never fails and never mutates the
// caller's argument slice; all failure handling lives downstream in the
// launcher hand-off.
package dispatch
