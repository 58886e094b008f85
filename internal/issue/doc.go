// SPDX-License-Identifier: MPL-2.0

// Package issue provides actionable error handling for user-facing failures.
//
// Errors built here carry the failed operation, the resource involved, and
// concrete suggestions for fixing the problem. Fatal dispatch failures can
// additionally be rendered as Markdown cards for terminal display.
package issue
