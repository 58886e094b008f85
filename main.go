// SPDX-License-Identifier: MPL-2.0

package main

import cmd "fastlane-cli/cmd/fastlane"

func main() {
	cmd.Execute()
}
