// SPDX-License-Identifier: MPL-2.0

package main

import "github.com/mkdflags/mkdflags/cmd/mkdflags"

func main() {
	cmd.Execute()
}
