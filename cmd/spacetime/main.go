// SPDX-License-Identifier: MIT

// Command spacetime is the command-line front end of the kinematics library.
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/spacetime/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "spacetime:", err)
		os.Exit(cli.GetExitCode(err))
	}
}
