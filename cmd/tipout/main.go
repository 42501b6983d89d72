// Command tipout calculates a shift's tip-out from the command line, either
// in-process or against a running tipout server.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
