// Command footprint queries the Digital Footprint Collector from a terminal,
// either through a running API server or in-process with --local.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
