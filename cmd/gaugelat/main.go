// SPDX-License-Identifier: MIT

// Command gaugelat builds SU(2)/SU(3) lattice gauge fields, evolves them with
// Metropolis sweeps and reports plaquette and action statistics.
//
// Usage:
//
//	gaugelat init-config gaugelat.yaml
//	gaugelat observe --config gaugelat.yaml
//	gaugelat run --config gaugelat.yaml --metrics-file run.prom
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
