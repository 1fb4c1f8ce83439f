// Command rivernet aggregates node attributes of river networks into
// piecewise-constant values.
//
// Usage:
//
//	rivernet aggregate -n network.yaml -v values.yaml [-c settings.yaml] [flags]
//	rivernet segments  -n network.yaml [-c settings.yaml] [flags]
//
// Input and output files are YAML; see package config for their layout.
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
