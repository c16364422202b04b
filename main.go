// Package main is the entry point of the actiongen command.
//
// Example Usage:
//
//	actiongen list hetzner
//	actiongen list --mapping ./mapping.json -o json
//	actiongen namespaces
package main

import (
	"os"

	"actiongen.evalgo.org/cli"
)

func main() {
	// cobra has already printed the error
	if err := cli.RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
