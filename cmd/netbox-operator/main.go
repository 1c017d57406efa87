// Package main is the entry point for the netbox-operator.
//
// The operator watches the dcops.microscaler.io custom resources and keeps
// the matching NetBox records in line with them.
//
// Commands: run, validate, version.
//
// For detailed usage information, run:
//
//	netbox-operator --help
package main

import (
	"fmt"
	"os"

	"github.com/microscaler/netbox-operator/cmd/netbox-operator/commands"
)

// Version information set by goreleaser at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	commands.SetVersionInfo(version, commit, date)
	if err := commands.Root().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
