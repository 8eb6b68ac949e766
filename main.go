// Package main is the entry point for cscmgr, a CLI and JSON API over CSC
// player statistics and franchise rosters.
package main

import "github.com/ethsmith/csc-manager/cmd"

func main() {
	cmd.Execute()
}
