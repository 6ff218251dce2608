// Package main is the entry point for the catalyst CLI binary.
package main

import (
	"os"

	cli "catalyst-hr/pkg/cli"
)

func main() {
	os.Exit(cli.Execute())
}
