// Command ire discovers congestion weak points in a capacitated
// undirected graph by fitting a multiplicative-weights spanning-tree
// mixture (see fit/report subcommands).
package main

import (
	"fmt"
	"os"

	"github.com/irespan/ire/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
