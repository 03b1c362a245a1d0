// Command tickbar demonstrates the tickbar progress library.
package main

import (
	"os"

	"github.com/meigma/tickbar/cmd/tickbar/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
