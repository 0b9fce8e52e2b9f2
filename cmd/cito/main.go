// Command cito is the CLI driver entry point.
package main

import (
	"os"

	"github.com/cwbudde/citogo/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
