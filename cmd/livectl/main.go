// Command livectl inspects live documents: it loads a project's documents,
// builds components from them and prints the result.
package main

import (
	"os"

	"github.com/hardik-satasiya/makepad/cmd/livectl/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
