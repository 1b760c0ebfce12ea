// Command schemaengine is a small CLI front end over the schemaengine
// library: point it at a file of sample JSON responses and it prints the
// detected schema, pagination pattern, or widget suggestions.
package main

import (
	"os"

	"github.com/panelkit/schemaengine/cmd/schemaengine/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
