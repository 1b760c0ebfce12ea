package cmd

import (
	"github.com/spf13/cobra"

	"github.com/panelkit/schemaengine"
)

// compareCmd reports the field-level diff between two schema versions.
var compareCmd = &cobra.Command{
	Use:   "compare <old-schema.json> <new-schema.json>",
	Short: "Diff two schema versions",
	Args:  cobra.ExactArgs(2),
	RunE:  runCompare,
}

func runCompare(cmd *cobra.Command, args []string) error {
	oldSchema, err := readSchemaFile(args[0])
	if err != nil {
		return err
	}
	newSchema, err := readSchemaFile(args[1])
	if err != nil {
		return err
	}
	return printJSON(schemaengine.CompareSchemas(oldSchema, newSchema))
}
