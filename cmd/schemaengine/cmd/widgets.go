package cmd

import (
	"github.com/spf13/cobra"

	"github.com/panelkit/schemaengine"
)

// widgetsCmd evaluates the widget rule set against a previously detected schema.
var widgetsCmd = &cobra.Command{
	Use:   "widgets <schema.json>",
	Short: "Rank widget suggestions for a detected schema",
	Args:  cobra.ExactArgs(1),
	RunE:  runWidgets,
}

func runWidgets(cmd *cobra.Command, args []string) error {
	schema, err := readSchemaFile(args[0])
	if err != nil {
		return err
	}
	suggestions := schemaengine.GetWidgetSuggestions(schema)
	return printJSON(suggestions)
}
