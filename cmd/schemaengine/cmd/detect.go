package cmd

import (
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/panelkit/schemaengine"
)

var (
	detectDataSourceID        string
	detectEndpointID          string
	detectMaxSamples          int
	detectDetectRelationships bool
)

// detectCmd runs the full detection pipeline against a file of sample JSON.
var detectCmd = &cobra.Command{
	Use:   "detect <samples.json>",
	Short: "Infer a schema, pagination pattern, and widget suggestions from sample JSON",
	Args:  cobra.ExactArgs(1),
	RunE:  runDetect,
}

func init() {
	detectCmd.Flags().StringVar(&detectDataSourceID, "data-source-id", "cli", "data source identifier to stamp on the schema")
	detectCmd.Flags().StringVar(&detectEndpointID, "endpoint-id", "", "endpoint identifier used to derive the schema name")
	detectCmd.Flags().IntVar(&detectMaxSamples, "max-samples", 0, "cap on samples considered (0 = engine default of 100)")
	detectCmd.Flags().BoolVar(&detectDetectRelationships, "relationships", false, "score foreign-key relationships against --existing-schema files")
	detectCmd.Flags().StringArray("existing-schema", nil, "path to a previously detected schema, for relationship scoring (repeatable)")
	_ = viper.BindPFlag("detect.max-samples", detectCmd.Flags().Lookup("max-samples"))
}

func runDetect(cmd *cobra.Command, args []string) error {
	sampleData, err := readJSONFile(args[0])
	if err != nil {
		return err
	}

	existingPaths, _ := cmd.Flags().GetStringArray("existing-schema")
	var existing []*schemaengine.Schema
	for _, p := range existingPaths {
		s, err := readSchemaFile(p)
		if err != nil {
			return err
		}
		existing = append(existing, s)
	}

	opts := &schemaengine.SchemaDetectionOptions{
		DataSourceID:        detectDataSourceID,
		EndpointID:          detectEndpointID,
		SampleData:          sampleData,
		MaxSampleSize:       detectMaxSamples,
		DetectRelationships: detectDetectRelationships,
		ExistingSchemas:     existing,
	}

	orch := buildOrchestrator()
	slog.Debug("running detection", "dataSourceId", detectDataSourceID, "existingSchemas", len(existing))

	result, err := orch.DetectSchema(opts)
	if err != nil {
		return err
	}
	return printJSON(result)
}
