package cmd

import (
	"fmt"
	"os"

	gojson "github.com/goccy/go-json"
	"github.com/spf13/viper"

	"github.com/panelkit/schemaengine"
)

// readJSONFile decodes path's contents into an arbitrary JSON value using
// goccy/go-json, the codec the engine itself standardizes on.
func readJSONFile(path string) (any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	var v any
	if err := gojson.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("parse %s as JSON: %w", path, err)
	}
	return v, nil
}

// readSchemaFile decodes path's contents into a Schema value.
func readSchemaFile(path string) (*schemaengine.Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	var s schemaengine.Schema
	if err := gojson.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse %s as a schema: %w", path, err)
	}
	return &s, nil
}

// printJSON writes v to stdout as indented JSON.
func printJSON(v any) error {
	data, err := gojson.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}

// buildOrchestrator constructs an Orchestrator whose thresholds are
// overridden from viper config (config file or SCHEMAENGINE_* env vars),
// falling back to the library defaults for anything unset. This is the
// CLI's analogue of the teacher's per-command flag-to-API-call wiring.
func buildOrchestrator() *schemaengine.Orchestrator {
	var opts []schemaengine.Option

	if viper.IsSet("min-sample-warning") {
		opts = append(opts, schemaengine.WithMinSampleWarningThreshold(viper.GetInt("min-sample-warning")))
	}
	if viper.IsSet("sample-size-damping-k") {
		opts = append(opts, schemaengine.WithSampleSizeDampingK(viper.GetInt("sample-size-damping-k")))
	}
	if viper.IsSet("locale") {
		opts = append(opts, schemaengine.WithLocale(viper.GetString("locale")))
	}

	return schemaengine.NewOrchestrator(opts...)
}
