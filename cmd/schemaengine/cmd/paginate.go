package cmd

import (
	"github.com/spf13/cobra"

	"github.com/panelkit/schemaengine"
)

var (
	paginateParamsFile  string
	paginateHeadersFile string
)

// paginateCmd runs the Pagination Detector in isolation against a response body.
var paginateCmd = &cobra.Command{
	Use:   "paginate <response.json>",
	Short: "Infer a pagination pattern from a response body",
	Args:  cobra.ExactArgs(1),
	RunE:  runPaginate,
}

func init() {
	paginateCmd.Flags().StringVar(&paginateParamsFile, "params", "", "path to a JSON file of the request params that produced the response")
	paginateCmd.Flags().StringVar(&paginateHeadersFile, "headers", "", "path to a JSON file of string response headers")
}

func runPaginate(cmd *cobra.Command, args []string) error {
	body, err := readJSONFile(args[0])
	if err != nil {
		return err
	}

	var params map[string]any
	if paginateParamsFile != "" {
		v, err := readJSONFile(paginateParamsFile)
		if err != nil {
			return err
		}
		if m, ok := v.(map[string]any); ok {
			params = m
		}
	}

	var headers map[string]string
	if paginateHeadersFile != "" {
		v, err := readJSONFile(paginateHeadersFile)
		if err != nil {
			return err
		}
		if m, ok := v.(map[string]any); ok {
			headers = make(map[string]string, len(m))
			for k, val := range m {
				if s, ok := val.(string); ok {
					headers[k] = s
				}
			}
		}
	}

	analysis := schemaengine.DetectPagination(body, params, headers)
	return printJSON(analysis)
}
