package schemaengine

// This file is the package's public surface, per §6. Internal analyzers
// stay unexported; everything a collaborator needs is reachable from here.

// DetectSchema runs the full detection pipeline against opts and returns
// the assembled result, or a typed error on failure: a *SchemaDetectionError,
// or a wrapper type embedding one (such as *EmptyDataError).
func DetectSchema(opts *SchemaDetectionOptions) (*ExtendedDetectionResult, error) {
	return detectSchema(opts)
}

// MergeWithExisting incrementally re-detects a schema from newSamples plus
// a synthetic reconstruction of existing's retained sample values,
// preserving identity and (optionally) manual display overrides.
func MergeWithExisting(existing *Schema, newSamples []any, opts *SchemaDetectionOptions) (*ExtendedDetectionResult, error) {
	return mergeWithExisting(existing, newSamples, opts)
}

// DetectPagination inspects a response body plus optional request params
// and headers and returns the inferred pagination shape.
func DetectPagination(response any, requestParams map[string]any, headers map[string]string) PaginationAnalysis {
	return detectPagination(response, requestParams, headers)
}

// DetectRelationships scores schema's foreign-key candidate fields against
// allSchemas and returns schema with Relationships populated.
func DetectRelationships(schema *Schema, allSchemas []*Schema) *Schema {
	out := *schema
	out.Relationships = detectRelationships(&out, allSchemas)
	return &out
}

// GetWidgetSuggestions evaluates the built-in widget rule set against
// schema's fields.
func GetWidgetSuggestions(schema *Schema) []WidgetSuggestion {
	return getWidgetSuggestions(schema)
}

// CompareSchemas reports the field-level diff and similarity between two
// schema versions.
func CompareSchemas(old, newSchema *Schema) SchemaComparison {
	return compareSchemas(old, newSchema)
}

// ExtractSamples exposes the Sample Extractor for advanced composition.
func ExtractSamples(data any, maxSamples int) (samples []any, dataPath string, isWrapped bool) {
	res := extract(data, maxSamples)
	return res.Samples, res.DataPath, res.IsWrapped
}

// GetNestedValue exposes the Sample Extractor's dot-path traversal helper.
func GetNestedValue(obj any, path string) (any, bool) {
	return getNestedValue(obj, path)
}

// IsPrimaryKey exposes the Primary-Key Detector's single-field query.
func IsPrimaryKey(name string, fieldType FieldType, unique bool) bool {
	return isPrimaryKey(name, fieldType, unique)
}
