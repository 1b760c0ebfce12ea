package schemaengine

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ExtendedDetectionResult wraps a detected Schema with the ancillary
// analysis the Orchestrator produces alongside it, per §4.11 step 10.
type ExtendedDetectionResult struct {
	Schema             Schema
	ResponseStructure  responseStructure
	PaginationAnalysis *PaginationAnalysis
	WidgetSuggestions  []WidgetSuggestion
	Warnings           []string
	Suggestions        []string
	ProcessingTimeMS   int64
}

var defaultOrchestrator = NewOrchestrator()

// detectSchema runs the full pipeline against options, per §4.11.
func detectSchema(opts *SchemaDetectionOptions) (*ExtendedDetectionResult, error) {
	return defaultOrchestrator.DetectSchema(opts)
}

// detectSchemaWithOptions is the package-private entry point mergeWithExisting
// re-enters through, kept distinct from detectSchema only so the public name
// stays stable if a future caller needs a differently-configured orchestrator.
func detectSchemaWithOptions(opts *SchemaDetectionOptions) (*ExtendedDetectionResult, error) {
	return defaultOrchestrator.DetectSchema(opts)
}

// DetectSchema implements §4.11's ten-step pipeline using o's configuration.
func (o *Orchestrator) DetectSchema(opts *SchemaDetectionOptions) (*ExtendedDetectionResult, error) {
	start := time.Now()
	if opts == nil {
		return nil, wrapError(ErrNilOptions)
	}
	if opts.DataSourceID == "" {
		return nil, wrapError(ErrMissingDataSourceID)
	}

	ext := extract(opts.SampleData, opts.effectiveMaxSampleSize())
	if len(ext.Samples) == 0 {
		return nil, wrapError(NewEmptyDataError())
	}

	structure := analyzeStructure(opts.SampleData, ext)

	result := &ExtendedDetectionResult{
		ResponseStructure: structure,
	}

	if len(ext.Samples) < o.minSampleWarningThreshold {
		result.Warnings = append(result.Warnings, localize(o.locale, msgLowSampleWarning, map[string]any{
			"count": len(ext.Samples),
		}))
		result.Suggestions = append(result.Suggestions, localize(o.locale, msgFetchMoreSamples, nil))
	}

	names := extractFieldNames(ext.Samples)
	fields := make([]FieldDescriptor, 0, len(names))
	statsByName := make(map[string]*fieldStats, len(names))

	for _, name := range names {
		values := extractFieldValues(ext.Samples, name)
		undefined := len(ext.Samples) - countFieldPresence(ext.Samples, name)
		stats := collectStats(values, undefined, o.classifyValue)
		statsByName[name] = stats

		field := o.buildFieldDescriptor(name, stats, len(ext.Samples))
		fields = append(fields, field)
	}

	winnerName, pkConfidence, found := o.detectPrimaryKey(fields, statsByName)
	if found {
		for i := range fields {
			if fields[i].Name == winnerName {
				fields[i].IsPrimaryKey = true
				fields[i].Confidence = maxFloat(fields[i].Confidence, pkConfidence)
			}
		}
	}

	schema := Schema{
		ID:           o.idGenerator("schema"),
		Name:         deriveSchemaName(opts.EndpointID, opts.DataSourceID),
		DataSourceID: opts.DataSourceID,
		EndpointID:   opts.EndpointID,
		Fields:       fields,
		SampleSize:   len(ext.Samples),
		AutoDetected: true,
	}
	result.Schema = schema

	if opts.effectiveDetectPagination() {
		pagination := detectPagination(opts.SampleData, opts.RequestParams, opts.ResponseHeaders)
		result.PaginationAnalysis = &pagination
	}

	if opts.DetectRelationships && len(opts.ExistingSchemas) > 0 {
		rels := detectRelationships(&result.Schema, opts.ExistingSchemas)
		result.Schema.Relationships = rels
	}

	result.WidgetSuggestions = getWidgetSuggestions(&result.Schema)
	result.ProcessingTimeMS = time.Since(start).Milliseconds()

	return result, nil
}

// classifyValue is the Orchestrator's per-value classifier: custom formats
// registered via RegisterFormat take precedence over the built-in pattern
// library, per the teacher's format.go dispatch order.
func (o *Orchestrator) classifyValue(v any) valueDetection {
	s, ok := v.(string)
	if !ok {
		return detectValueType(v)
	}
	if det, matched := o.matchCustomFormat(s); matched {
		return valueDetection{Type: det.Type, Confidence: det.Confidence, Pattern: det.Pattern}
	}
	return detectValueType(v)
}

func (o *Orchestrator) buildFieldDescriptor(name string, stats *fieldStats, totalSamples int) FieldDescriptor {
	agg := aggregateType(stats)
	confidence := adjustForSampleSize(agg.Confidence, totalSamples, o.sampleSizeDampingK)

	field := FieldDescriptor{
		Name:              name,
		Type:              agg.Type,
		Confidence:        confidence,
		IsNullable:        agg.IsNullable,
		IsRequired:        agg.IsRequired,
		SampleValues:      stats.SampleValues,
		InferredFromCount: stats.TotalCount,
	}

	cons := inferConstraints(name, stats, o.validationThresholds, o.locale)
	field.IsUnique = cons.IsUnique
	field.MinLength = cons.MinLength
	field.MaxLength = cons.MaxLength
	field.Min = cons.Min
	field.Max = cons.Max
	field.Pattern = cons.Pattern

	if field.Type == TypeString && len(stats.StringValues) > 0 {
		decision := analyzeEnum(stats.StringValues, o.enumThresholds)
		if decision.IsEnum {
			field.Type = TypeEnum
			field.EnumValues = decision.Values
			field.Confidence = maxFloat(field.Confidence, decision.Confidence)
		}
	}

	if field.Type == TypeArray {
		field.ArrayItemType = arrayItemType(sampleValuesOf(stats))
	}

	if isFK, _ := isLikelyIdField(name, field.Type, stats, agg.NonNull); isFK && !field.IsPrimaryKey {
		if fkSuffixRegex.MatchString(name) || fkPrefixRegex.MatchString(name) {
			field.IsForeignKey = true
		}
	}

	return field
}

func sampleValuesOf(stats *fieldStats) []any {
	return stats.SampleValues
}

func maxFloat(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

func countFieldPresence(samples []any, name string) int {
	count := 0
	for _, s := range samples {
		obj, ok := s.(map[string]any)
		if !ok {
			continue
		}
		if _, present := obj[name]; present {
			count++
			continue
		}
		if _, found := getNestedValue(obj, name); found {
			count++
		}
	}
	return count
}

// detectPrimaryKey scores every field per §4.7 and picks the winner.
func (o *Orchestrator) detectPrimaryKey(fields []FieldDescriptor, statsByName map[string]*fieldStats) (name string, confidence float64, found bool) {
	candidates := make([]pkCandidate, 0, len(fields))
	for _, f := range fields {
		stats := statsByName[f.Name]
		neverNull := stats.NullCount == 0
		score := scorePrimaryKey(f.Name, f.Type, f.IsUnique, neverNull, stats.NumericValues)
		candidates = append(candidates, pkCandidate{Name: f.Name, Score: score})
	}
	return pickPrimaryKey(candidates)
}

// deriveSchemaName title-cases the endpoint (or data source) identifier
// into a schema name, per §4.11 step 6.
func deriveSchemaName(endpointID, dataSourceID string) string {
	base := endpointID
	if base == "" {
		base = dataSourceID
	}
	base = strings.TrimPrefix(base, "/")
	parts := strings.FieldsFunc(base, func(r rune) bool {
		return r == '/' || r == '_' || r == '-' || r == '.'
	})
	if len(parts) == 0 {
		return "Schema"
	}
	last := parts[len(parts)-1]
	return strings.Title(strings.ToLower(last))
}

// generateID produces a non-cryptographic identifier in the
// "{prefix}_{timestamp}_{random9}" shape §4.11 specifies: a millisecond
// Unix timestamp orders IDs by creation time, and a 9-character suffix
// drawn from google/uuid disambiguates IDs minted within the same
// millisecond.
func generateID(prefix string) string {
	timestamp := time.Now().UnixMilli()

	u := uuid.New()
	suffix := strings.ReplaceAll(u.String(), "-", "")
	if len(suffix) > 9 {
		suffix = suffix[:9]
	}
	return fmt.Sprintf("%s_%d_%s", prefix, timestamp, suffix)
}
