package schemaengine

import "sort"

// fieldStats is the per-field accumulator described in §3. It is built once
// per field, per detection run, by collectStats, and consumed by every other
// analyzer (enum, validation, primary-key).
type fieldStats struct {
	TypeCounts    map[FieldType]int
	NullCount     int
	Undefined     int
	TotalCount    int
	UniqueValues  map[string]struct{} // canonical-form set, size-bounded (§9 "Uniqueness and cycles")
	StringLengths []int
	NumericValues []float64
	PatternCounts map[string]int
	SampleValues  []any // first ~50 observed values, retained for previews
	StringValues  []string
}

const sampleValuesCap = 50
const canonicalizeSizeCap = 500

func newFieldStats() *fieldStats {
	return &fieldStats{
		TypeCounts:    make(map[FieldType]int),
		UniqueValues:  make(map[string]struct{}),
		PatternCounts: make(map[string]int),
	}
}

// collectStats walks values once, building a fieldStats record. values
// already excludes samples where the key was entirely absent (tracked by
// the caller as undefinedCount), matching extractFieldValues' contract.
// classify defaults to detectValueType when nil; an Orchestrator with
// registered custom formats passes its own classifier so custom patterns
// are consulted before the built-in precedence list.
func collectStats(values []any, undefinedCount int, classify func(any) valueDetection) *fieldStats {
	if classify == nil {
		classify = detectValueType
	}
	stats := newFieldStats()
	stats.Undefined = undefinedCount
	stats.TotalCount = len(values) + undefinedCount

	for _, v := range values {
		if isNullish(v) {
			stats.NullCount++
			appendSample(stats, v)
			continue
		}

		det := classify(v)
		stats.TypeCounts[det.Type]++
		if det.Pattern != "" {
			stats.PatternCounts[det.Pattern]++
		}

		switch val := v.(type) {
		case string:
			stats.StringLengths = append(stats.StringLengths, len(val))
			stats.StringValues = append(stats.StringValues, val)
		case float64:
			stats.NumericValues = append(stats.NumericValues, val)
		}

		trackUnique(stats, v)
		appendSample(stats, v)
	}

	return stats
}

func appendSample(stats *fieldStats, v any) {
	if len(stats.SampleValues) < sampleValuesCap {
		stats.SampleValues = append(stats.SampleValues, v)
	}
}

// trackUnique adds v's canonical form to the unique set. Primitives use
// their natural serialization; objects/arrays are canonicalized only up to
// canonicalizeSizeCap bytes, and any serialization failure (cycles,
// oversize) silently drops the value from uniqueness tracking while it
// still counts in the type histogram above.
func trackUnique(stats *fieldStats, v any) {
	data, err := jsonMarshal(v)
	if err != nil {
		return
	}
	if len(data) > canonicalizeSizeCap {
		switch v.(type) {
		case map[string]any, []any:
			return
		}
	}
	stats.UniqueValues[string(data)] = struct{}{}
}

// aggregatedType is the result of aggregating a fieldStats record into a
// single dominant type plus confidence, per §4.3's aggregation steps.
type aggregatedType struct {
	Type        FieldType
	Confidence  float64
	IsNullable  bool
	IsRequired  bool
	NonNull     int
}

// aggregateType implements §4.3's 5-step aggregation.
func aggregateType(stats *fieldStats) aggregatedType {
	nonNull := stats.TotalCount - stats.NullCount - stats.Undefined
	if nonNull <= 0 {
		return aggregatedType{
			Type:       TypeUnknown,
			Confidence: 0,
			IsNullable: stats.NullCount > 0,
			IsRequired: false,
			NonNull:    0,
		}
	}

	dominant, maxCount := dominantTypeOf(stats.TypeCounts)

	if dominant == TypeInteger {
		if numCount, ok := stats.TypeCounts[TypeNumber]; ok {
			dominant = TypeNumber
			maxCount += numCount
		}
	}

	confidence := typeConfidence(maxCount, nonNull)

	return aggregatedType{
		Type:       dominant,
		Confidence: confidence,
		IsNullable: stats.NullCount > 0,
		IsRequired: stats.NullCount == 0 && stats.Undefined == 0,
		NonNull:    nonNull,
	}
}

// dominantTypeOf returns the argmax of the type histogram, breaking ties in
// favor of the lexicographically smaller tag for determinism.
func dominantTypeOf(counts map[FieldType]int) (FieldType, int) {
	var best FieldType
	bestCount := -1
	for t, c := range counts {
		if c > bestCount || (c == bestCount && t < best) {
			best = t
			bestCount = c
		}
	}
	return best, bestCount
}

// arrayItemType runs per-value detection over every item of every observed
// array value and picks the dominant, per §4.3 "Array item type".
func arrayItemType(arrayValues []any) FieldType {
	counts := make(map[FieldType]int)
	for _, v := range arrayValues {
		arr, ok := v.([]any)
		if !ok {
			continue
		}
		for _, item := range arr {
			det := detectValueType(item)
			counts[det.Type]++
		}
	}
	if len(counts) == 0 {
		return TypeUnknown
	}
	t, _ := dominantTypeOf(counts)
	return t
}

// isLikelyIdField implements §4.3's ID-ness heuristic.
func isLikelyIdField(name string, fieldType FieldType, stats *fieldStats, nonNull int) (isID bool, confidence float64) {
	var score float64
	if pkNameRegex.MatchString(name) {
		score += 0.5
	}
	if fkSuffixRegex.MatchString(name) {
		score += 0.3
	}
	if nonNull > 1 && len(stats.UniqueValues) == nonNull {
		score += 0.3
	}
	switch fieldType {
	case TypeInteger, TypeUUID, TypeString:
		score += 0.2
	}
	isID = score >= 0.5
	return isID, clamp(score, 0, 0.95)
}

// sortedStringValues is a small helper other analyzers (enum, validation)
// reuse for deterministic enumValues output.
func sortedStringValues(values []string) []string {
	out := append([]string(nil), values...)
	sort.Strings(out)
	return out
}
