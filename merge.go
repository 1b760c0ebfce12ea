package schemaengine

// mergeWithExisting implements §4.11's incremental merge: it reconstructs a
// small synthetic sample set from the existing schema's retained sample
// values, merges it with freshly supplied samples, re-runs detectSchema,
// and (optionally) overlays display metadata preserved from the prior
// schema. The synthetic reconstruction is positional and therefore lossy —
// §9's "Open questions" flags this explicitly; callers that persist raw
// samples alongside the schema should prefer passing those through
// newSamples instead of relying on reconstruction alone.
func mergeWithExisting(existing *Schema, newSamples []any, opts *SchemaDetectionOptions) (*ExtendedDetectionResult, error) {
	if opts == nil {
		return nil, wrapError(ErrNilOptions)
	}

	synthetic := reconstructSyntheticSamples(existing)
	merged := mergeSamples(synthetic, newSamples, opts.effectiveMaxSampleSize())

	mergedOpts := *opts
	mergedOpts.SampleData = merged
	mergedOpts.DetectRelationships = true

	result, err := detectSchemaWithOptions(&mergedOpts)
	if err != nil {
		return nil, err
	}

	result.Schema.ID = existing.ID
	result.Schema.CreatedAt = existing.CreatedAt
	result.Schema.CRUDEnabled = existing.CRUDEnabled
	result.Schema.CRUDEndpoints = existing.CRUDEndpoints

	if opts.PreserveManualEdits {
		overlayManualEdits(&result.Schema, existing)
	}

	result.Suggestions = append(result.Suggestions,
		localize(defaultOrchestrator.locale, msgSchemaMergedSamples, map[string]any{
			"count": len(merged),
		}))

	return result, nil
}

// reconstructSyntheticSamples rebuilds up to 10 synthetic records per field
// from the existing schema's retained sampleValues, collated positionally
// — the policy §9 calls out as a known, accepted source of fabricated
// cross-field correlation.
func reconstructSyntheticSamples(existing *Schema) []any {
	const maxPerField = 10

	width := 0
	for _, f := range existing.Fields {
		n := len(f.SampleValues)
		if n > maxPerField {
			n = maxPerField
		}
		if n > width {
			width = n
		}
	}

	samples := make([]any, width)
	for i := 0; i < width; i++ {
		record := make(map[string]any, len(existing.Fields))
		for _, f := range existing.Fields {
			if i < len(f.SampleValues) && i < maxPerField {
				record[f.Name] = f.SampleValues[i]
			}
		}
		samples[i] = record
	}
	return samples
}

// overlayManualEdits copies displayName/description/displayFormat from
// existing onto the matching field in updated, satisfying §8 invariant 10.
func overlayManualEdits(updated, existing *Schema) {
	for i := range updated.Fields {
		prior := existing.FieldByName(updated.Fields[i].Name)
		if prior == nil {
			continue
		}
		updated.Fields[i].DisplayName = prior.DisplayName
		updated.Fields[i].Description = prior.Description
		updated.Fields[i].DisplayFormat = prior.DisplayFormat
	}
}
