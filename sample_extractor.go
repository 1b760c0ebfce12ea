package schemaengine

import (
	"sort"
	"strings"
)

// extractionPrecedence is the fixed key precedence the Sample Extractor
// tries, in order, before falling back to scanning remaining keys (§4.1).
var extractionPrecedence = []string{
	"data", "results", "items", "records", "content", "rows", "list",
	"entries", "objects", "documents",
}

// extractionResult is the Sample Extractor's contract output (§4.1).
type extractionResult struct {
	Samples           []any
	DataPath          string // "" when the root itself is the sample array
	IsWrapped         bool
	OriginalStructure any
}

// extract locates the data array inside data, per §4.1's ordered policy:
// root array wins outright; otherwise a fixed key-precedence list is tried
// on a root object; otherwise the first remaining key holding a non-empty
// array of objects; otherwise the object (or any primitive) is itself
// treated as a single-sample array.
func extract(data any, maxSamples int) extractionResult {
	if maxSamples <= 0 {
		maxSamples = 100
	}
	res := extractionResult{OriginalStructure: data}

	if arr, ok := data.([]any); ok {
		res.Samples = truncateSamples(arr, maxSamples)
		return res
	}

	obj, ok := data.(map[string]any)
	if !ok {
		res.Samples = []any{data}
		return res
	}

	for _, key := range extractionPrecedence {
		if v, present := obj[key]; present {
			if arr, ok := v.([]any); ok && len(arr) > 0 {
				res.Samples = truncateSamples(arr, maxSamples)
				res.DataPath = key
				res.IsWrapped = true
				return res
			}
		}
	}

	keys := make([]string, 0, len(obj))
	for k := range obj {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, key := range keys {
		arr, ok := obj[key].([]any)
		if !ok || len(arr) == 0 {
			continue
		}
		if !arrayOfObjects(arr) {
			continue
		}
		res.Samples = truncateSamples(arr, maxSamples)
		res.DataPath = key
		res.IsWrapped = true
		return res
	}

	res.Samples = []any{data}
	return res
}

func arrayOfObjects(arr []any) bool {
	for _, item := range arr {
		if _, ok := item.(map[string]any); !ok {
			return false
		}
	}
	return true
}

func truncateSamples(arr []any, maxSamples int) []any {
	if len(arr) <= maxSamples {
		return arr
	}
	return arr[:maxSamples]
}

// getNestedValue traverses a dot-notation path ("a.b.c") through nested
// maps, returning (nil, false) on any intermediate miss or non-object hop.
func getNestedValue(obj any, path string) (any, bool) {
	if path == "" {
		return obj, true
	}
	current := obj
	for _, segment := range strings.Split(path, ".") {
		m, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}
		v, present := m[segment]
		if !present {
			return nil, false
		}
		current = v
	}
	return current, true
}

// extractFieldNames unions the top-level keys of every object sample,
// returning them in sorted order (the deterministic field ordering §5
// requires).
func extractFieldNames(samples []any) []string {
	seen := make(map[string]struct{})
	for _, s := range samples {
		obj, ok := s.(map[string]any)
		if !ok {
			continue
		}
		for k := range obj {
			seen[k] = struct{}{}
		}
	}
	names := make([]string, 0, len(seen))
	for k := range seen {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// extractFieldValues returns each sample's value at name, falling back to a
// nested dot-path lookup when name itself isn't a direct top-level key.
// Samples missing the field are skipped; callers needing presence/absence
// counts track that separately against len(samples).
func extractFieldValues(samples []any, name string) []any {
	values := make([]any, 0, len(samples))
	for _, s := range samples {
		obj, ok := s.(map[string]any)
		if !ok {
			continue
		}
		if v, present := obj[name]; present {
			values = append(values, v)
			continue
		}
		if v, found := getNestedValue(obj, name); found {
			values = append(values, v)
		}
	}
	return values
}

// mergeSamples deduplicates existing and new samples by canonical
// serialization, preserving insertion order, up to cap items.
func mergeSamples(existing, newSamples []any, cap_ int) []any {
	seen := make(map[string]struct{})
	merged := make([]any, 0, cap_)
	add := func(s any) bool {
		key, err := jsonMarshal(s)
		var canon string
		if err == nil {
			canon = string(key)
		} else {
			// Unserializable sample: treat as always-unique rather than drop it.
			canon = ""
		}
		if canon != "" {
			if _, dup := seen[canon]; dup {
				return false
			}
			seen[canon] = struct{}{}
		}
		merged = append(merged, s)
		return true
	}
	for _, s := range existing {
		if len(merged) >= cap_ {
			return merged
		}
		add(s)
	}
	for _, s := range newSamples {
		if len(merged) >= cap_ {
			return merged
		}
		add(s)
	}
	return merged
}
