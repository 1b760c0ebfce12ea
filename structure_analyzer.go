package schemaengine

import "strings"

// structureBucket classifies response nesting depth (§3, §4.6).
type structureBucket string

const (
	StructureFlat          structureBucket = "flat"
	StructureNested        structureBucket = "nested"
	StructureDeeplyNested  structureBucket = "deeply_nested"
)

// responseStructure is the Structure Analyzer's output, per §3.
type responseStructure struct {
	IsArray        bool
	IsWrapped      bool
	DataPath       string // "" means none
	MetaPaths      []string
	ItemCount      int
	Structure      structureBucket
	MaxDepth       int
	IsListResponse bool
	ListConfidence float64
}

// analyzeStructure computes the structural report for the raw (pre-
// extraction) input, using the Sample Extractor's own findings for
// isWrapped/dataPath so the two components agree (§4.6).
func analyzeStructure(raw any, ext extractionResult) responseStructure {
	_, isArray := raw.([]any)

	rs := responseStructure{
		IsArray:   isArray,
		IsWrapped: ext.IsWrapped,
		DataPath:  ext.DataPath,
		ItemCount: len(ext.Samples),
	}

	rs.MaxDepth = computeMaxDepth(raw, 0)
	switch {
	case rs.MaxDepth <= 2:
		rs.Structure = StructureFlat
	case rs.MaxDepth <= 4:
		rs.Structure = StructureNested
	default:
		rs.Structure = StructureDeeplyNested
	}

	if obj, ok := raw.(map[string]any); ok {
		rs.MetaPaths = findMetaPaths(obj, rs.DataPath, "", 0)
	}

	rs.IsListResponse, rs.ListConfidence = classifyListResponse(raw, rs.MetaPaths)

	return rs
}

// computeMaxDepth walks the value recursively; arrays contribute +1 depth
// once and descend into index 0 only, matching §4.6's performance note.
func computeMaxDepth(v any, depth int) int {
	switch val := v.(type) {
	case map[string]any:
		max := depth
		for _, child := range val {
			if d := computeMaxDepth(child, depth+1); d > max {
				max = d
			}
		}
		return max
	case []any:
		if len(val) == 0 {
			return depth + 1
		}
		return computeMaxDepth(val[0], depth+1)
	default:
		return depth
	}
}

// findMetaPaths scans dot paths in the wrapper object (excluding dataPath)
// whose key matches any metaKeywords entry by substring in either
// direction, recursing into small sub-objects only.
func findMetaPaths(obj map[string]any, dataPath, prefix string, depth int) []string {
	if depth > 2 {
		return nil
	}
	var paths []string
	for key, v := range obj {
		full := key
		if prefix != "" {
			full = prefix + "." + key
		}
		if full == dataPath || key == dataPath {
			continue
		}
		if isMetaKey(key) {
			paths = append(paths, full)
			continue
		}
		if child, ok := v.(map[string]any); ok && len(child) <= 10 {
			paths = append(paths, findMetaPaths(child, dataPath, full, depth+1)...)
		}
	}
	return paths
}

func isMetaKey(key string) bool {
	lower := strings.ToLower(key)
	for _, kw := range metaKeywords {
		if strings.Contains(lower, kw) || strings.Contains(kw, lower) {
			return true
		}
	}
	return false
}

// classifyListResponse implements §4.6's isListResponse heuristic.
func classifyListResponse(raw any, metaPaths []string) (bool, float64) {
	if _, ok := raw.([]any); ok {
		return true, 0.95
	}
	obj, ok := raw.(map[string]any)
	if !ok {
		return false, 0.8
	}
	for _, v := range obj {
		if arr, ok := v.([]any); ok && len(arr) > 0 && arrayOfObjects(arr) {
			return true, 0.9
		}
	}
	if len(metaPaths) > 0 {
		return true, 0.7
	}
	return false, 0.8
}

// areStructuresCompatible implements §4.6's compatibility check: false on
// array/non-array mismatch or differing data paths, true otherwise.
func areStructuresCompatible(a, b responseStructure) bool {
	if a.IsArray != b.IsArray {
		return false
	}
	if a.DataPath != b.DataPath {
		return false
	}
	return true
}
