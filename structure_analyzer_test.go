package schemaengine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnalyzeStructureFlatArray(t *testing.T) {
	raw := []any{
		map[string]any{"id": float64(1), "name": "A"},
		map[string]any{"id": float64(2), "name": "B"},
	}
	ext := extract(raw, 100)
	rs := analyzeStructure(raw, ext)
	assert.True(t, rs.IsArray)
	assert.False(t, rs.IsWrapped)
	assert.Equal(t, "", rs.DataPath)
	assert.Equal(t, StructureFlat, rs.Structure)
	assert.True(t, rs.IsListResponse)
}

func TestAnalyzeStructureWrappedWithMeta(t *testing.T) {
	raw := map[string]any{
		"results": []any{
			map[string]any{"id": "a1b2", "title": "x"},
			map[string]any{"id": "c3d4", "title": "y"},
		},
		"total":    float64(42),
		"page":     float64(1),
		"per_page": float64(2),
		"has_more": true,
	}
	ext := extract(raw, 100)
	rs := analyzeStructure(raw, ext)
	assert.Equal(t, "results", rs.DataPath)
	assert.True(t, rs.IsWrapped)
	assert.Contains(t, rs.MetaPaths, "total")
	assert.Contains(t, rs.MetaPaths, "page")
	assert.Contains(t, rs.MetaPaths, "per_page")
	assert.Contains(t, rs.MetaPaths, "has_more")
}

func TestComputeMaxDepthBuckets(t *testing.T) {
	flat := map[string]any{"a": float64(1)}
	assert.Equal(t, StructureFlat, bucketFor(computeMaxDepth(flat, 0)))

	nested := map[string]any{"a": map[string]any{"b": map[string]any{"c": float64(1)}}}
	assert.Equal(t, StructureNested, bucketFor(computeMaxDepth(nested, 0)))

	deeplyNested := map[string]any{
		"a": map[string]any{"b": map[string]any{"c": map[string]any{"d": map[string]any{"e": float64(1)}}}},
	}
	assert.Equal(t, StructureDeeplyNested, bucketFor(computeMaxDepth(deeplyNested, 0)))
}

func bucketFor(depth int) structureBucket {
	switch {
	case depth <= 2:
		return StructureFlat
	case depth <= 4:
		return StructureNested
	default:
		return StructureDeeplyNested
	}
}

func TestAreStructuresCompatible(t *testing.T) {
	a := responseStructure{IsArray: true, DataPath: ""}
	b := responseStructure{IsArray: true, DataPath: ""}
	assert.True(t, areStructuresCompatible(a, b))

	c := responseStructure{IsArray: false, DataPath: "results"}
	assert.False(t, areStructuresCompatible(a, c))
}
