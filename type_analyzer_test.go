package schemaengine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectStatsConservation(t *testing.T) {
	values := []any{float64(1), float64(2), nil, "three"}
	stats := collectStats(values, 2, nil)

	sumTypeCounts := 0
	for _, c := range stats.TypeCounts {
		sumTypeCounts += c
	}
	// nil is tallied only in NullCount, never in TypeCounts, so conservation
	// is typeCounts (non-null only) + nullCount + undefined == total.
	assert.Equal(t, stats.TotalCount, sumTypeCounts+stats.NullCount+stats.Undefined)
	assert.Equal(t, 1, stats.NullCount)
	assert.Equal(t, 2, stats.Undefined)
	assert.Equal(t, 6, stats.TotalCount)
	assert.LessOrEqual(t, len(stats.UniqueValues), stats.TotalCount-stats.NullCount-stats.Undefined)
}

func TestCollectStatsNullsDoNotSkewDominantType(t *testing.T) {
	stats := collectStats([]any{float64(1), nil, nil}, 0, nil)
	agg := aggregateType(stats)
	assert.Equal(t, TypeInteger, agg.Type)
	assert.True(t, agg.IsNullable)
}

func TestCollectStatsNullsExcludedFromUniqueValues(t *testing.T) {
	stats := collectStats([]any{"a", "a", nil}, 0, nil)
	assert.LessOrEqual(t, len(stats.UniqueValues), 1)
}

func TestAggregateTypeDominance(t *testing.T) {
	stats := collectStats([]any{float64(1), float64(2), float64(3), "x"}, 0, nil)
	agg := aggregateType(stats)
	assert.Equal(t, TypeInteger, agg.Type)
}

func TestAggregateTypeIntegerNumberPromotion(t *testing.T) {
	// Integers dominate by count, but a float co-occurs: promote to number
	// per the documented policy (any float present promotes the field).
	stats := collectStats([]any{float64(1), float64(2), float64(3), 1.5}, 0, nil)
	agg := aggregateType(stats)
	assert.Equal(t, TypeNumber, agg.Type)
}

func TestAggregateTypeAllNullIsUnknown(t *testing.T) {
	stats := collectStats([]any{nil, nil}, 0, nil)
	agg := aggregateType(stats)
	assert.Equal(t, TypeUnknown, agg.Type)
	assert.Equal(t, 0.0, agg.Confidence)
	assert.True(t, agg.IsNullable)
	assert.False(t, agg.IsRequired)
}

func TestAggregateTypeRequiredNullableExclusive(t *testing.T) {
	withNulls := aggregateType(collectStats([]any{float64(1), nil}, 0, nil))
	assert.True(t, withNulls.IsNullable)
	assert.False(t, withNulls.IsRequired)

	withoutNulls := aggregateType(collectStats([]any{float64(1), float64(2)}, 0, nil))
	assert.False(t, withoutNulls.IsNullable)
	assert.True(t, withoutNulls.IsRequired)
}

func TestArrayItemTypeDominant(t *testing.T) {
	values := []any{
		[]any{float64(1), float64(2)},
		[]any{float64(3)},
	}
	require.Equal(t, TypeInteger, arrayItemType(values))
}

func TestIsLikelyIdField(t *testing.T) {
	stats := collectStats([]any{float64(1), float64(2), float64(3)}, 0, nil)
	isID, confidence := isLikelyIdField("id", TypeInteger, stats, 3)
	assert.True(t, isID)
	assert.LessOrEqual(t, confidence, 0.95)

	statsLow := collectStats([]any{"a", "a", "b"}, 0, nil)
	isID2, _ := isLikelyIdField("description", TypeString, statsLow, 3)
	assert.False(t, isID2)
}
