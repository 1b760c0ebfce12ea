package schemaengine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScorePrimaryKeyNameBoost(t *testing.T) {
	score := scorePrimaryKey("id", TypeInteger, true, true, []float64{1, 2, 3})
	assert.GreaterOrEqual(t, score, 0.5)
}

func TestLooksSequential(t *testing.T) {
	assert.True(t, looksSequential([]float64{1, 2, 3, 4, 5}))
	assert.False(t, looksSequential([]float64{1, 500, 3, 9000}))
	assert.False(t, looksSequential([]float64{1}))
}

func TestPickPrimaryKeyThreshold(t *testing.T) {
	candidates := []pkCandidate{
		{Name: "id", Score: 0.9},
		{Name: "name", Score: 0.1},
	}
	name, confidence, found := pickPrimaryKey(candidates)
	assert.True(t, found)
	assert.Equal(t, "id", name)
	assert.LessOrEqual(t, confidence, 0.95)
}

func TestPickPrimaryKeyNoneAboveThreshold(t *testing.T) {
	candidates := []pkCandidate{
		{Name: "name", Score: 0.1},
		{Name: "description", Score: 0.2},
	}
	_, _, found := pickPrimaryKey(candidates)
	assert.False(t, found)
}

func TestIsPrimaryKeySingleFieldQuery(t *testing.T) {
	assert.True(t, isPrimaryKey("id", TypeInteger, true))
	assert.False(t, isPrimaryKey("description", TypeString, false))
}

func TestAtMostOnePrimaryKeyAssigned(t *testing.T) {
	fields := []FieldDescriptor{
		{Name: "id", Type: TypeInteger},
		{Name: "uuid", Type: TypeUUID},
	}
	stats := map[string]*fieldStats{
		"id":   collectStats([]any{float64(1), float64(2), float64(3)}, 0, nil),
		"uuid": collectStats([]any{"550e8400-e29b-41d4-a716-446655440000"}, 0, nil),
	}
	o := NewOrchestrator()
	name, _, found := o.detectPrimaryKey(fields, stats)
	assert.True(t, found)
	count := 0
	if name == "id" {
		count++
	}
	if name == "uuid" {
		count++
	}
	assert.Equal(t, 1, count)
}
