package schemaengine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClamp(t *testing.T) {
	assert.Equal(t, 0.0, clamp(-1, 0, 1))
	assert.Equal(t, 1.0, clamp(2, 0, 1))
	assert.Equal(t, 0.5, clamp(0.5, 0, 1))
}

func TestTypeConfidenceNeverExceedsCap(t *testing.T) {
	for _, n := range []int{1, 5, 20, 1000} {
		c := typeConfidence(n, n)
		assert.LessOrEqual(t, c, 0.99)
	}
}

func TestTypeConfidenceMonotoneInSampleSize(t *testing.T) {
	// Fixed dominance ratio, growing sample size: confidence should not decrease.
	prev := 0.0
	for _, n := range []int{2, 4, 8, 16, 32, 64} {
		c := typeConfidence(n, n) // ratio 1.0 throughout
		assert.GreaterOrEqual(t, c, prev)
		prev = c
	}
}

func TestTypeConfidenceZeroSamples(t *testing.T) {
	assert.Equal(t, 0.0, typeConfidence(0, 0))
}

func TestEnumConfidenceBounds(t *testing.T) {
	c := enumConfidence(3, 50, 20, 0.9)
	assert.LessOrEqual(t, c, confidenceCap)
	assert.GreaterOrEqual(t, c, 0.0)
}

func TestRelationshipConfidenceCap(t *testing.T) {
	c := relationshipConfidence(1.0, 1.0, 0)
	assert.LessOrEqual(t, c, confidenceCap)
}

func TestPaginationConfidenceScalesWithIndicators(t *testing.T) {
	low := paginationConfidence(1, 9)
	high := paginationConfidence(8, 9)
	assert.Less(t, low, high)
	assert.LessOrEqual(t, high, confidenceCap)
}

func TestAdjustForSampleSizeDampsBelowK(t *testing.T) {
	full := adjustForSampleSize(0.9, 20, 20)
	damped := adjustForSampleSize(0.9, 5, 20)
	assert.Equal(t, 0.9, full)
	assert.Less(t, damped, full)
	assert.InDelta(t, 0.9*(0.5+0.5*5.0/20.0), damped, 1e-9)
}
