package schemaengine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInferConstraintsRequiredAndNullable(t *testing.T) {
	stats := collectStats([]any{float64(1), float64(2)}, 0, nil)
	c := inferConstraints("count", stats, defaultValidationThresholds(), "en")
	assert.True(t, c.IsRequired)
	assert.False(t, c.IsNullable)
}

func TestInferConstraintsUnique(t *testing.T) {
	stats := collectStats([]any{"a", "b", "c", "d", "e"}, 0, nil)
	c := inferConstraints("code", stats, defaultValidationThresholds(), "en")
	assert.True(t, c.IsUnique)
}

func TestInferConstraintsLengthBounds(t *testing.T) {
	stats := collectStats([]any{"a", "bb", "ccc", "dddd", "eeeee"}, 0, nil)
	c := inferConstraints("name", stats, defaultValidationThresholds(), "en")
	require := assert.New(t)
	require.NotNil(c.MinLength)
	require.NotNil(c.MaxLength)
	require.Equal(1, *c.MinLength)
	require.Equal(5, *c.MaxLength)
}

func TestInferConstraintsMinSuppressedWhenNegative(t *testing.T) {
	stats := collectStats([]any{-5.0, 1.0, 2.0, 3.0, 4.0}, 0, nil)
	c := inferConstraints("delta", stats, defaultValidationThresholds(), "en")
	assert.Nil(t, c.Min)
}

func TestInferConstraintsMaxSuppressedWhenHuge(t *testing.T) {
	stats := collectStats([]any{1.0, 2.0, 3.0, 4.0, 2e9}, 0, nil)
	c := inferConstraints("total", stats, defaultValidationThresholds(), "en")
	assert.Nil(t, c.Max)
}

func TestInferConstraintsDominantPattern(t *testing.T) {
	stats := collectStats([]any{
		"550e8400-e29b-41d4-a716-446655440000",
		"6ba7b810-9dad-11d1-80b4-00c04fd430c8",
		"6ba7b811-9dad-11d1-80b4-00c04fd430c8",
		"6ba7b812-9dad-11d1-80b4-00c04fd430c8",
		"6ba7b814-9dad-11d1-80b4-00c04fd430c8",
	}, 0, nil)
	c := inferConstraints("id", stats, defaultValidationThresholds(), "en")
	assert.Equal(t, "uuid", c.Pattern)
}

func TestBuildSuggestionsAdvisory(t *testing.T) {
	stats := collectStats([]any{"x", "y", nil, "z", "w", "v", "u", "t", "s", "r"}, 0, nil)
	c := inferConstraints("email", stats, defaultValidationThresholds(), "en")
	assert.False(t, c.IsRequired)
	assert.NotEmpty(t, c.Suggestions)
}
