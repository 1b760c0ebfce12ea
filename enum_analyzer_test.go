package schemaengine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func repeatValues(values []string, times int) []string {
	var out []string
	for i := 0; i < times; i++ {
		out = append(out, values...)
	}
	return out
}

func TestAnalyzeEnumDetectsRepeatingVocabulary(t *testing.T) {
	values := repeatValues([]string{"active", "pending", "archived"}, 17) // 51 values, 3 distinct
	decision := analyzeEnum(values, defaultEnumThresholds())
	assert.True(t, decision.IsEnum)
	assert.Equal(t, []string{"active", "archived", "pending"}, decision.Values)
	assert.LessOrEqual(t, decision.Confidence, confidenceCap)
}

func TestAnalyzeEnumRejectsAllUniqueValues(t *testing.T) {
	values := []string{"id-1", "id-2", "id-3", "id-4", "id-5", "id-6"}
	decision := analyzeEnum(values, defaultEnumThresholds())
	assert.False(t, decision.IsEnum)
}

func TestAnalyzeEnumRejectsTooFewSamples(t *testing.T) {
	decision := analyzeEnum([]string{"a", "b"}, defaultEnumThresholds())
	assert.False(t, decision.IsEnum)
}

func TestAnalyzeEnumRejectsLongFreeText(t *testing.T) {
	long := "this is a long piece of free-form text that exceeds the average length cutoff by quite a lot indeed"
	values := repeatValues([]string{long, long + "!"}, 5)
	decision := analyzeEnum(values, defaultEnumThresholds())
	assert.False(t, decision.IsEnum)
}

func TestAnalyzeEnumRejectsTooManyDistinctValues(t *testing.T) {
	var values []string
	for i := 0; i < 25; i++ {
		values = append(values, "cat-"+string(rune('a'+i)))
	}
	values = append(values, values...) // repeat once so sampleCount != uniqueCount
	decision := analyzeEnum(values, defaultEnumThresholds())
	assert.False(t, decision.IsEnum)
}

func TestDetectBooleanLikePairs(t *testing.T) {
	ok, trueVal, falseVal := detectBooleanLike([]string{"Yes", "No", "Yes", "Yes"})
	assert.True(t, ok)
	assert.Equal(t, "Yes", trueVal)
	assert.Equal(t, "No", falseVal)

	ok2, _, _ := detectBooleanLike([]string{"red", "green", "blue"})
	assert.False(t, ok2)
}
