package schemaengine

import "strings"

// enumThresholds are the Enum Analyzer's configurable decision thresholds
// (§4.4), write-once at Orchestrator construction.
type enumThresholds struct {
	MaxEnumValues    int
	MinSampleSize    int
	MinRepeatRatio   float64
	MaxAverageLength float64
}

func defaultEnumThresholds() enumThresholds {
	return enumThresholds{
		MaxEnumValues:    20,
		MinSampleSize:    5,
		MinRepeatRatio:   0.3,
		MaxAverageLength: 50,
	}
}

// enumDecision is the Enum Analyzer's verdict for one string-only field.
type enumDecision struct {
	IsEnum     bool
	Confidence float64
	Values     []string // sorted, non-empty iff IsEnum
}

// analyzeEnum implements §4.4's decision logic over string-only values.
func analyzeEnum(values []string, th enumThresholds) enumDecision {
	sampleCount := len(values)
	if sampleCount < th.MinSampleSize {
		return enumDecision{}
	}

	counts := make(map[string]int)
	totalLen := 0
	for _, v := range values {
		counts[v]++
		totalLen += len(v)
	}
	unique := len(counts)

	if unique > th.MaxEnumValues {
		return enumDecision{}
	}
	if unique == sampleCount && unique > 3 {
		return enumDecision{}
	}

	avgLength := float64(totalLen) / float64(sampleCount)
	if avgLength > th.MaxAverageLength {
		return enumDecision{}
	}

	repeated := 0
	for _, c := range counts {
		if c > 1 {
			repeated++
		}
	}
	repeatRatio := 0.0
	if unique > 0 {
		repeatRatio = float64(repeated) / float64(unique)
	}
	if unique > 5 && repeatRatio < th.MinRepeatRatio {
		return enumDecision{}
	}

	confidence := enumConfidence(unique, sampleCount, th.MaxEnumValues, repeatRatio)
	if confidence <= 0.5 {
		return enumDecision{}
	}

	uniqueValues := make([]string, 0, unique)
	for v := range counts {
		uniqueValues = append(uniqueValues, v)
	}
	return enumDecision{
		IsEnum:     true,
		Confidence: confidence,
		Values:     sortedStringValues(uniqueValues),
	}
}

// booleanLikePair names a recognized true/false string vocabulary, per
// §4.4's boolean-like detection.
type booleanLikePair struct {
	TrueValue  string
	FalseValue string
}

var booleanLikePairs = []booleanLikePair{
	{"true", "false"},
	{"yes", "no"},
	{"y", "n"},
	{"1", "0"},
	{"on", "off"},
	{"active", "inactive"},
	{"enabled", "disabled"},
}

// detectBooleanLike recognizes a field with at most 2 unique values
// (case-insensitive) as one of the known true/false string vocabularies,
// returning the actual-case strings that map to true and false.
func detectBooleanLike(values []string) (isBooleanLike bool, trueString, falseString string) {
	seen := make(map[string]string) // lowercase -> first observed actual-case form
	order := make([]string, 0, 2)
	for _, v := range values {
		lower := strings.ToLower(v)
		if _, ok := seen[lower]; !ok {
			seen[lower] = v
			order = append(order, lower)
			if len(order) > 2 {
				return false, "", ""
			}
		}
	}
	if len(order) == 0 || len(order) > 2 {
		return false, "", ""
	}

	for _, pair := range booleanLikePairs {
		hasTrue, hasFalse := false, false
		for _, lower := range order {
			if lower == pair.TrueValue {
				hasTrue = true
			}
			if lower == pair.FalseValue {
				hasFalse = true
			}
		}
		if hasTrue && hasFalse {
			return true, seen[pair.TrueValue], seen[pair.FalseValue]
		}
	}
	return false, "", ""
}
