package schemaengine

import (
	"fmt"
	"sort"
)

// validationThresholds hold the heuristic cutoffs §9's "Open questions"
// section calls out as implementation policy decisions, exposed here as
// configuration rather than hard-coded.
type validationThresholds struct {
	MinObservationsForLength int
	MinObservationsForRange  int
	MaxSuppressedValue       float64 // max is suppressed at or above this (§4.5, §9)
	DominantPatternShare     float64
}

func defaultValidationThresholds() validationThresholds {
	return validationThresholds{
		MinObservationsForLength: 5,
		MinObservationsForRange:  5,
		MaxSuppressedValue:       1e9,
		DominantPatternShare:     0.8,
	}
}

// constraints is the Validation Analyzer's output for one field, per §4.5.
type constraints struct {
	IsRequired  bool
	IsNullable  bool
	IsUnique    bool
	MinLength   *int
	MaxLength   *int
	Min         *float64
	Max         *float64
	Pattern     string
	Suggestions []string
}

// inferConstraints implements §4.5. locale selects the language advisory
// suggestions are rendered in; it has no effect on the constraints
// themselves.
func inferConstraints(name string, stats *fieldStats, th validationThresholds, locale string) constraints {
	c := constraints{}
	c.IsRequired = stats.NullCount+stats.Undefined == 0 && stats.TotalCount > 0
	c.IsNullable = stats.NullCount > 0

	nonNull := stats.TotalCount - stats.NullCount - stats.Undefined
	if nonNull >= 2 {
		ratio := float64(len(stats.UniqueValues)) / float64(nonNull)
		c.IsUnique = ratio >= 0.99
	}

	if len(stats.StringLengths) >= th.MinObservationsForLength {
		min, max := minMaxInt(stats.StringLengths)
		if min > 0 {
			c.MinLength = &min
		}
		c.MaxLength = &max
	}

	if len(stats.NumericValues) >= th.MinObservationsForRange {
		min, max := minMaxFloat(stats.NumericValues)
		if min >= 0 {
			c.Min = &min
		}
		if max < th.MaxSuppressedValue {
			c.Max = &max
		}
	}

	if total := patternedStringTotal(stats.PatternCounts); total > 0 {
		dominant, count := dominantPattern(stats.PatternCounts)
		if float64(count)/float64(total) >= th.DominantPatternShare {
			c.Pattern = dominant
		}
	}

	c.Suggestions = buildSuggestions(name, stats, c, locale)
	return c
}

func minMaxInt(vals []int) (int, int) {
	min, max := vals[0], vals[0]
	for _, v := range vals[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return min, max
}

func minMaxFloat(vals []float64) (float64, float64) {
	min, max := vals[0], vals[0]
	for _, v := range vals[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return min, max
}

// patternedStringTotal counts patterned occurrences that are not the
// uninformative "empty" or "plain" tags, matching the "share of patterned
// strings" language in §4.5.
func patternedStringTotal(counts map[string]int) int {
	total := 0
	for tag, c := range counts {
		if tag == "empty" || tag == "plain" {
			continue
		}
		total += c
	}
	return total
}

func dominantPattern(counts map[string]int) (string, int) {
	keys := make([]string, 0, len(counts))
	for k := range counts {
		if k == "empty" || k == "plain" {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)
	var best string
	bestCount := -1
	for _, k := range keys {
		if counts[k] > bestCount {
			best = k
			bestCount = counts[k]
		}
	}
	return best, bestCount
}

// buildSuggestions emits the non-normative advisory strings §4.5 and §7
// describe. These never affect the schema itself.
func buildSuggestions(name string, stats *fieldStats, c constraints, locale string) []string {
	var suggestions []string
	if stats.TotalCount > 0 && !c.IsRequired {
		presentRatio := 100 * float64(stats.TotalCount-stats.NullCount-stats.Undefined) / float64(stats.TotalCount)
		if presentRatio >= 90 {
			suggestions = append(suggestions, localize(locale, msgConsiderRequired, map[string]any{
				"field":   name,
				"percent": fmt.Sprintf("%.1f", presentRatio),
			}))
		}
	}
	return suggestions
}
