package schemaengine

// pkCandidate is one field's primary-key score, per §4.7.
type pkCandidate struct {
	Name       string
	Score      float64
	Confidence float64
}

// scorePrimaryKey scores a single field per §4.7's weighted criteria.
// numericValues is used only for the sequential-integer bonus and may be
// nil for non-integer fields.
func scorePrimaryKey(name string, fieldType FieldType, isUnique bool, neverNull bool, numericValues []float64) float64 {
	var score float64
	if pkNameRegex.MatchString(name) {
		score += 0.5
	}
	if isUnique {
		score += 0.3
	}
	switch fieldType {
	case TypeInteger, TypeUUID, TypeString:
		score += 0.2
	}
	if fieldType == TypeUUID {
		score += 0.2
	}
	if fieldType == TypeInteger && looksSequential(numericValues) {
		score += 0.1
	}
	if neverNull {
		score += 0.1
	}
	return score
}

// looksSequential reports whether at least 70% of consecutive pairs in the
// sorted value list have a gap of 1 to 10, the §4.7 sequential-integer
// heuristic.
func looksSequential(values []float64) bool {
	if len(values) < 2 {
		return false
	}
	sorted := append([]float64(nil), values...)
	insertionSortFloat(sorted)

	matching := 0
	pairs := 0
	for i := 1; i < len(sorted); i++ {
		gap := sorted[i] - sorted[i-1]
		if gap == 0 {
			continue // duplicate values don't count as a pair either way
		}
		pairs++
		if gap >= 1 && gap <= 10 {
			matching++
		}
	}
	if pairs == 0 {
		return false
	}
	return float64(matching)/float64(pairs) >= 0.7
}

func insertionSortFloat(vals []float64) {
	for i := 1; i < len(vals); i++ {
		key := vals[i]
		j := i - 1
		for j >= 0 && vals[j] > key {
			vals[j+1] = vals[j]
			j--
		}
		vals[j+1] = key
	}
}

// pickPrimaryKey picks the highest-scoring candidate whose score is at
// least 0.3, per §4.7. Below threshold, no primary key is assigned.
func pickPrimaryKey(candidates []pkCandidate) (name string, confidence float64, found bool) {
	best := -1.0
	var winner pkCandidate
	for _, c := range candidates {
		if c.Score >= 0.3 && c.Score > best {
			best = c.Score
			winner = c
		}
	}
	if best < 0 {
		return "", 0, false
	}
	return winner.Name, clamp(winner.Score, 0, 0.95), true
}

// isPrimaryKey is the single-field query variant from §4.7: (+0.5 PK-name,
// +0.3 unique, +0.2 appropriate type) >= 0.5.
func isPrimaryKey(name string, fieldType FieldType, unique bool) bool {
	var score float64
	if pkNameRegex.MatchString(name) {
		score += 0.5
	}
	if unique {
		score += 0.3
	}
	switch fieldType {
	case TypeInteger, TypeUUID, TypeString:
		score += 0.2
	}
	return score >= 0.5
}
