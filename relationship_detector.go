package schemaengine

import (
	"fmt"
	"strings"
)

// RelationshipType enumerates the cardinalities a detected relationship can
// carry, per §3.
type RelationshipType string

const (
	RelOneToOne   RelationshipType = "one-to-one"
	RelOneToMany  RelationshipType = "one-to-many"
	RelManyToMany RelationshipType = "many-to-many"
)

// Relationship is a detected foreign-key link, per §3.
type Relationship struct {
	ID             string           `json:"id"`
	DisplayName    string           `json:"displayName"`
	SourceSchemaID string           `json:"sourceSchemaId"`
	SourceField    string           `json:"sourceField"`
	TargetSchemaID string           `json:"targetSchemaId"`
	TargetField    string           `json:"targetField"`
	Type           RelationshipType `json:"type"`
	Confidence     float64          `json:"confidence"`
}

var entitySuffixes = []string{"_id", "Id", "_ref", "ID"}
var entityPrefixes = []string{"id_", "fk_", "ref_"}

// isForeignKeyCandidate implements §4.9 step 1.
func isForeignKeyCandidate(field *FieldDescriptor) bool {
	if field.IsForeignKey {
		return true
	}
	if field.IsPrimaryKey {
		return false
	}
	if fkSuffixRegex.MatchString(field.Name) || fkPrefixRegex.MatchString(field.Name) {
		return true
	}
	if (field.Type == TypeUUID || field.Type == TypeInteger) && strings.Contains(strings.ToLower(field.Name), "id") {
		return true
	}
	return false
}

// deriveEntityName strips common suffixes/prefixes and lowercases, per §4.9
// step 2.
func deriveEntityName(fieldName string) string {
	name := fieldName
	for _, suf := range entitySuffixes {
		if strings.HasSuffix(name, suf) {
			name = strings.TrimSuffix(name, suf)
			break
		}
	}
	for _, pre := range entityPrefixes {
		if strings.HasPrefix(strings.ToLower(name), pre) {
			name = name[len(pre):]
			break
		}
	}
	return strings.ToLower(name)
}

func normalizeSchemaName(s string) string {
	n := strings.ToLower(s)
	n = strings.ReplaceAll(n, "-", "")
	n = strings.ReplaceAll(n, "_", "")
	n = strings.TrimSuffix(n, "s")
	return n
}

// nameScoreFor implements §4.9 step 3.
func nameScoreFor(entityName, targetSchemaName string) float64 {
	normEntity := normalizeSchemaName(entityName)
	normTarget := normalizeSchemaName(targetSchemaName)
	switch {
	case normEntity == normTarget:
		return 1.0
	case strings.Contains(strings.ToLower(targetSchemaName), entityName):
		return 0.8
	case strings.Contains(entityName, strings.ToLower(targetSchemaName)):
		return 0.7
	default:
		return 0
	}
}

var commonPKNames = []string{"id", "_id", "ID", "pk", "uuid", "guid"}

// findTargetPrimaryKey implements §4.9 step 4: prefer the flagged PK field,
// else a common PK name (including "id"), else a name matching pkNameRegex.
// When none is found it returns (nil, true) and no relationship is formed
// against target; no "id" target field is assumed.
func findTargetPrimaryKey(target *Schema) (field *FieldDescriptor, isFallback bool) {
	for i := range target.Fields {
		if target.Fields[i].IsPrimaryKey {
			return &target.Fields[i], false
		}
	}
	for _, name := range commonPKNames {
		for i := range target.Fields {
			if target.Fields[i].Name == name {
				return &target.Fields[i], false
			}
		}
	}
	for i := range target.Fields {
		if pkNameRegex.MatchString(target.Fields[i].Name) {
			return &target.Fields[i], false
		}
	}
	for i := range target.Fields {
		if target.Fields[i].Name == "id" {
			return &target.Fields[i], true
		}
	}
	return nil, true
}

// typeScoreFor implements §4.9 step 5.
func typeScoreFor(source, target FieldType) float64 {
	switch {
	case source == target:
		return 1.0
	case (source == TypeInteger && target == TypeNumber) || (source == TypeNumber && target == TypeInteger):
		return 0.9
	case source == TypeString || target == TypeString:
		return 0.7
	default:
		return 0.3
	}
}

// detectRelationships implements §4.9 in full: for every foreign-key
// candidate field in source, score every other schema and emit the best
// relationship above the confidence threshold.
func detectRelationships(source *Schema, others []*Schema) []Relationship {
	var rels []Relationship

	for _, field := range source.Fields {
		f := field
		if !isForeignKeyCandidate(&f) {
			continue
		}
		entityName := deriveEntityName(f.Name)

		var bestRel *Relationship
		var bestConfidence float64

		for _, target := range others {
			if target.ID == source.ID {
				continue
			}
			nameScore := nameScoreFor(entityName, target.Name)
			if nameScore == 0 {
				continue
			}

			pkField, fallback := findTargetPrimaryKey(target)
			if pkField == nil {
				continue
			}

			typeScore := typeScoreFor(f.Type, pkField.Type)
			confidence := relationshipConfidence(nameScore, typeScore, 0)
			if fallback {
				confidence *= 0.5
			}
			if confidence < 0.5 {
				continue
			}
			if confidence > bestConfidence {
				bestConfidence = confidence
				relType := RelOneToMany
				if f.IsUnique {
					relType = RelOneToOne
				}
				bestRel = &Relationship{
					ID:             fmt.Sprintf("rel_%s_%s_%s", source.ID, target.ID, f.Name),
					DisplayName:    fmt.Sprintf("%s.%s -> %s", source.Name, f.Name, target.Name),
					SourceSchemaID: source.ID,
					SourceField:    f.Name,
					TargetSchemaID: target.ID,
					TargetField:    pkField.Name,
					Type:           relType,
					Confidence:     confidence,
				}
			}
		}

		if bestRel != nil {
			rels = append(rels, *bestRel)
		}
	}

	return rels
}
