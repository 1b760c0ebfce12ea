package schemaengine

import "sort"

// FieldDescriptor is one field's output record, per §3.
type FieldDescriptor struct {
	Name             string   `json:"name"`
	Type             FieldType `json:"type"`
	Confidence       float64  `json:"confidence"`
	IsRequired       bool     `json:"isRequired"`
	IsNullable       bool     `json:"isNullable"`
	IsUnique         bool     `json:"isUnique"`
	IsPrimaryKey     bool     `json:"isPrimaryKey"`
	IsForeignKey     bool     `json:"isForeignKey"`
	EnumValues       []string `json:"enumValues,omitempty"`
	ArrayItemType    FieldType `json:"arrayItemType,omitempty"`
	MinLength        *int     `json:"minLength,omitempty"`
	MaxLength        *int     `json:"maxLength,omitempty"`
	Min              *float64 `json:"min,omitempty"`
	Max              *float64 `json:"max,omitempty"`
	Pattern          string   `json:"pattern,omitempty"`
	SampleValues     []any    `json:"sampleValues,omitempty"`
	InferredFromCount int     `json:"inferredFromCount"`

	// Preserved from prior user edits across merges (§3 "Field descriptor").
	DisplayName   string `json:"displayName,omitempty"`
	Description   string `json:"description,omitempty"`
	DisplayFormat string `json:"displayFormat,omitempty"`
}

// Schema is the top-level detection output, per §3.
type Schema struct {
	ID             string            `json:"id"`
	Name           string            `json:"name"`
	Description    string            `json:"description,omitempty"`
	DataSourceID   string            `json:"dataSourceId"`
	EndpointID     string            `json:"endpointId,omitempty"`
	Fields         []FieldDescriptor `json:"fields"`
	DetectedAt     int64             `json:"detectedAt"` // unix millis, stamped by the caller; DetectSchema leaves it 0
	SampleSize     int               `json:"sampleSize"`
	AutoDetected   bool              `json:"autoDetected"`
	Relationships  []Relationship    `json:"relationships,omitempty"`
	CRUDEnabled    bool              `json:"crudEnabled"`
	CRUDEndpoints  map[string]string `json:"crudEndpoints,omitempty"`
	CreatedAt      int64             `json:"createdAt"`
	UpdatedAt      int64             `json:"updatedAt"`
}

// FieldByName returns the field descriptor with the given name, if any.
func (s *Schema) FieldByName(name string) *FieldDescriptor {
	for i := range s.Fields {
		if s.Fields[i].Name == name {
			return &s.Fields[i]
		}
	}
	return nil
}

// PrimaryKeyField returns the schema's primary key field, if one was
// detected. At most one field ever carries IsPrimaryKey=true (§8 invariant 2).
func (s *Schema) PrimaryKeyField() *FieldDescriptor {
	for i := range s.Fields {
		if s.Fields[i].IsPrimaryKey {
			return &s.Fields[i]
		}
	}
	return nil
}

// SchemaComparison is compareSchemas' output, per §4.11.
type SchemaComparison struct {
	Added       []string `json:"added"`
	Removed     []string `json:"removed"`
	ChangedType []string `json:"changedType"`
	Similarity  float64  `json:"similarity"`
	Compatible  bool     `json:"compatible"`
}

// compareSchemas implements §4.11's compareSchemas and §8 invariant 11
// (identical schemas compare as fully similar and compatible).
func compareSchemas(old, newSchema *Schema) SchemaComparison {
	oldFields := make(map[string]FieldType, len(old.Fields))
	for _, f := range old.Fields {
		oldFields[f.Name] = f.Type
	}
	newFields := make(map[string]FieldType, len(newSchema.Fields))
	for _, f := range newSchema.Fields {
		newFields[f.Name] = f.Type
	}

	var added, removed, changedType []string
	unchanged := 0

	for name, t := range newFields {
		oldType, existed := oldFields[name]
		if !existed {
			added = append(added, name)
			continue
		}
		if oldType != t {
			changedType = append(changedType, name)
		} else {
			unchanged++
		}
	}
	for name := range oldFields {
		if _, stillPresent := newFields[name]; !stillPresent {
			removed = append(removed, name)
		}
	}

	sort.Strings(added)
	sort.Strings(removed)
	sort.Strings(changedType)

	maxLen := len(old.Fields)
	if len(newSchema.Fields) > maxLen {
		maxLen = len(newSchema.Fields)
	}
	similarity := 1.0
	if maxLen > 0 {
		similarity = float64(unchanged) / float64(maxLen)
	}

	return SchemaComparison{
		Added:       added,
		Removed:     removed,
		ChangedType: changedType,
		Similarity:  similarity,
		Compatible:  len(removed) == 0 && len(changedType) == 0,
	}
}
