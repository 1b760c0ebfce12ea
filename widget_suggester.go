package schemaengine

import "sort"

// WidgetSuggestion is the Widget Suggester's per-rule output, per §3.
type WidgetSuggestion struct {
	WidgetID        string         `json:"widgetId"`
	WidgetName      string         `json:"widgetName"`
	Confidence      float64        `json:"confidence"`
	Reason          string         `json:"reason"`
	SuggestedConfig map[string]any `json:"suggestedConfig,omitempty"`
}

// widgetRule is a declarative rule record, per §4.10 and §9's "rule engine
// vs. class hierarchy" note: the rule list is data, not code.
type widgetRule struct {
	ID            string
	Name          string
	RequiredTypes []FieldType
	OptionalTypes []FieldType
	MinFields     int
	MaxFields     int // 0 means unbounded
	Multiplier    float64
	Predicate     func(fields []FieldDescriptor) bool
	BuildConfig   func(fields []FieldDescriptor) map[string]any
	BuildReason   func(fields []FieldDescriptor) string
}

func displayablePrimitive(t FieldType) bool {
	switch t {
	case TypeString, TypeInteger, TypeNumber, TypeBoolean, TypeDate, TypeDateTime,
		TypeTime, TypeEmail, TypeURL, TypeUUID, TypeEnum:
		return true
	default:
		return false
	}
}

func fieldsOfType(fields []FieldDescriptor, t FieldType) []FieldDescriptor {
	var out []FieldDescriptor
	for _, f := range fields {
		if f.Type == t {
			out = append(out, f)
		}
	}
	return out
}

func firstFieldMatchingName(fields []FieldDescriptor, candidates []string) *FieldDescriptor {
	for i := range fields {
		if containsAnyFold(fields[i].Name, candidates) {
			return &fields[i]
		}
	}
	return nil
}

func numericFields(fields []FieldDescriptor) []FieldDescriptor {
	var out []FieldDescriptor
	for _, f := range fields {
		if f.Type == TypeInteger || f.Type == TypeNumber {
			out = append(out, f)
		}
	}
	return out
}

func fieldNames(fields []FieldDescriptor) []string {
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = f.Name
	}
	return names
}

// widgetRules is the built-in rule set from §4.10's table.
var widgetRules = []widgetRule{
	{
		ID:            "data-table",
		Name:          "Data Table",
		RequiredTypes: nil,
		MinFields:     2,
		Predicate: func(fields []FieldDescriptor) bool {
			count := 0
			for _, f := range fields {
				if displayablePrimitive(f.Type) {
					count++
				}
			}
			return count >= 2
		},
		BuildConfig: func(fields []FieldDescriptor) map[string]any {
			var cols []string
			for _, f := range fields {
				if !displayablePrimitive(f.Type) {
					continue
				}
				cols = append(cols, f.Name)
				if len(cols) >= 10 {
					break
				}
			}
			filterable := make([]string, 0)
			for _, f := range fields {
				if f.Type == TypeString || f.Type == TypeEnum || f.Type == TypeDate {
					filterable = append(filterable, f.Name)
				}
			}
			return map[string]any{
				"columns":    cols,
				"sortable":   true,
				"filterable": filterable,
			}
		},
		BuildReason: func(fields []FieldDescriptor) string {
			return "Multiple displayable fields support a tabular view"
		},
	},
	{
		ID:            "line-chart",
		Name:          "Line Chart",
		RequiredTypes: []FieldType{TypeDate, TypeDateTime},
		OptionalTypes: []FieldType{TypeInteger, TypeNumber},
		MinFields:     2,
		Predicate: func(fields []FieldDescriptor) bool {
			hasDate := len(fieldsOfType(fields, TypeDate)) > 0 || len(fieldsOfType(fields, TypeDateTime)) > 0
			return hasDate && len(numericFields(fields)) > 0
		},
		BuildConfig: func(fields []FieldDescriptor) map[string]any {
			dateField := firstNonNilField(fieldsOfType(fields, TypeDate), fieldsOfType(fields, TypeDateTime))
			series := numericFields(fields)
			if len(series) > 3 {
				series = series[:3]
			}
			cfg := map[string]any{"series": fieldNames(series)}
			if dateField != nil {
				cfg["xAxis"] = map[string]any{"field": dateField.Name}
			}
			return cfg
		},
		BuildReason: func(fields []FieldDescriptor) string {
			return "A date field paired with numeric fields suggests a time series"
		},
	},
	{
		ID:            "bar-chart",
		Name:          "Bar Chart",
		RequiredTypes: []FieldType{TypeEnum, TypeString},
		OptionalTypes: []FieldType{TypeInteger, TypeNumber},
		MinFields:     2,
		Predicate: func(fields []FieldDescriptor) bool {
			hasCategory := len(fieldsOfType(fields, TypeEnum)) > 0 || len(fieldsOfType(fields, TypeString)) > 0
			return hasCategory && len(numericFields(fields)) > 0
		},
		BuildConfig: func(fields []FieldDescriptor) map[string]any {
			category := firstNonNilField(fieldsOfType(fields, TypeEnum), fieldsOfType(fields, TypeString))
			series := numericFields(fields)
			cfg := map[string]any{}
			if category != nil {
				cfg["xAxis"] = map[string]any{"field": category.Name}
			}
			if len(series) > 0 {
				cfg["series"] = []string{series[0].Name}
			}
			return cfg
		},
		BuildReason: func(fields []FieldDescriptor) string {
			return "A categorical field paired with a numeric field suggests a bar comparison"
		},
	},
	{
		ID:            "pie-chart",
		Name:          "Pie Chart",
		RequiredTypes: []FieldType{TypeEnum},
		OptionalTypes: []FieldType{TypeInteger, TypeNumber},
		MinFields:     1,
		Predicate: func(fields []FieldDescriptor) bool {
			for _, f := range fieldsOfType(fields, TypeEnum) {
				if len(f.EnumValues) > 0 && len(f.EnumValues) <= 10 {
					return true
				}
			}
			return false
		},
		BuildConfig: func(fields []FieldDescriptor) map[string]any {
			var label *FieldDescriptor
			for i, f := range fields {
				if f.Type == TypeEnum && len(f.EnumValues) <= 10 {
					label = &fields[i]
					break
				}
			}
			cfg := map[string]any{}
			if label != nil {
				cfg["labelField"] = label.Name
			}
			if nums := numericFields(fields); len(nums) > 0 {
				cfg["valueField"] = nums[0].Name
			}
			return cfg
		},
		BuildReason: func(fields []FieldDescriptor) string {
			return "A small enumeration suggests proportional breakdown"
		},
	},
	{
		ID:            "stats-card",
		Name:          "Stats Card",
		RequiredTypes: []FieldType{TypeInteger, TypeNumber},
		MinFields:     1,
		MaxFields:     6,
		Predicate: func(fields []FieldDescriptor) bool {
			n := len(numericFields(fields))
			return n >= 1 && n <= 6
		},
		BuildConfig: func(fields []FieldDescriptor) map[string]any {
			nums := numericFields(fields)
			cfg := map[string]any{"aggregation": "sum"}
			if len(nums) > 0 {
				cfg["field"] = nums[0].Name
			}
			return cfg
		},
		BuildReason: func(fields []FieldDescriptor) string {
			return "A small number of numeric fields suggests summary statistics"
		},
	},
	{
		ID:        "kanban-board",
		Name:      "Kanban Board",
		MinFields: 1,
		Predicate: func(fields []FieldDescriptor) bool {
			return statusEnumField(fields) != nil
		},
		BuildConfig: func(fields []FieldDescriptor) map[string]any {
			status := statusEnumField(fields)
			title := firstFieldMatchingName(fields, []string{"title", "name", "subject"})
			cfg := map[string]any{}
			if status != nil {
				cfg["groupByField"] = status.Name
				cfg["columns"] = status.EnumValues
			}
			if title != nil {
				cfg["titleField"] = title.Name
			}
			return cfg
		},
		BuildReason: func(fields []FieldDescriptor) string {
			return "A status-like enumeration suggests a kanban board"
		},
	},
	{
		ID:        "map-view",
		Name:      "Map View",
		MinFields: 2,
		Predicate: func(fields []FieldDescriptor) bool {
			return latLngFields(fields) != (latLng{})
		},
		BuildConfig: func(fields []FieldDescriptor) map[string]any {
			ll := latLngFields(fields)
			cfg := map[string]any{
				"latitudeField":  ll.Lat,
				"longitudeField": ll.Lng,
			}
			if label := firstFieldMatchingName(fields, []string{"name", "title", "label"}); label != nil {
				cfg["labelField"] = label.Name
			}
			return cfg
		},
		BuildReason: func(fields []FieldDescriptor) string {
			return "Latitude and longitude fields suggest a geographic view"
		},
	},
	{
		ID:            "timeline",
		Name:          "Timeline",
		RequiredTypes: []FieldType{TypeDate, TypeDateTime},
		MinFields:     2,
		Predicate: func(fields []FieldDescriptor) bool {
			hasDate := len(fieldsOfType(fields, TypeDate)) > 0 || len(fieldsOfType(fields, TypeDateTime)) > 0
			hasString := len(fieldsOfType(fields, TypeString)) > 0
			return hasDate && hasString
		},
		BuildConfig: func(fields []FieldDescriptor) map[string]any {
			dateField := firstNonNilField(fieldsOfType(fields, TypeDate), fieldsOfType(fields, TypeDateTime))
			title := firstFieldMatchingName(fields, []string{"title", "name", "event"})
			desc := firstFieldMatchingName(fields, []string{"description", "content", "body"})
			cfg := map[string]any{}
			if dateField != nil {
				cfg["dateField"] = dateField.Name
			}
			if title != nil {
				cfg["titleField"] = title.Name
			}
			if desc != nil {
				cfg["descriptionField"] = desc.Name
			}
			return cfg
		},
		BuildReason: func(fields []FieldDescriptor) string {
			return "A date field paired with descriptive text suggests a timeline"
		},
	},
	{
		ID:        "detail-view",
		Name:      "Detail View",
		MinFields: 3,
		Predicate: func(fields []FieldDescriptor) bool {
			count := 0
			for _, f := range fields {
				if displayablePrimitive(f.Type) {
					count++
				}
			}
			return count >= 3
		},
		BuildConfig: func(fields []FieldDescriptor) map[string]any {
			var names []string
			for _, f := range fields {
				if displayablePrimitive(f.Type) {
					names = append(names, f.Name)
				}
			}
			return map[string]any{
				"sections": []map[string]any{
					{"title": "Details", "fields": names},
				},
			}
		},
		BuildReason: func(fields []FieldDescriptor) string {
			return "Enough fields are present to justify a full detail layout"
		},
	},
}

type latLng struct {
	Lat string
	Lng string
}

func latLngFields(fields []FieldDescriptor) latLng {
	latCandidates := []string{"lat", "latitude", "geo_lat"}
	lngCandidates := []string{"lng", "lon", "longitude", "geo_lng", "geo_lon"}
	var lat, lng *FieldDescriptor
	for i, f := range fields {
		if f.Type != TypeInteger && f.Type != TypeNumber {
			continue
		}
		if lat == nil && equalsAnyFold(f.Name, latCandidates) {
			lat = &fields[i]
		}
		if lng == nil && equalsAnyFold(f.Name, lngCandidates) {
			lng = &fields[i]
		}
	}
	if lat == nil || lng == nil {
		return latLng{}
	}
	return latLng{Lat: lat.Name, Lng: lng.Name}
}

func statusEnumField(fields []FieldDescriptor) *FieldDescriptor {
	for i, f := range fields {
		if f.Type != TypeEnum {
			continue
		}
		if containsAnyFold(f.Name, []string{"status", "state", "stage"}) {
			return &fields[i]
		}
	}
	return nil
}

func firstNonNilField(groups ...[]FieldDescriptor) *FieldDescriptor {
	for _, g := range groups {
		if len(g) > 0 {
			return &g[0]
		}
	}
	return nil
}

// scoreWidgetRule implements §4.10's scoring formula.
func scoreWidgetRule(rule widgetRule, fields []FieldDescriptor) (float64, bool) {
	if len(fields) < rule.MinFields {
		return 0, false
	}
	if rule.MaxFields > 0 && len(fields) > rule.MaxFields {
		return 0, false
	}
	if rule.Predicate != nil && !rule.Predicate(fields) {
		return 0, false
	}

	matchedRequired := 0
	for _, t := range rule.RequiredTypes {
		if len(fieldsOfType(fields, t)) > 0 {
			matchedRequired++
		}
	}
	if len(rule.RequiredTypes) > 0 && matchedRequired == 0 {
		return 0, false
	}

	matchedOptional := 0
	for _, t := range rule.OptionalTypes {
		if len(fieldsOfType(fields, t)) > 0 {
			matchedOptional++
		}
	}

	base := 0.5
	if len(rule.RequiredTypes) > 0 {
		base += 0.2 * (float64(matchedRequired) / float64(len(rule.RequiredTypes)))
	}
	if len(rule.OptionalTypes) > 0 {
		base += 0.2 * (float64(matchedOptional) / float64(len(rule.OptionalTypes)))
	}
	base += 0.1 * minFloat(1, float64(len(fields))/5)

	multiplier := rule.Multiplier
	if multiplier == 0 {
		multiplier = 1
	}
	final := base * multiplier
	return clamp(final, 0, 0.95), true
}

func minFloat(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

// getWidgetSuggestions evaluates every rule against the schema's fields and
// returns the ranked result, per §4.10 and §6's public surface.
func getWidgetSuggestions(schema *Schema) []WidgetSuggestion {
	var suggestions []WidgetSuggestion
	for _, rule := range widgetRules {
		confidence, matched := scoreWidgetRule(rule, schema.Fields)
		if !matched {
			continue
		}
		reason := ""
		if rule.BuildReason != nil {
			reason = rule.BuildReason(schema.Fields)
		}
		var cfg map[string]any
		if rule.BuildConfig != nil {
			cfg = rule.BuildConfig(schema.Fields)
		}
		suggestions = append(suggestions, WidgetSuggestion{
			WidgetID:        rule.ID,
			WidgetName:      rule.Name,
			Confidence:      confidence,
			Reason:          reason,
			SuggestedConfig: cfg,
		})
	}

	// Stable sort preserves the declaration order already present in
	// widgetRules for equal-confidence ties, per §4.10's final ordering rule.
	sort.SliceStable(suggestions, func(i, j int) bool {
		return suggestions[i].Confidence > suggestions[j].Confidence
	})
	return suggestions
}
