package schemaengine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoreWidgetRuleMinFieldsGate(t *testing.T) {
	rule := widgetRule{MinFields: 3}
	_, ok := scoreWidgetRule(rule, []FieldDescriptor{{Name: "a"}})
	assert.False(t, ok)
}

func TestScoreWidgetRuleConfidenceCapped(t *testing.T) {
	rule := widgetRule{MinFields: 1, Multiplier: 10}
	score, ok := scoreWidgetRule(rule, []FieldDescriptor{{Name: "a", Type: TypeString}})
	require.True(t, ok)
	assert.LessOrEqual(t, score, 0.95)
}

func TestGetWidgetSuggestionsDataTableForTabularSchema(t *testing.T) {
	schema := &Schema{
		Fields: []FieldDescriptor{
			{Name: "id", Type: TypeInteger},
			{Name: "name", Type: TypeString},
			{Name: "email", Type: TypeEmail},
		},
	}
	suggestions := getWidgetSuggestions(schema)
	require.NotEmpty(t, suggestions)
	found := false
	for _, s := range suggestions {
		if s.WidgetID == "data-table" {
			found = true
		}
	}
	assert.True(t, found)
}

func TestGetWidgetSuggestionsLineChartForTimeSeries(t *testing.T) {
	schema := &Schema{
		Fields: []FieldDescriptor{
			{Name: "recorded_at", Type: TypeDateTime},
			{Name: "value", Type: TypeNumber},
		},
	}
	suggestions := getWidgetSuggestions(schema)
	require.NotEmpty(t, suggestions)
	assert.Equal(t, "line-chart", suggestions[0].WidgetID)
}

func TestGetWidgetSuggestionsOrderedByConfidenceDescending(t *testing.T) {
	schema := &Schema{
		Fields: []FieldDescriptor{
			{Name: "id", Type: TypeInteger},
			{Name: "status", Type: TypeEnum, EnumValues: []string{"open", "closed"}},
			{Name: "amount", Type: TypeNumber},
			{Name: "created_at", Type: TypeDateTime},
			{Name: "title", Type: TypeString},
		},
	}
	suggestions := getWidgetSuggestions(schema)
	require.NotEmpty(t, suggestions)
	for i := 1; i < len(suggestions); i++ {
		assert.LessOrEqual(t, suggestions[i].Confidence, suggestions[i-1].Confidence)
	}
}

func TestKanbanBoardRequiresStatusEnum(t *testing.T) {
	schema := &Schema{
		Fields: []FieldDescriptor{
			{Name: "status", Type: TypeEnum, EnumValues: []string{"todo", "doing", "done"}},
			{Name: "title", Type: TypeString},
		},
	}
	suggestions := getWidgetSuggestions(schema)
	found := false
	for _, s := range suggestions {
		if s.WidgetID == "kanban-board" {
			found = true
			assert.Equal(t, "status", s.SuggestedConfig["groupByField"])
		}
	}
	assert.True(t, found)
}

func TestMapViewRequiresLatLngPair(t *testing.T) {
	schema := &Schema{
		Fields: []FieldDescriptor{
			{Name: "latitude", Type: TypeNumber},
			{Name: "longitude", Type: TypeNumber},
			{Name: "name", Type: TypeString},
		},
	}
	suggestions := getWidgetSuggestions(schema)
	found := false
	for _, s := range suggestions {
		if s.WidgetID == "map-view" {
			found = true
		}
	}
	assert.True(t, found)
}
