package schemaengine

import "math"

// FieldType is the semantic type tag assigned to a field or a single value,
// per §1 item 2's enumeration.
type FieldType string

const (
	TypeString   FieldType = "string"
	TypeInteger  FieldType = "integer"
	TypeNumber   FieldType = "number"
	TypeBoolean  FieldType = "boolean"
	TypeDate     FieldType = "date"
	TypeDateTime FieldType = "datetime"
	TypeTime     FieldType = "time"
	TypeEmail    FieldType = "email"
	TypeURL      FieldType = "url"
	TypeUUID     FieldType = "uuid"
	TypeEnum     FieldType = "enum"
	TypeArray    FieldType = "array"
	TypeObject   FieldType = "object"
	TypeJSON     FieldType = "json"
	TypeUnknown  FieldType = "unknown"
)

// valueDetection is the result of classifying a single JSON value, feeding
// the Type Analyzer's statistics collection (§4.3).
type valueDetection struct {
	Type       FieldType
	Confidence float64
	Pattern    string // set only for string values; see detectStringType.
}

// detectValueType classifies a single decoded JSON value (nil, bool,
// float64, string, []any, map[string]any — the shapes encoding/json and
// goccy/go-json produce for `any`) per §4.3's per-value detection rules.
// There is no distinct bigint or Date-object shape in decoded Go JSON, so
// those teacher-language-specific branches collapse into the integer/number
// and object cases respectively; strings are delegated to the pattern
// analyzer, which is where date/datetime/time/email/url/uuid resolve from.
func detectValueType(v any) valueDetection {
	switch val := v.(type) {
	case nil:
		return valueDetection{Type: TypeUnknown, Confidence: 1.0}
	case bool:
		return valueDetection{Type: TypeBoolean, Confidence: 1.0}
	case float64:
		if math.IsInf(val, 0) || math.IsNaN(val) {
			return valueDetection{Type: TypeNumber, Confidence: 0.8}
		}
		if isWholeNumber(val) {
			return valueDetection{Type: TypeInteger, Confidence: 1.0}
		}
		return valueDetection{Type: TypeNumber, Confidence: 1.0}
	case string:
		det := detectStringType(val)
		return valueDetection{Type: det.Type, Confidence: det.Confidence, Pattern: det.Pattern}
	case []any:
		return valueDetection{Type: TypeArray, Confidence: 1.0}
	case map[string]any:
		return valueDetection{Type: TypeObject, Confidence: 1.0}
	default:
		// Functions, channels, and other non-JSON Go values cannot appear in
		// decoded JSON; treated like the teacher's "unknown" fallback.
		return valueDetection{Type: TypeUnknown, Confidence: 0.5}
	}
}

// isWholeNumber reports whether f has no fractional part, the same
// exactness test the teacher's getDataType uses (there via big.Float, here
// via a direct comparison since JSON numbers decode to float64 and we don't
// need arbitrary precision to distinguish 3 from 3.5).
func isWholeNumber(f float64) bool {
	return f == math.Trunc(f)
}

// isNullish reports whether v represents JSON null or an absent key. Go's
// decoded `any` has no "undefined" distinct from "key absent"; callers that
// need the undefined/null split (the Sample Extractor, when enumerating
// field values across samples of differing shape) track key presence
// themselves rather than relying on this helper.
func isNullish(v any) bool {
	return v == nil
}
