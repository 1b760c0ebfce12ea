package schemaengine

import gojson "github.com/goccy/go-json"

// jsonMarshal and jsonUnmarshal centralize JSON codec usage on goccy/go-json,
// the encoder the teacher library declares and benchmarks against
// encoding/json for exactly this kind of hot, allocation-sensitive path.
func jsonMarshal(v any) ([]byte, error) {
	return gojson.Marshal(v)
}

func jsonUnmarshal(data []byte, v any) error {
	return gojson.Unmarshal(data, v)
}
