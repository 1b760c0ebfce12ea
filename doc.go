// Package schemaengine infers a field-level schema, a primary key, a
// pagination pattern, and ranked widget suggestions from a handful of JSON
// samples drawn from an unknown HTTP endpoint. It is a pure transform:
// samples in, an ExtendedDetectionResult out. It does not fetch data, parse
// non-JSON payloads, enforce schemas at runtime, or render widgets.
package schemaengine
