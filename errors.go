package schemaengine

import (
	"errors"
	"fmt"
)

// Error codes surfaced to callers, see spec §6/§7.
const (
	CodeEmptyData          = "EMPTY_DATA"
	CodeInvalidData        = "INVALID_DATA"
	CodeInsufficientSample = "INSUFFICIENT_SAMPLES"
	CodeAnalysisTimeout    = "ANALYSIS_TIMEOUT"
	CodeConnectionFailed   = "CONNECTION_FAILED"
	CodePersistenceFailed  = "PERSISTENCE_FAILED"
	CodeSchemaNotFound     = "SCHEMA_NOT_FOUND"
	CodeUnknown            = "UNKNOWN_ERROR"
)

// === Extraction related errors ===
var (
	// ErrNoSamples is returned when the sample set resolves to zero items.
	ErrNoSamples = errors.New("no samples to extract fields from")

	// ErrNotJSONObjectOrArray is returned when the root sample is neither
	// an array nor an object and cannot be coerced into a sample set.
	ErrNotJSONObjectOrArray = errors.New("root value is not a JSON object or array")
)

// === Structure related errors ===
var (
	// ErrIncompatibleStructures is returned by areStructuresCompatible callers
	// that choose to treat incompatibility as fatal.
	ErrIncompatibleStructures = errors.New("response structures are not compatible")
)

// === Relationship related errors ===
var (
	// ErrUnknownTargetSchema is returned when a relationship names a target
	// schema absent from the supplied existingSchemas collection.
	ErrUnknownTargetSchema = errors.New("relationship target schema not found")
)

// === Orchestration related errors ===
var (
	// ErrNilOptions is returned when detectSchema is called with a nil options value.
	ErrNilOptions = errors.New("detection options cannot be nil")

	// ErrMissingDataSourceID is returned when options.DataSourceID is empty.
	ErrMissingDataSourceID = errors.New("dataSourceId is required")
)

// SchemaDetectionError is the typed error returned to callers of the public
// API. It always carries a stable Code and may carry structured Details.
// Any error raised inside an analyzer that is not already one of the
// sentinel-backed typed errors below is wrapped into a SchemaDetectionError
// with Code CodeUnknown by wrapError.
type SchemaDetectionError struct {
	Code    string
	Message string
	Details map[string]any
	cause   error
}

func (e *SchemaDetectionError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.cause != nil {
		return e.cause.Error()
	}
	return e.Code
}

func (e *SchemaDetectionError) Unwrap() error { return e.cause }

// MarshalJSON renders the error in the JSON-serializable shape callers expect
// from §6: a code, a message, and optional details.
func (e *SchemaDetectionError) MarshalJSON() ([]byte, error) {
	return jsonMarshal(map[string]any{
		"code":    e.Code,
		"message": e.Error(),
		"details": e.Details,
	})
}

func newDetectionError(code, message string, details map[string]any) *SchemaDetectionError {
	return &SchemaDetectionError{Code: code, Message: message, Details: details}
}

// EmptyDataError is returned when the sample extractor finds zero usable
// samples in the supplied input.
type EmptyDataError struct{ *SchemaDetectionError }

// NewEmptyDataError builds an EmptyDataError with actionable guidance.
func NewEmptyDataError() *EmptyDataError {
	e := newDetectionError(CodeEmptyData,
		"no samples found in response data; fetch at least one record from the endpoint", nil)
	e.cause = ErrNoSamples
	return &EmptyDataError{e}
}

// InvalidDataError is returned when sampleData cannot be interpreted as JSON
// at all (not an object, array, or primitive the extractor understands).
type InvalidDataError struct{ *SchemaDetectionError }

// NewInvalidDataError wraps the underlying parse/shape error.
func NewInvalidDataError(cause error) *InvalidDataError {
	e := newDetectionError(CodeInvalidData, "sample data is not valid JSON shape", nil)
	e.cause = cause
	return &InvalidDataError{e}
}

// InsufficientSamplesError reports that a caller-required minimum sample
// size was not met. The engine's own pipeline and merge never return it.
type InsufficientSamplesError struct{ *SchemaDetectionError }

// NewInsufficientSamplesError reports how many samples were available vs required.
func NewInsufficientSamplesError(have, want int) *InsufficientSamplesError {
	e := newDetectionError(CodeInsufficientSample,
		fmt.Sprintf("only %d samples available, %d required; fetch more data samples for improved accuracy", have, want),
		map[string]any{"have": have, "want": want})
	return &InsufficientSamplesError{e}
}

// AnalysisTimeoutError reports a cooperative deadline elapsing between
// pipeline stages. DetectSchema has no deadline and never returns it.
type AnalysisTimeoutError struct{ *SchemaDetectionError }

// NewAnalysisTimeoutError reports which stage was interrupted.
func NewAnalysisTimeoutError(stage string) *AnalysisTimeoutError {
	e := newDetectionError(CodeAnalysisTimeout,
		fmt.Sprintf("analysis timed out during %s", stage),
		map[string]any{"stage": stage})
	return &AnalysisTimeoutError{e}
}

// PersistenceError and SchemaNotFoundError are never raised by the engine
// itself — they exist so a persistence collaborator embedding this package
// can report failures through the same typed-error shape (§7: "only raised
// by the persistence collaborator; the engine never catches and
// reclassifies them").
type PersistenceError struct{ *SchemaDetectionError }

// NewPersistenceError wraps a storage-layer failure.
func NewPersistenceError(cause error) *PersistenceError {
	e := newDetectionError(CodePersistenceFailed, "failed to persist schema", nil)
	e.cause = cause
	return &PersistenceError{e}
}

type SchemaNotFoundError struct{ *SchemaDetectionError }

// NewSchemaNotFoundError reports a missing schema id.
func NewSchemaNotFoundError(id string) *SchemaNotFoundError {
	e := newDetectionError(CodeSchemaNotFound,
		fmt.Sprintf("schema %q not found", id),
		map[string]any{"schemaId": id})
	return &SchemaNotFoundError{e}
}

// wrapError maps an arbitrary error into a SchemaDetectionError, preserving
// any typed error already in the chain and otherwise classifying it as
// CodeUnknown. Analyzers do not swallow errors silently except in the
// narrow, explicitly documented places (JSON-in-string detection, unique
// value tracking on circular objects, canonicalization overflow).
func wrapError(err error) error {
	if err == nil {
		return nil
	}
	var sde *SchemaDetectionError
	if errors.As(err, &sde) {
		return err
	}
	var ede *EmptyDataError
	if errors.As(err, &ede) {
		return err
	}
	var ide *InvalidDataError
	if errors.As(err, &ide) {
		return err
	}
	var ise *InsufficientSamplesError
	if errors.As(err, &ise) {
		return err
	}
	var ate *AnalysisTimeoutError
	if errors.As(err, &ate) {
		return err
	}
	wrapped := newDetectionError(CodeUnknown, err.Error(), nil)
	wrapped.cause = err
	return wrapped
}
