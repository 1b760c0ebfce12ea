package schemaengine

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmptyDataErrorCodeAndMessage(t *testing.T) {
	err := NewEmptyDataError()
	assert.Equal(t, CodeEmptyData, err.Code)
	assert.Contains(t, err.Error(), "no samples")
}

func TestInsufficientSamplesErrorDetails(t *testing.T) {
	err := NewInsufficientSamplesError(2, 5)
	assert.Equal(t, CodeInsufficientSample, err.Code)
	assert.Equal(t, 2, err.Details["have"])
	assert.Equal(t, 5, err.Details["want"])
}

func TestInvalidDataErrorUnwraps(t *testing.T) {
	cause := errors.New("boom")
	err := NewInvalidDataError(cause)
	assert.ErrorIs(t, err, cause)
}

func TestWrapErrorPreservesTypedError(t *testing.T) {
	original := NewEmptyDataError()
	wrapped := wrapError(original)
	var ede *EmptyDataError
	require.True(t, errors.As(wrapped, &ede))
	assert.Same(t, original, ede)
}

func TestWrapErrorClassifiesUnknown(t *testing.T) {
	wrapped := wrapError(errors.New("something went sideways"))
	var sde *SchemaDetectionError
	require.True(t, errors.As(wrapped, &sde))
	assert.Equal(t, CodeUnknown, sde.Code)
}

func TestWrapErrorNilPassesThrough(t *testing.T) {
	assert.Nil(t, wrapError(nil))
}

func TestSchemaDetectionErrorMarshalJSON(t *testing.T) {
	err := NewSchemaNotFoundError("schema_123")
	data, marshalErr := err.MarshalJSON()
	require.NoError(t, marshalErr)
	assert.Contains(t, string(data), "SCHEMA_NOT_FOUND")
	assert.Contains(t, string(data), "schema_123")
}
