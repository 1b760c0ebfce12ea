package schemaengine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFieldByName(t *testing.T) {
	s := &Schema{Fields: []FieldDescriptor{{Name: "id"}, {Name: "email"}}}
	f := s.FieldByName("email")
	require.NotNil(t, f)
	assert.Equal(t, "email", f.Name)
	assert.Nil(t, s.FieldByName("missing"))
}

func TestPrimaryKeyField(t *testing.T) {
	s := &Schema{Fields: []FieldDescriptor{{Name: "id", IsPrimaryKey: true}, {Name: "email"}}}
	pk := s.PrimaryKeyField()
	require.NotNil(t, pk)
	assert.Equal(t, "id", pk.Name)
}

func TestCompareSchemasIdenticalIsFullySimilar(t *testing.T) {
	s := &Schema{Fields: []FieldDescriptor{
		{Name: "id", Type: TypeInteger},
		{Name: "email", Type: TypeEmail},
	}}
	cmp := compareSchemas(s, s)
	assert.Empty(t, cmp.Added)
	assert.Empty(t, cmp.Removed)
	assert.Empty(t, cmp.ChangedType)
	assert.Equal(t, 1.0, cmp.Similarity)
	assert.True(t, cmp.Compatible)
}

func TestCompareSchemasDetectsAddedRemovedAndTypeChange(t *testing.T) {
	old := &Schema{Fields: []FieldDescriptor{
		{Name: "id", Type: TypeInteger},
		{Name: "legacy_flag", Type: TypeBoolean},
		{Name: "amount", Type: TypeInteger},
	}}
	newSchema := &Schema{Fields: []FieldDescriptor{
		{Name: "id", Type: TypeInteger},
		{Name: "amount", Type: TypeNumber},
		{Name: "notes", Type: TypeString},
	}}
	cmp := compareSchemas(old, newSchema)
	assert.Equal(t, []string{"notes"}, cmp.Added)
	assert.Equal(t, []string{"legacy_flag"}, cmp.Removed)
	assert.Equal(t, []string{"amount"}, cmp.ChangedType)
	assert.False(t, cmp.Compatible)
}

func TestCompareSchemasSymmetricRemovedAdded(t *testing.T) {
	a := &Schema{Fields: []FieldDescriptor{{Name: "x", Type: TypeString}}}
	b := &Schema{Fields: []FieldDescriptor{{Name: "y", Type: TypeString}}}
	ab := compareSchemas(a, b)
	ba := compareSchemas(b, a)
	assert.Equal(t, ab.Added, ba.Removed)
	assert.Equal(t, ab.Removed, ba.Added)
}
