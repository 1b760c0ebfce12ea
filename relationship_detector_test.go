package schemaengine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsForeignKeyCandidate(t *testing.T) {
	assert.True(t, isForeignKeyCandidate(&FieldDescriptor{Name: "user_id", Type: TypeInteger}))
	assert.True(t, isForeignKeyCandidate(&FieldDescriptor{Name: "authorId", Type: TypeUUID}))
	assert.False(t, isForeignKeyCandidate(&FieldDescriptor{Name: "id", Type: TypeInteger, IsPrimaryKey: true}))
	assert.False(t, isForeignKeyCandidate(&FieldDescriptor{Name: "title", Type: TypeString}))
}

func TestDeriveEntityName(t *testing.T) {
	assert.Equal(t, "user", deriveEntityName("user_id"))
	assert.Equal(t, "author", deriveEntityName("authorId"))
	assert.Equal(t, "order", deriveEntityName("ref_order"))
}

func TestNameScoreFor(t *testing.T) {
	assert.Equal(t, 1.0, nameScoreFor("user", "users"))
	assert.Equal(t, 0.0, nameScoreFor("user", "products"))
}

func TestFindTargetPrimaryKey(t *testing.T) {
	target := &Schema{
		Fields: []FieldDescriptor{
			{Name: "id", Type: TypeInteger, IsPrimaryKey: true},
			{Name: "email", Type: TypeEmail},
		},
	}
	f, fallback := findTargetPrimaryKey(target)
	require.NotNil(t, f)
	assert.Equal(t, "id", f.Name)
	assert.False(t, fallback)

	noflag := &Schema{Fields: []FieldDescriptor{{Name: "id", Type: TypeInteger}}}
	f2, fallback2 := findTargetPrimaryKey(noflag)
	require.NotNil(t, f2)
	assert.Equal(t, "id", f2.Name)
	assert.False(t, fallback2)

	none := &Schema{Fields: []FieldDescriptor{{Name: "title", Type: TypeString}}}
	f3, fallback3 := findTargetPrimaryKey(none)
	assert.Nil(t, f3)
	assert.True(t, fallback3)
}

func TestTypeScoreFor(t *testing.T) {
	assert.Equal(t, 1.0, typeScoreFor(TypeInteger, TypeInteger))
	assert.Equal(t, 0.9, typeScoreFor(TypeInteger, TypeNumber))
	assert.Equal(t, 0.7, typeScoreFor(TypeString, TypeInteger))
	assert.Equal(t, 0.3, typeScoreFor(TypeBoolean, TypeInteger))
}

func TestDetectRelationshipsReferentialIntegrity(t *testing.T) {
	users := &Schema{
		ID:   "schema_users",
		Name: "users",
		Fields: []FieldDescriptor{
			{Name: "id", Type: TypeInteger, IsPrimaryKey: true},
		},
	}
	orders := &Schema{
		ID:   "schema_orders",
		Name: "orders",
		Fields: []FieldDescriptor{
			{Name: "id", Type: TypeInteger, IsPrimaryKey: true},
			{Name: "user_id", Type: TypeInteger},
		},
	}

	rels := detectRelationships(orders, []*Schema{users, orders})
	require.Len(t, rels, 1)
	rel := rels[0]
	assert.Equal(t, orders.ID, rel.SourceSchemaID)
	assert.Equal(t, users.ID, rel.TargetSchemaID)
	assert.Equal(t, "user_id", rel.SourceField)
	assert.Equal(t, "id", rel.TargetField)
}

func TestDetectRelationshipsNoFalseMatch(t *testing.T) {
	products := &Schema{
		ID:     "schema_products",
		Name:   "products",
		Fields: []FieldDescriptor{{Name: "id", Type: TypeInteger, IsPrimaryKey: true}},
	}
	orders := &Schema{
		ID:   "schema_orders",
		Name: "orders",
		Fields: []FieldDescriptor{
			{Name: "id", Type: TypeInteger, IsPrimaryKey: true},
			{Name: "shipping_ref", Type: TypeString},
		},
	}
	rels := detectRelationships(orders, []*Schema{products})
	assert.Empty(t, rels)
}
