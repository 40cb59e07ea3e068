package schema

import (
	"testing"

	"reldb/common"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validSchema() Schema {
	return Schema{
		{Name: "id", Type: TypeInt, PrimaryKey: true},
		{Name: "name", Type: TypeText},
		{Name: "score", Type: TypeFloat},
		{Name: "active", Type: TypeBool},
	}
}

func TestSchemaValidate(t *testing.T) {
	require.NoError(t, validSchema().Validate())
}

func TestSchemaValidate_Empty(t *testing.T) {
	err := Schema{}.Validate()
	assert.ErrorIs(t, err, common.ErrInvalidSchema)
}

func TestSchemaValidate_DuplicateColumn(t *testing.T) {
	s := Schema{
		{Name: "id", Type: TypeInt},
		{Name: "id", Type: TypeText},
	}
	assert.ErrorIs(t, s.Validate(), common.ErrInvalidSchema)
}

func TestSchemaValidate_TwoPrimaryKeys(t *testing.T) {
	s := Schema{
		{Name: "a", Type: TypeInt, PrimaryKey: true},
		{Name: "b", Type: TypeInt, PrimaryKey: true},
	}
	assert.ErrorIs(t, s.Validate(), common.ErrInvalidSchema)
}

func TestSchemaValidate_BadType(t *testing.T) {
	s := Schema{{Name: "a", Type: ColumnType("BLOB")}}
	assert.ErrorIs(t, s.Validate(), common.ErrInvalidSchema)
}

func TestCheckRow_Arity(t *testing.T) {
	s := validSchema()

	err := s.CheckRow([]Value{Int(1), Text("x")})
	assert.ErrorIs(t, err, common.ErrArityMismatch)

	err = s.CheckRow([]Value{Int(1), Text("x"), Float(1.0), Bool(true), Int(9)})
	assert.ErrorIs(t, err, common.ErrArityMismatch)
}

func TestCheckRow_StrictTypes(t *testing.T) {
	s := validSchema()

	// INT is not accepted where FLOAT is declared, and vice versa.
	err := s.CheckRow([]Value{Int(1), Text("x"), Int(2), Bool(true)})
	assert.ErrorIs(t, err, common.ErrTypeMismatch)

	err = s.CheckRow([]Value{Float(1.0), Text("x"), Float(2.0), Bool(true)})
	assert.ErrorIs(t, err, common.ErrTypeMismatch)

	// BOOL is never a number.
	err = s.CheckRow([]Value{Bool(true), Text("x"), Float(2.0), Bool(true)})
	assert.ErrorIs(t, err, common.ErrTypeMismatch)

	require.NoError(t, s.CheckRow([]Value{Int(1), Text("x"), Float(2.5), Bool(false)}))
}

func TestColumnIndex(t *testing.T) {
	s := validSchema()

	i, err := s.ColumnIndex("score")
	require.NoError(t, err)
	assert.Equal(t, 2, i)

	_, err = s.ColumnIndex("missing")
	assert.ErrorIs(t, err, common.ErrUnknownColumn)
}

func TestValueEqualityAcrossKinds(t *testing.T) {
	assert.True(t, Int(1).Equal(Int(1)))
	assert.False(t, Int(1).Equal(Float(1.0)))
	assert.False(t, Int(1).Equal(Text("1")))
	assert.False(t, Bool(true).Equal(Int(1)))
}

func TestValueKeyDistinctAcrossKinds(t *testing.T) {
	keys := map[string]bool{
		Int(1).Key():       true,
		Float(1).Key():     true,
		Text("1").Key():    true,
		Bool(true).Key():   true,
		Text("true").Key(): true,
	}
	assert.Len(t, keys, 5)
}

func TestValueJSONRoundTrip(t *testing.T) {
	// INT and FLOAT must stay distinguishable after the round trip.
	for _, v := range []Value{Int(42), Int(-7), Float(42), Float(3.25), Text("Alice"), Text(""), Bool(true), Bool(false)} {
		data, err := json.Marshal(v)
		require.NoError(t, err)

		var back Value
		require.NoError(t, json.Unmarshal(data, &back))
		assert.True(t, v.Equal(back), "round trip changed %s %s", v.Kind(), v)
	}
}

func TestValueUnmarshal_BadTag(t *testing.T) {
	var v Value
	err := json.Unmarshal([]byte(`{"t":"BLOB","v":1}`), &v)
	assert.Error(t, err)
}

func TestValueUnmarshal_TagPayloadMismatch(t *testing.T) {
	var v Value
	err := json.Unmarshal([]byte(`{"t":"INT","v":"not a number"}`), &v)
	assert.Error(t, err)
}

func TestFromNative_NumberLiterals(t *testing.T) {
	v, err := FromNative(json.Number("5"))
	require.NoError(t, err)
	assert.Equal(t, KindInt, v.Kind())
	assert.Equal(t, int64(5), v.AsInt())

	v, err = FromNative(json.Number("5.0"))
	require.NoError(t, err)
	assert.Equal(t, KindFloat, v.Kind())
	assert.Equal(t, 5.0, v.AsFloat())

	v, err = FromNative("hello")
	require.NoError(t, err)
	assert.Equal(t, KindText, v.Kind())

	v, err = FromNative(true)
	require.NoError(t, err)
	assert.Equal(t, KindBool, v.Kind())

	_, err = FromNative(nil)
	assert.Error(t, err)
}
