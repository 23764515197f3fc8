package quickenum

import (
	"errors"
	"testing"

	"github.com/Pallinder/go-randomdata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type exampleDecl struct {
	ONE int `enum:"1"`
	TWO int `enum:"2"`
}

var Example = Define[exampleDecl, int]()

type otherDecl struct {
	ONE int `enum:"1"`
}

var Other = Define[otherDecl, int]()

func TestType_Constants_DeclarationOrder(t *testing.T) {
	constants, err := Example.Constants()
	require.NoError(t, err)

	assert.Equal(t, []Constant[int]{
		{Name: "ONE", Value: 1},
		{Name: "TWO", Value: 2},
	}, constants)
}

func TestType_NamesAndValues(t *testing.T) {
	names, err := Example.Names()
	require.NoError(t, err)
	assert.Equal(t, []string{"ONE", "TWO"}, names)

	values, err := Example.Values()
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, values)
}

func TestType_Names_IsSnapshot(t *testing.T) {
	names, err := Example.Names()
	require.NoError(t, err)
	names[0] = "CHANGED"

	again, err := Example.Names()
	require.NoError(t, err)
	assert.Equal(t, "ONE", again[0])
}

func TestType_Map(t *testing.T) {
	m, err := Example.Map()
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"ONE": 1, "TWO": 2}, m)
}

func TestType_Of(t *testing.T) {
	names, err := Example.Names()
	require.NoError(t, err)

	for _, name := range names {
		e, err := Example.Of(name)
		require.NoError(t, err)
		assert.Equal(t, name, e.Name())

		value, err := Example.ValueOf(name)
		require.NoError(t, err)
		assert.Equal(t, value, e.Value())
	}
}

func TestType_OfValue(t *testing.T) {
	values, err := Example.Values()
	require.NoError(t, err)

	for _, value := range values {
		e, err := Example.OfValue(value)
		require.NoError(t, err)
		assert.Equal(t, value, e.Value())
	}
}

func TestType_OfAndOfValue_ProduceExactlyEqualElements(t *testing.T) {
	byName, err := Example.Of("ONE", "a")
	require.NoError(t, err)
	byValue, err := Example.OfValue(1, "a")
	require.NoError(t, err)

	assert.True(t, byName.EqualsExact(byValue))
	assert.Equal(t, []any{"a"}, byValue.Arguments())
}

func TestType_Of_UnknownName(t *testing.T) {
	_, err := Example.Of("THREE")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownName))
	assert.Equal(t, `go-quickenum.exampleDecl: unknown name "THREE"`, err.Error())

	var unErr UnknownNameError
	require.True(t, errors.As(err, &unErr))
	assert.Equal(t, "THREE", unErr.Name)
	assert.Equal(t, "go-quickenum.exampleDecl", unErr.Type)
}

func TestType_Of_RandomUnknownNames(t *testing.T) {
	for i := 0; i < 25; i++ {
		name := randomdata.SillyName()
		_, err := Example.Of(name)
		assert.ErrorIs(t, err, ErrUnknownName, "name %q", name)
		assert.False(t, Example.HasName(name))
	}
}

func TestType_OfValue_UnknownValue(t *testing.T) {
	_, err := Example.OfValue(3)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownValue)
	assert.Equal(t, "go-quickenum.exampleDecl: unknown value 3", err.Error())

	var uvErr UnknownValueError
	require.True(t, errors.As(err, &uvErr))
	assert.Equal(t, 3, uvErr.Value)
}

func TestType_OfValue_RandomUnknownValues(t *testing.T) {
	for i := 0; i < 25; i++ {
		value := randomdata.Number(3, 100000)
		_, err := Example.OfValue(value)
		assert.ErrorIs(t, err, ErrUnknownValue, "value %d", value)
		assert.False(t, Example.HasValue(value))
	}
}

func TestType_NameOfAndValueOf_RoundTrip(t *testing.T) {
	names, err := Example.Names()
	require.NoError(t, err)
	for _, name := range names {
		value, err := Example.ValueOf(name)
		require.NoError(t, err)
		back, err := Example.NameOf(value)
		require.NoError(t, err)
		assert.Equal(t, name, back)
	}

	values, err := Example.Values()
	require.NoError(t, err)
	for _, value := range values {
		name, err := Example.NameOf(value)
		require.NoError(t, err)
		back, err := Example.ValueOf(name)
		require.NoError(t, err)
		assert.Equal(t, value, back)
	}
}

func TestType_NameOf_UnknownValue(t *testing.T) {
	_, err := Example.NameOf(42)
	assert.ErrorIs(t, err, ErrUnknownValue)
}

func TestType_ValueOf_UnknownName(t *testing.T) {
	v, err := Example.ValueOf("FORTY_TWO")
	assert.ErrorIs(t, err, ErrUnknownName)
	assert.Zero(t, v)
}

func TestType_HasNameAndHasValue(t *testing.T) {
	assert.True(t, Example.HasName("ONE"))
	assert.True(t, Example.HasName("TWO"))
	assert.False(t, Example.HasName("one"))
	assert.False(t, Example.HasName(""))

	assert.True(t, Example.HasValue(1))
	assert.True(t, Example.HasValue(2))
	assert.False(t, Example.HasValue(0))
}

func TestType_HasName_InvalidDeclarationIsFalse(t *testing.T) {
	Duplicates := Define[duplicateDecl, int]()
	assert.False(t, Duplicates.HasName("ONE"))
	assert.False(t, Duplicates.HasValue(1))
}

func TestType_Elements(t *testing.T) {
	elements, err := Example.Elements()
	require.NoError(t, err)
	require.Len(t, elements, 2)
	assert.Equal(t, "ONE", elements[0].Name())
	assert.Equal(t, "TWO", elements[1].Name())
	assert.Nil(t, elements[0].Arguments())
}

func TestType_MustOf(t *testing.T) {
	assert.Equal(t, 2, Example.MustOf("TWO").Value())
	assert.Equal(t, "TWO", Example.MustOfValue(2).Name())

	assert.PanicsWithValue(t, `quickenum: Of("NOPE"): go-quickenum.exampleDecl: unknown name "NOPE"`, func() {
		Example.MustOf("NOPE")
	})
	assert.Panics(t, func() {
		Example.MustOfValue(7)
	})
}

func TestType_Name(t *testing.T) {
	assert.Equal(t, "go-quickenum.exampleDecl", Example.Name())
	assert.Equal(t, "go-quickenum.duplicateDecl", Define[duplicateDecl, int]().Name())
}

func TestType_SameDeclarationDifferentValueType(t *testing.T) {
	Wide := Define[exampleDecl, int64]()

	values, err := Wide.Values()
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2}, values)

	// Elements of both handles share the declaration type.
	e, err := Wide.Of("ONE")
	require.NoError(t, err)
	assert.Equal(t, int64(1), e.Value())
	assert.Equal(t, Example.Name(), e.Type())
}

func TestType_Validate(t *testing.T) {
	assert.NoError(t, Example.Validate())
	assert.ErrorIs(t, Define[duplicateDecl, int]().Validate(), ErrDuplicateValue)
}
