package quickenum

import (
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type genericDecl[T any] struct{}

func Test_symbolicName(t *testing.T) {
	assert.Equal(t, "go-quickenum.exampleDecl", symbolicName(reflect.TypeOf(exampleDecl{})))
	assert.Equal(t, "go-quickenum.exampleDecl", symbolicName(reflect.TypeOf(&exampleDecl{})))
	assert.Equal(t, "time.Duration", symbolicName(reflect.TypeOf(time.Duration(0))))
	assert.Equal(t, "string", symbolicName(reflect.TypeOf("")))
	assert.Equal(t, "struct {}", symbolicName(reflect.TypeOf(struct{}{})))
}

func Test_schemaTypeName(t *testing.T) {
	assert.Equal(t, "exampleDecl", schemaTypeName(reflect.TypeOf(&exampleDecl{})))
	assert.Equal(t, "genericDecl", schemaTypeName(reflect.TypeOf(genericDecl[int]{})))
}

func Test_isValidSchemaName(t *testing.T) {
	assert.True(t, isValidSchemaName("RED"))
	assert.True(t, isValidSchemaName("_private1"))
	assert.False(t, isValidSchemaName("1st"))
	assert.False(t, isValidSchemaName("not-valid"))
	assert.False(t, isValidSchemaName(""))
}
