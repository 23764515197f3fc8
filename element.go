package quickenum

import (
	"fmt"
	"reflect"
	"strings"
)

// Element is one instantiated enum value: a declared name, the value that
// belongs to it, and any arguments attached when it was constructed.
//
// Elements are immutable. A new Element is produced by every lookup, so two
// elements for the same name are equal under Equals but are distinct values.
// The zero Element is not valid and is equal to nothing.
type Element[V Scalar] struct {
	owner    reflect.Type
	typeName string
	name     string
	value    V
	args     []any
}

func newElement[V Scalar](md *metadata[V], index int, args []any) Element[V] {
	c := md.constants[index]
	return Element[V]{
		owner:    md.decl,
		typeName: md.typeName,
		name:     c.Name,
		value:    c.Value,
		args:     normalizeArguments(args),
	}
}

// normalizeArguments copies args, mapping an empty list to nil.
func normalizeArguments(args []any) []any {
	if len(args) == 0 {
		return nil
	}
	result := make([]any, len(args))
	copy(result, args)
	return result
}

// Name returns the declared name of the element.
func (e Element[V]) Name() string {
	return e.name
}

// Value returns the value declared for the element's name.
func (e Element[V]) Value() V {
	return e.value
}

// Arguments returns a copy of the arguments the element was constructed
// with, or nil if there were none.
func (e Element[V]) Arguments() []any {
	return normalizeArguments(e.args)
}

// HasArguments reports whether the element carries any arguments.
func (e Element[V]) HasArguments() bool {
	return len(e.args) > 0
}

// Type returns the display name of the enum type the element belongs to.
func (e Element[V]) Type() string {
	return e.typeName
}

// IsValid reports whether the element was produced by a lookup, as opposed
// to being a zero Element.
func (e Element[V]) IsValid() bool {
	return e.owner != nil
}

// Equals reports whether both elements belong to the same enum type and have
// the same name. Arguments are ignored.
func (e Element[V]) Equals(other Element[V]) bool {
	if !e.IsValid() || !other.IsValid() {
		return false
	}
	return e.owner == other.owner && e.name == other.name
}

// EqualsExact is Equals that also requires the arguments to match.
//
// Arguments are compared element-wise with reflect.DeepEqual, so pointers
// are equal when they point at equal values, and slices, maps and structs are
// compared by content.
func (e Element[V]) EqualsExact(other Element[V]) bool {
	if !e.Equals(other) {
		return false
	}
	if len(e.args) != len(other.args) {
		return false
	}
	for i := range e.args {
		if !reflect.DeepEqual(e.args[i], other.args[i]) {
			return false
		}
	}
	return true
}

// String renders the element as Type.NAME, followed by the arguments in
// parentheses when there are any.
func (e Element[V]) String() string {
	if !e.IsValid() {
		return "<invalid enum element>"
	}
	sb := strings.Builder{}
	sb.WriteString(e.typeName)
	sb.WriteString(".")
	sb.WriteString(e.name)
	if len(e.args) > 0 {
		sb.WriteString("(")
		for i, a := range e.args {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(fmt.Sprintf("%v", a))
		}
		sb.WriteString(")")
	}
	return sb.String()
}
