package quickenum

import (
	"fmt"
	"reflect"
)

// Type is a handle to the enum declared by D with values of type V.
//
// Creating a Type does no work. The constants of D are discovered the first
// time any method needs them and the result is cached for the life of the
// process, so handles can be created freely, typically as package variables:
//
//	type paletteDecl struct {
//	    RED   string `enum:"'#ff0000'"`
//	    GREEN string `enum:"'#00ff00'"`
//	}
//
//	var Palette = quickenum.Define[paletteDecl, string]()
//
//	red, err := Palette.Of("RED")
//
// See Declarer and StringEnumValues for the other ways of declaring constants.
type Type[D any, V Scalar] struct{}

// Define returns the handle for the enum declared by D.
func Define[D any, V Scalar]() Type[D, V] {
	return Type[D, V]{}
}

// Validate resolves the declaration and returns any error found in it. It is
// meant to be called from tests or init code so that a broken declaration is
// reported early rather than at the first lookup.
func (t Type[D, V]) Validate() error {
	_, err := resolve[D, V]()
	return err
}

// Name returns the display name of the enum type, e.g. "colors.paletteDecl".
func (t Type[D, V]) Name() string {
	md, err := resolve[D, V]()
	if err != nil {
		return symbolicName(reflect.TypeOf((*D)(nil)).Elem())
	}
	return md.typeName
}

// Of returns the element with the given name. Arguments, if any, are checked
// by the declaration's ArgumentValidator and attached to the element.
func (t Type[D, V]) Of(name string, args ...any) (Element[V], error) {
	md, err := resolve[D, V]()
	if err != nil {
		return Element[V]{}, err
	}
	index, ok := md.nameIndex[name]
	if !ok {
		return Element[V]{}, newUnknownNameError(md.typeName, name)
	}
	return md.construct(index, args)
}

// OfValue returns the element declared with the given value. It behaves like
// Of called with the name that belongs to value.
func (t Type[D, V]) OfValue(value V, args ...any) (Element[V], error) {
	md, err := resolve[D, V]()
	if err != nil {
		return Element[V]{}, err
	}
	index, ok := md.valueIndex[value]
	if !ok {
		return Element[V]{}, newUnknownValueError(md.typeName, value)
	}
	return md.construct(index, args)
}

// MustOf is like Of but panics if the element cannot be constructed.
func (t Type[D, V]) MustOf(name string, args ...any) Element[V] {
	e, err := t.Of(name, args...)
	if err != nil {
		panic(fmt.Sprintf("quickenum: Of(%q): %v", name, err))
	}
	return e
}

// MustOfValue is like OfValue but panics if the element cannot be constructed.
func (t Type[D, V]) MustOfValue(value V, args ...any) Element[V] {
	e, err := t.OfValue(value, args...)
	if err != nil {
		panic(fmt.Sprintf("quickenum: OfValue(%v): %v", value, err))
	}
	return e
}

// NameOf returns the name declared with value.
func (t Type[D, V]) NameOf(value V) (string, error) {
	md, err := resolve[D, V]()
	if err != nil {
		return "", err
	}
	index, ok := md.valueIndex[value]
	if !ok {
		return "", newUnknownValueError(md.typeName, value)
	}
	return md.constants[index].Name, nil
}

// ValueOf returns the value declared for name.
func (t Type[D, V]) ValueOf(name string) (V, error) {
	md, err := resolve[D, V]()
	if err != nil {
		var zero V
		return zero, err
	}
	index, ok := md.nameIndex[name]
	if !ok {
		var zero V
		return zero, newUnknownNameError(md.typeName, name)
	}
	return md.constants[index].Value, nil
}

// HasName reports whether name is declared. It returns false if the
// declaration itself is invalid.
func (t Type[D, V]) HasName(name string) bool {
	md, err := resolve[D, V]()
	if err != nil {
		return false
	}
	_, ok := md.nameIndex[name]
	return ok
}

// HasValue reports whether value is declared. It returns false if the
// declaration itself is invalid.
func (t Type[D, V]) HasValue(value V) bool {
	md, err := resolve[D, V]()
	if err != nil {
		return false
	}
	_, ok := md.valueIndex[value]
	return ok
}

// Names returns the declared names in declaration order.
func (t Type[D, V]) Names() ([]string, error) {
	md, err := resolve[D, V]()
	if err != nil {
		return nil, err
	}
	names := make([]string, len(md.constants))
	for i, c := range md.constants {
		names[i] = c.Name
	}
	return names, nil
}

// Values returns the declared values in the same order as Names.
func (t Type[D, V]) Values() ([]V, error) {
	md, err := resolve[D, V]()
	if err != nil {
		return nil, err
	}
	values := make([]V, len(md.constants))
	for i, c := range md.constants {
		values[i] = c.Value
	}
	return values, nil
}

// Constants returns a snapshot of every declared constant in declaration
// order.
func (t Type[D, V]) Constants() ([]Constant[V], error) {
	md, err := resolve[D, V]()
	if err != nil {
		return nil, err
	}
	return copyConstants(md.constants), nil
}

// Map returns the name to value mapping. Use Constants when the declaration
// order matters.
func (t Type[D, V]) Map() (map[string]V, error) {
	md, err := resolve[D, V]()
	if err != nil {
		return nil, err
	}
	result := make(map[string]V, len(md.constants))
	for _, c := range md.constants {
		result[c.Name] = c.Value
	}
	return result, nil
}

// Elements returns one element per declared constant, in declaration order,
// each constructed with args.
func (t Type[D, V]) Elements(args ...any) ([]Element[V], error) {
	md, err := resolve[D, V]()
	if err != nil {
		return nil, err
	}
	elements := make([]Element[V], len(md.constants))
	for i := range md.constants {
		e, err := md.construct(i, args)
		if err != nil {
			return nil, err
		}
		elements[i] = e
	}
	return elements, nil
}

// construct builds the element for the constant at index, running the
// argument validator when arguments are present.
func (md *metadata[V]) construct(index int, args []any) (Element[V], error) {
	e := newElement(md, index, args)
	if md.validator != nil && e.HasArguments() {
		if err := md.validator.ValidateArguments(e.name, e.value, e.Arguments()); err != nil {
			return Element[V]{}, newInvalidArgumentsError(md.typeName, e.name, e.Arguments(), err)
		}
	}
	return e, nil
}
