package quickenum

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"sync"

	"github.com/alecthomas/participle/v2/lexer"
)

// registryKey identifies an enum type. The same declaration type may be used
// with more than one value type, so both take part in the key.
type registryKey struct {
	decl  reflect.Type
	value reflect.Type
}

// registry is the process-wide cache of resolved enum metadata. Entries are
// written once per key and never evicted.
var registry = struct {
	mu      sync.RWMutex
	entries map[registryKey]any
}{
	entries: map[registryKey]any{},
}

// metadata is the resolved form of one enum type.
type metadata[V Scalar] struct {
	decl       reflect.Type
	typeName   string
	constants  []Constant[V]
	nameIndex  map[string]int
	valueIndex map[V]int
	validator  ArgumentValidator[V]
}

// resolve returns the cached metadata for (D, V), building it on first use.
// A failed build is not cached and will be attempted again on the next call.
//
// The build runs without holding the registry lock, since declarations may
// resolve other enums while listing their constants. Concurrent first uses
// may each build an entry; the first one stored wins and is returned to all.
func resolve[D any, V Scalar]() (*metadata[V], error) {
	key := registryKey{
		decl:  reflect.TypeOf((*D)(nil)).Elem(),
		value: reflect.TypeOf((*V)(nil)).Elem(),
	}

	registry.mu.RLock()
	entry, ok := registry.entries[key]
	registry.mu.RUnlock()
	if ok {
		return entry.(*metadata[V]), nil
	}

	md, err := buildMetadata[D, V](key.decl)
	if err != nil {
		return nil, err
	}

	registry.mu.Lock()
	defer registry.mu.Unlock()

	if entry, ok := registry.entries[key]; ok {
		return entry.(*metadata[V]), nil
	}
	registry.entries[key] = md
	return md, nil
}

func buildMetadata[D any, V Scalar](decl reflect.Type) (*metadata[V], error) {
	typeName := symbolicName(decl)

	constants, err := discoverConstants[D, V](decl, typeName)
	if err != nil {
		return nil, err
	}

	md := &metadata[V]{
		decl:       decl,
		typeName:   typeName,
		constants:  constants,
		nameIndex:  make(map[string]int, len(constants)),
		valueIndex: make(map[V]int, len(constants)),
		validator:  argumentValidatorFor[D, V](),
	}

	for i, c := range constants {
		if c.Name == "" {
			return nil, newDeclarationError(typeName, "", lexer.Position{}, fmt.Sprintf("constant %d has an empty name", i), nil)
		}
		if _, found := md.nameIndex[c.Name]; found {
			return nil, newDeclarationError(typeName, "", lexer.Position{}, fmt.Sprintf("name %s is declared more than once", c.Name), nil)
		}
		if isNaN(c.Value) {
			return nil, newDeclarationError(typeName, "", lexer.Position{}, fmt.Sprintf("name %s has a NaN value", c.Name), nil)
		}
		if prev, found := md.valueIndex[c.Value]; found {
			return nil, newDuplicateValueError(typeName, constants[prev].Name, c.Name, c.Value)
		}
		md.nameIndex[c.Name] = i
		md.valueIndex[c.Value] = i
	}

	return md, nil
}

// isNaN reports whether v is a floating point NaN, the only scalar that is
// not equal to itself.
func isNaN[V Scalar](v V) bool {
	return v != v
}

// discoverConstants lists the declared constants of D in declaration order.
//
// The optional interfaces take priority over struct reflection: Declarer,
// then StringEnumValues, then the exported fields of a struct.
func discoverConstants[D any, V Scalar](decl reflect.Type, typeName string) ([]Constant[V], error) {
	var zero D

	if d, ok := any(zero).(Declarer[V]); ok {
		return copyConstants(d.EnumConstants()), nil
	}
	if d, ok := any(&zero).(Declarer[V]); ok {
		return copyConstants(d.EnumConstants()), nil
	}

	valueType := reflect.TypeOf((*V)(nil)).Elem()
	se, ok := any(zero).(StringEnumValues)
	if !ok {
		se, ok = any(&zero).(StringEnumValues)
	}
	if ok {
		if valueType.Kind() != reflect.String {
			return nil, newDeclarationError(typeName, "", lexer.Position{},
				fmt.Sprintf("EnumValues requires a string value type, got %v", valueType), nil)
		}
		names := se.EnumValues()
		constants := make([]Constant[V], len(names))
		for i, n := range names {
			constants[i] = Constant[V]{
				Name:  n,
				Value: reflect.ValueOf(n).Convert(valueType).Interface().(V),
			}
		}
		return constants, nil
	}

	if decl.Kind() != reflect.Struct {
		return nil, newDeclarationError(typeName, "", lexer.Position{},
			fmt.Sprintf("%v is neither a struct nor a Declarer", decl), nil)
	}

	fd := fieldDiscovery[V]{
		typeName:  typeName,
		valueType: valueType,
		visiting:  map[reflect.Type]bool{},
	}
	if err := fd.discover(decl); err != nil {
		return nil, err
	}
	return fd.constants, nil
}

func copyConstants[V Scalar](constants []Constant[V]) []Constant[V] {
	result := make([]Constant[V], len(constants))
	copy(result, constants)
	return result
}

// fieldDiscovery walks the fields of a declaration struct.
type fieldDiscovery[V Scalar] struct {
	typeName  string
	valueType reflect.Type
	constants []Constant[V]

	// visiting holds the struct types on the current embedding path.
	visiting map[reflect.Type]bool

	// nextInt is the implicit value of the next untagged integer constant.
	nextInt int64
	// nextUint is the same for unsigned value types.
	nextUint uint64
	// exhausted is set once an integer constant holds the largest value of
	// its kind, leaving no implicit value for the next one.
	exhausted bool
}

func (fd *fieldDiscovery[V]) discover(typ reflect.Type) error {
	fd.visiting[typ] = true
	defer delete(fd.visiting, typ)

	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)

		tag, hasTag := field.Tag.Lookup("enum")
		if hasTag && tag == "-" {
			continue
		}

		if field.Anonymous {
			embedded := field.Type
			if embedded.Kind() == reflect.Ptr {
				embedded = embedded.Elem()
			}
			if embedded.Kind() == reflect.Struct && !hasTag {
				if fd.visiting[embedded] {
					continue
				}
				if err := fd.discover(embedded); err != nil {
					return err
				}
				continue
			}
		}

		if !field.IsExported() {
			continue
		}

		c, err := fd.constantForField(field, tag)
		if err != nil {
			return err
		}
		fd.constants = append(fd.constants, c)
	}
	return nil
}

func (fd *fieldDiscovery[V]) constantForField(field reflect.StructField, tag string) (Constant[V], error) {
	c := Constant[V]{Name: field.Name}

	decl, err := ParseTag(tag)
	if err != nil {
		return c, newDeclarationError(fd.typeName, field.Name, tagErrorPosition(err), "unable to parse enum tag", err)
	}

	opts, pos, err := interpretTag(decl)
	if err != nil {
		return c, newDeclarationError(fd.typeName, field.Name, pos, err.Error(), nil)
	}

	if opts.name != "" {
		c.Name = opts.name
	}
	c.Description = opts.description
	if opts.deprecated != nil {
		c.Deprecated = true
		c.DeprecationReason = *opts.deprecated
	}

	rv := reflect.New(fd.valueType).Elem()
	if opts.value != nil {
		if err := setLiteral(rv, *opts.value); err != nil {
			return c, newDeclarationError(fd.typeName, field.Name, opts.valuePos, "invalid value", err)
		}
	} else if err := fd.setImplicit(rv, c.Name); err != nil {
		return c, newDeclarationError(fd.typeName, field.Name, lexer.Position{}, err.Error(), nil)
	}
	fd.advance(rv)

	c.Value = rv.Interface().(V)
	return c, nil
}

// setImplicit assigns the value of a constant declared without one.
func (fd *fieldDiscovery[V]) setImplicit(rv reflect.Value, name string) error {
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if fd.exhausted {
			return fmt.Errorf("implicit value after %d overflows %v", int64(math.MaxInt64), rv.Type())
		}
		if rv.OverflowInt(fd.nextInt) {
			return fmt.Errorf("implicit value %d overflows %v", fd.nextInt, rv.Type())
		}
		rv.SetInt(fd.nextInt)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if fd.exhausted {
			return fmt.Errorf("implicit value after %d overflows %v", uint64(math.MaxUint64), rv.Type())
		}
		if rv.OverflowUint(fd.nextUint) {
			return fmt.Errorf("implicit value %d overflows %v", fd.nextUint, rv.Type())
		}
		rv.SetUint(fd.nextUint)
	case reflect.String:
		rv.SetString(name)
	default:
		return fmt.Errorf("a value is required for %v constants", rv.Type())
	}
	return nil
}

// advance moves the implicit integer counter past the value just assigned.
func (fd *fieldDiscovery[V]) advance(rv reflect.Value) {
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if rv.Int() == math.MaxInt64 {
			fd.exhausted = true
		} else {
			fd.nextInt = rv.Int() + 1
			fd.exhausted = false
		}
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if rv.Uint() == math.MaxUint64 {
			fd.exhausted = true
		} else {
			fd.nextUint = rv.Uint() + 1
			fd.exhausted = false
		}
	}
}

// setLiteral converts a tag literal into rv according to rv's kind.
func setLiteral(rv reflect.Value, lit TagLiteral) error {
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if lit.Int == nil {
			return fmt.Errorf("expected an integer, got %q", lit.Text())
		}
		i, err := strconv.ParseInt(*lit.Int, 0, rv.Type().Bits())
		if err != nil {
			return err
		}
		rv.SetInt(i)

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if lit.Int == nil {
			return fmt.Errorf("expected an unsigned integer, got %q", lit.Text())
		}
		u, err := strconv.ParseUint(*lit.Int, 0, rv.Type().Bits())
		if err != nil {
			return err
		}
		rv.SetUint(u)

	case reflect.Float32, reflect.Float64:
		var text string
		switch {
		case lit.Float != nil:
			text = *lit.Float
		case lit.Int != nil:
			text = *lit.Int
		default:
			return fmt.Errorf("expected a number, got %q", lit.Text())
		}
		f, err := strconv.ParseFloat(text, rv.Type().Bits())
		if err != nil {
			return err
		}
		rv.SetFloat(f)

	case reflect.String:
		rv.SetString(lit.Text())

	case reflect.Bool:
		if lit.Ident == nil {
			return fmt.Errorf("expected true or false, got %q", lit.Text())
		}
		b, err := strconv.ParseBool(*lit.Ident)
		if err != nil {
			return err
		}
		rv.SetBool(b)

	default:
		return fmt.Errorf("unsupported value kind %v", rv.Kind())
	}
	return nil
}
