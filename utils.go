package quickenum

import (
	"path"
	"reflect"
	"regexp"
	"strings"
)

// symbolicName returns a short display name for a type: the last element of
// its package path followed by the type name, e.g. "colors.Palette". Unnamed
// types fall back to their reflect string.
func symbolicName(t reflect.Type) string {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Name() == "" {
		return t.String()
	}
	if t.PkgPath() == "" {
		return t.Name()
	}
	return path.Base(t.PkgPath()) + "." + t.Name()
}

// schemaTypeName returns the bare name of a type, with any package prefix
// and generic instantiation removed.
func schemaTypeName(t reflect.Type) string {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	name := t.Name()
	if i := strings.IndexByte(name, '['); i >= 0 {
		name = name[:i]
	}
	return name
}

// validNameRegex defines the pattern for valid GraphQL enum value names.
// GraphQL names must match /[_A-Za-z][_0-9A-Za-z]*/
var validNameRegex = regexp.MustCompile(`^[_A-Za-z][_0-9A-Za-z]*$`)

func isValidSchemaName(name string) bool {
	return validNameRegex.MatchString(name)
}
