package quickenum

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2/lexer"
)

// Sentinel kinds carried by every EnumError. Use errors.Is to tell them apart.
var (
	ErrDuplicateValue     = errors.New("duplicate enum value")
	ErrUnknownName        = errors.New("unknown enum name")
	ErrUnknownValue       = errors.New("unknown enum value")
	ErrInvalidArguments   = errors.New("invalid enum arguments")
	ErrInvalidDeclaration = errors.New("invalid enum declaration")
)

// EnumError is the base error returned by this package. It provides the
// kind of failure, the enum type it happened on and an optional underlying
// error.
//
// Fields:
// - Kind: One of the Err* sentinels.
// - Type: The display name of the enum type, e.g. "colors.Palette".
// - Message: A human readable description of the failure.
// - InnerError: The error that caused this one, if any.
type EnumError struct {
	Kind       error
	Type       string
	Message    string
	InnerError error
}

// DuplicateValueError is returned when two declared names share one value.
type DuplicateValueError struct {
	EnumError
	First  string
	Second string
	Value  any
}

// UnknownNameError is returned when a name is not declared on the type.
type UnknownNameError struct {
	EnumError
	Name string
}

// UnknownValueError is returned when a value is not declared on the type.
type UnknownValueError struct {
	EnumError
	Value any
}

// InvalidArgumentsError is returned when the type's ArgumentValidator rejects
// the arguments supplied for an element. InnerError holds the validator's error.
type InvalidArgumentsError struct {
	EnumError
	Name      string
	Arguments []any
}

// DeclarationError is returned when a declaration type cannot be turned into
// an enum: unsupported shapes, unparsable tags, empty or repeated names.
type DeclarationError struct {
	EnumError
	// Field is the struct field the problem was found on, if any.
	Field string
	// Pos is the position inside the field's tag. A zero Column means the
	// problem is not tied to a place in the tag.
	Pos lexer.Position
}

// Implement the error interface
func (e EnumError) Error() string {
	s := strings.Builder{}
	if e.Type != "" {
		s.WriteString(e.Type)
		s.WriteString(": ")
	}
	s.WriteString(e.Message)
	if e.InnerError != nil {
		s.WriteString(": ")
		s.WriteString(e.InnerError.Error())
	}
	return s.String()
}

// Is reports whether target is the sentinel kind of this error.
func (e EnumError) Is(target error) bool {
	return e.Kind != nil && e.Kind == target
}

func (e EnumError) Unwrap() error {
	return e.InnerError
}

func (e DuplicateValueError) Unwrap() error {
	return e.EnumError
}

func (e UnknownNameError) Unwrap() error {
	return e.EnumError
}

func (e UnknownValueError) Unwrap() error {
	return e.EnumError
}

func (e InvalidArgumentsError) Unwrap() error {
	return e.EnumError
}

func (e DeclarationError) Unwrap() error {
	return e.EnumError
}

func (e DeclarationError) Error() string {
	msg := e.EnumError.Error()
	if e.Field == "" {
		return msg
	}
	if e.Pos.Column > 0 {
		return fmt.Sprintf("%s (field: %s, column %d)", msg, e.Field, e.Pos.Column)
	}
	return fmt.Sprintf("%s (field: %s)", msg, e.Field)
}

func newDuplicateValueError(typeName, first, second string, value any) error {
	return DuplicateValueError{
		EnumError: EnumError{
			Kind:    ErrDuplicateValue,
			Type:    typeName,
			Message: fmt.Sprintf("names %s and %s share the value %v", first, second, value),
		},
		First:  first,
		Second: second,
		Value:  value,
	}
}

func newUnknownNameError(typeName, name string) error {
	return UnknownNameError{
		EnumError: EnumError{
			Kind:    ErrUnknownName,
			Type:    typeName,
			Message: fmt.Sprintf("unknown name %q", name),
		},
		Name: name,
	}
}

func newUnknownValueError(typeName string, value any) error {
	return UnknownValueError{
		EnumError: EnumError{
			Kind:    ErrUnknownValue,
			Type:    typeName,
			Message: fmt.Sprintf("unknown value %v", value),
		},
		Value: value,
	}
}

func newInvalidArgumentsError(typeName, name string, args []any, err error) error {
	return InvalidArgumentsError{
		EnumError: EnumError{
			Kind:       ErrInvalidArguments,
			Type:       typeName,
			Message:    fmt.Sprintf("invalid arguments for %s", name),
			InnerError: err,
		},
		Name:      name,
		Arguments: args,
	}
}

// newDeclarationError creates a DeclarationError. If err is already a
// DeclarationError it is augmented with the field and position instead of
// being wrapped, so the innermost location survives.
func newDeclarationError(typeName, field string, pos lexer.Position, message string, err error) error {
	var dErr DeclarationError
	if errors.As(err, &dErr) {
		if dErr.Type == "" {
			dErr.Type = typeName
		}
		if dErr.Field == "" {
			dErr.Field = field
		}
		if dErr.Pos.Column == 0 {
			dErr.Pos = pos
		}
		return dErr
	}
	return DeclarationError{
		EnumError: EnumError{
			Kind:       ErrInvalidDeclaration,
			Type:       typeName,
			Message:    message,
			InnerError: err,
		},
		Field: field,
		Pos:   pos,
	}
}
