package quickenum

// Scalar is the closed set of value types an enum constant may carry. All of
// them are comparable, so values can be used to index the reverse lookup.
type Scalar interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64 |
		~string | ~bool
}

// Constant is a single declared name/value pair of an enum type.
//
// Description and DeprecationReason are only used when rendering the schema
// of the enum.
type Constant[V Scalar] struct {
	Name              string
	Value             V
	Description       string
	Deprecated        bool
	DeprecationReason string
}

// Declarer is an optional interface that a declaration type can implement to
// list its constants explicitly instead of having them discovered from struct
// fields. This is the natural way to attach an enum to a named scalar type:
//
//	type Color int
//
//	const (
//	    Red Color = iota + 1
//	    Green
//	)
//
//	func (Color) EnumConstants() []quickenum.Constant[Color] {
//	    return []quickenum.Constant[Color]{{Name: "RED", Value: Red}, {Name: "GREEN", Value: Green}}
//	}
type Declarer[V Scalar] interface {
	EnumConstants() []Constant[V]
}

// StringEnumValues is an optional interface for string enums where each
// name is also its own value.
type StringEnumValues interface {
	EnumValues() []string
}
