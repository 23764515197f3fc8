package quickenum

// ArgumentValidator is an interface that declaration types can implement to
// restrict the arguments attached to their elements. It is consulted every
// time an element is constructed with at least one argument.
type ArgumentValidator[V Scalar] interface {
	// ValidateArguments checks the arguments supplied for the element with
	// the given name and value. It should return an error if the arguments
	// are not acceptable, or nil if they are.
	ValidateArguments(name string, value V, args []any) error
}

// argumentValidatorFor returns the validator implemented by D, trying the
// value receiver before the pointer receiver. It returns nil if D does not
// implement ArgumentValidator.
func argumentValidatorFor[D any, V Scalar]() ArgumentValidator[V] {
	var zero D
	if v, ok := any(zero).(ArgumentValidator[V]); ok {
		return v
	}
	if v, ok := any(&zero).(ArgumentValidator[V]); ok {
		return v
	}
	return nil
}
