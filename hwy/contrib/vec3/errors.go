package vec3

import "errors"

var (
	// ErrNotArmed is reported when Inserter.Then is called before Insert,
	// or after Done has reset the chain.
	ErrNotArmed = errors.New("vec3: chained insertion continued before Insert")

	// ErrTooManyValues is reported when a chain receives more than three values.
	ErrTooManyValues = errors.New("vec3: chained insertion given more than three values")

	// ErrMalformed is returned when vector text cannot be parsed.
	ErrMalformed = errors.New("vec3: malformed vector text")
)
