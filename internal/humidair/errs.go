package humidair

import "errors"

var (
	// ErrInvalidArgument indicates a value outside of its allowed range or a
	// target contradicting the direction of a process.
	ErrInvalidArgument = errors.New("humidair: invalid argument")

	// ErrPhysicallyImpossible indicates well-formed arguments that cannot be
	// realised for the given inlet state, e.g. dry cooling below the dew point.
	ErrPhysicallyImpossible = errors.New("humidair: physically impossible")
)
