package wave

import "errors"

// ErrInvalidArgument indicates a configuration value outside the accepted
// range. Configuration is the only error surface of the simulation:
// stepping and impulse application clamp or ignore bad input instead.
var ErrInvalidArgument = errors.New("wave: invalid argument")
