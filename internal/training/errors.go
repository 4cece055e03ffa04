package training

import "errors"

var (
	// ErrUnknownWorkoutKind is returned for a workout code that is not recognised.
	ErrUnknownWorkoutKind = errors.New("unknown workout kind")
	// ErrMalformedReadings is returned when readings have the wrong count or
	// cannot be interpreted as numbers of the expected type.
	ErrMalformedReadings = errors.New("malformed readings")
	// ErrInvalidDomainValue is returned when a reading is outside the range
	// the formulas accept (non-positive duration, weight, height or pool length,
	// negative counts).
	ErrInvalidDomainValue = errors.New("invalid domain value")
)
