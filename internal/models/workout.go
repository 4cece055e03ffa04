package models

// Record holds the raw sensor readings for a single workout. Fields that do
// not apply to a workout kind are left at zero.
type Record struct {
	Action   int     `json:"action"`   // steps, or strokes for swimming
	Duration float64 `json:"duration"` // hours
	Weight   float64 `json:"weight"`   // kg

	Height     float64 `json:"height,omitempty"`      // cm, walking only
	LengthPool float64 `json:"length_pool,omitempty"` // m, swimming only
	CountPool  int     `json:"count_pool,omitempty"`  // laps, swimming only
}

// Package is one batch entry as received from the sensors: a workout code and
// its positional readings.
type Package struct {
	Code     string    `json:"code" yaml:"code"`
	Readings []float64 `json:"readings" yaml:"readings"`
}
