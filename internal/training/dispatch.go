package training

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

// Kind describes a recognised workout code and the readings it expects, in order.
type Kind struct {
	Code         string   `json:"code"`
	TrainingType string   `json:"training_type"`
	Fields       []string `json:"fields"`
}

type builder func(r []float64) (Training, error)

type kindEntry struct {
	Kind
	build builder
}

var kinds = map[string]kindEntry{
	"SWM": {
		Kind:  Kind{Code: "SWM", TrainingType: "Swimming", Fields: []string{"action", "duration", "weight", "length_pool", "count_pool"}},
		build: buildSwimming,
	},
	"RUN": {
		Kind:  Kind{Code: "RUN", TrainingType: "Running", Fields: []string{"action", "duration", "weight"}},
		build: buildRunning,
	},
	"WLK": {
		Kind:  Kind{Code: "WLK", TrainingType: "SportsWalking", Fields: []string{"action", "duration", "weight", "height"}},
		build: buildWalking,
	},
}

// ReadPackage builds the workout for a sensor package. It returns
// ErrUnknownWorkoutKind, ErrMalformedReadings or ErrInvalidDomainValue
// (wrapped) instead of a partially built workout.
func ReadPackage(code string, readings []float64) (Training, error) {
	k, ok := kinds[code]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownWorkoutKind, code)
	}
	if len(readings) != len(k.Fields) {
		return nil, fmt.Errorf("%w: %s expects %d readings (%s), got %d",
			ErrMalformedReadings, code, len(k.Fields), strings.Join(k.Fields, ", "), len(readings))
	}
	for i, v := range readings {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("%w: %s %s is not a finite number", ErrMalformedReadings, code, k.Fields[i])
		}
	}
	t, err := k.build(readings)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", code, err)
	}
	return t, nil
}

// Kinds returns every recognised workout kind, ordered by code.
func Kinds() []Kind {
	out := make([]Kind, 0, len(kinds))
	for _, k := range kinds {
		out = append(out, k.Kind)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}

// Codes returns the recognised workout codes, sorted.
func Codes() []string {
	ks := Kinds()
	codes := make([]string, len(ks))
	for i, k := range ks {
		codes[i] = k.Code
	}
	return codes
}

// LookupKind returns the description of code, if it is recognised.
func LookupKind(code string) (Kind, bool) {
	k, ok := kinds[code]
	return k.Kind, ok
}

// ParseReadings converts textual readings into numbers. A token that is not a
// finite decimal number yields ErrMalformedReadings.
func ParseReadings(raw []string) ([]float64, error) {
	out := make([]float64, 0, len(raw))
	for i, s := range raw {
		v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("%w: reading %d (%q) is not a number", ErrMalformedReadings, i+1, s)
		}
		out = append(out, v)
	}
	return out, nil
}

func buildRunning(r []float64) (Training, error) {
	action, err := wholeNumber("action", r[0])
	if err != nil {
		return nil, err
	}
	return NewRunning(action, r[1], r[2])
}

func buildWalking(r []float64) (Training, error) {
	action, err := wholeNumber("action", r[0])
	if err != nil {
		return nil, err
	}
	return NewSportsWalking(action, r[1], r[2], r[3])
}

func buildSwimming(r []float64) (Training, error) {
	action, err := wholeNumber("action", r[0])
	if err != nil {
		return nil, err
	}
	countPool, err := wholeNumber("count_pool", r[4])
	if err != nil {
		return nil, err
	}
	return NewSwimming(action, r[1], r[2], r[3], countPool)
}

// maxCount bounds integer readings to values a float64 represents exactly
// and the platform int can hold.
var maxCount = math.Min(1<<53, math.MaxInt)

// wholeNumber converts a count reading to int.
func wholeNumber(field string, v float64) (int, error) {
	if v != math.Trunc(v) || math.Abs(v) > maxCount {
		return 0, fmt.Errorf("%w: %s must be a whole number, got %v", ErrMalformedReadings, field, v)
	}
	return int(v), nil
}
