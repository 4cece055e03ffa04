package training

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestReadPackageKinds verifies each code maps to its workout type.
func TestReadPackageKinds(t *testing.T) {
	cases := []struct {
		code     string
		readings []float64
		want     Training
	}{
		{"SWM", []float64{720, 1, 80, 25, 40}, Swimming{}},
		{"RUN", []float64{15000, 1, 75}, Running{}},
		{"WLK", []float64{9000, 1, 75, 180}, SportsWalking{}},
	}
	for _, tc := range cases {
		got, err := ReadPackage(tc.code, tc.readings)
		if err != nil {
			t.Fatalf("ReadPackage(%q): unexpected error: %v", tc.code, err)
		}
		assert.IsType(t, tc.want, got, "ReadPackage(%q)", tc.code)
	}
}

// TestReadPackageUnknownKind verifies unrecognised codes never fall back to a
// default workout.
func TestReadPackageUnknownKind(t *testing.T) {
	for _, code := range []string{"BIK", "", "run", "SWIM", " RUN"} {
		got, err := ReadPackage(code, []float64{1, 1, 1})
		if !errors.Is(err, ErrUnknownWorkoutKind) {
			t.Errorf("ReadPackage(%q) error = %v, want ErrUnknownWorkoutKind", code, err)
		}
		if got != nil {
			t.Errorf("ReadPackage(%q) returned %T, want nil", code, got)
		}
	}
}

// TestReadPackageUnknownKindMessage verifies the error names the bad code.
func TestReadPackageUnknownKindMessage(t *testing.T) {
	_, err := ReadPackage("BIK", []float64{1, 1, 1})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"BIK"`)
}

// TestReadPackageArity verifies missing or extra readings are rejected.
func TestReadPackageArity(t *testing.T) {
	cases := []struct {
		code     string
		readings []float64
	}{
		{"RUN", []float64{1, 1}},
		{"RUN", []float64{15000, 1, 75, 180}},
		{"RUN", nil},
		{"WLK", []float64{9000, 1, 75}},
		{"WLK", []float64{9000, 1, 75, 180, 1}},
		{"SWM", []float64{720, 1, 80, 25}},
		{"SWM", []float64{720, 1, 80, 25, 40, 1}},
	}
	for _, tc := range cases {
		got, err := ReadPackage(tc.code, tc.readings)
		if !errors.Is(err, ErrMalformedReadings) {
			t.Errorf("ReadPackage(%q, %v) error = %v, want ErrMalformedReadings", tc.code, tc.readings, err)
		}
		if got != nil {
			t.Errorf("ReadPackage(%q, %v) returned %T, want nil", tc.code, tc.readings, got)
		}
	}
}

// TestReadPackageArityMessage verifies the error names the code and expected fields.
func TestReadPackageArityMessage(t *testing.T) {
	_, err := ReadPackage("RUN", []float64{1, 1})
	require.Error(t, err)
	msg := err.Error()
	for _, want := range []string{"RUN", "expects 3", "weight", "got 2"} {
		if !strings.Contains(msg, want) {
			t.Errorf("error %q does not mention %q", msg, want)
		}
	}
}

// TestReadPackageNonNumeric verifies non-finite readings and fractional counts
// are malformed.
func TestReadPackageNonNumeric(t *testing.T) {
	cases := []struct {
		name     string
		code     string
		readings []float64
	}{
		{"NaN weight", "RUN", []float64{15000, 1, math.NaN()}},
		{"Inf duration", "RUN", []float64{15000, math.Inf(1), 75}},
		{"fractional steps", "WLK", []float64{9000.5, 1, 75, 180}},
		{"fractional laps", "SWM", []float64{720, 1, 80, 25, 40.5}},
		{"steps beyond int range", "RUN", []float64{1e19, 1, 75}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ReadPackage(tc.code, tc.readings)
			require.ErrorIs(t, err, ErrMalformedReadings)
		})
	}
}

// TestReadPackageDomainErrors verifies invalid values surface as
// ErrInvalidDomainValue and name the code.
func TestReadPackageDomainErrors(t *testing.T) {
	cases := []struct {
		code     string
		readings []float64
		field    string
	}{
		{"RUN", []float64{15000, 0, 75}, "duration"},
		{"RUN", []float64{-5, 1, 75}, "action"},
		{"WLK", []float64{9000, 1, -75, 180}, "weight"},
		{"WLK", []float64{9000, 1, 75, 0}, "height"},
		{"SWM", []float64{720, 1, 80, 0, 40}, "length_pool"},
		{"SWM", []float64{720, 1, 80, 25, -40}, "count_pool"},
	}
	for _, tc := range cases {
		_, err := ReadPackage(tc.code, tc.readings)
		if !errors.Is(err, ErrInvalidDomainValue) {
			t.Errorf("ReadPackage(%q, %v) error = %v, want ErrInvalidDomainValue", tc.code, tc.readings, err)
			continue
		}
		if !strings.Contains(err.Error(), tc.code) || !strings.Contains(err.Error(), tc.field) {
			t.Errorf("error %q should name %s and %s", err, tc.code, tc.field)
		}
	}
}

// TestReadPackageDeterministic verifies the same package always yields the
// same results.
func TestReadPackageDeterministic(t *testing.T) {
	readings := []float64{9000, 1.25, 75, 180}
	a, err := ReadPackage("WLK", readings)
	require.NoError(t, err)
	b, err := ReadPackage("WLK", readings)
	require.NoError(t, err)
	assert.Equal(t, ShowTrainingInfo(a), ShowTrainingInfo(b))
}

// TestParseReadings verifies textual readings are parsed and non-numeric
// tokens are rejected with their position.
func TestParseReadings(t *testing.T) {
	got, err := ParseReadings([]string{"15000", " 1 ", "75.5"})
	require.NoError(t, err)
	assert.Equal(t, []float64{15000, 1, 75.5}, got)

	for _, raw := range [][]string{{"15000", "one", "75"}, {"NaN"}, {"Inf"}, {""}, {"1,5"}} {
		_, err := ParseReadings(raw)
		if !errors.Is(err, ErrMalformedReadings) {
			t.Errorf("ParseReadings(%q) error = %v, want ErrMalformedReadings", raw, err)
		}
	}

	_, err = ParseReadings([]string{"15000", "one", "75"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `reading 2 ("one")`)
}

// TestKinds verifies the kind catalogue is ordered and complete.
func TestKinds(t *testing.T) {
	assert.Equal(t, []string{"RUN", "SWM", "WLK"}, Codes())

	k, ok := LookupKind("SWM")
	require.True(t, ok)
	assert.Equal(t, "Swimming", k.TrainingType)
	assert.Len(t, k.Fields, 5)

	_, ok = LookupKind("BIK")
	assert.False(t, ok)
}

// TestWholeNumberBounds verifies count readings stay within what both a
// float64 and the platform int represent exactly.
func TestWholeNumberBounds(t *testing.T) {
	assert.LessOrEqual(t, maxCount, float64(math.MaxInt))
	assert.LessOrEqual(t, maxCount, float64(1<<53))

	n, err := wholeNumber("action", maxCount)
	require.NoError(t, err)
	assert.Equal(t, maxCount, float64(n))

	_, err = wholeNumber("action", maxCount*2)
	require.ErrorIs(t, err, ErrMalformedReadings)

	_, err = wholeNumber("count_pool", -maxCount*2)
	require.ErrorIs(t, err, ErrMalformedReadings)
}
