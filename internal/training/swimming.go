package training

import (
	"fmt"

	"github.com/claude/ftracker/internal/models"
)

const (
	swimmingLenStep                  = 1.38 // stroke length in metres
	swimmingCaloriesMeanSpeedShift   = 1.1
	swimmingCaloriesWeightMultiplier = 2
)

// Swimming is a pool swim. Distance counts strokes, but speed is derived from
// the laps swum.
type Swimming struct {
	workout
}

// NewSwimming validates the readings and returns a swimming workout.
// lengthPool is in metres, countPool is the number of laps.
func NewSwimming(action int, duration, weight, lengthPool float64, countPool int) (Swimming, error) {
	if !(lengthPool > 0) {
		return Swimming{}, fmt.Errorf("%w: length_pool must be > 0, got %v", ErrInvalidDomainValue, lengthPool)
	}
	if countPool < 0 {
		return Swimming{}, fmt.Errorf("%w: count_pool must be >= 0, got %d", ErrInvalidDomainValue, countPool)
	}
	rec := models.Record{
		Action:     action,
		Duration:   duration,
		Weight:     weight,
		LengthPool: lengthPool,
		CountPool:  countPool,
	}
	w, err := newWorkout(rec, swimmingLenStep)
	if err != nil {
		return Swimming{}, err
	}
	return Swimming{workout: w}, nil
}

func (Swimming) TrainingType() string { return "Swimming" }

// MeanSpeed returns the average speed in km/h from pool length and lap count.
// The stroke count does not affect it.
func (s Swimming) MeanSpeed() float64 {
	return s.rec.LengthPool * float64(s.rec.CountPool) / mInKm / s.rec.Duration
}

// SpentCalories returns the calories burned during the swim.
func (s Swimming) SpentCalories() float64 {
	return (s.MeanSpeed() + swimmingCaloriesMeanSpeedShift) *
		swimmingCaloriesWeightMultiplier * s.rec.Weight * s.rec.Duration
}
