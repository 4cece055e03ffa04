// Package training computes distance, mean speed and spent calories for the
// supported workout kinds and builds the matching summary.
package training

import (
	"fmt"

	"github.com/claude/ftracker/internal/models"
)

const (
	mInKm   = 1000 // metres in a kilometre
	minInH  = 60   // minutes in an hour
	lenStep = 0.65 // step length in metres
)

// Training is a workout whose results can be computed from its readings.
// Implementations are Running, SportsWalking and Swimming.
type Training interface {
	TrainingType() string
	Record() models.Record
	Distance() float64      // km
	MeanSpeed() float64     // km/h
	SpentCalories() float64 // kcal
}

// workout holds what every kind shares: the record and the length of a single
// movement unit.
type workout struct {
	rec     models.Record
	lenStep float64
}

func newWorkout(rec models.Record, step float64) (workout, error) {
	if rec.Action < 0 {
		return workout{}, fmt.Errorf("%w: action must be >= 0, got %d", ErrInvalidDomainValue, rec.Action)
	}
	if !(rec.Duration > 0) {
		return workout{}, fmt.Errorf("%w: duration must be > 0, got %v", ErrInvalidDomainValue, rec.Duration)
	}
	if !(rec.Weight > 0) {
		return workout{}, fmt.Errorf("%w: weight must be > 0, got %v", ErrInvalidDomainValue, rec.Weight)
	}
	return workout{rec: rec, lenStep: step}, nil
}

// Record returns the readings the workout was built from.
func (w workout) Record() models.Record { return w.rec }

// Distance returns the distance covered in kilometres.
func (w workout) Distance() float64 {
	return float64(w.rec.Action) * w.lenStep / mInKm
}

// MeanSpeed returns the average speed over the whole workout in km/h.
func (w workout) MeanSpeed() float64 {
	return w.Distance() / w.rec.Duration
}

// ShowTrainingInfo computes the results of t and returns them as a summary.
func ShowTrainingInfo(t Training) models.InfoMessage {
	return models.InfoMessage{
		TrainingType: t.TrainingType(),
		Duration:     t.Record().Duration,
		Distance:     t.Distance(),
		Speed:        t.MeanSpeed(),
		Calories:     t.SpentCalories(),
	}
}
