package training

import (
	"fmt"
	"math"

	"github.com/claude/ftracker/internal/models"
)

const (
	walkingCaloriesWeightMultiplier = 0.035
	walkingSpeedHeightMultiplier    = 0.029
	kmhInMsec                       = 0.278
	cmInM                           = 100
)

// SportsWalking is a walk measured in steps. The calorie formula depends on
// the walker's height.
type SportsWalking struct {
	workout
}

// NewSportsWalking validates the readings and returns a walking workout.
// Height is in centimetres.
func NewSportsWalking(action int, duration, weight, height float64) (SportsWalking, error) {
	if !(height > 0) {
		return SportsWalking{}, fmt.Errorf("%w: height must be > 0, got %v", ErrInvalidDomainValue, height)
	}
	w, err := newWorkout(models.Record{Action: action, Duration: duration, Weight: weight, Height: height}, lenStep)
	if err != nil {
		return SportsWalking{}, err
	}
	return SportsWalking{workout: w}, nil
}

func (SportsWalking) TrainingType() string { return "SportsWalking" }

// SpentCalories returns the calories burned during the walk.
func (s SportsWalking) SpentCalories() float64 {
	speedMs := s.MeanSpeed() * kmhInMsec
	heightM := s.rec.Height / cmInM
	return (walkingCaloriesWeightMultiplier*s.rec.Weight +
		(math.Pow(speedMs, 2)/heightM)*walkingSpeedHeightMultiplier*s.rec.Weight) *
		(s.rec.Duration * minInH)
}
