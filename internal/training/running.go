package training

import "github.com/claude/ftracker/internal/models"

const (
	runningCaloriesMeanSpeedMultiplier = 18
	runningCaloriesMeanSpeedShift      = 1.79
)

// Running is a run measured in steps.
type Running struct {
	workout
}

// NewRunning validates the readings and returns a running workout.
func NewRunning(action int, duration, weight float64) (Running, error) {
	w, err := newWorkout(models.Record{Action: action, Duration: duration, Weight: weight}, lenStep)
	if err != nil {
		return Running{}, err
	}
	return Running{workout: w}, nil
}

func (Running) TrainingType() string { return "Running" }

// SpentCalories returns the calories burned during the run.
func (r Running) SpentCalories() float64 {
	return (runningCaloriesMeanSpeedMultiplier*r.MeanSpeed() + runningCaloriesMeanSpeedShift) *
		r.rec.Weight / mInKm * (r.rec.Duration * minInH)
}
