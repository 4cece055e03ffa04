package models

import "fmt"

const infoMessageLayout = "Workout type: %s; " +
	"Duration: %.3f h; " +
	"Distance: %.3f km; " +
	"Avg speed: %.3f km/h; " +
	"Calories: %.3f."

// InfoMessage is the computed summary of a workout, ready for display.
type InfoMessage struct {
	TrainingType string  `json:"training_type"`
	Duration     float64 `json:"duration"`
	Distance     float64 `json:"distance"`
	Speed        float64 `json:"speed"`
	Calories     float64 `json:"calories"`
}

// Message renders the summary line. Every number is printed with exactly
// three digits after the decimal point.
func (m InfoMessage) Message() string {
	return fmt.Sprintf(infoMessageLayout,
		m.TrainingType, m.Duration, m.Distance, m.Speed, m.Calories)
}
