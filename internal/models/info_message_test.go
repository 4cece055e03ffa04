package models

import "testing"

// TestMessageLayout verifies the summary line template for a running workout.
func TestMessageLayout(t *testing.T) {
	m := InfoMessage{
		TrainingType: "Running",
		Duration:     1,
		Distance:     9.75,
		Speed:        9.75,
		Calories:     797.805,
	}
	want := "Workout type: Running; Duration: 1.000 h; Distance: 9.750 km; Avg speed: 9.750 km/h; Calories: 797.805."
	if got := m.Message(); got != want {
		t.Errorf("Message() =\n%q\nwant\n%q", got, want)
	}
}

// TestMessageRounding verifies that every numeric field is rendered with three
// decimals regardless of the input precision.
func TestMessageRounding(t *testing.T) {
	cases := []struct {
		name string
		msg  InfoMessage
		want string
	}{
		{
			name: "long fractions",
			msg:  InfoMessage{TrainingType: "Swimming", Duration: 1.23456, Distance: 0.9936, Speed: 1.0004999, Calories: 336.00049},
			want: "Workout type: Swimming; Duration: 1.235 h; Distance: 0.994 km; Avg speed: 1.000 km/h; Calories: 336.000.",
		},
		{
			name: "zero values",
			msg:  InfoMessage{TrainingType: "SportsWalking"},
			want: "Workout type: SportsWalking; Duration: 0.000 h; Distance: 0.000 km; Avg speed: 0.000 km/h; Calories: 0.000.",
		},
		{
			name: "large values",
			msg:  InfoMessage{TrainingType: "Running", Duration: 12, Distance: 123456.7, Speed: 10288.058333, Calories: 1e6},
			want: "Workout type: Running; Duration: 12.000 h; Distance: 123456.700 km; Avg speed: 10288.058 km/h; Calories: 1000000.000.",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.msg.Message(); got != tc.want {
				t.Errorf("Message() =\n%q\nwant\n%q", got, tc.want)
			}
		})
	}
}
