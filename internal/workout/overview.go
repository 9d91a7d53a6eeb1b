package workout

import (
	"context"

	"github.com/Tiliavir/gym/internal/codec"
)

// MinutesPerExercise is the rough time budget used to estimate a session's length.
const MinutesPerExercise = 15

// TrainingDays are the days shown in the weekly plan.
var TrainingDays = []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday"}

// DaySummary is one row of the weekly plan.
type DaySummary struct {
	Day              string `json:"day"`
	Exercises        int    `json:"exercises"`
	Checked          int    `json:"checked"`
	EstimatedMinutes int    `json:"estimated_minutes"`
}

// Overview summarises every training day. It only reads, so checkmarks
// reflect what is stored and no daily reset is applied.
func Overview(ctx context.Context, c *codec.Codec) ([]DaySummary, error) {
	out := make([]DaySummary, 0, len(TrainingDays))
	for _, day := range TrainingDays {
		coll, err := c.Decode(ctx, day)
		if err != nil {
			return nil, err
		}
		sum := DaySummary{
			Day:              day,
			Exercises:        len(coll),
			EstimatedMinutes: len(coll) * MinutesPerExercise,
		}
		for _, r := range coll {
			if r.IsChecked {
				sum.Checked++
			}
		}
		out = append(out, sum)
	}
	return out, nil
}
