package workout

import (
	"time"

	"github.com/Tiliavir/gym/internal/model"
)

// NextPR folds a newly logged value into the current personal record.
//
// The current record is pushed onto its history, then the best of that
// history plus the new entry becomes current. Ties keep the earliest entry.
// Only the last model.MaxPRHistory history entries are kept. The new entry
// itself never enters the history, so a value that does not beat the current
// best is not remembered.
func NextPR(current *model.PRState, value model.PRValue, now time.Time) model.PRState {
	history := []model.PREntry{}
	if current != nil {
		history = append(history, current.History...)
		history = append(history, model.PREntry{Value: current.Value, Date: current.Date})
	}

	all := append(append([]model.PREntry{}, history...), model.PREntry{Value: value, Date: now})
	best := all[0]
	for _, e := range all[1:] {
		if e.Value > best.Value {
			best = e
		}
	}

	if len(history) > model.MaxPRHistory {
		history = history[len(history)-model.MaxPRHistory:]
	}
	return model.PRState{
		Value:   best.Value,
		Date:    best.Date,
		History: history,
	}
}
