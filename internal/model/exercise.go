package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// MaxPRHistory is the number of superseded personal records kept per exercise.
const MaxPRHistory = 5

// ExerciseRecord is a single exercise attached to a training day.
type ExerciseRecord struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Sets           int      `json:"sets"`
	Reps           int      `json:"reps"`
	TargetMuscle   string   `json:"targetMuscle"`
	IsChecked      bool     `json:"isChecked"`
	Note           *string  `json:"note,omitempty"`
	PersonalRecord *PRState `json:"pr,omitempty"`
}

// PRState is the current personal record of an exercise plus the bests it replaced.
type PRState struct {
	Value   PRValue   `json:"value"`
	Date    time.Time `json:"date"`
	History []PREntry `json:"history"`
}

// PREntry is one recorded value in a PR history.
type PREntry struct {
	Value PRValue   `json:"value"`
	Date  time.Time `json:"date"`
}

// Draft carries the user input for a new exercise.
type Draft struct {
	Name         string
	Sets         int
	Reps         int
	TargetMuscle string
}

// DayCollection is the ordered list of exercises for one day.
// Order is insertion order and is the display order.
type DayCollection []ExerciseRecord

// Clone returns a deep copy so callers can mutate without touching the original.
func (c DayCollection) Clone() DayCollection {
	if c == nil {
		return nil
	}
	out := make(DayCollection, len(c))
	for i, r := range c {
		out[i] = r.Clone()
	}
	return out
}

// Index returns the position of the record with the given id, or -1.
func (c DayCollection) Index(id string) int {
	for i := range c {
		if c[i].ID == id {
			return i
		}
	}
	return -1
}

// Clone returns a deep copy of the record.
func (r ExerciseRecord) Clone() ExerciseRecord {
	if r.Note != nil {
		note := *r.Note
		r.Note = &note
	}
	if r.PersonalRecord != nil {
		pr := *r.PersonalRecord
		pr.History = append([]PREntry(nil), pr.History...)
		r.PersonalRecord = &pr
	}
	return r
}

// PRValue is a numeric personal-record value such as a weight in kg.
// It is stored as a numeric string to stay compatible with existing data.
type PRValue float64

// ParsePRValue parses user input into a PRValue.
func ParsePRValue(s string) (PRValue, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty value")
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%q is not a number", s)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%q is not a finite number", s)
	}
	return PRValue(f), nil
}

// String formats the value with the fewest digits that round-trip, e.g. "80" or "82.5".
func (v PRValue) String() string {
	return strconv.FormatFloat(float64(v), 'f', -1, 64)
}

// MarshalJSON writes the value as a JSON string.
func (v PRValue) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.String())
}

// UnmarshalJSON accepts both "80" and 80.
func (v *PRValue) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*v = 0
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		if strings.TrimSpace(s) == "" {
			*v = 0
			return nil
		}
		parsed, err := ParsePRValue(s)
		if err != nil {
			return err
		}
		*v = parsed
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("pr value: %w", err)
	}
	*v = PRValue(f)
	return nil
}
