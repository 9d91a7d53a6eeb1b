package cmd

import (
	"bytes"
	"testing"
	"time"

	"github.com/Tiliavir/gym/internal/model"
)

func TestCsvEscape(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"plain", "plain"},
		{"bench press", "bench press"},
		{"3x12, slow", `"3x12, slow"`},
		{`the "good" bar`, `"the ""good"" bar"`},
		{"line\nbreak", "\"line\nbreak\""},
		{"with\rreturn", "\"with\rreturn\""},
		{"", ""},
	}
	for _, tt := range tests {
		got := csvEscape(tt.input)
		if got != tt.want {
			t.Errorf("csvEscape(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestPrintCSV(t *testing.T) {
	note := "elbows in, chest up"
	days := []dayExport{
		{Day: "monday", Exercises: model.DayCollection{
			{ID: "a", Name: "bench press", Sets: 3, Reps: 12, TargetMuscle: "Chest", IsChecked: true, Note: &note,
				PersonalRecord: &model.PRState{Value: 80, Date: time.Date(2026, 10, 1, 18, 0, 0, 0, time.UTC)}},
		}},
		{Day: "tuesday", Exercises: model.DayCollection{
			{ID: "b", Name: "row", Sets: 4, Reps: 10, TargetMuscle: "Back"},
		}},
	}

	var buf bytes.Buffer
	printCSV(&buf, days)
	want := "day,id,name,target_muscle,sets,reps,checked,note,pr,pr_date\n" +
		"monday,a,bench press,Chest,3,12,true,\"elbows in, chest up\",80,2026-10-01T18:00:00Z\n" +
		"tuesday,b,row,Back,4,10,false,,,\n"
	if buf.String() != want {
		t.Errorf("printCSV =\n%s\nwant\n%s", buf.String(), want)
	}
}
