package cmd

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/Tiliavir/gym/internal/model"
	"github.com/Tiliavir/gym/internal/workout"
)

func TestShortID(t *testing.T) {
	tests := []struct {
		id   string
		want string
	}{
		{"", ""},
		{"abc", "abc"},
		{"0123456789abcdef", "01234567"},
	}
	for _, tt := range tests {
		got := shortID(tt.id)
		if got != tt.want {
			t.Errorf("shortID(%q) = %q, want %q", tt.id, got, tt.want)
		}
	}
}

func TestFormatPR(t *testing.T) {
	undated := &model.PRState{Value: 60}
	if got := formatPR(undated); got != "60" {
		t.Errorf("formatPR(undated) = %q, want %q", got, "60")
	}
	dated := &model.PRState{Value: 82.5, Date: time.Date(2026, 10, 1, 12, 0, 0, 0, time.Local)}
	if got := formatPR(dated); got != "82.5 (2026-10-01)" {
		t.Errorf("formatPR(dated) = %q, want %q", got, "82.5 (2026-10-01)")
	}
}

func TestPrintDay(t *testing.T) {
	var buf bytes.Buffer
	printDay(&buf, "monday", nil)
	if got := buf.String(); got != "Monday Workout\nNo exercises yet.\n" {
		t.Errorf("printDay(empty) = %q", got)
	}

	note := "pause at the bottom"
	buf.Reset()
	printDay(&buf, "monday", model.DayCollection{{
		ID: "abcdef123456", Name: "bench press", Sets: 3, Reps: 12, TargetMuscle: "Chest",
		IsChecked: true, Note: &note, PersonalRecord: &model.PRState{Value: 80},
	}})
	out := buf.String()
	for _, want := range []string{"[x] bench press", "3 sets × 12 reps", "(abcdef12)", "note: pause at the bottom", "PR: 80"} {
		if !strings.Contains(out, want) {
			t.Errorf("printDay output missing %q:\n%s", want, out)
		}
	}
}

func TestPrintPRHistoryNewestFirst(t *testing.T) {
	var buf bytes.Buffer
	printPRHistory(&buf, &model.PRState{Value: 90, History: []model.PREntry{{Value: 70}, {Value: 80}}})
	if got := buf.String(); got != "History:\n  80\n  70\n" {
		t.Errorf("printPRHistory = %q", got)
	}
}

func TestPrintWeek(t *testing.T) {
	days := []workout.DaySummary{
		{Day: "monday", Exercises: 2, Checked: 1, EstimatedMinutes: 30},
		{Day: "tuesday"},
	}

	var buf bytes.Buffer
	if err := printWeek(&buf, days, "csv"); err != nil {
		t.Fatal(err)
	}
	want := "day,exercises,checked,estimated_minutes\nmonday,2,1,30\ntuesday,0,0,0\n"
	if buf.String() != want {
		t.Errorf("printWeek(csv) = %q, want %q", buf.String(), want)
	}

	buf.Reset()
	if err := printWeek(&buf, days, "md"); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "30 mins") || !strings.Contains(buf.String(), "Plan your workout") {
		t.Errorf("printWeek(md) = %q", buf.String())
	}

	if err := printWeek(&buf, days, "xml"); err == nil || exitCode(err) != 1 {
		t.Errorf("printWeek(xml) err = %v, want usage error", err)
	}
}
