package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Tiliavir/gym/internal/model"
)

const shortIDLen = 8

var showCmd = &cobra.Command{
	Use:   "show <day>",
	Short: "Show the exercises of a day",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func runShow(cmd *cobra.Command, args []string) error {
	s, err := openDay(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	defer s.Close()

	printDay(cmd.OutOrStdout(), s.store.Day(), s.store.Records())
	return nil
}

// printDay lists a day's exercises in display order.
func printDay(w io.Writer, day string, records model.DayCollection) {
	fmt.Fprintf(w, "%s Workout\n", titleCase(day))
	if len(records) == 0 {
		fmt.Fprintln(w, "No exercises yet.")
		return
	}
	for _, r := range records {
		fmt.Fprintln(w, formatRecord(r))
		if r.Note != nil {
			fmt.Fprintf(w, "      note: %s\n", *r.Note)
		}
		if r.PersonalRecord != nil {
			fmt.Fprintf(w, "      PR: %s\n", formatPR(r.PersonalRecord))
		}
	}
}

func formatRecord(r model.ExerciseRecord) string {
	box := "[ ]"
	if r.IsChecked {
		box = "[x]"
	}
	return fmt.Sprintf("  %s %-24s %d sets × %d reps  %-10s (%s)",
		box, r.Name, r.Sets, r.Reps, r.TargetMuscle, shortID(r.ID))
}

// formatPR renders "80 (2026-10-01)", leaving out the date when it is unknown.
func formatPR(pr *model.PRState) string {
	if pr.Date.IsZero() {
		return pr.Value.String()
	}
	return fmt.Sprintf("%s (%s)", pr.Value, pr.Date.Local().Format("2006-01-02"))
}

func shortID(id string) string {
	if len(id) > shortIDLen {
		return id[:shortIDLen]
	}
	return id
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
