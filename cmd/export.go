package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/Tiliavir/gym/internal/model"
	"github.com/Tiliavir/gym/internal/workout"
)

var exportFormat string

var exportCmd = &cobra.Command{
	Use:   "export [day]",
	Short: "Export exercises to stdout (all training days when no day is given)",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportFormat, "format", "csv", "Output format: csv, json, md")
}

// dayExport is one day's collection as exported.
type dayExport struct {
	Day       string              `json:"day"`
	Exercises model.DayCollection `json:"exercises"`
}

func runExport(cmd *cobra.Command, args []string) error {
	var days []dayExport
	if len(args) == 1 {
		s, err := openDay(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		defer s.Close()
		days = append(days, dayExport{Day: s.store.Day(), Exercises: s.store.Records()})
	} else {
		s, err := openSession(cmd.Context())
		if err != nil {
			return err
		}
		defer s.Close()
		for _, day := range workout.TrainingDays {
			coll, err := s.codec.Decode(cmd.Context(), day)
			if err != nil {
				return err
			}
			days = append(days, dayExport{Day: day, Exercises: coll})
		}
	}

	w := cmd.OutOrStdout()
	switch exportFormat {
	case "json":
		data, err := json.MarshalIndent(days, "", "  ")
		if err != nil {
			return fmt.Errorf("error encoding JSON: %w", err)
		}
		fmt.Fprintln(w, string(data))
	case "md":
		for _, d := range days {
			printDay(w, d.Day, d.Exercises)
		}
	case "csv":
		printCSV(w, days)
	default:
		return fmt.Errorf("%w: unknown format %q", errUsage, exportFormat)
	}
	return nil
}

func printCSV(w io.Writer, days []dayExport) {
	fmt.Fprintln(w, "day,id,name,target_muscle,sets,reps,checked,note,pr,pr_date")
	for _, d := range days {
		for _, r := range d.Exercises {
			note := ""
			if r.Note != nil {
				note = *r.Note
			}
			pr, prDate := "", ""
			if r.PersonalRecord != nil {
				pr = r.PersonalRecord.Value.String()
				if !r.PersonalRecord.Date.IsZero() {
					prDate = r.PersonalRecord.Date.Format(time.RFC3339)
				}
			}
			fmt.Fprintf(w, "%s,%s,%s,%s,%d,%d,%t,%s,%s,%s\n",
				csvEscape(d.Day),
				csvEscape(r.ID),
				csvEscape(r.Name),
				csvEscape(r.TargetMuscle),
				r.Sets,
				r.Reps,
				r.IsChecked,
				csvEscape(note),
				csvEscape(pr),
				csvEscape(prDate),
			)
		}
	}
}

// csvEscape wraps a field in quotes if it contains a comma, quote, or newline.
func csvEscape(s string) string {
	if !strings.ContainsAny(s, ",\"\n\r") {
		return s
	}
	// Escape internal double quotes by doubling them.
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
