package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/Tiliavir/gym/internal/daycalc"
	"github.com/Tiliavir/gym/internal/workout"
)

var weekFormat string

var weekCmd = &cobra.Command{
	Use:   "week",
	Short: "Show the training plan for the week",
	Args:  cobra.NoArgs,
	RunE:  runWeek,
}

func init() {
	weekCmd.Flags().StringVar(&weekFormat, "format", "md", "Output format: md, csv, json")
}

func runWeek(cmd *cobra.Command, args []string) error {
	s, err := openSession(cmd.Context())
	if err != nil {
		return err
	}
	defer s.Close()

	days, err := workout.Overview(cmd.Context(), s.codec)
	if err != nil {
		return err
	}
	return printWeek(cmd.OutOrStdout(), days, weekFormat)
}

func printWeek(w io.Writer, days []workout.DaySummary, format string) error {
	switch format {
	case "csv":
		fmt.Fprintln(w, "day,exercises,checked,estimated_minutes")
		for _, d := range days {
			fmt.Fprintf(w, "%s,%d,%d,%d\n", d.Day, d.Exercises, d.Checked, d.EstimatedMinutes)
		}
	case "json":
		data, err := json.MarshalIndent(days, "", "  ")
		if err != nil {
			return fmt.Errorf("error encoding JSON: %w", err)
		}
		fmt.Fprintln(w, string(data))
	case "md":
		fmt.Fprintln(w, "Training Plan")
		fmt.Fprintln(w, "--------------------------------------------")
		for _, d := range days {
			duration := "Plan your workout"
			if d.Exercises > 0 {
				duration = daycalc.FormatMinutes(d.EstimatedMinutes)
			}
			fmt.Fprintf(w, "%-12s%2d exercises  %-18s%d/%d done\n",
				titleCase(d.Day), d.Exercises, duration, d.Checked, d.Exercises)
		}
	default:
		return fmt.Errorf("%w: unknown format %q", errUsage, format)
	}
	return nil
}
