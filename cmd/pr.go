package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/Tiliavir/gym/internal/model"
)

var prCmd = &cobra.Command{
	Use:   "pr <day> <id> <value>",
	Short: "Log a personal-record attempt (e.g. weight in kg)",
	Args:  cobra.ExactArgs(3),
	RunE:  runPR,
}

func runPR(cmd *cobra.Command, args []string) error {
	s, err := openDay(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	defer s.Close()

	id, err := s.store.Resolve(args[1])
	if err != nil {
		return err
	}
	recs := s.store.Records()
	before := recs[recs.Index(id)].PersonalRecord
	rec, err := s.store.RecordPR(cmd.Context(), id, args[2])
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	if before == nil || rec.PersonalRecord.Value > before.Value {
		fmt.Fprintf(w, "New personal record for %q: %s\n", rec.Name, rec.PersonalRecord.Value)
	} else {
		fmt.Fprintf(w, "Personal record for %q stays at %s\n", rec.Name, rec.PersonalRecord.Value)
	}
	printPRHistory(w, rec.PersonalRecord)
	return nil
}

// printPRHistory lists earlier bests, most recent first.
func printPRHistory(w io.Writer, pr *model.PRState) {
	if len(pr.History) == 0 {
		return
	}
	fmt.Fprintln(w, "History:")
	for i := len(pr.History) - 1; i >= 0; i-- {
		e := pr.History[i]
		fmt.Fprintf(w, "  %s\n", formatPR(&model.PRState{Value: e.Value, Date: e.Date}))
	}
}
