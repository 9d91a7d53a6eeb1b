package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Tiliavir/gym/internal/workout"
)

var rmCmd = &cobra.Command{
	Use:     "rm <day> <id>",
	Aliases: []string{"delete"},
	Short:   "Delete an exercise",
	Args:    cobra.ExactArgs(2),
	RunE:    runRm,
}

var checkCmd = &cobra.Command{
	Use:   "check <day> <id>",
	Short: "Tick or untick an exercise",
	Args:  cobra.ExactArgs(2),
	RunE:  runCheck,
}

var noteCmd = &cobra.Command{
	Use:   "note <day> <id> [text]",
	Short: "Set the note of an exercise; without text the note is cleared",
	Args:  cobra.MinimumNArgs(2),
	RunE:  runNote,
}

func runRm(cmd *cobra.Command, args []string) error {
	s, err := openDay(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	defer s.Close()

	id, err := s.store.Resolve(args[1])
	if workout.IsNotFound(err) {
		// Deleting something that is already gone is not an error.
		fmt.Fprintln(cmd.OutOrStdout(), "Nothing to delete.")
		return nil
	}
	if err != nil {
		return err
	}
	if err := s.store.Delete(cmd.Context(), id); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s from %s\n", shortID(id), titleCase(s.store.Day()))
	return nil
}

func runCheck(cmd *cobra.Command, args []string) error {
	s, err := openDay(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	defer s.Close()

	id, err := s.store.Resolve(args[1])
	if err != nil {
		return err
	}
	rec, err := s.store.ToggleChecked(cmd.Context(), id)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), formatRecord(rec))
	return nil
}

func runNote(cmd *cobra.Command, args []string) error {
	s, err := openDay(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	defer s.Close()

	id, err := s.store.Resolve(args[1])
	if err != nil {
		return err
	}
	text := strings.Join(args[2:], " ")
	rec, err := s.store.SetNote(cmd.Context(), id, text)
	if err != nil {
		return err
	}
	if rec.Note == nil {
		fmt.Fprintf(cmd.OutOrStdout(), "Note cleared for %q\n", rec.Name)
		return nil
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Note saved for %q\n", rec.Name)
	return nil
}
