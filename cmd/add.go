package cmd

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/Tiliavir/gym/internal/model"
)

var (
	addSets   int
	addReps   int
	addMuscle string
)

var addCmd = &cobra.Command{
	Use:   "add <day> <name>",
	Short: "Add an exercise to a day",
	Long: "Add an exercise to a day. Known muscles: " + strings.Join(model.Muscles, ", ") +
		".\nOther values are accepted as free-form categories.",
	Args: cobra.MinimumNArgs(2),
	RunE: runAdd,
}

func init() {
	addCmd.Flags().IntVar(&addSets, "sets", 3, "Number of sets")
	addCmd.Flags().IntVar(&addReps, "reps", 12, "Repetitions per set")
	addCmd.Flags().StringVar(&addMuscle, "muscle", model.DefaultMuscle, "Target muscle")
}

func runAdd(cmd *cobra.Command, args []string) error {
	s, err := openDay(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	defer s.Close()

	if _, known := model.CanonicalMuscle(addMuscle); !known {
		logrus.Infof("muscle %q is not one of the known muscles", addMuscle)
	}

	rec, err := s.store.Add(cmd.Context(), model.Draft{
		Name:         strings.Join(args[1:], " "),
		Sets:         addSets,
		Reps:         addReps,
		TargetMuscle: addMuscle,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Added %q to %s (%s)\n", rec.Name, titleCase(s.store.Day()), shortID(rec.ID))
	return nil
}
