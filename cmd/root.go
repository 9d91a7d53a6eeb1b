package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Tiliavir/gym/internal/config"
	"github.com/Tiliavir/gym/internal/logging"
	"github.com/Tiliavir/gym/internal/workout"
)

var (
	configPath  string
	backendFlag string
	logLevel    string

	cfg config.Config
)

var rootCmd = &cobra.Command{
	Use:   "gym",
	Short: "gym – your daily gym companion",
	Long: `gym keeps a workout plan per weekday: add exercises, tick them off,
write notes and log personal records. Checkmarks clear themselves on the
first visit of a new day. Data lives in ~/.gym/ unless configured otherwise.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}

// exitCode is 1 for bad input and 2 for storage or configuration trouble.
func exitCode(err error) int {
	if workout.IsValidation(err) || workout.IsNotFound(err) || errors.Is(err, errUsage) {
		return 1
	}
	return 2
}

var errUsage = errors.New("usage error")

func setup(cmd *cobra.Command, args []string) error {
	loaded, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if backendFlag != "" {
		loaded.Storage.Backend = backendFlag
	}
	if logLevel != "" {
		loaded.Log.Level = logLevel
	}
	logging.Setup(logging.SetupParams{
		Level:      loaded.Log.Level,
		FormatJSON: loaded.Log.JSON,
		FileName:   loaded.Log.File,
	})
	cfg = loaded
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default ~/.gym/config.json)")
	rootCmd.PersistentFlags().StringVar(&backendFlag, "backend", "", "Storage backend: file, sqlite, redis, memory")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: trace, debug, info, warn, error")

	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(rmCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(noteCmd)
	rootCmd.AddCommand(prCmd)
	rootCmd.AddCommand(weekCmd)
	rootCmd.AddCommand(exportCmd)
}
