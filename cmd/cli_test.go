package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tiliavir/gym/internal/model"
)

// writeTestConfig points the file backend at a temp directory.
func writeTestConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	content := fmt.Sprintf(`{"storage": {"backend": "file", "dir": %q}, "log": {"level": "error"}}`, filepath.Join(dir, "data"))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func run(t *testing.T, cfgPath string, args ...string) (string, error) {
	t.Helper()
	// Flag variables outlive a single Execute.
	addSets, addReps, addMuscle = 3, 12, model.DefaultMuscle
	exportFormat, weekFormat = "csv", "md"
	backendFlag, logLevel = "", ""

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(append([]string{"--config", cfgPath}, args...))
	err := rootCmd.Execute()
	return out.String(), err
}

func exportDay(t *testing.T, cfgPath, day string) model.DayCollection {
	t.Helper()
	out, err := run(t, cfgPath, "export", day, "--format", "json")
	require.NoError(t, err)
	var days []dayExport
	require.NoError(t, json.Unmarshal([]byte(out), &days))
	require.Len(t, days, 1)
	return days[0].Exercises
}

func TestCLIWorkflow(t *testing.T) {
	cfgPath := writeTestConfig(t)

	out, err := run(t, cfgPath, "add", "Monday", "bench", "press", "--sets", "4", "--reps", "8")
	require.NoError(t, err)
	assert.Contains(t, out, `Added "bench press" to Monday`)

	recs := exportDay(t, cfgPath, "monday")
	require.Len(t, recs, 1)
	id := recs[0].ID
	assert.Equal(t, 4, recs[0].Sets)
	assert.Equal(t, 8, recs[0].Reps)
	assert.Equal(t, "Chest", recs[0].TargetMuscle)

	out, err = run(t, cfgPath, "check", "mon", id[:8])
	require.NoError(t, err)
	assert.Contains(t, out, "[x] bench press")

	_, err = run(t, cfgPath, "note", "monday", id, "pause", "at", "the", "bottom")
	require.NoError(t, err)

	out, err = run(t, cfgPath, "pr", "monday", id, "80")
	require.NoError(t, err)
	assert.Contains(t, out, "New personal record")

	out, err = run(t, cfgPath, "pr", "monday", id, "75")
	require.NoError(t, err)
	assert.Contains(t, out, "stays at 80")
	assert.Contains(t, out, "History:")

	out, err = run(t, cfgPath, "show", "monday")
	require.NoError(t, err)
	assert.Contains(t, out, "Monday Workout")
	assert.Contains(t, out, "[x] bench press")
	assert.Contains(t, out, "note: pause at the bottom")
	assert.Contains(t, out, "PR: 80")

	out, err = run(t, cfgPath, "week", "--format", "csv")
	require.NoError(t, err)
	assert.Contains(t, out, "monday,1,1,15")
	assert.Contains(t, out, "tuesday,0,0,0")

	_, err = run(t, cfgPath, "rm", "monday", id)
	require.NoError(t, err)
	out, err = run(t, cfgPath, "rm", "monday", id)
	require.NoError(t, err)
	assert.Contains(t, out, "Nothing to delete.")
	assert.Empty(t, exportDay(t, cfgPath, "monday"))
}

func TestCLIErrors(t *testing.T) {
	cfgPath := writeTestConfig(t)

	_, err := run(t, cfgPath, "show", "funday")
	require.Error(t, err)
	assert.Equal(t, 1, exitCode(err))

	_, err = run(t, cfgPath, "add", "monday", "squat", "--sets", "0")
	require.Error(t, err)
	assert.Equal(t, 1, exitCode(err))

	_, err = run(t, cfgPath, "check", "monday", "nope")
	require.Error(t, err)
	assert.Equal(t, 1, exitCode(err))

	_, err = run(t, cfgPath, "--backend", "floppy", "show", "monday")
	require.Error(t, err)
	assert.Equal(t, 2, exitCode(err))
}
