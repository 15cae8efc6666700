// ABOUTME: Workout edit command
// ABOUTME: Opens an inline edit session and commits corrected values

package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/harper/workout/internal/models"
	"github.com/harper/workout/internal/ui"
	"github.com/spf13/cobra"
)

var editCmd = &cobra.Command{
	Use:     "edit <id>",
	Aliases: []string{"e"},
	Short:   "Edit a workout's distance, duration, and cadence or elevation",
	Long: `Edit a workout. Prompts for new values; an empty answer cancels the
edit and leaves the workout untouched. The derived pace or speed is
recomputed after a successful edit.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := resolveID(args[0])
		if err != nil {
			return err
		}

		if err := workoutApp.RequestEdit(id); err != nil {
			return err
		}

		w, err := workoutLog.Find(id)
		if err != nil {
			return err
		}
		fmt.Println(ui.FormatWorkout(w))

		reader := bufio.NewReader(os.Stdin)
		distance, ok, err := promptFloat(reader, "Distance (km)")
		if err != nil {
			return abortEdit(id, err)
		}
		if !ok {
			return cancelEdit(id)
		}
		duration, ok, err := promptFloat(reader, "Duration (min)")
		if err != nil {
			return abortEdit(id, err)
		}
		if !ok {
			return cancelEdit(id)
		}

		label := "Cadence (steps/min)"
		if w.Variant() == models.VariantCycling {
			label = "Elevation gain (m)"
		}
		extra, ok, err := promptFloat(reader, label)
		if err != nil {
			return abortEdit(id, err)
		}
		if !ok {
			return cancelEdit(id)
		}

		edited, err := workoutApp.SubmitEdit(id, distance, duration, extra)
		if err != nil {
			return abortEdit(id, err)
		}

		fmt.Println(ui.FormatWorkout(edited))
		return nil
	},
}

// promptFloat reads one numeric answer. An empty answer means "cancel".
func promptFloat(reader *bufio.Reader, label string) (float64, bool, error) {
	fmt.Printf("%s: ", label)
	line, _ := reader.ReadString('\n')
	line = strings.TrimSpace(line)
	if line == "" {
		return 0, false, nil
	}
	v, err := strconv.ParseFloat(line, 64)
	if err != nil {
		return 0, false, fmt.Errorf("invalid number %q", line)
	}
	return v, true, nil
}

func cancelEdit(id string) error {
	if err := workoutApp.CancelEdit(id); err != nil {
		return err
	}
	fmt.Println("Cancelled.")
	return nil
}

// abortEdit releases the edit session before surfacing the error, so a
// later invocation is not locked out.
func abortEdit(id string, err error) error {
	_ = workoutApp.CancelEdit(id)
	return err
}

func init() {
	rootCmd.AddCommand(editCmd)
}
