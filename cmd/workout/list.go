// ABOUTME: Workout list command
// ABOUTME: Lists logged workouts, optionally sorted by distance or duration

package main

import (
	"fmt"

	"github.com/harper/workout/internal/models"
	"github.com/harper/workout/internal/ui"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List logged workouts",
	RunE: func(cmd *cobra.Command, args []string) error {
		var workouts []models.Workout
		if cmd.Flags().Changed("sort") {
			key, _ := cmd.Flags().GetString("sort")
			var err error
			workouts, err = workoutApp.Sort(key)
			if err != nil {
				return err
			}
		} else {
			workouts = workoutLog.All()
		}

		if len(workouts) == 0 {
			fmt.Println("No workouts logged yet. Use 'workout add' to log one.")
			return nil
		}

		for _, w := range workouts {
			fmt.Println(ui.FormatWorkout(w))
		}
		return nil
	},
}

func init() {
	listCmd.Flags().StringP("sort", "s", "", "sort descending by 'distance' or 'duration'")

	rootCmd.AddCommand(listCmd)
}
