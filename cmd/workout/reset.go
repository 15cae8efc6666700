// ABOUTME: Workout reset command
// ABOUTME: Deletes every workout after a blocking confirmation prompt

package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var resetSkipConfirm bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all workouts",
	RunE: func(cmd *cobra.Command, args []string) error {
		if resetSkipConfirm {
			workoutApp.SetConfirm(func(string) bool { return true })
		}

		deleted, err := workoutApp.DeleteAll()
		if err != nil {
			return fmt.Errorf("failed to delete workouts: %w", err)
		}
		if !deleted {
			fmt.Println("Cancelled.")
			return nil
		}

		color.Green("✓ Deleted all workouts")
		return nil
	},
}

func init() {
	resetCmd.Flags().BoolVar(&resetSkipConfirm, "confirm", false, "skip confirmation prompt")

	rootCmd.AddCommand(resetCmd)
}
