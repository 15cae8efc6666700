// ABOUTME: Workout remove command
// ABOUTME: Deletes a single workout from the log

package main

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var removeCmd = &cobra.Command{
	Use:     "remove <id>",
	Aliases: []string{"rm"},
	Short:   "Remove a workout",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := resolveID(args[0])
		if err != nil {
			return err
		}

		w, err := workoutLog.Find(id)
		if err != nil {
			return err
		}

		if err := workoutApp.Delete(id); err != nil {
			return err
		}

		color.Green("✓ Removed %s", w.Common().Description)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(removeCmd)
}
