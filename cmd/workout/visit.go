// ABOUTME: Workout visit command
// ABOUTME: Activates a workout's marker and shows its popup line

package main

import (
	"fmt"

	"github.com/harper/workout/internal/ui"
	"github.com/spf13/cobra"
)

var visitCmd = &cobra.Command{
	Use:     "visit <id>",
	Aliases: []string{"v"},
	Short:   "Open a workout's map marker",
	Long: `Activate a workout's marker, as clicking its list entry would on the
map. Each visit increments the workout's click counter.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := resolveID(args[0])
		if err != nil {
			return err
		}

		w, err := workoutApp.Visit(id)
		if err != nil {
			return err
		}

		fmt.Println(ui.FormatPopup(w))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(visitCmd)
}
