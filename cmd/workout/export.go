// ABOUTME: Export command for generating GeoJSON marker output
// ABOUTME: Feeds map renderers with the logged workouts

package main

import (
	"fmt"
	"os"

	"github.com/harper/workout/internal/geojson"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:     "export",
	Aliases: []string{"x"},
	Short:   "Export workouts as GeoJSON markers",
	Long: `Export the workout log as a GeoJSON FeatureCollection of Point
markers, one per workout.

Examples:
  workout export
  workout export --output workouts.geojson`,
	RunE: func(cmd *cobra.Command, args []string) error {
		fc := geojson.ToFeatureCollection(workoutLog.All())
		data, err := fc.Marshal()
		if err != nil {
			return fmt.Errorf("failed to render GeoJSON: %w", err)
		}

		output, _ := cmd.Flags().GetString("output")
		if output == "" {
			fmt.Println(string(data))
			return nil
		}

		if err := os.WriteFile(output, data, 0600); err != nil {
			return fmt.Errorf("failed to write %s: %w", output, err)
		}
		fmt.Printf("Wrote %d workouts to %s\n", workoutLog.Len(), output)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringP("output", "o", "", "write to file instead of stdout")

	rootCmd.AddCommand(exportCmd)
}
