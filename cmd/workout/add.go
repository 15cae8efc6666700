// ABOUTME: Workout add command
// ABOUTME: Logs a new running or cycling workout at a map point

package main

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/harper/workout/internal/models"
	"github.com/harper/workout/internal/ui"
	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:     "add <running|cycling> <distance> <duration> <cadence|elevation>",
	Aliases: []string{"a"},
	Short:   "Log a workout",
	Long: `Log a new workout. Distance is in km, duration in minutes. Running
takes a cadence (steps/min), cycling an elevation gain (meters, may be
negative). Coordinates default to the configured home origin.

Examples:
  workout add running 5 25 150
  workout add running 5 25 150 --lat 41.8781 --lng -87.6298
  workout add cycling 30 90 -5`,
	Args: cobra.ExactArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		variant := models.Variant(args[0])
		if variant != models.VariantRunning && variant != models.VariantCycling {
			return fmt.Errorf("unknown workout type %q (use 'running' or 'cycling')", args[0])
		}

		distance, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return fmt.Errorf("invalid distance: %w", err)
		}
		duration, err := strconv.ParseFloat(args[2], 64)
		if err != nil {
			return fmt.Errorf("invalid duration: %w", err)
		}
		extra, err := strconv.ParseFloat(args[3], 64)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", extraName(variant), err)
		}

		coords, err := pickCoords(cmd)
		if err != nil {
			return err
		}

		if err := workoutApp.SelectLocation(coords); err != nil {
			return err
		}
		w, err := workoutApp.SubmitCreate(variant, distance, duration, extra)
		if err != nil {
			return err
		}

		color.Green("✓ Logged %s", w.Common().Description)
		fmt.Println(ui.FormatWorkout(w))
		return nil
	},
}

func extraName(v models.Variant) string {
	if v == models.VariantRunning {
		return "cadence"
	}
	return "elevation"
}

// pickCoords takes explicit --lat/--lng when given, otherwise falls back to
// the one-shot positioning resolver.
func pickCoords(cmd *cobra.Command) (models.Coords, error) {
	latSet := cmd.Flags().Changed("lat")
	lngSet := cmd.Flags().Changed("lng")
	if latSet != lngSet {
		return models.Coords{}, fmt.Errorf("--lat and --lng must be given together")
	}
	if !latSet {
		return workoutApp.ResolveLocation()
	}

	lat, _ := cmd.Flags().GetFloat64("lat")
	lng, _ := cmd.Flags().GetFloat64("lng")
	if err := models.ValidateCoordinates(lat, lng); err != nil {
		return models.Coords{}, err
	}
	return models.Coords{Lat: lat, Lng: lng}, nil
}

func init() {
	addCmd.Flags().Float64("lat", 0, "latitude of the workout location")
	addCmd.Flags().Float64("lng", 0, "longitude of the workout location")
	addCmd.Flags().SetInterspersed(false)

	rootCmd.AddCommand(addCmd)
}
