// ABOUTME: Root Cobra command and global wiring
// ABOUTME: Opens the configured storage backend and builds the workout app

package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/harper/workout/internal/app"
	"github.com/harper/workout/internal/codec"
	"github.com/harper/workout/internal/config"
	"github.com/harper/workout/internal/kv"
	"github.com/harper/workout/internal/models"
	"github.com/harper/workout/internal/notify"
	"github.com/harper/workout/internal/store"
	"github.com/harper/workout/internal/ui"
	"github.com/spf13/cobra"
)

var (
	cfg        *config.Config
	medium     kv.Medium
	workoutLog *store.Log
	workoutApp *app.App
)

var rootCmd = &cobra.Command{
	Use:   "workout",
	Short: "Log runs and rides on your personal map",
	Long: `Keep a personal log of running and cycling workouts, each anchored
to a point on the map.

Examples:
  workout add running 5 25 150 --lat 41.8781 --lng -87.6298
  workout add cycling 30 90 400
  workout list --sort distance
  workout edit 3f2a1b
  workout export --output workouts.geojson`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		medium, err = cfg.OpenMedium()
		if err != nil {
			return fmt.Errorf("failed to open storage: %w", err)
		}

		workoutLog, err = store.Open(medium)
		if err != nil {
			var derr *codec.DecodeError
			if !errors.As(err, &derr) {
				return fmt.Errorf("failed to load workouts: %w", err)
			}
			// Corrupt store: start empty but tell the user. The stored
			// bytes stay put until the next successful mutation.
			color.Yellow("⚠ Stored workouts could not be read (%v); starting with an empty log", derr)
		}

		notifier := notify.NewScheduler(ui.NewTerminalPresenter())
		workoutApp = app.New(workoutLog, notifier, app.ResolverFunc(resolveHomeOrigin), promptConfirm)
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if medium != nil {
			return medium.Close()
		}
		return nil
	},
}

// resolveHomeOrigin is the positioning fallback when no coordinates are
// passed on the command line.
func resolveHomeOrigin() (models.Coords, error) {
	if origin, ok := cfg.HomeOrigin(); ok {
		return origin, nil
	}
	return models.Coords{}, fmt.Errorf("no home origin configured (set home_lat/home_lng in %s or pass --lat/--lng)", config.GetConfigPath())
}

// promptConfirm is the blocking yes/no prompt used before destructive bulk
// operations.
func promptConfirm(prompt string) bool {
	fmt.Printf("%s [y/N] ", prompt)
	reader := bufio.NewReader(os.Stdin)
	response, _ := reader.ReadString('\n')
	response = strings.TrimSpace(strings.ToLower(response))
	return response == "y" || response == "yes"
}

// resolveID expands a unique id prefix to a full workout id.
func resolveID(arg string) (string, error) {
	if _, err := workoutLog.Find(arg); err == nil {
		return arg, nil
	}

	var match string
	for _, w := range workoutLog.All() {
		id := w.Common().ID
		if strings.HasPrefix(id, arg) {
			if match != "" {
				return "", fmt.Errorf("ambiguous id prefix %q", arg)
			}
			match = id
		}
	}
	if match == "" {
		return "", fmt.Errorf("no workout with id %q", arg)
	}
	return match, nil
}
