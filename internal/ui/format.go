// ABOUTME: Terminal UI formatting utilities
// ABOUTME: Provides human-readable output for workouts and notifications

package ui

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/harper/workout/internal/models"
	"github.com/harper/workout/internal/notify"
)

// FormatWorkout formats one workout as a list entry.
func FormatWorkout(w models.Workout) string {
	if w == nil {
		return color.New(color.Faint).Sprint("(no workout)")
	}
	b := w.Common()

	line := fmt.Sprintf("%s  %s\n  %s  %.4g km · %.4g min",
		color.New(color.Faint).Sprint(shortID(b.ID)),
		titleColor(w.Variant())(b.Description),
		variantIcon(w.Variant()),
		b.Distance, b.Duration)

	switch w.Variant() {
	case models.VariantRunning:
		line += fmt.Sprintf(" · %.1f min/km · %.4g spm", w.Metric(), w.Extra())
	case models.VariantCycling:
		line += fmt.Sprintf(" · %.1f km/h · %.4g m", w.Metric(), w.Extra())
	}

	line += fmt.Sprintf("  %s", color.New(color.Faint).Sprint(FormatRelativeTime(b.CreatedAt)))
	return line
}

// FormatPopup formats the marker popup line for a workout.
func FormatPopup(w models.Workout) string {
	if w == nil {
		return color.New(color.Faint).Sprint("(no workout)")
	}
	b := w.Common()
	return fmt.Sprintf("%s %s %s",
		variantIcon(w.Variant()),
		b.Description,
		color.New(color.Faint).Sprintf("(%.4f, %.4f)", b.Coords.Lat, b.Coords.Lng))
}

func variantIcon(v models.Variant) string {
	if v == models.VariantRunning {
		return "🏃"
	}
	return "🚴"
}

func titleColor(v models.Variant) func(a ...interface{}) string {
	if v == models.VariantRunning {
		return color.New(color.FgGreen).Sprint
	}
	return color.New(color.FgCyan).Sprint
}

func shortID(id string) string {
	if len(id) > 6 {
		return id[:6]
	}
	return id
}

// FormatRelativeTime formats a time as relative to now.
func FormatRelativeTime(t time.Time) string {
	diff := time.Since(t)

	// Handle future times (clock skew, bad data)
	if diff < 0 {
		return color.YellowString("in the future")
	}

	if diff < time.Minute {
		return "just now"
	}
	if diff < time.Hour {
		mins := int(diff.Minutes())
		if mins == 1 {
			return "1 minute ago"
		}
		return fmt.Sprintf("%d minutes ago", mins)
	}
	if diff < 24*time.Hour {
		hours := int(diff.Hours())
		if hours == 1 {
			return "1 hour ago"
		}
		return fmt.Sprintf("%d hours ago", hours)
	}
	days := int(diff.Hours() / 24)
	if days == 1 {
		return "1 day ago"
	}
	return fmt.Sprintf("%d days ago", days)
}

// TerminalPresenter writes notification lifecycles to a terminal. A CLI has
// no hide transition to animate, so only Display produces output.
type TerminalPresenter struct {
	Out io.Writer
}

// NewTerminalPresenter creates a presenter writing to stderr.
func NewTerminalPresenter() *TerminalPresenter {
	return &TerminalPresenter{Out: os.Stderr}
}

// Display implements notify.Presenter.
func (p *TerminalPresenter) Display(message string, severity notify.Severity) {
	switch severity {
	case notify.Success:
		fmt.Fprintln(p.Out, color.GreenString("✓ %s", message))
	default:
		fmt.Fprintln(p.Out, color.RedString("✗ %s", message))
	}
}

// BeginHide implements notify.Presenter.
func (p *TerminalPresenter) BeginHide() {}

// Clear implements notify.Presenter.
func (p *TerminalPresenter) Clear() {}
