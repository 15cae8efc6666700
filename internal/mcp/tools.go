// ABOUTME: MCP tool definitions and handlers
// ABOUTME: Provides workout log operations for AI agents

package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/harper/workout/internal/models"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerTools() {
	s.registerLogWorkoutTool()
	s.registerListWorkoutsTool()
	s.registerEditWorkoutTool()
	s.registerRemoveWorkoutTool()
	s.registerVisitWorkoutTool()
}

// LogWorkoutInput defines input for the log_workout tool.
type LogWorkoutInput struct {
	Type          string   `json:"type"`
	Latitude      *float64 `json:"latitude,omitempty"`
	Longitude     *float64 `json:"longitude,omitempty"`
	Distance      float64  `json:"distance"`
	Duration      float64  `json:"duration"`
	Cadence       *float64 `json:"cadence,omitempty"`
	ElevationGain *float64 `json:"elevation_gain,omitempty"`
}

// WorkoutOutput defines output for workout tools.
type WorkoutOutput struct {
	ID            string    `json:"id"`
	Type          string    `json:"type"`
	Latitude      float64   `json:"latitude"`
	Longitude     float64   `json:"longitude"`
	Distance      float64   `json:"distance"`
	Duration      float64   `json:"duration"`
	Description   string    `json:"description"`
	CreatedAt     time.Time `json:"created_at"`
	Clicks        int       `json:"clicks"`
	Cadence       *float64  `json:"cadence,omitempty"`
	Pace          *float64  `json:"pace,omitempty"`
	ElevationGain *float64  `json:"elevation_gain,omitempty"`
	Speed         *float64  `json:"speed,omitempty"`
}

func toOutput(w models.Workout) WorkoutOutput {
	b := w.Common()
	out := WorkoutOutput{
		ID:          b.ID,
		Type:        string(w.Variant()),
		Latitude:    b.Coords.Lat,
		Longitude:   b.Coords.Lng,
		Distance:    b.Distance,
		Duration:    b.Duration,
		Description: b.Description,
		CreatedAt:   b.CreatedAt,
		Clicks:      b.Clicks,
	}
	extra := w.Extra()
	metric := w.Metric()
	switch w.Variant() {
	case models.VariantRunning:
		out.Cadence = &extra
		out.Pace = &metric
	case models.VariantCycling:
		out.ElevationGain = &extra
		out.Speed = &metric
	}
	return out
}

func textResult(v interface{}) *mcp.CallToolResult {
	jsonBytes, _ := json.MarshalIndent(v, "", "  ") //nolint:errchkjson // output is always serializable
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: string(jsonBytes)}},
	}
}

func (s *Server) registerLogWorkoutTool() {
	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "log_workout",
		Description: "Log a running or cycling workout anchored to a map point. Omit latitude/longitude to use the configured home origin.",
		InputSchema: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"type": map[string]interface{}{
					"type":        "string",
					"description": "Workout type: 'running' or 'cycling'",
				},
				"latitude": map[string]interface{}{
					"type":        "number",
					"description": "Latitude coordinate (-90 to 90)",
				},
				"longitude": map[string]interface{}{
					"type":        "number",
					"description": "Longitude coordinate (-180 to 180)",
				},
				"distance": map[string]interface{}{
					"type":        "number",
					"description": "Distance in kilometers (positive)",
				},
				"duration": map[string]interface{}{
					"type":        "number",
					"description": "Duration in minutes (positive)",
				},
				"cadence": map[string]interface{}{
					"type":        "number",
					"description": "Steps per minute (running only, positive)",
				},
				"elevation_gain": map[string]interface{}{
					"type":        "number",
					"description": "Elevation gain in meters (cycling only, may be negative)",
				},
			},
			"required": []string{"type", "distance", "duration"},
		},
	}, s.handleLogWorkout)
}

func (s *Server) handleLogWorkout(_ context.Context, req *mcp.CallToolRequest, input LogWorkoutInput) (*mcp.CallToolResult, WorkoutOutput, error) {
	variant := models.Variant(input.Type)

	var extra float64
	switch variant {
	case models.VariantRunning:
		if input.Cadence == nil {
			return nil, WorkoutOutput{}, fmt.Errorf("running workouts require cadence")
		}
		extra = *input.Cadence
	case models.VariantCycling:
		if input.ElevationGain == nil {
			return nil, WorkoutOutput{}, fmt.Errorf("cycling workouts require elevation_gain")
		}
		extra = *input.ElevationGain
	default:
		return nil, WorkoutOutput{}, fmt.Errorf("unknown workout type %q", input.Type)
	}

	var coords models.Coords
	if input.Latitude != nil && input.Longitude != nil {
		coords = models.Coords{Lat: *input.Latitude, Lng: *input.Longitude}
		if err := models.ValidateCoordinates(coords.Lat, coords.Lng); err != nil {
			return nil, WorkoutOutput{}, err
		}
	} else {
		var err error
		coords, err = s.app.ResolveLocation()
		if err != nil {
			return nil, WorkoutOutput{}, err
		}
	}

	if err := s.app.SelectLocation(coords); err != nil {
		return nil, WorkoutOutput{}, err
	}
	w, err := s.app.SubmitCreate(variant, input.Distance, input.Duration, extra)
	if err != nil {
		return nil, WorkoutOutput{}, err
	}

	output := toOutput(w)
	return textResult(output), output, nil
}

// ListWorkoutsInput defines input for the list_workouts tool.
type ListWorkoutsInput struct {
	SortBy *string `json:"sort_by,omitempty"`
}

// ListWorkoutsOutput defines output for the list_workouts tool.
type ListWorkoutsOutput struct {
	Workouts []WorkoutOutput `json:"workouts"`
}

func (s *Server) registerListWorkoutsTool() {
	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "list_workouts",
		Description: "List logged workouts in creation order, or sorted descending by 'distance' or 'duration'.",
		InputSchema: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"sort_by": map[string]interface{}{
					"type":        "string",
					"description": "Optional sort key: 'distance' or 'duration'",
				},
			},
		},
	}, s.handleListWorkouts)
}

func (s *Server) handleListWorkouts(_ context.Context, req *mcp.CallToolRequest, input ListWorkoutsInput) (*mcp.CallToolResult, ListWorkoutsOutput, error) {
	var workouts []models.Workout
	if input.SortBy != nil {
		var err error
		workouts, err = s.app.Sort(*input.SortBy)
		if err != nil {
			return nil, ListWorkoutsOutput{}, err
		}
	} else {
		workouts = s.app.Log().All()
	}

	output := ListWorkoutsOutput{Workouts: make([]WorkoutOutput, 0, len(workouts))}
	for _, w := range workouts {
		output.Workouts = append(output.Workouts, toOutput(w))
	}
	return textResult(output), output, nil
}

// EditWorkoutInput defines input for the edit_workout tool.
type EditWorkoutInput struct {
	ID            string   `json:"id"`
	Distance      float64  `json:"distance"`
	Duration      float64  `json:"duration"`
	Cadence       *float64 `json:"cadence,omitempty"`
	ElevationGain *float64 `json:"elevation_gain,omitempty"`
}

func (s *Server) registerEditWorkoutTool() {
	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "edit_workout",
		Description: "Edit a workout's distance, duration, and cadence or elevation gain. The derived pace or speed is recomputed.",
		InputSchema: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"id": map[string]interface{}{
					"type":        "string",
					"description": "Workout id",
				},
				"distance": map[string]interface{}{
					"type":        "number",
					"description": "New distance in kilometers (positive)",
				},
				"duration": map[string]interface{}{
					"type":        "number",
					"description": "New duration in minutes (positive)",
				},
				"cadence": map[string]interface{}{
					"type":        "number",
					"description": "New cadence (running workouts)",
				},
				"elevation_gain": map[string]interface{}{
					"type":        "number",
					"description": "New elevation gain (cycling workouts)",
				},
			},
			"required": []string{"id", "distance", "duration"},
		},
	}, s.handleEditWorkout)
}

func (s *Server) handleEditWorkout(_ context.Context, req *mcp.CallToolRequest, input EditWorkoutInput) (*mcp.CallToolResult, WorkoutOutput, error) {
	w, err := s.app.Log().Find(input.ID)
	if err != nil {
		return nil, WorkoutOutput{}, fmt.Errorf("workout %q not found", input.ID)
	}

	var extra float64
	switch w.Variant() {
	case models.VariantRunning:
		if input.Cadence == nil {
			return nil, WorkoutOutput{}, fmt.Errorf("running workouts require cadence")
		}
		extra = *input.Cadence
	case models.VariantCycling:
		if input.ElevationGain == nil {
			return nil, WorkoutOutput{}, fmt.Errorf("cycling workouts require elevation_gain")
		}
		extra = *input.ElevationGain
	}

	if err := s.app.RequestEdit(input.ID); err != nil {
		return nil, WorkoutOutput{}, err
	}
	edited, err := s.app.SubmitEdit(input.ID, input.Distance, input.Duration, extra)
	if err != nil {
		// Release the session so the next tool call isn't locked out.
		_ = s.app.CancelEdit(input.ID)
		return nil, WorkoutOutput{}, err
	}

	output := toOutput(edited)
	return textResult(output), output, nil
}

// RemoveWorkoutInput defines input for the remove_workout tool.
type RemoveWorkoutInput struct {
	ID string `json:"id"`
}

// RemoveWorkoutOutput defines output for the remove_workout tool.
type RemoveWorkoutOutput struct {
	Removed string `json:"removed"`
}

func (s *Server) registerRemoveWorkoutTool() {
	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "remove_workout",
		Description: "Remove a workout from the log by id.",
		InputSchema: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"id": map[string]interface{}{
					"type":        "string",
					"description": "Workout id",
				},
			},
			"required": []string{"id"},
		},
	}, s.handleRemoveWorkout)
}

func (s *Server) handleRemoveWorkout(_ context.Context, req *mcp.CallToolRequest, input RemoveWorkoutInput) (*mcp.CallToolResult, RemoveWorkoutOutput, error) {
	if err := s.app.Delete(input.ID); err != nil {
		return nil, RemoveWorkoutOutput{}, fmt.Errorf("workout %q not found", input.ID)
	}
	output := RemoveWorkoutOutput{Removed: input.ID}
	return textResult(output), output, nil
}

// VisitWorkoutInput defines input for the visit_workout tool.
type VisitWorkoutInput struct {
	ID string `json:"id"`
}

func (s *Server) registerVisitWorkoutTool() {
	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "visit_workout",
		Description: "Activate a workout's map marker, incrementing its click counter, and return the workout.",
		InputSchema: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"id": map[string]interface{}{
					"type":        "string",
					"description": "Workout id",
				},
			},
			"required": []string{"id"},
		},
	}, s.handleVisitWorkout)
}

func (s *Server) handleVisitWorkout(_ context.Context, req *mcp.CallToolRequest, input VisitWorkoutInput) (*mcp.CallToolResult, WorkoutOutput, error) {
	w, err := s.app.Visit(input.ID)
	if err != nil {
		return nil, WorkoutOutput{}, fmt.Errorf("workout %q not found", input.ID)
	}
	output := toOutput(w)
	return textResult(output), output, nil
}
