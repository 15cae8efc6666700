// ABOUTME: GeoJSON generation utilities
// ABOUTME: Converts workouts to marker FeatureCollections for map renderers

package geojson

import (
	"encoding/json"
	"time"

	"github.com/harper/workout/internal/models"
)

// FeatureCollection represents a GeoJSON FeatureCollection.
type FeatureCollection struct {
	Type     string    `json:"type"`
	Features []Feature `json:"features"`
}

// Feature represents a GeoJSON Feature.
type Feature struct {
	Type       string                 `json:"type"`
	Geometry   Geometry               `json:"geometry"`
	Properties map[string]interface{} `json:"properties"`
}

// Geometry represents a GeoJSON Geometry.
type Geometry struct {
	Type        string      `json:"type"`
	Coordinates interface{} `json:"coordinates"`
}

// PointCoordinates represents [longitude, latitude] for a Point.
type PointCoordinates [2]float64

// ToFeatureCollection converts workouts to a FeatureCollection of Point
// markers, one per workout, carrying the list-entry fields as properties.
func ToFeatureCollection(workouts []models.Workout) *FeatureCollection {
	features := make([]Feature, 0, len(workouts))

	for _, w := range workouts {
		b := w.Common()
		props := map[string]interface{}{
			"id":          b.ID,
			"type":        string(w.Variant()),
			"description": b.Description,
			"distance":    b.Distance,
			"duration":    b.Duration,
			"created_at":  b.CreatedAt.Format(time.RFC3339),
			"clicks":      b.Clicks,
		}
		switch w.Variant() {
		case models.VariantRunning:
			props["cadence"] = w.Extra()
			props["pace"] = w.Metric()
		case models.VariantCycling:
			props["elevation_gain"] = w.Extra()
			props["speed"] = w.Metric()
		}

		features = append(features, Feature{
			Type: "Feature",
			Geometry: Geometry{
				Type:        "Point",
				Coordinates: PointCoordinates{b.Coords.Lng, b.Coords.Lat},
			},
			Properties: props,
		})
	}

	return &FeatureCollection{
		Type:     "FeatureCollection",
		Features: features,
	}
}

// Marshal renders a FeatureCollection as indented JSON.
func (fc *FeatureCollection) Marshal() ([]byte, error) {
	return json.MarshalIndent(fc, "", "  ")
}
