package utils

import (
	"math"
	"testing"
)

func TestCalculateHaversineDistance(t *testing.T) {
	tests := []struct {
		name                   string
		lat1, lon1, lat2, lon2 float64
		want                   float64 // meters
		tolerance              float64
	}{
		{"same point", 36.8065, 10.1815, 36.8065, 10.1815, 0, 0.001},
		{"tunis to sfax", 36.8065, 10.1815, 34.7406, 10.7603, 235000, 5000},
		{"one degree of latitude", 36.0, 10.0, 37.0, 10.0, 111195, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateHaversineDistance(tt.lat1, tt.lon1, tt.lat2, tt.lon2)
			if math.Abs(got-tt.want) > tt.tolerance {
				t.Errorf("distance = %.1f, want %.1f (±%.1f)", got, tt.want, tt.tolerance)
			}
		})
	}
}

func TestWithinRadius(t *testing.T) {
	siteLat, siteLon := 36.8065, 10.1815

	if !WithinRadius(36.8066, 10.1816, siteLat, siteLon, 500) {
		t.Error("point ~15m away should be within a 500m radius")
	}
	if WithinRadius(36.8565, 10.1815, siteLat, siteLon, 500) {
		t.Error("point ~5.5km away should not be within a 500m radius")
	}
}
