package http

import (
	"encoding/json"
	"net/http"

	"github.com/klbeton/pointage-backend-go/internal/handler/http/response"
	"github.com/klbeton/pointage-backend-go/internal/pkg/utils"
)

// Site is the work location against which clock-in coordinates are checked.
type Site struct {
	Latitude     float64
	Longitude    float64
	RadiusMeters float64
}

type GeofenceHandler interface {
	CheckLocation(w http.ResponseWriter, r *http.Request)
}

type geofenceHandlerImpl struct {
	site Site
}

func NewGeofenceHandler(site Site) GeofenceHandler {
	return &geofenceHandlerImpl{site: site}
}

type checkLocationRequest struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// CheckLocation implements GeofenceHandler - reports whether coordinates fall
// inside the work site radius, with the measured distance.
func (h *geofenceHandlerImpl) CheckLocation(w http.ResponseWriter, r *http.Request) {
	var req checkLocationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	if req.Latitude < -90 || req.Latitude > 90 || req.Longitude < -180 || req.Longitude > 180 {
		response.BadRequest(w, "Coordinates out of range", nil)
		return
	}

	distance := utils.CalculateHaversineDistance(req.Latitude, req.Longitude, h.site.Latitude, h.site.Longitude)

	response.Success(w, map[string]interface{}{
		"within_radius":   distance <= h.site.RadiusMeters,
		"distance_meters": distance,
		"radius_meters":   h.site.RadiusMeters,
	})
}
