package dto

// GeocodeResponse represents a resolved place
type GeocodeResponse struct {
	Name        string    `json:"name"`
	Coordinates []float64 `json:"coordinates"` // [longitude, latitude]
	Source      string    `json:"source"`      // "mapbox" or "mock"
}
