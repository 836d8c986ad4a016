package domain

import "math"

// earthRadiusKm is the mean Earth radius used for the spherical distance approximation.
const earthRadiusKm = 6371.0

// GeoPoint represents a geographic coordinate as a (longitude, latitude) pair.
type GeoPoint struct {
	Longitude float64 `json:"longitude"`
	Latitude  float64 `json:"latitude"`
}

// DistanceKmTo computes the great-circle distance in kilometers between p and
// other using the haversine formula.
func (p GeoPoint) DistanceKmTo(other GeoPoint) float64 {
	lat1 := p.Latitude * math.Pi / 180
	lat2 := other.Latitude * math.Pi / 180
	dLat := (other.Latitude - p.Latitude) * math.Pi / 180
	dLon := (other.Longitude - p.Longitude) * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}
