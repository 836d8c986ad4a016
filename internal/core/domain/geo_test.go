package domain_test

import (
	"testing"

	"github.com/SarrafLink/exchange_locator_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestDistanceKmTo(t *testing.T) {
	casablanca := domain.GeoPoint{Latitude: 33.5731, Longitude: -7.5898}
	rabat := domain.GeoPoint{Latitude: 34.0209, Longitude: -6.8416}

	distance := casablanca.DistanceKmTo(rabat)

	// Casablanca to Rabat is roughly 85 km great-circle.
	assert.InDelta(t, 85.0, distance, 2.0)

	// Symmetric and zero for identical points.
	assert.InDelta(t, distance, rabat.DistanceKmTo(casablanca), 1e-9)
	assert.InDelta(t, 0.0, casablanca.DistanceKmTo(casablanca), 1e-9)
}

func TestDistanceKmTo_AntimeridianCrossing(t *testing.T) {
	west := domain.GeoPoint{Latitude: 0, Longitude: 179.5}
	east := domain.GeoPoint{Latitude: 0, Longitude: -179.5}

	// One degree of longitude at the equator is about 111 km; crossing the
	// antimeridian must not flip into the long way around.
	assert.InDelta(t, 111.2, west.DistanceKmTo(east), 1.0)
}
