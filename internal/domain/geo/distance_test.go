package geo

import (
	"math"
	"testing"

	"github.com/paulmach/orb"
	orbgeo "github.com/paulmach/orb/geo"
	"github.com/stretchr/testify/assert"
)

func TestHaversineKm_IdenticalPoints(t *testing.T) {
	p := orb.Point{121.5654, 25.0330}

	assert.Equal(t, 0.0, HaversineKm(p, p))
}

func TestHaversineKm_OneDegreeOfLatitude(t *testing.T) {
	from := orb.Point{0, 0}
	to := orb.Point{0, 1}

	// 2*pi*6371/360
	assert.InDelta(t, 111.195, HaversineKm(from, to), 0.01)
}

func TestHaversineKm_Symmetric(t *testing.T) {
	a := orb.Point{121.5654, 25.0330}
	b := orb.Point{120.6736, 24.1477}

	assert.InDelta(t, HaversineKm(a, b), HaversineKm(b, a), 1e-9)
}

func TestHaversineKm_MatchesOrbScaledToMeanRadius(t *testing.T) {
	// orb uses the WGS84 equatorial radius; rescale to compare shapes of the formula.
	a := orb.Point{-0.1278, 51.5074}
	b := orb.Point{2.3522, 48.8566}

	orbKm := orbgeo.DistanceHaversine(a, b) / 1000 * EarthRadiusKm / (orb.EarthRadius / 1000)

	assert.InDelta(t, orbKm, HaversineKm(a, b), 0.001)
}

func TestHaversineKm_Antipodal(t *testing.T) {
	got := HaversineKm(orb.Point{0, 0}, orb.Point{180, 0})

	assert.InDelta(t, math.Pi*EarthRadiusKm, got, 1e-6)
}
