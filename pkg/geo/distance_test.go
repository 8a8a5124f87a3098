package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"localconnect/models"
)

func TestDistanceZeroForSamePoint(t *testing.T) {
	p := models.Location{Lat: 13.0827, Lng: 80.2707}
	assert.Equal(t, 0.0, Distance(p, p))
}

func TestDistanceIsSymmetric(t *testing.T) {
	a := models.VendorCoordinates[models.LocationRoyapuram]
	b := models.VendorCoordinates[models.LocationSaidapetu]
	assert.Equal(t, Distance(a, b), Distance(b, a))
}

func TestDistanceKnownValue(t *testing.T) {
	// Chennai central position to the T. Nagar stall is roughly 6.3 km
	chennai := models.Location{Lat: 13.0827, Lng: 80.2707}
	tnagar := models.VendorCoordinates[models.LocationTNagar]

	d := Distance(chennai, tnagar)
	assert.InDelta(t, 6.3, d, 0.3)
}

func TestDistanceRoundedToTwoDecimals(t *testing.T) {
	a := models.VendorCoordinates[models.LocationRoyapuram]
	b := models.VendorCoordinates[models.LocationAshokNagar]

	d := Distance(a, b)
	assert.Equal(t, float64(int(d*100))/100, d)
}
