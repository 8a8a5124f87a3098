package geo

import (
	"math"

	"localconnect/models"
)

// EarthRadiusKm is the mean Earth radius used by the haversine formula.
const EarthRadiusKm = 6371

// Distance computes the great-circle distance in kilometers between two
// coordinates using the haversine formula, rounded to 2 decimal places.
// It is a pure, total function: coordinates are not validated, and values
// outside the usual degree ranges yield a numeric but meaningless result.
func Distance(a, b models.Location) float64 {
	dLat := (b.Lat - a.Lat) * (math.Pi / 180)
	dLng := (b.Lng - a.Lng) * (math.Pi / 180)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(a.Lat*(math.Pi/180))*
			math.Cos(b.Lat*(math.Pi/180))*
			math.Sin(dLng/2)*math.Sin(dLng/2)

	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
	return math.Round(EarthRadiusKm*c*100) / 100
}
