package kernel

import (
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

// ErrGeoPointIsNotConstructed is returned when a GeoPoint was not created
// through the NewGeoPoint constructor.
var ErrGeoPointIsNotConstructed = errs.NewValueIsRequiredError("GeoPoint must be created via NewGeoPoint constructor")

// Latitude and longitude bounds in decimal degrees.
const (
	MinLatitude  = -90.0
	MaxLatitude  = 90.0
	MinLongitude = -180.0
	MaxLongitude = 180.0
)

// GeoPoint is a value object holding a geographic coordinate pair.
// It represents the current location reported for a delivery. The point is
// informational only; no business rule reads it.
//
// GeoPoint is immutable. The zero value is invalid and fails Validate.
type GeoPoint struct {
	lat float64
	lng float64

	guard guard.ConstructorGuard
}

// NewGeoPoint creates a GeoPoint after validating both coordinates are within
// the usual decimal-degree bounds.
func NewGeoPoint(lat, lng float64) (GeoPoint, error) {
	if lat < MinLatitude || lat > MaxLatitude {
		return GeoPoint{}, errs.NewValueIsOutOfRangeError("lat", lat, MinLatitude, MaxLatitude)
	}

	if lng < MinLongitude || lng > MaxLongitude {
		return GeoPoint{}, errs.NewValueIsOutOfRangeError("lng", lng, MinLongitude, MaxLongitude)
	}

	return GeoPoint{
		lat:   lat,
		lng:   lng,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Lat returns the latitude in decimal degrees.
func (p GeoPoint) Lat() float64 {
	return p.lat
}

// Lng returns the longitude in decimal degrees.
func (p GeoPoint) Lng() float64 {
	return p.lng
}

// IsEqual reports whether two points hold the same coordinates.
func (p GeoPoint) IsEqual(other GeoPoint) bool {
	return p.lat == other.lat && p.lng == other.lng
}

// Validate ensures the point was created via NewGeoPoint.
func (p GeoPoint) Validate() error {
	return p.guard.Validate(ErrGeoPointIsNotConstructed)
}
