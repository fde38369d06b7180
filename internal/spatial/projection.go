package spatial

import (
	"math"

	"github.com/golang/geo/s2"
)

// EqualAreaProjection maps geographic coordinates onto a planar grid using
// the Lambert azimuthal equal-area formula centered on the survey region.
// Planar units are metres. Every raster layer of a report must use the same
// projection instance so cell boundaries line up across species and years.
type EqualAreaProjection struct {
	center s2.LatLng
}

// NewEqualAreaProjection creates a projection centered on the given
// geographic point (degrees).
func NewEqualAreaProjection(centerLat, centerLon float64) *EqualAreaProjection {
	return &EqualAreaProjection{
		center: s2.LatLngFromDegrees(centerLat, centerLon),
	}
}

// Project converts latitude/longitude (degrees) to planar x/y metres.
func (p *EqualAreaProjection) Project(lat, lon float64) (x, y float64) {
	ll := s2.LatLngFromDegrees(lat, lon)

	lat0 := p.center.Lat.Radians()
	latR := ll.Lat.Radians()
	dLon := ll.Lng.Radians() - p.center.Lng.Radians()

	k := math.Sqrt(2 / (1 + math.Sin(lat0)*math.Sin(latR) +
		math.Cos(lat0)*math.Cos(latR)*math.Cos(dLon)))

	x = EarthRadiusMeters * k * math.Cos(latR) * math.Sin(dLon)
	y = EarthRadiusMeters * k * (math.Cos(lat0)*math.Sin(latR) -
		math.Sin(lat0)*math.Cos(latR)*math.Cos(dLon))

	return x, y
}

// Extent is a fixed axis-aligned bounding box in projected metres. Intervals
// are half-open: a point on a min edge is inside, a point on a max edge is
// outside, so adjacent extents never claim the same point twice.
type Extent struct {
	MinX float64
	MinY float64
	MaxX float64
	MaxY float64
}

// NewCenteredExtent returns a square extent spanning radius metres from the
// projection origin in every direction.
func NewCenteredExtent(radius float64) Extent {
	return Extent{
		MinX: -radius,
		MinY: -radius,
		MaxX: radius,
		MaxY: radius,
	}
}

// Contains reports whether the projected point falls inside the extent.
func (e Extent) Contains(x, y float64) bool {
	return x >= e.MinX && x < e.MaxX && y >= e.MinY && y < e.MaxY
}

// Width returns the extent width in metres.
func (e Extent) Width() float64 {
	return e.MaxX - e.MinX
}

// Height returns the extent height in metres.
func (e Extent) Height() float64 {
	return e.MaxY - e.MinY
}
