// Package geocoord implements WGS84 geographic coordinates in radians,
// plus the azimuth, destination-point and haversine distance helpers
// the projection and traversal layers need.
package geocoord

import "math"

// EarthRadiusKm is the mean spherical Earth radius used for area and
// distance conversions, matching the canonical H3 constant.
const EarthRadiusKm = 6371.007180918475

// LatLng is a geographic coordinate in radians. Latitude is in
// [-pi/2, pi/2]; longitude is not auto-wrapped by the zero-value but is
// wrapped to (-pi, pi] by FromDegrees and by DestinationAt.
type LatLng struct {
	Lat, Lng float64
}

// FromDegrees builds a LatLng from degree values, wrapping longitude to
// (-pi, pi].
func FromDegrees(latDeg, lngDeg float64) LatLng {
	return LatLng{
		Lat: latDeg * math.Pi / 180,
		Lng: wrapLng(lngDeg * math.Pi / 180),
	}
}

func wrapLng(lng float64) float64 {
	for lng > math.Pi {
		lng -= 2 * math.Pi
	}
	for lng <= -math.Pi {
		lng += 2 * math.Pi
	}
	return lng
}

// Valid reports whether the latitude lies in the domain H3 accepts;
// longitude is never rejected since callers are expected to wrap it.
func (g LatLng) Valid() bool {
	return g.Lat >= -math.Pi/2 && g.Lat <= math.Pi/2
}

// AzimuthTo returns the initial bearing from g to other, in radians,
// measured clockwise from north.
func (g LatLng) AzimuthTo(other LatLng) float64 {
	sinLat1, cosLat1 := math.Sincos(g.Lat)
	sinLat2, cosLat2 := math.Sincos(other.Lat)
	dLng := other.Lng - g.Lng
	y := math.Sin(dLng) * cosLat2
	x := cosLat1*sinLat2 - sinLat1*cosLat2*math.Cos(dLng)
	return math.Atan2(y, x)
}

// DestinationAt returns the point reached by travelling distance
// (radians of arc) from g along azimuth.
func (g LatLng) DestinationAt(azimuth, distance float64) LatLng {
	sinLat1, cosLat1 := math.Sincos(g.Lat)
	sinD, cosD := math.Sincos(distance)
	lat2 := math.Asin(sinLat1*cosD + cosLat1*sinD*math.Cos(azimuth))
	lng2 := g.Lng + math.Atan2(math.Sin(azimuth)*sinD*cosLat1, cosD-sinLat1*math.Sin(lat2))
	return LatLng{Lat: lat2, Lng: wrapLng(lng2)}
}

// PointDistRads returns the haversine great-circle distance between g
// and other, in radians.
func (g LatLng) PointDistRads(other LatLng) float64 {
	_, cosLat1 := math.Sincos(g.Lat)
	_, cosLat2 := math.Sincos(other.Lat)
	dLng := other.Lng - g.Lng

	// Haversine is used instead of the raw law-of-cosines formula because
	// it stays numerically stable for the sub-millimeter distances H3
	// resolves at r15.
	dLat := other.Lat - g.Lat
	sinHalfLat := math.Sin(dLat / 2)
	sinHalfLng := math.Sin(dLng / 2)
	a := sinHalfLat*sinHalfLat + cosLat1*cosLat2*sinHalfLng*sinHalfLng
	a = math.Min(1, math.Max(0, a))
	return 2 * math.Asin(math.Sqrt(a))
}

// PointDistKm returns the great-circle distance in kilometers.
func (g LatLng) PointDistKm(other LatLng) float64 {
	return g.PointDistRads(other) * EarthRadiusKm
}

// PointDistM returns the great-circle distance in meters.
func (g LatLng) PointDistM(other LatLng) float64 {
	return g.PointDistKm(other) * 1000
}
