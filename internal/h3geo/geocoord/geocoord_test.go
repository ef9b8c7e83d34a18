package geocoord

import (
	"math"
	"testing"
)

func TestFromDegreesWrapsLongitude(t *testing.T) {
	g := FromDegrees(0, 270)
	if g.Lng <= -math.Pi || g.Lng > math.Pi {
		t.Fatalf("wrapped longitude %v out of (-pi, pi]", g.Lng)
	}
}

func TestValidRejectsOutOfRangeLatitude(t *testing.T) {
	g := LatLng{Lat: math.Pi, Lng: 0}
	if g.Valid() {
		t.Fatal("latitude > pi/2 should be invalid")
	}
}

func TestValidAcceptsPoles(t *testing.T) {
	north := LatLng{Lat: math.Pi / 2, Lng: 0}
	south := LatLng{Lat: -math.Pi / 2, Lng: 0}
	if !north.Valid() || !south.Valid() {
		t.Fatal("poles should be valid coordinates")
	}
}

func TestPointDistRadsToSelfIsZero(t *testing.T) {
	g := FromDegrees(10, 20)
	if d := g.PointDistRads(g); d > 1e-12 {
		t.Fatalf("distance to self = %v, want ~0", d)
	}
}

func TestDestinationAtThenBackMatchesOriginalDistance(t *testing.T) {
	g := FromDegrees(10, 20)
	azimuth := math.Pi / 4
	distance := 0.01
	dest := g.DestinationAt(azimuth, distance)
	if d := g.PointDistRads(dest); math.Abs(d-distance) > 1e-9 {
		t.Fatalf("round-trip distance = %v, want %v", d, distance)
	}
}

func TestPointDistKmIsPointDistRadsTimesEarthRadius(t *testing.T) {
	a := FromDegrees(0, 0)
	b := FromDegrees(0, 1)
	rads := a.PointDistRads(b)
	km := a.PointDistKm(b)
	if diff := km - rads*EarthRadiusKm; diff > 1e-9 || diff < -1e-9 {
		t.Fatalf("PointDistKm = %v, want %v", km, rads*EarthRadiusKm)
	}
}
