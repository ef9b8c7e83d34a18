package faceproj

import (
	"math"
	"testing"

	"github.com/samfargo/h3geo/internal/h3geo/geocoord"
	"github.com/samfargo/h3geo/internal/h3geo/ijk"
	"github.com/samfargo/h3geo/internal/h3geo/vec3"
)

func testGeometry() FaceGeometry {
	center := geocoord.FromDegrees(0, 0)
	return FaceGeometry{
		CenterGeo:   center,
		CenterVec3:  GeoToVec3(center),
		AxisAzimuth: 0,
	}
}

func TestGeoToVec3ToGeoRoundTrip(t *testing.T) {
	g := geocoord.FromDegrees(23.5, -71.2)
	back := Vec3ToGeo(GeoToVec3(g))
	if math.Abs(g.Lat-back.Lat) > 1e-9 || math.Abs(g.Lng-back.Lng) > 1e-9 {
		t.Fatalf("round trip = %+v, want %+v", back, g)
	}
}

func TestVec3ToFaceUVRejectsOppositeHemisphere(t *testing.T) {
	geom := testGeometry()
	opposite := geom.CenterVec3.Scale(-1)
	if _, err := Vec3ToFaceUV(opposite, geom); err == nil {
		t.Fatal("expected error projecting the antipodal point")
	}
}

func TestVec3ToFaceUVOfCenterIsOrigin(t *testing.T) {
	geom := testGeometry()
	uv, err := Vec3ToFaceUV(geom.CenterVec3, geom)
	if err != nil {
		t.Fatalf("Vec3ToFaceUV: %v", err)
	}
	if math.Abs(uv.U) > 1e-9 || math.Abs(uv.V) > 1e-9 {
		t.Fatalf("UV of face center = %+v, want origin", uv)
	}
}

func TestUVToVec3IsInverseOfVec3ToFaceUV(t *testing.T) {
	geom := testGeometry()
	g := geocoord.FromDegrees(5, 8)
	v := GeoToVec3(g)
	uv, err := Vec3ToFaceUV(v, geom)
	if err != nil {
		t.Fatalf("Vec3ToFaceUV: %v", err)
	}
	back := UVToVec3(uv, geom)
	if d := v.Sub(back).Length(); d > 1e-9 {
		t.Fatalf("UVToVec3(Vec3ToFaceUV(v)) differs from v by %v", d)
	}
}

func TestFaceUVToIJKOfOriginIsZero(t *testing.T) {
	got := FaceUVToIJK(vec3.Vec2{}, 5)
	if got != (ijk.IJK{}) {
		t.Fatalf("FaceUVToIJK(origin) = %+v, want zero", got)
	}
}

func TestUnitScaleShrinksBySqrtSevenPerResolution(t *testing.T) {
	for res := 0; res < 5; res++ {
		ratio := UnitScale(res) / UnitScale(res+1)
		if math.Abs(ratio-math.Sqrt(7)) > 1e-9 {
			t.Fatalf("UnitScale(%d)/UnitScale(%d) = %v, want sqrt(7)", res, res+1, ratio)
		}
	}
}
