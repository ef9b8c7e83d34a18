// Package cellarea computes a cell's surface area by fan-triangulating
// its boundary from the cell center and summing each triangle's
// spherical excess.
package cellarea

import (
	"fmt"
	"math"

	"github.com/samfargo/h3geo/internal/h3geo/cellshape"
	"github.com/samfargo/h3geo/internal/h3geo/geocoord"
	"github.com/samfargo/h3geo/internal/h3geo/geoindex"
	"github.com/samfargo/h3geo/internal/h3geo/index"
)

// AreaRads2 returns cell's area in steradians (square radians on the
// unit sphere).
func AreaRads2(cell index.Index) (float64, error) {
	center, err := geoindex.CellToGeo(cell)
	if err != nil {
		return 0, err
	}
	ring, err := cellshape.Boundary(cell)
	if err != nil {
		return 0, err
	}
	if len(ring) < 3 {
		return 0, fmt.Errorf("cellarea: boundary has fewer than 3 vertices")
	}

	var total float64
	n := len(ring)
	for i := 0; i < n; i++ {
		a := ring[i]
		b := ring[(i+1)%n]
		total += sphericalTriangleExcess(center, a, b)
	}
	return total, nil
}

// AreaKm2 returns cell's area in square kilometers.
func AreaKm2(cell index.Index) (float64, error) {
	rads2, err := AreaRads2(cell)
	if err != nil {
		return 0, err
	}
	return rads2 * geocoord.EarthRadiusKm * geocoord.EarthRadiusKm, nil
}

// AreaM2 returns cell's area in square meters.
func AreaM2(cell index.Index) (float64, error) {
	km2, err := AreaKm2(cell)
	if err != nil {
		return 0, err
	}
	return km2 * 1e6, nil
}

// sphericalTriangleExcess returns the area (in steradians) of the
// spherical triangle with vertices a, b, c, via L'Huilier's theorem on
// the triangle's side lengths.
func sphericalTriangleExcess(a, b, c geocoord.LatLng) float64 {
	sideA := b.PointDistRads(c)
	sideB := a.PointDistRads(c)
	sideC := a.PointDistRads(b)
	s := (sideA + sideB + sideC) / 2

	tanQuarterExcess := math.Sqrt(math.Abs(
		math.Tan(s/2) * math.Tan((s-sideA)/2) * math.Tan((s-sideB)/2) * math.Tan((s-sideC)/2),
	))
	return 4 * math.Atan(tanQuarterExcess)
}
