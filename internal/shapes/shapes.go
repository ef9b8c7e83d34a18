// Package shapes adapts h3geo cell geometry onto github.com/paulmach/orb
// types, so callers that already work in orb (GeoJSON encoding, spatial
// joins, tippecanoe-style tiling) can consume a cell's boundary without
// hand-rolling the ring construction themselves.
package shapes

import (
	"fmt"
	"math"

	"github.com/paulmach/orb"

	"github.com/samfargo/h3geo/h3geo"
)

// PolygonFromCell returns the GeoJSON polygon representing idx's cell
// boundary as (lng, lat) points in degrees, closed (first point
// repeated as last).
func PolygonFromCell(idx h3geo.Index) (orb.Polygon, error) {
	if !h3geo.IsValidCell(idx) {
		return nil, fmt.Errorf("shapes: invalid cell index %s", h3geo.ToString(idx))
	}

	boundary, err := h3geo.CellBoundary(idx)
	if err != nil {
		return nil, fmt.Errorf("shapes: compute boundary: %w", err)
	}
	if len(boundary) == 0 {
		return nil, fmt.Errorf("shapes: empty boundary for cell %s", h3geo.ToString(idx))
	}

	ring := make(orb.Ring, 0, len(boundary)+1)
	for _, vertex := range boundary {
		ring = append(ring, orb.Point{radToDeg(vertex.Lng), radToDeg(vertex.Lat)})
	}

	if !ringClosed(ring) {
		ring = append(ring, ring[0])
	}

	return orb.Polygon{ring}, nil
}

// PointFromCell returns the cell center as an orb.Point (lng, lat).
func PointFromCell(idx h3geo.Index) (orb.Point, error) {
	center, err := h3geo.CellToLatLng(idx)
	if err != nil {
		return orb.Point{}, fmt.Errorf("shapes: cell center: %w", err)
	}
	return orb.Point{radToDeg(center.Lng), radToDeg(center.Lat)}, nil
}

// RingToLoop converts an orb.Ring to the []h3geo.LatLng loop format
// Polyfill expects, dropping a trailing point that duplicates the
// first (orb rings are closed; h3geo loops are not).
func RingToLoop(ring orb.Ring) []h3geo.LatLng {
	n := len(ring)
	if n > 1 && ring[0] == ring[n-1] {
		n--
	}
	loop := make([]h3geo.LatLng, n)
	for i := 0; i < n; i++ {
		loop[i] = h3geo.FromDegrees(ring[i][1], ring[i][0])
	}
	return loop
}

// PolygonToLoops converts an orb.Polygon (outer ring plus holes) to the
// [][]h3geo.LatLng form h3geo.Polyfill expects.
func PolygonToLoops(poly orb.Polygon) [][]h3geo.LatLng {
	loops := make([][]h3geo.LatLng, len(poly))
	for i, ring := range poly {
		loops[i] = RingToLoop(ring)
	}
	return loops
}

func ringClosed(ring orb.Ring) bool {
	if len(ring) < 2 {
		return false
	}
	first := ring[0]
	last := ring[len(ring)-1]
	return first[0] == last[0] && first[1] == last[1]
}

func radToDeg(r float64) float64 { return r * 180 / math.Pi }
