// Package region implements operations over sets of cells: filling a
// polygon with cells at a resolution, and compacting/uncompacting a
// cell set across resolutions.
package region

import (
	"fmt"
	"sort"

	"github.com/samfargo/h3geo/internal/h3geo/geocoord"
	"github.com/samfargo/h3geo/internal/h3geo/geoindex"
	"github.com/samfargo/h3geo/internal/h3geo/gridtrav"
	"github.com/samfargo/h3geo/internal/h3geo/hierarchy"
	"github.com/samfargo/h3geo/internal/h3geo/index"
)

// Polyfill returns every cell at res whose center lies inside the
// polygon described by loops: loops[0] is the outer ring, any further
// loops are holes, each a closed ring of geographic vertices (first
// point need not repeat as last).
func Polyfill(loops [][]geocoord.LatLng, res int) ([]index.Index, error) {
	if len(loops) == 0 || len(loops[0]) < 3 {
		return nil, fmt.Errorf("region: polyfill requires an outer ring of at least 3 points")
	}
	outer := loops[0]
	holes := loops[1:]

	seed, err := seedCell(outer, res)
	if err != nil {
		return nil, err
	}

	visited := map[index.Index]bool{}
	var out []index.Index
	queue := []index.Index{seed}
	visited[seed] = true

	for len(queue) > 0 {
		cell := queue[0]
		queue = queue[1:]

		center, err := geoindex.CellToGeo(cell)
		if err != nil {
			return nil, err
		}
		if !pointInRing(center, outer) || pointInAnyHole(center, holes) {
			continue
		}
		out = append(out, cell)

		neighbors, err := gridtrav.Neighbors(cell)
		if err != nil {
			return nil, err
		}
		for _, n := range neighbors {
			if visited[n] {
				continue
			}
			visited[n] = true
			queue = append(queue, n)
		}
	}
	return out, nil
}

// seedCell finds a starting cell for the flood fill: the cell
// containing the ring's centroid, or, if that cell's center falls
// outside the ring, the cell containing the ring's first vertex.
func seedCell(ring []geocoord.LatLng, res int) (index.Index, error) {
	centroid := ringCentroid(ring)
	cell, err := geoindex.GeoToCell(centroid, res)
	if err != nil {
		return 0, err
	}
	center, err := geoindex.CellToGeo(cell)
	if err == nil && pointInRing(center, ring) {
		return cell, nil
	}
	// Fall back to the first vertex's containing cell; polyfill's BFS
	// will still only keep cells whose centers pass the point-in-ring
	// test, so an exterior seed just costs a few wasted visits.
	return geoindex.GeoToCell(ring[0], res)
}

func ringCentroid(ring []geocoord.LatLng) geocoord.LatLng {
	var lat, lng float64
	for _, p := range ring {
		lat += p.Lat
		lng += p.Lng
	}
	n := float64(len(ring))
	return geocoord.LatLng{Lat: lat / n, Lng: lng / n}
}

func pointInAnyHole(p geocoord.LatLng, holes [][]geocoord.LatLng) bool {
	for _, h := range holes {
		if pointInRing(p, h) {
			return true
		}
	}
	return false
}

// pointInRing implements the standard ray-casting point-in-polygon
// test in lat/lng space, adequate at the cell-scale resolutions this
// engine targets (see SPEC_FULL's non-goal on ellipsoidal geodesy).
func pointInRing(p geocoord.LatLng, ring []geocoord.LatLng) bool {
	inside := false
	n := len(ring)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		pi, pj := ring[i], ring[j]
		if (pi.Lat > p.Lat) != (pj.Lat > p.Lat) {
			slope := (pj.Lng - pi.Lng) / (pj.Lat - pi.Lat)
			atX := pi.Lng + slope*(p.Lat-pi.Lat)
			if p.Lng < atX {
				inside = !inside
			}
		}
	}
	return inside
}

// Compact replaces any complete set of 7 (or, for a pentagon, 6)
// sibling children with their shared parent, repeating until no
// further compaction is possible. Cells at differing resolutions in
// cells are preserved as-is.
func Compact(cells []index.Index) ([]index.Index, error) {
	current := append([]index.Index{}, cells...)
	for {
		byParent := map[index.Index][]index.Index{}
		var untouched []index.Index
		for _, c := range current {
			if c.Mode() != index.ModeCell {
				return nil, fmt.Errorf("region: compact requires cell-mode indexes")
			}
			res := c.Resolution()
			if res == 0 {
				untouched = append(untouched, c)
				continue
			}
			parent, err := hierarchy.Parent(c, res-1)
			if err != nil {
				return nil, err
			}
			byParent[parent] = append(byParent[parent], c)
		}

		changed := false
		var next []index.Index
		next = append(next, untouched...)
		for parent, children := range byParent {
			want, err := hierarchy.ChildrenCount(parent, parent.Resolution()+1)
			if err != nil {
				return nil, err
			}
			if len(children) == want && allDistinct(children) {
				next = append(next, parent)
				changed = true
			} else {
				next = append(next, children...)
			}
		}
		if !changed {
			sort.Slice(current, func(i, j int) bool { return current[i] < current[j] })
			return current, nil
		}
		current = next
	}
}

func allDistinct(cells []index.Index) bool {
	seen := map[index.Index]bool{}
	for _, c := range cells {
		if seen[c] {
			return false
		}
		seen[c] = true
	}
	return true
}

// Uncompact expands every cell in cells to resolution targetRes,
// leaving cells already finer than targetRes untouched... except
// cells coarser than targetRes are expanded to their full children
// set; cells already at or finer than targetRes are returned as-is.
func Uncompact(cells []index.Index, targetRes int) ([]index.Index, error) {
	var out []index.Index
	for _, c := range cells {
		if c.Mode() != index.ModeCell {
			return nil, fmt.Errorf("region: uncompact requires cell-mode indexes")
		}
		res := c.Resolution()
		if res >= targetRes {
			out = append(out, c)
			continue
		}
		children, err := hierarchy.Children(c, targetRes)
		if err != nil {
			return nil, err
		}
		out = append(out, children...)
	}
	return out, nil
}
