// Package gridtrav implements grid-topology traversal over cell
// indexes: single-step neighbors, k-ring/hex-disk expansion, grid
// distance, and the grid line between two cells.
package gridtrav

import (
	"fmt"

	"github.com/samfargo/h3geo/internal/h3geo/faceijk"
	"github.com/samfargo/h3geo/internal/h3geo/geoindex"
	"github.com/samfargo/h3geo/internal/h3geo/ijk"
	"github.com/samfargo/h3geo/internal/h3geo/index"
	"github.com/samfargo/h3geo/internal/h3geo/localijk"
)

// Neighbors returns every cell adjacent to cell, skipping a pentagon's
// missing direction.
func Neighbors(cell index.Index) ([]index.Index, error) {
	if cell.Mode() != index.ModeCell {
		return nil, fmt.Errorf("gridtrav: index mode %d is not a cell", cell.Mode())
	}
	res := cell.Resolution()
	baseCell := cell.BaseCell()
	fc := geoindex.CellFaceIJK(cell)
	origin := faceijk.OrientedFaceIJK{FaceIJK: fc}

	results := faceijk.Neighbors(baseCell, origin, res)
	out := make([]index.Index, 0, len(results))
	for _, r := range results {
		idx, err := faceIJKToCell(r.Oriented.FaceIJK, res)
		if err != nil {
			continue
		}
		out = append(out, idx)
	}
	return out, nil
}

// faceIJKToCell re-encodes a FaceIJK back into a cell index by
// projecting it to geo and re-running the standard encode. This keeps
// gridtrav independent of a reverse digit-extraction path specific to a
// non-primary base cell.
func faceIJKToCell(fc faceijk.FaceIJK, res int) (index.Index, error) {
	return geoindex.GeoToCell(fc.ToGeo(res), res)
}

// GridDistance returns the number of grid steps between two cells at
// the same resolution.
func GridDistance(a, b index.Index) (int, error) {
	if a.Resolution() != b.Resolution() {
		return 0, fmt.Errorf("gridtrav: resolution mismatch %d != %d", a.Resolution(), b.Resolution())
	}
	local, err := localijk.ToLocalIJK(a, b)
	if err != nil {
		return 0, err
	}
	return ijk.IJK{}.DistanceTo(local), nil
}

// KRing returns every cell within k grid steps of origin, including
// origin itself, via breadth-first expansion over Neighbors.
func KRing(origin index.Index, k int) ([]index.Index, error) {
	if k < 0 {
		return nil, fmt.Errorf("gridtrav: k must be non-negative, got %d", k)
	}
	seen := map[index.Index]bool{origin: true}
	frontier := []index.Index{origin}
	out := []index.Index{origin}

	for step := 0; step < k; step++ {
		var next []index.Index
		for _, cell := range frontier {
			nbrs, err := Neighbors(cell)
			if err != nil {
				return nil, err
			}
			for _, n := range nbrs {
				if seen[n] {
					continue
				}
				seen[n] = true
				out = append(out, n)
				next = append(next, n)
			}
		}
		frontier = next
	}
	return out, nil
}

// Disk is an alias for KRing, matching the "disk" terminology some
// callers use for the same operation.
func Disk(origin index.Index, k int) ([]index.Index, error) { return KRing(origin, k) }

// GridPath returns a sequence of cells forming a grid line from a to
// b, stepping at each hop to the neighbor with the smallest grid
// distance to b. When several neighbors tie, the first one in
// Neighbors' order is taken.
func GridPath(a, b index.Index) ([]index.Index, error) {
	dist, err := GridDistance(a, b)
	if err != nil {
		return nil, err
	}
	path := []index.Index{a}
	cur := a
	for i := 0; i < dist; i++ {
		nbrs, err := Neighbors(cur)
		if err != nil {
			return nil, err
		}
		best := cur
		bestDist := -1
		for _, n := range nbrs {
			d, err := GridDistance(n, b)
			if err != nil {
				continue
			}
			if bestDist == -1 || d < bestDist {
				bestDist = d
				best = n
			}
		}
		if best == cur {
			return nil, fmt.Errorf("gridtrav: stuck walking toward destination after %d steps", i)
		}
		path = append(path, best)
		cur = best
	}
	return path, nil
}
