// Package localijk expresses a cell's IJK coordinate relative to an
// arbitrary origin cell's base cell rather than its own, so two nearby
// cells can be compared or interpolated in one shared coordinate frame.
//
// Cells that share a base cell convert exactly: both decode to plain
// IJK coordinates on the same face, and the local coordinate is the
// direct difference. Cells on different base cells require crossing
// the base-cell graph; since each base cell is its own IJK "island"
// with home coordinate (0,0,0), there is no literal shared offset
// between islands to compose from. ToLocalIJK approximates the
// crossing by walking the shortest base-cell-graph path with
// basecells.Neighbor and accumulating a translation of twice
// faceijk.MaxIJKComponent per hop in the step's direction, rotated by
// each hop's induced
// rotation. This is exact within a base cell and directionally
// consistent across base cells, but is not a geometrically precise
// reconstruction of a continuous grid.
package localijk

import (
	"fmt"

	"github.com/samfargo/h3geo/internal/h3geo/basecells"
	"github.com/samfargo/h3geo/internal/h3geo/faceijk"
	"github.com/samfargo/h3geo/internal/h3geo/geoindex"
	"github.com/samfargo/h3geo/internal/h3geo/ijk"
	"github.com/samfargo/h3geo/internal/h3geo/index"
)

// ToLocalIJK expresses cell's coordinate in origin's base-cell frame.
func ToLocalIJK(origin, cell index.Index) (ijk.IJK, error) {
	if origin.Mode() != index.ModeCell || cell.Mode() != index.ModeCell {
		return ijk.IJK{}, fmt.Errorf("localijk: both indexes must be cells")
	}
	if origin.Resolution() != cell.Resolution() {
		return ijk.IJK{}, fmt.Errorf("localijk: resolution mismatch %d != %d", origin.Resolution(), cell.Resolution())
	}
	res := origin.Resolution()

	originFC := geoindex.CellFaceIJK(origin)
	cellFC := geoindex.CellFaceIJK(cell)

	if origin.BaseCell() == cell.BaseCell() {
		return cellFC.IJK.Sub(originFC.IJK), nil
	}

	path, err := basecellPath(origin.BaseCell(), cell.BaseCell())
	if err != nil {
		return ijk.IJK{}, err
	}

	bound := faceijk.MaxIJKComponent(res)
	offset := ijk.IJK{}
	rotation := 0
	for _, h := range path {
		rotated := rotateDir(h.dir, rotation)
		offset = offset.Add(ijk.UnitVec(rotated).Scale(2 * bound))
		_, rot, _ := basecells.Neighbor(h.baseCellFrom, h.dir)
		rotation = (rotation + rot) % ijk.NumDigits
	}
	return offset.Add(cellFC.IJK).Sub(originFC.IJK), nil
}

// hop is one step of the base-cell path: the direction taken and the
// base cell stepped from.
type hop struct {
	dir          ijk.Direction
	baseCellFrom int
}

// basecellPath finds a shortest sequence of directions from a source
// base cell to a destination base cell over the base-cell neighbor
// graph via breadth-first search.
func basecellPath(from, to int) ([]hop, error) {
	if from == to {
		return nil, nil
	}
	type state struct {
		baseCell int
		path     []hop
	}
	visited := map[int]bool{from: true}
	queue := []state{{baseCell: from}}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for d := ijk.K; d <= ijk.IJ; d++ {
			nb, _, ok := basecells.Neighbor(cur.baseCell, d)
			if !ok || visited[nb] {
				continue
			}
			next := append(append([]hop{}, cur.path...), hop{dir: d, baseCellFrom: cur.baseCell})
			if nb == to {
				return next, nil
			}
			visited[nb] = true
			queue = append(queue, state{baseCell: nb, path: next})
		}
	}
	return nil, fmt.Errorf("localijk: no path found between base cells %d and %d", from, to)
}

func rotateDir(dir ijk.Direction, n int) ijk.Direction {
	return ijk.UnitVec(dir).RotateCCW(n).ToDigit()
}
