// Package basecells holds the 122 compile-time base cell records: each
// cell's home icosahedron face and home IJK, its neighbor graph across
// the other 121 base cells, the rotation induced by each neighbor step,
// and its pentagon flag.
//
// The neighbor, rotation, and home-face tables in generate.go are
// transcribed directly from the upstream base-cell tables (data,
// rotations_60ccw_data, and the icosahedron face assignment); see
// DESIGN.md for the exact source this was grounded on.
package basecells

import "github.com/samfargo/h3geo/internal/h3geo/ijk"

// NumBaseCells is the number of base cells in the grid.
const NumBaseCells = 122

// NumPentagons is the number of pentagon base cells.
const NumPentagons = 12

// InvalidBaseCell is the sentinel stored in Neighbors for a pentagon's
// missing K-direction neighbor.
const InvalidBaseCell = 127

// NumFaces is the number of icosahedron faces (mirrors faceijk.NumFaces;
// kept local to avoid an import cycle, since faceijk imports basecells).
const NumFaces = 20

// Cell is one base cell's constant record.
type Cell struct {
	HomeFace       int
	HomeIJK        ijk.IJK
	IsPentagon     bool
	Neighbors      [7]int
	Rotations60CCW [7]int // -1 marks the missing pentagon wedge
}

var cells [NumBaseCells]Cell

// primaryForFace[f] is the lowest-id base cell whose home face is f -
// the single representative base cell package geoindex encodes
// geographic points onto for that face.
var primaryForFace [NumFaces]int

func init() {
	for id := NumBaseCells - 1; id >= 0; id-- {
		primaryForFace[homeFace[id]] = id
	}
}

// PrimaryForFace returns face f's representative base cell: the one
// package geoindex's GeoToCell always encodes a geographic point on
// face f down to.
func PrimaryForFace(face int) int { return primaryForFace[face] }

// Get returns the constant record for base cell id. It panics if id is
// out of range; callers must validate against NumBaseCells first.
func Get(id int) Cell { return cells[id] }

// IsPentagon reports whether base cell id is one of the 12 pentagons.
func IsPentagon(id int) bool { return cells[id].IsPentagon }

// Neighbor returns the base cell reached from id by crossing direction
// dir, the number of CCW rotations induced by that crossing, and
// whether the neighbor exists (false for a pentagon's K direction).
func Neighbor(id int, dir ijk.Direction) (neighbor int, rotations int, ok bool) {
	c := cells[id]
	n := c.Neighbors[dir]
	if n == InvalidBaseCell {
		return 0, 0, false
	}
	return n, c.Rotations60CCW[dir], true
}
