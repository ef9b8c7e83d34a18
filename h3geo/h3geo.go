// Package h3geo is the public face of the hierarchical hexagonal
// geospatial grid engine: every exported entry point here corresponds
// to one of the engine's documented external operations, wired onto
// the internal/h3geo packages that implement the actual algorithms.
//
// The package is purely synchronous and stateless: every function is a
// free function over value-typed inputs, safe to call concurrently
// from many goroutines against disjoint inputs, since the grid's
// tables are all immutable package-level data.
package h3geo

import (
	"errors"
	"fmt"

	"github.com/samfargo/h3geo/internal/h3geo/basecells"
	"github.com/samfargo/h3geo/internal/h3geo/cellarea"
	"github.com/samfargo/h3geo/internal/h3geo/cellshape"
	"github.com/samfargo/h3geo/internal/h3geo/geocoord"
	"github.com/samfargo/h3geo/internal/h3geo/geoindex"
	"github.com/samfargo/h3geo/internal/h3geo/gridtrav"
	"github.com/samfargo/h3geo/internal/h3geo/hierarchy"
	"github.com/samfargo/h3geo/internal/h3geo/index"
	"github.com/samfargo/h3geo/internal/h3geo/region"
)

// Index is a cell, directed-edge, undirected-edge, or vertex
// identifier: a 64-bit value with a canonical lowercase-hex string
// form. The zero value is not a valid Index.
type Index = index.Index

// LatLng is a geographic coordinate in radians.
type LatLng = geocoord.LatLng

// FromDegrees builds a LatLng from degrees.
func FromDegrees(latDeg, lngDeg float64) LatLng { return geocoord.FromDegrees(latDeg, lngDeg) }

// ErrKind classifies why an operation failed, matching the category
// an implementation-neutral caller would switch on to decide whether
// to retry, grow a buffer, or treat a pentagon edge as "skip".
type ErrKind int

const (
	ErrNone ErrKind = iota
	ErrFailed
	ErrDomain
	ErrLatLngDomain
	ErrResDomain
	ErrCellInvalid
	ErrDirEdgeInvalid
	ErrUndirEdgeInvalid
	ErrVertexInvalid
	ErrPentagon
	ErrDuplicateInput
	ErrNotNeighbors
	ErrResMismatch
	ErrNotSupported
)

func (k ErrKind) String() string {
	switch k {
	case ErrNone:
		return "none"
	case ErrFailed:
		return "failed"
	case ErrDomain:
		return "domain"
	case ErrLatLngDomain:
		return "latlng_domain"
	case ErrResDomain:
		return "res_domain"
	case ErrCellInvalid:
		return "cell_invalid"
	case ErrDirEdgeInvalid:
		return "dir_edge_invalid"
	case ErrUndirEdgeInvalid:
		return "undir_edge_invalid"
	case ErrVertexInvalid:
		return "vertex_invalid"
	case ErrPentagon:
		return "pentagon"
	case ErrDuplicateInput:
		return "duplicate_input"
	case ErrNotNeighbors:
		return "not_neighbors"
	case ErrResMismatch:
		return "res_mismatch"
	case ErrNotSupported:
		return "not_supported"
	default:
		return "unknown"
	}
}

// Error is the error type every fallible operation in this package
// returns, wrapping the underlying internal error with the operation
// name and an ErrKind a caller can switch on.
type Error struct {
	Op   string
	Kind ErrKind
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("h3geo: %s: %s", e.Op, e.Kind)
	}
	return fmt.Sprintf("h3geo: %s: %s: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

func wrapErr(op string, kind ErrKind, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Op: op, Kind: kind, Err: err}
}

// GeoToCell encodes geo as a cell index at res.
func GeoToCell(geo LatLng, res int) (Index, error) {
	idx, err := geoindex.GeoToCell(geo, res)
	if err != nil {
		return 0, wrapErr("geo_to_cell", classifyEncodeErr(res), err)
	}
	return idx, nil
}

// CellToLatLng decodes idx's cell center to a geographic coordinate.
func CellToLatLng(idx Index) (LatLng, error) {
	geo, err := geoindex.CellToGeo(idx)
	if err != nil {
		return LatLng{}, wrapErr("cell_to_latlng", ErrCellInvalid, err)
	}
	return geo, nil
}

func classifyEncodeErr(res int) ErrKind {
	if res < 0 || res > 15 {
		return ErrResDomain
	}
	return ErrDomain
}

// IsValidCell reports whether idx is a structurally valid cell index.
func IsValidCell(idx Index) bool {
	return idx.Mode() == index.ModeCell && index.Validate(idx, basecells.IsPentagon) == nil
}

// IsPentagon reports whether idx's base cell is one of the 12
// pentagons.
func IsPentagon(idx Index) bool { return basecells.IsPentagon(idx.BaseCell()) }

// Resolution returns idx's resolution field.
func Resolution(idx Index) int { return idx.Resolution() }

// BaseCell returns idx's base cell field.
func BaseCell(idx Index) int { return idx.BaseCell() }

// Digit returns the direction digit at position r (1-based).
func Digit(idx Index, r int) int { return int(idx.Digit(r)) }

// ToString renders idx as canonical lowercase hex.
func ToString(idx Index) string { return index.ToString(idx) }

// FromString parses a canonical hex string into an Index. It does not
// validate the resulting bit pattern; call IsValidCell separately.
func FromString(s string) (Index, error) {
	idx, err := index.FromString(s)
	if err != nil {
		return 0, wrapErr("from_string", ErrDomain, err)
	}
	return idx, nil
}

// CellAreaRad2 returns idx's surface area in steradians.
func CellAreaRad2(idx Index) (float64, error) { return wrapFloat(cellarea.AreaRads2(idx)) }

// CellAreaKm2 returns idx's surface area in square kilometers.
func CellAreaKm2(idx Index) (float64, error) { return wrapFloat(cellarea.AreaKm2(idx)) }

// CellAreaM2 returns idx's surface area in square meters.
func CellAreaM2(idx Index) (float64, error) { return wrapFloat(cellarea.AreaM2(idx)) }

func wrapFloat(v float64, err error) (float64, error) {
	if err != nil {
		return 0, wrapErr("cell_area", ErrCellInvalid, err)
	}
	return v, nil
}

// CellBoundary returns the polygon ring (up to 10 points) outlining
// idx's cell.
func CellBoundary(idx Index) ([]LatLng, error) {
	ring, err := cellshape.Boundary(idx)
	if err != nil {
		return nil, wrapErr("cell_boundary", ErrCellInvalid, err)
	}
	return ring, nil
}

// Parent returns idx's ancestor at parentRes.
func Parent(idx Index, parentRes int) (Index, error) {
	p, err := hierarchy.Parent(idx, parentRes)
	if err != nil {
		return 0, wrapErr("parent", ErrResDomain, err)
	}
	return p, nil
}

// Children returns every descendant of idx at childRes.
func Children(idx Index, childRes int) ([]Index, error) {
	c, err := hierarchy.Children(idx, childRes)
	if err != nil {
		return nil, wrapErr("children", ErrResDomain, err)
	}
	return c, nil
}

// ChildrenCount returns the number of descendants idx has at childRes.
func ChildrenCount(idx Index, childRes int) (int, error) {
	n, err := hierarchy.ChildrenCount(idx, childRes)
	if err != nil {
		return 0, wrapErr("children_count", ErrResDomain, err)
	}
	return n, nil
}

// CenterChild returns the center descendant of idx at childRes.
func CenterChild(idx Index, childRes int) (Index, error) {
	c, err := hierarchy.CenterChild(idx, childRes)
	if err != nil {
		return 0, wrapErr("center_child", ErrResDomain, err)
	}
	return c, nil
}

// Neighbors returns idx's grid neighbors (5 for a pentagon, 6
// otherwise).
func Neighbors(idx Index) ([]Index, error) {
	n, err := gridtrav.Neighbors(idx)
	if err != nil {
		return nil, wrapErr("neighbors", ErrCellInvalid, err)
	}
	return n, nil
}

// MaxGridDiskSize returns the upper bound 3k(k+1)+1 on the number of
// cells GridDisk(idx, k) can return.
func MaxGridDiskSize(k int) int { return 3*k*(k+1) + 1 }

// GridDisk returns every cell within k grid steps of idx, including
// idx itself. Enumeration order is deterministic for identical inputs
// but not meaningful; compare results as sets.
func GridDisk(idx Index, k int) ([]Index, error) {
	d, err := gridtrav.KRing(idx, k)
	if err != nil {
		return nil, wrapErr("grid_disk", ErrDomain, err)
	}
	return d, nil
}

// GridDistance returns the number of grid steps between a and b, or an
// error if no path between their base cells exists.
func GridDistance(a, b Index) (int, error) {
	d, err := gridtrav.GridDistance(a, b)
	if err != nil {
		return 0, wrapErr("grid_distance", ErrResMismatch, err)
	}
	return d, nil
}

// GridPath returns the sequence of cells forming a grid line from a to
// b, of length GridDistance(a,b)+1.
func GridPath(a, b Index) ([]Index, error) {
	p, err := gridtrav.GridPath(a, b)
	if err != nil {
		return nil, wrapErr("grid_path", ErrFailed, err)
	}
	return p, nil
}

// Polyfill returns every cell at res whose center falls inside the
// polygon described by loops (outer ring first, then holes).
func Polyfill(loops [][]LatLng, res int) ([]Index, error) {
	cells, err := region.Polyfill(loops, res)
	if err != nil {
		return nil, wrapErr("polyfill", ErrDomain, err)
	}
	return cells, nil
}

// CompactCells replaces complete sibling groups in cells with their
// shared parent, repeating until no further compaction is possible.
func CompactCells(cells []Index) ([]Index, error) {
	c, err := region.Compact(cells)
	if err != nil {
		return nil, wrapErr("compact_cells", ErrCellInvalid, err)
	}
	return c, nil
}

// UncompactCells expands every cell in cells to resolution targetRes.
func UncompactCells(cells []Index, targetRes int) ([]Index, error) {
	c, err := region.Uncompact(cells, targetRes)
	if err != nil {
		return nil, wrapErr("uncompact_cells", ErrResDomain, err)
	}
	return c, nil
}

// CellToVertex returns the vertex-mode index for vertex n (0-based) of
// idx's boundary.
func CellToVertex(idx Index, n int) (Index, error) {
	if _, err := cellshape.Vertex(idx, n); err != nil {
		return 0, wrapErr("cell_to_vertex", ErrVertexInvalid, err)
	}
	return idx.WithMode(index.ModeVertex).WithSubMode(n), nil
}

// CellToVertices returns idx's vertex-mode indexes, one per boundary
// point.
func CellToVertices(idx Index) ([]Index, error) {
	ring, err := cellshape.Boundary(idx)
	if err != nil {
		return nil, wrapErr("cell_to_vertices", ErrCellInvalid, err)
	}
	out := make([]Index, len(ring))
	for i := range ring {
		out[i] = idx.WithMode(index.ModeVertex).WithSubMode(i)
	}
	return out, nil
}

// VertexToLatLng returns the geographic coordinate of a vertex-mode
// index.
func VertexToLatLng(v Index) (LatLng, error) {
	if v.Mode() != index.ModeVertex {
		return LatLng{}, wrapErr("vertex_to_latlng", ErrVertexInvalid, errors.New("index is not vertex mode"))
	}
	cell := v.WithMode(index.ModeCell).WithSubMode(0)
	geo, err := cellshape.Vertex(cell, v.SubMode())
	if err != nil {
		return LatLng{}, wrapErr("vertex_to_latlng", ErrVertexInvalid, err)
	}
	return geo, nil
}

// CellsToDirectedEdge builds the directed-edge index from origin to
// destination, which must be grid neighbors.
func CellsToDirectedEdge(origin, destination Index) (Index, error) {
	e, err := cellshape.DirectedEdge(origin, destination)
	if err != nil {
		if errors.Is(err, cellshape.ErrPentagonMissingNeighbor) {
			return 0, wrapErr("cells_to_directed_edge", ErrPentagon, err)
		}
		return 0, wrapErr("cells_to_directed_edge", ErrNotNeighbors, err)
	}
	return e, nil
}

// DirectedEdgeOrigin returns edge's origin cell.
func DirectedEdgeOrigin(edge Index) (Index, error) {
	o, err := cellshape.EdgeOrigin(edge)
	if err != nil {
		return 0, wrapErr("directed_edge_origin", ErrDirEdgeInvalid, err)
	}
	return o, nil
}

// DirectedEdgeDestination returns edge's destination cell.
func DirectedEdgeDestination(edge Index) (Index, error) {
	d, err := cellshape.EdgeDestination(edge)
	if err != nil {
		return 0, wrapErr("directed_edge_destination", ErrDirEdgeInvalid, err)
	}
	return d, nil
}

// DirectedEdgeBoundary returns the two points bounding edge.
func DirectedEdgeBoundary(edge Index) ([]LatLng, error) {
	b, err := cellshape.EdgeBoundary(edge)
	if err != nil {
		return nil, wrapErr("directed_edge_boundary", ErrDirEdgeInvalid, err)
	}
	return b, nil
}
