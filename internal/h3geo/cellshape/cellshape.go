// Package cellshape derives the geometric shape of a cell - its
// boundary ring and individual vertices - and the directed edge
// indexes connecting neighboring cells.
package cellshape

import (
	"errors"
	"fmt"
	"math"

	"github.com/samfargo/h3geo/internal/h3geo/basecells"
	"github.com/samfargo/h3geo/internal/h3geo/faceijk"
	"github.com/samfargo/h3geo/internal/h3geo/faceproj"
	"github.com/samfargo/h3geo/internal/h3geo/geocoord"
	"github.com/samfargo/h3geo/internal/h3geo/geoindex"
	"github.com/samfargo/h3geo/internal/h3geo/gridtrav"
	"github.com/samfargo/h3geo/internal/h3geo/index"
	"github.com/samfargo/h3geo/internal/h3geo/vec3"
)

// ErrPentagonMissingNeighbor is returned by DirectedEdge when
// destination names exactly the neighbor a pentagon origin lost at its
// deleted K wedge, distinguishing that case from an unrelated,
// non-neighboring destination.
var ErrPentagonMissingNeighbor = errors.New("cellshape: destination is a pentagon's deleted k-direction neighbor")

// hexVertexAngles are the six hex-plane directions (radians, 60-degree
// spacing) from a cell center to its vertices.
var hexVertexAngles = [6]float64{
	math.Pi / 6, math.Pi/6 + math.Pi/3, math.Pi/6 + 2*math.Pi/3,
	math.Pi/6 + math.Pi, math.Pi/6 + 4*math.Pi/3, math.Pi/6 + 5*math.Pi/3,
}

// pentagonVertexAngles has five evenly-spaced directions instead of
// six, so a pentagon's boundary closes with 5 points.
var pentagonVertexAngles = [5]float64{
	math.Pi / 6, math.Pi/6 + 2*math.Pi/5, math.Pi/6 + 4*math.Pi/5,
	math.Pi/6 + 6*math.Pi/5, math.Pi/6 + 8*math.Pi/5,
}

// Boundary returns the polygon ring of cell's outline, as geographic
// coordinates in order around the cell.
func Boundary(cell index.Index) ([]geocoord.LatLng, error) {
	if cell.Mode() != index.ModeCell {
		return nil, fmt.Errorf("cellshape: index mode %d is not a cell", cell.Mode())
	}
	res := cell.Resolution()
	fc := geoindex.CellFaceIJK(cell)
	geom := faceijk.Geometry(fc.Face)

	centerUV, err := faceproj.Vec3ToFaceUV(fc.ToVec3(res), geom)
	if err != nil {
		return nil, fmt.Errorf("cellshape: %w", err)
	}

	angles := hexVertexAngles[:]
	if basecells.IsPentagon(cell.BaseCell()) {
		angles = pentagonVertexAngles[:]
	}
	radius := hexCircumradius(res)

	out := make([]geocoord.LatLng, 0, len(angles))
	for _, a := range angles {
		vertexUV := vec3.Vec2{
			U: centerUV.U + radius*math.Cos(a),
			V: centerUV.V + radius*math.Sin(a),
		}
		vertexVec := faceproj.UVToVec3(vertexUV, geom)
		out = append(out, faceproj.Vec3ToGeo(vertexVec))
	}
	return out, nil
}

// hexCircumradius returns the UV-space distance from a cell center to
// its vertices at res: 1/sqrt(3) times the center-to-center unit step,
// the standard ratio between a regular hexagon's circumradius and the
// distance between adjacent hexagon centers.
func hexCircumradius(res int) float64 {
	return faceproj.UnitScale(res) / math.Sqrt(3)
}

// Vertex returns a single vertex of cell's boundary by index (0-based,
// same ordering Boundary uses).
func Vertex(cell index.Index, vertexNum int) (geocoord.LatLng, error) {
	ring, err := Boundary(cell)
	if err != nil {
		return geocoord.LatLng{}, err
	}
	if vertexNum < 0 || vertexNum >= len(ring) {
		return geocoord.LatLng{}, fmt.Errorf("cellshape: vertex %d out of range for %d-sided cell", vertexNum, len(ring))
	}
	return ring[vertexNum], nil
}

// DirectedEdge builds the directed-edge index from origin to
// destination, which must be grid neighbors at the same resolution.
func DirectedEdge(origin, destination index.Index) (index.Index, error) {
	if origin.Resolution() != destination.Resolution() {
		return 0, fmt.Errorf("cellshape: resolution mismatch")
	}
	neighbors, err := gridtrav.Neighbors(origin)
	if err != nil {
		return 0, err
	}
	for i, n := range neighbors {
		if n == destination {
			edge := origin.WithMode(index.ModeDirectedEdge).WithSubMode(i + 1)
			return edge, nil
		}
	}
	if basecells.IsPentagon(origin.BaseCell()) {
		fc := geoindex.CellFaceIJK(origin)
		missing, ok := faceijk.MissingPentagonNeighbor(origin.BaseCell(), faceijk.OrientedFaceIJK{FaceIJK: fc}, origin.Resolution())
		if ok {
			if missingIdx, err := geoindex.GeoToCell(missing.ToGeo(origin.Resolution()), origin.Resolution()); err == nil && missingIdx == destination {
				return 0, ErrPentagonMissingNeighbor
			}
		}
	}
	return 0, fmt.Errorf("cellshape: %s is not a neighbor of %s", index.ToString(destination), index.ToString(origin))
}

// EdgeOrigin returns the origin cell of a directed edge.
func EdgeOrigin(edge index.Index) (index.Index, error) {
	if edge.Mode() != index.ModeDirectedEdge {
		return 0, fmt.Errorf("cellshape: index mode %d is not a directed edge", edge.Mode())
	}
	return edge.WithMode(index.ModeCell).WithSubMode(0), nil
}

// EdgeDestination returns the destination cell of a directed edge.
func EdgeDestination(edge index.Index) (index.Index, error) {
	origin, err := EdgeOrigin(edge)
	if err != nil {
		return 0, err
	}
	neighbors, err := gridtrav.Neighbors(origin)
	if err != nil {
		return 0, err
	}
	n := edge.SubMode() - 1
	if n < 0 || n >= len(neighbors) {
		return 0, fmt.Errorf("cellshape: edge direction %d has no matching neighbor", edge.SubMode())
	}
	return neighbors[n], nil
}

// EdgeBoundary returns the two-point line shared by a directed edge's
// origin and destination cells, approximated as the pair of boundary
// vertices from each cell's ring that lie closest to each other.
func EdgeBoundary(edge index.Index) ([]geocoord.LatLng, error) {
	origin, err := EdgeOrigin(edge)
	if err != nil {
		return nil, err
	}
	destination, err := EdgeDestination(edge)
	if err != nil {
		return nil, err
	}
	originRing, err := Boundary(origin)
	if err != nil {
		return nil, err
	}
	destRing, err := Boundary(destination)
	if err != nil {
		return nil, err
	}
	return closestVertexPair(originRing, destRing), nil
}

func closestVertexPair(a, b []geocoord.LatLng) []geocoord.LatLng {
	bestI, bestJ := 0, 0
	bestDist := math.Inf(1)
	for i, p := range a {
		for j, q := range b {
			d := p.PointDistRads(q)
			if d < bestDist {
				bestDist = d
				bestI, bestJ = i, j
			}
		}
	}
	return []geocoord.LatLng{a[bestI], b[bestJ]}
}
