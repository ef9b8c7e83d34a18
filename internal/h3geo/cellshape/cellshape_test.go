package cellshape

import (
	"testing"

	"github.com/samfargo/h3geo/internal/h3geo/basecells"
	"github.com/samfargo/h3geo/internal/h3geo/geocoord"
	"github.com/samfargo/h3geo/internal/h3geo/geoindex"
	"github.com/samfargo/h3geo/internal/h3geo/gridtrav"
)

func TestBoundaryVertexCountMatchesShape(t *testing.T) {
	cell, err := geoindex.GeoToCell(geocoord.FromDegrees(10, 20), 5)
	if err != nil {
		t.Fatalf("GeoToCell: %v", err)
	}
	ring, err := Boundary(cell)
	if err != nil {
		t.Fatalf("Boundary: %v", err)
	}
	want := 6
	if basecells.IsPentagon(cell.BaseCell()) {
		want = 5
	}
	if len(ring) != want {
		t.Fatalf("boundary length = %d, want %d", len(ring), want)
	}
}

func TestVertexMatchesBoundaryIndex(t *testing.T) {
	cell, err := geoindex.GeoToCell(geocoord.FromDegrees(10, 20), 5)
	if err != nil {
		t.Fatalf("GeoToCell: %v", err)
	}
	ring, err := Boundary(cell)
	if err != nil {
		t.Fatalf("Boundary: %v", err)
	}
	for i := range ring {
		v, err := Vertex(cell, i)
		if err != nil {
			t.Fatalf("Vertex(%d): %v", i, err)
		}
		if v != ring[i] {
			t.Fatalf("Vertex(%d) = %+v, want %+v", i, v, ring[i])
		}
	}
	if _, err := Vertex(cell, len(ring)); err == nil {
		t.Fatal("expected error for out-of-range vertex index")
	}
}

func TestDirectedEdgeRoundTrip(t *testing.T) {
	cell, err := geoindex.GeoToCell(geocoord.FromDegrees(10, 20), 5)
	if err != nil {
		t.Fatalf("GeoToCell: %v", err)
	}
	neighbors, err := gridtrav.Neighbors(cell)
	if err != nil {
		t.Fatalf("Neighbors: %v", err)
	}
	if len(neighbors) == 0 {
		t.Fatal("expected at least one neighbor")
	}
	dest := neighbors[0]

	edge, err := DirectedEdge(cell, dest)
	if err != nil {
		t.Fatalf("DirectedEdge: %v", err)
	}
	origin, err := EdgeOrigin(edge)
	if err != nil {
		t.Fatalf("EdgeOrigin: %v", err)
	}
	if origin != cell {
		t.Fatalf("EdgeOrigin = %v, want %v", origin, cell)
	}
	got, err := EdgeDestination(edge)
	if err != nil {
		t.Fatalf("EdgeDestination: %v", err)
	}
	if got != dest {
		t.Fatalf("EdgeDestination = %v, want %v", got, dest)
	}
}

func TestDirectedEdgeRejectsNonNeighbors(t *testing.T) {
	a, err := geoindex.GeoToCell(geocoord.FromDegrees(10, 20), 5)
	if err != nil {
		t.Fatalf("GeoToCell: %v", err)
	}
	b, err := geoindex.GeoToCell(geocoord.FromDegrees(-10, -20), 5)
	if err != nil {
		t.Fatalf("GeoToCell: %v", err)
	}
	if _, err := DirectedEdge(a, b); err == nil {
		t.Fatal("expected error for non-adjacent cells")
	}
}

func TestEdgeBoundaryHasTwoPoints(t *testing.T) {
	cell, err := geoindex.GeoToCell(geocoord.FromDegrees(10, 20), 5)
	if err != nil {
		t.Fatalf("GeoToCell: %v", err)
	}
	neighbors, err := gridtrav.Neighbors(cell)
	if err != nil {
		t.Fatalf("Neighbors: %v", err)
	}
	edge, err := DirectedEdge(cell, neighbors[0])
	if err != nil {
		t.Fatalf("DirectedEdge: %v", err)
	}
	boundary, err := EdgeBoundary(edge)
	if err != nil {
		t.Fatalf("EdgeBoundary: %v", err)
	}
	if len(boundary) != 2 {
		t.Fatalf("EdgeBoundary length = %d, want 2", len(boundary))
	}
}
