package basecells

import (
	"testing"

	"github.com/samfargo/h3geo/internal/h3geo/ijk"
)

func TestPentagonCount(t *testing.T) {
	count := 0
	for id := 0; id < NumBaseCells; id++ {
		if IsPentagon(id) {
			count++
		}
	}
	if count != NumPentagons {
		t.Fatalf("pentagon count = %d, want %d", count, NumPentagons)
	}
}

func TestPentagonsHaveNoKNeighbor(t *testing.T) {
	for id := 0; id < NumBaseCells; id++ {
		if !IsPentagon(id) {
			continue
		}
		if _, _, ok := Neighbor(id, ijk.K); ok {
			t.Fatalf("pentagon %d has a K neighbor, want none", id)
		}
	}
}

func TestHexagonsHaveSixNeighbors(t *testing.T) {
	for id := 0; id < NumBaseCells; id++ {
		if IsPentagon(id) {
			continue
		}
		for d := ijk.K; d <= ijk.IJ; d++ {
			if _, _, ok := Neighbor(id, d); !ok {
				t.Fatalf("hexagon base cell %d missing neighbor in direction %d", id, d)
			}
		}
	}
}

func TestNeighborGraphIsSymmetric(t *testing.T) {
	opposite := map[ijk.Direction]ijk.Direction{
		ijk.K: ijk.I, ijk.I: ijk.K,
		ijk.J: ijk.IK, ijk.IK: ijk.J,
		ijk.JK: ijk.IJ, ijk.IJ: ijk.JK,
	}
	for id := 0; id < NumBaseCells; id++ {
		for d := ijk.K; d <= ijk.IJ; d++ {
			n, _, ok := Neighbor(id, d)
			if !ok {
				continue
			}
			back, _, ok := Neighbor(n, opposite[d])
			if !ok || back != id {
				t.Fatalf("base cell %d -> dir %d -> %d does not step back to origin (got %d, ok=%v)", id, d, n, back, ok)
			}
		}
	}
}

func TestPrimaryForFaceIsLowestIDOnThatFace(t *testing.T) {
	for face := 0; face < NumFaces; face++ {
		primary := PrimaryForFace(face)
		if Get(primary).HomeFace != face {
			t.Fatalf("PrimaryForFace(%d) = %d, whose home face is %d", face, primary, Get(primary).HomeFace)
		}
		for id := 0; id < primary; id++ {
			if Get(id).HomeFace == face {
				t.Fatalf("base cell %d also has home face %d but is lower-id than PrimaryForFace(%d) = %d", id, face, face, primary)
			}
		}
	}
}

func TestGetPanicsOutOfRangeIsCallerResponsibility(t *testing.T) {
	// Get(NumBaseCells-1) must not panic; this documents the valid boundary.
	c := Get(NumBaseCells - 1)
	if c.HomeFace < 0 || c.HomeFace >= 20 {
		t.Fatalf("home face %d out of range", c.HomeFace)
	}
}
