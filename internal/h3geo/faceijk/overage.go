package faceijk

import (
	"errors"

	"github.com/samfargo/h3geo/internal/h3geo/basecells"
	"github.com/samfargo/h3geo/internal/h3geo/ijk"
)

// ErrPentagonDirection is returned when a step in direction K is
// attempted from a pentagon base cell - the wedge that pentagon is
// missing to close the icosahedron at its vertex.
var ErrPentagonDirection = errors.New("faceijk: pentagon has no neighbor in the k direction")

// Step moves one hex unit from (baseCell, origin) in dir, where dir is
// expressed in origin's own current frame (i.e. already adjusted for
// any rotation origin has accumulated). It returns the destination base
// cell and its OrientedFaceIJK.
//
// A pentagon's missing K direction is rejected in two places. Right at
// the base cell's own untouched origin (IJK zero, no rotation yet
// accumulated) it is rejected immediately: that origin is the
// pentagon's vertex itself, which never had a sixth wedge to step
// into. Away from the origin, a K step is an ordinary IJK translation
// unless it happens to walk off the current face's bounded region
// ("overage"): the destination's home face and the crossing's induced
// rotation then come from the base-cell neighbor graph
// (basecells.Neighbor), which independently encodes the same
// hexagon/pentagon distinction for every direction, not just K.
func Step(baseCell int, origin OrientedFaceIJK, dir ijk.Direction, res int) (int, OrientedFaceIJK, error) {
	if dir == ijk.K && origin.IJK == (ijk.IJK{}) && origin.CCWRotations60 == 0 && basecells.IsPentagon(baseCell) {
		return 0, OrientedFaceIJK{}, ErrPentagonDirection
	}
	stepped := origin.IJK.Neighbor(dir)
	bound := MaxIJKComponent(res)
	if within(stepped, bound) {
		return baseCell, OrientedFaceIJK{
			FaceIJK:        FaceIJK{Face: origin.Face, IJK: stepped},
			CCWRotations60: origin.CCWRotations60,
		}, nil
	}

	newBaseCell, rotation, ok := basecells.Neighbor(baseCell, dir)
	if !ok {
		return 0, OrientedFaceIJK{}, ErrPentagonDirection
	}
	newFace := basecells.Get(newBaseCell).HomeFace
	return newBaseCell, OrientedFaceIJK{
		FaceIJK:        FaceIJK{Face: newFace, IJK: ijk.IJK{}},
		CCWRotations60: (origin.CCWRotations60 + rotation) % ijk.NumDigits,
	}, nil
}

// MissingPentagonNeighbor reports the FaceIJK a K step would have
// reached from a pentagon's own untouched origin, had that wedge not
// been deleted. Callers use it to tell "destination is the pentagon's
// missing neighbor" apart from "destination is unrelated to origin"
// when a directed-edge request names a K-direction destination
// explicitly rather than a digit. It returns false for anything other
// than a pentagon base cell's own zero-rotation origin.
func MissingPentagonNeighbor(baseCell int, origin OrientedFaceIJK, res int) (OrientedFaceIJK, bool) {
	if origin.IJK != (ijk.IJK{}) || origin.CCWRotations60 != 0 || !basecells.IsPentagon(baseCell) {
		return OrientedFaceIJK{}, false
	}
	stepped := origin.IJK.Neighbor(ijk.K)
	if !within(stepped, MaxIJKComponent(res)) {
		return OrientedFaceIJK{}, false
	}
	return OrientedFaceIJK{FaceIJK: FaceIJK{Face: origin.Face, IJK: stepped}}, true
}

func within(c ijk.IJK, bound int) bool {
	return absAtMost(c.I, bound) && absAtMost(c.J, bound) && absAtMost(c.K, bound)
}

func absAtMost(v, bound int) bool {
	if v < 0 {
		v = -v
	}
	return v <= bound
}

// Neighbors returns every reachable neighbor of (baseCell, origin) at
// res, in direction order 1..6, skipping a pentagon's missing direction.
func Neighbors(baseCell int, origin OrientedFaceIJK, res int) []NeighborResult {
	out := make([]NeighborResult, 0, ijk.NumDigits)
	for d := ijk.K; d <= ijk.IJ; d++ {
		rotatedDir := rotateDirection(d, origin.CCWRotations60)
		nb, ofijk, err := Step(baseCell, origin, rotatedDir, res)
		if errors.Is(err, ErrPentagonDirection) {
			continue
		}
		out = append(out, NeighborResult{Direction: d, BaseCell: nb, Oriented: ofijk})
	}
	return out
}

// NeighborResult is one direction's outcome from Neighbors.
type NeighborResult struct {
	Direction ijk.Direction
	BaseCell  int
	Oriented  OrientedFaceIJK
}

// rotateDirection rotates a canonical digit direction by n CCW steps,
// used to translate a digit into the oriented frame's current axes.
func rotateDirection(dir ijk.Direction, n int) ijk.Direction {
	return ijk.UnitVec(dir).RotateCCW(n).ToDigit()
}
