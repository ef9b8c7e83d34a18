// Package pentagon holds the per-pentagon constant data and the rules
// specific to the 12 five-neighbor base cells: local-index lookup, the
// "deleted subsequence" digit-validity rule, and the on-axis
// canonicalization rotation applied during geo-to-index encoding.
package pentagon

import (
	"github.com/samfargo/h3geo/internal/h3geo/basecells"
	"github.com/samfargo/h3geo/internal/h3geo/ijk"
)

// Count is the number of pentagon base cells.
const Count = basecells.NumPentagons

var baseCellIDs = [Count]int{4, 14, 24, 38, 49, 58, 63, 72, 83, 97, 107, 117}

// ClockwiseOffset is the pair of adjacent-face offsets for a pentagon,
// transcribed from the upstream clockwise-offset map. A pentagon at an
// icosahedron vertex shared by five faces (rather than a hexagon's six)
// has two of those faces meet it clockwise instead of the usual
// counter-clockwise winding; FaceA/FaceB are -1 for the two pentagons
// that sit exactly on a face's own reference vertex, where no offset
// correction applies. In this engine every overage, pentagon or
// hexagon, resolves through the same base-cell neighbor lookup, so no
// other package consults this table; it is exposed only through
// Offsets.
type ClockwiseOffset struct {
	FaceA, FaceB int
}

// clockwiseOffsets[i], indexed by a pentagon's position in baseCellIDs,
// is transcribed from the upstream pentagon-only offset map.
var clockwiseOffsets = [Count]ClockwiseOffset{
	{FaceA: -1, FaceB: -1}, // base cell 4
	{FaceA: 2, FaceB: 6},   // base cell 14
	{FaceA: 1, FaceB: 5},   // base cell 24
	{FaceA: 3, FaceB: 7},   // base cell 38
	{FaceA: 0, FaceB: 9},   // base cell 49
	{FaceA: 4, FaceB: 8},   // base cell 58
	{FaceA: 11, FaceB: 15}, // base cell 63
	{FaceA: 12, FaceB: 16}, // base cell 72
	{FaceA: 10, FaceB: 19}, // base cell 83
	{FaceA: 13, FaceB: 17}, // base cell 97
	{FaceA: 14, FaceB: 18}, // base cell 107
	{FaceA: -1, FaceB: -1}, // base cell 117
}

// LocalIndex returns the 0..11 position of base cell id among the 12
// pentagons, and false if id is not a pentagon.
func LocalIndex(baseCell int) (int, bool) {
	for i, id := range baseCellIDs {
		if id == baseCell {
			return i, true
		}
	}
	return 0, false
}

// Offsets returns the clockwise face-offset pair for a pentagon by its
// local index.
func Offsets(localIdx int) ClockwiseOffset { return clockwiseOffsets[localIdx] }

// HasDeletedSubsequence reports whether digits (digits[0] is the
// resolution-1 digit, as index.Index.Digits returns them) represent an
// invalid pentagon index:
// a pentagon may never have direction K as its leading (highest-order,
// i.e. coarsest) non-center digit, since that wedge was removed to close
// the icosahedron at this vertex.
func HasDeletedSubsequence(digits []ijk.Direction) bool {
	for _, d := range digits {
		if d == ijk.Center {
			continue
		}
		return d == ijk.K
	}
	return false
}

// CanonicalizeLeading rotates digits in place 60 degrees CW, starting
// from the leading non-center digit, if that leading digit is IK (which
// turns the leading IK into I). This is the adjustment geo-to-index
// encoding applies to pentagon-hosted points. Any other leading digit,
// including K, is left unchanged, so a leading K still yields the
// deleted-subsequence pattern that HasDeletedSubsequence rejects.
func CanonicalizeLeading(digits []ijk.Direction) {
	leadIdx := -1
	for i, d := range digits {
		if d != ijk.Center {
			leadIdx = i
			break
		}
	}
	if leadIdx == -1 || digits[leadIdx] != ijk.IK {
		return
	}
	for i := leadIdx; i < len(digits); i++ {
		if digits[i] == ijk.Center {
			continue
		}
		digits[i] = rotateDigitCW(digits[i])
	}
}

func rotateDigitCW(d ijk.Direction) ijk.Direction {
	return ijk.UnitVec(d).Rotate60CW().ToDigit()
}
