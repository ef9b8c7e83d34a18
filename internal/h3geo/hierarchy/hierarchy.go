// Package hierarchy implements the parent/child relationships between
// cells at adjacent resolutions: truncating the digit string to find an
// ancestor, and appending digits to enumerate descendants.
package hierarchy

import (
	"fmt"

	"github.com/samfargo/h3geo/internal/h3geo/basecells"
	"github.com/samfargo/h3geo/internal/h3geo/ijk"
	"github.com/samfargo/h3geo/internal/h3geo/index"
)

// Parent returns the ancestor of cell at parentRes, which must not
// exceed cell's own resolution.
func Parent(cell index.Index, parentRes int) (index.Index, error) {
	if cell.Mode() != index.ModeCell {
		return 0, fmt.Errorf("hierarchy: index mode %d is not a cell", cell.Mode())
	}
	res := cell.Resolution()
	if parentRes < 0 || parentRes > res {
		return 0, fmt.Errorf("hierarchy: parent resolution %d must be in 0..%d", parentRes, res)
	}
	if parentRes == res {
		return cell, nil
	}

	out := cell.WithResolution(parentRes)
	for r := parentRes + 1; r <= res; r++ {
		out = out.WithDigit(r, ijk.Invalid)
	}
	return out, nil
}

// CenterChild returns the center (all-zero-digit) descendant of cell at
// childRes, which must be at least cell's own resolution.
func CenterChild(cell index.Index, childRes int) (index.Index, error) {
	if cell.Mode() != index.ModeCell {
		return 0, fmt.Errorf("hierarchy: index mode %d is not a cell", cell.Mode())
	}
	res := cell.Resolution()
	if childRes < res || childRes > 15 {
		return 0, fmt.Errorf("hierarchy: child resolution %d must be in %d..15", childRes, res)
	}
	out := cell.WithResolution(childRes)
	for r := res + 1; r <= childRes; r++ {
		out = out.WithDigit(r, ijk.Center)
	}
	return out, nil
}

// ChildrenCount returns the number of children cell has at childRes: 7
// per level for a hexagon, 6 for the first level below a pentagon
// (since the K-direction child is absent) and 7 thereafter.
func ChildrenCount(cell index.Index, childRes int) (int, error) {
	res := cell.Resolution()
	if childRes < res || childRes > 15 {
		return 0, fmt.Errorf("hierarchy: child resolution %d must be in %d..15", childRes, res)
	}
	levels := childRes - res
	if levels == 0 {
		return 1, nil
	}
	isPent := basecells.IsPentagon(cell.BaseCell())
	count := 1
	for l := 0; l < levels; l++ {
		branching := 7
		if isPent && l == 0 {
			branching = 6
		}
		count *= branching
	}
	return count, nil
}

// Children enumerates every descendant of cell at childRes.
func Children(cell index.Index, childRes int) ([]index.Index, error) {
	res := cell.Resolution()
	if childRes < res || childRes > 15 {
		return nil, fmt.Errorf("hierarchy: child resolution %d must be in %d..15", childRes, res)
	}
	isPent := basecells.IsPentagon(cell.BaseCell())

	out := []index.Index{cell.WithResolution(res)}
	for r := res + 1; r <= childRes; r++ {
		var next []index.Index
		for _, parent := range out {
			for d := ijk.Center; d <= ijk.IJ; d++ {
				if isPent && r == res+1 && d == ijk.K {
					continue
				}
				next = append(next, parent.WithResolution(r).WithDigit(r, d))
			}
		}
		out = next
	}
	return out, nil
}
