package hierarchy

import (
	"testing"

	"github.com/samfargo/h3geo/internal/h3geo/ijk"
	"github.com/samfargo/h3geo/internal/h3geo/index"
)

func cellAt(res, baseCell int) index.Index {
	digits := make([]ijk.Direction, res)
	for i := range digits {
		digits[i] = ijk.K
	}
	return index.NewCell(res, baseCell, digits)
}

func TestParentAtSameResolutionIsIdentity(t *testing.T) {
	cell := cellAt(5, 10)
	p, err := Parent(cell, 5)
	if err != nil {
		t.Fatalf("Parent: %v", err)
	}
	if p != cell {
		t.Fatalf("Parent(cell, cell.Resolution()) = %#x, want %#x", uint64(p), uint64(cell))
	}
}

func TestParentTruncatesDigits(t *testing.T) {
	cell := cellAt(5, 10)
	p, err := Parent(cell, 2)
	if err != nil {
		t.Fatalf("Parent: %v", err)
	}
	if p.Resolution() != 2 {
		t.Fatalf("parent resolution = %d, want 2", p.Resolution())
	}
	for r := 3; r <= 5; r++ {
		if p.Digit(r) != ijk.Invalid {
			t.Fatalf("digit %d = %d, want sentinel", r, p.Digit(r))
		}
	}
}

func TestParentRejectsResolutionAboveCell(t *testing.T) {
	cell := cellAt(3, 10)
	if _, err := Parent(cell, 5); err == nil {
		t.Fatal("expected error for parent resolution above cell's own")
	}
}

func TestCenterChildIsAllCenterDigits(t *testing.T) {
	cell := cellAt(2, 10)
	c, err := CenterChild(cell, 5)
	if err != nil {
		t.Fatalf("CenterChild: %v", err)
	}
	for r := 3; r <= 5; r++ {
		if c.Digit(r) != ijk.Center {
			t.Fatalf("digit %d = %d, want Center", r, c.Digit(r))
		}
	}
}

func TestChildrenCountMatchesChildrenLengthHexagon(t *testing.T) {
	cell := cellAt(2, 10) // base cell 10 is not a pentagon
	n, err := ChildrenCount(cell, 4)
	if err != nil {
		t.Fatalf("ChildrenCount: %v", err)
	}
	children, err := Children(cell, 4)
	if err != nil {
		t.Fatalf("Children: %v", err)
	}
	if n != len(children) {
		t.Fatalf("ChildrenCount = %d, len(Children) = %d", n, len(children))
	}
	if n != 49 { // 7 * 7 for two levels
		t.Fatalf("ChildrenCount = %d, want 49", n)
	}
}

func TestChildrenCountPentagonFirstLevelHasSix(t *testing.T) {
	cell := cellAt(2, 4) // base cell 4 is a pentagon
	n, err := ChildrenCount(cell, 3)
	if err != nil {
		t.Fatalf("ChildrenCount: %v", err)
	}
	if n != 6 {
		t.Fatalf("pentagon's first-level children count = %d, want 6", n)
	}
}

func TestChildrenAllDistinct(t *testing.T) {
	cell := cellAt(1, 10)
	children, err := Children(cell, 3)
	if err != nil {
		t.Fatalf("Children: %v", err)
	}
	seen := make(map[index.Index]bool, len(children))
	for _, c := range children {
		if seen[c] {
			t.Fatalf("duplicate child %#x", uint64(c))
		}
		seen[c] = true
	}
}
