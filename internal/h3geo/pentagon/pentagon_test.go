package pentagon

import (
	"testing"

	"github.com/samfargo/h3geo/internal/h3geo/ijk"
)

func TestLocalIndexFindsAllTwelvePentagons(t *testing.T) {
	for _, id := range baseCellIDs {
		idx, ok := LocalIndex(id)
		if !ok {
			t.Fatalf("LocalIndex(%d) not found", id)
		}
		if idx < 0 || idx >= Count {
			t.Fatalf("LocalIndex(%d) = %d out of range", id, idx)
		}
	}
}

func TestLocalIndexRejectsNonPentagon(t *testing.T) {
	if _, ok := LocalIndex(10); ok {
		t.Fatal("base cell 10 should not be a pentagon")
	}
}

func TestHasDeletedSubsequenceDetectsLeadingK(t *testing.T) {
	digits := []ijk.Direction{ijk.Center, ijk.K, ijk.J}
	if !HasDeletedSubsequence(digits) {
		t.Fatal("expected deleted subsequence for leading (non-center) K digit")
	}
}

func TestHasDeletedSubsequenceAcceptsOtherLeadingDigit(t *testing.T) {
	digits := []ijk.Direction{ijk.Center, ijk.J, ijk.K}
	if HasDeletedSubsequence(digits) {
		t.Fatal("leading J digit should not trigger deleted subsequence")
	}
}

func TestCanonicalizeLeadingRotatesOnlyWhenLeadIsIK(t *testing.T) {
	digits := []ijk.Direction{ijk.IK, ijk.J}
	CanonicalizeLeading(digits)
	if digits[0] == ijk.IK {
		t.Fatal("leading IK digit should have been rotated")
	}
}

func TestCanonicalizeLeadingLeavesNonIKAlone(t *testing.T) {
	digits := []ijk.Direction{ijk.J, ijk.K}
	original := append([]ijk.Direction{}, digits...)
	CanonicalizeLeading(digits)
	for i := range digits {
		if digits[i] != original[i] {
			t.Fatalf("digits changed when leading digit was not IK: got %v, want %v", digits, original)
		}
	}
}
