package region

import (
	"testing"

	"github.com/samfargo/h3geo/internal/h3geo/geocoord"
	"github.com/samfargo/h3geo/internal/h3geo/geoindex"
	"github.com/samfargo/h3geo/internal/h3geo/hierarchy"
	"github.com/samfargo/h3geo/internal/h3geo/index"
)

func TestPolyfillOnlyReturnsPointsInsideRing(t *testing.T) {
	outer := []geocoord.LatLng{
		geocoord.FromDegrees(10, 20),
		geocoord.FromDegrees(10, 21),
		geocoord.FromDegrees(11, 21),
		geocoord.FromDegrees(11, 20),
	}
	cells, err := Polyfill([][]geocoord.LatLng{outer}, 5)
	if err != nil {
		t.Fatalf("Polyfill: %v", err)
	}
	if len(cells) == 0 {
		t.Fatal("expected at least one cell covering the ring")
	}
	for _, c := range cells {
		center, err := geoindex.CellToGeo(c)
		if err != nil {
			t.Fatalf("CellToGeo: %v", err)
		}
		if !pointInRing(center, outer) {
			t.Fatalf("polyfill returned a cell whose center %+v is outside the ring", center)
		}
	}
}

func TestPolyfillRejectsShortOuterRing(t *testing.T) {
	outer := []geocoord.LatLng{geocoord.FromDegrees(0, 0), geocoord.FromDegrees(0, 1)}
	if _, err := Polyfill([][]geocoord.LatLng{outer}, 5); err == nil {
		t.Fatal("expected error for a 2-point outer ring")
	}
}

func TestCompactMergesAllChildrenOfOneParent(t *testing.T) {
	parent, err := geoindex.GeoToCell(geocoord.FromDegrees(10, 20), 3)
	if err != nil {
		t.Fatalf("GeoToCell: %v", err)
	}
	children, err := hierarchy.Children(parent, 5)
	if err != nil {
		t.Fatalf("Children: %v", err)
	}
	compacted, err := Compact(children)
	if err != nil {
		t.Fatalf("Compact: %v", err)
	}
	found := false
	for _, c := range compacted {
		if c == parent {
			found = true
		}
	}
	if !found {
		t.Fatalf("Compact(full child set) did not collapse to parent; got %d cells", len(compacted))
	}
}

func TestCompactLeavesPartialSiblingSetUnmerged(t *testing.T) {
	parent, err := geoindex.GeoToCell(geocoord.FromDegrees(10, 20), 3)
	if err != nil {
		t.Fatalf("GeoToCell: %v", err)
	}
	children, err := hierarchy.Children(parent, 4)
	if err != nil {
		t.Fatalf("Children: %v", err)
	}
	partial := children[:len(children)-1]
	compacted, err := Compact(partial)
	if err != nil {
		t.Fatalf("Compact: %v", err)
	}
	if len(compacted) != len(partial) {
		t.Fatalf("partial sibling set should not compact; got %d cells from %d", len(compacted), len(partial))
	}
}

func TestUncompactExpandsToTargetResolution(t *testing.T) {
	parent, err := geoindex.GeoToCell(geocoord.FromDegrees(10, 20), 3)
	if err != nil {
		t.Fatalf("GeoToCell: %v", err)
	}
	expanded, err := Uncompact([]index.Index{parent}, 5)
	if err != nil {
		t.Fatalf("Uncompact: %v", err)
	}
	for _, c := range expanded {
		if c.Resolution() != 5 {
			t.Fatalf("uncompacted cell resolution = %d, want 5", c.Resolution())
		}
	}
	want, err := hierarchy.ChildrenCount(parent, 5)
	if err != nil {
		t.Fatalf("ChildrenCount: %v", err)
	}
	if len(expanded) != want {
		t.Fatalf("Uncompact produced %d cells, want %d", len(expanded), want)
	}
}

func TestUncompactLeavesFinerCellsUntouched(t *testing.T) {
	cell, err := geoindex.GeoToCell(geocoord.FromDegrees(10, 20), 6)
	if err != nil {
		t.Fatalf("GeoToCell: %v", err)
	}
	expanded, err := Uncompact([]index.Index{cell}, 4)
	if err != nil {
		t.Fatalf("Uncompact: %v", err)
	}
	if len(expanded) != 1 || expanded[0] != cell {
		t.Fatalf("cell finer than targetRes should pass through unchanged, got %v", expanded)
	}
}
