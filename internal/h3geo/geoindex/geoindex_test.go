package geoindex

import (
	"testing"

	"github.com/samfargo/h3geo/internal/h3geo/geocoord"
)

func TestGeoToCellRejectsInvalidLatitude(t *testing.T) {
	geo := geocoord.LatLng{Lat: 10, Lng: 0} // > pi/2, out of domain
	if _, err := GeoToCell(geo, 5); err == nil {
		t.Fatal("expected error for out-of-domain latitude")
	}
}

func TestGeoToCellRejectsResolutionOutOfRange(t *testing.T) {
	geo := geocoord.FromDegrees(10, 20)
	if _, err := GeoToCell(geo, 16); err == nil {
		t.Fatal("expected error for resolution 16")
	}
	if _, err := GeoToCell(geo, -1); err == nil {
		t.Fatal("expected error for negative resolution")
	}
}

func TestGeoToCellRoundTripIsStableAcrossResolutions(t *testing.T) {
	samples := []geocoord.LatLng{
		geocoord.FromDegrees(0, 0),
		geocoord.FromDegrees(37.77, -122.41),
		geocoord.FromDegrees(-33.87, 151.21),
		geocoord.FromDegrees(64.1, -21.9),
	}
	for _, geo := range samples {
		for res := 0; res <= 9; res++ {
			cell, err := GeoToCell(geo, res)
			if err != nil {
				t.Fatalf("GeoToCell(%+v, %d): %v", geo, res, err)
			}
			if cell.Resolution() != res {
				t.Fatalf("cell resolution = %d, want %d", cell.Resolution(), res)
			}
			center, err := CellToGeo(cell)
			if err != nil {
				t.Fatalf("CellToGeo: %v", err)
			}
			again, err := GeoToCell(center, res)
			if err != nil {
				t.Fatalf("re-encode: %v", err)
			}
			if again != cell {
				t.Fatalf("re-encoding cell center did not land on the same cell at res %d: got %#x, want %#x",
					res, uint64(again), uint64(cell))
			}
		}
	}
}

func TestCellToGeoRejectsNonCellMode(t *testing.T) {
	cell, err := GeoToCell(geocoord.FromDegrees(10, 20), 5)
	if err != nil {
		t.Fatalf("GeoToCell: %v", err)
	}
	edge := cell.WithMode(2) // ModeDirectedEdge
	if _, err := CellToGeo(edge); err == nil {
		t.Fatal("expected error decoding a non-cell-mode index")
	}
}
