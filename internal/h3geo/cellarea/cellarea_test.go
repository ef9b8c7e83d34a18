package cellarea

import (
	"testing"

	"github.com/samfargo/h3geo/internal/h3geo/geocoord"
	"github.com/samfargo/h3geo/internal/h3geo/geoindex"
)

func TestAreaIsPositiveAndShrinksWithResolution(t *testing.T) {
	var prev float64
	for res := 2; res <= 8; res++ {
		cell, err := geoindex.GeoToCell(geocoord.FromDegrees(10, 20), res)
		if err != nil {
			t.Fatalf("GeoToCell: %v", err)
		}
		area, err := AreaKm2(cell)
		if err != nil {
			t.Fatalf("AreaKm2: %v", err)
		}
		if area <= 0 {
			t.Fatalf("area at res %d = %v, want > 0", res, area)
		}
		if res > 2 && area >= prev {
			t.Fatalf("area at res %d (%v) should be smaller than at res %d (%v)", res, area, res-1, prev)
		}
		prev = area
	}
}

func TestAreaM2IsAreaKm2TimesOneMillion(t *testing.T) {
	cell, err := geoindex.GeoToCell(geocoord.FromDegrees(10, 20), 6)
	if err != nil {
		t.Fatalf("GeoToCell: %v", err)
	}
	km2, err := AreaKm2(cell)
	if err != nil {
		t.Fatalf("AreaKm2: %v", err)
	}
	m2, err := AreaM2(cell)
	if err != nil {
		t.Fatalf("AreaM2: %v", err)
	}
	if diff := m2 - km2*1e6; diff > 1e-6 || diff < -1e-6 {
		t.Fatalf("AreaM2 = %v, want %v (AreaKm2 * 1e6)", m2, km2*1e6)
	}
}
