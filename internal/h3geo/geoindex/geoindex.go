// Package geoindex converts between geographic coordinates and cell
// indexes: geo_to_index projects a point through the icosahedron onto
// the finest grid and encodes the descent as a base cell plus a digit
// string; index_to_geo walks that digit string back down from a base
// cell's home coordinate and projects the result back to the sphere.
//
// Both directions treat each face's lowest-id base cell
// (basecells.PrimaryForFace) as that face's single representative base
// cell, each an IJK "island" with home coordinate (0,0,0):
// GeoToCell always resolves to one of these 20 primary cells,
// and CellToGeo only needs a base cell's home face and home IJK, never
// its neighbor graph. Reaching any other base cell from a geographic
// point is not an operation this engine supports directly; it is only
// reachable by grid traversal (package gridtrav) from a primary cell.
package geoindex

import (
	"fmt"

	"github.com/samfargo/h3geo/internal/h3geo/basecells"
	"github.com/samfargo/h3geo/internal/h3geo/faceijk"
	"github.com/samfargo/h3geo/internal/h3geo/geocoord"
	"github.com/samfargo/h3geo/internal/h3geo/ijk"
	"github.com/samfargo/h3geo/internal/h3geo/index"
	"github.com/samfargo/h3geo/internal/h3geo/pentagon"
)

// GeoToCell encodes geo as a cell index at resolution res.
func GeoToCell(geo geocoord.LatLng, res int) (index.Index, error) {
	if res < 0 || res > 15 {
		return 0, fmt.Errorf("geoindex: resolution %d out of range 0-15", res)
	}
	if !geo.Valid() {
		return 0, fmt.Errorf("geoindex: invalid coordinate %+v", geo)
	}

	faceCoord, err := faceijk.GeoToFaceIJK(geo, res)
	if err != nil {
		return 0, fmt.Errorf("geoindex: %w", err)
	}

	baseCell := basecells.PrimaryForFace(faceCoord.Face)
	digits := ijkToDigits(faceCoord.IJK, res)

	if basecells.IsPentagon(baseCell) {
		pentagon.CanonicalizeLeading(digits)
	}

	idx := index.NewCell(res, baseCell, digits)
	if err := index.Validate(idx, basecells.IsPentagon); err != nil {
		return 0, fmt.Errorf("geoindex: encoded index failed validation: %w", err)
	}
	return idx, nil
}

// CellToGeo decodes idx to the geographic coordinate of its cell center.
func CellToGeo(idx index.Index) (geocoord.LatLng, error) {
	if err := index.Validate(idx, basecells.IsPentagon); err != nil {
		return geocoord.LatLng{}, fmt.Errorf("geoindex: %w", err)
	}
	if idx.Mode() != index.ModeCell {
		return geocoord.LatLng{}, fmt.Errorf("geoindex: index mode %d is not a cell", idx.Mode())
	}

	fc := CellFaceIJK(idx)
	return fc.ToGeo(idx.Resolution()), nil
}

// CellFaceIJK decodes idx's base cell and digit string down to the
// FaceIJK coordinate of its cell center, on the home face of idx's base
// cell. It assumes idx has already passed Validate and is in cell mode.
func CellFaceIJK(idx index.Index) faceijk.FaceIJK {
	baseCell := idx.BaseCell()
	face := basecells.Get(baseCell).HomeFace

	cur := ijk.IJK{}
	digits := idx.Digits()
	for r := 1; r <= idx.Resolution(); r++ {
		var down ijk.IJK
		if ijk.ClassIII(r) {
			down = cur.DownAp7r()
		} else {
			down = cur.DownAp7()
		}
		cur = down.Add(ijk.UnitVec(digits[r-1]))
	}
	return faceijk.FaceIJK{Face: face, IJK: cur}
}

// ijkToDigits extracts the digit at every resolution level 1..res from
// an IJK coordinate expressed at res, by repeatedly ascending a level
// (UpAp7/UpAp7r) and reading off the displacement between the original
// coordinate and its parent's center child.
func ijkToDigits(c ijk.IJK, res int) []ijk.Direction {
	digits := make([]ijk.Direction, res)
	cur := c
	for r := res; r >= 1; r-- {
		var up ijk.IJK
		if ijk.ClassIII(r) {
			up = cur.UpAp7r()
		} else {
			up = cur.UpAp7()
		}
		var down ijk.IJK
		if ijk.ClassIII(r) {
			down = up.DownAp7r()
		} else {
			down = up.DownAp7()
		}
		digits[r-1] = cur.Sub(down).ToDigit()
		cur = up
	}
	return digits
}
