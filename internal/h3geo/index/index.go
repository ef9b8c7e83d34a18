// Package index implements the 64-bit index codec: the bit layout
// described in spec.md's DATA MODEL, field accessors, full validation,
// and hex string (de)serialization. It knows nothing about geometry -
// every operation here is pure bit manipulation.
package index

import (
	"fmt"
	"strconv"

	"github.com/samfargo/h3geo/internal/h3geo/ijk"
)

// Mode identifies what an Index addresses.
type Mode int

const (
	ModeInvalid Mode = iota
	ModeCell
	ModeDirectedEdge
	ModeUndirectedEdge
	ModeVertex
)

const (
	maxResolution  = 15
	numDigits      = 15
	maxBaseCell    = 121
	digitSentinel  = 0b111
	digitBits      = 3
	digitsLowBit   = 0
	baseCellBits   = 7
	baseCellShift  = numDigits * digitBits // 45
	resBits        = 4
	resShift       = baseCellShift + baseCellBits // 52
	subModeBits    = 3
	subModeShift   = resShift + resBits // 56
	modeBits       = 4
	modeShift      = subModeShift + subModeBits // 59
	reservedShift  = modeShift + modeBits        // 63
)

// Index is the bit-packed 64-bit cell/edge/vertex identifier.
type Index uint64

func mask(bits uint) uint64 { return (uint64(1) << bits) - 1 }

// Mode returns the index's mode field.
func (idx Index) Mode() Mode { return Mode((uint64(idx) >> modeShift) & mask(modeBits)) }

// WithMode returns a copy of idx with its mode field set.
func (idx Index) WithMode(m Mode) Index {
	cleared := uint64(idx) &^ (mask(modeBits) << modeShift)
	return Index(cleared | (uint64(m) << modeShift))
}

// SubMode returns the mode-dependent 3-bit field: edge direction (1-6)
// for directed edges, vertex number (0-5) for vertex mode, 0 for cells.
func (idx Index) SubMode() int { return int((uint64(idx) >> subModeShift) & mask(subModeBits)) }

// WithSubMode returns a copy of idx with its mode-dependent field set.
func (idx Index) WithSubMode(v int) Index {
	cleared := uint64(idx) &^ (mask(subModeBits) << subModeShift)
	return Index(cleared | (uint64(v&0b111) << subModeShift))
}

// Resolution returns the index's resolution, 0-15.
func (idx Index) Resolution() int { return int((uint64(idx) >> resShift) & mask(resBits)) }

// WithResolution returns a copy of idx with its resolution field set.
func (idx Index) WithResolution(r int) Index {
	cleared := uint64(idx) &^ (mask(resBits) << resShift)
	return Index(cleared | (uint64(r) << resShift))
}

// BaseCell returns the index's base cell, 0-121.
func (idx Index) BaseCell() int { return int((uint64(idx) >> baseCellShift) & mask(baseCellBits)) }

// WithBaseCell returns a copy of idx with its base cell field set.
func (idx Index) WithBaseCell(bc int) Index {
	cleared := uint64(idx) &^ (mask(baseCellBits) << baseCellShift)
	return Index(cleared | (uint64(bc) << baseCellShift))
}

// Digit returns the direction digit at position r (1-15, the
// resolution-r step taken to descend from r-1 to r).
func (idx Index) Digit(r int) ijk.Direction {
	shift := uint((numDigits - r) * digitBits)
	return ijk.Direction((uint64(idx) >> shift) & mask(digitBits))
}

// WithDigit returns a copy of idx with the digit at position r set.
func (idx Index) WithDigit(r int, d ijk.Direction) Index {
	shift := uint((numDigits - r) * digitBits)
	cleared := uint64(idx) &^ (mask(digitBits) << shift)
	return Index(cleared | (uint64(d) << shift))
}

// Digits returns digits[1..res] for the index's declared resolution.
func (idx Index) Digits() []ijk.Direction {
	res := idx.Resolution()
	out := make([]ijk.Direction, res)
	for r := 1; r <= res; r++ {
		out[r-1] = idx.Digit(r)
	}
	return out
}

// NewCell builds a cell-mode index from its fields; it performs no
// validation.
func NewCell(res, baseCell int, digits []ijk.Direction) Index {
	var idx Index
	idx = idx.WithMode(ModeCell).WithResolution(res).WithBaseCell(baseCell)
	for r := 1; r <= numDigits; r++ {
		if r <= res {
			idx = idx.WithDigit(r, digits[r-1])
		} else {
			idx = idx.WithDigit(r, ijk.Invalid)
		}
	}
	return idx
}

// ToString renders idx as lowercase hexadecimal with no leading zeros
// suppressed beyond the integer's own canonical hex form.
func ToString(idx Index) string { return strconv.FormatUint(uint64(idx), 16) }

// FromString parses a hex string into an Index. It rejects empty
// strings, strings longer than 16 hex digits, and non-hex characters;
// it does not validate the resulting bit pattern.
func FromString(s string) (Index, error) {
	if len(s) == 0 {
		return 0, fmt.Errorf("index: empty string")
	}
	if len(s) > 16 {
		return 0, fmt.Errorf("index: string %q longer than 16 hex digits", s)
	}
	v, err := strconv.ParseUint(s, 16, 64)
	if err != nil {
		return 0, fmt.Errorf("index: %q is not valid hex: %w", s, err)
	}
	return Index(v), nil
}

// leadingDigitIsK reports the deleted-subsequence violation: a
// pentagon may not have direction K as its leading non-center digit.
// Kept here (rather than in package pentagon) so Validate has no
// dependency beyond ijk; package pentagon reuses the same rule via
// HasDeletedSubsequence for the encoding path.
func leadingDigitIsK(digits []ijk.Direction) bool {
	for _, d := range digits {
		if d == ijk.Center {
			continue
		}
		return d == ijk.K
	}
	return false
}

// Validate checks idx against every bit-layout rule in spec.md 4.5. It
// takes isPentagon so package index has no dependency on basecells.
func Validate(idx Index, isPentagon func(baseCell int) bool) error {
	if uint64(idx)>>reservedShift != 0 {
		return fmt.Errorf("index: reserved bit is set")
	}
	mode := idx.Mode()
	switch mode {
	case ModeCell, ModeDirectedEdge, ModeUndirectedEdge, ModeVertex:
	default:
		return fmt.Errorf("index: unknown mode %d", mode)
	}

	res := idx.Resolution()
	if res > maxResolution {
		return fmt.Errorf("index: resolution %d exceeds 15", res)
	}
	bc := idx.BaseCell()
	if bc > maxBaseCell {
		return fmt.Errorf("index: base cell %d exceeds 121", bc)
	}

	for r := 1; r <= numDigits; r++ {
		d := idx.Digit(r)
		if r > res {
			if d != ijk.Invalid {
				return fmt.Errorf("index: digit %d beyond resolution %d is not the sentinel", r, res)
			}
			continue
		}
		if d == ijk.Invalid || d < ijk.Center || d > ijk.IJ {
			return fmt.Errorf("index: digit %d value %d out of range", r, d)
		}
	}

	isPent := isPentagon != nil && isPentagon(bc)
	if isPent && leadingDigitIsK(idx.Digits()) {
		return fmt.Errorf("index: pentagon has deleted-subsequence leading digit")
	}

	switch mode {
	case ModeDirectedEdge:
		sm := idx.SubMode()
		if sm < 1 || sm > 6 {
			return fmt.Errorf("index: directed edge direction %d out of range 1-6", sm)
		}
	case ModeVertex:
		sm := idx.SubMode()
		maxVertex := 5
		if isPent {
			maxVertex = 4
		}
		if sm < 0 || sm > maxVertex {
			return fmt.Errorf("index: vertex number %d out of range 0-%d", sm, maxVertex)
		}
	}
	return nil
}
