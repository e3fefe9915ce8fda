// Copyright 2020 Aleksandr Demakin. All rights reserved.

package posit

import (
	"math"

	"github.com/avdva/posit/internal/mathutil"
)

// Mode defines how a bit string is split into fields.
type Mode uint8

const (
	// ModeLiteral splits the bits as they are written.
	ModeLiteral Mode = iota
	// ModeDirect two's-complements a negative string before splitting it.
	// The sign bit is taken from the original string.
	ModeDirect
	// ModeReflected two's-complements the bits following the sign bit,
	// if they start with 0. The sign bit does not matter.
	ModeReflected
)

func (m Mode) String() string {
	switch m {
	case ModeLiteral:
		return "literal"
	case ModeDirect:
		return "direct"
	case ModeReflected:
		return "reflected"
	default:
		return "unknown"
	}
}

// FieldSet holds the fields of a posit.
// All fields are views of the decoded string or of its complement.
// For a non-empty source Sign has one bit and
//	Sign.Len() + Regime.Len() + Exponent.Len() + Fraction.Len() == source.Len().
type FieldSet struct {
	Sign     BitString
	Regime   BitString
	Exponent BitString
	Fraction BitString
	// Reflected is set, if the bits following the sign were complemented in ModeReflected.
	Reflected bool
}

// Negative returns true, if the sign bit is 1.
func (fs FieldSet) Negative() bool {
	return !fs.Sign.IsEmpty() && fs.Sign.At(0)
}

// K returns the value of the regime.
func (fs FieldSet) K() int {
	return RegimeK(fs.Regime)
}

// Len returns the total number of bits in all fields.
func (fs FieldSet) Len() int {
	return fs.Sign.Len() + fs.Regime.Len() + fs.Exponent.Len() + fs.Fraction.Len()
}

// Decode splits s into fields. A negative maxEs is treated as 0.
func Decode(s BitString, maxEs int, mode Mode) FieldSet {
	if s.IsEmpty() {
		return FieldSet{}
	}
	fs := FieldSet{Sign: s.Slice(0, 1)}
	rest := s.Slice(1, s.Len())
	switch mode {
	case ModeDirect:
		if s.At(0) {
			rest = s.TwosComplement().Slice(1, s.Len())
		}
	case ModeReflected:
		if !rest.IsEmpty() && !rest.At(0) {
			rest = rest.TwosComplement()
			fs.Reflected = true
		}
	}
	fs.Regime, fs.Exponent, fs.Fraction = split(rest, maxEs)
	return fs
}

// split cuts the bits following the sign into regime, exponent and fraction.
func split(rest BitString, maxEs int) (regime, exponent, fraction BitString) {
	if rest.IsEmpty() {
		return empty, empty, empty
	}
	end := rest.runLength(0)
	if end < rest.Len() {
		// the terminating bit belongs to the regime.
		end++
	}
	if maxEs < 0 {
		maxEs = 0
	}
	expEnd := end + maxEs
	if expEnd > rest.Len() {
		expEnd = rest.Len()
	}
	return rest.Slice(0, end), rest.Slice(end, expEnd), rest.Slice(expEnd, rest.Len())
}

// IsZero returns true, if s is not empty and all its bits are 0.
func IsZero(s BitString) bool {
	return !s.IsEmpty() && s.allClear(0)
}

// IsInfinite returns true, if s is 1 followed by zeros.
func IsInfinite(s BitString) bool {
	return !s.IsEmpty() && s.At(0) && s.allClear(1)
}

// IsPositive returns true, if s is not empty and its sign bit is 0.
// Zero is positive.
func IsPositive(s BitString) bool {
	return !s.IsEmpty() && !s.At(0)
}

// IsExact returns true, if s denotes an exact value.
// Strings of 3 and more bits ending with 1 denote an open interval between two exact values.
func IsExact(s BitString) bool {
	return s.Len() < 3 || !s.At(s.Len()-1)
}

// Regime returns the regime of s in ModeDirect.
func Regime(s BitString) BitString {
	return Decode(s, 0, ModeDirect).Regime
}

// Exponent returns the exponent of s in ModeDirect.
func Exponent(s BitString, maxEs int) BitString {
	return Decode(s, maxEs, ModeDirect).Exponent
}

// Fraction returns the fraction of s in ModeDirect.
func Fraction(s BitString, maxEs int) BitString {
	return Decode(s, maxEs, ModeDirect).Fraction
}

// RegimeK returns the value of a regime: -m for a run of m zeros, m-1 for a run of m ones.
func RegimeK(regime BitString) int {
	if regime.IsEmpty() {
		return 0
	}
	m := regime.runLength(0)
	if regime.At(0) {
		return m - 1
	}
	return -m
}

// ExponentVal returns the value of an exponent field.
// A field shorter than maxEs is left-aligned, so "1" with maxEs=3 is 4.
// The result saturates at math.MaxUint64.
func ExponentVal(exponent BitString, maxEs int) uint64 {
	v, ok := exponent.Uint64()
	if !ok {
		return math.MaxUint64
	}
	shift := maxEs - exponent.Len()
	if shift < 0 {
		shift = 0
	}
	if v, ok = mathutil.ShiftLeft64(v, shift); !ok {
		return math.MaxUint64
	}
	return v
}

// FractionMultiplier returns 1 + fraction/2^fraction.Len().
func FractionMultiplier(fraction BitString) float64 {
	m, w := 1.0, 0.5
	for i := 0; i < fraction.Len(); i++ {
		if fraction.At(i) {
			m += w
		}
		w /= 2
	}
	return m
}
