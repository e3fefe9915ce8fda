// Copyright 2020 Aleksandr Demakin. All rights reserved.

package posit

import (
	"math"
	"math/big"

	"github.com/avdva/posit/env"
	"github.com/avdva/posit/internal/mathutil"
	"github.com/shopspring/decimal"
)

// Evaluator converts a posit bit string into a float64.
type Evaluator interface {
	Evaluate(s BitString, maxEs int) float64
}

// Convention selects how a posit is evaluated.
// The two conventions give different values for the same bits.
type Convention uint8

const (
	// Direct evaluates the two's complement of negative posits,
	// so that -x is the negation of the whole word x.
	//	"0011" with maxEs=0 is 0.75, "1101" is -0.75.
	Direct Convention = iota
	// Reflected complements the bits following the sign, if they start with 0,
	// so that reciprocals mirror each other around 1.
	// For the resulting magnitude m, the value is
	//	1/m for a positive complemented posit,
	//	m for a positive posit,
	//	-m for a negative complemented posit,
	//	-1/m for a negative posit.
	//	"0011" with maxEs=0 is 1/1.5, "0101" is 1.5.
	Reflected
)

var _ Evaluator = Direct

func (c Convention) String() string {
	switch c {
	case Direct:
		return "direct"
	case Reflected:
		return "reflected"
	default:
		return "unknown"
	}
}

// Mode returns the field split used by the convention.
func (c Convention) Mode() Mode {
	if c == Reflected {
		return ModeReflected
	}
	return ModeDirect
}

// Evaluate returns the value of s.
// Empty strings and zeros are 0, infinity is +Inf. A negative maxEs is treated as 0.
func (c Convention) Evaluate(s BitString, maxEs int) float64 {
	switch {
	case s.IsEmpty(), IsZero(s):
		return 0
	case IsInfinite(s):
		return math.Inf(1)
	}
	if maxEs < 0 {
		maxEs = 0
	}
	fs := Decode(s, maxEs, c.Mode())
	fracM := FractionMultiplier(fs.Fraction)
	exp := scale(fs, maxEs)
	var v float64
	if c == Reflected && fs.Negative() != fs.Reflected {
		v = math.Ldexp(1/fracM, -exp)
	} else {
		v = math.Ldexp(fracM, exp)
	}
	if fs.Negative() {
		v = -v
	}
	return v
}

// maxScale bounds the binary exponents passed to math.Ldexp.
// Any float64 scaled by 2^maxScale or 2^-maxScale is infinite or zero.
const maxScale = 1 << 20

// scale returns the binary exponent k*2^maxEs + e of fs, clamped to [-maxScale, maxScale].
func scale(fs FieldSet, maxEs int) int {
	k, n := fs.K(), fs.Exponent.Len()
	shift := maxEs - n
	if shift < 0 {
		shift = 0
	}
	// k*2^maxEs + e == (k*2^n + exponent bits) * 2^shift.
	var m int64
	if n < 32 && mathutil.AbsInt(k) < maxScale {
		bits, _ := fs.Exponent.Uint64()
		m = int64(k)<<uint(n) + int64(bits)
	} else {
		bm := new(big.Int).Lsh(big.NewInt(int64(k)), uint(n))
		bits := new(big.Int)
		for i := 0; i < n; i++ {
			if fs.Exponent.At(i) {
				bits.SetBit(bits, n-1-i, 1)
			}
		}
		bm.Add(bm, bits)
		if !bm.IsInt64() {
			return saturateScale(bm.Sign() < 0)
		}
		m = bm.Int64()
	}
	if m == 0 {
		return 0
	}
	abs := uint64(m)
	if m < 0 {
		abs = uint64(-m)
	}
	if shift > 21 || mathutil.BinaryDigits(abs)+shift > 21 {
		return saturateScale(m < 0)
	}
	res := int(m << uint(shift))
	switch {
	case res > maxScale:
		return maxScale
	case res < -maxScale:
		return -maxScale
	}
	return res
}

func saturateScale(negative bool) int {
	if negative {
		return -maxScale
	}
	return maxScale
}

// Decimal returns the value of s as a decimal.
// Direct values are exact. Reciprocals in Reflected convention are rounded to 'precision' digits.
// Infinity and maxEs above env.MaxExponentSize are errors.
func (c Convention) Decimal(s BitString, maxEs int, precision int32) (decimal.Decimal, error) {
	switch {
	case s.IsEmpty(), IsZero(s):
		return decimal.Zero, nil
	case IsInfinite(s):
		return decimal.Zero, InvalidArgument.New("%s is infinite", s)
	}
	if maxEs < 0 {
		maxEs = 0
	}
	if maxEs > env.MaxExponentSize {
		return decimal.Zero, InvalidArgument.New("maxEs %d exceeds %d", maxEs, env.MaxExponentSize)
	}
	fs := Decode(s, maxEs, c.Mode())
	// (1 + f/2^n) * 2^e * useed^k = (2^n + f) * 2^(k*2^maxEs + e - n).
	n := fs.Fraction.Len()
	mant := new(big.Int).SetBit(new(big.Int), n, 1)
	for i := 0; i < n; i++ {
		if fs.Fraction.At(i) {
			mant.SetBit(mant, n-1-i, 1)
		}
	}
	exp := fs.K()<<uint(maxEs) + int(ExponentVal(fs.Exponent, maxEs)) - n
	v := mathutil.Ldexp(mant, exp)
	if c == Reflected && fs.Negative() != fs.Reflected {
		v = decimal.New(1, 0).DivRound(v, precision)
	}
	if fs.Negative() {
		v = v.Neg()
	}
	return v, nil
}

// Evaluate returns the value of s in the given convention.
func Evaluate(s BitString, maxEs int, c Convention) float64 {
	return c.Evaluate(s, maxEs)
}
