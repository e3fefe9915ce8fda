// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package mathutil holds integer helpers shared by the posit packages.
package mathutil

import (
	"math/big"
	"math/bits"
	"unsafe"

	"github.com/shopspring/decimal"
	"github.com/zeebo/errs"
	"golang.org/x/exp/constraints"
)

// InvalidArgument is the error class for arguments outside of a function's domain.
// The public packages re-export its address, so the class is the same everywhere.
var InvalidArgument = errs.Class("invalid argument")

// Ipow returns base^exp.
// A negative exponent is an error. The result silently wraps on overflow.
func Ipow[T constraints.Integer](base, exp T) (T, error) {
	if exp < 0 {
		return 0, InvalidArgument.New("negative exponent %d", exp)
	}
	result := T(1)
	for exp > 0 {
		if exp&1 == 1 {
			result *= base
		}
		base *= base
		exp >>= 1
	}
	return result, nil
}

// Pow2 returns 2^pow, or 0 if it does not fit 64 bits.
func Pow2(pow int) uint64 {
	if pow < 0 || pow >= 64 {
		return 0
	}
	return 1 << uint(pow)
}

// Ldexp returns mant*2^exp as an exact decimal.
// For a negative exp the result is mant*5^-exp*10^exp.
func Ldexp(mant *big.Int, exp int) decimal.Decimal {
	if exp >= 0 {
		return decimal.NewFromBigInt(new(big.Int).Lsh(mant, uint(exp)), 0)
	}
	five := new(big.Int).Exp(big.NewInt(5), big.NewInt(int64(-exp)), nil)
	return decimal.NewFromBigInt(five.Mul(five, mant), int32(exp))
}

// IsPow2 returns true, if v is a positive power of two.
func IsPow2(v *big.Int) bool {
	return v.Sign() > 0 && v.TrailingZeroBits() == uint(v.BitLen()-1)
}

// BinaryDigits returns the number of significant bits in 'value'.
func BinaryDigits(value uint64) int {
	return int(8*unsafe.Sizeof(uint64(0))) - bits.LeadingZeros64(value)
}

// AbsInt returns |val| without branching.
func AbsInt(val int) int {
	mask := val >> (unsafe.Sizeof(int(0))*8 - 1)
	return (val + mask) ^ mask
}

// ShiftLeft64 returns v<<n and false if the result does not fit 64 bits.
func ShiftLeft64(v uint64, n int) (uint64, bool) {
	if v == 0 {
		return 0, true
	}
	if n < 0 || n+BinaryDigits(v) > 64 {
		return 0, false
	}
	return v << uint(n), true
}
