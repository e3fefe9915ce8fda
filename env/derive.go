// Copyright 2020 Aleksandr Demakin. All rights reserved.

package env

import (
	"math"
	"math/big"

	"github.com/avdva/posit/internal/mathutil"
	"github.com/shopspring/decimal"
)

const (
	// MaxExponentSize is the largest maxEs an Environment can be built for.
	MaxExponentSize = 8

	// precision of reciprocals that can not be represented exactly.
	reciprocalPrecision = 64
)

// InvalidArgument is returned for arguments outside of a function's domain.
// It is the same class as posit.InvalidArgument.
var InvalidArgument = &mathutil.InvalidArgument

var (
	// useedTable[es] = 2^(2^es)
	useedTable = func() (t [MaxExponentSize + 1]*big.Int) {
		for es := range t {
			t[es] = new(big.Int).Lsh(big.NewInt(1), 1<<uint(es))
		}
		return t
	}()

	containerWidths = [...]int{8, 16, 32, 64, 128, 256}

	quireSizes = [...]struct {
		bits int
		size int64
	}{
		{8, 64},
		{16, 256},
		{32, 512},
		{64, 2048},
		{128, 8192},
		{256, 32768},
	}
)

// Useed returns 2^(2^es).
// es < 0 has no useed, and the function returns 0 for it instead of failing.
func Useed(es int) *big.Int {
	switch {
	case es < 0:
		return new(big.Int)
	case es < len(useedTable):
		return new(big.Int).Set(useedTable[es])
	}
	u := big.NewInt(2)
	for i := 0; i < es; i++ {
		u.Mul(u, u)
	}
	return u
}

// UseedFloat64 returns 2^(2^es) as a float64.
// The result is +Inf for es >= 10 and 0 for es < 0.
func UseedFloat64(es int) float64 {
	switch {
	case es < 0:
		return 0
	case es >= 10:
		return math.Inf(1)
	}
	return math.Ldexp(1, int(mathutil.Pow2(es)))
}

// NumberOfPatterns returns 2^bits. A negative width has no patterns.
func NumberOfPatterns(bits int) *big.Int {
	if bits < 0 {
		return new(big.Int)
	}
	return new(big.Int).Lsh(big.NewInt(1), uint(bits))
}

// MinPositive returns useed^(2-bits).
func MinPositive(useed *big.Int, bits int) decimal.Decimal {
	return useedPower(useed, 2-bits)
}

// MaxPositive returns useed^(bits-2).
func MaxPositive(useed *big.Int, bits int) decimal.Decimal {
	return useedPower(useed, bits-2)
}

func useedPower(useed *big.Int, pow int) decimal.Decimal {
	if pow >= 0 {
		return decimal.NewFromBigInt(new(big.Int).Exp(useed, big.NewInt(int64(pow)), nil), 0)
	}
	if useed.Sign() == 0 {
		return decimal.Zero
	}
	denom := new(big.Int).Exp(useed, big.NewInt(int64(-pow)), nil)
	if mathutil.IsPow2(denom) {
		return mathutil.Ldexp(big.NewInt(1), -(denom.BitLen() - 1))
	}
	return decimal.New(1, 0).DivRound(decimal.NewFromBigInt(denom, 0), reciprocalPrecision)
}

// ContainerBitWidth returns the width of the smallest integer type that can hold 'bits' bits.
func ContainerBitWidth(bits int) (int, error) {
	for _, w := range containerWidths {
		if bits <= w {
			return w, nil
		}
	}
	return 0, InvalidArgument.New("unsupported bit width %d", bits)
}

// QuireSize returns the width of an accumulator for exact sums of products of 'bits'-bit posits.
// The size depends only on the bracket of the bit width.
func QuireSize(bits, maxEs int) (int64, error) {
	for _, q := range quireSizes {
		if bits <= q.bits {
			return q.size, nil
		}
	}
	return 0, InvalidArgument.New("no quire for %d-bit posits with maxEs %d", bits, maxEs)
}

// QuireExtra returns the number of quire bits left after (bits-2)*2^(maxEs+2) bits of products.
func QuireExtra(quireSize int64, bits, maxEs int) (int64, error) {
	p, err := mathutil.Ipow(int64(2), int64(maxEs+2))
	if err != nil {
		return 0, err
	}
	return quireSize - int64(bits-2)*p, nil
}
