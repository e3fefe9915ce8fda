// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package env computes the constants derived from a posit configuration,
// which is a total bit width and a maximum exponent size,
// and caches them per configuration.
package env

import (
	"cmp"
	"fmt"
	"math/big"

	"github.com/shopspring/decimal"
)

// Key identifies a posit configuration.
type Key struct {
	Bits  uint8
	MaxEs uint8
}

func (k Key) String() string {
	return fmt.Sprintf("bits=%d, maxEs=%d", k.Bits, k.MaxEs)
}

// Compare orders keys by Bits, then by MaxEs.
// It returns -1, 0 or 1.
func (k Key) Compare(other Key) int {
	if c := cmp.Compare(k.Bits, other.Bits); c != 0 {
		return c
	}
	return cmp.Compare(k.MaxEs, other.MaxEs)
}

// Environment holds the constants of a posit configuration.
// It is immutable.
type Environment struct {
	key            Key
	containerWidth int
	useed          *big.Int
	patterns       *big.Int
	minPos         decimal.Decimal
	maxPos         decimal.Decimal
	quireSize      int64
	quireExtra     int64
}

// New computes an Environment. Use a Cache to share environments.
func New(bits, maxEs uint8) (_ *Environment, err error) {
	defer InvalidArgument.WrapP(&err)
	if maxEs > MaxExponentSize {
		return nil, fmt.Errorf("maxEs %d exceeds %d", maxEs, MaxExponentSize)
	}
	e := &Environment{key: Key{Bits: bits, MaxEs: maxEs}}
	if e.containerWidth, err = ContainerBitWidth(int(bits)); err != nil {
		return nil, err
	}
	if e.quireSize, err = QuireSize(int(bits), int(maxEs)); err != nil {
		return nil, err
	}
	if e.quireExtra, err = QuireExtra(e.quireSize, int(bits), int(maxEs)); err != nil {
		return nil, err
	}
	e.useed = Useed(int(maxEs))
	e.patterns = NumberOfPatterns(int(bits))
	e.minPos = MinPositive(e.useed, int(bits))
	e.maxPos = MaxPositive(e.useed, int(bits))
	return e, nil
}

// Key returns the configuration of e.
func (e *Environment) Key() Key {
	return e.key
}

// Bits returns the total number of bits.
func (e *Environment) Bits() int {
	return int(e.key.Bits)
}

// MaxExponentSize returns the maximum exponent size.
func (e *Environment) MaxExponentSize() int {
	return int(e.key.MaxEs)
}

// ContainerBitWidth returns the width of the smallest integer type that can hold the bits.
func (e *Environment) ContainerBitWidth() int {
	return e.containerWidth
}

// Useed returns a copy of 2^(2^maxEs).
func (e *Environment) Useed() *big.Int {
	return new(big.Int).Set(e.useed)
}

// NumberOfPatterns returns a copy of 2^bits.
func (e *Environment) NumberOfPatterns() *big.Int {
	return new(big.Int).Set(e.patterns)
}

// MinPositive returns the smallest positive value.
func (e *Environment) MinPositive() decimal.Decimal {
	return e.minPos
}

// MaxPositive returns the largest positive value.
func (e *Environment) MaxPositive() decimal.Decimal {
	return e.maxPos
}

// QuireSize returns the width of the accumulator in bits.
func (e *Environment) QuireSize() int64 {
	return e.quireSize
}

// QuireExtra returns the spare bits of the accumulator.
func (e *Environment) QuireExtra() int64 {
	return e.quireExtra
}

// Equal returns true, if both environments have the same configuration.
func (e *Environment) Equal(other *Environment) bool {
	if e == nil || other == nil {
		return e == other
	}
	return e.key == other.key
}

// Compare compares configurations, see Key.Compare.
func (e *Environment) Compare(other *Environment) int {
	return e.key.Compare(other.key)
}

func (e *Environment) String() string {
	return fmt.Sprintf("%s, useed=%s, patterns=%s, minPos=%s, maxPos=%s, quire=%d, quireExtra=%d",
		e.key, e.useed, e.patterns, shortDecimal(e.minPos), shortDecimal(e.maxPos), e.quireSize, e.quireExtra)
}

// shortDecimal avoids printing thousands of digits for wide configurations.
func shortDecimal(d decimal.Decimal) string {
	s := d.String()
	if len(s) <= 32 {
		return s
	}
	f, _ := d.Float64()
	return fmt.Sprintf("%g", f)
}
