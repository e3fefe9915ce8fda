// Copyright 2020 Aleksandr Demakin. All rights reserved.

package posit

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/avdva/posit/env"
	"github.com/shopspring/decimal"
)

// DefaultMaxExponentSize is the maxEs of a View, if not set explicitly.
const DefaultMaxExponentSize = 2

// View is a read-only posit: a bit string with a maximum exponent size.
// It keeps no decoded state, every method decodes the bits again.
type View struct {
	bits  BitString
	maxEs int
}

// Option configures a View.
type Option func(v *View)

// WithMaxExponentSize sets the maximum exponent size.
func WithMaxExponentSize(es int) Option {
	return func(v *View) {
		v.maxEs = es
	}
}

// NewView parses s and returns a View over it.
func NewView(s string, opts ...Option) (View, error) {
	bits, err := Parse(s)
	if err != nil {
		return View{}, err
	}
	return ViewOf(bits, opts...)
}

// ViewOf returns a View over bits.
func ViewOf(bits BitString, opts ...Option) (View, error) {
	v := View{bits: bits, maxEs: DefaultMaxExponentSize}
	for _, opt := range opts {
		opt(&v)
	}
	if v.maxEs < 0 {
		return View{}, InvalidArgument.New("negative max exponent size %d", v.maxEs)
	}
	return v, nil
}

// MustView returns a View from a string, or panics, if the string or the options are invalid.
func MustView(s string, opts ...Option) View {
	v, err := NewView(s, opts...)
	if err != nil {
		panic(err)
	}
	return v
}

// Bits returns the bit string.
func (v View) Bits() BitString {
	return v.bits
}

// MaxExponentSize returns the maximum exponent size.
func (v View) MaxExponentSize() int {
	return v.maxEs
}

// Len returns the number of bits.
func (v View) Len() int {
	return v.bits.Len()
}

// IsZero returns true, if all the bits are 0. See IsZero.
func (v View) IsZero() bool {
	return IsZero(v.bits)
}

// IsInfinite returns true, if the bits are 1 followed by zeros. See IsInfinite.
func (v View) IsInfinite() bool {
	return IsInfinite(v.bits)
}

// IsPositive returns true, if the sign bit is 0. See IsPositive.
func (v View) IsPositive() bool {
	return IsPositive(v.bits)
}

// IsExact returns true, if the bits denote an exact value. See IsExact.
func (v View) IsExact() bool {
	return IsExact(v.bits)
}

// Fields decodes the bits.
func (v View) Fields(mode Mode) FieldSet {
	return Decode(v.bits, v.maxEs, mode)
}

// Regime returns the regime in ModeDirect.
func (v View) Regime() BitString {
	return Regime(v.bits)
}

// RegimeK returns the value of the regime in ModeDirect.
func (v View) RegimeK() int {
	return RegimeK(v.Regime())
}

// Exponent returns the exponent in ModeDirect.
func (v View) Exponent() BitString {
	return Exponent(v.bits, v.maxEs)
}

// Fraction returns the fraction in ModeDirect.
func (v View) Fraction() BitString {
	return Fraction(v.bits, v.maxEs)
}

// ExponentVal returns the value of the exponent in ModeDirect.
func (v View) ExponentVal() uint64 {
	return ExponentVal(v.Exponent(), v.maxEs)
}

// FractionMultiplier returns the multiplier of the fraction in ModeDirect.
func (v View) FractionMultiplier() float64 {
	return FractionMultiplier(v.Fraction())
}

// Float64 returns the value in the given convention.
func (v View) Float64(c Convention) float64 {
	return c.Evaluate(v.bits, v.maxEs)
}

// Decimal returns the value as a decimal, see Convention.Decimal.
func (v View) Decimal(c Convention, precision int32) (decimal.Decimal, error) {
	return c.Decimal(v.bits, v.maxEs, precision)
}

// Spaced returns the fields separated by spaces, see Spaced.
func (v View) Spaced(mode Mode, f SpacedFormat) string {
	return Spaced(v.bits, v.maxEs, mode, f)
}

// Details returns a debug description, see Details.
func (v View) Details(c Convention) string {
	return Details(v.bits, v.maxEs, c)
}

// Environment returns the environment of v's configuration from the cache.
// A nil cache means env.Default().
func (v View) Environment(cache env.Cache) (*env.Environment, error) {
	if cache == nil {
		cache = env.Default()
	}
	if v.Len() > math.MaxUint8 || v.maxEs > math.MaxUint8 {
		return nil, InvalidArgument.New("no environment for %d bits and maxEs %d", v.Len(), v.maxEs)
	}
	return cache.Get(uint8(v.Len()), uint8(v.maxEs))
}

// String returns the bits.
func (v View) String() string {
	return v.bits.String()
}

// GoString returns the bits and the maximum exponent size.
func (v View) GoString() string {
	return fmt.Sprintf("%s {es %d}", v.bits, v.maxEs)
}

type jsonView struct {
	Bits BitString `json:"bits"`
	Es   *int      `json:"es,omitempty"`
}

// MarshalJSON marshals v as an object, like `{"bits":"0101","es":2}`.
func (v View) MarshalJSON() ([]byte, error) {
	es := v.maxEs
	return json.Marshal(jsonView{Bits: v.bits, Es: &es})
}

// UnmarshalJSON unmarshals an object produced by MarshalJSON.
// If es is missing, DefaultMaxExponentSize is used.
func (v *View) UnmarshalJSON(data []byte) error {
	var jv jsonView
	if err := json.Unmarshal(data, &jv); err != nil {
		return err
	}
	var opts []Option
	if jv.Es != nil {
		opts = append(opts, WithMaxExponentSize(*jv.Es))
	}
	parsed, err := ViewOf(jv.Bits, opts...)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}
