// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package posit decodes and evaluates posit numbers.
// A posit is a bit string made of a sign bit, a run-length coded regime,
// up to maxEs exponent bits and a fraction. Its value is
//	sign * useed^K * 2^exponent * (1 + fraction),
// where useed = 2^(2^maxEs).
// Two evaluation conventions are supported, see Direct and Reflected.
package posit

import (
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/willf/bitset"
)

// BitString is an immutable sequence of bits, the most significant bit first.
// The zero value is an empty string.
// Slices of a BitString share its storage.
type BitString struct {
	set *bitset.BitSet
	off uint
	n   uint
}

var empty BitString

// Parse returns a BitString from a textual representation, like "0b0110".
// Leading and trailing spaces and the "0b" prefix are ignored.
func Parse(s string) (BitString, error) {
	trimmed := strings.TrimSpace(s)
	offset := strings.Index(s, trimmed)
	if strings.HasPrefix(trimmed, "0b") {
		trimmed = trimmed[2:]
		offset += 2
	}
	set := bitset.New(uint(len(trimmed)))
	for i := 0; i < len(trimmed); i++ {
		switch trimmed[i] {
		case '0':
		case '1':
			set.Set(uint(i))
		default:
			r, _ := utf8.DecodeRuneInString(trimmed[i:])
			// +1 to start indices from 1.
			pe := newPosError(fmt.Sprintf("unexpected symbol %q", r), offset+i+1)
			return empty, fmt.Errorf("parsing failed: %w", InvalidBitCharacter.Wrap(pe))
		}
	}
	return BitString{set: set, n: uint(len(trimmed))}, nil
}

// MustParse returns a BitString from a string, or panics, if the string is invalid.
func MustParse(s string) BitString {
	b, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return b
}

// FromUint64 returns the lowest n bits of v. n must be in [0, 64].
func FromUint64(v uint64, n int) BitString {
	if n < 0 || n > 64 {
		panic(fmt.Sprintf("posit: bit count %d out of range", n))
	}
	set := bitset.New(uint(n))
	for i := 0; i < n; i++ {
		if v&(1<<uint(n-1-i)) != 0 {
			set.Set(uint(i))
		}
	}
	return BitString{set: set, n: uint(n)}
}

// Len returns the number of bits.
func (b BitString) Len() int {
	return int(b.n)
}

// IsEmpty returns true, if there are no bits.
func (b BitString) IsEmpty() bool {
	return b.n == 0
}

// At returns true, if the i-th bit is set.
func (b BitString) At(i int) bool {
	if i < 0 || i >= int(b.n) {
		panic(fmt.Sprintf("posit: bit index %d out of range [0:%d]", i, b.n))
	}
	return b.set.Test(b.off + uint(i))
}

// Slice returns bits [from, to).
func (b BitString) Slice(from, to int) BitString {
	if from < 0 || to < from || to > int(b.n) {
		panic(fmt.Sprintf("posit: slice bounds [%d:%d] out of range [0:%d]", from, to, b.n))
	}
	if from == to {
		return empty
	}
	return BitString{set: b.set, off: b.off + uint(from), n: uint(to - from)}
}

// Equal returns true, if both strings have the same bits.
func (b BitString) Equal(other BitString) bool {
	if b.n != other.n {
		return false
	}
	for i := 0; i < int(b.n); i++ {
		if b.At(i) != other.At(i) {
			return false
		}
	}
	return true
}

// Invert returns a string with every bit flipped.
func (b BitString) Invert() BitString {
	if b.n == 0 {
		return empty
	}
	set := bitset.New(b.n)
	for i := 0; i < int(b.n); i++ {
		set.SetTo(uint(i), !b.At(i))
	}
	return BitString{set: set, n: b.n}
}

// TwosComplement returns the two's complement negation of b as a word of b.Len() bits.
// The carry out of the most significant bit is dropped, so all-zero strings map to themselves.
func (b BitString) TwosComplement() BitString {
	if b.n == 0 {
		return empty
	}
	set := bitset.New(b.n)
	carry := true
	for i := int(b.n) - 1; i >= 0; i-- {
		v := !b.At(i)
		if carry {
			v, carry = !v, v
		}
		set.SetTo(uint(i), v)
	}
	return BitString{set: set, n: b.n}
}

// Uint64 returns the unsigned value of b.
// ok is false, if the value does not fit 64 bits.
func (b BitString) Uint64() (v uint64, ok bool) {
	for i := 0; i < int(b.n); i++ {
		bit := b.At(i)
		if bit && int(b.n)-i > 64 {
			return 0, false
		}
		v <<= 1
		if bit {
			v |= 1
		}
	}
	return v, true
}

// String returns bits as a string of '0' and '1'.
func (b BitString) String() string {
	var sb strings.Builder
	sb.Grow(int(b.n))
	for i := 0; i < int(b.n); i++ {
		sb.WriteByte(bitChar(b.At(i)))
	}
	return sb.String()
}

// GoString returns a Go expression for b.
func (b BitString) GoString() string {
	return fmt.Sprintf("posit.MustParse(%q)", "0b"+b.String())
}

// MarshalText implements encoding.TextMarshaler.
func (b BitString) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (b *BitString) UnmarshalText(data []byte) error {
	parsed, err := Parse(string(data))
	if err != nil {
		return err
	}
	*b = parsed
	return nil
}

// MarshalJSON marshals bits as a json string.
func (b BitString) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.String())
}

// UnmarshalJSON unmarshals a json string into bits.
func (b *BitString) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	return b.UnmarshalText([]byte(s))
}

// runLength returns the number of consecutive bits equal to the bit at 'from'.
func (b BitString) runLength(from int) int {
	first := b.At(from)
	i := from + 1
	for i < int(b.n) && b.At(i) == first {
		i++
	}
	return i - from
}

// allClear returns true, if bits [from, Len()) are all 0.
func (b BitString) allClear(from int) bool {
	if from >= int(b.n) {
		return true
	}
	idx, found := b.set.NextSet(b.off + uint(from))
	return !found || idx >= b.off+b.n
}

// Invert returns the opposite bit character: '0' for '1' and '1' for '0'.
// Any other character is treated as '1'.
func Invert(bit byte) byte {
	if bit == '0' {
		return '1'
	}
	return '0'
}

func bitChar(set bool) byte {
	if set {
		return '1'
	}
	return '0'
}
