// Copyright 2020 Aleksandr Demakin. All rights reserved.

package posit

import (
	"fmt"
	"math"
	"strings"

	"github.com/avdva/posit/env"
)

// SpacedFormat configures Spaced.
type SpacedFormat struct {
	// Markers prefixes the exponent with 'e' and the fraction with 'f'.
	Markers bool
	// Placeholders prints empty fields as '_' instead of omitting them.
	Placeholders bool
}

// DefaultSpacedFormat prints markers and omits empty fields.
var DefaultSpacedFormat = SpacedFormat{Markers: true}

// Spaced returns the fields of s separated by spaces, like "0 01 e1 f10".
// With ModeLiteral and no placeholders, removing spaces and markers gives s back.
func Spaced(s BitString, maxEs int, mode Mode, f SpacedFormat) string {
	fs := Decode(s, maxEs, mode)
	groups := [...]struct {
		marker string
		bits   BitString
	}{
		{"", fs.Sign},
		{"", fs.Regime},
		{"e", fs.Exponent},
		{"f", fs.Fraction},
	}
	var sb strings.Builder
	for _, g := range groups {
		if g.bits.IsEmpty() && !f.Placeholders {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		if f.Markers {
			sb.WriteString(g.marker)
		}
		if g.bits.IsEmpty() {
			sb.WriteByte('_')
		} else {
			sb.WriteString(g.bits.String())
		}
	}
	return sb.String()
}

// Details returns the spaced form of s with the intermediate values of its evaluation, like
//	"0 01 e0 f1" k=-1 useed^k=0.25 2^e=1 f=1.5 value=0.375
func Details(s BitString, maxEs int, c Convention) string {
	if maxEs < 0 {
		maxEs = 0
	}
	fs := Decode(s, maxEs, c.Mode())
	k := fs.K()
	return fmt.Sprintf("%q k=%d useed^k=%g 2^e=%g f=%g value=%g",
		Spaced(s, maxEs, c.Mode(), DefaultSpacedFormat),
		k,
		math.Pow(env.UseedFloat64(maxEs), float64(k)),
		math.Exp2(float64(ExponentVal(fs.Exponent, maxEs))),
		FractionMultiplier(fs.Fraction),
		c.Evaluate(s, maxEs))
}
