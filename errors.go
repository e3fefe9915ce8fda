// Copyright 2020 Aleksandr Demakin. All rights reserved.

package posit

import (
	"fmt"

	"github.com/avdva/posit/internal/mathutil"
	"github.com/zeebo/errs"
)

var (
	// InvalidBitCharacter is returned when a bit string contains anything but '0' and '1'.
	InvalidBitCharacter = errs.Class("invalid bit character")
	// InvalidArgument is returned for arguments outside of a function's domain.
	// It is the same class as env.InvalidArgument.
	InvalidArgument = &mathutil.InvalidArgument
)

type posError struct {
	pos int
	err string
}

func newPosError(err string, pos int) *posError {
	return &posError{err: err, pos: pos}
}

func (pe posError) Error() string {
	return pe.err + fmt.Sprintf(" at pos %d", pe.pos)
}
