/*
Copyright © 2018 the InMAP authors.
This file is part of InMAP.

InMAP is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

InMAP is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with InMAP.  If not, see <http://www.gnu.org/licenses/>.
*/

package crs

import (
	"errors"
	"fmt"
)

// Kind classifies the failure modes of CRS decoding.
type Kind int

const (
	// KindInvalidJSON indicates input that looked like JSON but could not
	// be parsed as a JSON object.
	KindInvalidJSON Kind = iota + 1
	// KindEmptyInput indicates a JSON document that decoded to an
	// empty mapping.
	KindEmptyInput
	// KindEmptyOrInvalid indicates a PROJ.4 string that contained no
	// recognized parameters.
	KindEmptyOrInvalid
	// KindInvalidEPSGCode indicates an EPSG code that is not a
	// positive integer.
	KindInvalidEPSGCode
)

func (k Kind) String() string {
	switch k {
	case KindInvalidJSON:
		return "invalid JSON"
	case KindEmptyInput:
		return "empty input"
	case KindEmptyOrInvalid:
		return "empty or invalid PROJ.4 string"
	case KindInvalidEPSGCode:
		return "invalid EPSG code"
	default:
		return fmt.Sprintf("unknown error kind %d", int(k))
	}
}

// Error describes a CRS decoding failure. The Kind field distinguishes the
// failure modes; Input holds the offending input where it is useful
// for diagnostics.
type Error struct {
	Kind  Kind
	Input string
	Err   error // underlying cause, if any
}

func (e *Error) Error() string {
	msg := "crs: " + e.Kind.String()
	if e.Input != "" {
		msg += fmt.Sprintf(" %q", e.Input)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }

// ErrKind returns the Kind of err, or zero if err was not produced by
// this package.
func ErrKind(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}
