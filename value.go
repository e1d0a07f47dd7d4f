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

import "encoding/json"

// A Value is a typed PROJ.4 parameter value. Concrete types are Bool, Int,
// Float, String, and Any. Decoding a PROJ.4 string produces only the four
// scalar types; Any occurs only in mappings decoded from JSON.
type Value interface {
	crsValue() // only types in this package implement Value
}

// Bool is a boolean parameter value. Bare flags such as "+no_defs"
// decode to Bool(true).
type Bool bool

// Int is a 64-bit signed integer parameter value.
type Int int64

// Float is a double-precision floating point parameter value.
type Float float64

// String is a text parameter value.
type String string

// Any holds a JSON-decoded value that has no PROJ.4 scalar form, such as a
// nested object, array, or null. Encoding to a PROJ.4 string skips
// Any values.
type Any struct {
	V interface{}
}

func (Bool) crsValue()   {}
func (Int) crsValue()    {}
func (Float) crsValue()  {}
func (String) crsValue() {}
func (Any) crsValue()    {}

// MarshalJSON encodes the wrapped value.
func (a Any) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.V)
}
