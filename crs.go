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

// Package crs holds normalized descriptions of coordinate reference systems
// and converts them to and from PROJ.4 strings, EPSG shorthand codes, and
// JSON documents.
package crs

import "strings"

// Version is the version of this library.
const Version = "0.1.0"

// A CRS is a coordinate reference system described as an ordered mapping
// from PROJ.4 parameter names to typed values. The zero value is not
// usable; create one with New, Parse, or FromEPSG.
type CRS struct {
	keys []string
	vals map[string]Value
}

// New creates an empty CRS.
func New() *CRS {
	return &CRS{vals: make(map[string]Value)}
}

// Len returns the number of parameters in the mapping.
func (c *CRS) Len() int { return len(c.keys) }

// Keys returns the parameter names in insertion order.
func (c *CRS) Keys() []string {
	o := make([]string, len(c.keys))
	copy(o, c.keys)
	return o
}

// Get returns the value for key and whether the key is present.
func (c *CRS) Get(key string) (Value, bool) {
	v, ok := c.vals[key]
	return v, ok
}

// Set assigns a value to key. Assigning to an existing key replaces its
// value without changing its position in the mapping.
func (c *CRS) Set(key string, v Value) {
	if _, ok := c.vals[key]; !ok {
		c.keys = append(c.keys, key)
	}
	c.vals[key] = v
}

// Map returns a copy of the mapping. Iteration order of the result is
// unspecified; use Keys for ordered access.
func (c *CRS) Map() map[string]Value {
	o := make(map[string]Value, len(c.vals))
	for k, v := range c.vals {
		o[k] = v
	}
	return o
}

// IsEPSGCode reports whether any value in the mapping is text whose
// case-insensitive form starts with "epsg".
func (c *CRS) IsEPSGCode() bool {
	for _, v := range c.vals {
		if s, ok := v.(String); ok &&
			strings.HasPrefix(strings.ToLower(string(s)), "epsg") {
			return true
		}
	}
	return false
}
