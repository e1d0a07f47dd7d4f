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
	"sort"
	"strconv"
	"strings"
)

// String converts the CRS to canonical PROJ.4 form. Parameters are sorted
// lexicographically by name; Bool(true) values render as bare "+flag"
// tokens. Parameters are skipped when the name is not a recognized PROJ.4
// parameter, the value is Bool(false), or the value has no scalar form
// (Any). Integer and float zeros are kept; only boolean false is omitted.
// An empty result is the empty string, not an error.
func (c *CRS) String() string {
	keys := make([]string, 0, len(c.keys))
	for _, k := range c.keys {
		if !KnownParam(k) {
			continue
		}
		switch v := c.vals[k].(type) {
		case Bool:
			if !bool(v) {
				continue
			}
		case Int, Float, String:
		default:
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	tokens := make([]string, len(keys))
	for i, k := range keys {
		switch v := c.vals[k].(type) {
		case Bool: // only true survives the filter above
			tokens[i] = "+" + k
		case Int:
			tokens[i] = "+" + k + "=" + strconv.FormatInt(int64(v), 10)
		case Float:
			tokens[i] = "+" + k + "=" + strconv.FormatFloat(float64(v), 'g', -1, 64)
		case String:
			tokens[i] = "+" + k + "=" + string(v)
		}
	}
	return strings.Join(tokens, " ")
}
