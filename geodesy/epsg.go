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

package geodesy

import (
	"fmt"
	"strconv"
	"strings"
)

// epsgDefs maps common EPSG codes to PROJ.4 definitions.
var epsgDefs = map[int]string{
	4267: "+proj=longlat +datum=NAD27 +no_defs",
	4269: "+proj=longlat +datum=NAD83 +no_defs",
	4326: "+proj=longlat +datum=WGS84 +no_defs",
	3857: "+proj=merc +a=6378137 +b=6378137 +lat_ts=0 +lon_0=0 +x_0=0 +y_0=0 +k=1 +units=m +no_defs",
}

// lookupEPSG returns the PROJ.4 definition for an EPSG code. Besides the
// fixed table, the WGS 84 UTM ranges 32601–32660 (north) and
// 32701–32760 (south) are handled arithmetically.
func lookupEPSG(code int) (string, bool) {
	if def, ok := epsgDefs[code]; ok {
		return def, true
	}
	switch {
	case code >= 32601 && code <= 32660:
		return fmt.Sprintf("+proj=utm +zone=%d +datum=WGS84 +units=m +no_defs", code-32600), true
	case code >= 32701 && code <= 32760:
		return fmt.Sprintf("+proj=utm +zone=%d +south +datum=WGS84 +units=m +no_defs", code-32700), true
	}
	return "", false
}

// resolveInit replaces a definition containing "+init=epsg:n" with the
// definition the code refers to. Definitions without an init parameter are
// returned unchanged.
func resolveInit(def string) (string, error) {
	for _, tok := range strings.Fields(def) {
		tok = strings.TrimPrefix(tok, "+")
		if !strings.HasPrefix(strings.ToLower(tok), "init=") {
			continue
		}
		val := tok[len("init="):]
		parts := strings.SplitN(val, ":", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "epsg") {
			return "", fmt.Errorf("geodesy: unsupported init authority in %q", val)
		}
		code, err := strconv.Atoi(parts[1])
		if err != nil {
			return "", fmt.Errorf("geodesy: invalid init code in %q: %v", val, err)
		}
		resolved, ok := lookupEPSG(code)
		if !ok {
			return "", fmt.Errorf("geodesy: no definition for EPSG:%d", code)
		}
		return resolved, nil
	}
	return def, nil
}
