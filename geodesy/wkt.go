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
	"math"
	"strconv"
	"strings"

	"github.com/ctessum/geom/proj"
)

const rad2deg = 180. / math.Pi

// wktProjections maps PROJ.4 projection names to WKT projection names.
var wktProjections = map[string]string{
	"aea":    "Albers_Conic_Equal_Area",
	"krovak": "Krovak",
	"lcc":    "Lambert_Conformal_Conic_2SP",
	"merc":   "Mercator_1SP",
	"tmerc":  "Transverse_Mercator",
	"utm":    "Transverse_Mercator",
}

// marshalWKT exports a spatial reference in Well-Known Text form. Geographic
// references export as a GEOGCS; projected references as a PROJCS wrapping
// the GEOGCS of their datum and ellipsoid.
func marshalWKT(sr *proj.SR) (string, error) {
	geog := geogCS(sr)
	name := strings.ToLower(sr.Name)
	if name == "longlat" || name == "identity" {
		return geog, nil
	}
	projection, ok := wktProjections[name]
	if !ok {
		return "", fmt.Errorf("geodesy: no WKT projection name for %q", sr.Name)
	}
	var b strings.Builder
	fmt.Fprintf(&b, `PROJCS["%s",%s,PROJECTION["%s"]`, projCSName(sr), geog, projection)
	for _, p := range projParameters(sr) {
		fmt.Fprintf(&b, `,PARAMETER["%s",%s]`, p.name, wktFloat(p.value))
	}
	toMeter := sr.ToMeter
	if math.IsNaN(toMeter) {
		toMeter = 1
	}
	fmt.Fprintf(&b, `,UNIT["%s",%s]]`, unitName(sr), wktFloat(toMeter))
	return b.String(), nil
}

func geogCS(sr *proj.SR) string {
	a := sr.A
	if math.IsNaN(a) {
		a = 6378137
	}
	rf := sr.Rf
	if math.IsNaN(rf) {
		rf = 0 // sphere
	}
	primem := 0.
	if !math.IsNaN(sr.FromGreenwich) {
		primem = sr.FromGreenwich * rad2deg
	}
	return fmt.Sprintf(
		`GEOGCS["%s",DATUM["%s",SPHEROID["%s",%s,%s]],PRIMEM["Greenwich",%s],UNIT["degree",0.0174532925199433]]`,
		geogCSName(sr), datumName(sr), spheroidName(sr),
		wktFloat(a), wktFloat(rf), wktFloat(primem))
}

func geogCSName(sr *proj.SR) string {
	switch {
	case sr.Title != "":
		return sr.Title
	case sr.DatumCode == "WGS84" || strings.EqualFold(sr.DatumCode, "wgs84"):
		return "WGS 84"
	case datumName(sr) != "unknown":
		return datumName(sr)
	default:
		return "unnamed"
	}
}

func projCSName(sr *proj.SR) string {
	if sr.Title != "" {
		return sr.Title
	}
	name := strings.ToLower(sr.Name)
	if name == "utm" && !math.IsNaN(sr.Zone) {
		hemisphere := "N"
		if sr.UTMSouth {
			hemisphere = "S"
		}
		return fmt.Sprintf("%s / UTM zone %d%s", geogCSName(sr), int(sr.Zone), hemisphere)
	}
	return fmt.Sprintf("%s / %s", geogCSName(sr), sr.Name)
}

func datumName(sr *proj.SR) string {
	switch {
	case sr.DatumName != "":
		return sr.DatumName
	case sr.DatumCode == "WGS84" || strings.EqualFold(sr.DatumCode, "wgs84"):
		return "WGS_1984"
	case sr.DatumCode != "" && sr.DatumCode != "none":
		return sr.DatumCode
	default:
		return "unknown"
	}
}

func spheroidName(sr *proj.SR) string {
	switch {
	case sr.EllipseName != "":
		return sr.EllipseName
	case sr.Ellps != "":
		return sr.Ellps
	default:
		return "unnamed"
	}
}

func unitName(sr *proj.SR) string {
	if sr.Units != "" && sr.Units != "m" {
		return sr.Units
	}
	return "metre"
}

type wktParameter struct {
	name  string
	value float64
}

// projParameters lists the WKT PARAMETER entries for a projected reference.
// Angular fields are stored in radians and converted back to degrees here.
// UTM parameters are synthesized from the zone number.
func projParameters(sr *proj.SR) []wktParameter {
	if strings.ToLower(sr.Name) == "utm" && !math.IsNaN(sr.Zone) {
		falseNorthing := 0.
		if sr.UTMSouth {
			falseNorthing = 10000000
		}
		return []wktParameter{
			{"latitude_of_origin", 0},
			{"central_meridian", 6*sr.Zone - 183},
			{"scale_factor", 0.9996},
			{"false_easting", 500000},
			{"false_northing", falseNorthing},
		}
	}
	var params []wktParameter
	add := func(name, degName string, v float64, angular bool) {
		if math.IsNaN(v) {
			return
		}
		if angular {
			v *= rad2deg
			name = degName
		}
		params = append(params, wktParameter{name, v})
	}
	add("", "standard_parallel_1", sr.Lat1, true)
	add("", "standard_parallel_2", sr.Lat2, true)
	if math.IsNaN(sr.Lat1) {
		// Mercator variants carry the latitude of true scale instead of a
		// standard parallel.
		add("", "standard_parallel_1", sr.LatTS, true)
	}
	add("", "latitude_of_origin", sr.Lat0, true)
	add("", "central_meridian", sr.Long0, true)
	add("", "longitude_of_center", sr.LongC, true)
	add("", "azimuth", sr.Alpha, true)
	add("scale_factor", "", sr.K0, false)
	add("false_easting", "", sr.X0, false)
	add("false_northing", "", sr.Y0, false)
	return params
}

func wktFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
