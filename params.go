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
	"strings"
	"sync"
)

// paramData lists the PROJ.4 general parameters, taken from the PROJ
// parameter documentation. The first whitespace-delimited token of each
// non-blank line is the parameter name.
const paramData = `
+a         Semimajor radius of the ellipsoid axis
+alpha     Used with Oblique Mercator and possibly a few others
+axis      Axis orientation
+b         Semiminor radius of the ellipsoid axis
+datum     Datum name
+ellps     Ellipsoid name
+gamma     Azimuth of centerline clockwise from north of the rectified bearing of centre line
+geoc      Treat latitudes as geocentric
+guam      Use Guam elliptical formulas (Azimuthal Equidistant only)
+h         Height of perspective point
+init      Initialize parameters from a named coordinate reference system
+k         Scaling factor (old name)
+k_0       Scaling factor (new name)
+lat_0     Latitude of origin
+lat_1     Latitude of first standard parallel
+lat_2     Latitude of second standard parallel
+lat_b     Angular distance from tangency point of the plane
+lat_ts    Latitude of true scale
+lon_0     Central meridian
+lon_1     Longitude of first control point
+lon_2     Longitude of second control point
+lon_wrap  Center longitude to use for wrapping
+lonc      Longitude used with Oblique Mercator and possibly a few others
+lsat      Landsat satellite number for the lsat projection
+m         General scaling factor applied to the projection
+nadgrids  Filename of NTv2 grid file to use for datum transforms
+no_defs   Don't use the proj_def.dat defaults file
+no_off    Do not offset origin to center of projection
+no_rot    Do not rotate axis to coincide with the central line
+no_uoff   Alias of no_off
+ns        Use non-skewed cartesian coordinates
+o_alpha   Angle of rotated pole
+o_lat_1   Latitude of first point defining the oblique central line
+o_lat_2   Latitude of second point defining the oblique central line
+o_lat_c   Latitude of the central point of the oblique projection
+o_lat_p   Latitude of the north pole of the unrotated source CRS
+o_lon_1   Longitude of first point defining the oblique central line
+o_lon_2   Longitude of second point defining the oblique central line
+o_lon_c   Longitude of the central point of the oblique projection
+o_lon_p   Longitude of the north pole of the unrotated source CRS
+o_proj    Oblique projection name
+over      Allow longitude output outside -180 to 180 range, disables wrapping
+path      Selects path for the lsat projection
+pm        Alternate prime meridian (typically a city name)
+proj      Projection name
+R         Radius of the sphere
+R_A       Use a sphere with the same surface area as the ellipsoid
+R_a       Use a sphere with the mean of the major and minor axis radii
+R_g       Use a sphere with the geometric mean of the axis radii
+R_h       Use a sphere with the harmonic mean of the axis radii
+R_lat_a   Use a sphere with the arithmetic mean of the principle radii at the given latitude
+R_lat_g   Use a sphere with the geometric mean of the principle radii at the given latitude
+R_V       Use a sphere with the same volume as the ellipsoid
+rf        Reciprocal of the ellipsoid flattening term
+south     Denotes southern hemisphere UTM zone
+sweep     Sweep angle axis of the viewing instrument for the geos projection
+title     Title to describe the coordinate reference system
+to_meter  Multiplier to convert map units to 1.0m
+towgs84   3 or 7 term datum transform parameters
+units     meters, US survey feet, etc.
+vto_meter Vertical plane coordinate scaling
+vunits    Vertical plane coordinate units
+wktext    Marker to encode the entire CRS definition in WKT
+x_0       False easting
+y_0       False northing
+zone      UTM zone
`

var (
	paramOnce sync.Once
	paramSet  map[string]struct{}
)

// paramKeys returns the set of recognized PROJ.4 parameter names. It is
// built once and never mutated afterwards, so it is safe for concurrent use.
func paramKeys() map[string]struct{} {
	paramOnce.Do(func() {
		paramSet = make(map[string]struct{})
		for _, line := range strings.Split(paramData, "\n") {
			fields := strings.Fields(line)
			if len(fields) == 0 {
				continue
			}
			name := strings.TrimSpace(strings.TrimPrefix(fields[0], "+"))
			paramSet[name] = struct{}{}
		}
		paramSet["no_mayo"] = struct{}{}
	})
	return paramSet
}

// KnownParam reports whether name is a recognized PROJ.4 parameter name.
// Matching is case-sensitive.
func KnownParam(name string) bool {
	_, ok := paramKeys()[name]
	return ok
}
