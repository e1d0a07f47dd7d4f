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

// Package geodesy answers spatial-reference queries about CRS mappings
// using the github.com/ctessum/geom/proj library. It implements the
// crs.Geodesy interface.
package geodesy

import (
	"fmt"
	"strings"

	"github.com/ctessum/geom/proj"

	"github.com/spatialmodel/crs"
)

// Proj constructs spatial reference handles backed by
// github.com/ctessum/geom/proj.
type Proj struct {
	// ULP is the tolerance used when comparing two spatial references for
	// equality, in floating-point units in the last place.
	ULP uint
}

// New creates a Proj with the default comparison tolerance.
func New() *Proj {
	return &Proj{ULP: 2}
}

// SpatialRef parses a PROJ.4 definition into a spatial reference handle.
// Definitions containing an "+init=epsg:n" parameter are first resolved
// against a built-in table of common EPSG codes.
func (p *Proj) SpatialRef(def string) (crs.SpatialRef, error) {
	resolved, err := resolveInit(def)
	if err != nil {
		return nil, err
	}
	sr, err := proj.Parse(resolved)
	if err != nil {
		return nil, err
	}
	return &spatialRef{sr: sr, ulp: p.ULP}, nil
}

type spatialRef struct {
	sr     *proj.SR
	ulp    uint
	closed bool
}

func (r *spatialRef) Geographic() bool {
	name := strings.ToLower(r.sr.Name)
	return name == "longlat" || name == "identity"
}

func (r *spatialRef) Projected() bool {
	if r.Geographic() {
		return false
	}
	_, _, err := r.sr.Transformers()
	return err == nil
}

func (r *spatialRef) Same(ref crs.SpatialRef) bool {
	o, ok := ref.(*spatialRef)
	if !ok {
		return false
	}
	return r.sr.Equal(o.sr, r.ulp)
}

func (r *spatialRef) WKT() (string, error) {
	return marshalWKT(r.sr)
}

func (r *spatialRef) Close() error {
	if r.closed {
		return fmt.Errorf("geodesy: spatial reference closed twice")
	}
	r.closed = true
	return nil
}
