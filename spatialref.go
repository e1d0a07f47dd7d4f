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

// A SpatialRef is an opaque handle to a spatial reference inside an
// external geodesy library. A handle is only valid for the duration of the
// operation that created it and must be closed exactly once.
type SpatialRef interface {
	// Geographic reports whether the reference is an unprojected
	// longitude-latitude system.
	Geographic() bool
	// Projected reports whether the reference is a projected
	// coordinate system.
	Projected() bool
	// Same reports whether ref describes the same reference system
	// as the receiver.
	Same(ref SpatialRef) bool
	// WKT exports the reference in Well-Known Text form.
	WKT() (string, error)
	// Close releases the handle.
	Close() error
}

// A Geodesy constructs SpatialRef handles from PROJ.4 definitions. The
// geodesy subpackage provides an implementation.
type Geodesy interface {
	SpatialRef(def string) (SpatialRef, error)
}

// IsGeographic reports whether the CRS describes an unprojected
// longitude-latitude system. The spatial reference handle is created and
// released within this call.
func (c *CRS) IsGeographic(g Geodesy) (bool, error) {
	ref, err := g.SpatialRef(c.String())
	if err != nil {
		return false, err
	}
	defer ref.Close()
	return ref.Geographic(), nil
}

// IsProjected reports whether the CRS describes a projected
// coordinate system.
func (c *CRS) IsProjected(g Geodesy) (bool, error) {
	ref, err := g.SpatialRef(c.String())
	if err != nil {
		return false, err
	}
	defer ref.Close()
	return ref.Projected(), nil
}

// IsValid reports whether the CRS describes either a geographic or a
// projected coordinate system.
func (c *CRS) IsValid(g Geodesy) (bool, error) {
	ref, err := g.SpatialRef(c.String())
	if err != nil {
		return false, err
	}
	defer ref.Close()
	return ref.Geographic() || ref.Projected(), nil
}

// Equal reports whether c and o describe the same reference system.
func (c *CRS) Equal(o *CRS, g Geodesy) (bool, error) {
	ref, err := g.SpatialRef(c.String())
	if err != nil {
		return false, err
	}
	defer ref.Close()
	oRef, err := g.SpatialRef(o.String())
	if err != nil {
		return false, err
	}
	defer oRef.Close()
	return ref.Same(oRef), nil
}

// WKT exports the CRS in Well-Known Text form.
func (c *CRS) WKT(g Geodesy) (string, error) {
	ref, err := g.SpatialRef(c.String())
	if err != nil {
		return "", err
	}
	defer ref.Close()
	return ref.WKT()
}
