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

package crsutil

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spatialmodel/crs"
)

func execute(t *testing.T, args ...string) string {
	t.Helper()
	buf := bytes.NewBuffer(nil)
	Root.SetOutput(buf)
	Root.SetArgs(args)
	if err := Root.Execute(); err != nil {
		t.Fatalf("%v: %v", args, err)
	}
	return buf.String()
}

func TestConvertCmd(t *testing.T) {
	out := execute(t, "convert", "EPSG:4326")
	if have, want := strings.TrimSpace(out), "+init=epsg:4326 +no_defs"; have != want {
		t.Errorf("have %q, want %q", have, want)
	}
}

func TestConvertCmdJSON(t *testing.T) {
	out := execute(t, "convert", "--json", "+proj=utm", "+zone=10")
	if have, want := strings.TrimSpace(out), `{"proj":"utm","zone":10}`; have != want {
		t.Errorf("have %q, want %q", have, want)
	}
	// Reset the flag so later tests are unaffected.
	Cfg.Set("json", false)
}

func TestEpsgCmd(t *testing.T) {
	out := execute(t, "epsg", "26915")
	if have, want := strings.TrimSpace(out), "+init=epsg:26915 +no_defs"; have != want {
		t.Errorf("have %q, want %q", have, want)
	}

	Root.SetArgs([]string{"epsg", "abc"})
	err := Root.Execute()
	if err == nil {
		t.Fatal("expected an error for a non-integer code")
	}
	if crs.ErrKind(err) != crs.KindInvalidEPSGCode {
		t.Errorf("have kind %v, want %v", crs.ErrKind(err), crs.KindInvalidEPSGCode)
	}
}

func TestInfoCmd(t *testing.T) {
	out := execute(t, "info", "+proj=longlat", "+datum=WGS84", "+no_defs")
	for _, want := range []string{
		"geographic: true",
		"projected: false",
		"valid: true",
		"epsg code: false",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q missing %q", out, want)
		}
	}
}

func TestWktCmd(t *testing.T) {
	out := execute(t, "wkt", "+proj=longlat", "+datum=WGS84", "+no_defs")
	if !strings.HasPrefix(strings.TrimSpace(out), `GEOGCS["WGS 84"`) {
		t.Errorf("unexpected output %q", out)
	}
}

func TestMarshalJSONOrder(t *testing.T) {
	c := crs.New()
	c.Set("zone", crs.Int(10))
	c.Set("proj", crs.String("utm"))
	out, err := marshalJSON(c)
	if err != nil {
		t.Fatal(err)
	}
	// Insertion order, not sorted order.
	if want := `{"zone":10,"proj":"utm"}`; out != want {
		t.Errorf("have %q, want %q", out, want)
	}
}
