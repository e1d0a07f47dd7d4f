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
	"reflect"
	"testing"
)

func TestParseProj4(t *testing.T) {
	tests := []struct {
		input    string
		wantKeys []string
		want     map[string]Value
	}{
		{
			input:    "+proj=longlat +ellps=WGS84 +no_defs",
			wantKeys: []string{"proj", "ellps", "no_defs"},
			want: map[string]Value{
				"proj":    String("longlat"),
				"ellps":   String("WGS84"),
				"no_defs": Bool(true),
			},
		},
		{
			input:    "+no_defs",
			wantKeys: []string{"no_defs"},
			want:     map[string]Value{"no_defs": Bool(true)},
		},
		{ // Unrecognized keys are silently dropped.
			input:    "+bogus=1 +proj=longlat",
			wantKeys: []string{"proj"},
			want:     map[string]Value{"proj": String("longlat")},
		},
		{
			input:    "+lat_0=45.5 +zone=12",
			wantKeys: []string{"lat_0", "zone"},
			want: map[string]Value{
				"lat_0": Float(45.5),
				"zone":  Int(12),
			},
		},
		{ // A repeated key overwrites the value but keeps its position.
			input:    "+proj=utm +zone=10 +zone=11",
			wantKeys: []string{"proj", "zone"},
			want: map[string]Value{
				"proj": String("utm"),
				"zone": Int(11),
			},
		},
		{
			input:    "+geoc=True +over=false +south=true",
			wantKeys: []string{"geoc", "over", "south"},
			want: map[string]Value{
				"geoc":  Bool(true),
				"over":  Bool(false),
				"south": Bool(true),
			},
		},
		{ // Leading and trailing space and extra separators are tolerated.
			input:    "  +proj=merc   +lat_ts=0  ",
			wantKeys: []string{"proj", "lat_ts"},
			want: map[string]Value{
				"proj":   String("merc"),
				"lat_ts": Int(0),
			},
		},
	}
	for _, test := range tests {
		c, err := Parse(test.input)
		if err != nil {
			t.Errorf("Parse(%q): %v", test.input, err)
			continue
		}
		if !reflect.DeepEqual(c.Keys(), test.wantKeys) {
			t.Errorf("Parse(%q) keys: have %v, want %v", test.input, c.Keys(), test.wantKeys)
		}
		if !reflect.DeepEqual(c.Map(), test.want) {
			t.Errorf("Parse(%q): have %#v, want %#v", test.input, c.Map(), test.want)
		}
	}
}

func TestParseEPSG(t *testing.T) {
	want := map[string]Value{
		"init":    String("epsg:4326"),
		"no_defs": Bool(true),
	}
	for _, input := range []string{"EPSG:4326", "epsg:4326", " Epsg:4326 "} {
		c, err := Parse(input)
		if err != nil {
			t.Fatalf("Parse(%q): %v", input, err)
		}
		if !reflect.DeepEqual(c.Map(), want) {
			t.Errorf("Parse(%q): have %#v, want %#v", input, c.Map(), want)
		}
	}

	c, err := FromEPSG(4326)
	if err != nil {
		t.Fatalf("FromEPSG(4326): %v", err)
	}
	if !reflect.DeepEqual(c.Map(), want) {
		t.Errorf("FromEPSG(4326): have %#v, want %#v", c.Map(), want)
	}
}

func TestParseJSON(t *testing.T) {
	// JSON input is returned verbatim: keys are not filtered against the
	// recognized parameter names, unlike PROJ.4 string input.
	input := `{"proj": "longlat", "ellps": "WGS84", "bogus": 1}`
	c, err := Parse(input)
	if err != nil {
		t.Fatalf("Parse(%q): %v", input, err)
	}
	wantKeys := []string{"proj", "ellps", "bogus"}
	if !reflect.DeepEqual(c.Keys(), wantKeys) {
		t.Errorf("keys: have %v, want %v", c.Keys(), wantKeys)
	}
	want := map[string]Value{
		"proj":  String("longlat"),
		"ellps": String("WGS84"),
		"bogus": Int(1),
	}
	if !reflect.DeepEqual(c.Map(), want) {
		t.Errorf("have %#v, want %#v", c.Map(), want)
	}
}

func TestParseJSONNumbers(t *testing.T) {
	c, err := Parse(`{"zone": 12, "lat_0": 45.5, "k_0": 1.0}`)
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]Value{
		"zone":  Int(12),
		"lat_0": Float(45.5),
		"k_0":   Float(1),
	}
	if !reflect.DeepEqual(c.Map(), want) {
		t.Errorf("have %#v, want %#v", c.Map(), want)
	}
}

func TestParseJSONNested(t *testing.T) {
	c, err := Parse(`{"proj": "utm", "options": {"resolutions": [2048, 0.25]}, "origin": null}`)
	if err != nil {
		t.Fatal(err)
	}
	v, ok := c.Get("options")
	if !ok {
		t.Fatal("options key missing")
	}
	wantOptions := Any{V: map[string]interface{}{
		"resolutions": []interface{}{int64(2048), 0.25},
	}}
	if !reflect.DeepEqual(v, wantOptions) {
		t.Errorf("options: have %#v, want %#v", v, wantOptions)
	}
	if v, ok := c.Get("origin"); !ok || !reflect.DeepEqual(v, Any{}) {
		t.Errorf("origin: have %#v, want %#v", v, Any{})
	}
	// Values with no scalar form are excluded from the PROJ.4 encoding.
	if have, want := c.String(), "+proj=utm"; have != want {
		t.Errorf("String(): have %q, want %q", have, want)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		input string
		kind  Kind
	}{
		{"", KindEmptyOrInvalid},
		{"   ", KindEmptyOrInvalid},
		{"+bogus=1", KindEmptyOrInvalid},
		{"EPSG:-5", KindInvalidEPSGCode},
		{"EPSG:0", KindInvalidEPSGCode},
		{"EPSG:abc", KindInvalidEPSGCode},
		{"{not json", KindInvalidJSON},
		{`["{"]`, KindInvalidJSON},
		{`{"a": 1} trailing`, KindInvalidJSON},
		{"{}", KindEmptyInput},
	}
	for _, test := range tests {
		_, err := Parse(test.input)
		if err == nil {
			t.Errorf("Parse(%q): expected error", test.input)
			continue
		}
		if have := ErrKind(err); have != test.kind {
			t.Errorf("Parse(%q): have kind %v, want %v", test.input, have, test.kind)
		}
	}

	if _, err := FromEPSG(-5); ErrKind(err) != KindInvalidEPSGCode {
		t.Errorf("FromEPSG(-5): have %v, want %v", ErrKind(err), KindInvalidEPSGCode)
	}
}
