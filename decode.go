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
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Parse converts a coordinate reference system description into a CRS.
// Three input forms are accepted, tried in this order:
//
//   - A JSON document (detected by the presence of '{'). The decoded object
//     is returned verbatim: keys are NOT filtered against the recognized
//     parameter names. JSON input is trusted as already structured.
//   - An "EPSG:n" shorthand code (case-insensitive prefix).
//   - A PROJ.4 string of "+key=value" and "+flag" tokens. Keys that are not
//     recognized PROJ.4 parameter names are silently dropped.
func Parse(input string) (*CRS, error) {
	s := strings.TrimSpace(input)
	if strings.Contains(s, "{") {
		return parseJSON(s, input)
	}
	if len(s) >= 5 && strings.EqualFold(s[:5], "EPSG:") {
		return parseEPSG(strings.SplitN(s, ":", 2)[1], input)
	}
	return parseProj4(s, input)
}

// FromEPSG creates a CRS referring to the given EPSG code. The code must be
// positive; it is not checked against any registry. The result holds
// "init: epsg:<code>" and "no_defs: true".
func FromEPSG(code int) (*CRS, error) {
	if code <= 0 {
		return nil, &Error{Kind: KindInvalidEPSGCode, Input: strconv.Itoa(code)}
	}
	c := New()
	c.Set("init", String(fmt.Sprintf("epsg:%d", code)))
	c.Set("no_defs", Bool(true))
	return c, nil
}

func parseEPSG(code, input string) (*CRS, error) {
	n, err := strconv.Atoi(strings.TrimSpace(code))
	if err != nil || n <= 0 {
		return nil, &Error{Kind: KindInvalidEPSGCode, Input: input, Err: err}
	}
	return FromEPSG(n)
}

func parseProj4(s, input string) (*CRS, error) {
	c := New()
	for _, tok := range strings.Fields(s) {
		tok = strings.TrimPrefix(tok, "+")
		var key string
		var val Value
		if i := strings.Index(tok, "="); i >= 0 {
			key = tok[:i]
			val = typeScalar(tok[i+1:])
		} else {
			key = tok
			val = Bool(true) // bare flag, e.g. "+no_defs"
		}
		if !KnownParam(key) {
			continue
		}
		c.Set(key, val)
	}
	if c.Len() == 0 {
		return nil, &Error{Kind: KindEmptyOrInvalid, Input: input}
	}
	return c, nil
}

// typeScalar converts the raw value substring of a PROJ.4 token into a
// typed value: boolean literal, then exact base-10 integer, then float,
// then unmodified text.
func typeScalar(raw string) Value {
	switch raw {
	case "true", "True":
		return Bool(true)
	case "false", "False":
		return Bool(false)
	}
	if i, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return Int(i)
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		return Float(f)
	}
	return String(raw)
}

func parseJSON(s, input string) (*CRS, error) {
	dec := json.NewDecoder(strings.NewReader(s))
	dec.UseNumber()
	tok, err := dec.Token()
	if err != nil {
		return nil, &Error{Kind: KindInvalidJSON, Input: input, Err: err}
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, &Error{Kind: KindInvalidJSON, Input: input,
			Err: fmt.Errorf("top-level JSON value is not an object")}
	}
	c, err := decodeJSONObject(dec)
	if err != nil {
		return nil, &Error{Kind: KindInvalidJSON, Input: input, Err: err}
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, &Error{Kind: KindInvalidJSON, Input: input,
			Err: fmt.Errorf("trailing content after JSON object")}
	}
	if c.Len() == 0 {
		return nil, &Error{Kind: KindEmptyInput, Input: input}
	}
	return c, nil
}

// decodeJSONObject decodes the body of a JSON object, preserving key order.
// The opening '{' has already been consumed. A repeated key overwrites the
// earlier value without changing its position.
func decodeJSONObject(dec *json.Decoder) (*CRS, error) {
	c := New()
	for dec.More() {
		kTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := kTok.(string)
		if !ok {
			return nil, fmt.Errorf("JSON object key is not a string")
		}
		val, err := decodeJSONValue(dec)
		if err != nil {
			return nil, err
		}
		c.Set(key, val)
	}
	if _, err := dec.Token(); err != nil { // consume closing '}'
		return nil, err
	}
	return c, nil
}

func decodeJSONValue(dec *json.Decoder) (Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	switch v := tok.(type) {
	case json.Delim:
		raw, err := decodeJSONTree(dec, v)
		if err != nil {
			return nil, err
		}
		return Any{V: raw}, nil
	case string:
		return String(v), nil
	case bool:
		return Bool(v), nil
	case json.Number:
		if i, err := v.Int64(); err == nil {
			return Int(i), nil
		}
		f, err := v.Float64()
		if err != nil {
			return nil, err
		}
		return Float(f), nil
	case nil:
		return Any{}, nil
	default:
		return nil, fmt.Errorf("unexpected JSON token %v", tok)
	}
}

// decodeJSONTree decodes a nested container into plain Go values. Nested
// structure has no PROJ.4 scalar form, so ordering inside it is
// not significant.
func decodeJSONTree(dec *json.Decoder, open json.Delim) (interface{}, error) {
	switch open {
	case '{':
		m := make(map[string]interface{})
		for dec.More() {
			kTok, err := dec.Token()
			if err != nil {
				return nil, err
			}
			key, ok := kTok.(string)
			if !ok {
				return nil, fmt.Errorf("JSON object key is not a string")
			}
			v, err := decodeJSONRaw(dec)
			if err != nil {
				return nil, err
			}
			m[key] = v
		}
		if _, err := dec.Token(); err != nil {
			return nil, err
		}
		return m, nil
	case '[':
		var a []interface{}
		for dec.More() {
			v, err := decodeJSONRaw(dec)
			if err != nil {
				return nil, err
			}
			a = append(a, v)
		}
		if _, err := dec.Token(); err != nil {
			return nil, err
		}
		return a, nil
	default:
		return nil, fmt.Errorf("unexpected JSON delimiter %v", open)
	}
}

func decodeJSONRaw(dec *json.Decoder) (interface{}, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	switch v := tok.(type) {
	case json.Delim:
		return decodeJSONTree(dec, v)
	case json.Number:
		if i, err := v.Int64(); err == nil {
			return i, nil
		}
		return v.Float64()
	default:
		return tok, nil
	}
}
