/*
MIT License

Copyright (c) 2025 Misael Monterroca

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in all
copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
SOFTWARE.
*/

// Package object models the PDF object graph (PDF 32000-1:2008 §7.3)
// and resolves indirect references against a file's cross-reference
// table.
package object

import "fmt"

// Object is any one of the eight PDF object types: nil (null), bool,
// int64, float64, string (a decoded literal or hex string), Name,
// Array, Dict, or Ref (an unresolved indirect reference). A *Stream
// is a Dict with an attached raw payload.
type Object interface{}

// Name is a PDF name object, e.g. /Type.
type Name string

// Ref is an indirect reference "N G R".
type Ref struct {
	Num int
	Gen int
}

func (r Ref) String() string { return fmt.Sprintf("%d %d R", r.Num, r.Gen) }

// Array is a PDF array object.
type Array []Object

// Dict is a PDF dictionary object.
type Dict map[Name]Object

// Stream is a dictionary with an attached, still-encoded payload; call
// (*File).DecodeStream to apply its Filter chain.
type Stream struct {
	Dict Dict
	Raw  []byte
}

// GetName returns d[key] as a Name, or "" if absent or of another type.
func (d Dict) GetName(key Name) Name {
	if v, ok := d[key].(Name); ok {
		return v
	}
	return ""
}

// GetInt returns d[key] as an int, or 0 if absent or of another type.
func (d Dict) GetInt(key Name) int {
	switch v := d[key].(type) {
	case int64:
		return int(v)
	case float64:
		return int(v)
	default:
		return 0
	}
}

// GetDict returns d[key] as a Dict, or nil if absent or of another type.
func (d Dict) GetDict(key Name) Dict {
	if v, ok := d[key].(Dict); ok {
		return v
	}
	return nil
}

// GetArray returns d[key] as an Array, or nil if absent or of another type.
func (d Dict) GetArray(key Name) Array {
	if v, ok := d[key].(Array); ok {
		return v
	}
	return nil
}

// GetRef returns d[key] as a Ref and whether it was one.
func (d Dict) GetRef(key Name) (Ref, bool) {
	v, ok := d[key].(Ref)
	return v, ok
}

// Filters returns the stream's /Filter chain as a Name slice, whether
// /Filter held a single Name or an Array of them, paired with the
// matching /DecodeParms dictionaries (nil entries where absent).
func (s *Stream) Filters() ([]Name, []Dict) {
	var names []Name
	switch f := s.Dict["Filter"].(type) {
	case Name:
		names = []Name{f}
	case Array:
		for _, e := range f {
			if n, ok := e.(Name); ok {
				names = append(names, n)
			}
		}
	}
	parms := make([]Dict, len(names))
	switch p := s.Dict["DecodeParms"].(type) {
	case Dict:
		if len(parms) > 0 {
			parms[0] = p
		}
	case Array:
		for i := range parms {
			if i < len(p) {
				if d, ok := p[i].(Dict); ok {
					parms[i] = d
				}
			}
		}
	}
	return names, parms
}
