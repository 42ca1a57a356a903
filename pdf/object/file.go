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

package object

import "fmt"

// Decryptor is implemented by pdf/encrypt's security handler. File
// calls it to decrypt strings and streams belonging to a given object
// as they are resolved, if the file's trailer carries /Encrypt.
type Decryptor interface {
	DecryptString(num, gen int, s string) (string, error)
	DecryptStream(num, gen int, raw []byte) ([]byte, error)
}

// File is an opened PDF: its raw bytes, cross-reference table and
// trailer, plus a resolution cache so repeated dereferences of the
// same object are cheap.
type File struct {
	src       []byte
	xref      XrefTable
	Trailer   Dict
	decryptor Decryptor
	cache     map[int]Object
	objStmCache map[int][]Object
}

// Open parses the header, cross-reference chain and trailer of src.
func Open(src []byte) (*File, error) {
	if _, err := Header(src); err != nil {
		return nil, err
	}
	xref, trailer, err := ParseCrossReference(src)
	if err != nil {
		return nil, err
	}
	return &File{
		src:         src,
		xref:        xref,
		Trailer:     trailer,
		cache:       map[int]Object{},
		objStmCache: map[int][]Object{},
	}, nil
}

// SetDecryptor installs the security handler used to decrypt strings
// and streams as they are resolved. Call this before Resolve when
// Trailer["Encrypt"] is present.
func (f *File) SetDecryptor(d Decryptor) { f.decryptor = d }

// Root resolves the document's /Root catalog dictionary.
func (f *File) Root() (Dict, error) {
	ref, ok := f.Trailer.GetRef("Root")
	if !ok {
		return nil, fmt.Errorf("object: trailer has no /Root")
	}
	obj, err := f.Resolve(ref)
	if err != nil {
		return nil, err
	}
	d, ok := obj.(Dict)
	if !ok {
		return nil, fmt.Errorf("object: /Root is not a dictionary")
	}
	return d, nil
}

// Resolve dereferences ref, decrypting strings/streams it directly
// contains if a Decryptor is installed, and following nested Refs in
// Resolved if the caller used ResolveDeep. Resolve itself is shallow:
// it returns the object stored at ref without recursing into the
// values of a Dict or Array.
func (f *File) Resolve(ref Ref) (Object, error) {
	if cached, ok := f.cache[ref.Num]; ok {
		return cached, nil
	}
	entry, ok := f.xref[ref.Num]
	if !ok {
		return nil, fmt.Errorf("object: no xref entry for object %d", ref.Num)
	}

	var obj Object
	var err error
	switch entry.Type {
	case XrefInUse:
		obj, err = f.resolveDirect(ref.Num, entry)
	case XrefCompressed:
		obj, err = f.resolveCompressed(entry)
	default:
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	obj = f.decryptInPlace(ref.Num, entry.Gen, obj)
	f.cache[ref.Num] = obj
	return obj, nil
}

func (f *File) resolveDirect(num int, entry XrefEntry) (Object, error) {
	p := NewParser(f.src, int(entry.Offset))
	n, _, obj, err := p.ParseIndirectObject()
	if err != nil {
		return nil, err
	}
	if n != num {
		return nil, fmt.Errorf("object: xref offset for %d points at object %d", num, n)
	}
	return obj, nil
}

func (f *File) resolveCompressed(entry XrefEntry) (Object, error) {
	objs, err := f.objectsInStream(entry.StreamNum)
	if err != nil {
		return nil, err
	}
	if entry.StreamIndex < 0 || entry.StreamIndex >= len(objs) {
		return nil, fmt.Errorf("object: object stream %d has no member %d", entry.StreamNum, entry.StreamIndex)
	}
	return objs[entry.StreamIndex], nil
}

// objectsInStream decodes an object stream (PDF 32000-1:2008 §7.5.7):
// /N objects packed back to back after a header of N (objNum, offset)
// integer pairs, the data starting at /First.
func (f *File) objectsInStream(streamNum int) ([]Object, error) {
	if cached, ok := f.objStmCache[streamNum]; ok {
		return cached, nil
	}
	streamObj, err := f.Resolve(Ref{Num: streamNum})
	if err != nil {
		return nil, err
	}
	stream, ok := streamObj.(*Stream)
	if !ok {
		return nil, fmt.Errorf("object: object %d is not an object stream", streamNum)
	}
	decoded, err := DecodeStream(stream)
	if err != nil {
		return nil, err
	}

	n := stream.Dict.GetInt("N")
	first := stream.Dict.GetInt("First")

	headerParser := NewParser(decoded, 0)
	offsets := make([]int, n)
	for i := 0; i < n; i++ {
		headerParser.next() // object number, unused: index order matches decode order
		offTok := headerParser.next()
		off, _ := parseIntToken(offTok.Value)
		offsets[i] = off
	}

	objs := make([]Object, n)
	for i := 0; i < n; i++ {
		bodyParser := NewParser(decoded, first+offsets[i])
		obj, err := bodyParser.ParseObject()
		if err != nil {
			return nil, fmt.Errorf("object: object stream %d member %d: %w", streamNum, i, err)
		}
		objs[i] = obj
	}
	f.objStmCache[streamNum] = objs
	return objs, nil
}

func parseIntToken(s string) (int, error) {
	v := 0
	neg := false
	for i, c := range s {
		if i == 0 && c == '-' {
			neg = true
			continue
		}
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("object: bad integer %q", s)
		}
		v = v*10 + int(c-'0')
	}
	if neg {
		v = -v
	}
	return v, nil
}

func (f *File) decryptInPlace(num, gen int, obj Object) Object {
	if f.decryptor == nil {
		return obj
	}
	switch v := obj.(type) {
	case string:
		if s, err := f.decryptor.DecryptString(num, gen, v); err == nil {
			return s
		}
		return v
	case *Stream:
		if raw, err := f.decryptor.DecryptStream(num, gen, v.Raw); err == nil {
			v.Raw = raw
		}
		return v
	case Array:
		out := make(Array, len(v))
		for i, e := range v {
			out[i] = f.decryptInPlace(num, gen, e)
		}
		return out
	case Dict:
		out := make(Dict, len(v))
		for k, e := range v {
			out[k] = f.decryptInPlace(num, gen, e)
		}
		return out
	default:
		return obj
	}
}

// DecodeStream resolves ref, which must be a Stream, and returns its
// filter-decoded payload.
func (f *File) DecodeStream(ref Ref) ([]byte, error) {
	obj, err := f.Resolve(ref)
	if err != nil {
		return nil, err
	}
	stream, ok := obj.(*Stream)
	if !ok {
		return nil, fmt.Errorf("object: object %d is not a stream", ref.Num)
	}
	return DecodeStream(stream)
}
