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

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/wordengine/docflow/pdf/lexer"
)

// XrefEntryType distinguishes a free-list entry, an in-use direct
// object, and an object stored inside an object stream.
type XrefEntryType byte

const (
	XrefFree XrefEntryType = 'f'
	XrefInUse XrefEntryType = 'n'
	XrefCompressed XrefEntryType = 'c'
)

// XrefEntry locates one object: either by byte Offset (direct), or by
// the StreamNum/StreamIndex of the object stream that contains it.
type XrefEntry struct {
	Type        XrefEntryType
	Offset      int64
	Gen         int
	StreamNum   int
	StreamIndex int
}

// XrefTable maps object number to its XrefEntry.
type XrefTable map[int]XrefEntry

// ErrInvalidHeader is returned when the source does not begin with a
// recognizable "%PDF-M.N" header.
var ErrInvalidHeader = fmt.Errorf("object: invalid header")

// Header validates and returns the PDF version string ("M.N") from the
// first bytes of src.
func Header(src []byte) (string, error) {
	if len(src) < 8 || !bytes.HasPrefix(src, []byte("%PDF-")) {
		return "", ErrInvalidHeader
	}
	end := bytes.IndexAny(src[5:20], "\r\n ")
	if end < 0 {
		end = len(src[5:20])
	}
	version := string(src[5 : 5+end])
	if !strings.Contains(version, ".") {
		return "", ErrInvalidHeader
	}
	return version, nil
}

// ParseCrossReference locates "startxref" from the tail of src,
// follows the chain of xref sections (traditional tables and/or xref
// streams, including /Prev links) and merges them into one table plus
// the effective trailer dictionary.
func ParseCrossReference(src []byte) (XrefTable, Dict, error) {
	offset, err := findStartxref(src)
	if err != nil {
		return nil, nil, err
	}

	table := XrefTable{}
	trailer := Dict{}
	seen := map[int64]bool{}

	for offset >= 0 && offset < int64(len(src)) && !seen[offset] {
		seen[offset] = true
		sectionTable, sectionTrailer, prev, err := parseXrefSection(src, int(offset))
		if err != nil {
			return nil, nil, err
		}
		for num, entry := range sectionTable {
			if _, exists := table[num]; !exists {
				table[num] = entry
			}
		}
		for k, v := range sectionTrailer {
			if _, exists := trailer[k]; !exists {
				trailer[k] = v
			}
		}
		offset = prev
	}

	return table, trailer, nil
}

func findStartxref(src []byte) (int64, error) {
	idx := bytes.LastIndex(src, []byte(lexer.KeywordStartxref))
	if idx < 0 {
		return 0, fmt.Errorf("object: %s not found", lexer.KeywordStartxref)
	}
	p := NewParser(src, idx+len(lexer.KeywordStartxref))
	tok := p.next()
	if tok.Type != lexer.TokenInteger {
		return 0, fmt.Errorf("object: malformed startxref offset")
	}
	n, err := strconv.ParseInt(tok.Value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("object: malformed startxref offset: %w", err)
	}
	return n, nil
}

// parseXrefSection parses one xref section (table or stream) at
// offset and returns its entries, its trailer fragment, and the
// byte offset of the /Prev section (-1 if none).
func parseXrefSection(src []byte, offset int) (XrefTable, Dict, int64, error) {
	l := lexer.New(src)
	l.Seek(offset)
	save := l.Pos()
	tok := l.Next()
	if tok.Type == lexer.TokenKeyword && tok.Value == lexer.KeywordXref {
		return parseXrefTable(src, l)
	}
	l.Seek(save)
	return parseXrefStream(src, offset)
}

func parseXrefTable(src []byte, l *lexer.Lexer) (XrefTable, Dict, int64, error) {
	table := XrefTable{}
	for {
		save := l.Pos()
		first := l.Next()
		if first.Type != lexer.TokenInteger {
			l.Seek(save)
			break
		}
		count := l.Next()
		if count.Type != lexer.TokenInteger {
			return nil, nil, 0, fmt.Errorf("object: malformed xref subsection header")
		}
		firstNum, _ := strconv.Atoi(first.Value)
		n, _ := strconv.Atoi(count.Value)
		for i := 0; i < n; i++ {
			entry, err := readXrefTableLine(l)
			if err != nil {
				return nil, nil, 0, err
			}
			table[firstNum+i] = entry
		}
	}

	trailerTok := l.Next()
	if trailerTok.Type != lexer.TokenKeyword || trailerTok.Value != lexer.KeywordTrailer {
		return nil, nil, 0, fmt.Errorf("object: expected trailer after xref table")
	}
	p := NewParser(src, l.Pos())
	obj, err := p.ParseObject()
	if err != nil {
		return nil, nil, 0, err
	}
	dict, _ := obj.(Dict)

	prev := int64(-1)
	if v, ok := dict["Prev"].(int64); ok {
		prev = v
	}
	return table, dict, prev, nil
}

// readXrefTableLine reads one fixed 20-byte-ish "offset gen n|f" entry.
// PDF mandates exactly 20 bytes per entry, but this tolerates the
// token-based whitespace variance seen in the wild.
func readXrefTableLine(l *lexer.Lexer) (XrefEntry, error) {
	offTok := l.Next()
	genTok := l.Next()
	typeTok := l.Next()
	if offTok.Type != lexer.TokenInteger || genTok.Type != lexer.TokenInteger || typeTok.Type != lexer.TokenKeyword {
		return XrefEntry{}, fmt.Errorf("object: malformed xref entry")
	}
	off, _ := strconv.ParseInt(offTok.Value, 10, 64)
	gen, _ := strconv.Atoi(genTok.Value)
	typ := XrefFree
	if typeTok.Value == "n" {
		typ = XrefInUse
	}
	return XrefEntry{Type: typ, Offset: off, Gen: gen}, nil
}

// parseXrefStream parses a cross-reference stream object (PDF
// 32000-1:2008 §7.5.8): /W gives per-field byte widths, /Index
// enumerates the (start,count) object-number ranges it covers, and the
// decoded stream payload packs fixed-width binary records.
func parseXrefStream(src []byte, offset int) (XrefTable, Dict, int64, error) {
	p := NewParser(src, offset)
	_, _, obj, err := p.ParseIndirectObject()
	if err != nil {
		return nil, nil, 0, err
	}
	stream, ok := obj.(*Stream)
	if !ok {
		return nil, nil, 0, fmt.Errorf("object: xref stream is not a stream object")
	}

	decoded, err := DecodeStream(stream)
	if err != nil {
		return nil, nil, 0, err
	}

	widths := stream.Dict.GetArray("W")
	if len(widths) != 3 {
		return nil, nil, 0, fmt.Errorf("object: xref stream missing /W")
	}
	w := [3]int{asInt(widths[0]), asInt(widths[1]), asInt(widths[2])}
	recordLen := w[0] + w[1] + w[2]

	size := stream.Dict.GetInt("Size")
	index := stream.Dict.GetArray("Index")
	if len(index) == 0 {
		index = Array{int64(0), int64(size)}
	}

	table := XrefTable{}
	pos := 0
	for i := 0; i+1 < len(index); i += 2 {
		startNum := asInt(index[i])
		count := asInt(index[i+1])
		for j := 0; j < count && pos+recordLen <= len(decoded); j++ {
			rec := decoded[pos : pos+recordLen]
			pos += recordLen
			f0 := beUint(rec[:w[0]])
			f1 := beUint(rec[w[0] : w[0]+w[1]])
			f2 := beUint(rec[w[0]+w[1] : recordLen])
			num := startNum + j
			switch f0 {
			case 0:
				table[num] = XrefEntry{Type: XrefFree}
			case 1:
				table[num] = XrefEntry{Type: XrefInUse, Offset: int64(f1), Gen: int(f2)}
			case 2:
				table[num] = XrefEntry{Type: XrefCompressed, StreamNum: int(f1), StreamIndex: int(f2)}
			}
		}
	}

	prev := int64(-1)
	if v, ok := stream.Dict["Prev"].(int64); ok {
		prev = v
	}
	return table, stream.Dict, prev, nil
}

func asInt(o Object) int {
	switch v := o.(type) {
	case int64:
		return int(v)
	case float64:
		return int(v)
	default:
		return 0
	}
}

func beUint(b []byte) uint64 {
	var v uint64
	for _, c := range b {
		v = v<<8 | uint64(c)
	}
	return v
}
