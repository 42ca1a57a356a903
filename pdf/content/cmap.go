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

package content

import (
	"unicode/utf16"

	"github.com/wordengine/docflow/pdf/lexer"
)

// parseToUnicodeCMap extracts the code-to-Unicode mapping from a
// decoded /ToUnicode stream: the bfchar and bfrange sections of a CMap
// (PDF 32000-1:2008 §9.10.3). Everything else in the CMap program
// (codespace ranges, usecmap, CID operators) is skipped; only the
// Unicode mapping matters for text extraction.
func parseToUnicodeCMap(data []byte) map[uint32]string {
	out := map[uint32]string{}
	lx := lexer.New(data)

	// The CMap grammar is postscript-shaped, so operands (such as the
	// entry count) come before each begin* keyword; they are skipped.
	for {
		tok := lx.Next()
		switch {
		case tok.Type == lexer.TokenEOF:
			return out
		case tok.Type == lexer.TokenKeyword && tok.Value == "beginbfchar":
			parseBfChars(lx, out)
		case tok.Type == lexer.TokenKeyword && tok.Value == "beginbfrange":
			parseBfRanges(lx, out)
		}
	}
}

func parseBfChars(lx *lexer.Lexer, out map[uint32]string) {
	for {
		src := lx.Next()
		if src.Type != lexer.TokenHexString {
			return // endbfchar or malformed
		}
		dst := lx.Next()
		if dst.Type != lexer.TokenHexString {
			return
		}
		out[bytesToCode([]byte(src.Value))] = utf16BEString([]byte(dst.Value))
	}
}

func parseBfRanges(lx *lexer.Lexer, out map[uint32]string) {
	for {
		lo := lx.Next()
		if lo.Type != lexer.TokenHexString {
			return // endbfrange or malformed
		}
		hi := lx.Next()
		if hi.Type != lexer.TokenHexString {
			return
		}
		loCode := bytesToCode([]byte(lo.Value))
		hiCode := bytesToCode([]byte(hi.Value))
		if hiCode < loCode || hiCode-loCode > 1<<16 {
			return
		}

		next := lx.Next()
		switch next.Type {
		case lexer.TokenHexString:
			// Contiguous range: destination increments with the code.
			base := []byte(next.Value)
			for c := loCode; c <= hiCode; c++ {
				dst := make([]byte, len(base))
				copy(dst, base)
				addToBE(dst, c-loCode)
				out[c] = utf16BEString(dst)
			}
		case lexer.TokenArrayStart:
			// Enumerated range: one destination string per code.
			c := loCode
			for {
				el := lx.Next()
				if el.Type != lexer.TokenHexString {
					break // ]
				}
				if c <= hiCode {
					out[c] = utf16BEString([]byte(el.Value))
				}
				c++
			}
		default:
			return
		}
	}
}

func bytesToCode(b []byte) uint32 {
	var v uint32
	for _, c := range b {
		v = v<<8 | uint32(c)
	}
	return v
}

// addToBE adds delta to a big-endian byte string in place.
func addToBE(b []byte, delta uint32) {
	carry := uint32(delta)
	for i := len(b) - 1; i >= 0 && carry > 0; i-- {
		sum := uint32(b[i]) + carry
		b[i] = byte(sum)
		carry = sum >> 8
	}
}

func utf16BEString(b []byte) string {
	units := make([]uint16, 0, len(b)/2)
	for i := 0; i+1 < len(b); i += 2 {
		units = append(units, uint16(b[i])<<8|uint16(b[i+1]))
	}
	return string(utf16.Decode(units))
}
