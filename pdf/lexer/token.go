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

// Package lexer tokenizes the raw bytes of a PDF file (or one of its
// content streams) into the lexical units defined by PDF 32000-1:2008
// §7.2: numbers, strings, names, the four atoms, and the array/dict/
// keyword delimiters.
package lexer

import "fmt"

// TokenType classifies a Token.
type TokenType int

const (
	TokenError TokenType = iota
	TokenEOF

	TokenInteger
	TokenReal
	TokenString    // (literal string)
	TokenHexString // <hex string>
	TokenName      // /Name
	TokenBoolean
	TokenNull

	TokenKeyword // obj, endobj, stream, endstream, xref, trailer, startxref, R, n, f, or a content-stream operator

	TokenArrayStart // [
	TokenArrayEnd   // ]
	TokenDictStart  // <<
	TokenDictEnd    // >>
)

func (t TokenType) String() string {
	switch t {
	case TokenError:
		return "ERROR"
	case TokenEOF:
		return "EOF"
	case TokenInteger:
		return "INTEGER"
	case TokenReal:
		return "REAL"
	case TokenString:
		return "STRING"
	case TokenHexString:
		return "HEX_STRING"
	case TokenName:
		return "NAME"
	case TokenBoolean:
		return "BOOLEAN"
	case TokenNull:
		return "NULL"
	case TokenKeyword:
		return "KEYWORD"
	case TokenArrayStart:
		return "ARRAY_START"
	case TokenArrayEnd:
		return "ARRAY_END"
	case TokenDictStart:
		return "DICT_START"
	case TokenDictEnd:
		return "DICT_END"
	default:
		return "UNKNOWN"
	}
}

// Keyword string constants recognized outside content streams.
const (
	KeywordObj       = "obj"
	KeywordEndobj    = "endobj"
	KeywordStream    = "stream"
	KeywordEndstream = "endstream"
	KeywordXref      = "xref"
	KeywordTrailer   = "trailer"
	KeywordStartxref = "startxref"
)

// Token is one lexical unit plus its byte offset in the source.
type Token struct {
	Type   TokenType
	Value  string
	Offset int
}

func (t Token) String() string {
	return fmt.Sprintf("%s(%q)@%d", t.Type, t.Value, t.Offset)
}

func errorToken(msg string, offset int) Token {
	return Token{Type: TokenError, Value: msg, Offset: offset}
}

func eofToken(offset int) Token {
	return Token{Type: TokenEOF, Offset: offset}
}

// IsIndirectRefKeyword reports whether s is the "R" keyword used in
// "N G R" indirect-reference triples.
func IsIndirectRefKeyword(s string) bool { return s == "R" }

// contentStreamOperators is the full operator set from PDF 32000-1:2008
// Annex A. The content-stream interpreter treats every non-operand
// keyword it receives as one of these.
var contentStreamOperators = map[string]bool{
	"BT": true, "ET": true,
	"Tc": true, "Tw": true, "Tz": true, "TL": true, "Tf": true, "Tr": true, "Ts": true,
	"Td": true, "TD": true, "Tm": true, "T*": true,
	"Tj": true, "TJ": true, "'": true, "\"": true,
	"q": true, "Q": true, "cm": true, "w": true, "J": true, "j": true, "M": true, "d": true, "ri": true, "i": true, "gs": true,
	"m": true, "l": true, "c": true, "v": true, "y": true, "h": true, "re": true,
	"S": true, "s": true, "f": true, "F": true, "f*": true, "B": true, "B*": true, "b": true, "b*": true, "n": true,
	"W": true, "W*": true,
	"CS": true, "cs": true, "SC": true, "SCN": true, "sc": true, "scn": true, "G": true, "g": true, "RG": true, "rg": true, "K": true, "k": true,
	"sh": true,
	"BI": true, "ID": true, "EI": true,
	"Do": true,
	"MP": true, "DP": true, "BMC": true, "BDC": true, "EMC": true,
	"BX": true, "EX": true,
}

// IsContentStreamOperator reports whether s is a recognized content
// stream operator (PDF 32000-1:2008 Annex A).
func IsContentStreamOperator(s string) bool { return contentStreamOperators[s] }
