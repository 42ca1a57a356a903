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

package lexer

import (
	"strings"
)

func isWhitespace(b byte) bool {
	switch b {
	case 0x00, 0x09, 0x0A, 0x0C, 0x0D, 0x20:
		return true
	default:
		return false
	}
}

func isDelimiter(b byte) bool {
	switch b {
	case '(', ')', '<', '>', '[', ']', '{', '}', '/', '%':
		return true
	default:
		return false
	}
}

func isRegular(b byte) bool {
	return !isWhitespace(b) && !isDelimiter(b)
}

// Lexer scans a byte slice into Tokens one at a time. It is used both
// for the file-level object syntax and, with the same grammar, for
// content streams (whose operators surface as TokenKeyword values).
type Lexer struct {
	src []byte
	pos int
}

// New returns a Lexer positioned at the start of src.
func New(src []byte) *Lexer { return &Lexer{src: src} }

// Pos returns the current byte offset.
func (l *Lexer) Pos() int { return l.pos }

// Source returns the underlying byte slice being scanned.
func (l *Lexer) Source() []byte { return l.src }

// Seek repositions the lexer to an absolute byte offset.
func (l *Lexer) Seek(offset int) { l.pos = offset }

func (l *Lexer) peek() byte {
	if l.pos >= len(l.src) {
		return 0
	}
	return l.src[l.pos]
}

func (l *Lexer) peekAt(off int) byte {
	p := l.pos + off
	if p >= len(l.src) {
		return 0
	}
	return l.src[p]
}

func (l *Lexer) skipWhitespaceAndComments() {
	for l.pos < len(l.src) {
		b := l.src[l.pos]
		if isWhitespace(b) {
			l.pos++
			continue
		}
		if b == '%' {
			for l.pos < len(l.src) && l.src[l.pos] != '\n' && l.src[l.pos] != '\r' {
				l.pos++
			}
			continue
		}
		break
	}
}

// Next scans and returns the next Token.
func (l *Lexer) Next() Token {
	l.skipWhitespaceAndComments()
	start := l.pos
	if l.pos >= len(l.src) {
		return eofToken(start)
	}

	b := l.src[l.pos]
	switch {
	case b == '/':
		return l.scanName(start)
	case b == '(':
		return l.scanLiteralString(start)
	case b == '<':
		if l.peekAt(1) == '<' {
			l.pos += 2
			return Token{Type: TokenDictStart, Value: "<<", Offset: start}
		}
		return l.scanHexString(start)
	case b == '>':
		if l.peekAt(1) == '>' {
			l.pos += 2
			return Token{Type: TokenDictEnd, Value: ">>", Offset: start}
		}
		l.pos++
		return errorToken("stray '>'", start)
	case b == '[':
		l.pos++
		return Token{Type: TokenArrayStart, Value: "[", Offset: start}
	case b == ']':
		l.pos++
		return Token{Type: TokenArrayEnd, Value: "]", Offset: start}
	case b == '+' || b == '-' || b == '.' || (b >= '0' && b <= '9'):
		return l.scanNumber(start)
	case isRegular(b):
		return l.scanKeyword(start)
	default:
		l.pos++
		return errorToken("unexpected byte", start)
	}
}

func (l *Lexer) scanName(start int) Token {
	l.pos++ // consume '/'
	var sb strings.Builder
	for l.pos < len(l.src) && isRegular(l.src[l.pos]) {
		b := l.src[l.pos]
		if b == '#' && l.pos+2 < len(l.src) && isHexDigit(l.src[l.pos+1]) && isHexDigit(l.src[l.pos+2]) {
			sb.WriteByte(hexVal(l.src[l.pos+1])<<4 | hexVal(l.src[l.pos+2]))
			l.pos += 3
			continue
		}
		sb.WriteByte(b)
		l.pos++
	}
	return Token{Type: TokenName, Value: sb.String(), Offset: start}
}

func (l *Lexer) scanLiteralString(start int) Token {
	l.pos++ // consume '('
	depth := 1
	var sb strings.Builder
	for l.pos < len(l.src) && depth > 0 {
		b := l.src[l.pos]
		switch b {
		case '(':
			depth++
			sb.WriteByte(b)
			l.pos++
		case ')':
			depth--
			l.pos++
			if depth > 0 {
				sb.WriteByte(b)
			}
		case '\\':
			l.pos++
			if l.pos >= len(l.src) {
				break
			}
			e := l.src[l.pos]
			switch e {
			case 'n':
				sb.WriteByte('\n')
				l.pos++
			case 'r':
				sb.WriteByte('\r')
				l.pos++
			case 't':
				sb.WriteByte('\t')
				l.pos++
			case 'b':
				sb.WriteByte('\b')
				l.pos++
			case 'f':
				sb.WriteByte('\f')
				l.pos++
			case '(', ')', '\\':
				sb.WriteByte(e)
				l.pos++
			case '\r':
				l.pos++
				if l.peek() == '\n' {
					l.pos++
				}
			case '\n':
				l.pos++
			default:
				if e >= '0' && e <= '7' {
					v := 0
					for n := 0; n < 3 && l.peek() >= '0' && l.peek() <= '7'; n++ {
						v = v*8 + int(l.src[l.pos]-'0')
						l.pos++
					}
					sb.WriteByte(byte(v))
				} else {
					sb.WriteByte(e)
					l.pos++
				}
			}
		default:
			sb.WriteByte(b)
			l.pos++
		}
	}
	return Token{Type: TokenString, Value: sb.String(), Offset: start}
}

func (l *Lexer) scanHexString(start int) Token {
	l.pos++ // consume '<'
	var digits []byte
	for l.pos < len(l.src) && l.src[l.pos] != '>' {
		b := l.src[l.pos]
		if isHexDigit(b) {
			digits = append(digits, b)
		}
		l.pos++
	}
	if l.pos < len(l.src) {
		l.pos++ // consume '>'
	}
	if len(digits)%2 == 1 {
		digits = append(digits, '0')
	}
	out := make([]byte, len(digits)/2)
	for i := range out {
		out[i] = hexVal(digits[2*i])<<4 | hexVal(digits[2*i+1])
	}
	return Token{Type: TokenHexString, Value: string(out), Offset: start}
}

func (l *Lexer) scanNumber(start int) Token {
	isReal := false
	if l.peek() == '+' || l.peek() == '-' {
		l.pos++
	}
	for l.pos < len(l.src) {
		b := l.src[l.pos]
		if b >= '0' && b <= '9' {
			l.pos++
			continue
		}
		if b == '.' && !isReal {
			isReal = true
			l.pos++
			continue
		}
		break
	}
	typ := TokenInteger
	if isReal {
		typ = TokenReal
	}
	return Token{Type: typ, Value: string(l.src[start:l.pos]), Offset: start}
}

func (l *Lexer) scanKeyword(start int) Token {
	for l.pos < len(l.src) && isRegular(l.src[l.pos]) {
		l.pos++
	}
	word := string(l.src[start:l.pos])
	switch word {
	case "true", "false":
		return Token{Type: TokenBoolean, Value: word, Offset: start}
	case "null":
		return Token{Type: TokenNull, Value: word, Offset: start}
	default:
		return Token{Type: TokenKeyword, Value: word, Offset: start}
	}
}

func isHexDigit(b byte) bool {
	return (b >= '0' && b <= '9') || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}

func hexVal(b byte) byte {
	switch {
	case b >= '0' && b <= '9':
		return b - '0'
	case b >= 'a' && b <= 'f':
		return b - 'a' + 10
	case b >= 'A' && b <= 'F':
		return b - 'A' + 10
	default:
		return 0
	}
}
