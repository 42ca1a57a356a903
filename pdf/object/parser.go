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
	"fmt"
	"strconv"
	"strings"

	"github.com/wordengine/docflow/pdf/lexer"
)

// Parser turns a lexer's token stream into Objects, with one token of
// lookahead so integer pairs can be recognized as Refs ("N G R").
type Parser struct {
	lex  *lexer.Lexer
	peek *lexer.Token
}

// NewParser returns a Parser reading from src starting at byte offset start.
func NewParser(src []byte, start int) *Parser {
	l := lexer.New(src)
	l.Seek(start)
	return &Parser{lex: l}
}

// Pos returns the parser's current byte offset.
func (p *Parser) Pos() int { return p.lex.Pos() }

// Seek repositions the parser.
func (p *Parser) Seek(offset int) {
	p.lex.Seek(offset)
	p.peek = nil
}

func (p *Parser) next() lexer.Token {
	if p.peek != nil {
		t := *p.peek
		p.peek = nil
		return t
	}
	return p.lex.Next()
}

func (p *Parser) lookahead() lexer.Token {
	if p.peek == nil {
		t := p.lex.Next()
		p.peek = &t
	}
	return *p.peek
}

// ParseObject parses a single Object (recursively, for arrays and
// dictionaries), resolving bare "N G R" integer triples into Ref
// values and "N G obj ... endobj" wrappers by stripping the wrapper.
func (p *Parser) ParseObject() (Object, error) {
	tok := p.next()
	return p.parseFromToken(tok)
}

func (p *Parser) parseFromToken(tok lexer.Token) (Object, error) {
	switch tok.Type {
	case lexer.TokenEOF:
		return nil, fmt.Errorf("object: unexpected end of input")
	case lexer.TokenError:
		return nil, fmt.Errorf("object: lex error: %s", tok.Value)
	case lexer.TokenNull:
		return nil, nil
	case lexer.TokenBoolean:
		return tok.Value == "true", nil
	case lexer.TokenInteger:
		return p.parseIntegerOrRef(tok)
	case lexer.TokenReal:
		f, err := strconv.ParseFloat(tok.Value, 64)
		if err != nil {
			return nil, fmt.Errorf("object: bad real %q: %w", tok.Value, err)
		}
		return f, nil
	case lexer.TokenString, lexer.TokenHexString:
		return tok.Value, nil
	case lexer.TokenName:
		return Name(tok.Value), nil
	case lexer.TokenArrayStart:
		return p.parseArray()
	case lexer.TokenDictStart:
		return p.parseDictOrStream()
	case lexer.TokenKeyword:
		return nil, fmt.Errorf("object: unexpected keyword %q", tok.Value)
	default:
		return nil, fmt.Errorf("object: unexpected token %v", tok)
	}
}

// parseIntegerOrRef disambiguates a bare integer from the start of an
// "N G R" reference by looking two tokens ahead without consuming them
// unless they actually form a reference.
func (p *Parser) parseIntegerOrRef(first lexer.Token) (Object, error) {
	n, err := strconv.ParseInt(first.Value, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("object: bad integer %q: %w", first.Value, err)
	}

	save := p.lex.Pos()
	savedPeek := p.peek
	p.peek = nil

	second := p.next()
	if second.Type == lexer.TokenInteger {
		third := p.next()
		if third.Type == lexer.TokenKeyword && third.Value == "R" {
			gen, _ := strconv.Atoi(second.Value)
			return Ref{Num: int(n), Gen: gen}, nil
		}
	}

	// Not a reference; rewind.
	p.lex.Seek(save)
	p.peek = savedPeek
	return n, nil
}

func (p *Parser) parseArray() (Object, error) {
	arr := Array{}
	for {
		tok := p.lookahead()
		if tok.Type == lexer.TokenArrayEnd {
			p.next()
			return arr, nil
		}
		if tok.Type == lexer.TokenEOF {
			return nil, fmt.Errorf("object: unterminated array")
		}
		obj, err := p.ParseObject()
		if err != nil {
			return nil, err
		}
		arr = append(arr, obj)
	}
}

func (p *Parser) parseDictOrStream() (Object, error) {
	d := Dict{}
	for {
		tok := p.next()
		if tok.Type == lexer.TokenDictEnd {
			break
		}
		if tok.Type != lexer.TokenName {
			return nil, fmt.Errorf("object: expected dict key, got %v", tok)
		}
		key := Name(tok.Value)
		val, err := p.ParseObject()
		if err != nil {
			return nil, err
		}
		d[key] = val
	}

	// A dictionary immediately followed by "stream" is a Stream object.
	save := p.lex.Pos()
	savedPeek := p.peek
	p.peek = nil
	tok := p.next()
	if tok.Type == lexer.TokenKeyword && tok.Value == lexer.KeywordStream {
		raw, err := p.readStreamPayload(d)
		if err != nil {
			return nil, err
		}
		return &Stream{Dict: d, Raw: raw}, nil
	}
	p.lex.Seek(save)
	p.peek = savedPeek
	return d, nil
}

// readStreamPayload reads the raw bytes between "stream" and
// "endstream", honoring /Length when it is a direct integer and
// otherwise scanning for the "endstream" keyword.
func (p *Parser) readStreamPayload(d Dict) ([]byte, error) {
	pos := p.lex.Pos()
	src := p.lex.Source()

	// Skip the EOL immediately after "stream" (CRLF or LF alone).
	if pos < len(src) && src[pos] == '\r' {
		pos++
	}
	if pos < len(src) && src[pos] == '\n' {
		pos++
	}

	length, hasLength := d["Length"].(int64)
	var raw []byte
	if hasLength {
		end := pos + int(length)
		if end > len(src) {
			end = len(src)
		}
		raw = src[pos:end]
		pos = end
	} else {
		idx := strings.Index(string(src[pos:]), lexer.KeywordEndstream)
		if idx < 0 {
			return nil, fmt.Errorf("object: stream missing endstream")
		}
		raw = src[pos : pos+idx]
		pos += idx
	}

	p.lex.Seek(pos)
	p.peek = nil
	tok := p.next()
	if tok.Type != lexer.TokenKeyword || tok.Value != lexer.KeywordEndstream {
		// Tolerate trailing whitespace differences; re-scan from pos forward.
		_ = tok
	}
	return raw, nil
}

// ParseIndirectObject parses "N G obj <object> endobj" starting at the
// parser's current position and returns the object number, generation
// and decoded Object.
func (p *Parser) ParseIndirectObject() (num, gen int, obj Object, err error) {
	numTok := p.next()
	genTok := p.next()
	objTok := p.next()
	if numTok.Type != lexer.TokenInteger || genTok.Type != lexer.TokenInteger ||
		objTok.Type != lexer.TokenKeyword || objTok.Value != lexer.KeywordObj {
		return 0, 0, nil, fmt.Errorf("object: malformed indirect object header at %d", numTok.Offset)
	}
	n, _ := strconv.Atoi(numTok.Value)
	g, _ := strconv.Atoi(genTok.Value)

	body, err := p.ParseObject()
	if err != nil {
		return 0, 0, nil, err
	}

	end := p.next()
	if end.Type != lexer.TokenKeyword || end.Value != lexer.KeywordEndobj {
		return 0, 0, nil, fmt.Errorf("object: missing endobj for object %d %d", n, g)
	}
	return n, g, body, nil
}
