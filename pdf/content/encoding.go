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

// winAnsiEncoding maps a single-byte code to its Unicode code point
// under WinAnsiEncoding (PDF 32000-1:2008 Annex D.2). Codes 0x20-0x7E
// are ASCII, 0xA0-0xFF are Latin-1, and the 0x80-0x9F block carries
// the Windows-1252 typographic characters.
func winAnsiEncoding(code byte) rune {
	switch {
	case code >= 0x20 && code <= 0x7E:
		return rune(code)
	case code >= 0xA0:
		return rune(code)
	}
	switch code {
	case 0x80:
		return '€' // Euro
	case 0x82:
		return '‚'
	case 0x83:
		return 'ƒ'
	case 0x84:
		return '„'
	case 0x85:
		return '…'
	case 0x86:
		return '†'
	case 0x87:
		return '‡'
	case 0x88:
		return 'ˆ'
	case 0x89:
		return '‰'
	case 0x8A:
		return 'Š'
	case 0x8B:
		return '‹'
	case 0x8C:
		return 'Œ'
	case 0x8E:
		return 'Ž'
	case 0x91:
		return '‘'
	case 0x92:
		return '’'
	case 0x93:
		return '“'
	case 0x94:
		return '”'
	case 0x95:
		return '•'
	case 0x96:
		return '–'
	case 0x97:
		return '—'
	case 0x98:
		return '˜'
	case 0x99:
		return '™'
	case 0x9A:
		return 'š'
	case 0x9B:
		return '›'
	case 0x9C:
		return 'œ'
	case 0x9E:
		return 'ž'
	case 0x9F:
		return 'Ÿ'
	default:
		return 0
	}
}

// standardEncoding maps a code under Adobe StandardEncoding. The
// printable ASCII range is identical to WinAnsi apart from quoteright
// and quoteleft at 0x27/0x60; the upper half is sparse and rarely met
// in text-document PDFs, so unmapped codes return 0 and fall back to
// the raw byte at the caller.
func standardEncoding(code byte) rune {
	switch code {
	case 0x27:
		return '’'
	case 0x60:
		return '‘'
	}
	if code >= 0x20 && code <= 0x7E {
		return rune(code)
	}
	switch code {
	case 0xA1:
		return '¡'
	case 0xA2:
		return '¢'
	case 0xA3:
		return '£'
	case 0xA4:
		return '⁄'
	case 0xA5:
		return '¥'
	case 0xA7:
		return '§'
	case 0xB4:
		return '·'
	case 0xB7:
		return '•'
	case 0xD0:
		return '—'
	default:
		return 0
	}
}

// macRomanEncoding covers the codes that differ from ASCII that show
// up in practice; the long tail of Mac-specific symbols falls back to
// the raw byte.
func macRomanEncoding(code byte) rune {
	if code >= 0x20 && code <= 0x7E {
		return rune(code)
	}
	switch code {
	case 0x80:
		return 'Ä'
	case 0x81:
		return 'Å'
	case 0x82:
		return 'Ç'
	case 0x83:
		return 'É'
	case 0x84:
		return 'Ñ'
	case 0x85:
		return 'Ö'
	case 0x86:
		return 'Ü'
	case 0x87:
		return 'á'
	case 0x88:
		return 'à'
	case 0x89:
		return 'â'
	case 0x8A:
		return 'ä'
	case 0x8E:
		return 'é'
	case 0x8F:
		return 'è'
	case 0x96:
		return 'ñ'
	case 0x9A:
		return 'ö'
	case 0x9F:
		return 'ü'
	case 0xA5:
		return '•'
	case 0xD0:
		return '–'
	case 0xD1:
		return '—'
	case 0xD2:
		return '“'
	case 0xD3:
		return '”'
	case 0xD4:
		return '‘'
	case 0xD5:
		return '’'
	default:
		return 0
	}
}

// baseEncodingFunc selects the byte-to-rune table for a named base
// encoding; the default for unembedded Latin text fonts is WinAnsi
// behavior, which is also the closest safe fallback.
func baseEncodingFunc(name string) func(byte) rune {
	switch name {
	case "MacRomanEncoding":
		return macRomanEncoding
	case "StandardEncoding":
		return standardEncoding
	default:
		return winAnsiEncoding
	}
}
