/*
MIT License

Copyright (c) 2025 Misael Monterroca
Copyright (c) 2020-2023 fumiama (original go-docx)

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

// Package fontobfuscate implements the reversible XOR scheme OOXML
// uses to embed font programs without shipping them in the clear
// (ECMA-376 Part 1, §17.8.2 "fontData"). The first 32 bytes of the
// font file are XORed with a 16-byte key derived from the font's
// embedding GUID, repeated twice; everything after byte 32 is stored
// verbatim.
package fontobfuscate

import (
	"fmt"
)

// obfuscatedPrefixLen is the number of leading bytes XORed with the key.
const obfuscatedPrefixLen = 32

// GUID is the 16 raw bytes of a font embedding GUID, stored in the
// mixed-endian layout a Windows GUID struct uses on disk: the first
// field (4 bytes) and next two fields (2 bytes each) are little-
// endian, the remaining 8 bytes are taken as-is.
type GUID [16]byte

// String renders the GUID in "{XXXXXXXX-XXXX-XXXX-XXXX-XXXXXXXXXXXX}"
// form for the w:guid attribute on fontTable.xml's <w:embedRegular>
// (and its bold/italic/boldItalic siblings). A Windows GUID struct
// stores its first three fields little-endian; mixedEndian swaps them
// into the big-endian order the textual form displays.
func (g GUID) String() string {
	m := mixedEndian(g)
	return fmt.Sprintf("{%02X%02X%02X%02X-%02X%02X-%02X%02X-%02X%02X-%02X%02X%02X%02X%02X%02X}",
		m[0], m[1], m[2], m[3], m[4], m[5], m[6], m[7],
		m[8], m[9], m[10], m[11], m[12], m[13], m[14], m[15])
}

// ParseGUID parses the "{XXXXXXXX-XXXX-XXXX-XXXX-XXXXXXXXXXXX}" form
// back into the on-disk little-endian byte layout.
func ParseGUID(s string) (GUID, error) {
	var b [16]byte
	n, err := fmt.Sscanf(s, "{%02X%02X%02X%02X-%02X%02X-%02X%02X-%02X%02X-%02X%02X%02X%02X%02X%02X}",
		&b[0], &b[1], &b[2], &b[3], &b[4], &b[5], &b[6], &b[7],
		&b[8], &b[9], &b[10], &b[11], &b[12], &b[13], &b[14], &b[15])
	if err != nil || n != 16 {
		return GUID{}, fmt.Errorf("fontobfuscate: malformed guid %q", s)
	}
	return mixedEndian(GUID(b)), nil
}

// mixedEndian swaps the byte order of a GUID's first three fields
// (4, 2 and 2 bytes) and leaves the trailing 8 bytes untouched; it is
// its own inverse.
func mixedEndian(g GUID) GUID {
	var out GUID
	out[0], out[1], out[2], out[3] = g[3], g[2], g[1], g[0]
	out[4], out[5] = g[5], g[4]
	out[6], out[7] = g[7], g[6]
	copy(out[8:16], g[8:16])
	return out
}

// Obfuscate returns a copy of font with its first 32 bytes XORed
// against the GUID bytes in their on-disk mixed-endian order: byte i
// is XORed with key[15 - (i mod 16)], so the key is consumed from its
// last byte backwards, twice.
func Obfuscate(font []byte, g GUID) []byte {
	out := make([]byte, len(font))
	copy(out, font)
	n := obfuscatedPrefixLen
	if n > len(out) {
		n = len(out)
	}
	for i := 0; i < n; i++ {
		out[i] ^= g[15-(i%16)]
	}
	return out
}

// Deobfuscate reverses Obfuscate; XOR is its own inverse so this is
// the same transform applied again.
func Deobfuscate(font []byte, g GUID) []byte {
	return Obfuscate(font, g)
}
