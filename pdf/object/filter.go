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
	"compress/lzw"
	"compress/zlib"
	"fmt"
	"io"
)

// DecodeStream applies a stream's /Filter chain (left to right, per
// spec.md §4.10) to its raw payload and returns the decoded bytes.
// DCTDecode and JPXDecode are image codecs the interpreter consumes
// directly, so they pass through undecoded.
func DecodeStream(s *Stream) ([]byte, error) {
	names, parms := s.Filters()
	data := s.Raw
	for i, name := range names {
		decoded, err := applyFilter(name, data, parms[i])
		if err != nil {
			return nil, fmt.Errorf("object: filter %s: %w", name, err)
		}
		data = decoded
	}
	return data, nil
}

func applyFilter(name Name, data []byte, parms Dict) ([]byte, error) {
	switch name {
	case "FlateDecode", "Fl":
		return flateDecode(data, parms)
	case "LZWDecode", "LZW":
		return lzwDecode(data, parms)
	case "ASCII85Decode", "A85":
		return ascii85Decode(data)
	case "ASCIIHexDecode", "AHx":
		return asciiHexDecode(data)
	case "DCTDecode", "DCT", "JPXDecode":
		return data, nil
	case "RunLengthDecode", "RL":
		return runLengthDecode(data)
	default:
		return nil, fmt.Errorf("unsupported filter %s", name)
	}
}

func flateDecode(data []byte, parms Dict) ([]byte, error) {
	r, err := zlib.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer r.Close()
	out, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return applyPredictor(out, parms)
}

func lzwDecode(data []byte, parms Dict) ([]byte, error) {
	early := 1
	if parms != nil {
		if v, ok := parms["EarlyChange"].(int64); ok {
			early = int(v)
		}
	}
	order := lzw.MSB
	litWidth := 8
	r := lzw.NewReader(bytes.NewReader(data), order, litWidth)
	defer r.Close()
	out, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	_ = early // Go's compress/lzw always behaves as EarlyChange=1, PDF's default.
	return applyPredictor(out, parms)
}

// applyPredictor reverses the PNG (predictor 2-5, simplified to the
// common "up" case 2) or TIFF (predictor 1, i.e. none) prediction a
// /DecodeParms dictionary may describe for image data.
func applyPredictor(data []byte, parms Dict) ([]byte, error) {
	if parms == nil {
		return data, nil
	}
	predictor := parms.GetInt("Predictor")
	if predictor <= 1 {
		return data, nil
	}
	colors := parms.GetInt("Colors")
	if colors == 0 {
		colors = 1
	}
	bpc := parms.GetInt("BitsPerComponent")
	if bpc == 0 {
		bpc = 8
	}
	columns := parms.GetInt("Columns")
	if columns == 0 {
		columns = 1
	}
	rowBytes := (colors*bpc*columns + 7) / 8

	var out bytes.Buffer
	prev := make([]byte, rowBytes)
	pos := 0
	for pos+1+rowBytes <= len(data) {
		filterType := data[pos]
		row := make([]byte, rowBytes)
		copy(row, data[pos+1:pos+1+rowBytes])
		pos += 1 + rowBytes

		switch filterType {
		case 0: // None
		case 2: // Up
			for i := 0; i < rowBytes; i++ {
				row[i] += prev[i]
			}
		default:
			// Sub/Average/Paeth are rare for text-document PDFs; treat as None
			// rather than corrupt the stream with a wrong reconstruction.
		}
		out.Write(row)
		prev = row
	}
	return out.Bytes(), nil
}

func ascii85Decode(data []byte) ([]byte, error) {
	var out []byte
	var group [5]byte
	n := 0
	flush := func(count int) error {
		for i := count; i < 5; i++ {
			group[i] = 'u'
		}
		var v uint32
		for _, c := range group {
			v = v*85 + uint32(c-'!')
		}
		b := []byte{byte(v >> 24), byte(v >> 16), byte(v >> 8), byte(v)}
		out = append(out, b[:count-1]...)
		return nil
	}

	i := 0
	if bytes.HasPrefix(data, []byte("<~")) {
		i = 2
	}
	for ; i < len(data); i++ {
		c := data[i]
		switch {
		case c == '~':
			if n > 0 {
				if err := flush(n); err != nil {
					return nil, err
				}
			}
			return out, nil
		case c == 'z' && n == 0:
			out = append(out, 0, 0, 0, 0)
		case c >= '!' && c <= 'u':
			group[n] = c
			n++
			if n == 5 {
				if err := flush(5); err != nil {
					return nil, err
				}
				n = 0
			}
		default:
			// whitespace is ignored between groups
		}
	}
	if n > 0 {
		if err := flush(n); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func asciiHexDecode(data []byte) ([]byte, error) {
	var digits []byte
	for _, c := range data {
		if c == '>' {
			break
		}
		if isHex(c) {
			digits = append(digits, c)
		}
	}
	if len(digits)%2 == 1 {
		digits = append(digits, '0')
	}
	out := make([]byte, len(digits)/2)
	for i := range out {
		out[i] = hexByte(digits[2*i])<<4 | hexByte(digits[2*i+1])
	}
	return out, nil
}

func isHex(b byte) bool {
	return (b >= '0' && b <= '9') || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}

func hexByte(b byte) byte {
	switch {
	case b >= '0' && b <= '9':
		return b - '0'
	case b >= 'a' && b <= 'f':
		return b - 'a' + 10
	default:
		return b - 'A' + 10
	}
}

func runLengthDecode(data []byte) ([]byte, error) {
	var out bytes.Buffer
	for i := 0; i < len(data); {
		length := data[i]
		i++
		switch {
		case length == 128:
			return out.Bytes(), nil
		case length < 128:
			n := int(length) + 1
			if i+n > len(data) {
				n = len(data) - i
			}
			out.Write(data[i : i+n])
			i += n
		default:
			if i >= len(data) {
				break
			}
			count := 257 - int(length)
			for j := 0; j < count; j++ {
				out.WriteByte(data[i])
			}
			i++
		}
	}
	return out.Bytes(), nil
}
