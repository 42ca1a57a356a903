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

package xml

import (
	"fmt"

	"github.com/beevik/etree"
)

// RawPart is a package part the reader preserves rather than models:
// styles, numbering, settings and similar parts whose unknown content
// must survive a round trip byte for byte. The original bytes are
// kept verbatim for re-emission; an etree document over the same
// bytes answers structural questions (root element, attribute lookup)
// without any re-serialization, since etree preserves attribute order
// and unknown elements that encoding/xml structs would drop.
type RawPart struct {
	Path string

	data []byte
	tree *etree.Document
}

// NewRawPart validates data as well-formed XML and wraps it. The
// bytes are retained untouched; the parse exists so a corrupt part is
// rejected up front instead of being re-emitted blindly.
func NewRawPart(path string, data []byte) (*RawPart, error) {
	tree := etree.NewDocument()
	tree.ReadSettings.Permissive = true
	if err := tree.ReadFromBytes(data); err != nil {
		return nil, fmt.Errorf("xml: part %s is not well-formed: %w", path, err)
	}
	if tree.Root() == nil {
		return nil, fmt.Errorf("xml: part %s has no root element", path)
	}
	return &RawPart{Path: path, data: data, tree: tree}, nil
}

// Bytes returns the part's original bytes, exactly as read.
func (p *RawPart) Bytes() []byte { return p.data }

// RootTag returns the local name of the part's root element.
func (p *RawPart) RootTag() string {
	return p.tree.Root().Tag
}

// RootAttr returns the value of an attribute on the root element by
// local name, or "" when absent.
func (p *RawPart) RootAttr(local string) string {
	for _, a := range p.tree.Root().Attr {
		if a.Key == local {
			return a.Value
		}
	}
	return ""
}

// FindElements proxies an etree path query against the part, letting
// callers inspect preserved content (e.g. count w:abstractNum
// definitions in a preserved numbering part) without re-modeling it.
func (p *RawPart) FindElements(path string) []*etree.Element {
	return p.tree.FindElements(path)
}
