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

package docx

import (
	"io"

	"github.com/wordengine/docflow/domain"
	"github.com/wordengine/docflow/internal/reader"
)

// OpenDocument reads a .docx file from disk and reconstructs it as a
// document, resolving styles, numbering, tables and media.
func OpenDocument(path string) (domain.Document, error) {
	pkg, err := reader.LoadPackageFromPath(path)
	if err != nil {
		return nil, err
	}
	return reconstruct(pkg)
}

// OpenDocumentFromBytes reads a .docx container from memory.
func OpenDocumentFromBytes(data []byte) (domain.Document, error) {
	pkg, err := reader.LoadPackageFromBytes(data)
	if err != nil {
		return nil, err
	}
	return reconstruct(pkg)
}

// OpenDocumentFromReader reads a .docx container from a stream.
func OpenDocumentFromReader(r io.Reader) (domain.Document, error) {
	pkg, err := reader.LoadPackageFromStream(r)
	if err != nil {
		return nil, err
	}
	return reconstruct(pkg)
}

func reconstruct(pkg *reader.Package) (domain.Document, error) {
	parsed, err := reader.ParsePackage(pkg)
	if err != nil {
		return nil, err
	}
	return reader.ReconstructDocument(parsed)
}
