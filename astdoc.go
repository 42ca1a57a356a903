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

	"github.com/wordengine/docflow/ast"
	"github.com/wordengine/docflow/internal/astconv"
	"github.com/wordengine/docflow/internal/reader"
)

// WriteAST serializes an ast.Document into a .docx container: the
// document is staged through the astconv visitor onto the writer's
// document model and written with all its parts (numbering, notes,
// media, embedded fonts).
func WriteAST(doc ast.Document, w io.Writer) (int64, error) {
	staged, err := astconv.ToDomain(doc)
	if err != nil {
		return 0, err
	}
	return staged.WriteTo(w)
}

// WriteASTSeeded is WriteAST with a fixed entropy seed, so document
// ID, RSIDs and font keys are reproducible.
func WriteASTSeeded(doc ast.Document, seed int64, w io.Writer) (int64, error) {
	staged, err := astconv.ToDomainWithSeed(doc, seed)
	if err != nil {
		return 0, err
	}
	return staged.WriteTo(w)
}

// OpenAST reads a .docx container from memory into an ast.Document:
// the container reader reconstructs the package and astconv rebuilds
// the value-semantic tree, regrouping lists with their continuity
// start indexes.
func OpenAST(data []byte) (ast.Document, error) {
	pkg, err := reader.LoadPackageFromBytes(data)
	if err != nil {
		return ast.Document{}, err
	}
	parsed, err := reader.ParsePackage(pkg)
	if err != nil {
		return ast.Document{}, err
	}
	doc, err := reader.ReconstructDocument(parsed)
	if err != nil {
		return ast.Document{}, err
	}
	return astconv.FromDomain(doc), nil
}

// OpenASTFile reads a .docx file from disk into an ast.Document.
func OpenASTFile(path string) (ast.Document, error) {
	pkg, err := reader.LoadPackageFromPath(path)
	if err != nil {
		return ast.Document{}, err
	}
	parsed, err := reader.ParsePackage(pkg)
	if err != nil {
		return ast.Document{}, err
	}
	doc, err := reader.ReconstructDocument(parsed)
	if err != nil {
		return ast.Document{}, err
	}
	return astconv.FromDomain(doc), nil
}
