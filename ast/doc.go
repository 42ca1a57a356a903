/*
   Copyright (c) 2025 SlideLang

   This program is free software: you can redistribute it and/or modify
   it under the terms of the GNU Affero General Public License as published
   by the Free Software Foundation, either version 3 of the License, or
   (at your option) any later version.

   This program is distributed in the hope that it will be useful,
   but WITHOUT ANY WARRANTY; without even the implied warranty of
   MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
   GNU Affero General Public License for more details.

   You should have received a copy of the GNU Affero General Public License
   along with this program.  If not, see <https://www.gnu.org/licenses/>.
*/

// Package ast defines the value-semantic document model shared by the
// container writer, the container reader, and the PDF content-stream
// interpreter.
//
// A Document is an ordered sequence of Blocks. A Block is a closed sum
// type (Paragraph, Table, List, Image, ShapeBlock, SectionBreak, DropCap,
// TableOfContents); an inline is a closed sum type nested inside a
// Paragraph, DropCap, or ShapeBlock's text. Every node is a plain struct
// constructed by a New* function and mutated only through With* copies —
// constructing a node never mutates an existing one, and two nodes may
// safely share sub-values (notably media byte payloads, see the media
// package) because nothing in this package writes through a pointer it
// did not just allocate.
package ast
