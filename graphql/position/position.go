/**
 * Copyright (c) 2018, The Artemis Authors.
 *
 * Permission to use, copy, modify, and/or distribute this software for any
 * purpose with or without fee is hereby granted, provided that the above
 * copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES
 * WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF
 * MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR
 * ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES
 * WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN
 * ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF
 * OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

// Package position tracks byte offsets, lines, and dual-width (UTF-8 and
// UTF-16) columns within a GraphQL source, and joins them into spans that
// diagnostics and AST nodes can point back at.
package position

import "fmt"

// Position is a single point within a source, tracked with both a UTF-8 and
// a UTF-16 column so the same source serves human-facing diagnostics (which
// count scalar values) and LSP-facing tooling (which counts UTF-16 units).
//
// All fields are 0-based. Display values are always 1-indexed and are
// produced only at render time by Line1/ColUTF8_1/ColUTF16_1.
type Position struct {
	Line     uint32
	ColUTF8  uint32
	ColUTF16 uint32
	Byte     uint32
}

// Line1 returns the 1-indexed line number.
func (p Position) Line1() uint32 { return p.Line + 1 }

// ColUTF8_1 returns the 1-indexed UTF-8 column number.
func (p Position) ColUTF8_1() uint32 { return p.ColUTF8 + 1 }

// ColUTF16_1 returns the 1-indexed UTF-16 column number.
func (p Position) ColUTF16_1() uint32 { return p.ColUTF16 + 1 }

// String renders the position as "line:col" using 1-indexed UTF-8 columns,
// the form used by one-line diagnostics.
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line1(), p.ColUTF8_1())
}

// Span is a half-open [Start, End) range within a source, plus the optional
// path of the file it was read from (empty for in-memory/synthetic sources).
type Span struct {
	Start Position
	End   Position
	File  string
}

// IsZero reports whether the span carries no real location information.
func (s Span) IsZero() bool {
	return s == Span{}
}

// Join returns the smallest span covering both s and other. The File of s
// wins; callers should only join spans known to share a source.
func Join(s, other Span) Span {
	joined := Span{Start: s.Start, End: s.End, File: s.File}
	if other.Start.Byte < joined.Start.Byte {
		joined.Start = other.Start
	}
	if other.End.Byte > joined.End.Byte {
		joined.End = other.End
	}
	return joined
}

// Origin classifies where a SourceLocation's text lives.
type Origin uint8

// Enumeration of Origin. GraphQLBuiltIn carries no file and no meaningful
// span; it marks constructs (e.g. the injected __typename field, built-in
// scalars and directives) that were never written in any source.
const (
	OriginSchemaFile Origin = iota + 1
	OriginSchemaString
	OriginGraphQLBuiltIn
	OriginOperationFile
)

// SourceLocation is one of SchemaFile(file, position), SchemaString,
// GraphQLBuiltIn, or OperationFile(file, position).
type SourceLocation struct {
	Origin Origin
	Span   Span
}

// BuiltIn is the single shared location used for anything injected by the
// library itself rather than read from a source.
var BuiltIn = SourceLocation{Origin: OriginGraphQLBuiltIn}

// SchemaFile builds a SourceLocation for a position read from a named
// schema file.
func SchemaFile(span Span) SourceLocation {
	return SourceLocation{Origin: OriginSchemaFile, Span: span}
}

// SchemaString builds a SourceLocation for a position read from an
// in-memory (possibly synthetically-named) schema source.
func SchemaString(span Span) SourceLocation {
	return SourceLocation{Origin: OriginSchemaString, Span: span}
}

// OperationFile builds a SourceLocation for a position within an
// executable document read from a named file.
func OperationFile(span Span) SourceLocation {
	return SourceLocation{Origin: OriginOperationFile, Span: span}
}

// IsBuiltIn reports whether this location refers to library-injected
// content rather than anything written in a source.
func (loc SourceLocation) IsBuiltIn() bool {
	return loc.Origin == OriginGraphQLBuiltIn
}
