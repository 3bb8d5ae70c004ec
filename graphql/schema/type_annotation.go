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

package schema

import (
	"github.com/hexgql/schema/graphql/ast"
	"github.com/hexgql/schema/graphql/position"
)

// TypeAnnotation is the schema-level mirror of ast.TypeAnnotation: the
// "T", "T!", "[T]", "[T!]!" shape decorating a field, parameter, or
// variable, except the innermost name has become a NamedTypeRef (late-
// bound, resolved against the owning TypeMap rather than the raw source
// text). Nullability is tracked at every layer.
type TypeAnnotation interface {
	typeAnnotationNode()
	// Nullable reports whether this layer of the annotation permits null.
	Nullable() bool
	Span() position.Span
}

// NamedType refers directly to a named type, e.g. "String" or "String!".
type NamedType struct {
	AnnotSpan  position.Span
	Ref        NamedTypeRef
	IsNullable bool
}

func (NamedType) typeAnnotationNode()      {}
func (t NamedType) Nullable() bool         { return t.IsNullable }
func (t NamedType) Span() position.Span    { return t.AnnotSpan }

// ListType refers to a list of some inner type, e.g. "[String!]" or
// "[[Int]!]!".
type ListType struct {
	AnnotSpan  position.Span
	Inner      TypeAnnotation
	IsNullable bool
}

func (ListType) typeAnnotationNode()      {}
func (t ListType) Nullable() bool         { return t.IsNullable }
func (t ListType) Span() position.Span    { return t.AnnotSpan }

// TypeAnnotationFromAST converts a parsed ast.TypeAnnotation into the
// schema package's resolvable form. loc wraps each named-type reference's
// span into the SourceLocation variant appropriate for the source being
// loaded (SchemaFile vs SchemaString).
func TypeAnnotationFromAST(t ast.TypeAnnotation, loc func(position.Span) position.SourceLocation) TypeAnnotation {
	switch v := t.(type) {
	case ast.NamedTypeAnnotation:
		return NamedType{
			AnnotSpan:  v.AnnotSpan,
			Ref:        NamedTypeRef{Name: v.Name.Value, Loc: loc(v.Name.NameSpan)},
			IsNullable: v.IsNullable,
		}
	case ast.ListTypeAnnotation:
		return ListType{
			AnnotSpan:  v.AnnotSpan,
			Inner:      TypeAnnotationFromAST(v.Inner, loc),
			IsNullable: v.IsNullable,
		}
	}
	return nil
}

// InnermostRef returns the NamedTypeRef at the bottom of a (possibly
// nested) list annotation, e.g. the ref to "Int" for "[[Int]]".
func InnermostRef(t TypeAnnotation) NamedTypeRef {
	for {
		switch v := t.(type) {
		case NamedType:
			return v.Ref
		case ListType:
			t = v.Inner
		default:
			return NamedTypeRef{}
		}
	}
}

// IsEquivalentTo reports whether a and b have the same structure (Named vs
// List at every layer), the same nullability at every layer, and the same
// innermost named-type name. Source locations never participate, so this
// relation is reflexive and symmetric regardless of
// where each annotation was written.
func IsEquivalentTo(a, b TypeAnnotation) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Nullable() != b.Nullable() {
		return false
	}
	switch av := a.(type) {
	case NamedType:
		bv, ok := b.(NamedType)
		return ok && av.Ref.Name == bv.Ref.Name
	case ListType:
		bv, ok := b.(ListType)
		return ok && IsEquivalentTo(av.Inner, bv.Inner)
	}
	return false
}

// IsSubtypeOf reports whether sub is a valid implementation of super
// under nullability covariance: sub is a subtype of super if they are
// equivalent, or if sub is non-null where super is otherwise-equivalent-
// and-nullable. No interface-subtyping inference is applied beyond exact
// innermost-name equality.
func IsSubtypeOf(sub, super TypeAnnotation) bool {
	if sub == nil || super == nil {
		return false
	}
	switch superV := super.(type) {
	case NamedType:
		subV, ok := sub.(NamedType)
		if !ok || subV.Ref.Name != superV.Ref.Name {
			return false
		}
		return subV.Nullable() == superV.Nullable() || (!subV.Nullable() && superV.Nullable())
	case ListType:
		subV, ok := sub.(ListType)
		if !ok {
			return false
		}
		if !IsSubtypeOf(subV.Inner, superV.Inner) {
			return false
		}
		return subV.Nullable() == superV.Nullable() || (!subV.Nullable() && superV.Nullable())
	}
	return false
}

// TypeAnnotationString renders the annotation in GraphQL's own surface syntax, e.g.
// "[String!]!" — used in validator messages.
func TypeAnnotationString(t TypeAnnotation) string {
	switch v := t.(type) {
	case NamedType:
		if v.IsNullable {
			return v.Ref.Name
		}
		return v.Ref.Name + "!"
	case ListType:
		s := "[" + TypeAnnotationString(v.Inner) + "]"
		if v.IsNullable {
			return s
		}
		return s + "!"
	}
	return "<invalid type>"
}
