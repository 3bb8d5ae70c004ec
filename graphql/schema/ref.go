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

// Package schema consumes parsed ast.Documents and builds a fully-resolved,
// cross-referenced, validated GraphQL type system: named references,
// per-kind type builders, the assembler that orchestrates them,
// cross-type validators, and the normalized value model.
package schema

import (
	"fmt"

	"github.com/hexgql/schema/graphql/position"
)

// DanglingReferenceError is returned by every NamedRef's deref when the
// name it carries is not present in the owning map. Every NamedTypeRef
// reachable from the schema must resolve to a defined type; this is
// produced at validation time, never silently ignored.
type DanglingReferenceError struct {
	// Kind names what sort of thing was being looked up ("type", "directive",
	// "fragment", "variable", "enum value"), for the error message only.
	Kind string
	Name string
	Loc  position.SourceLocation
}

func (e *DanglingReferenceError) Error() string {
	return fmt.Sprintf("dangling %s reference %q at %s", e.Kind, e.Name, e.Loc.Span.Start)
}

// NamedTypeRef is a late-bound reference to a type by name, used anywhere
// the AST names a type (field types, implements lists, union members,
// input-object field types, argument types). It is pure data: a name plus
// the site where it was referenced, never a pointer into the TypeMap, so
// that cyclic type graphs (e.g. mutually recursive object types) never
// produce cyclic ownership in Go's memory model.
type NamedTypeRef struct {
	Name string
	Loc  position.SourceLocation
}

// Deref resolves the reference against m, or reports DanglingReferenceError.
func (r NamedTypeRef) Deref(m *TypeMap) (Type, error) {
	t, ok := m.Lookup(r.Name)
	if !ok {
		return nil, &DanglingReferenceError{Kind: "type", Name: r.Name, Loc: r.Loc}
	}
	return t, nil
}

// NamedDirectiveRef is a late-bound reference to a directive definition by
// name, as recorded by an applied @directive(...) annotation.
type NamedDirectiveRef struct {
	Name string
	Loc  position.SourceLocation
}

// Deref resolves the reference against m.
func (r NamedDirectiveRef) Deref(m *DirectiveMap) (*Directive, error) {
	d, ok := m.Lookup(r.Name)
	if !ok {
		return nil, &DanglingReferenceError{Kind: "directive", Name: r.Name, Loc: r.Loc}
	}
	return d, nil
}

// NamedEnumValueRef is a late-bound reference to a member of an EnumType,
// used when a value literal names an enum value rather than supplying it
// inline.
type NamedEnumValueRef struct {
	Name string
	Loc  position.SourceLocation
}

// Deref resolves the reference against the owning EnumType.
func (r NamedEnumValueRef) Deref(e *EnumType) (*EnumValue, error) {
	for _, v := range e.Values {
		if v.Name == r.Name {
			return v, nil
		}
	}
	return nil, &DanglingReferenceError{Kind: "enum value", Name: r.Name, Loc: r.Loc}
}

// NamedVariableRef is a late-bound reference to an operation's variable
// declaration, as used by a Variable value inside that operation.
type NamedVariableRef struct {
	Name string
	Loc  position.SourceLocation
}

// VariableMap maps the variables declared by a single operation to their
// declarations, keyed by variable name (without the leading "$").
type VariableMap map[string]*VariableDefinition

// Deref resolves the reference against m.
func (r NamedVariableRef) Deref(m VariableMap) (*VariableDefinition, error) {
	v, ok := m[r.Name]
	if !ok {
		return nil, &DanglingReferenceError{Kind: "variable", Name: r.Name, Loc: r.Loc}
	}
	return v, nil
}

// NamedFragmentRef is a late-bound reference to a fragment definition, as
// used by a "...Name" fragment spread.
type NamedFragmentRef struct {
	Name string
	Loc  position.SourceLocation
}

// FragmentMap maps fragment names to their definitions within a single
// executable document.
type FragmentMap map[string]*FragmentDefinition

// Deref resolves the reference against m.
func (r NamedFragmentRef) Deref(m FragmentMap) (*FragmentDefinition, error) {
	f, ok := m[r.Name]
	if !ok {
		return nil, &DanglingReferenceError{Kind: "fragment", Name: r.Name, Loc: r.Loc}
	}
	return f, nil
}
