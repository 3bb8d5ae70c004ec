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
	"strings"

	"github.com/hexgql/schema/graphql/ast"
	"github.com/hexgql/schema/graphql/position"
)

// locFunc wraps a bare position.Span into the SourceLocation variant
// appropriate for whatever source is currently being loaded (a named
// schema file vs. an in-memory/synthetic string).
type locFunc func(position.Span) position.SourceLocation

func convertDescription(d *ast.StringValue) Description {
	if d == nil {
		return Description{}
	}
	return Description{Text: d.Value, HasText: true}
}

func convertDirectives(ds ast.Directives, loc locFunc) []*AppliedDirective {
	if len(ds) == 0 {
		return nil
	}
	out := make([]*AppliedDirective, len(ds))
	for i, d := range ds {
		args := make([]ObjectField, len(d.Arguments))
		for j, a := range d.Arguments {
			args[j] = ObjectField{Name: a.Name.Value, Value: ValueFromAST(a.Value)}
		}
		out[i] = &AppliedDirective{
			Ref:       NamedDirectiveRef{Name: d.Name.Value, Loc: loc(d.Name.NameSpan)},
			Arguments: args,
			Location:  loc(d.DirSpan),
		}
	}
	return out
}

func convertArguments(defs []*ast.InputValueDefinition, loc locFunc) []*Argument {
	if len(defs) == 0 {
		return nil
	}
	out := make([]*Argument, len(defs))
	for i, d := range defs {
		out[i] = &Argument{
			Name:         d.Name.Value,
			Desc:         convertDescription(d.Description),
			Type:         TypeAnnotationFromAST(d.Type, loc),
			DefaultValue: valueOrNil(d.DefaultValue),
			Directives:   convertDirectives(d.Directives, loc),
			Location:     loc(d.Name.NameSpan),
		}
	}
	return out
}

func valueOrNil(v ast.Value) Value {
	if v == nil {
		return nil
	}
	return ValueFromAST(v)
}

func convertFields(defs []*ast.FieldDefinition, loc locFunc) []*Field {
	if len(defs) == 0 {
		return nil
	}
	out := make([]*Field, len(defs))
	for i, d := range defs {
		out[i] = &Field{
			Name:       d.Name.Value,
			Desc:       convertDescription(d.Description),
			Arguments:  convertArguments(d.Arguments, loc),
			Type:       TypeAnnotationFromAST(d.Type, loc),
			Directives: convertDirectives(d.Directives, loc),
			Location:   loc(d.Name.NameSpan),
		}
	}
	return out
}

func convertEnumValues(defs []*ast.EnumValueDefinition, loc locFunc) []*EnumValue {
	if len(defs) == 0 {
		return nil
	}
	out := make([]*EnumValue, len(defs))
	for i, d := range defs {
		out[i] = &EnumValue{
			Name:       d.Name.Value,
			Desc:       convertDescription(d.Description),
			Directives: convertDirectives(d.Directives, loc),
			Location:   loc(d.Name.NameSpan),
		}
	}
	return out
}

func convertImplements(names []ast.Name, loc locFunc) []NamedTypeRef {
	if len(names) == 0 {
		return nil
	}
	out := make([]NamedTypeRef, len(names))
	for i, n := range names {
		out[i] = NamedTypeRef{Name: n.Value, Loc: loc(n.NameSpan)}
	}
	return out
}

func convertMembers(names []ast.Name, loc locFunc) []NamedTypeRef {
	return convertImplements(names, loc)
}

// typenameField is the implicit "__typename: String!" field injected on
// every object and interface type at definition time. Its location is
// always position.BuiltIn: it was never written in any source.
func typenameField() *Field {
	return &Field{
		Name: "__typename",
		Type: NamedType{
			Ref:        NamedTypeRef{Name: ScalarString, Loc: position.BuiltIn},
			IsNullable: false,
		},
		Location: position.BuiltIn,
	}
}

// isDunderPrefixed reports whether name begins with "__", the prefix
// this rule reserves for GraphQL introspection.
func isDunderPrefixed(name string) bool {
	return strings.HasPrefix(name, "__")
}
