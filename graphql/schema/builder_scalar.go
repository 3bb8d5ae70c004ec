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
	"github.com/hexgql/schema/graphql/diag"
)

// scalarBuilder accumulates "scalar Name" definitions and "extend scalar
// Name" extensions. Scalar merges only concatenate directives: there is
// no field/member list to reconcile.
type scalarBuilder struct {
	pending    map[string][]*ast.ScalarTypeExtension
	pendingLoc map[string][]locFunc
}

var _ typeBuilder = (*scalarBuilder)(nil)

func newScalarBuilder() *scalarBuilder {
	return &scalarBuilder{
		pending:    make(map[string][]*ast.ScalarTypeExtension),
		pendingLoc: make(map[string][]locFunc),
	}
}

func (b *scalarBuilder) visitTypeDef(m *TypeMap, loc locFunc, def ast.Definition) error {
	d := def.(*ast.ScalarTypeDefinition)
	name := d.Name.Value
	defLoc := loc(d.Name.NameSpan)
	if existing, ok := m.Lookup(name); ok {
		return errDuplicateTypeDefinition(name, existing.DefLocation(), defLoc)
	}
	if isDunderPrefixed(name) {
		return errInvalidDunderPrefixed(diag.CodeInvalidDunderPrefixedTypeName, "type", name, defLoc)
	}
	m.add(&ScalarType{
		Name:       name,
		Desc:       convertDescription(d.Description),
		Directives: convertDirectives(d.Directives, loc),
		Location:   defLoc,
	})
	return nil
}

func (b *scalarBuilder) visitTypeExtension(m *TypeMap, loc locFunc, ext ast.Definition) error {
	e := ext.(*ast.ScalarTypeExtension)
	name := e.Name.Value
	existing, ok := m.Lookup(name)
	if !ok {
		b.pending[name] = append(b.pending[name], e)
		b.pendingLoc[name] = append(b.pendingLoc[name], loc)
		return nil
	}
	sc, ok := existing.(*ScalarType)
	if !ok {
		return errInvalidExtensionType(name, existing.TypeKind(), loc(e.DefSpan))
	}
	sc.Directives = append(sc.Directives, convertDirectives(e.Directives, loc)...)
	return nil
}

func (b *scalarBuilder) finalize(m *TypeMap) []error {
	var errs []error
	for name, exts := range b.pending {
		locs := b.pendingLoc[name]
		for i, e := range exts {
			loc := locs[i]
			existing, ok := m.Lookup(name)
			if !ok {
				errs = append(errs, errExtensionOfUndefinedType(name, loc(e.DefSpan)))
				continue
			}
			sc, ok := existing.(*ScalarType)
			if !ok {
				errs = append(errs, errInvalidExtensionType(name, existing.TypeKind(), loc(e.DefSpan)))
				continue
			}
			sc.Directives = append(sc.Directives, convertDirectives(e.Directives, loc)...)
		}
	}
	return errs
}
