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

// unionBuilder accumulates "union Name = A | B | C" definitions. Merge
// rule: concatenate directives; append members rejecting duplicates. A
// duplicate member's error reports the *original* member's location as
// the first location, not the extension's own location twice.
type unionBuilder struct {
	pending    map[string][]*ast.UnionTypeExtension
	pendingLoc map[string][]locFunc
}

var _ typeBuilder = (*unionBuilder)(nil)

func newUnionBuilder() *unionBuilder {
	return &unionBuilder{
		pending:    make(map[string][]*ast.UnionTypeExtension),
		pendingLoc: make(map[string][]locFunc),
	}
}

func (b *unionBuilder) visitTypeDef(m *TypeMap, loc locFunc, def ast.Definition) error {
	d := def.(*ast.UnionTypeDefinition)
	name := d.Name.Value
	defLoc := loc(d.Name.NameSpan)
	if existing, ok := m.Lookup(name); ok {
		return errDuplicateTypeDefinition(name, existing.DefLocation(), defLoc)
	}
	if isDunderPrefixed(name) {
		return errInvalidDunderPrefixed(diag.CodeInvalidDunderPrefixedTypeName, "type", name, defLoc)
	}
	members := convertMembers(d.Members, loc)
	if err := checkUniqueMembers(name, members); err != nil {
		return err
	}
	m.add(&UnionType{
		Name:       name,
		Desc:       convertDescription(d.Description),
		Members:    members,
		Directives: convertDirectives(d.Directives, loc),
		Location:   defLoc,
	})
	return nil
}

func checkUniqueMembers(unionName string, members []NamedTypeRef) error {
	seen := make(map[string]NamedTypeRef, len(members))
	for _, m := range members {
		if existing, ok := seen[m.Name]; ok {
			return errDuplicatedUnionMember(unionName, m.Name, existing.Loc, m.Loc)
		}
		seen[m.Name] = m
	}
	return nil
}

func (b *unionBuilder) visitTypeExtension(m *TypeMap, loc locFunc, ext ast.Definition) error {
	e := ext.(*ast.UnionTypeExtension)
	name := e.Name.Value
	existing, ok := m.Lookup(name)
	if !ok {
		b.pending[name] = append(b.pending[name], e)
		b.pendingLoc[name] = append(b.pendingLoc[name], loc)
		return nil
	}
	u, ok := existing.(*UnionType)
	if !ok {
		return errInvalidExtensionType(name, existing.TypeKind(), loc(e.DefSpan))
	}
	return mergeUnionExtension(u, e, loc)
}

func mergeUnionExtension(u *UnionType, e *ast.UnionTypeExtension, loc locFunc) error {
	var dupErr error
	u.Members = dedupeRefs(u.Members, convertMembers(e.Members, loc), func(existing, dup NamedTypeRef) {
		if dupErr == nil {
			dupErr = errDuplicatedUnionMember(u.Name, dup.Name, existing.Loc, dup.Loc)
		}
	})
	u.Directives = append(u.Directives, convertDirectives(e.Directives, loc)...)
	return dupErr
}

func (b *unionBuilder) finalize(m *TypeMap) []error {
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
			u, ok := existing.(*UnionType)
			if !ok {
				errs = append(errs, errInvalidExtensionType(name, existing.TypeKind(), loc(e.DefSpan)))
				continue
			}
			if err := mergeUnionExtension(u, e, loc); err != nil {
				errs = append(errs, err)
			}
		}
	}
	return errs
}
