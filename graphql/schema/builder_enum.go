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

// enumBuilder accumulates "enum Name { VALUES }" definitions. Merge rule:
// concatenate directives; merge values, rejecting duplicates. The error for
// a duplicate carries the two conflicting value locations; the enum type's
// own definition location is not included.
type enumBuilder struct {
	pending    map[string][]*ast.EnumTypeExtension
	pendingLoc map[string][]locFunc
}

var _ typeBuilder = (*enumBuilder)(nil)

func newEnumBuilder() *enumBuilder {
	return &enumBuilder{
		pending:    make(map[string][]*ast.EnumTypeExtension),
		pendingLoc: make(map[string][]locFunc),
	}
}

func (b *enumBuilder) visitTypeDef(m *TypeMap, loc locFunc, def ast.Definition) error {
	d := def.(*ast.EnumTypeDefinition)
	name := d.Name.Value
	defLoc := loc(d.Name.NameSpan)
	if existing, ok := m.Lookup(name); ok {
		return errDuplicateTypeDefinition(name, existing.DefLocation(), defLoc)
	}
	if isDunderPrefixed(name) {
		return errInvalidDunderPrefixed(diag.CodeInvalidDunderPrefixedTypeName, "type", name, defLoc)
	}
	if len(d.Values) == 0 {
		return errEnumWithNoVariants(name, defLoc)
	}
	values := convertEnumValues(d.Values, loc)
	if err := checkUniqueEnumValues(name, values); err != nil {
		return err
	}
	m.add(&EnumType{
		Name:       name,
		Desc:       convertDescription(d.Description),
		Values:     values,
		Directives: convertDirectives(d.Directives, loc),
		Location:   defLoc,
	})
	return nil
}

func checkUniqueEnumValues(typeName string, values []*EnumValue) error {
	seen := make(map[string]*EnumValue, len(values))
	for _, v := range values {
		if existing, ok := seen[v.Name]; ok {
			return errDuplicateEnumValueDefinition(typeName, v.Name, existing.Location, v.Location)
		}
		seen[v.Name] = v
	}
	return nil
}

func (b *enumBuilder) visitTypeExtension(m *TypeMap, loc locFunc, ext ast.Definition) error {
	e := ext.(*ast.EnumTypeExtension)
	name := e.Name.Value
	existing, ok := m.Lookup(name)
	if !ok {
		b.pending[name] = append(b.pending[name], e)
		b.pendingLoc[name] = append(b.pendingLoc[name], loc)
		return nil
	}
	en, ok := existing.(*EnumType)
	if !ok {
		return errInvalidExtensionType(name, existing.TypeKind(), loc(e.DefSpan))
	}
	return mergeEnumExtension(en, e, loc)
}

func mergeEnumExtension(en *EnumType, e *ast.EnumTypeExtension, loc locFunc) error {
	newValues := convertEnumValues(e.Values, loc)
	for _, nv := range newValues {
		if existing, found := findEnumValue(en.Values, nv.Name); found {
			return errDuplicateEnumValueDefinition(en.Name, nv.Name, existing.Location, nv.Location)
		}
	}
	en.Values = append(en.Values, newValues...)
	en.Directives = append(en.Directives, convertDirectives(e.Directives, loc)...)
	return nil
}

func (b *enumBuilder) finalize(m *TypeMap) []error {
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
			en, ok := existing.(*EnumType)
			if !ok {
				errs = append(errs, errInvalidExtensionType(name, existing.TypeKind(), loc(e.DefSpan)))
				continue
			}
			if err := mergeEnumExtension(en, e, loc); err != nil {
				errs = append(errs, err)
			}
		}
	}
	return errs
}
