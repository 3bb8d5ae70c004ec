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

// interfaceBuilder mirrors objectBuilder: same merge rules, same injected
// __typename field, different target Go type and self-implementing check.
type interfaceBuilder struct {
	pending    map[string][]*ast.InterfaceTypeExtension
	pendingLoc map[string][]locFunc
}

var _ typeBuilder = (*interfaceBuilder)(nil)

func newInterfaceBuilder() *interfaceBuilder {
	return &interfaceBuilder{
		pending:    make(map[string][]*ast.InterfaceTypeExtension),
		pendingLoc: make(map[string][]locFunc),
	}
}

func (b *interfaceBuilder) visitTypeDef(m *TypeMap, loc locFunc, def ast.Definition) error {
	d := def.(*ast.InterfaceTypeDefinition)
	name := d.Name.Value
	defLoc := loc(d.Name.NameSpan)
	if existing, ok := m.Lookup(name); ok {
		return errDuplicateTypeDefinition(name, existing.DefLocation(), defLoc)
	}
	if isDunderPrefixed(name) {
		return errInvalidDunderPrefixed(diag.CodeInvalidDunderPrefixedTypeName, "type", name, defLoc)
	}
	for _, iface := range d.Implements {
		if iface.Value == name {
			return errInvalidSelfImplementingInterface(name, loc(iface.NameSpan))
		}
	}
	fields := append([]*Field{typenameField()}, convertFields(d.Fields, loc)...)
	if err := checkFieldNames(name, fields); err != nil {
		return err
	}
	m.add(&InterfaceType{
		Name:       name,
		Desc:       convertDescription(d.Description),
		Interfaces: convertImplements(d.Implements, loc),
		Fields:     fields,
		Directives: convertDirectives(d.Directives, loc),
		Location:   defLoc,
	})
	return nil
}

func (b *interfaceBuilder) visitTypeExtension(m *TypeMap, loc locFunc, ext ast.Definition) error {
	e := ext.(*ast.InterfaceTypeExtension)
	name := e.Name.Value
	existing, ok := m.Lookup(name)
	if !ok {
		b.pending[name] = append(b.pending[name], e)
		b.pendingLoc[name] = append(b.pendingLoc[name], loc)
		return nil
	}
	iface, ok := existing.(*InterfaceType)
	if !ok {
		return errInvalidExtensionType(name, existing.TypeKind(), loc(e.DefSpan))
	}
	return mergeInterfaceExtension(iface, e, loc)
}

func mergeInterfaceExtension(iface *InterfaceType, e *ast.InterfaceTypeExtension, loc locFunc) error {
	for _, i := range e.Implements {
		if i.Value == iface.Name {
			return errInvalidSelfImplementingInterface(iface.Name, loc(i.NameSpan))
		}
	}
	newFields := convertFields(e.Fields, loc)
	for _, nf := range newFields {
		if existing, found := findField(iface.Fields, nf.Name); found {
			return errDuplicateFieldNameDefinition(iface.Name, nf.Name, existing.Location, nf.Location)
		}
	}
	iface.Fields = append(iface.Fields, newFields...)
	iface.Directives = append(iface.Directives, convertDirectives(e.Directives, loc)...)
	var dupErr error
	iface.Interfaces = dedupeRefs(iface.Interfaces, convertImplements(e.Implements, loc), func(existing, dup NamedTypeRef) {
		if dupErr == nil {
			dupErr = errDuplicateInterfaceImplementsDeclaration(iface.Name, dup.Name, existing.Loc, dup.Loc)
		}
	})
	return dupErr
}

func (b *interfaceBuilder) finalize(m *TypeMap) []error {
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
			iface, ok := existing.(*InterfaceType)
			if !ok {
				errs = append(errs, errInvalidExtensionType(name, existing.TypeKind(), loc(e.DefSpan)))
				continue
			}
			if err := mergeInterfaceExtension(iface, e, loc); err != nil {
				errs = append(errs, err)
			}
		}
	}
	return errs
}
