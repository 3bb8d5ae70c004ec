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

// objectBuilder accumulates "type Name implements... { fields }"
// definitions and their extensions. Merge rules: concatenate
// directives; merge fields rejecting duplicates; append deduplicated
// implemented interfaces. An implicit "__typename: String!" field is
// injected at definition time.
type objectBuilder struct {
	pending    map[string][]*ast.ObjectTypeExtension
	pendingLoc map[string][]locFunc
}

var _ typeBuilder = (*objectBuilder)(nil)

func newObjectBuilder() *objectBuilder {
	return &objectBuilder{
		pending:    make(map[string][]*ast.ObjectTypeExtension),
		pendingLoc: make(map[string][]locFunc),
	}
}

func (b *objectBuilder) visitTypeDef(m *TypeMap, loc locFunc, def ast.Definition) error {
	d := def.(*ast.ObjectTypeDefinition)
	name := d.Name.Value
	defLoc := loc(d.Name.NameSpan)
	if existing, ok := m.Lookup(name); ok {
		return errDuplicateTypeDefinition(name, existing.DefLocation(), defLoc)
	}
	if isDunderPrefixed(name) {
		return errInvalidDunderPrefixed(diag.CodeInvalidDunderPrefixedTypeName, "type", name, defLoc)
	}
	fields := append([]*Field{typenameField()}, convertFields(d.Fields, loc)...)
	if err := checkFieldNames(name, fields); err != nil {
		return err
	}
	m.add(&ObjectType{
		Name:       name,
		Desc:       convertDescription(d.Description),
		Interfaces: convertImplements(d.Implements, loc),
		Fields:     fields,
		Directives: convertDirectives(d.Directives, loc),
		Location:   defLoc,
	})
	return nil
}

// checkFieldNames verifies no two fields of a single definition share a
// name, no field begins with "__" (other than the injected
// __typename, identified by its GraphQLBuiltIn location), and no
// field's own argument begins with "__".
func checkFieldNames(ownerName string, fields []*Field) error {
	seen := make(map[string]*Field, len(fields))
	for _, f := range fields {
		if isDunderPrefixed(f.Name) && !f.Location.IsBuiltIn() {
			return errInvalidDunderPrefixed(diag.CodeInvalidDunderPrefixedFieldName, "field", ownerName+"."+f.Name, f.Location)
		}
		for _, arg := range f.Arguments {
			if isDunderPrefixed(arg.Name) {
				return errInvalidDunderPrefixed(diag.CodeInvalidDunderPrefixedParamName, "parameter", ownerName+"."+f.Name+"."+arg.Name, arg.Location)
			}
		}
		if existing, ok := seen[f.Name]; ok {
			return errDuplicateFieldNameDefinition(ownerName, f.Name, existing.Location, f.Location)
		}
		seen[f.Name] = f
	}
	return nil
}

func (b *objectBuilder) visitTypeExtension(m *TypeMap, loc locFunc, ext ast.Definition) error {
	e := ext.(*ast.ObjectTypeExtension)
	name := e.Name.Value
	existing, ok := m.Lookup(name)
	if !ok {
		b.pending[name] = append(b.pending[name], e)
		b.pendingLoc[name] = append(b.pendingLoc[name], loc)
		return nil
	}
	obj, ok := existing.(*ObjectType)
	if !ok {
		return errInvalidExtensionType(name, existing.TypeKind(), loc(e.DefSpan))
	}
	return mergeObjectExtension(obj, e, loc)
}

func mergeObjectExtension(obj *ObjectType, e *ast.ObjectTypeExtension, loc locFunc) error {
	newFields := convertFields(e.Fields, loc)
	for _, nf := range newFields {
		if existing, found := findField(obj.Fields, nf.Name); found {
			return errDuplicateFieldNameDefinition(obj.Name, nf.Name, existing.Location, nf.Location)
		}
	}
	obj.Fields = append(obj.Fields, newFields...)
	obj.Directives = append(obj.Directives, convertDirectives(e.Directives, loc)...)
	var dupErr error
	obj.Interfaces = dedupeRefs(obj.Interfaces, convertImplements(e.Implements, loc), func(existing, dup NamedTypeRef) {
		if dupErr == nil {
			dupErr = errDuplicateInterfaceImplementsDeclaration(obj.Name, dup.Name, existing.Loc, dup.Loc)
		}
	})
	return dupErr
}

func (b *objectBuilder) finalize(m *TypeMap) []error {
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
			obj, ok := existing.(*ObjectType)
			if !ok {
				errs = append(errs, errInvalidExtensionType(name, existing.TypeKind(), loc(e.DefSpan)))
				continue
			}
			if err := mergeObjectExtension(obj, e, loc); err != nil {
				errs = append(errs, err)
			}
		}
	}
	return errs
}
