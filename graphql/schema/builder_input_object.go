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

// inputObjectBuilder accumulates "input Name { fields }" definitions.
// Merge rule: concatenate directives; merge fields rejecting
// duplicates. Field names beginning with "__" are rejected at this stage
// (rather than only at the general dunder check) because input-object
// fields are never routed through the same FieldDefinition path as
// object/interface fields.
type inputObjectBuilder struct {
	pending    map[string][]*ast.InputObjectTypeExtension
	pendingLoc map[string][]locFunc
}

var _ typeBuilder = (*inputObjectBuilder)(nil)

func newInputObjectBuilder() *inputObjectBuilder {
	return &inputObjectBuilder{
		pending:    make(map[string][]*ast.InputObjectTypeExtension),
		pendingLoc: make(map[string][]locFunc),
	}
}

func (b *inputObjectBuilder) visitTypeDef(m *TypeMap, loc locFunc, def ast.Definition) error {
	d := def.(*ast.InputObjectTypeDefinition)
	name := d.Name.Value
	defLoc := loc(d.Name.NameSpan)
	if existing, ok := m.Lookup(name); ok {
		return errDuplicateTypeDefinition(name, existing.DefLocation(), defLoc)
	}
	if isDunderPrefixed(name) {
		return errInvalidDunderPrefixed(diag.CodeInvalidDunderPrefixedTypeName, "type", name, defLoc)
	}
	fields := convertArguments(d.Fields, loc)
	if err := checkInputFieldNames(name, fields); err != nil {
		return err
	}
	m.add(&InputObjectType{
		Name:       name,
		Desc:       convertDescription(d.Description),
		Fields:     fields,
		Directives: convertDirectives(d.Directives, loc),
		Location:   defLoc,
	})
	return nil
}

func checkInputFieldNames(typeName string, fields []*Argument) error {
	seen := make(map[string]*Argument, len(fields))
	for _, f := range fields {
		if isDunderPrefixed(f.Name) {
			return errInvalidDunderPrefixed(diag.CodeInvalidDunderPrefixedFieldName, "field", typeName+"."+f.Name, f.Location)
		}
		if existing, ok := seen[f.Name]; ok {
			return errDuplicateFieldNameDefinition(typeName, f.Name, existing.Location, f.Location)
		}
		seen[f.Name] = f
	}
	return nil
}

func (b *inputObjectBuilder) visitTypeExtension(m *TypeMap, loc locFunc, ext ast.Definition) error {
	e := ext.(*ast.InputObjectTypeExtension)
	name := e.Name.Value
	existing, ok := m.Lookup(name)
	if !ok {
		b.pending[name] = append(b.pending[name], e)
		b.pendingLoc[name] = append(b.pendingLoc[name], loc)
		return nil
	}
	io, ok := existing.(*InputObjectType)
	if !ok {
		return errInvalidExtensionType(name, existing.TypeKind(), loc(e.DefSpan))
	}
	return mergeInputObjectExtension(io, e, loc)
}

func mergeInputObjectExtension(io *InputObjectType, e *ast.InputObjectTypeExtension, loc locFunc) error {
	newFields := convertArguments(e.Fields, loc)
	for _, nf := range newFields {
		if isDunderPrefixed(nf.Name) {
			return errInvalidDunderPrefixed(diag.CodeInvalidDunderPrefixedFieldName, "field", io.Name+"."+nf.Name, nf.Location)
		}
		if existing, found := findArgument(io.Fields, nf.Name); found {
			return errDuplicateFieldNameDefinition(io.Name, nf.Name, existing.Location, nf.Location)
		}
	}
	io.Fields = append(io.Fields, newFields...)
	io.Directives = append(io.Directives, convertDirectives(e.Directives, loc)...)
	return nil
}

func (b *inputObjectBuilder) finalize(m *TypeMap) []error {
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
			io, ok := existing.(*InputObjectType)
			if !ok {
				errs = append(errs, errInvalidExtensionType(name, existing.TypeKind(), loc(e.DefSpan)))
				continue
			}
			if err := mergeInputObjectExtension(io, e, loc); err != nil {
				errs = append(errs, err)
			}
		}
	}
	return errs
}
