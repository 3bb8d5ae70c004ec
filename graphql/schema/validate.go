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
	"fmt"

	"github.com/hexgql/schema/graphql/position"
	"github.com/hexgql/schema/internal/util"
)

// validateSchema runs every cross-type validator over the fully-merged
// TypeMap and DirectiveMap, and collects every error rather than
// stopping at the first. Iteration is in TypeMap insertion order, for
// deterministic error ordering.
func validateSchema(tm *TypeMap, dm *DirectiveMap) []error {
	var errs []error
	typeNames := tm.order

	for _, t := range tm.All() {
		switch v := t.(type) {
		case *ObjectType:
			errs = append(errs, validateFieldsAndArgs(v.Name, KindObject, v.Fields, tm, typeNames)...)
			errs = append(errs, validateImplements(v.Name, v.Interfaces, v.Fields, tm)...)
			errs = append(errs, validateDirectiveRepeats(fmt.Sprintf("type %q", v.Name), v.Directives, dm)...)
		case *InterfaceType:
			errs = append(errs, validateFieldsAndArgs(v.Name, KindInterface, v.Fields, tm, typeNames)...)
			errs = append(errs, validateImplements(v.Name, v.Interfaces, v.Fields, tm)...)
			errs = append(errs, validateDirectiveRepeats(fmt.Sprintf("interface %q", v.Name), v.Directives, dm)...)
		case *UnionType:
			errs = append(errs, validateUnionMembers(v, tm)...)
			errs = append(errs, validateDirectiveRepeats(fmt.Sprintf("union %q", v.Name), v.Directives, dm)...)
		case *InputObjectType:
			errs = append(errs, validateInputObjectFields(v, tm, typeNames)...)
			errs = append(errs, validateDirectiveRepeats(fmt.Sprintf("input object %q", v.Name), v.Directives, dm)...)
		case *EnumType:
			errs = append(errs, validateDirectiveRepeats(fmt.Sprintf("enum %q", v.Name), v.Directives, dm)...)
		}
	}

	errs = append(errs, validateInputObjectCycles(tm)...)

	return errs
}

// resolveInnermost follows a TypeAnnotation down to its innermost named
// type and looks it up, returning an UndefinedTypeName error (with
// edit-distance suggestions from util.SuggestionList) if the name isn't
// defined.
func resolveInnermost(ann TypeAnnotation, tm *TypeMap, allNames []string) (Type, error) {
	ref := InnermostRef(ann)
	if ref.Name == "" {
		return nil, nil
	}
	t, ok := tm.Lookup(ref.Name)
	if !ok {
		return nil, errUndefinedTypeName(ref.Name, ref.Loc, util.SuggestionList(ref.Name, allNames))
	}
	return t, nil
}

// validateFieldsAndArgs checks field types are output types;
// parameter types are input types and every reachable
// NamedTypeRef resolves for one object/interface's field list.
func validateFieldsAndArgs(ownerName string, ownerKind Kind, fields []*Field, tm *TypeMap, allNames []string) []error {
	var errs []error
	for _, f := range fields {
		t, err := resolveInnermost(f.Type, tm, allNames)
		if err != nil {
			errs = append(errs, err)
		} else if t != nil && !t.IsOutputType() {
			errs = append(errs, errInvalidOutputFieldWithInputType(ownerName, f.Name, t.TypeName(), f.Location))
		}
		for _, arg := range f.Arguments {
			at, err := resolveInnermost(arg.Type, tm, allNames)
			if err != nil {
				errs = append(errs, err)
			} else if at != nil && !at.IsInputType() {
				errs = append(errs, errInvalidParameterWithOutputOnlyType(ownerName+"."+f.Name, arg.Name, at.TypeName(), arg.Location))
			}
		}
	}
	return errs
}

// validateImplements enforces five implements-matching rules.
func validateImplements(typeName string, implements []NamedTypeRef, fields []*Field, tm *TypeMap) []error {
	var errs []error
	for _, ref := range implements {
		t, ok := tm.Lookup(ref.Name)
		if !ok {
			errs = append(errs, errImplementsUndefinedInterface(typeName, ref.Name, ref.Loc))
			continue
		}
		iface, ok := t.(*InterfaceType)
		if !ok {
			errs = append(errs, errImplementsNonInterfaceType(typeName, ref.Name, t.TypeKind(), ref.Loc))
			continue
		}

		for _, ifield := range iface.Fields {
			if ifield.Name == "__typename" {
				continue
			}
			field, ok := findField(fields, ifield.Name)
			if !ok {
				errs = append(errs, errMissingInterfaceSpecifiedField(typeName, iface.Name, ifield.Name, refLocOf(implements, ref.Name)))
				continue
			}
			if !IsSubtypeOf(field.Type, ifield.Type) {
				errs = append(errs, errInvalidInterfaceSpecifiedFieldType(typeName, iface.Name, ifield.Name,
					TypeAnnotationString(field.Type), TypeAnnotationString(ifield.Type), field.Location))
			}
			for _, iarg := range ifield.Arguments {
				arg, ok := findArgument(field.Arguments, iarg.Name)
				if !ok {
					errs = append(errs, errMissingInterfaceSpecifiedFieldParameter(typeName, iface.Name, ifield.Name, iarg.Name, field.Location))
					continue
				}
				if !IsEquivalentTo(arg.Type, iarg.Type) {
					errs = append(errs, errInvalidInterfaceSpecifiedFieldParameterType(typeName, iface.Name, ifield.Name, iarg.Name,
						TypeAnnotationString(arg.Type), TypeAnnotationString(iarg.Type), arg.Location))
				}
			}
			for _, arg := range field.Arguments {
				if _, ok := findArgument(ifield.Arguments, arg.Name); ok {
					continue
				}
				if arg.IsRequired() {
					errs = append(errs, errInvalidRequiredAdditionalParameterOnInterfaceSpecifiedField(typeName, ifield.Name, arg.Name, arg.Location))
				}
			}
		}

		for _, transitive := range iface.Interfaces {
			if !hasImplements(implements, transitive.Name) {
				errs = append(errs, errMissingRecursiveInterfaceImplementation(typeName, transitive.Name,
					[]string{typeName, iface.Name, transitive.Name}, refLocOf(implements, ref.Name)))
			}
		}
	}
	return errs
}

func refLocOf(refs []NamedTypeRef, name string) position.SourceLocation {
	if ref, ok := findRef(refs, name); ok {
		return ref.Loc
	}
	return position.SourceLocation{}
}

func hasImplements(implements []NamedTypeRef, name string) bool {
	_, ok := findRef(implements, name)
	return ok
}

// validateUnionMembers enforces members exist, are object
// types, and are unique (uniqueness is already enforced at build time by
// unionBuilder; this re-checks existence/kind, which can only be known
// once every type is loaded).
func validateUnionMembers(u *UnionType, tm *TypeMap) []error {
	var errs []error
	allNames := tm.order
	for _, ref := range u.Members {
		t, ok := tm.Lookup(ref.Name)
		if !ok {
			errs = append(errs, errUndefinedTypeName(ref.Name, ref.Loc, util.SuggestionList(ref.Name, allNames)))
			continue
		}
		if _, ok := t.(*ObjectType); !ok {
			errs = append(errs, errInvalidUnionMemberTypeKind(u.Name, ref.Name, t.TypeKind(), ref.Loc))
		}
	}
	return errs
}

// validateInputObjectFields enforces input-object field types
// are input types and reachable refs resolve for a single
// input-object's own field list. Invariant 9 (acyclicity) is validated
// globally in validateInputObjectCycles, since it requires seeing the
// whole graph at once.
func validateInputObjectFields(io *InputObjectType, tm *TypeMap, allNames []string) []error {
	var errs []error
	for _, f := range io.Fields {
		t, err := resolveInnermost(f.Type, tm, allNames)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if t != nil && !t.IsInputType() {
			errs = append(errs, errInvalidInputFieldWithOutputType(io.Name, f.Name, t.TypeName(), f.Location))
		}
	}
	return errs
}

// validateDirectiveRepeats enforces a non-repeatable
// directive annotation appears at most once on any single target.
func validateDirectiveRepeats(ownerDesc string, applied []*AppliedDirective, dm *DirectiveMap) []error {
	var errs []error
	seen := make(map[string]bool)
	for _, d := range applied {
		if seen[d.Ref.Name] {
			continue
		}
		def, ok := dm.Lookup(d.Ref.Name)
		if !ok || def.Repeatable {
			continue
		}
		if CountByName(applied, d.Ref.Name) > 1 {
			errs = append(errs, errRepeatedNonRepeatableDirective(ownerDesc, d.Ref.Name, d.Location))
		}
		seen[d.Ref.Name] = true
	}
	return errs
}
