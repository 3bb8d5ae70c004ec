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
	"github.com/hexgql/schema/graphql/parser"
	"github.com/hexgql/schema/graphql/position"
)

// VariableDefinition declares a variable accepted by an operation, the
// schema-level mirror of ast.VariableDefinition with a resolvable Type.
type VariableDefinition struct {
	Name         string
	Type         TypeAnnotation
	DefaultValue Value
	Directives   []*AppliedDirective
	Location     position.SourceLocation
}

// FragmentDefinition is "fragment Name on TypeCondition { selections }".
type FragmentDefinition struct {
	Name          string
	TypeCondition NamedTypeRef
	Directives    []*AppliedDirective
	SelectionSet  *SelectionSet
	Location      position.SourceLocation
}

// Selection is a FieldSelection, FragmentSpreadSelection, or
// InlineFragmentSelection.
type Selection interface {
	selectionNode()
}

// SelectionSet is the braced list of selections requested by an operation
// or fragment.
type SelectionSet struct {
	Selections []Selection
}

// FieldSelection selects a single field, optionally aliased.
type FieldSelection struct {
	Alias        string
	Name         string
	Arguments    []ObjectField
	Directives   []*AppliedDirective
	SelectionSet *SelectionSet
	Location     position.SourceLocation
}

func (*FieldSelection) selectionNode() {}

// ResponseName is the key this field will occupy in a response.
func (f *FieldSelection) ResponseName() string {
	if f.Alias != "" {
		return f.Alias
	}
	return f.Name
}

// FragmentSpreadSelection references a named fragment, "...Name".
type FragmentSpreadSelection struct {
	Ref        NamedFragmentRef
	Directives []*AppliedDirective
	Location   position.SourceLocation
}

func (*FragmentSpreadSelection) selectionNode() {}

// InlineFragmentSelection is "... [on TypeCondition] { selections }".
type InlineFragmentSelection struct {
	TypeCondition *NamedTypeRef
	Directives    []*AppliedDirective
	SelectionSet  *SelectionSet
	Location      position.SourceLocation
}

func (*InlineFragmentSelection) selectionNode() {}

// OperationDefinition is a query/mutation/subscription, or the shorthand
// anonymous-query form, carried against the schema it was loaded for.
type OperationDefinition struct {
	Type          ast.OperationType
	Name          string
	Variables     VariableMap
	VariableOrder []string
	Directives    []*AppliedDirective
	SelectionSet  *SelectionSet
	Location      position.SourceLocation
}

// ExecutableDocument is the result of loading an executable document
// against a *Schema: every operation and fragment it declared, with
// fragment spreads and variable references left as NamedRefs resolvable
// via Fragments/the owning operation's Variables.
type ExecutableDocument struct {
	Operations    []*OperationDefinition
	Fragments     FragmentMap
	FragmentOrder []string
}

// LoadExecutableDocument parses src as an executable document (operations
// and fragments) and converts it into the schema package's resolvable
// model. The returned document's fragment spreads and variable uses are
// left as NamedRefs; call ExecutableDocument.ResolveReferences to confirm
// every one of them resolves.
func (s *Schema) LoadExecutableDocument(src, name string) (*ExecutableDocument, error) {
	result := parser.ParseExecutableDocument(src, name)
	if result.HasErrors() || result.Document == nil {
		return nil, &ParseError{File: name, Errors: result.Errors}
	}

	loc := func(span position.Span) position.SourceLocation {
		return position.OperationFile(span)
	}
	if name == "" {
		loc = func(span position.Span) position.SourceLocation {
			return position.SchemaString(span)
		}
	}

	doc := &ExecutableDocument{Fragments: make(FragmentMap)}

	for _, def := range result.Document.Definitions {
		if fd, ok := def.(*ast.FragmentDefinition); ok {
			converted := convertFragmentDefinition(fd, loc)
			if _, exists := doc.Fragments[converted.Name]; !exists {
				doc.FragmentOrder = append(doc.FragmentOrder, converted.Name)
			}
			doc.Fragments[converted.Name] = converted
		}
	}

	for _, def := range result.Document.Definitions {
		if od, ok := def.(*ast.OperationDefinition); ok {
			doc.Operations = append(doc.Operations, convertOperationDefinition(od, loc))
		}
	}

	return doc, nil
}

func convertFragmentDefinition(fd *ast.FragmentDefinition, loc locFunc) *FragmentDefinition {
	return &FragmentDefinition{
		Name:          fd.Name.Value,
		TypeCondition: NamedTypeRef{Name: fd.TypeCondition.Value, Loc: loc(fd.TypeCondition.NameSpan)},
		Directives:    convertDirectives(fd.Directives, loc),
		SelectionSet:  convertSelectionSet(fd.SelectionSet, loc),
		Location:      loc(fd.DefSpan),
	}
}

func convertOperationDefinition(od *ast.OperationDefinition, loc locFunc) *OperationDefinition {
	opType := od.Type
	if od.Shorthand {
		opType = ast.OperationTypeQuery
	}
	vars := make(VariableMap, len(od.VariableDefinitions))
	order := make([]string, 0, len(od.VariableDefinitions))
	for _, vd := range od.VariableDefinitions {
		converted := &VariableDefinition{
			Name:         vd.Variable.Value,
			Type:         TypeAnnotationFromAST(vd.Type, loc),
			DefaultValue: valueOrNil(vd.DefaultValue),
			Directives:   convertDirectives(vd.Directives, loc),
			Location:     loc(vd.Variable.NameSpan),
		}
		vars[converted.Name] = converted
		order = append(order, converted.Name)
	}
	name := ""
	if od.Name != nil {
		name = od.Name.Value
	}
	return &OperationDefinition{
		Type:          opType,
		Name:          name,
		Variables:     vars,
		VariableOrder: order,
		Directives:    convertDirectives(od.Directives, loc),
		SelectionSet:  convertSelectionSet(od.SelectionSet, loc),
		Location:      loc(od.DefSpan),
	}
}

func convertSelectionSet(ss ast.SelectionSet, loc locFunc) *SelectionSet {
	out := &SelectionSet{Selections: make([]Selection, len(ss.Selections))}
	for i, sel := range ss.Selections {
		out.Selections[i] = convertSelection(sel, loc)
	}
	return out
}

func convertSelection(sel ast.Selection, loc locFunc) Selection {
	switch v := sel.(type) {
	case *ast.Field:
		alias := ""
		if v.Alias != nil {
			alias = v.Alias.Value
		}
		args := make([]ObjectField, len(v.Arguments))
		for i, a := range v.Arguments {
			args[i] = ObjectField{Name: a.Name.Value, Value: ValueFromAST(a.Value)}
		}
		var subSet *SelectionSet
		if v.SelectionSet != nil {
			subSet = convertSelectionSet(*v.SelectionSet, loc)
		}
		return &FieldSelection{
			Alias:        alias,
			Name:         v.Name.Value,
			Arguments:    args,
			Directives:   convertDirectives(v.Directives, loc),
			SelectionSet: subSet,
			Location:     loc(v.FieldSpan),
		}
	case *ast.FragmentSpread:
		return &FragmentSpreadSelection{
			Ref:        NamedFragmentRef{Name: v.Name.Value, Loc: loc(v.Name.NameSpan)},
			Directives: convertDirectives(v.Directives, loc),
			Location:   loc(v.SpreadSpan),
		}
	case *ast.InlineFragment:
		var cond *NamedTypeRef
		if v.TypeCondition != nil {
			cond = &NamedTypeRef{Name: v.TypeCondition.Value, Loc: loc(v.TypeCondition.NameSpan)}
		}
		return &InlineFragmentSelection{
			TypeCondition: cond,
			Directives:    convertDirectives(v.Directives, loc),
			SelectionSet:  convertSelectionSet(v.SelectionSet, loc),
			Location:      loc(v.FragSpan),
		}
	}
	return nil
}

// ResolveReferences walks every operation's selections and confirms every
// fragment spread resolves against doc.Fragments and every variable use
// resolves against its operation's declared variables, returning every
// DanglingReferenceError found.
func (doc *ExecutableDocument) ResolveReferences() []error {
	var errs []error
	for _, op := range doc.Operations {
		errs = append(errs, resolveSelectionSetRefs(op.SelectionSet, op.Variables, doc.Fragments, map[string]bool{})...)
	}
	return errs
}

func resolveSelectionSetRefs(ss *SelectionSet, vars VariableMap, frags FragmentMap, visiting map[string]bool) []error {
	if ss == nil {
		return nil
	}
	var errs []error
	for _, sel := range ss.Selections {
		switch v := sel.(type) {
		case *FieldSelection:
			for _, arg := range v.Arguments {
				errs = append(errs, resolveValueVariableRefs(arg.Value, vars)...)
			}
			errs = append(errs, resolveSelectionSetRefs(v.SelectionSet, vars, frags, visiting)...)
		case *FragmentSpreadSelection:
			fd, err := v.Ref.Deref(frags)
			if err != nil {
				errs = append(errs, err)
				continue
			}
			if visiting[fd.Name] {
				continue
			}
			visiting[fd.Name] = true
			errs = append(errs, resolveSelectionSetRefs(fd.SelectionSet, vars, frags, visiting)...)
			delete(visiting, fd.Name)
		case *InlineFragmentSelection:
			errs = append(errs, resolveSelectionSetRefs(v.SelectionSet, vars, frags, visiting)...)
		}
	}
	return errs
}

func resolveValueVariableRefs(v Value, vars VariableMap) []error {
	switch val := v.(type) {
	case VariableRef:
		if _, err := val.Ref.Deref(vars); err != nil {
			return []error{err}
		}
	case ListValue:
		var errs []error
		for _, elem := range val.Values {
			errs = append(errs, resolveValueVariableRefs(elem, vars)...)
		}
		return errs
	case ObjectValue:
		var errs []error
		for _, f := range val.Fields {
			errs = append(errs, resolveValueVariableRefs(f.Value, vars)...)
		}
		return errs
	}
	return nil
}
