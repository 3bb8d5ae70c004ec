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

import "github.com/hexgql/schema/graphql/position"

// Directive is a directive definition: "directive @name(args) [repeatable]
// on LOCATIONS".
type Directive struct {
	Name       string
	Desc       Description
	Arguments  []*Argument
	Repeatable bool
	Locations  []string
	Location   position.SourceLocation
	BuiltIn    bool
}

// ArgByName returns the named argument, or nil.
func (d *Directive) ArgByName(name string) *Argument {
	for _, a := range d.Arguments {
		if a.Name == name {
			return a
		}
	}
	return nil
}

// DirectiveMap owns every directive definition in a schema, keyed by
// name. The four built-ins (@skip, @include, @deprecated, @specifiedBy)
// are always present once a schema is built and may never be redefined.
type DirectiveMap struct {
	byName map[string]*Directive
	order  []string
}

// NewDirectiveMap creates an empty DirectiveMap.
func NewDirectiveMap() *DirectiveMap {
	return &DirectiveMap{byName: make(map[string]*Directive)}
}

// Lookup returns the named directive, if present.
func (m *DirectiveMap) Lookup(name string) (*Directive, bool) {
	d, ok := m.byName[name]
	return d, ok
}

// Add registers d, keyed by d.Name. Callers are responsible for rejecting
// duplicates before calling Add (the builder does this, since only it has
// the two conflicting locations to report).
func (m *DirectiveMap) Add(d *Directive) {
	if _, exists := m.byName[d.Name]; !exists {
		m.order = append(m.order, d.Name)
	}
	m.byName[d.Name] = d
}

// All returns every directive in insertion order, for a deterministic
// iteration order.
func (m *DirectiveMap) All() []*Directive {
	out := make([]*Directive, len(m.order))
	for i, name := range m.order {
		out[i] = m.byName[name]
	}
	return out
}

// Built-in directive names: these four are always present in every
// schema and may never be redefined by user directive definitions.
const (
	DirectiveSkip        = "skip"
	DirectiveInclude     = "include"
	DirectiveDeprecated  = "deprecated"
	DirectiveSpecifiedBy = "specifiedBy"
)

// builtinDirectiveNames is the immutable, one-time-initialized set the
// four built-in directive names are checked against.
var builtinDirectiveNames = map[string]struct{}{
	DirectiveSkip:        {},
	DirectiveInclude:     {},
	DirectiveDeprecated:  {},
	DirectiveSpecifiedBy: {},
}

// IsBuiltinDirectiveName reports whether name is one of the four
// always-present built-in directives.
func IsBuiltinDirectiveName(name string) bool {
	_, ok := builtinDirectiveNames[name]
	return ok
}

func boolArg(name string) *Argument {
	return &Argument{
		Name:     name,
		Type:     NamedType{Ref: NamedTypeRef{Name: "Boolean", Loc: position.BuiltIn}, IsNullable: false},
		Location: position.BuiltIn,
	}
}

func stringArg(name string, nullable bool) *Argument {
	return &Argument{
		Name:     name,
		Type:     NamedType{Ref: NamedTypeRef{Name: "String", Loc: position.BuiltIn}, IsNullable: nullable},
		Location: position.BuiltIn,
	}
}

// builtinDirectives constructs fresh Directive values for the four
// always-present directives. Called once per Builder so concurrently
// building schemas never share mutable state.
func builtinDirectives() []*Directive {
	return []*Directive{
		{
			Name:      DirectiveSkip,
			Desc:      Description{Text: "Directs the executor to skip this field or fragment when the `if` argument is true.", HasText: true},
			Arguments: []*Argument{boolArg("if")},
			Locations: []string{"FIELD", "FRAGMENT_SPREAD", "INLINE_FRAGMENT"},
			Location:  position.BuiltIn,
			BuiltIn:   true,
		},
		{
			Name:      DirectiveInclude,
			Desc:      Description{Text: "Directs the executor to include this field or fragment only when the `if` argument is true.", HasText: true},
			Arguments: []*Argument{boolArg("if")},
			Locations: []string{"FIELD", "FRAGMENT_SPREAD", "INLINE_FRAGMENT"},
			Location:  position.BuiltIn,
			BuiltIn:   true,
		},
		{
			Name:      DirectiveDeprecated,
			Desc:      Description{Text: "Marks an element of a GraphQL schema as no longer supported.", HasText: true},
			Arguments: []*Argument{stringArg("reason", true)},
			Locations: []string{"FIELD_DEFINITION", "ARGUMENT_DEFINITION", "INPUT_FIELD_DEFINITION", "ENUM_VALUE"},
			Location:  position.BuiltIn,
			BuiltIn:   true,
		},
		{
			Name:      DirectiveSpecifiedBy,
			Desc:      Description{Text: "Provides a scalar specification URL for specifying the behavior of custom scalar types.", HasText: true},
			Arguments: []*Argument{stringArg("url", false)},
			Locations: []string{"SCALAR"},
			Location:  position.BuiltIn,
			BuiltIn:   true,
		},
	}
}
