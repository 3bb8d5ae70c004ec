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

// Kind tags the variant a GraphQLType value holds.
type Kind uint8

// Enumeration of Kind.
const (
	KindScalar Kind = iota + 1
	KindObject
	KindInterface
	KindUnion
	KindEnum
	KindInputObject
)

func (k Kind) String() string {
	switch k {
	case KindScalar:
		return "scalar"
	case KindObject:
		return "object"
	case KindInterface:
		return "interface"
	case KindUnion:
		return "union"
	case KindEnum:
		return "enum"
	case KindInputObject:
		return "input object"
	}
	return "unknown"
}

// Type is implemented by every member of the GraphQLType tagged union:
// ScalarType (which covers the five built-ins Boolean/Int/Float/String/ID
// as well as user-defined custom scalars), ObjectType, InterfaceType,
// UnionType, EnumType, InputObjectType.
type Type interface {
	// TypeName returns the type's name, unique across the whole schema.
	TypeName() string
	// TypeKind reports which variant this is.
	TypeKind() Kind
	// DefLocation is where the type was first defined (GraphQLBuiltIn for
	// the five built-in scalars).
	DefLocation() position.SourceLocation
	// IsInputType reports whether values of this type may appear in input
	// position (argument/input-object-field types): scalars and enums are
	// both input and output types; input objects are input-only; object,
	// interface, and union are output-only.
	IsInputType() bool
	// IsOutputType reports whether values of this type may appear in output
	// position (field types).
	IsOutputType() bool
}

// Description holds an optional doc-comment string shared by every typed
// construct (types, fields, arguments, enum values, directives).
type Description struct {
	Text    string
	HasText bool
}

// descriptionText converts an optional description string into a
// Description.
func descriptionText(s *string) Description {
	if s == nil {
		return Description{}
	}
	return Description{Text: *s, HasText: true}
}

// ScalarType is a leaf type identified only by name: the five built-ins
// (Boolean, Int, Float, String, ID) plus any user-defined "scalar Foo".
type ScalarType struct {
	Name        string
	Desc        Description
	Directives  []*AppliedDirective
	Location    position.SourceLocation
	BuiltIn     bool
}

var _ Type = (*ScalarType)(nil)

func (t *ScalarType) TypeName() string                   { return t.Name }
func (t *ScalarType) TypeKind() Kind                      { return KindScalar }
func (t *ScalarType) DefLocation() position.SourceLocation { return t.Location }
func (t *ScalarType) IsInputType() bool                   { return true }
func (t *ScalarType) IsOutputType() bool                  { return true }

// Field is a single field of an ObjectType or InterfaceType.
type Field struct {
	Name        string
	Desc        Description
	Arguments   []*Argument
	Type        TypeAnnotation
	Directives  []*AppliedDirective
	Location    position.SourceLocation
}

// ArgByName returns the named argument, or nil.
func (f *Field) ArgByName(name string) *Argument {
	for _, a := range f.Arguments {
		if a.Name == name {
			return a
		}
	}
	return nil
}

// Argument is a field argument or input-object field: "name: Type =
// default".
type Argument struct {
	Name         string
	Desc         Description
	Type         TypeAnnotation
	DefaultValue Value
	Directives   []*AppliedDirective
	Location     position.SourceLocation
}

// IsRequired reports whether the argument must be supplied: non-null type
// and no default value.
func (a *Argument) IsRequired() bool {
	return a.Type != nil && !a.Type.Nullable() && a.DefaultValue == nil
}

// ObjectType is a concrete, selectable type: "type Name implements I & J {
// fields }".
type ObjectType struct {
	Name       string
	Desc       Description
	Interfaces []NamedTypeRef
	Fields     []*Field
	Directives []*AppliedDirective
	Location   position.SourceLocation
}

var _ Type = (*ObjectType)(nil)

func (t *ObjectType) TypeName() string                   { return t.Name }
func (t *ObjectType) TypeKind() Kind                      { return KindObject }
func (t *ObjectType) DefLocation() position.SourceLocation { return t.Location }
func (t *ObjectType) IsInputType() bool                   { return false }
func (t *ObjectType) IsOutputType() bool                  { return true }

// FieldByName returns the named field, or nil.
func (t *ObjectType) FieldByName(name string) *Field {
	return fieldByName(t.Fields, name)
}

func fieldByName(fields []*Field, name string) *Field {
	for _, f := range fields {
		if f.Name == name {
			return f
		}
	}
	return nil
}

// ImplementsInterface reports whether t declares "implements name".
func (t *ObjectType) ImplementsInterface(name string) bool {
	for _, ref := range t.Interfaces {
		if ref.Name == name {
			return true
		}
	}
	return false
}

// InterfaceType is "interface Name implements... { fields }".
type InterfaceType struct {
	Name       string
	Desc       Description
	Interfaces []NamedTypeRef
	Fields     []*Field
	Directives []*AppliedDirective
	Location   position.SourceLocation
}

var _ Type = (*InterfaceType)(nil)

func (t *InterfaceType) TypeName() string                   { return t.Name }
func (t *InterfaceType) TypeKind() Kind                      { return KindInterface }
func (t *InterfaceType) DefLocation() position.SourceLocation { return t.Location }
func (t *InterfaceType) IsInputType() bool                   { return false }
func (t *InterfaceType) IsOutputType() bool                  { return true }

// FieldByName returns the named field, or nil.
func (t *InterfaceType) FieldByName(name string) *Field {
	return fieldByName(t.Fields, name)
}

// ImplementsInterface reports whether t declares "implements name".
func (t *InterfaceType) ImplementsInterface(name string) bool {
	for _, ref := range t.Interfaces {
		if ref.Name == name {
			return true
		}
	}
	return false
}

// UnionType is "union Name = A | B | C"; members must be ObjectTypes.
type UnionType struct {
	Name       string
	Desc       Description
	Members    []NamedTypeRef
	Directives []*AppliedDirective
	Location   position.SourceLocation
}

var _ Type = (*UnionType)(nil)

func (t *UnionType) TypeName() string                   { return t.Name }
func (t *UnionType) TypeKind() Kind                      { return KindUnion }
func (t *UnionType) DefLocation() position.SourceLocation { return t.Location }
func (t *UnionType) IsInputType() bool                   { return false }
func (t *UnionType) IsOutputType() bool                  { return true }

// HasMember reports whether name is a declared member.
func (t *UnionType) HasMember(name string) bool {
	for _, m := range t.Members {
		if m.Name == name {
			return true
		}
	}
	return false
}

// EnumValue is one member of an EnumType.
type EnumValue struct {
	Name       string
	Desc       Description
	Directives []*AppliedDirective
	Location   position.SourceLocation
}

// EnumType is "enum Name { VALUES }".
type EnumType struct {
	Name       string
	Desc       Description
	Values     []*EnumValue
	Directives []*AppliedDirective
	Location   position.SourceLocation
}

var _ Type = (*EnumType)(nil)

func (t *EnumType) TypeName() string                   { return t.Name }
func (t *EnumType) TypeKind() Kind                      { return KindEnum }
func (t *EnumType) DefLocation() position.SourceLocation { return t.Location }
func (t *EnumType) IsInputType() bool                   { return true }
func (t *EnumType) IsOutputType() bool                  { return true }

// ValueByName returns the named member, or nil.
func (t *EnumType) ValueByName(name string) *EnumValue {
	for _, v := range t.Values {
		if v.Name == name {
			return v
		}
	}
	return nil
}

// InputObjectType is "input Name { fields }"; its fields are Arguments
// (the same "name: Type = default" shape used by field parameters).
type InputObjectType struct {
	Name       string
	Desc       Description
	Fields     []*Argument
	Directives []*AppliedDirective
	Location   position.SourceLocation
}

var _ Type = (*InputObjectType)(nil)

func (t *InputObjectType) TypeName() string                   { return t.Name }
func (t *InputObjectType) TypeKind() Kind                      { return KindInputObject }
func (t *InputObjectType) DefLocation() position.SourceLocation { return t.Location }
func (t *InputObjectType) IsInputType() bool                   { return true }
func (t *InputObjectType) IsOutputType() bool                  { return false }

// FieldByName returns the named field, or nil.
func (t *InputObjectType) FieldByName(name string) *Argument {
	for _, f := range t.Fields {
		if f.Name == name {
			return f
		}
	}
	return nil
}

// AppliedDirective is a directive annotation as applied to some construct,
// "@name(arguments)", with its arguments already normalized into the
// Value model and its name a late-bound reference into the DirectiveMap.
type AppliedDirective struct {
	Ref       NamedDirectiveRef
	Arguments []ObjectField
	Location  position.SourceLocation
}

// DirectivesByName returns the first applied directive with the given
// name, or nil.
func DirectivesByName(ds []*AppliedDirective, name string) *AppliedDirective {
	for _, d := range ds {
		if d.Ref.Name == name {
			return d
		}
	}
	return nil
}

// CountByName reports how many times name was applied — used to enforce
// non-repeatable directives appear at most once.
func CountByName(ds []*AppliedDirective, name string) int {
	n := 0
	for _, d := range ds {
		if d.Ref.Name == name {
			n++
		}
	}
	return n
}
