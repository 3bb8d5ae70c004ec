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

// Package ast defines the syntax trees produced by parsing both executable
// (query/mutation/subscription/fragment) documents and schema (type-system)
// documents. Every node carries its own position.Span rather than deriving
// it from a linked token chain, since the lexer hands the parser discrete
// tokens rather than a persistent token list.
package ast

import (
	"github.com/hexgql/schema/graphql/position"
)

// Node is implemented by every AST node.
type Node interface {
	// Span returns the node's location in its source.
	Span() position.Span
}

// Name is an identifier: a type name, field name, argument name, directive
// name, enum value, alias, or variable name.
type Name struct {
	NameSpan position.Span
	Value    string
}

var _ Node = Name{}

// Span implements Node.
func (n Name) Span() position.Span { return n.NameSpan }

// Document is the root of a parsed GraphQL source: a sequence of
// definitions, each either executable (operations/fragments) or
// type-system (schema/type/directive definitions and extensions).
type Document struct {
	DocSpan     position.Span
	Definitions []Definition
}

var _ Node = Document{}

// Span implements Node.
func (d Document) Span() position.Span { return d.DocSpan }

// Definition is any top-level construct a Document may contain.
type Definition interface {
	Node
	definitionNode()
}

// ============================================================================
// Executable documents: operations, fragments, selections, values.
// ============================================================================

// OperationType distinguishes query/mutation/subscription.
type OperationType string

// Enumeration of OperationType.
const (
	OperationTypeQuery        OperationType = "query"
	OperationTypeMutation     OperationType = "mutation"
	OperationTypeSubscription OperationType = "subscription"
)

// OperationDefinition is a query/mutation/subscription, or the shorthand
// anonymous-query form ("{ field }").
type OperationDefinition struct {
	DefSpan             position.Span
	Type                OperationType
	Shorthand           bool
	Name                *Name
	VariableDefinitions []*VariableDefinition
	Directives          Directives
	SelectionSet        SelectionSet
}

var (
	_ Node       = (*OperationDefinition)(nil)
	_ Definition = (*OperationDefinition)(nil)
)

// Span implements Node.
func (d *OperationDefinition) Span() position.Span { return d.DefSpan }
func (*OperationDefinition) definitionNode()       {}

// VariableDefinition declares a variable accepted by an operation, e.g.
// "$id: ID = null".
type VariableDefinition struct {
	DefSpan      position.Span
	Variable     Name
	Type         TypeAnnotation
	DefaultValue Value
	Directives   Directives
}

var _ Node = (*VariableDefinition)(nil)

// Span implements Node.
func (d *VariableDefinition) Span() position.Span { return d.DefSpan }

// SelectionSet is the braced list of fields/spreads/fragments requested by
// an operation or fragment.
type SelectionSet struct {
	SetSpan    position.Span
	Selections []Selection
}

var _ Node = SelectionSet{}

// Span implements Node.
func (s SelectionSet) Span() position.Span { return s.SetSpan }

// Selection is a Field, FragmentSpread, or InlineFragment.
type Selection interface {
	Node
	selectionNode()
}

// Field selects a single field, optionally aliased, with arguments,
// directives, and (for object-typed fields) a nested SelectionSet.
type Field struct {
	FieldSpan    position.Span
	Alias        *Name
	Name         Name
	Arguments    []*Argument
	Directives   Directives
	SelectionSet *SelectionSet
}

var (
	_ Node      = (*Field)(nil)
	_ Selection = (*Field)(nil)
)

// Span implements Node.
func (f *Field) Span() position.Span { return f.FieldSpan }
func (*Field) selectionNode()        {}

// ResponseName is the key this field will occupy in a response: the alias
// if present, otherwise the field name.
func (f *Field) ResponseName() string {
	if f.Alias != nil {
		return f.Alias.Value
	}
	return f.Name.Value
}

// FragmentSpread references a named fragment by "...Name".
type FragmentSpread struct {
	SpreadSpan position.Span
	Name       Name
	Directives Directives
}

var (
	_ Node      = (*FragmentSpread)(nil)
	_ Selection = (*FragmentSpread)(nil)
)

// Span implements Node.
func (f *FragmentSpread) Span() position.Span { return f.SpreadSpan }
func (*FragmentSpread) selectionNode()        {}

// InlineFragment is "... [on TypeCondition] { selections }".
type InlineFragment struct {
	FragSpan      position.Span
	TypeCondition *Name
	Directives    Directives
	SelectionSet  SelectionSet
}

var (
	_ Node      = (*InlineFragment)(nil)
	_ Selection = (*InlineFragment)(nil)
)

// Span implements Node.
func (f *InlineFragment) Span() position.Span { return f.FragSpan }
func (*InlineFragment) selectionNode()        {}

// FragmentDefinition is "fragment Name on TypeCondition { selections }".
type FragmentDefinition struct {
	DefSpan       position.Span
	Name          Name
	TypeCondition Name
	Directives    Directives
	SelectionSet  SelectionSet
}

var (
	_ Node       = (*FragmentDefinition)(nil)
	_ Definition = (*FragmentDefinition)(nil)
)

// Span implements Node.
func (d *FragmentDefinition) Span() position.Span { return d.DefSpan }
func (*FragmentDefinition) definitionNode()       {}

// Argument is a single "name: value" pair, used for both field/directive
// arguments and input-object fields.
type Argument struct {
	ArgSpan position.Span
	Name    Name
	Value   Value
}

var _ Node = (*Argument)(nil)

// Span implements Node.
func (a *Argument) Span() position.Span { return a.ArgSpan }

// Directive is "@name(arguments)".
type Directive struct {
	DirSpan   position.Span
	Name      Name
	Arguments []*Argument
}

var _ Node = (*Directive)(nil)

// Span implements Node.
func (d *Directive) Span() position.Span { return d.DirSpan }

// Directives is an ordered list of applied directives.
type Directives []*Directive

// ByName returns the first directive with the given name, or nil.
func (ds Directives) ByName(name string) *Directive {
	for _, d := range ds {
		if d.Name.Value == name {
			return d
		}
	}
	return nil
}

// ============================================================================
// Values
// ============================================================================

// Value is any of: IntValue, FloatValue, StringValue, BooleanValue,
// NullValue, EnumValue, ListValue, ObjectValue, or Variable.
type Value interface {
	Node
	valueNode()
}

// Variable is a reference to a declared variable, "$name".
type Variable struct {
	VarSpan position.Span
	Name    Name
}

var (
	_ Node  = Variable{}
	_ Value = Variable{}
)

// Span implements Node.
func (v Variable) Span() position.Span { return v.VarSpan }
func (Variable) valueNode()            {}

// IntValue is an integer literal, stored as its raw decimal text (the
// value model in package schema is responsible for range/width decisions).
type IntValue struct {
	ValSpan position.Span
	Raw     string
}

var (
	_ Node  = IntValue{}
	_ Value = IntValue{}
)

func (v IntValue) Span() position.Span { return v.ValSpan }
func (IntValue) valueNode()            {}

// FloatValue is a floating-point literal, stored as its raw text.
type FloatValue struct {
	ValSpan position.Span
	Raw     string
}

var (
	_ Node  = FloatValue{}
	_ Value = FloatValue{}
)

func (v FloatValue) Span() position.Span { return v.ValSpan }
func (FloatValue) valueNode()            {}

// StringValue is a string or block-string literal, already cooked
// (escapes resolved, block strings dedented).
type StringValue struct {
	ValSpan position.Span
	Value   string
	Block   bool
}

var (
	_ Node  = StringValue{}
	_ Value = StringValue{}
)

func (v StringValue) Span() position.Span { return v.ValSpan }
func (StringValue) valueNode()            {}

// BooleanValue is "true" or "false".
type BooleanValue struct {
	ValSpan position.Span
	Value   bool
}

var (
	_ Node  = BooleanValue{}
	_ Value = BooleanValue{}
)

func (v BooleanValue) Span() position.Span { return v.ValSpan }
func (BooleanValue) valueNode()            {}

// NullValue is the literal "null".
type NullValue struct {
	ValSpan position.Span
}

var (
	_ Node  = NullValue{}
	_ Value = NullValue{}
)

func (v NullValue) Span() position.Span { return v.ValSpan }
func (NullValue) valueNode()            {}

// EnumValue is a bare name used where an enum member is expected, e.g.
// "NORTH" in "direction: NORTH".
type EnumValue struct {
	ValSpan position.Span
	Value   string
}

var (
	_ Node  = EnumValue{}
	_ Value = EnumValue{}
)

func (v EnumValue) Span() position.Span { return v.ValSpan }
func (EnumValue) valueNode()            {}

// ListValue is "[value,...]".
type ListValue struct {
	ValSpan position.Span
	Values  []Value
}

var (
	_ Node  = ListValue{}
	_ Value = ListValue{}
)

func (v ListValue) Span() position.Span { return v.ValSpan }
func (ListValue) valueNode()            {}

// ObjectValue is "{ name: value,... }" used as an input value.
type ObjectValue struct {
	ValSpan position.Span
	Fields  []*Argument
}

var (
	_ Node  = ObjectValue{}
	_ Value = ObjectValue{}
)

func (v ObjectValue) Span() position.Span { return v.ValSpan }
func (ObjectValue) valueNode()            {}

// ============================================================================
// Type annotations
// ============================================================================

// TypeAnnotation is how a field, argument, or variable refers to a type:
// a (possibly list, possibly nested) reference to a named type, with
// nullability tracked at every layer. Equivalent to the "Type" grammar
// production (NamedType / ListType / NonNullType), but flattened so
// nullability is explicit at each layer rather than inferred from a
// wrapper node's presence or absence.
type TypeAnnotation interface {
	Node
	typeAnnotationNode()
	// Nullable reports whether this layer of the annotation permits null.
	Nullable() bool
}

// NamedTypeAnnotation refers to a named type directly, e.g. "String" or
// "String!".
type NamedTypeAnnotation struct {
	AnnotSpan  position.Span
	Name       Name
	IsNullable bool
}

var (
	_ Node           = NamedTypeAnnotation{}
	_ TypeAnnotation = NamedTypeAnnotation{}
)

func (t NamedTypeAnnotation) Span() position.Span { return t.AnnotSpan }
func (NamedTypeAnnotation) typeAnnotationNode()   {}
func (t NamedTypeAnnotation) Nullable() bool      { return t.IsNullable }

// ListTypeAnnotation refers to a list of some inner type, e.g. "[String!]"
// or "[[Int]!]!".
type ListTypeAnnotation struct {
	AnnotSpan  position.Span
	Inner      TypeAnnotation
	IsNullable bool
}

var (
	_ Node           = ListTypeAnnotation{}
	_ TypeAnnotation = ListTypeAnnotation{}
)

func (t ListTypeAnnotation) Span() position.Span { return t.AnnotSpan }
func (ListTypeAnnotation) typeAnnotationNode()   {}
func (t ListTypeAnnotation) Nullable() bool      { return t.IsNullable }

// InnermostName returns the name at the bottom of a (possibly nested) list
// annotation, e.g. "Int" for "[[Int]]".
func InnermostName(t TypeAnnotation) string {
	for {
		switch v := t.(type) {
		case NamedTypeAnnotation:
			return v.Name.Value
		case ListTypeAnnotation:
			t = v.Inner
		default:
			return ""
		}
	}
}

// ============================================================================
// Schema (type-system) documents.
// ============================================================================

// SchemaDefinition is the optional "schema { query:..., mutation:...,
// subscription:... }" block naming the root operation types.
type SchemaDefinition struct {
	DefSpan          position.Span
	Description      *StringValue
	Directives       Directives
	RootOperationTypes []*RootOperationTypeDefinition
}

var (
	_ Node       = (*SchemaDefinition)(nil)
	_ Definition = (*SchemaDefinition)(nil)
)

func (d *SchemaDefinition) Span() position.Span { return d.DefSpan }
func (*SchemaDefinition) definitionNode()       {}

// RootOperationTypeDefinition is one "query: QueryTypeName" entry in a
// SchemaDefinition.
type RootOperationTypeDefinition struct {
	DefSpan   position.Span
	Operation OperationType
	Type      Name
}

var _ Node = (*RootOperationTypeDefinition)(nil)

func (d *RootOperationTypeDefinition) Span() position.Span { return d.DefSpan }

// FieldDefinition is a single field in an object or interface type
// definition: "name(args): Type".
type FieldDefinition struct {
	DefSpan     position.Span
	Description *StringValue
	Name        Name
	Arguments   []*InputValueDefinition
	Type        TypeAnnotation
	Directives  Directives
}

var _ Node = (*FieldDefinition)(nil)

func (d *FieldDefinition) Span() position.Span { return d.DefSpan }

// InputValueDefinition is a field argument or input-object field: "name:
// Type = default".
type InputValueDefinition struct {
	DefSpan      position.Span
	Description  *StringValue
	Name         Name
	Type         TypeAnnotation
	DefaultValue Value
	Directives   Directives
}

var _ Node = (*InputValueDefinition)(nil)

func (d *InputValueDefinition) Span() position.Span { return d.DefSpan }

// EnumValueDefinition is one member of an enum type definition.
type EnumValueDefinition struct {
	DefSpan     position.Span
	Description *StringValue
	Name        Name
	Directives  Directives
}

var _ Node = (*EnumValueDefinition)(nil)

func (d *EnumValueDefinition) Span() position.Span { return d.DefSpan }

// ScalarTypeDefinition is "scalar Name".
type ScalarTypeDefinition struct {
	DefSpan     position.Span
	Description *StringValue
	Name        Name
	Directives  Directives
}

var (
	_ Node       = (*ScalarTypeDefinition)(nil)
	_ Definition = (*ScalarTypeDefinition)(nil)
)

func (d *ScalarTypeDefinition) Span() position.Span { return d.DefSpan }
func (*ScalarTypeDefinition) definitionNode()       {}

// ScalarTypeExtension is "extend scalar Name directives".
type ScalarTypeExtension struct {
	DefSpan    position.Span
	Name       Name
	Directives Directives
}

var (
	_ Node       = (*ScalarTypeExtension)(nil)
	_ Definition = (*ScalarTypeExtension)(nil)
)

func (d *ScalarTypeExtension) Span() position.Span { return d.DefSpan }
func (*ScalarTypeExtension) definitionNode()       {}

// ObjectTypeDefinition is "type Name implements I & J { fields }".
type ObjectTypeDefinition struct {
	DefSpan     position.Span
	Description *StringValue
	Name        Name
	Implements  []Name
	Directives  Directives
	Fields      []*FieldDefinition
}

var (
	_ Node       = (*ObjectTypeDefinition)(nil)
	_ Definition = (*ObjectTypeDefinition)(nil)
)

func (d *ObjectTypeDefinition) Span() position.Span { return d.DefSpan }
func (*ObjectTypeDefinition) definitionNode()       {}

// ObjectTypeExtension is "extend type Name implements... directives
// { fields }", with at least one of implements/directives/fields present.
type ObjectTypeExtension struct {
	DefSpan    position.Span
	Name       Name
	Implements []Name
	Directives Directives
	Fields     []*FieldDefinition
}

var (
	_ Node       = (*ObjectTypeExtension)(nil)
	_ Definition = (*ObjectTypeExtension)(nil)
)

func (d *ObjectTypeExtension) Span() position.Span { return d.DefSpan }
func (*ObjectTypeExtension) definitionNode()       {}

// InterfaceTypeDefinition is "interface Name implements... { fields }".
type InterfaceTypeDefinition struct {
	DefSpan     position.Span
	Description *StringValue
	Name        Name
	Implements  []Name
	Directives  Directives
	Fields      []*FieldDefinition
}

var (
	_ Node       = (*InterfaceTypeDefinition)(nil)
	_ Definition = (*InterfaceTypeDefinition)(nil)
)

func (d *InterfaceTypeDefinition) Span() position.Span { return d.DefSpan }
func (*InterfaceTypeDefinition) definitionNode()       {}

// InterfaceTypeExtension is the "extend interface" form.
type InterfaceTypeExtension struct {
	DefSpan    position.Span
	Name       Name
	Implements []Name
	Directives Directives
	Fields     []*FieldDefinition
}

var (
	_ Node       = (*InterfaceTypeExtension)(nil)
	_ Definition = (*InterfaceTypeExtension)(nil)
)

func (d *InterfaceTypeExtension) Span() position.Span { return d.DefSpan }
func (*InterfaceTypeExtension) definitionNode()       {}

// UnionTypeDefinition is "union Name = A | B | C".
type UnionTypeDefinition struct {
	DefSpan     position.Span
	Description *StringValue
	Name        Name
	Directives  Directives
	Members     []Name
}

var (
	_ Node       = (*UnionTypeDefinition)(nil)
	_ Definition = (*UnionTypeDefinition)(nil)
)

func (d *UnionTypeDefinition) Span() position.Span { return d.DefSpan }
func (*UnionTypeDefinition) definitionNode()       {}

// UnionTypeExtension is the "extend union" form.
type UnionTypeExtension struct {
	DefSpan    position.Span
	Name       Name
	Directives Directives
	Members    []Name
}

var (
	_ Node       = (*UnionTypeExtension)(nil)
	_ Definition = (*UnionTypeExtension)(nil)
)

func (d *UnionTypeExtension) Span() position.Span { return d.DefSpan }
func (*UnionTypeExtension) definitionNode()       {}

// EnumTypeDefinition is "enum Name { VALUES }".
type EnumTypeDefinition struct {
	DefSpan     position.Span
	Description *StringValue
	Name        Name
	Directives  Directives
	Values      []*EnumValueDefinition
}

var (
	_ Node       = (*EnumTypeDefinition)(nil)
	_ Definition = (*EnumTypeDefinition)(nil)
)

func (d *EnumTypeDefinition) Span() position.Span { return d.DefSpan }
func (*EnumTypeDefinition) definitionNode()       {}

// EnumTypeExtension is the "extend enum" form.
type EnumTypeExtension struct {
	DefSpan    position.Span
	Name       Name
	Directives Directives
	Values     []*EnumValueDefinition
}

var (
	_ Node       = (*EnumTypeExtension)(nil)
	_ Definition = (*EnumTypeExtension)(nil)
)

func (d *EnumTypeExtension) Span() position.Span { return d.DefSpan }
func (*EnumTypeExtension) definitionNode()       {}

// InputObjectTypeDefinition is "input Name { fields }".
type InputObjectTypeDefinition struct {
	DefSpan     position.Span
	Description *StringValue
	Name        Name
	Directives  Directives
	Fields      []*InputValueDefinition
}

var (
	_ Node       = (*InputObjectTypeDefinition)(nil)
	_ Definition = (*InputObjectTypeDefinition)(nil)
)

func (d *InputObjectTypeDefinition) Span() position.Span { return d.DefSpan }
func (*InputObjectTypeDefinition) definitionNode()       {}

// InputObjectTypeExtension is the "extend input" form.
type InputObjectTypeExtension struct {
	DefSpan    position.Span
	Name       Name
	Directives Directives
	Fields     []*InputValueDefinition
}

var (
	_ Node       = (*InputObjectTypeExtension)(nil)
	_ Definition = (*InputObjectTypeExtension)(nil)
)

func (d *InputObjectTypeExtension) Span() position.Span { return d.DefSpan }
func (*InputObjectTypeExtension) definitionNode()       {}

// DirectiveLocation names a place in a document a directive may be
// applied, whether executable (QUERY, FIELD, ...) or type-system (SCHEMA,
// SCALAR, ...).
type DirectiveLocation string

// Enumeration of DirectiveLocation.
const (
	LocationQuery                  DirectiveLocation = "QUERY"
	LocationMutation               DirectiveLocation = "MUTATION"
	LocationSubscription           DirectiveLocation = "SUBSCRIPTION"
	LocationField                  DirectiveLocation = "FIELD"
	LocationFragmentDefinition     DirectiveLocation = "FRAGMENT_DEFINITION"
	LocationFragmentSpread         DirectiveLocation = "FRAGMENT_SPREAD"
	LocationInlineFragment         DirectiveLocation = "INLINE_FRAGMENT"
	LocationVariableDefinition     DirectiveLocation = "VARIABLE_DEFINITION"
	LocationSchema                 DirectiveLocation = "SCHEMA"
	LocationScalar                 DirectiveLocation = "SCALAR"
	LocationObject                 DirectiveLocation = "OBJECT"
	LocationFieldDefinition        DirectiveLocation = "FIELD_DEFINITION"
	LocationArgumentDefinition     DirectiveLocation = "ARGUMENT_DEFINITION"
	LocationInterface              DirectiveLocation = "INTERFACE"
	LocationUnion                  DirectiveLocation = "UNION"
	LocationEnum                   DirectiveLocation = "ENUM"
	LocationEnumValue              DirectiveLocation = "ENUM_VALUE"
	LocationInputObject            DirectiveLocation = "INPUT_OBJECT"
	LocationInputFieldDefinition   DirectiveLocation = "INPUT_FIELD_DEFINITION"
)

// DirectiveDefinition is "directive @name(args) [repeatable] on LOCATIONS".
type DirectiveDefinition struct {
	DefSpan     position.Span
	Description *StringValue
	Name        Name
	Arguments   []*InputValueDefinition
	Repeatable  bool
	Locations   []DirectiveLocation
}

var (
	_ Node       = (*DirectiveDefinition)(nil)
	_ Definition = (*DirectiveDefinition)(nil)
)

func (d *DirectiveDefinition) Span() position.Span { return d.DefSpan }
func (*DirectiveDefinition) definitionNode()       {}
