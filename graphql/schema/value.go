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
	"strconv"

	"github.com/hexgql/schema/graphql/ast"
	"github.com/hexgql/schema/graphql/position"
)

// Value is the normalized value model: every ast.Value literal is
// converted into one of these variants once, up front, so downstream code
// (default-value comparison, argument coercion) never has to re-parse raw
// token text. Unlike ast.Value, an EnumValue becomes a reference rather
// than a bare string, and Int/Float are parsed eagerly.
type Value interface {
	valueKind()
	// Span returns the location the value was written at, or a synthetic
	// position.Span{} for a built-in-injected default.
	Span() position.Span
}

// IntValue is a parsed integer literal.
type IntValue struct {
	ValSpan position.Span
	Value   int64
}

func (IntValue) valueKind()              {}
func (v IntValue) Span() position.Span   { return v.ValSpan }

// FloatValue is a parsed floating-point literal.
type FloatValue struct {
	ValSpan position.Span
	Value   float64
}

func (FloatValue) valueKind()            {}
func (v FloatValue) Span() position.Span { return v.ValSpan }

// StringValue is a cooked string (escapes resolved, block strings
// dedented) literal.
type StringValue struct {
	ValSpan position.Span
	Value   string
}

func (StringValue) valueKind()            {}
func (v StringValue) Span() position.Span { return v.ValSpan }

// BooleanValue is "true" or "false".
type BooleanValue struct {
	ValSpan position.Span
	Value   bool
}

func (BooleanValue) valueKind()            {}
func (v BooleanValue) Span() position.Span { return v.ValSpan }

// NullValue is the literal "null".
type NullValue struct {
	ValSpan position.Span
}

func (NullValue) valueKind()              {}
func (v NullValue) Span() position.Span   { return v.ValSpan }

// EnumValueRef is a bare name used where an enum member is expected. It is
// a NamedEnumValueRef-shaped literal: resolving it against the field/
// argument's declared enum Type happens at validation/coercion time, not
// here, since the value model is built before the type graph it will be
// checked against is fully assembled.
type EnumValueRef struct {
	ValSpan position.Span
	Name    string
}

func (EnumValueRef) valueKind()            {}
func (v EnumValueRef) Span() position.Span { return v.ValSpan }

// ListValue is "[value,...]".
type ListValue struct {
	ValSpan position.Span
	Values  []Value
}

func (ListValue) valueKind()              {}
func (v ListValue) Span() position.Span   { return v.ValSpan }

// ObjectValue is "{ name: value,... }", order-preserving.
type ObjectValue struct {
	ValSpan position.Span
	Fields  []ObjectField
}

// ObjectField is one "name: value" pair of an ObjectValue.
type ObjectField struct {
	Name  string
	Value Value
}

func (ObjectValue) valueKind()              {}
func (v ObjectValue) Span() position.Span   { return v.ValSpan }

// VariableRef is a reference to a declared variable, "$name", legal only
// inside an executable document (never as a default value or a directive
// argument's constant value).
type VariableRef struct {
	ValSpan position.Span
	Ref     NamedVariableRef
}

func (VariableRef) valueKind()              {}
func (v VariableRef) Span() position.Span   { return v.ValSpan }

// ValueFromAST normalizes an ast.Value produced by the parser into the
// schema package's Value model. Int/Float literals are parsed here; a
// malformed numeric literal (which the lexer's grammar should have already
// excluded) falls back to 0 rather than erroring, since by the time a
// schema is being built the source has already passed lexing.
func ValueFromAST(v ast.Value) Value {
	switch val := v.(type) {
	case ast.IntValue:
		n, _ := strconv.ParseInt(val.Raw, 10, 64)
		return IntValue{ValSpan: val.ValSpan, Value: n}
	case ast.FloatValue:
		f, _ := strconv.ParseFloat(val.Raw, 64)
		return FloatValue{ValSpan: val.ValSpan, Value: f}
	case ast.StringValue:
		return StringValue{ValSpan: val.ValSpan, Value: val.Value}
	case ast.BooleanValue:
		return BooleanValue{ValSpan: val.ValSpan, Value: val.Value}
	case ast.NullValue:
		return NullValue{ValSpan: val.ValSpan}
	case ast.EnumValue:
		return EnumValueRef{ValSpan: val.ValSpan, Name: val.Value}
	case ast.ListValue:
		values := make([]Value, len(val.Values))
		for i, elem := range val.Values {
			values[i] = ValueFromAST(elem)
		}
		return ListValue{ValSpan: val.ValSpan, Values: values}
	case ast.ObjectValue:
		fields := make([]ObjectField, len(val.Fields))
		for i, f := range val.Fields {
			fields[i] = ObjectField{Name: f.Name.Value, Value: ValueFromAST(f.Value)}
		}
		return ObjectValue{ValSpan: val.ValSpan, Fields: fields}
	case ast.Variable:
		loc := position.SchemaString(val.VarSpan)
		return VariableRef{ValSpan: val.VarSpan, Ref: NamedVariableRef{Name: val.Name.Value, Loc: loc}}
	}
	return NullValue{}
}
