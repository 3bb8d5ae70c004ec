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

// Builtin scalar names.
const (
	ScalarBoolean = "Boolean"
	ScalarInt     = "Int"
	ScalarFloat   = "Float"
	ScalarString  = "String"
	ScalarID      = "ID"
)

var builtinScalarDescriptions = map[string]string{
	ScalarBoolean: "The `Boolean` scalar type represents `true` or `false`.",
	ScalarInt:     "The `Int` scalar type represents non-fractional signed whole numeric values.",
	ScalarFloat:   "The `Float` scalar type represents signed double-precision fractional values.",
	ScalarString:  "The `String` scalar type represents textual data, represented as UTF-8 character sequences.",
	ScalarID:      "The `ID` scalar type represents a unique identifier, often used to refetch an object or as the key for a cache.",
}

var builtinScalarOrder = []string{ScalarBoolean, ScalarInt, ScalarFloat, ScalarString, ScalarID}

// TypeMap owns every type in a schema, keyed by name. It is exclusively owned
// by the Schema once built; during the load/finalize phases it is shared
// by reference across every per-kind Builder.
type TypeMap struct {
	byName map[string]Type
	order  []string
}

// newTypeMap creates a TypeMap seeded with the five built-in scalars,
// as every Builder starts with at construction time.
func newTypeMap() *TypeMap {
	m := &TypeMap{byName: make(map[string]Type)}
	for _, name := range builtinScalarOrder {
		m.add(&ScalarType{
			Name:     name,
			Desc:     Description{Text: builtinScalarDescriptions[name], HasText: true},
			Location: position.BuiltIn,
			BuiltIn:  true,
		})
	}
	return m
}

// Lookup returns the named type, if present.
func (m *TypeMap) Lookup(name string) (Type, bool) {
	t, ok := m.byName[name]
	return t, ok
}

func (m *TypeMap) add(t Type) {
	if _, exists := m.byName[t.TypeName()]; !exists {
		m.order = append(m.order, t.TypeName())
	}
	m.byName[t.TypeName()] = t
}

// All returns every type in insertion order (built-in scalars first,
// then user-defined types in load order).
func (m *TypeMap) All() []Type {
	out := make([]Type, len(m.order))
	for i, name := range m.order {
		out[i] = m.byName[name]
	}
	return out
}

// IsBuiltinScalarName reports whether name is one of the five always-
// present scalar types.
func IsBuiltinScalarName(name string) bool {
	_, ok := builtinScalarDescriptions[name]
	return ok
}
