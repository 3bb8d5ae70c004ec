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

package schema_test

import (
	"errors"
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hexgql/schema/graphql/diag"
	"github.com/hexgql/schema/graphql/schema"
)

func diagCode(t *testing.T, err error) diag.Code {
	t.Helper()
	d, ok := err.(diag.Diagnosable)
	require.Truef(t, ok, "error %v (%T) does not implement diag.Diagnosable", err, err)
	return d.Diagnostic().Code
}

func firstValidationCode(t *testing.T, err error) diag.Code {
	t.Helper()
	tv, ok := err.(*schema.TypeValidationErrors)
	require.Truef(t, ok, "expected *schema.TypeValidationErrors, got %T: %v", err, err)
	require.NotEmpty(t, tv.Errors)
	return diagCode(t, tv.Errors[0])
}

func allValidationCodes(t *testing.T, err error) []diag.Code {
	t.Helper()
	tv, ok := err.(*schema.TypeValidationErrors)
	require.Truef(t, ok, "expected *schema.TypeValidationErrors, got %T: %v", err, err)
	codes := make([]diag.Code, len(tv.Errors))
	for i, e := range tv.Errors {
		codes[i] = diagCode(t, e)
	}
	return codes
}

// S1: a bare "type Query" builds successfully with Query as the query
// root, four built-in directives, five built-in scalars, and a single
// user-defined object with only the injected __typename field.
func TestS1MinimalQueryRoot(t *testing.T) {
	s, err := schema.Build([]schema.Source{schema.StringSource("type Query", "")})
	require.NoError(t, err)
	require.NotNil(t, s.Query)
	assert.Equal(t, "Query", s.Query.Name)
	assert.Nil(t, s.Mutation)
	assert.Nil(t, s.Subscription)

	for _, name := range []string{"skip", "include", "deprecated", "specifiedBy"} {
		_, ok := s.DirectiveByName(name)
		assert.Truef(t, ok, "expected built-in directive %q", name)
	}
	for _, name := range []string{"Boolean", "Int", "Float", "String", "ID"} {
		_, ok := s.TypeByName(name)
		assert.Truef(t, ok, "expected built-in scalar %q", name)
	}

	require.Len(t, s.Query.Fields, 1)
	assert.Equal(t, "__typename", s.Query.Fields[0].Name)
}

// S2: redefining a type produces DuplicateTypeDefinition at the second
// definition's position, with the first definition attached as a note.
func TestS2DuplicateTypeDefinition(t *testing.T) {
	_, err := schema.Build([]schema.Source{schema.StringSource("type Foo type Foo", "")})
	require.Error(t, err)
	assert.Equal(t, diag.CodeDuplicateTypeDefinition, diagCode(t, err))
}

// S3: an extension loaded from a separate source before its base
// definition succeeds once every source has loaded, and reversing load
// order produces an equivalent schema (testable property 4).
func TestS3ExtensionOrderIndependence(t *testing.T) {
	base := "type Query { id: ID }\ntype Foo { id: ID }"
	ext := "extend type Foo { extra: Boolean }"

	forward, err := schema.Build([]schema.Source{
		schema.StringSource(base, "a.graphql"),
		schema.StringSource(ext, "b.graphql"),
	})
	require.NoError(t, err)

	reversed, err := schema.Build([]schema.Source{
		schema.StringSource(ext, "b.graphql"),
		schema.StringSource(base, "a.graphql"),
	})
	require.NoError(t, err)

	assert.Equal(t, "", cmp.Diff(typeNameSnapshot(forward), typeNameSnapshot(reversed)))

	foo, ok := forward.TypeByName("Foo")
	require.True(t, ok)
	obj, ok := foo.(*schema.ObjectType)
	require.True(t, ok)
	assert.NotNil(t, obj.FieldByName("extra"))
}

// typeNameSnapshot reduces a *Schema to the sorted set of declared type
// names and each object/interface type's sorted field names — enough
// structure to assert cross-ordering equality without comparing
// unexported TypeMap internals or position spans (which legitimately
// differ across reversed load orders).
type typeSnapshot struct {
	Name   string
	Kind   string
	Fields []string
}

func typeNameSnapshot(s *schema.Schema) []typeSnapshot {
	var out []typeSnapshot
	for _, ty := range s.Types.All() {
		snap := typeSnapshot{Name: ty.TypeName(), Kind: ty.TypeKind().String()}
		switch v := ty.(type) {
		case *schema.ObjectType:
			for _, f := range v.Fields {
				snap.Fields = append(snap.Fields, f.Name)
			}
		case *schema.InterfaceType:
			for _, f := range v.Fields {
				snap.Fields = append(snap.Fields, f.Name)
			}
		}
		sort.Strings(snap.Fields)
		out = append(out, snap)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// S4: two mutually-referencing non-null input object fields produce a
// CircularInputFieldChain error for each type on the cycle.
func TestS4CircularInputFieldChain(t *testing.T) {
	_, err := schema.Build([]schema.Source{
		schema.StringSource("input A { b: B! } input B { a: A! }", ""),
	})
	require.Error(t, err)
	codes := allValidationCodes(t, err)
	count := 0
	for _, c := range codes {
		if c == diag.CodeCircularInputFieldChain {
			count++
		}
	}
	assert.Equal(t, 2, count, "expected one CircularInputFieldChain per type on the cycle")
}

// A nullable link anywhere in the chain breaks the cycle.
func TestNullableLinkBreaksInputCycle(t *testing.T) {
	_, err := schema.Build([]schema.Source{
		schema.StringSource("type Query { id: ID } input A { b: B } input B { a: A! }", ""),
	})
	assert.NoError(t, err)
}

// S5: implementing an interface field with an incompatible type produces
// InvalidInterfaceSpecifiedFieldType.
func TestS5InterfaceFieldTypeMismatch(t *testing.T) {
	_, err := schema.Build([]schema.Source{
		schema.StringSource(`interface Node { id: ID! }
type User implements Node { id: Int }`, ""),
	})
	require.Error(t, err)
	assert.Equal(t, diag.CodeInvalidInterfaceSpecifiedFieldType, firstValidationCode(t, err))
}

func TestInterfaceImplementationSucceedsWithCovariantNonNull(t *testing.T) {
	_, err := schema.Build([]schema.Source{
		schema.StringSource(`interface Node { id: ID }
type User implements Node { id: ID! }
type Query { id: ID }`, ""),
	})
	assert.NoError(t, err, "a non-null field is a valid subtype of a nullable interface field")
}

func TestMissingRecursiveInterfaceImplementation(t *testing.T) {
	_, err := schema.Build([]schema.Source{
		schema.StringSource(`interface A { a: String }
interface B implements A { a: String }
type C implements B { a: String }`, ""),
	})
	require.Error(t, err)
	assert.Equal(t, diag.CodeMissingRecursiveInterfaceImplementation, firstValidationCode(t, err))
}

func TestUnionMemberMustBeObjectType(t *testing.T) {
	_, err := schema.Build([]schema.Source{
		schema.StringSource(`scalar Foo
union U = Foo`, ""),
	})
	require.Error(t, err)
	assert.Equal(t, diag.CodeInvalidUnionMemberTypeKind, firstValidationCode(t, err))
}

func TestDanglingTypeReferenceFailsValidation(t *testing.T) {
	_, err := schema.Build([]schema.Source{
		schema.StringSource("type Query { foo: Ghost }", ""),
	})
	require.Error(t, err)
	assert.Equal(t, diag.CodeUndefinedTypeName, firstValidationCode(t, err))
}

func TestDunderPrefixedTypeNameRejected(t *testing.T) {
	_, err := schema.Build([]schema.Source{
		schema.StringSource("type __Foo { id: ID }", ""),
	})
	require.Error(t, err)
	assert.Equal(t, diag.CodeInvalidDunderPrefixedTypeName, diagCode(t, err))
}

func TestDunderPrefixedFieldNameRejected(t *testing.T) {
	_, err := schema.Build([]schema.Source{
		schema.StringSource("type Query { __bad: Int }", ""),
	})
	require.Error(t, err)
	assert.Equal(t, diag.CodeInvalidDunderPrefixedFieldName, diagCode(t, err))
}

func TestDunderPrefixedInterfaceFieldNameRejected(t *testing.T) {
	_, err := schema.Build([]schema.Source{
		schema.StringSource("interface Node { __bad: Int }\ntype Query { id: ID }", ""),
	})
	require.Error(t, err)
	assert.Equal(t, diag.CodeInvalidDunderPrefixedFieldName, diagCode(t, err))
}

func TestInjectedTypenameFieldIsNotRejectedAsDunderPrefixed(t *testing.T) {
	_, err := schema.Build([]schema.Source{
		schema.StringSource("type Query { id: ID }", ""),
	})
	require.NoError(t, err)
}

func TestDunderPrefixedParamNameRejected(t *testing.T) {
	_, err := schema.Build([]schema.Source{
		schema.StringSource("type Query { field(__bad: Int): String }", ""),
	})
	require.Error(t, err)
	assert.Equal(t, diag.CodeInvalidDunderPrefixedParamName, diagCode(t, err))
}

func TestRedefiningBuiltinDirectiveIsRejected(t *testing.T) {
	_, err := schema.Build([]schema.Source{
		schema.StringSource(`directive @skip(if: Boolean!) on FIELD
type Query`, ""),
	})
	require.Error(t, err)
	assert.Equal(t, diag.CodeRedefinitionOfBuiltinDirective, diagCode(t, err))
}

func TestNoQueryRootIsFatal(t *testing.T) {
	_, err := schema.Build([]schema.Source{
		schema.StringSource("type Foo { id: ID }", ""),
	})
	require.Error(t, err)
	assert.Equal(t, diag.CodeNoQueryOperationTypeDefined, firstValidationCode(t, err))
}

// Open Question #1: subscription/mutation roots are optional — a schema
// with only a query root still builds successfully.
func TestMutationAndSubscriptionRootsAreOptional(t *testing.T) {
	s, err := schema.Build([]schema.Source{
		schema.StringSource("type Query { id: ID }", ""),
	})
	require.NoError(t, err)
	assert.Nil(t, s.Mutation)
	assert.Nil(t, s.Subscription)
}

func TestExplicitSchemaBlockSelectsRoots(t *testing.T) {
	s, err := schema.Build([]schema.Source{
		schema.StringSource(`schema { query: MyQuery mutation: MyMutation }
type MyQuery { id: ID }
type MyMutation { noop: Boolean }`, ""),
	})
	require.NoError(t, err)
	require.NotNil(t, s.Query)
	require.NotNil(t, s.Mutation)
	assert.Equal(t, "MyQuery", s.Query.Name)
	assert.Equal(t, "MyMutation", s.Mutation.Name)
}

func TestSyntaxErrorAbortsOnlyItsOwnSource(t *testing.T) {
	_, err := schema.Build([]schema.Source{
		schema.StringSource("type Query { id: ID }", "ok.graphql"),
		schema.StringSource("type !!!", "broken.graphql"),
	})
	require.Error(t, err)
	var parseErr *schema.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, "broken.graphql", parseErr.File)
}

// WithCollectAllErrors lets Build keep loading after a source's load error
// instead of returning at once; the build still fails here, with the
// duplicate "Foo" definition error from b.graphql, because recorded load
// errors are returned before the validators that would report the
// undefined Ghost types ever run.
func TestCollectAllErrorsOption(t *testing.T) {
	_, err := schema.Build([]schema.Source{
		schema.StringSource("type Foo { a: Ghost1 }", "a.graphql"),
		schema.StringSource("type Foo { a: Ghost2 }", "b.graphql"),
	}, schema.WithCollectAllErrors(true))
	require.Error(t, err)
}

// With WithCollectAllErrors, a builder error (here, redefining "Foo") on
// one definition does not stop the remaining definitions — including
// later sources — from being visited, and every such error is aggregated
// into a single *schema.BuildError rather than only the first being kept.
func TestCollectAllErrorsOptionAggregatesEveryBuilderError(t *testing.T) {
	_, err := schema.Build([]schema.Source{
		schema.StringSource("scalar Foo", "a.graphql"),
		schema.StringSource("scalar Foo", "b.graphql"),
		schema.StringSource("scalar Foo", "c.graphql"),
	}, schema.WithCollectAllErrors(true))
	require.Error(t, err)

	var buildErr *schema.BuildError
	require.ErrorAs(t, err, &buildErr)
	assert.Len(t, buildErr.Errors, 2)
}

// Without WithCollectAllErrors, the default first-error-wins mode returns
// the lone error directly rather than wrapping it in a *schema.BuildError.
func TestFirstErrorWinsByDefault(t *testing.T) {
	_, err := schema.Build([]schema.Source{
		schema.StringSource("scalar Foo", "a.graphql"),
		schema.StringSource("scalar Foo", "b.graphql"),
		schema.StringSource("scalar Foo", "c.graphql"),
	})
	require.Error(t, err)

	var buildErr *schema.BuildError
	assert.False(t, errors.As(err, &buildErr))
}
