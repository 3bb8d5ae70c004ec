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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hexgql/schema/graphql/schema"
)

func buildUserSchema(t *testing.T) *schema.Schema {
	t.Helper()
	s, err := schema.Build([]schema.Source{
		schema.StringSource(`type Query { user(id: ID!): User }
type User { id: ID! name: String friends: [User!] }`, ""),
	})
	require.NoError(t, err)
	return s
}

func TestLoadExecutableDocumentConvertsOperationsAndFragments(t *testing.T) {
	s := buildUserSchema(t)
	doc, err := s.LoadExecutableDocument(`query GetUser($id: ID!) {
  user(id: $id) {
    name
    ...Friends
  }
}
fragment Friends on User {
  friends { name }
}`, "query.graphql")
	require.NoError(t, err)
	require.Len(t, doc.Operations, 1)
	require.Contains(t, doc.Fragments, "Friends")

	op := doc.Operations[0]
	assert.Equal(t, "GetUser", op.Name)
	require.Contains(t, op.Variables, "id")
	require.Len(t, op.SelectionSet.Selections, 1)

	userField := op.SelectionSet.Selections[0].(*schema.FieldSelection)
	assert.Equal(t, "user", userField.Name)
	require.Len(t, userField.Arguments, 1)
	assert.Equal(t, "id", userField.Arguments[0].Name)

	require.Len(t, userField.SelectionSet.Selections, 2)
	_, isSpread := userField.SelectionSet.Selections[1].(*schema.FragmentSpreadSelection)
	assert.True(t, isSpread)

	assert.Empty(t, doc.ResolveReferences())
}

func TestLoadExecutableDocumentAnonymousShorthand(t *testing.T) {
	s := buildUserSchema(t)
	doc, err := s.LoadExecutableDocument("{ user(id: \"1\") { name } }", "query.graphql")
	require.NoError(t, err)
	require.Len(t, doc.Operations, 1)
	op := doc.Operations[0]
	assert.Equal(t, "", op.Name)

	field := op.SelectionSet.Selections[0].(*schema.FieldSelection)
	assert.Equal(t, "user", field.ResponseName())
}

func TestFieldSelectionAliasChangesResponseName(t *testing.T) {
	s := buildUserSchema(t)
	doc, err := s.LoadExecutableDocument("{ me: user(id: \"1\") { name } }", "query.graphql")
	require.NoError(t, err)
	field := doc.Operations[0].SelectionSet.Selections[0].(*schema.FieldSelection)
	assert.Equal(t, "me", field.ResponseName())
	assert.Equal(t, "user", field.Name)
}

func TestResolveReferencesReportsDanglingFragmentSpread(t *testing.T) {
	s := buildUserSchema(t)
	doc, err := s.LoadExecutableDocument("{ user(id: \"1\") { ...Missing } }", "query.graphql")
	require.NoError(t, err)
	errs := doc.ResolveReferences()
	require.Len(t, errs, 1)
	var dangling *schema.DanglingReferenceError
	require.ErrorAs(t, errs[0], &dangling)
	assert.Equal(t, "fragment", dangling.Kind)
	assert.Equal(t, "Missing", dangling.Name)
}

func TestResolveReferencesReportsDanglingVariable(t *testing.T) {
	s := buildUserSchema(t)
	doc, err := s.LoadExecutableDocument("{ user(id: $missing) { name } }", "query.graphql")
	require.NoError(t, err)
	errs := doc.ResolveReferences()
	require.Len(t, errs, 1)
	var dangling *schema.DanglingReferenceError
	require.ErrorAs(t, errs[0], &dangling)
	assert.Equal(t, "variable", dangling.Kind)
	assert.Equal(t, "missing", dangling.Name)
}

func TestResolveReferencesToleratesSelfReferentialFragmentCycle(t *testing.T) {
	s := buildUserSchema(t)
	doc, err := s.LoadExecutableDocument(`{ user(id: "1") { ...Cyclic } }
fragment Cyclic on User { name ...Cyclic }`, "query.graphql")
	require.NoError(t, err)
	assert.NotPanics(t, func() {
		doc.ResolveReferences()
	})
}

func TestLoadExecutableDocumentSyntaxErrorIsReported(t *testing.T) {
	s := buildUserSchema(t)
	_, err := s.LoadExecutableDocument("{ user(", "query.graphql")
	require.Error(t, err)
	var parseErr *schema.ParseError
	require.ErrorAs(t, err, &parseErr)
}
