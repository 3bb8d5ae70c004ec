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

package parser_test

import (
	"strings"
	"testing"

	"github.com/kylelemons/godebug/diff"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/hexgql/schema/graphql/ast"
	"github.com/hexgql/schema/graphql/parser"
)

func TestParser(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Parser Suite")
}

func splitLines(s string) []string {
	return strings.Split(strings.TrimRight(s, "\n"), "\n")
}

var _ = Describe("ParseSchemaDocument", func() {
	It("parses a minimal object type definition", func() {
		result := parser.ParseSchemaDocument("type Query { hello: String }", "schema.graphql")
		Expect(result.HasErrors()).To(BeFalse())
		Expect(result.Document.Definitions).To(HaveLen(1))

		obj, ok := result.Document.Definitions[0].(*ast.ObjectTypeDefinition)
		Expect(ok).To(BeTrue())
		Expect(obj.Name.Value).To(Equal("Query"))
		Expect(obj.Fields).To(HaveLen(1))
		Expect(obj.Fields[0].Name.Value).To(Equal("hello"))
	})

	It("binds a description to the definition's keyword position, not the description's", func() {
		result := parser.ParseSchemaDocument(`"""A query root."""
type Query { hello: String }`, "schema.graphql")
		Expect(result.HasErrors()).To(BeFalse())
		obj := result.Document.Definitions[0].(*ast.ObjectTypeDefinition)
		Expect(obj.Description).NotTo(BeNil())
		Expect(obj.Description.Value).To(Equal("A query root."))
		// The recorded position is that of "type" on line 2, not the
		// description string on line 1.
		Expect(obj.Span().Start.Line1()).To(Equal(uint32(2)))
	})

	It("parses implements, directives, and field arguments", func() {
		src := `interface Node { id: ID! }
type User implements Node @deprecated {
  id: ID!
  friends(first: Int = 10): [User!]
}`
		result := parser.ParseSchemaDocument(src, "schema.graphql")
		Expect(result.HasErrors()).To(BeFalse())
		Expect(result.Document.Definitions).To(HaveLen(2))

		user := result.Document.Definitions[1].(*ast.ObjectTypeDefinition)
		Expect(user.Implements).To(HaveLen(1))
		Expect(user.Implements[0].Value).To(Equal("Node"))
		Expect(user.Directives).To(HaveLen(1))
		Expect(user.Directives[0].Name.Value).To(Equal("deprecated"))

		friends := user.Fields[1]
		Expect(friends.Arguments).To(HaveLen(1))
		Expect(friends.Arguments[0].Name.Value).To(Equal("first"))
		_, isInt := friends.Arguments[0].DefaultValue.(ast.IntValue)
		Expect(isInt).To(BeTrue())

		list, ok := friends.Type.(ast.ListTypeAnnotation)
		Expect(ok).To(BeTrue())
		Expect(list.Nullable()).To(BeTrue())
		named, ok := list.Inner.(ast.NamedTypeAnnotation)
		Expect(ok).To(BeTrue())
		Expect(named.Nullable()).To(BeFalse())
		Expect(named.Name.Value).To(Equal("User"))
	})

	It("parses extend type, union, enum, and input object definitions", func() {
		src := `extend type Foo { extra: Boolean }
union SearchResult = Photo | Person
enum Direction { NORTH SOUTH }
input Filter { limit: Int = 5 }
directive @auth(role: String!) on FIELD_DEFINITION`
		result := parser.ParseSchemaDocument(src, "schema.graphql")
		Expect(result.HasErrors()).To(BeFalse())
		Expect(result.Document.Definitions).To(HaveLen(5))

		ext := result.Document.Definitions[0].(*ast.ObjectTypeExtension)
		Expect(ext.Name.Value).To(Equal("Foo"))
		Expect(ext.Fields).To(HaveLen(1))

		union := result.Document.Definitions[1].(*ast.UnionTypeDefinition)
		Expect(union.Members).To(HaveLen(2))

		enum := result.Document.Definitions[2].(*ast.EnumTypeDefinition)
		Expect(enum.Values).To(HaveLen(2))
		Expect(enum.Values[0].Name.Value).To(Equal("NORTH"))

		input := result.Document.Definitions[3].(*ast.InputObjectTypeDefinition)
		Expect(input.Fields).To(HaveLen(1))

		directive := result.Document.Definitions[4].(*ast.DirectiveDefinition)
		Expect(directive.Name.Value).To(Equal("auth"))
		Expect(directive.Locations).To(ConsistOf(ast.LocationFieldDefinition))
	})

	It("parses a schema block naming root operation types", func() {
		result := parser.ParseSchemaDocument(`schema { query: Query mutation: Mutation }`, "schema.graphql")
		Expect(result.HasErrors()).To(BeFalse())
		block := result.Document.Definitions[0].(*ast.SchemaDefinition)
		Expect(block.RootOperationTypes).To(HaveLen(2))
		Expect(block.RootOperationTypes[0].Operation).To(Equal(ast.OperationTypeQuery))
		Expect(block.RootOperationTypes[0].Type.Value).To(Equal("Query"))
	})

	It("renders a detailed diagnostic snippet that reproduces the source line", func() {
		src := "type Foo { } type 1Bar { }"
		result := parser.ParseSchemaDocument(src, "schema.graphql")
		Expect(result.HasErrors()).To(BeTrue())

		d := result.Errors[0].(*parser.SyntaxError).Diagnostic()
		got := d.Detailed(src)
		// The snippet must reproduce the OneLine summary verbatim as its
		// first line, followed by the exact source line it points at.
		// Render the same two pieces independently and diff them against
		// the real output instead of hand-transcribing line/column numbers.
		wantFirstLine := d.OneLine()
		wantSourceLine := src // single-line source, no trailing newline to strip

		gotLines := splitLines(got)
		Expect(gotLines).NotTo(BeEmpty())
		if delta := diff.Diff(wantFirstLine, gotLines[0]); delta != "" {
			Fail("detailed rendering's first line mismatch:\n" + delta)
		}
		Expect(got).To(ContainSubstring(wantSourceLine))
	})

	It("collects multiple errors instead of stopping at the first", func() {
		result := parser.ParseSchemaDocument("type Foo { } type 1Bar { } type 2Baz { }", "schema.graphql")
		Expect(result.HasErrors()).To(BeTrue())
		Expect(len(result.Errors)).To(BeNumerically(">=", 2))
	})

	It("reports DuplicateTypeDefinition-shaped source spans for repeated names", func() {
		result := parser.ParseSchemaDocument("type Foo type Foo", "schema.graphql")
		Expect(result.HasErrors()).To(BeFalse())
		Expect(result.Document.Definitions).To(HaveLen(2))
		first := result.Document.Definitions[0].(*ast.ObjectTypeDefinition)
		second := result.Document.Definitions[1].(*ast.ObjectTypeDefinition)
		Expect(first.Name.Value).To(Equal("Foo"))
		Expect(second.Name.Value).To(Equal("Foo"))
		Expect(first.Name.NameSpan.Start.ColUTF8_1()).To(Equal(uint32(6)))
		Expect(second.Name.NameSpan.Start.ColUTF8_1()).To(Equal(uint32(15)))
	})
})

var _ = Describe("ParseExecutableDocument", func() {
	It("parses the anonymous shorthand form", func() {
		result := parser.ParseExecutableDocument("{ field }", "query.graphql")
		Expect(result.HasErrors()).To(BeFalse())
		op := result.Document.Definitions[0].(*ast.OperationDefinition)
		Expect(op.Shorthand).To(BeTrue())
		Expect(op.SelectionSet.Selections).To(HaveLen(1))
	})

	It("parses a named query with variables, arguments, and a fragment spread", func() {
		src := `query GetUser($id: ID!) {
  user(id: $id) {
    name
    ...Details
  }
}
fragment Details on User {
  email
}`
		result := parser.ParseExecutableDocument(src, "query.graphql")
		Expect(result.HasErrors()).To(BeFalse())
		Expect(result.Document.Definitions).To(HaveLen(2))

		op := result.Document.Definitions[0].(*ast.OperationDefinition)
		Expect(op.Type).To(Equal(ast.OperationTypeQuery))
		Expect(op.Name.Value).To(Equal("GetUser"))
		Expect(op.VariableDefinitions).To(HaveLen(1))

		userField := op.SelectionSet.Selections[0].(*ast.Field)
		Expect(userField.Arguments).To(HaveLen(1))
		Expect(userField.SelectionSet.Selections).To(HaveLen(2))

		_, isSpread := userField.SelectionSet.Selections[1].(*ast.FragmentSpread)
		Expect(isSpread).To(BeTrue())

		frag := result.Document.Definitions[1].(*ast.FragmentDefinition)
		Expect(frag.Name.Value).To(Equal("Details"))
		Expect(frag.TypeCondition.Value).To(Equal("User"))
	})

	It("parses an aliased field with an inline fragment", func() {
		src := `{
  aliasedName: field {
    ... on SomeType {
      x
    }
  }
}`
		result := parser.ParseExecutableDocument(src, "query.graphql")
		Expect(result.HasErrors()).To(BeFalse())
		op := result.Document.Definitions[0].(*ast.OperationDefinition)
		field := op.SelectionSet.Selections[0].(*ast.Field)
		Expect(field.ResponseName()).To(Equal("aliasedName"))
		Expect(field.Name.Value).To(Equal("field"))

		inline := field.SelectionSet.Selections[0].(*ast.InlineFragment)
		Expect(inline.TypeCondition.Value).To(Equal("SomeType"))
	})

	It("reports an unclosed selection set instead of looping forever", func() {
		result := parser.ParseExecutableDocument("{ field", "query.graphql")
		Expect(result.HasErrors()).To(BeTrue())
	})
})
