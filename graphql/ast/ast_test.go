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

package ast_test

import (
	"testing"

	"github.com/hexgql/schema/graphql/ast"
	"github.com/stretchr/testify/assert"
)

func TestDirectivesByName(t *testing.T) {
	skip := &ast.Directive{Name: ast.Name{Value: "skip"}}
	include := &ast.Directive{Name: ast.Name{Value: "include"}}
	ds := ast.Directives{skip, include}

	assert.Same(t, skip, ds.ByName("skip"))
	assert.Same(t, include, ds.ByName("include"))
	assert.Nil(t, ds.ByName("deprecated"))
}

func TestFieldResponseNamePrefersAlias(t *testing.T) {
	aliased := &ast.Field{Alias: &ast.Name{Value: "myAlias"}, Name: ast.Name{Value: "field"}}
	assert.Equal(t, "myAlias", aliased.ResponseName())

	plain := &ast.Field{Name: ast.Name{Value: "field"}}
	assert.Equal(t, "field", plain.ResponseName())
}

func TestInnermostNameUnwrapsNestedLists(t *testing.T) {
	inner := ast.NamedTypeAnnotation{Name: ast.Name{Value: "Int"}}
	nested := ast.ListTypeAnnotation{
		Inner: ast.ListTypeAnnotation{Inner: inner},
	}
	assert.Equal(t, "Int", ast.InnermostName(nested))
}

func TestTypeAnnotationNullability(t *testing.T) {
	nonNull := ast.NamedTypeAnnotation{Name: ast.Name{Value: "ID"}, IsNullable: false}
	nullable := ast.NamedTypeAnnotation{Name: ast.Name{Value: "ID"}, IsNullable: true}
	assert.False(t, nonNull.Nullable())
	assert.True(t, nullable.Nullable())
}
