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

package position_test

import (
	"testing"

	"github.com/hexgql/schema/graphql/position"
	"github.com/stretchr/testify/assert"
)

func TestPosition1Indexed(t *testing.T) {
	p := position.Position{Line: 2, ColUTF8: 4, ColUTF16: 4, Byte: 10}
	assert.Equal(t, uint32(3), p.Line1())
	assert.Equal(t, uint32(5), p.ColUTF8_1())
	assert.Equal(t, uint32(5), p.ColUTF16_1())
	assert.Equal(t, "3:5", p.String())
}

func TestSpanIsZero(t *testing.T) {
	assert.True(t, position.Span{}.IsZero())
	assert.False(t, position.Span{File: "a.graphql"}.IsZero())
}

func TestSpanJoinTakesOuterBounds(t *testing.T) {
	a := position.Span{
		Start: position.Position{Byte: 5},
		End:   position.Position{Byte: 10},
		File:  "a.graphql",
	}
	b := position.Span{
		Start: position.Position{Byte: 2},
		End:   position.Position{Byte: 8},
	}
	joined := position.Join(a, b)
	assert.Equal(t, uint32(2), joined.Start.Byte)
	assert.Equal(t, uint32(10), joined.End.Byte)
	assert.Equal(t, "a.graphql", joined.File, "File is taken from the first argument")
}

func TestSourceLocationConstructors(t *testing.T) {
	span := position.Span{File: "schema.graphql"}

	schemaFile := position.SchemaFile(span)
	assert.False(t, schemaFile.IsBuiltIn())
	assert.Equal(t, position.OriginSchemaFile, schemaFile.Origin)

	schemaString := position.SchemaString(span)
	assert.Equal(t, position.OriginSchemaString, schemaString.Origin)

	opFile := position.OperationFile(span)
	assert.Equal(t, position.OriginOperationFile, opFile.Origin)

	assert.True(t, position.BuiltIn.IsBuiltIn())
	assert.Equal(t, position.Span{}, position.BuiltIn.Span)
}
