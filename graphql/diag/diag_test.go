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

package diag_test

import (
	"strings"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/hexgql/schema/graphql/diag"
	"github.com/hexgql/schema/graphql/position"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// dumpOnMismatch renders got with go-spew so a failing assertion shows the
// full Diagnostic structure instead of just its zero-value-looking fields.
func dumpOnMismatch(got diag.Diagnostic) string {
	return spew.Sdump(got)
}

func span(file string, line, col uint32) position.Span {
	start := position.Position{Line: line, ColUTF8: col, ColUTF16: col}
	end := position.Position{Line: line, ColUTF8: col + 1, ColUTF16: col + 1}
	return position.Span{Start: start, End: end, File: file}
}

func TestOneLineRendersStableFieldOrder(t *testing.T) {
	d := diag.Diagnostic{
		Message:  "unexpected token",
		Span:     span("schema.graphql", 2, 4),
		Severity: diag.SeverityError,
		Code:     diag.CodeUnexpectedToken,
	}
	assert.Equal(t, "schema.graphql:3:5: error: unexpected token", d.OneLine(), dumpOnMismatch(d))
}

func TestOneLineFallsBackToSyntheticFileName(t *testing.T) {
	d := diag.Diagnostic{Message: "boom", Span: position.Span{}}
	assert.True(t, strings.HasPrefix(d.OneLine(), "<unknown>:1:1:"))
}

func TestDetailedRendersCaretSnippetAndNotes(t *testing.T) {
	source := "type Foo {\n  bar: Int\n}\n"
	noteSpan := span("schema.graphql", 1, 2)
	d := diag.Diagnostic{
		Message:  "duplicate field",
		Span:     span("schema.graphql", 1, 2),
		Severity: diag.SeverityError,
		Code:     diag.CodeDuplicateFieldNameDefinition,
		Notes: []diag.Note{
			{Kind: diag.NoteGeneral, Message: "first defined here", Span: &noteSpan},
			diag.HelpNote("remove the duplicate"),
		},
	}
	out := d.Detailed(source)
	require.Contains(t, out, "duplicate field")
	assert.Contains(t, out, "bar: Int")
	assert.Contains(t, out, "^")
	assert.Contains(t, out, "note: first defined here")
	assert.Contains(t, out, "help: remove the duplicate")
}

func TestDetailedWithoutSourceOmitsSnippetButKeepsLocation(t *testing.T) {
	d := diag.Diagnostic{
		Message: "boom",
		Span:    span("schema.graphql", 4, 0),
		Code:    diag.CodeUnexpectedToken,
	}
	out := d.Detailed("")
	assert.Contains(t, out, "schema.graphql:5:1")
	assert.NotContains(t, out, "|")
}

func TestHelpAndSpecNoteConstructors(t *testing.T) {
	h := diag.HelpNote("use \"...\" instead")
	assert.Equal(t, diag.NoteHelp, h.Kind)
	assert.Nil(t, h.Span)

	s := diag.SpecNote("see the October 2021 spec")
	assert.Equal(t, diag.NoteSpec, s.Kind)
}

func TestSeverityAndNoteKindStringers(t *testing.T) {
	assert.Equal(t, "error", diag.SeverityError.String())
	assert.Equal(t, "warning", diag.SeverityWarning.String())
	assert.Equal(t, "note", diag.NoteGeneral.String())
	assert.Equal(t, "help", diag.NoteHelp.String())
	assert.Equal(t, "spec", diag.NoteSpec.String())
}
