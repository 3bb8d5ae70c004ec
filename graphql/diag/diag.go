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

// Package diag implements structured diagnostics: a message, a primary
// span, a severity, a closed taxonomy code, and zero or more notes that may
// carry their own spans. Diagnostics render either as a compact one-line
// form or a detailed, caret-underlined source snippet.
package diag

import (
	"fmt"
	"strings"

	"github.com/hexgql/schema/graphql/position"
)

// Severity distinguishes fatal diagnostics from advisory ones. The library
// currently only produces SeverityError; SeverityWarning is reserved for
// future deprecation-style diagnostics.
type Severity uint8

// Enumeration of Severity.
const (
	SeverityError Severity = iota
	SeverityWarning
)

func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	}
	return "unknown"
}

// Code is a closed taxonomy of every diagnostic kind the library emits.
// Grouped by phase: lexical, syntactic, schema-build, then
// type-validation.
type Code uint16

// Enumeration of Code.
const (
	// Lexical.
	CodeUnterminatedString Code = iota + 1
	CodeInvalidEscape
	CodeInvalidUnicodeEscape
	CodeInvalidNumber
	CodeUnexpectedChar
	CodeUnexpectedDotSequence
	CodeRawStringNotSupported

	// Syntactic.
	CodeUnexpectedToken
	CodeExpectedName
	CodeExpectedColon
	CodeExpectedBrace
	CodeExpectedToken
	CodeUnclosedDelimiter
	CodeLexerError

	// Schema-build.
	CodeDuplicateTypeDefinition
	CodeDuplicateDirectiveDefinition
	CodeDuplicateFieldNameDefinition
	CodeDuplicateEnumValueDefinition
	CodeDuplicatedUnionMember
	CodeDuplicateOperationDefinition
	CodeDuplicateInterfaceImplementsDeclaration
	CodeExtensionOfUndefinedType
	CodeInvalidExtensionType
	CodeInvalidDunderPrefixedTypeName
	CodeInvalidDunderPrefixedFieldName
	CodeInvalidDunderPrefixedParamName
	CodeInvalidDunderPrefixedDirectiveName
	CodeInvalidSelfImplementingInterface
	CodeNoQueryOperationTypeDefined
	CodeNonUniqueOperationTypes
	CodeRedefinitionOfBuiltinDirective
	CodeEnumWithNoVariants
	CodeSchemaFileReadError
	CodeParseError
	CodeTypeValidationErrors
	CodeBuildErrors

	// Type-validation.
	CodeUndefinedTypeName
	CodeInvalidInputFieldWithOutputType
	CodeInvalidOutputFieldWithInputType
	CodeInvalidParameterWithOutputOnlyType
	CodeCircularInputFieldChain
	CodeImplementsUndefinedInterface
	CodeImplementsNonInterfaceType
	CodeMissingInterfaceSpecifiedField
	CodeMissingInterfaceSpecifiedFieldParameter
	CodeInvalidInterfaceSpecifiedFieldType
	CodeInvalidInterfaceSpecifiedFieldParameterType
	CodeInvalidRequiredAdditionalParameterOnInterfaceSpecifiedField
	CodeMissingRecursiveInterfaceImplementation
	CodeInvalidUnionMemberTypeKind

	// CodeRepeatedNonRepeatableDirective reports a non-repeatable directive
	// applied more than once to the same target; added here rather than
	// overloading an unrelated code.
	CodeRepeatedNonRepeatableDirective
)

// NoteKind classifies a Note.
type NoteKind uint8

// Enumeration of NoteKind.
const (
	NoteGeneral NoteKind = iota
	NoteHelp
	NoteSpec
)

func (k NoteKind) String() string {
	switch k {
	case NoteGeneral:
		return "note"
	case NoteHelp:
		return "help"
	case NoteSpec:
		return "spec"
	}
	return "note"
}

// Note is additional context attached to a Diagnostic. Span is optional:
// some notes (e.g. "use `...` spread operator") just explain, others point
// at a second, related location (e.g. the earlier definition in a
// duplicate-definition error).
type Note struct {
	Kind    NoteKind
	Message string
	Span    *position.Span
}

// HelpNote is a convenience constructor for a NoteHelp-kind Note with no
// span, the most common shape emitted by the lexer and parser.
func HelpNote(message string) Note {
	return Note{Kind: NoteHelp, Message: message}
}

// SpecNote is a convenience constructor for a NoteSpec-kind Note citing
// the GraphQL specification.
func SpecNote(message string) Note {
	return Note{Kind: NoteSpec, Message: message}
}

// Diagnostic is the stable, renderable shape every error in this library
// ultimately carries: a message, a primary span, a severity, a taxonomy
// code, and notes.
type Diagnostic struct {
	Message  string
	Span     position.Span
	Severity Severity
	Code     Code
	Notes    []Note
}

// Diagnosable is implemented by every error type in the library so callers
// can recover the renderable Diagnostic regardless of the concrete error.
type Diagnosable interface {
	error
	Diagnostic() Diagnostic
}

// file returns the diagnostic's file path, or a synthetic placeholder when
// the span carries none (e.g. GraphQLBuiltIn locations).
func (d Diagnostic) file() string {
	if d.Span.File != "" {
		return d.Span.File
	}
	return "<unknown>"
}

// OneLine renders the diagnostic as "path:line:col: severity: message", the
// compact form used when source text isn't available for a snippet.
func (d Diagnostic) OneLine() string {
	return fmt.Sprintf("%s:%d:%d: %s: %s",
		d.file(), d.Span.Start.Line1(), d.Span.Start.ColUTF8_1(), d.Severity, d.Message)
}

// Detailed renders a caret-underlined source snippet for the diagnostic,
// followed by one snippet per span-attached note. source is the full text
// the diagnostic's span was computed against; when source is empty (not
// available to the renderer), Detailed falls back to OneLine-style lines
// for the diagnostic and each note but never omits a location.
func (d Diagnostic) Detailed(source string) string {
	var b strings.Builder
	b.WriteString(d.OneLine())
	b.WriteByte('\n')
	if snippet := renderSnippet(source, d.Span); snippet != "" {
		b.WriteString(snippet)
	}
	for _, note := range d.Notes {
		snippet := ""
		if note.Span != nil {
			snippet = renderSnippet(source, *note.Span)
		}
		if note.Span != nil && snippet == "" {
			file := note.Span.File
			if file == "" {
				file = "<unknown>"
			}
			b.WriteString(fmt.Sprintf("%s:%d:%d: %s: %s\n", file,
				note.Span.Start.Line1(), note.Span.Start.ColUTF8_1(), note.Kind, note.Message))
			continue
		}
		b.WriteString(fmt.Sprintf("%s: %s\n", note.Kind, note.Message))
		b.WriteString(snippet)
	}
	return b.String()
}

// renderSnippet returns a caret-underlined rendering of span's line within
// source, or "" if source is empty or the span's line can't be recovered.
func renderSnippet(source string, span position.Span) string {
	if source == "" {
		return ""
	}
	lines := strings.Split(source, "\n")
	lineIdx := int(span.Start.Line)
	if lineIdx < 0 || lineIdx >= len(lines) {
		return ""
	}
	line := strings.TrimRight(lines[lineIdx], "\r")

	caretCol := int(span.Start.ColUTF8)
	if caretCol > len(line) {
		caretCol = len(line)
	}
	width := 1
	if span.End.Line == span.Start.Line && span.End.ColUTF8 > span.Start.ColUTF8 {
		width = int(span.End.ColUTF8 - span.Start.ColUTF8)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%5d | %s\n", span.Start.Line1(), line)
	b.WriteString("      | ")
	b.WriteString(strings.Repeat(" ", caretCol))
	b.WriteString(strings.Repeat("^", width))
	b.WriteByte('\n')
	return b.String()
}
