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

// Package token defines the lexical token kinds, the Token value the lexer
// produces, and the trivia (comments, commas) that rides along with it.
package token

import (
	"fmt"

	"github.com/hexgql/schema/graphql/diag"
	"github.com/hexgql/schema/graphql/position"
)

// Kind describes the different kinds of tokens the lexer emits.
//
// Reference: https://spec.graphql.org/October2021/#sec-Appendix-Grammar-Summary.Lexical-Tokens
type Kind int

// Enumeration of Kind.
const (
	// Punctuators.
	KindBang Kind = iota + 1
	KindDollar
	KindAmp
	KindLeftParen
	KindRightParen
	KindSpread
	KindColon
	KindEquals
	KindAt
	KindLeftBracket
	KindRightBracket
	KindLeftBrace
	KindPipe
	KindRightBrace

	// Lexical value tokens.
	KindName
	KindIntValue
	KindFloatValue
	KindStringValue

	// Keywords. Distinct kinds from KindName.
	KindTrue
	KindFalse
	KindNull

	// KindEOF is the last token of any token stream.
	KindEOF

	// KindError is an error-recovery token: the lexer encountered invalid
	// input but, rather than aborting, emits this token carrying a message
	// and notes so the parser can record a diagnostic and continue.
	KindError
)

func (kind Kind) String() string {
	switch kind {
	case KindBang:
		return "!"
	case KindDollar:
		return "$"
	case KindAmp:
		return "&"
	case KindLeftParen:
		return "("
	case KindRightParen:
		return ")"
	case KindSpread:
		return "..."
	case KindColon:
		return ":"
	case KindEquals:
		return "="
	case KindAt:
		return "@"
	case KindLeftBracket:
		return "["
	case KindRightBracket:
		return "]"
	case KindLeftBrace:
		return "{"
	case KindPipe:
		return "|"
	case KindRightBrace:
		return "}"
	case KindName:
		return "Name"
	case KindIntValue:
		return "Int"
	case KindFloatValue:
		return "Float"
	case KindStringValue:
		return "String"
	case KindTrue:
		return "true"
	case KindFalse:
		return "false"
	case KindNull:
		return "null"
	case KindEOF:
		return "<EOF>"
	case KindError:
		return "<Error>"
	}
	return "<unknown token>"
}

// TriviaKind classifies a piece of trivia: text that is syntactically
// insignificant but preserved for diagnostics and lossless round-tripping.
type TriviaKind uint8

// Enumeration of TriviaKind.
const (
	TriviaComment TriviaKind = iota
	TriviaComma
)

// Trivia is a single comment or comma preceding a token.
type Trivia struct {
	Kind TriviaKind
	Span position.Span
	// Text is the raw source text of the trivia (for comments, including the
	// leading "#"; for commas, always ",").
	Text string
}

// Token is a single lexical token: its kind, its span in the source, its
// interpreted value (for Name/Int/Float/String), and the trivia that
// preceded it.
type Token struct {
	Kind Kind
	Span position.Span

	// Raw is the token's raw source text, including quotes for strings and
	// any leading "-" for numbers.
	Raw string

	// Value is the token's interpreted/cooked value. Empty for punctuators.
	// For KindStringValue this is the cooked (escape-processed, and for
	// block strings, dedented) string contents.
	Value string

	// LeadingTrivia holds the comments and commas consumed immediately
	// before this token. The final KindEOF token absorbs any trailing
	// trivia at the end of the source.
	LeadingTrivia []Trivia

	// ErrorMessage and ErrorNotes are populated only when Kind == KindError.
	ErrorMessage string
	ErrorNotes   []diag.Note
}

// Description describes a token as a string, useful in diagnostic messages
// ("Expected Name, found }").
func (t *Token) Description() string {
	switch t.Kind {
	case KindName, KindIntValue, KindFloatValue, KindStringValue:
		return fmt.Sprintf("%s %q", t.Kind, t.Value)
	case KindError:
		return t.ErrorMessage
	}
	return t.Kind.String()
}

// Diagnostic converts an error token into a renderable diagnostic. It only
// makes sense to call this on a KindError token.
func (t *Token) Diagnostic(code diag.Code) diag.Diagnostic {
	return diag.Diagnostic{
		Message:  t.ErrorMessage,
		Span:     t.Span,
		Severity: diag.SeverityError,
		Code:     code,
		Notes:    t.ErrorNotes,
	}
}
