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

// Package lexer turns GraphQL source text into a stream of token.Token
// values. It borrows from the source string without copying (Token.Raw and
// Token.Value are substrings of the original text wherever no escape
// processing is required) and tracks both UTF-8 and UTF-16 columns as it
// advances.
package lexer

import (
	"fmt"
	"strings"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/hexgql/schema/graphql/diag"
	"github.com/hexgql/schema/graphql/position"
	"github.com/hexgql/schema/graphql/token"
)

// TokenSource is anything that can produce a stream of tokens, the seam
// that lets the parser run identically over a zero-copy text Lexer or over
// an adapter for a non-text host (e.g. a macro/IDE token tree).
type TokenSource interface {
	// Next returns the next token in the stream. Once it returns a
	// token.KindEOF token it must keep returning an equivalent EOF token on
	// every subsequent call.
	Next() *token.Token
}

// Lexer is a stateful, synchronous, single-pass token source over a
// GraphQL source string.
type Lexer struct {
	body string
	file string

	bytePos  uint32
	line     uint32
	colUTF8  uint32
	colUTF16 uint32
	sawCR    bool
}

var _ TokenSource = (*Lexer)(nil)

// New creates a Lexer over the given source text. file is the (possibly
// synthetic) path reported in spans; pass "" for an anonymous source.
func New(body string, file string) *Lexer {
	return &Lexer{body: body, file: file}
}

func (l *Lexer) position() position.Position {
	return position.Position{Line: l.line, ColUTF8: l.colUTF8, ColUTF16: l.colUTF16, Byte: l.bytePos}
}

func (l *Lexer) span(start position.Position) position.Span {
	return position.Span{Start: start, End: l.position(), File: l.file}
}

// peekByte returns the byte at the current position without consuming it,
// or 0 at EOF.
func (l *Lexer) peekByte() byte {
	if int(l.bytePos) >= len(l.body) {
		return 0
	}
	return l.body[l.bytePos]
}

func (l *Lexer) peekByteAt(offset int) byte {
	i := int(l.bytePos) + offset
	if i < 0 || i >= len(l.body) {
		return 0
	}
	return l.body[i]
}

func (l *Lexer) atEnd() bool {
	return int(l.bytePos) >= len(l.body)
}

// advanceRune consumes one UTF-8 rune (or, for an invalid encoding, one
// byte) and updates line/column counters: \n, \r, and \r\n each advance
// the line and reset both columns; a lone \r sets a latch so
// a following \n does not double-count; BOM is skipped without affecting
// columns. Returns the consumed rune.
func (l *Lexer) advanceRune() rune {
	if l.atEnd() {
		return -1
	}

	r, size := utf8.DecodeRuneInString(l.body[l.bytePos:])
	if r == utf8.RuneError && size <= 1 {
		size = 1
		r = rune(l.body[l.bytePos])
	}
	l.bytePos += uint32(size)

	switch r {
	case '\r':
		l.line++
		l.colUTF8 = 0
		l.colUTF16 = 0
		l.sawCR = true
		return r
	case '\n':
		wasCR := l.sawCR
		l.sawCR = false
		if wasCR {
			return r
		}
		l.line++
		l.colUTF8 = 0
		l.colUTF16 = 0
		return r
	case '﻿':
		l.sawCR = false
		return r
	default:
		l.sawCR = false
		l.colUTF8++
		width := utf16.RuneLen(r)
		if width < 1 {
			width = 1
		}
		l.colUTF16 += uint32(width)
		return r
	}
}

// consumeWhitespace advances over space, tab, newlines, and a UTF-8 BOM.
// Commas are trivia, not whitespace, and are left for the caller.
func (l *Lexer) consumeWhitespace() {
	for !l.atEnd() {
		switch l.peekByte() {
		case ' ', '\t', '\n', '\r':
			l.advanceRune()
		case 0xEF:
			if l.peekByteAt(1) == 0xBB && l.peekByteAt(2) == 0xBF {
				l.advanceRune()
				continue
			}
			return
		default:
			return
		}
	}
}

func (l *Lexer) errorToken(start position.Position, message string, notes ...diag.Note) *token.Token {
	return &token.Token{
		Kind:         token.KindError,
		Span:         l.span(start),
		ErrorMessage: message,
		ErrorNotes:   notes,
	}
}

func (l *Lexer) makeToken(kind token.Kind, start position.Position) *token.Token {
	return &token.Token{Kind: kind, Span: l.span(start), Raw: l.body[start.Byte:l.bytePos]}
}

func (l *Lexer) makeValueToken(kind token.Kind, start position.Position, value string) *token.Token {
	return &token.Token{
		Kind:  kind,
		Span:  l.span(start),
		Raw:   l.body[start.Byte:l.bytePos],
		Value: value,
	}
}

// Next implements TokenSource: skip whitespace, accumulate trivia
// (comments, commas), lex the next significant token, and attach the
// accumulated trivia to it.
func (l *Lexer) Next() *token.Token {
	var trivia []token.Trivia

	for {
		l.consumeWhitespace()

		if l.atEnd() {
			tok := &token.Token{Kind: token.KindEOF, Span: l.span(l.position())}
			tok.LeadingTrivia = trivia
			return tok
		}

		switch l.peekByte() {
		case '#':
			trivia = append(trivia, l.lexComment())
			continue
		case ',':
			start := l.position()
			l.advanceRune()
			trivia = append(trivia, token.Trivia{Kind: token.TriviaComma, Span: l.span(start), Text: ","})
			continue
		}
		break
	}

	tok := l.lexToken()
	tok.LeadingTrivia = trivia
	return tok
}

func (l *Lexer) lexComment() token.Trivia {
	start := l.position()
	for !l.atEnd() {
		b := l.peekByte()
		if b == '\n' || b == '\r' {
			break
		}
		l.advanceRune()
	}
	sp := l.span(start)
	return token.Trivia{Kind: token.TriviaComment, Span: sp, Text: l.body[start.Byte:l.bytePos]}
}

// charDescription renders the rune at byte offset bytePos for error
// messages, e.g. `"x"` or a `\uXXXX` escape for non-printable runes.
func (l *Lexer) charDescription(bytePos uint32) string {
	if int(bytePos) >= len(l.body) {
		return "<EOF>"
	}
	r, _ := utf8.DecodeRuneInString(l.body[bytePos:])
	if r >= 0x20 && r < 0x7F {
		return fmt.Sprintf("%q", r)
	}
	return fmt.Sprintf(`"\u%04X"`, r)
}

func (l *Lexer) lexToken() *token.Token {
	start := l.position()
	b := l.peekByte()

	simple := func(kind token.Kind) *token.Token {
		l.advanceRune()
		return l.makeToken(kind, start)
	}

	switch {
	case b == '!':
		return simple(token.KindBang)
	case b == '$':
		return simple(token.KindDollar)
	case b == '&':
		return simple(token.KindAmp)
	case b == '(':
		return simple(token.KindLeftParen)
	case b == ')':
		return simple(token.KindRightParen)
	case b == '.':
		return l.lexDot()
	case b == ':':
		return simple(token.KindColon)
	case b == '=':
		return simple(token.KindEquals)
	case b == '@':
		return simple(token.KindAt)
	case b == '[':
		return simple(token.KindLeftBracket)
	case b == ']':
		return simple(token.KindRightBracket)
	case b == '{':
		return simple(token.KindLeftBrace)
	case b == '|':
		return simple(token.KindPipe)
	case b == '}':
		return simple(token.KindRightBrace)
	case isNameStart(b):
		return l.lexName()
	case b == '-' || isDigit(b):
		return l.lexNumber()
	case b == '"':
		return l.lexStringOrBlockString()
	}

	return l.lexUnexpectedChar(start)
}

func (l *Lexer) lexUnexpectedChar(start position.Position) *token.Token {
	b := l.peekByte()
	var message string
	switch {
	case b < 0x20 && b != '\t':
		message = fmt.Sprintf("Cannot contain the invalid character %s.", l.charDescription(l.bytePos))
	case b == '\'':
		message = `Unexpected single quote character ('), did you mean to use a double quote (")?`
	default:
		message = fmt.Sprintf("Cannot parse the unexpected character %s.", l.charDescription(l.bytePos))
	}
	l.advanceRune()
	return l.errorToken(start, message)
}

func isNameStart(b byte) bool {
	return b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isNameContinue(b byte) bool {
	return isNameStart(b) || isDigit(b)
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func (l *Lexer) lexName() *token.Token {
	start := l.position()
	l.advanceRune()
	for !l.atEnd() && isNameContinue(l.peekByte()) {
		l.advanceRune()
	}
	raw := l.body[start.Byte:l.bytePos]
	switch raw {
	case "true":
		return l.makeValueToken(token.KindTrue, start, raw)
	case "false":
		return l.makeValueToken(token.KindFalse, start, raw)
	case "null":
		return l.makeValueToken(token.KindNull, start, raw)
	}
	return l.makeValueToken(token.KindName, start, raw)
}

// maxDotLookahead bounds the peek window lexDot uses to classify a dot
// sequence; no dot production in the grammar is longer than this.
const maxDotLookahead = 8

// lexDot handles dot sequences: only "..." (three adjacent dots) is
// a valid token. Every other dot sequence is a distinct, recoverable
// error covering a bounded lookahead window, never the rest of the source.
func (l *Lexer) lexDot() *token.Token {
	start := l.position()
	window := l.peekWindow(maxDotLookahead)

	if strings.HasPrefix(window, "...") {
		l.advanceRune()
		l.advanceRune()
		l.advanceRune()
		return l.makeToken(token.KindSpread, start)
	}

	if strings.HasPrefix(window, "..") {
		l.advanceRune()
		l.advanceRune()
		return l.errorToken(start,
			`Cannot parse the unexpected character sequence ".." (two dots).`,
			diag.HelpNote(`Did you mean the spread operator "..."? A third dot is required.`))
	}

	// Spaced variants: ". . .", ".. .", ". ..", ". .". Longest prefix wins so
	// "..." isn't misreported as just "..".
	for _, spaced := range []string{". . .", ".. .", ". ..", ". ."} {
		if strings.HasPrefix(window, spaced) {
			for range spaced {
				l.advanceRune()
			}
			return l.errorToken(start,
				fmt.Sprintf("Unexpected spaced dot sequence %q.", spaced),
				diag.HelpNote(`Did you mean "..."? The three dots of the spread operator must be adjacent, with no spaces between them.`))
		}
	}

	l.advanceRune()
	return l.errorToken(start,
		`Cannot parse the unexpected character ".".`,
		diag.HelpNote(`Did you mean to use the spread operator "..."?`))
}

// peekWindow returns up to n bytes from the current position without
// consuming them, truncated at a line terminator so lookahead never spans
// lines.
func (l *Lexer) peekWindow(n int) string {
	end := int(l.bytePos) + n
	if end > len(l.body) {
		end = len(l.body)
	}
	w := l.body[l.bytePos:end]
	if i := strings.IndexAny(w, "\r\n"); i >= 0 {
		w = w[:i]
	}
	return w
}

// lexNumber implements the Int/Float number grammar.
func (l *Lexer) lexNumber() *token.Token {
	start := l.position()
	kind := token.KindIntValue

	if l.peekByte() == '-' {
		l.advanceRune()
		if !isDigit(l.peekByte()) {
			bad := l.position()
			l.advanceRune()
			return l.errorToken(start, fmt.Sprintf("Invalid number, expected digit after '-' but got: %s.", l.charDescription(bad.Byte)))
		}
	}

	first := l.peekByte()
	l.advanceRune()
	if first == '0' {
		if isDigit(l.peekByte()) {
			badStart := l.position()
			l.advanceRune()
			return l.errorToken(start, fmt.Sprintf("Invalid number, unexpected digit after 0: %s.", l.charDescription(badStart.Byte)))
		}
	} else {
		l.consumeDigits()
	}

	if l.peekByte() == '.' {
		kind = token.KindFloatValue
		l.advanceRune()
		if !isDigit(l.peekByte()) {
			return l.errorToken(start, fmt.Sprintf("Invalid number, expected digit after decimal point ('.') but got: %s.", l.charDescription(l.bytePos)))
		}
		l.consumeDigits()
	}

	if b := l.peekByte(); b == 'e' || b == 'E' {
		kind = token.KindFloatValue
		l.advanceRune()
		if b := l.peekByte(); b == '+' || b == '-' {
			l.advanceRune()
		}
		if !isDigit(l.peekByte()) {
			return l.errorToken(start, fmt.Sprintf("Invalid number, expected digit but got: %s.", l.charDescription(l.bytePos)))
		}
		l.consumeDigits()
	}

	raw := l.body[start.Byte:l.bytePos]
	return l.makeValueToken(kind, start, raw)
}

func (l *Lexer) consumeDigits() {
	for isDigit(l.peekByte()) {
		l.advanceRune()
	}
}

func (l *Lexer) lexStringOrBlockString() *token.Token {
	start := l.position()
	l.advanceRune() // consume opening '"'

	if l.peekByte() == '"' {
		l.advanceRune()
		if l.peekByte() == '"' {
			l.advanceRune()
			return l.lexBlockStringBody(start)
		}
		// Two quotes with no third: empty single-line string.
		return l.makeValueToken(token.KindStringValue, start, "")
	}

	return l.lexStringBody(start)
}

func (l *Lexer) lexStringBody(start position.Position) *token.Token {
	var value strings.Builder
	for !l.atEnd() {
		b := l.peekByte()
		if b == '\n' || b == '\r' {
			return l.errorToken(start, "Unterminated string.",
				diag.HelpNote(`Strings cannot contain an unescaped newline; use a block string ("""...""") to span multiple lines.`))
		}
		if b == '"' {
			l.advanceRune()
			return l.makeValueToken(token.KindStringValue, start, value.String())
		}
		if b < 0x20 && b != '\t' {
			bad := l.position()
			l.advanceRune()
			return l.errorToken(start, fmt.Sprintf("Invalid character within String: %s.", l.charDescription(bad.Byte)))
		}
		if b != '\\' {
			r := l.advanceRune()
			value.WriteRune(r)
			continue
		}

		l.advanceRune() // consume '\'
		esc := l.peekByte()
		switch esc {
		case '"':
			value.WriteByte('"')
			l.advanceRune()
		case '\\':
			value.WriteByte('\\')
			l.advanceRune()
		case '/':
			value.WriteByte('/')
			l.advanceRune()
		case 'b':
			value.WriteByte('\b')
			l.advanceRune()
		case 'f':
			value.WriteByte('\f')
			l.advanceRune()
		case 'n':
			value.WriteByte('\n')
			l.advanceRune()
		case 'r':
			value.WriteByte('\r')
			l.advanceRune()
		case 't':
			value.WriteByte('\t')
			l.advanceRune()
		case 'u':
			escStart := l.bytePos - 1
			r, ok := l.lexUnicodeEscape()
			if !ok {
				return l.errorToken(start, fmt.Sprintf("Invalid character escape sequence: %s.", l.body[escStart:l.bytePos]))
			}
			value.WriteRune(r)
		default:
			escStart := l.bytePos - 1
			l.advanceRune()
			return l.errorToken(start, fmt.Sprintf("Invalid character escape sequence: %s.", l.body[escStart:l.bytePos]))
		}
	}
	return l.errorToken(start, "Unterminated string.")
}

// lexUnicodeEscape consumes the characters after "\" (the caller has
// consumed the backslash but not the 'u'): either exactly 4 hex digits, or
// a braced "{...}" form with 1-6 hex digits.
func (l *Lexer) lexUnicodeEscape() (rune, bool) {
	l.advanceRune() // consume 'u'

	if l.peekByte() == '{' {
		l.advanceRune()
		digitsStart := l.bytePos
		for isHexDigit(l.peekByte()) {
			l.advanceRune()
		}
		digits := l.body[digitsStart:l.bytePos]
		if l.peekByte() != '}' || len(digits) == 0 || len(digits) > 6 {
			return 0, false
		}
		l.advanceRune() // consume '}'
		code, err := parseHex(digits)
		if err != nil || code > 0x10FFFF {
			return 0, false
		}
		return rune(code), true
	}

	digitsStart := l.bytePos
	for i := 0; i < 4; i++ {
		if !isHexDigit(l.peekByte()) {
			return 0, false
		}
		l.advanceRune()
	}
	code, err := parseHex(l.body[digitsStart:l.bytePos])
	if err != nil {
		return 0, false
	}
	return rune(code), true
}

func isHexDigit(b byte) bool {
	return isDigit(b) || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}

func parseHex(s string) (int64, error) {
	var v int64
	for _, c := range []byte(s) {
		v <<= 4
		switch {
		case c >= '0' && c <= '9':
			v |= int64(c - '0')
		case c >= 'a' && c <= 'f':
			v |= int64(c-'a') + 10
		case c >= 'A' && c <= 'F':
			v |= int64(c-'A') + 10
		default:
			return 0, fmt.Errorf("not hex: %q", s)
		}
	}
	return v, nil
}

func (l *Lexer) lexBlockStringBody(start position.Position) *token.Token {
	var raw strings.Builder
	for !l.atEnd() {
		b := l.peekByte()
		if b == '"' && l.peekByteAt(1) == '"' && l.peekByteAt(2) == '"' {
			l.advanceRune()
			l.advanceRune()
			l.advanceRune()
			return l.makeValueToken(token.KindStringValue, start, blockStringValue(raw.String()))
		}
		if b == '\\' && l.peekByteAt(1) == '"' && l.peekByteAt(2) == '"' && l.peekByteAt(3) == '"' {
			l.advanceRune()
			l.advanceRune()
			l.advanceRune()
			l.advanceRune()
			raw.WriteString(`"""`)
			continue
		}
		if b < 0x20 && b != '\t' && b != '\r' && b != '\n' {
			bad := l.position()
			l.advanceRune()
			return l.errorToken(start, fmt.Sprintf("Invalid character within String: %s.", l.charDescription(bad.Byte)))
		}
		r := l.advanceRune()
		raw.WriteRune(r)
	}
	return l.errorToken(start, "Unterminated string.")
}
