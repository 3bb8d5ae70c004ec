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

package lexer_test

import (
	"github.com/hexgql/schema/graphql/lexer"
	"github.com/hexgql/schema/graphql/token"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

func lexOne(src string) *token.Token {
	return lexer.New(src, "").Next()
}

func lexAll(src string) []*token.Token {
	l := lexer.New(src, "")
	var toks []*token.Token
	for {
		tok := l.Next()
		toks = append(toks, tok)
		if tok.Kind == token.KindEOF {
			return toks
		}
	}
}

var _ = Describe("Lexer", func() {
	It("skips whitespace", func() {
		tok := lexOne("\n\n    \t  foo\n\n\n")
		Expect(tok.Kind).To(Equal(token.KindName))
		Expect(tok.Value).To(Equal("foo"))
		Expect(tok.Span.Start.Line1()).To(Equal(uint32(3)))
		Expect(tok.Span.Start.ColUTF8_1()).To(Equal(uint32(8)))
	})

	It("records leading comments and commas as trivia", func() {
		tok := lexOne("#comment\n,,, foo")
		Expect(tok.Value).To(Equal("foo"))
		Expect(tok.LeadingTrivia).To(HaveLen(4))
		Expect(tok.LeadingTrivia[0].Kind).To(Equal(token.TriviaComment))
		Expect(tok.LeadingTrivia[0].Text).To(Equal("#comment"))
		for _, tr := range tok.LeadingTrivia[1:] {
			Expect(tr.Kind).To(Equal(token.TriviaComma))
		}
	})

	It("lexes strings", func() {
		tok := lexOne(`"simple"`)
		Expect(tok.Kind).To(Equal(token.KindStringValue))
		Expect(tok.Value).To(Equal("simple"))
	})

	It("lexes string escape sequences", func() {
		tok := lexOne(`"escaped \n\r\b\t\f\"\\\/ characters"`)
		Expect(tok.Kind).To(Equal(token.KindStringValue))
		Expect(tok.Value).To(Equal("escaped \n\r\b\t\f\"\\/ characters"))
	})

	It("lexes unicode escape sequences", func() {
		tok := lexOne(`"\` + `u1234\` + `u5678"`)
		Expect(tok.Kind).To(Equal(token.KindStringValue))
		Expect(tok.Value).To(Equal("ሴ噸"))
	})

	It("lexes braced unicode escape sequences", func() {
		tok := lexOne(`"\u{1F600}"`)
		Expect(tok.Kind).To(Equal(token.KindStringValue))
		Expect(tok.Value).To(Equal("😀"))
	})

	It("reports an unterminated string on an embedded newline", func() {
		tok := lexOne("\"contains new\nline\"")
		Expect(tok.Kind).To(Equal(token.KindError))
		Expect(tok.ErrorMessage).To(Equal("Unterminated string."))
		Expect(tok.ErrorNotes).NotTo(BeEmpty())
	})

	It("lexes block strings, dedenting and trimming blank lines", func() {
		tok := lexOne("\"\"\"\n    Hello,\n      World!\n\n    Yours,\n      GraphQL.\n  \"\"\"")
		Expect(tok.Kind).To(Equal(token.KindStringValue))
		Expect(tok.Value).To(Equal("Hello,\n  World!\n\nYours,\n  GraphQL."))
	})

	It("lexes a numeric Int", func() {
		tok := lexOne("123")
		Expect(tok.Kind).To(Equal(token.KindIntValue))
		Expect(tok.Value).To(Equal("123"))
	})

	It("lexes a negative Int", func() {
		tok := lexOne("-123")
		Expect(tok.Kind).To(Equal(token.KindIntValue))
		Expect(tok.Value).To(Equal("-123"))
	})

	It("lexes a Float with a fractional part", func() {
		tok := lexOne("1.23")
		Expect(tok.Kind).To(Equal(token.KindFloatValue))
		Expect(tok.Value).To(Equal("1.23"))
	})

	It("lexes a Float with an exponent", func() {
		tok := lexOne("1e10")
		Expect(tok.Kind).To(Equal(token.KindFloatValue))
		Expect(tok.Value).To(Equal("1e10"))
	})

	It("rejects a leading zero followed by another digit", func() {
		tok := lexOne("01")
		Expect(tok.Kind).To(Equal(token.KindError))
		Expect(tok.ErrorMessage).To(ContainSubstring("unexpected digit after 0"))
	})

	It("rejects a bare decimal point with no following digit", func() {
		tok := lexOne("1.")
		Expect(tok.Kind).To(Equal(token.KindError))
		Expect(tok.ErrorMessage).To(ContainSubstring("expected digit after decimal point"))
	})

	It("lexes punctuators", func() {
		kinds := []token.Kind{
			token.KindBang, token.KindDollar, token.KindAmp, token.KindLeftParen,
			token.KindRightParen, token.KindColon, token.KindEquals, token.KindAt,
			token.KindLeftBracket, token.KindRightBracket, token.KindLeftBrace,
			token.KindPipe, token.KindRightBrace,
		}
		text := "!$&():=@[]{|}"
		toks := lexAll(text)
		Expect(toks).To(HaveLen(len(kinds) + 1))
		for i, kind := range kinds {
			Expect(toks[i].Kind).To(Equal(kind))
		}
	})

	It("lexes the spread operator", func() {
		tok := lexOne("...")
		Expect(tok.Kind).To(Equal(token.KindSpread))
	})

	It("reports two adjacent dots distinctly from a spread", func() {
		tok := lexOne("..")
		Expect(tok.Kind).To(Equal(token.KindError))
		Expect(tok.ErrorMessage).To(ContainSubstring("two dots"))
	})

	It("reports a lone dot distinctly", func() {
		tok := lexOne(".")
		Expect(tok.Kind).To(Equal(token.KindError))
		Expect(tok.ErrorMessage).To(ContainSubstring(`"."`))
		Expect(tok.ErrorNotes).NotTo(BeEmpty())
	})

	It("reports a spaced dot sequence distinctly", func() {
		tok := lexOne(". . .")
		Expect(tok.Kind).To(Equal(token.KindError))
		Expect(tok.ErrorMessage).To(ContainSubstring("spaced dot"))
	})

	It("lexes keywords as distinct kinds from Name", func() {
		Expect(lexOne("true").Kind).To(Equal(token.KindTrue))
		Expect(lexOne("false").Kind).To(Equal(token.KindFalse))
		Expect(lexOne("null").Kind).To(Equal(token.KindNull))
		Expect(lexOne("trueX").Kind).To(Equal(token.KindName))
	})

	It("tracks UTF-8 and UTF-16 columns independently across astral characters", func() {
		// U+1F600 (😀) is one UTF-8 scalar value but two UTF-16 code units.
		tok := lexOne("😀 foo")
		Expect(tok.Span.Start.ColUTF8_1()).To(Equal(uint32(1)))
		name := lexAll("😀 foo")[1]
		Expect(name.Span.Start.ColUTF8_1()).To(Equal(uint32(3)))
		Expect(name.Span.Start.ColUTF16_1()).To(Equal(uint32(4)))
	})

	It("treats CRLF as a single newline", func() {
		toks := lexAll("foo\r\nbar")
		Expect(toks[1].Span.Start.Line1()).To(Equal(uint32(2)))
		Expect(toks[1].Span.Start.ColUTF8_1()).To(Equal(uint32(1)))
	})

	It("rejects an unexpected character", func() {
		tok := lexOne("\x07")
		Expect(tok.Kind).To(Equal(token.KindError))
		Expect(tok.ErrorMessage).To(ContainSubstring("invalid character"))
	})

	It("suggests a double quote for a single-quoted string", func() {
		tok := lexOne("'single'")
		Expect(tok.Kind).To(Equal(token.KindError))
		Expect(tok.ErrorMessage).To(ContainSubstring("double quote"))
	})

	It("reaches and repeats EOF", func() {
		l := lexer.New("", "")
		Expect(l.Next().Kind).To(Equal(token.KindEOF))
		Expect(l.Next().Kind).To(Equal(token.KindEOF))
	})
})
