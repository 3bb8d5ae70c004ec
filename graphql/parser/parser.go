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

// Package parser is a recursive-descent parser that builds an ast.Document
// from a lexer.TokenSource. It parses both executable documents (queries,
// mutations, subscriptions, fragments) and schema documents (type-system
// definitions and extensions) through the same productions for values,
// directives, and type annotations, following the grammar summarized at
// https://spec.graphql.org/October2021/#sec-Appendix-Grammar-Summary.
package parser

import (
	"fmt"

	"github.com/hexgql/schema/graphql/ast"
	"github.com/hexgql/schema/graphql/diag"
	"github.com/hexgql/schema/graphql/lexer"
	"github.com/hexgql/schema/graphql/position"
	"github.com/hexgql/schema/graphql/token"
	"github.com/hexgql/schema/internal/util"
)

// SyntaxError is returned for every recoverable parse failure. The parser
// never stops at the first error: it records a SyntaxError and
// synchronizes to the next definition boundary.
type SyntaxError struct {
	diagnostic diag.Diagnostic
}

var _ diag.Diagnosable = (*SyntaxError)(nil)

func (e *SyntaxError) Error() string { return e.diagnostic.OneLine() }

// Diagnostic implements diag.Diagnosable.
func (e *SyntaxError) Diagnostic() diag.Diagnostic { return e.diagnostic }

func newSyntaxError(span position.Span, code diag.Code, message string, notes ...diag.Note) *SyntaxError {
	return &SyntaxError{diag.Diagnostic{
		Message:  message,
		Span:     span,
		Severity: diag.SeverityError,
		Code:     code,
		Notes:    notes,
	}}
}

// ParseResult is the outcome of parsing a document: the (possibly partial)
// AST built so far, and every SyntaxError encountered along the way. A
// non-empty Errors slice does not mean Document is nil — the parser
// recovers and keeps going so a host can report every syntax problem in
// one pass ("collect-all-errors mode").
type ParseResult struct {
	Document *ast.Document
	Errors   []error
}

// HasErrors reports whether parsing produced at least one SyntaxError.
func (r *ParseResult) HasErrors() bool { return len(r.Errors) > 0 }

// Parser consumes a lexer.TokenSource one token of lookahead at a time.
type Parser struct {
	source lexer.TokenSource
	tok    *token.Token
	file   string
	errors []error
}

// New creates a Parser over the given token source. file is reported in
// synthetic spans (e.g. an empty Document's span) when the source itself
// never produces one.
func New(source lexer.TokenSource, file string) *Parser {
	p := &Parser{source: source, file: file}
	p.advance()
	return p
}

// ParseExecutableDocument parses src as an executable document. It uses the
// same grammar as ParseSchemaDocument, so type-system definitions are
// accepted here too rather than reported as errors.
func ParseExecutableDocument(src string, file string) *ParseResult {
	return New(lexer.New(src, file), file).parseDocument()
}

// ParseSchemaDocument parses src as a schema document (type-system
// definitions, extensions, and an optional schema block).
func ParseSchemaDocument(src string, file string) *ParseResult {
	return New(lexer.New(src, file), file).parseDocument()
}

func (p *Parser) advance() {
	for {
		p.tok = p.source.Next()
		if p.tok.Kind != token.KindError {
			return
		}
		p.errors = append(p.errors, newSyntaxError(p.tok.Span, diag.CodeLexerError, p.tok.ErrorMessage, p.tok.ErrorNotes...))
		if p.tok.Kind == token.KindEOF {
			return
		}
	}
}

func (p *Parser) at(kind token.Kind) bool { return p.tok.Kind == kind }

func (p *Parser) atKeyword(word string) bool {
	return p.tok.Kind == token.KindName && p.tok.Value == word
}

func (p *Parser) skip(kind token.Kind) bool {
	if p.at(kind) {
		p.advance()
		return true
	}
	return false
}

func (p *Parser) skipKeyword(word string) bool {
	if p.atKeyword(word) {
		p.advance()
		return true
	}
	return false
}

func (p *Parser) unexpected(expected string) *SyntaxError {
	return newSyntaxError(p.tok.Span, diag.CodeUnexpectedToken,
		fmt.Sprintf("Expected %s, found %s.", expected, p.tok.Description()))
}

func (p *Parser) expect(kind token.Kind, expected string) (*token.Token, error) {
	if !p.at(kind) {
		return nil, p.unexpected(expected)
	}
	tok := p.tok
	p.advance()
	return tok, nil
}

func (p *Parser) expectKeyword(word string) error {
	if !p.skipKeyword(word) {
		return p.unexpected(fmt.Sprintf("%q", word))
	}
	return nil
}

func (p *Parser) record(err error) {
	if err != nil {
		p.errors = append(p.errors, err)
	}
}

// definitionStartKeywords are the Name-token values that can begin a new
// top-level definition; after a definition fails to parse, synchronize
// skips ahead to the next of these, a "{", a string token, or EOF.
var definitionStartKeywords = map[string]bool{
	"query": true, "mutation": true, "subscription": true, "fragment": true,
	"schema": true, "scalar": true, "type": true, "interface": true,
	"union": true, "enum": true, "input": true, "directive": true, "extend": true,
}

func (p *Parser) synchronize() {
	for {
		if p.at(token.KindEOF) {
			return
		}
		if p.at(token.KindLeftBrace) {
			return
		}
		if p.at(token.KindStringValue) {
			return
		}
		if p.at(token.KindName) && definitionStartKeywords[p.tok.Value] {
			return
		}
		p.advance()
	}
}

func (p *Parser) parseDocument() *ParseResult {
	start := p.tok.Span.Start
	var defs []ast.Definition
	for !p.at(token.KindEOF) {
		before := p.tok
		def, err := p.parseDefinition()
		if err != nil {
			p.record(err)
			p.synchronize()
			if p.tok == before {
				// Guarantee forward progress even on pathological input.
				p.advance()
			}
			continue
		}
		if def != nil {
			defs = append(defs, def)
		}
	}
	doc := &ast.Document{
		DocSpan:     position.Span{Start: start, End: p.tok.Span.End, File: p.file},
		Definitions: defs,
	}
	return &ParseResult{Document: doc, Errors: p.errors}
}

func (p *Parser) parseDefinition() (ast.Definition, error) {
	description, err := p.parseOptionalDescription()
	if err != nil {
		return nil, err
	}

	switch {
	case p.atKeyword("query"), p.atKeyword("mutation"), p.atKeyword("subscription"):
		if description != nil {
			return nil, p.unexpected("a definition")
		}
		return p.parseOperationDefinition()
	case p.at(token.KindLeftBrace):
		if description != nil {
			return nil, p.unexpected("a definition")
		}
		return p.parseOperationDefinition()
	case p.atKeyword("fragment"):
		if description != nil {
			return nil, p.unexpected("a definition")
		}
		return p.parseFragmentDefinition()
	case p.atKeyword("schema"):
		return p.parseSchemaDefinition(description)
	case p.atKeyword("scalar"):
		return p.parseScalarTypeDefinition(description)
	case p.atKeyword("type"):
		return p.parseObjectTypeDefinition(description)
	case p.atKeyword("interface"):
		return p.parseInterfaceTypeDefinition(description)
	case p.atKeyword("union"):
		return p.parseUnionTypeDefinition(description)
	case p.atKeyword("enum"):
		return p.parseEnumTypeDefinition(description)
	case p.atKeyword("input"):
		return p.parseInputObjectTypeDefinition(description)
	case p.atKeyword("directive"):
		return p.parseDirectiveDefinition(description)
	case p.atKeyword("extend"):
		if description != nil {
			return nil, p.unexpected("a definition")
		}
		return p.parseTypeSystemExtension()
	}

	return nil, p.unexpected("a definition")
}

func (p *Parser) parseOptionalDescription() (*ast.StringValue, error) {
	if !p.at(token.KindStringValue) {
		return nil, nil
	}
	tok := p.tok
	p.advance()
	return &ast.StringValue{ValSpan: tok.Span, Value: tok.Value}, nil
}

// ============================================================================
// Names, values, directives, type annotations — shared productions.
// ============================================================================

func (p *Parser) parseName() (ast.Name, error) {
	tok, err := p.expect(token.KindName, "Name")
	if err != nil {
		return ast.Name{}, err
	}
	return ast.Name{NameSpan: tok.Span, Value: tok.Value}, nil
}

func (p *Parser) parseValue(constant bool) (ast.Value, error) {
	switch p.tok.Kind {
	case token.KindLeftBracket:
		return p.parseListValue(constant)
	case token.KindLeftBrace:
		return p.parseObjectValue(constant)
	case token.KindIntValue:
		tok := p.tok
		p.advance()
		return ast.IntValue{ValSpan: tok.Span, Raw: tok.Value}, nil
	case token.KindFloatValue:
		tok := p.tok
		p.advance()
		return ast.FloatValue{ValSpan: tok.Span, Raw: tok.Value}, nil
	case token.KindStringValue:
		tok := p.tok
		p.advance()
		return ast.StringValue{ValSpan: tok.Span, Value: tok.Value}, nil
	case token.KindTrue, token.KindFalse:
		tok := p.tok
		p.advance()
		return ast.BooleanValue{ValSpan: tok.Span, Value: tok.Kind == token.KindTrue}, nil
	case token.KindNull:
		tok := p.tok
		p.advance()
		return ast.NullValue{ValSpan: tok.Span}, nil
	case token.KindName:
		tok := p.tok
		p.advance()
		return ast.EnumValue{ValSpan: tok.Span, Value: tok.Value}, nil
	case token.KindDollar:
		if constant {
			return nil, p.unexpected("a constant value")
		}
		return p.parseVariable()
	}
	return nil, p.unexpected("a value")
}

func (p *Parser) parseVariable() (ast.Variable, error) {
	start := p.tok.Span.Start
	if _, err := p.expect(token.KindDollar, `"$"`); err != nil {
		return ast.Variable{}, err
	}
	name, err := p.parseName()
	if err != nil {
		return ast.Variable{}, err
	}
	return ast.Variable{VarSpan: position.Span{Start: start, End: name.NameSpan.End, File: p.file}, Name: name}, nil
}

func (p *Parser) parseListValue(constant bool) (ast.Value, error) {
	start := p.tok.Span.Start
	if _, err := p.expect(token.KindLeftBracket, `"["`); err != nil {
		return nil, err
	}
	var values []ast.Value
	for !p.skip(token.KindRightBracket) {
		if p.at(token.KindEOF) {
			return nil, p.unexpected(`"]"`)
		}
		v, err := p.parseValue(constant)
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return ast.ListValue{ValSpan: position.Span{Start: start, End: p.tok.Span.Start, File: p.file}, Values: values}, nil
}

func (p *Parser) parseObjectValue(constant bool) (ast.Value, error) {
	start := p.tok.Span.Start
	if _, err := p.expect(token.KindLeftBrace, `"{"`); err != nil {
		return nil, err
	}
	var fields []*ast.Argument
	for !p.skip(token.KindRightBrace) {
		if p.at(token.KindEOF) {
			return nil, p.unexpected(`"}"`)
		}
		f, err := p.parseObjectField(constant)
		if err != nil {
			return nil, err
		}
		fields = append(fields, f)
	}
	return ast.ObjectValue{ValSpan: position.Span{Start: start, End: p.tok.Span.Start, File: p.file}, Fields: fields}, nil
}

func (p *Parser) parseObjectField(constant bool) (*ast.Argument, error) {
	name, err := p.parseName()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.KindColon, `":"`); err != nil {
		return nil, err
	}
	value, err := p.parseValue(constant)
	if err != nil {
		return nil, err
	}
	return &ast.Argument{
		ArgSpan: position.Span{Start: name.NameSpan.Start, End: value.Span().End, File: p.file},
		Name:    name,
		Value:   value,
	}, nil
}

func (p *Parser) parseArguments(constant bool) ([]*ast.Argument, error) {
	if !p.at(token.KindLeftParen) {
		return nil, nil
	}
	p.advance()
	var args []*ast.Argument
	for !p.skip(token.KindRightParen) {
		if p.at(token.KindEOF) {
			return nil, p.unexpected(`")"`)
		}
		name, err := p.parseName()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.KindColon, `":"`); err != nil {
			return nil, err
		}
		value, err := p.parseValue(constant)
		if err != nil {
			return nil, err
		}
		args = append(args, &ast.Argument{
			ArgSpan: position.Span{Start: name.NameSpan.Start, End: value.Span().End, File: p.file},
			Name:    name,
			Value:   value,
		})
	}
	return args, nil
}

func (p *Parser) parseDirectives(constant bool) (ast.Directives, error) {
	var directives ast.Directives
	for p.at(token.KindAt) {
		d, err := p.parseDirective(constant)
		if err != nil {
			return nil, err
		}
		directives = append(directives, d)
	}
	return directives, nil
}

func (p *Parser) parseDirective(constant bool) (*ast.Directive, error) {
	start := p.tok.Span.Start
	p.advance() // consume '@'
	name, err := p.parseName()
	if err != nil {
		return nil, err
	}
	args, err := p.parseArguments(constant)
	if err != nil {
		return nil, err
	}
	return &ast.Directive{
		DirSpan:   position.Span{Start: start, End: p.lastEnd(), File: p.file},
		Name:      name,
		Arguments: args,
	}, nil
}

// lastEnd returns the end position of the token just consumed, approximated
// by the start of the current token (adjacent tokens share no gap in a
// well-formed stream; any intervening trivia belongs to the current token's
// leading trivia, not to the prior node's span).
func (p *Parser) lastEnd() position.Position { return p.tok.Span.Start }

func (p *Parser) parseTypeAnnotation() (ast.TypeAnnotation, error) {
	start := p.tok.Span.Start
	var inner ast.TypeAnnotation

	if p.skip(token.KindLeftBracket) {
		elem, err := p.parseTypeAnnotation()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.KindRightBracket, `"]"`); err != nil {
			return nil, err
		}
		inner = ListTypeAnnotationOf(start, p.lastEnd(), p.file, elem)
	} else {
		name, err := p.parseName()
		if err != nil {
			return nil, err
		}
		inner = ast.NamedTypeAnnotation{
			AnnotSpan:  position.Span{Start: start, End: name.NameSpan.End, File: p.file},
			Name:       name,
			IsNullable: true,
		}
	}

	if p.skip(token.KindBang) {
		return withNonNull(inner, position.Span{Start: start, End: p.lastEnd(), File: p.file}), nil
	}
	return inner, nil
}

// ListTypeAnnotationOf builds a nullable list annotation wrapping elem.
func ListTypeAnnotationOf(start, end position.Position, file string, elem ast.TypeAnnotation) ast.TypeAnnotation {
	return ast.ListTypeAnnotation{
		AnnotSpan:  position.Span{Start: start, End: end, File: file},
		Inner:      elem,
		IsNullable: true,
	}
}

func withNonNull(t ast.TypeAnnotation, span position.Span) ast.TypeAnnotation {
	switch v := t.(type) {
	case ast.NamedTypeAnnotation:
		v.IsNullable = false
		v.AnnotSpan = span
		return v
	case ast.ListTypeAnnotation:
		v.IsNullable = false
		v.AnnotSpan = span
		return v
	}
	return t
}

// ============================================================================
// Executable documents.
// ============================================================================

func (p *Parser) parseOperationDefinition() (ast.Definition, error) {
	start := p.tok.Span.Start

	if p.at(token.KindLeftBrace) {
		set, err := p.parseSelectionSet()
		if err != nil {
			return nil, err
		}
		return &ast.OperationDefinition{
			DefSpan:      position.Span{Start: start, End: set.SetSpan.End, File: p.file},
			Type:         ast.OperationTypeQuery,
			Shorthand:    true,
			SelectionSet: set,
		}, nil
	}

	opType := ast.OperationType(p.tok.Value)
	p.advance()

	var name *ast.Name
	if p.at(token.KindName) {
		n, err := p.parseName()
		if err != nil {
			return nil, err
		}
		name = &n
	}

	varDefs, err := p.parseOptionalVariableDefinitions()
	if err != nil {
		return nil, err
	}

	directives, err := p.parseDirectives(false)
	if err != nil {
		return nil, err
	}

	set, err := p.parseSelectionSet()
	if err != nil {
		return nil, err
	}

	return &ast.OperationDefinition{
		DefSpan:             position.Span{Start: start, End: set.SetSpan.End, File: p.file},
		Type:                opType,
		Name:                name,
		VariableDefinitions: varDefs,
		Directives:          directives,
		SelectionSet:        set,
	}, nil
}

func (p *Parser) parseOptionalVariableDefinitions() ([]*ast.VariableDefinition, error) {
	if !p.at(token.KindLeftParen) {
		return nil, nil
	}
	p.advance()
	var defs []*ast.VariableDefinition
	for !p.skip(token.KindRightParen) {
		if p.at(token.KindEOF) {
			return nil, p.unexpected(`")"`)
		}
		d, err := p.parseVariableDefinition()
		if err != nil {
			return nil, err
		}
		defs = append(defs, d)
	}
	return defs, nil
}

func (p *Parser) parseVariableDefinition() (*ast.VariableDefinition, error) {
	start := p.tok.Span.Start
	v, err := p.parseVariable()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.KindColon, `":"`); err != nil {
		return nil, err
	}
	ty, err := p.parseTypeAnnotation()
	if err != nil {
		return nil, err
	}
	var defaultValue ast.Value
	if p.skip(token.KindEquals) {
		defaultValue, err = p.parseValue(true)
		if err != nil {
			return nil, err
		}
	}
	directives, err := p.parseDirectives(true)
	if err != nil {
		return nil, err
	}
	return &ast.VariableDefinition{
		DefSpan:      position.Span{Start: start, End: p.lastEnd(), File: p.file},
		Variable:     v.Name,
		Type:         ty,
		DefaultValue: defaultValue,
		Directives:   directives,
	}, nil
}

func (p *Parser) parseSelectionSet() (ast.SelectionSet, error) {
	start := p.tok.Span.Start
	if _, err := p.expect(token.KindLeftBrace, `"{"`); err != nil {
		return ast.SelectionSet{}, err
	}
	var selections []ast.Selection
	for !p.skip(token.KindRightBrace) {
		if p.at(token.KindEOF) {
			return ast.SelectionSet{}, p.unexpected(`"}"`)
		}
		sel, err := p.parseSelection()
		if err != nil {
			return ast.SelectionSet{}, err
		}
		selections = append(selections, sel)
	}
	return ast.SelectionSet{
		SetSpan:    position.Span{Start: start, End: p.lastEnd(), File: p.file},
		Selections: selections,
	}, nil
}

func (p *Parser) parseSelection() (ast.Selection, error) {
	if p.at(token.KindSpread) {
		return p.parseFragment()
	}
	return p.parseField()
}

func (p *Parser) parseField() (ast.Selection, error) {
	start := p.tok.Span.Start
	name, err := p.parseName()
	if err != nil {
		return nil, err
	}

	var alias *Name
	if p.skip(token.KindColon) {
		aliasName := name
		alias = &aliasName
		name, err = p.parseName()
		if err != nil {
			return nil, err
		}
	}

	args, err := p.parseArguments(false)
	if err != nil {
		return nil, err
	}
	directives, err := p.parseDirectives(false)
	if err != nil {
		return nil, err
	}

	var selectionSet *ast.SelectionSet
	if p.at(token.KindLeftBrace) {
		set, err := p.parseSelectionSet()
		if err != nil {
			return nil, err
		}
		selectionSet = &set
	}

	end := name.NameSpan.End
	if selectionSet != nil {
		end = selectionSet.SetSpan.End
	} else if len(directives) > 0 {
		end = p.lastEnd()
	} else if len(args) > 0 {
		end = p.lastEnd()
	}

	var astAlias *ast.Name
	if alias != nil {
		v := ast.Name(*alias)
		astAlias = &v
	}

	return &ast.Field{
		FieldSpan:    position.Span{Start: start, End: end, File: p.file},
		Alias:        astAlias,
		Name:         name,
		Arguments:    args,
		Directives:   directives,
		SelectionSet: selectionSet,
	}, nil
}

// Name is a local alias of ast.Name (the same type, not a distinct one),
// used in parseField to hold an alias candidate before it is known whether
// the following token confirms it as one.
type Name = ast.Name

func (p *Parser) parseFragment() (ast.Selection, error) {
	start := p.tok.Span.Start
	p.advance() // consume '...'

	if p.atKeyword("on") {
		p.advance()
		typeCondition, err := p.parseName()
		if err != nil {
			return nil, err
		}
		directives, err := p.parseDirectives(false)
		if err != nil {
			return nil, err
		}
		set, err := p.parseSelectionSet()
		if err != nil {
			return nil, err
		}
		return &ast.InlineFragment{
			FragSpan:      position.Span{Start: start, End: set.SetSpan.End, File: p.file},
			TypeCondition: &typeCondition,
			Directives:    directives,
			SelectionSet:  set,
		}, nil
	}

	if p.at(token.KindName) && p.tok.Value != "on" {
		name, err := p.parseName()
		if err != nil {
			return nil, err
		}
		directives, err := p.parseDirectives(false)
		if err != nil {
			return nil, err
		}
		end := name.NameSpan.End
		if len(directives) > 0 {
			end = p.lastEnd()
		}
		return &ast.FragmentSpread{
			SpreadSpan: position.Span{Start: start, End: end, File: p.file},
			Name:       name,
			Directives: directives,
		}, nil
	}

	directives, err := p.parseDirectives(false)
	if err != nil {
		return nil, err
	}
	set, err := p.parseSelectionSet()
	if err != nil {
		return nil, err
	}
	return &ast.InlineFragment{
		FragSpan:     position.Span{Start: start, End: set.SetSpan.End, File: p.file},
		Directives:   directives,
		SelectionSet: set,
	}, nil
}

func (p *Parser) parseFragmentDefinition() (ast.Definition, error) {
	start := p.tok.Span.Start
	p.advance() // consume "fragment"
	name, err := p.parseName()
	if err != nil {
		return nil, err
	}
	if err := p.expectKeyword("on"); err != nil {
		return nil, err
	}
	typeCondition, err := p.parseName()
	if err != nil {
		return nil, err
	}
	directives, err := p.parseDirectives(false)
	if err != nil {
		return nil, err
	}
	set, err := p.parseSelectionSet()
	if err != nil {
		return nil, err
	}
	return &ast.FragmentDefinition{
		DefSpan:       position.Span{Start: start, End: set.SetSpan.End, File: p.file},
		Name:          name,
		TypeCondition: typeCondition,
		Directives:    directives,
		SelectionSet:  set,
	}, nil
}

// ============================================================================
// Schema (type-system) documents.
// ============================================================================

func (p *Parser) parseSchemaDefinition(description *ast.StringValue) (ast.Definition, error) {
	start := p.tok.Span.Start // position of keyword/name token, not the description
	p.advance() // consume "schema"
	directives, err := p.parseDirectives(true)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.KindLeftBrace, `"{"`); err != nil {
		return nil, err
	}
	var roots []*ast.RootOperationTypeDefinition
	for !p.skip(token.KindRightBrace) {
		if p.at(token.KindEOF) {
			return nil, p.unexpected(`"}"`)
		}
		rootStart := p.tok.Span.Start
		opName, err := p.parseName()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.KindColon, `":"`); err != nil {
			return nil, err
		}
		typeName, err := p.parseName()
		if err != nil {
			return nil, err
		}
		roots = append(roots, &ast.RootOperationTypeDefinition{
			DefSpan:   position.Span{Start: rootStart, End: typeName.NameSpan.End, File: p.file},
			Operation: ast.OperationType(opName.Value),
			Type:      typeName,
		})
	}
	return &ast.SchemaDefinition{
		DefSpan:            position.Span{Start: start, End: p.lastEnd(), File: p.file},
		Description:        description,
		Directives:         directives,
		RootOperationTypes: roots,
	}, nil
}

func (p *Parser) parseScalarTypeDefinition(description *ast.StringValue) (ast.Definition, error) {
	start := p.tok.Span.Start // position of keyword/name token, not the description
	p.advance() // consume "scalar"
	name, err := p.parseName()
	if err != nil {
		return nil, err
	}
	directives, err := p.parseDirectives(true)
	if err != nil {
		return nil, err
	}
	return &ast.ScalarTypeDefinition{
		DefSpan:     position.Span{Start: start, End: p.lastEnd(), File: p.file},
		Description: description,
		Name:        name,
		Directives:  directives,
	}, nil
}

func (p *Parser) parseImplementsInterfaces() ([]ast.Name, error) {
	if !p.atKeyword("implements") {
		return nil, nil
	}
	p.advance()
	p.skip(token.KindAmp)
	var names []ast.Name
	for {
		name, err := p.parseName()
		if err != nil {
			return nil, err
		}
		names = append(names, name)
		if !p.skip(token.KindAmp) {
			break
		}
	}
	return names, nil
}

func (p *Parser) parseOptionalFieldsDefinition() ([]*ast.FieldDefinition, error) {
	if !p.at(token.KindLeftBrace) {
		return nil, nil
	}
	p.advance()
	var fields []*ast.FieldDefinition
	for !p.skip(token.KindRightBrace) {
		if p.at(token.KindEOF) {
			return nil, p.unexpected(`"}"`)
		}
		f, err := p.parseFieldDefinition()
		if err != nil {
			return nil, err
		}
		fields = append(fields, f)
	}
	return fields, nil
}

func (p *Parser) parseFieldDefinition() (*ast.FieldDefinition, error) {
	description, err := p.parseOptionalDescription()
	if err != nil {
		return nil, err
	}
	start := p.tok.Span.Start // position of keyword/name token, not the description
	name, err := p.parseName()
	if err != nil {
		return nil, err
	}
	args, err := p.parseOptionalArgumentsDefinition()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.KindColon, `":"`); err != nil {
		return nil, err
	}
	ty, err := p.parseTypeAnnotation()
	if err != nil {
		return nil, err
	}
	directives, err := p.parseDirectives(true)
	if err != nil {
		return nil, err
	}
	return &ast.FieldDefinition{
		DefSpan:     position.Span{Start: start, End: p.lastEnd(), File: p.file},
		Description: description,
		Name:        name,
		Arguments:   args,
		Type:        ty,
		Directives:  directives,
	}, nil
}

func (p *Parser) parseOptionalArgumentsDefinition() ([]*ast.InputValueDefinition, error) {
	if !p.at(token.KindLeftParen) {
		return nil, nil
	}
	p.advance()
	var defs []*ast.InputValueDefinition
	for !p.skip(token.KindRightParen) {
		if p.at(token.KindEOF) {
			return nil, p.unexpected(`")"`)
		}
		d, err := p.parseInputValueDefinition()
		if err != nil {
			return nil, err
		}
		defs = append(defs, d)
	}
	return defs, nil
}

func (p *Parser) parseInputValueDefinition() (*ast.InputValueDefinition, error) {
	description, err := p.parseOptionalDescription()
	if err != nil {
		return nil, err
	}
	start := p.tok.Span.Start // position of keyword/name token, not the description
	name, err := p.parseName()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.KindColon, `":"`); err != nil {
		return nil, err
	}
	ty, err := p.parseTypeAnnotation()
	if err != nil {
		return nil, err
	}
	var defaultValue ast.Value
	if p.skip(token.KindEquals) {
		defaultValue, err = p.parseValue(true)
		if err != nil {
			return nil, err
		}
	}
	directives, err := p.parseDirectives(true)
	if err != nil {
		return nil, err
	}
	return &ast.InputValueDefinition{
		DefSpan:      position.Span{Start: start, End: p.lastEnd(), File: p.file},
		Description:  description,
		Name:         name,
		Type:         ty,
		DefaultValue: defaultValue,
		Directives:   directives,
	}, nil
}

func (p *Parser) parseObjectTypeDefinition(description *ast.StringValue) (ast.Definition, error) {
	start := p.tok.Span.Start // position of keyword/name token, not the description
	p.advance() // consume "type"
	name, err := p.parseName()
	if err != nil {
		return nil, err
	}
	implements, err := p.parseImplementsInterfaces()
	if err != nil {
		return nil, err
	}
	directives, err := p.parseDirectives(true)
	if err != nil {
		return nil, err
	}
	fields, err := p.parseOptionalFieldsDefinition()
	if err != nil {
		return nil, err
	}
	return &ast.ObjectTypeDefinition{
		DefSpan:     position.Span{Start: start, End: p.lastEnd(), File: p.file},
		Description: description,
		Name:        name,
		Implements:  implements,
		Directives:  directives,
		Fields:      fields,
	}, nil
}

func (p *Parser) parseInterfaceTypeDefinition(description *ast.StringValue) (ast.Definition, error) {
	start := p.tok.Span.Start // position of keyword/name token, not the description
	p.advance() // consume "interface"
	name, err := p.parseName()
	if err != nil {
		return nil, err
	}
	implements, err := p.parseImplementsInterfaces()
	if err != nil {
		return nil, err
	}
	directives, err := p.parseDirectives(true)
	if err != nil {
		return nil, err
	}
	fields, err := p.parseOptionalFieldsDefinition()
	if err != nil {
		return nil, err
	}
	return &ast.InterfaceTypeDefinition{
		DefSpan:     position.Span{Start: start, End: p.lastEnd(), File: p.file},
		Description: description,
		Name:        name,
		Implements:  implements,
		Directives:  directives,
		Fields:      fields,
	}, nil
}

func (p *Parser) parseUnionTypeDefinition(description *ast.StringValue) (ast.Definition, error) {
	start := p.tok.Span.Start // position of keyword/name token, not the description
	p.advance() // consume "union"
	name, err := p.parseName()
	if err != nil {
		return nil, err
	}
	directives, err := p.parseDirectives(true)
	if err != nil {
		return nil, err
	}
	members, err := p.parseOptionalUnionMemberTypes()
	if err != nil {
		return nil, err
	}
	return &ast.UnionTypeDefinition{
		DefSpan:     position.Span{Start: start, End: p.lastEnd(), File: p.file},
		Description: description,
		Name:        name,
		Directives:  directives,
		Members:     members,
	}, nil
}

func (p *Parser) parseOptionalUnionMemberTypes() ([]ast.Name, error) {
	if !p.at(token.KindEquals) {
		return nil, nil
	}
	p.advance()
	p.skip(token.KindPipe)
	var members []ast.Name
	for {
		name, err := p.parseName()
		if err != nil {
			return nil, err
		}
		members = append(members, name)
		if !p.skip(token.KindPipe) {
			break
		}
	}
	return members, nil
}

func (p *Parser) parseEnumTypeDefinition(description *ast.StringValue) (ast.Definition, error) {
	start := p.tok.Span.Start // position of keyword/name token, not the description
	p.advance() // consume "enum"
	name, err := p.parseName()
	if err != nil {
		return nil, err
	}
	directives, err := p.parseDirectives(true)
	if err != nil {
		return nil, err
	}
	values, err := p.parseOptionalEnumValuesDefinition()
	if err != nil {
		return nil, err
	}
	return &ast.EnumTypeDefinition{
		DefSpan:     position.Span{Start: start, End: p.lastEnd(), File: p.file},
		Description: description,
		Name:        name,
		Directives:  directives,
		Values:      values,
	}, nil
}

func (p *Parser) parseOptionalEnumValuesDefinition() ([]*ast.EnumValueDefinition, error) {
	if !p.at(token.KindLeftBrace) {
		return nil, nil
	}
	p.advance()
	var values []*ast.EnumValueDefinition
	for !p.skip(token.KindRightBrace) {
		if p.at(token.KindEOF) {
			return nil, p.unexpected(`"}"`)
		}
		description, err := p.parseOptionalDescription()
		if err != nil {
			return nil, err
		}
		start := p.tok.Span.Start // position of keyword/name token, not the description
		name, err := p.parseName()
		if err != nil {
			return nil, err
		}
		directives, err := p.parseDirectives(true)
		if err != nil {
			return nil, err
		}
		values = append(values, &ast.EnumValueDefinition{
			DefSpan:     position.Span{Start: start, End: p.lastEnd(), File: p.file},
			Description: description,
			Name:        name,
			Directives:  directives,
		})
	}
	return values, nil
}

func (p *Parser) parseInputObjectTypeDefinition(description *ast.StringValue) (ast.Definition, error) {
	start := p.tok.Span.Start // position of keyword/name token, not the description
	p.advance() // consume "input"
	name, err := p.parseName()
	if err != nil {
		return nil, err
	}
	directives, err := p.parseDirectives(true)
	if err != nil {
		return nil, err
	}
	var fields []*ast.InputValueDefinition
	if p.at(token.KindLeftBrace) {
		p.advance()
		for !p.skip(token.KindRightBrace) {
			if p.at(token.KindEOF) {
				return nil, p.unexpected(`"}"`)
			}
			f, err := p.parseInputValueDefinition()
			if err != nil {
				return nil, err
			}
			fields = append(fields, f)
		}
	}
	return &ast.InputObjectTypeDefinition{
		DefSpan:     position.Span{Start: start, End: p.lastEnd(), File: p.file},
		Description: description,
		Name:        name,
		Directives:  directives,
		Fields:      fields,
	}, nil
}

func (p *Parser) parseDirectiveDefinition(description *ast.StringValue) (ast.Definition, error) {
	start := p.tok.Span.Start // position of keyword/name token, not the description
	p.advance() // consume "directive"
	if _, err := p.expect(token.KindAt, `"@"`); err != nil {
		return nil, err
	}
	name, err := p.parseName()
	if err != nil {
		return nil, err
	}
	args, err := p.parseOptionalArgumentsDefinition()
	if err != nil {
		return nil, err
	}
	repeatable := p.skipKeyword("repeatable")
	if err := p.expectKeyword("on"); err != nil {
		return nil, err
	}
	locations, err := p.parseDirectiveLocations()
	if err != nil {
		return nil, err
	}
	return &ast.DirectiveDefinition{
		DefSpan:     position.Span{Start: start, End: p.lastEnd(), File: p.file},
		Description: description,
		Name:        name,
		Arguments:   args,
		Repeatable:  repeatable,
		Locations:   locations,
	}, nil
}

func (p *Parser) parseDirectiveLocations() ([]ast.DirectiveLocation, error) {
	p.skip(token.KindPipe)
	var locs []ast.DirectiveLocation
	for {
		name, err := p.parseName()
		if err != nil {
			return nil, err
		}
		locs = append(locs, ast.DirectiveLocation(name.Value))
		if !p.skip(token.KindPipe) {
			break
		}
	}
	return locs, nil
}

func (p *Parser) parseTypeSystemExtension() (ast.Definition, error) {
	start := p.tok.Span.Start
	p.advance() // consume "extend"
	switch {
	case p.skipKeyword("schema"):
		return nil, newSyntaxError(position.Span{Start: start, End: p.lastEnd(), File: p.file},
			diag.CodeUnexpectedToken, "Schema extensions are not supported.")
	case p.atKeyword("scalar"):
		p.advance()
		name, err := p.parseName()
		if err != nil {
			return nil, err
		}
		directives, err := p.parseDirectives(true)
		if err != nil {
			return nil, err
		}
		return &ast.ScalarTypeExtension{DefSpan: position.Span{Start: start, End: p.lastEnd(), File: p.file}, Name: name, Directives: directives}, nil
	case p.atKeyword("type"):
		p.advance()
		name, err := p.parseName()
		if err != nil {
			return nil, err
		}
		implements, err := p.parseImplementsInterfaces()
		if err != nil {
			return nil, err
		}
		directives, err := p.parseDirectives(true)
		if err != nil {
			return nil, err
		}
		fields, err := p.parseOptionalFieldsDefinition()
		if err != nil {
			return nil, err
		}
		if len(implements) == 0 && len(directives) == 0 && len(fields) == 0 {
			return nil, p.unexpected(`an extension body ("implements", a directive, or "{")`)
		}
		return &ast.ObjectTypeExtension{
			DefSpan: position.Span{Start: start, End: p.lastEnd(), File: p.file}, Name: name,
			Implements: implements, Directives: directives, Fields: fields,
		}, nil
	case p.atKeyword("interface"):
		p.advance()
		name, err := p.parseName()
		if err != nil {
			return nil, err
		}
		implements, err := p.parseImplementsInterfaces()
		if err != nil {
			return nil, err
		}
		directives, err := p.parseDirectives(true)
		if err != nil {
			return nil, err
		}
		fields, err := p.parseOptionalFieldsDefinition()
		if err != nil {
			return nil, err
		}
		return &ast.InterfaceTypeExtension{
			DefSpan: position.Span{Start: start, End: p.lastEnd(), File: p.file}, Name: name,
			Implements: implements, Directives: directives, Fields: fields,
		}, nil
	case p.atKeyword("union"):
		p.advance()
		name, err := p.parseName()
		if err != nil {
			return nil, err
		}
		directives, err := p.parseDirectives(true)
		if err != nil {
			return nil, err
		}
		members, err := p.parseOptionalUnionMemberTypes()
		if err != nil {
			return nil, err
		}
		return &ast.UnionTypeExtension{
			DefSpan: position.Span{Start: start, End: p.lastEnd(), File: p.file}, Name: name,
			Directives: directives, Members: members,
		}, nil
	case p.atKeyword("enum"):
		p.advance()
		name, err := p.parseName()
		if err != nil {
			return nil, err
		}
		directives, err := p.parseDirectives(true)
		if err != nil {
			return nil, err
		}
		values, err := p.parseOptionalEnumValuesDefinition()
		if err != nil {
			return nil, err
		}
		return &ast.EnumTypeExtension{
			DefSpan: position.Span{Start: start, End: p.lastEnd(), File: p.file}, Name: name,
			Directives: directives, Values: values,
		}, nil
	case p.atKeyword("input"):
		p.advance()
		name, err := p.parseName()
		if err != nil {
			return nil, err
		}
		directives, err := p.parseDirectives(true)
		if err != nil {
			return nil, err
		}
		var fields []*ast.InputValueDefinition
		if p.at(token.KindLeftBrace) {
			p.advance()
			for !p.skip(token.KindRightBrace) {
				if p.at(token.KindEOF) {
					return nil, p.unexpected(`"}"`)
				}
				f, err := p.parseInputValueDefinition()
				if err != nil {
					return nil, err
				}
				fields = append(fields, f)
			}
		}
		return &ast.InputObjectTypeExtension{
			DefSpan: position.Span{Start: start, End: p.lastEnd(), File: p.file}, Name: name,
			Directives: directives, Fields: fields,
		}, nil
	}

	validKinds := []string{"scalar", "type", "interface", "union", "enum", "input"}
	var hint fmtBuilder
	util.OrList(&hint, validKinds, uint(len(validKinds)), false)
	return nil, newSyntaxError(p.tok.Span, diag.CodeUnexpectedToken,
		fmt.Sprintf("Expected one of %s after \"extend\", found %s.", hint.String(), p.tok.Description()))
}

// fmtBuilder is a minimal io.StringWriter adapter so util.OrList can write
// into a plain string without pulling in strings.Builder just for this one
// call site.
type fmtBuilder struct{ s string }

func (b *fmtBuilder) WriteString(s string) (int, error) {
	b.s += s
	return len(s), nil
}

func (b *fmtBuilder) String() string { return b.s }
