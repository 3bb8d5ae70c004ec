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

package schema

import (
	"os"

	"github.com/hexgql/schema/graphql/ast"
	"github.com/hexgql/schema/graphql/parser"
	"github.com/hexgql/schema/graphql/position"
	unsafeconv "github.com/hexgql/schema/internal/unsafe"
)

// state is the build state machine: "empty → loading →
// finalizing → validating → built(ok) | failed(errors)". Transitions are
// strictly forward.
type state uint8

const (
	stateEmpty state = iota
	stateLoading
	stateFinalizing
	stateValidating
	stateBuilt
	stateFailed
)

// Builder orchestrates the per-kind type builders across every loaded
// source and produces a validated *Schema. Each Builder owns its own
// TypeMap/DirectiveMap, so building multiple schemas concurrently from
// different Builders is safe.
type Builder struct {
	st state

	types      *TypeMap
	directives *DirectiveMap

	scalarB      *scalarBuilder
	objectB      *objectBuilder
	interfaceB   *interfaceBuilder
	unionB       *unionBuilder
	enumB        *enumBuilder
	inputObjectB *inputObjectBuilder
	directiveB   *directiveBuilder

	schemaBlocks []schemaBlockEntry

	opts BuildOptions

	// nextSourceID numbers synthetic "str://N" paths for unnamed in-memory
	// sources.
	nextSourceID int

	// loadErrs accumulates every builder error across every loaded source
	// when WithCollectAllErrors is set; otherwise it holds at most the
	// first error encountered (first-error-wins, the default).
	loadErrs []error
}

type schemaBlockEntry struct {
	def *ast.SchemaDefinition
	loc locFunc
}

// NewBuilder creates an empty Builder ready to Load sources into.
func NewBuilder(opts ...BuildOption) *Builder {
	types := newTypeMap()
	directives := NewDirectiveMap()
	b := &Builder{
		st:           stateEmpty,
		types:        types,
		directives:   directives,
		scalarB:      newScalarBuilder(),
		objectB:      newObjectBuilder(),
		interfaceB:   newInterfaceBuilder(),
		unionB:       newUnionBuilder(),
		enumB:        newEnumBuilder(),
		inputObjectB: newInputObjectBuilder(),
		directiveB:   newDirectiveBuilder(directives),
		opts:         defaultBuildOptions(),
	}
	for _, o := range opts {
		o(&b.opts)
	}
	return b
}

// LoadFile reads path once into memory and loads it as a schema source.
func (b *Builder) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		wrapped := errSchemaFileReadError(path, err)
		b.recordLoadErr(wrapped)
		return wrapped
	}
	// data is never retained or mutated past this call, so the zero-copy
	// conversion is safe.
	return b.loadSource(unsafeconv.String(data), path, true)
}

// LoadString loads src as an in-memory schema source. If name is empty a
// synthetic "str://N" path is generated.
func (b *Builder) LoadString(src, name string) error {
	if name == "" {
		name = b.syntheticName()
	}
	return b.loadSource(src, name, false)
}

func (b *Builder) syntheticName() string {
	b.nextSourceID++
	return syntheticSourceName(b.nextSourceID)
}

func syntheticSourceName(id int) string {
	return "str://" + itoa(id)
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	digits := make([]byte, 0, 4)
	for n > 0 {
		digits = append(digits, byte('0'+n%10))
		n /= 10
	}
	for i, j := 0, len(digits)-1; i < j; i, j = i+1, j-1 {
		digits[i], digits[j] = digits[j], digits[i]
	}
	return string(digits)
}

// loadSource is shared by LoadFile/LoadString: parse, then route each
// definition to its builder in source order. A parse failure aborts only
// this source's contribution; other, already-loaded sources are
// unaffected. In WithCollectAllErrors mode, a builder error on one
// definition does not stop the remaining definitions in this source from
// being visited; otherwise (the default) the first builder error aborts
// the rest of this source's definitions.
func (b *Builder) loadSource(src, name string, isFile bool) error {
	b.st = stateLoading

	result := parser.ParseSchemaDocument(src, name)
	if result.HasErrors() || result.Document == nil {
		wrapped := &ParseError{File: name, Errors: result.Errors}
		b.recordLoadErr(wrapped)
		return wrapped
	}

	loc := func(span position.Span) position.SourceLocation {
		if isFile {
			return position.SchemaFile(span)
		}
		return position.SchemaString(span)
	}

	var firstErr error
	for _, def := range result.Document.Definitions {
		if err := b.visitDefinition(loc, def); err != nil {
			b.recordLoadErr(err)
			if firstErr == nil {
				firstErr = err
			}
			if !b.opts.collectAllErrors {
				return err
			}
		}
	}
	return firstErr
}

// recordLoadErr records a builder error. In WithCollectAllErrors mode
// every error across every source is kept; otherwise only the first
// error encountered is kept (first-error-wins, the default).
func (b *Builder) recordLoadErr(err error) {
	if b.opts.collectAllErrors {
		b.loadErrs = append(b.loadErrs, err)
		return
	}
	if len(b.loadErrs) == 0 {
		b.loadErrs = append(b.loadErrs, err)
	}
}

func (b *Builder) visitDefinition(loc locFunc, def ast.Definition) error {
	switch d := def.(type) {
	case *ast.ScalarTypeDefinition:
		return b.scalarB.visitTypeDef(b.types, loc, d)
	case *ast.ScalarTypeExtension:
		return b.scalarB.visitTypeExtension(b.types, loc, d)
	case *ast.ObjectTypeDefinition:
		return b.objectB.visitTypeDef(b.types, loc, d)
	case *ast.ObjectTypeExtension:
		return b.objectB.visitTypeExtension(b.types, loc, d)
	case *ast.InterfaceTypeDefinition:
		return b.interfaceB.visitTypeDef(b.types, loc, d)
	case *ast.InterfaceTypeExtension:
		return b.interfaceB.visitTypeExtension(b.types, loc, d)
	case *ast.UnionTypeDefinition:
		return b.unionB.visitTypeDef(b.types, loc, d)
	case *ast.UnionTypeExtension:
		return b.unionB.visitTypeExtension(b.types, loc, d)
	case *ast.EnumTypeDefinition:
		return b.enumB.visitTypeDef(b.types, loc, d)
	case *ast.EnumTypeExtension:
		return b.enumB.visitTypeExtension(b.types, loc, d)
	case *ast.InputObjectTypeDefinition:
		return b.inputObjectB.visitTypeDef(b.types, loc, d)
	case *ast.InputObjectTypeExtension:
		return b.inputObjectB.visitTypeExtension(b.types, loc, d)
	case *ast.DirectiveDefinition:
		return b.directiveB.visitDirectiveDef(loc, d)
	case *ast.SchemaDefinition:
		b.schemaBlocks = append(b.schemaBlocks, schemaBlockEntry{def: d, loc: loc})
		return nil
	}
	return nil
}

// Build finalizes every per-kind builder (order is irrelevant), injects
// built-in directives, closes the TypeMap by running every cross-type
// validator, and resolves the three root operation types.
func (b *Builder) Build() (*Schema, error) {
	if len(b.loadErrs) == 1 {
		return nil, b.loadErrs[0]
	}
	if len(b.loadErrs) > 1 {
		return nil, &BuildError{Errors: b.loadErrs}
	}

	b.st = stateFinalizing
	var finalizeErrs []error
	finalizeErrs = append(finalizeErrs, b.scalarB.finalize(b.types)...)
	finalizeErrs = append(finalizeErrs, b.objectB.finalize(b.types)...)
	finalizeErrs = append(finalizeErrs, b.interfaceB.finalize(b.types)...)
	finalizeErrs = append(finalizeErrs, b.unionB.finalize(b.types)...)
	finalizeErrs = append(finalizeErrs, b.enumB.finalize(b.types)...)
	finalizeErrs = append(finalizeErrs, b.inputObjectB.finalize(b.types)...)
	if len(finalizeErrs) > 0 {
		b.st = stateFailed
		return nil, &TypeValidationErrors{Errors: finalizeErrs}
	}

	b.directiveB.injectBuiltins()

	b.st = stateValidating
	validationErrs := validateSchema(b.types, b.directives)

	query, mutation, subscription, rootErrs := resolveRoots(b.types, b.schemaBlocks)
	validationErrs = append(validationErrs, rootErrs...)

	if len(validationErrs) > 0 {
		b.st = stateFailed
		return nil, &TypeValidationErrors{Errors: validationErrs}
	}

	b.st = stateBuilt
	return &Schema{
		Types:        b.types,
		Directives:   b.directives,
		Query:        query,
		Mutation:     mutation,
		Subscription: subscription,
	}, nil
}
