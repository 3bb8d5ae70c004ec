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
	"fmt"
	"strings"

	"github.com/hexgql/schema/graphql/diag"
	"github.com/hexgql/schema/graphql/position"
	"github.com/hexgql/schema/internal/util"
)

// buildError is the common shape backing every schema-build and
// type-validation error: a diag.Diagnostic plus the Go error interface,
// following the same pattern as parser.SyntaxError. Each taxonomy member
// gets a dedicated constructor below so call sites read like the
// taxonomy rather than like ad hoc fmt.Errorf calls.
type buildError struct {
	diagnostic diag.Diagnostic
}

func (e *buildError) Error() string                { return e.diagnostic.OneLine() }
func (e *buildError) Diagnostic() diag.Diagnostic { return e.diagnostic }

var _ diag.Diagnosable = (*buildError)(nil)

func newBuildError(span position.Span, code diag.Code, message string, notes ...diag.Note) error {
	return &buildError{diag.Diagnostic{
		Message:  message,
		Span:     span,
		Severity: diag.SeverityError,
		Code:     code,
		Notes:    notes,
	}}
}

func locNote(label string, loc position.SourceLocation) diag.Note {
	span := loc.Span
	return diag.Note{Kind: diag.NoteGeneral, Message: fmt.Sprintf("%s at %s", label, span.Start), Span: &span}
}

// ---- Schema-build errors ---------------------------------------------

func errDuplicateTypeDefinition(name string, def1, def2 position.SourceLocation) error {
	return newBuildError(def2.Span, diag.CodeDuplicateTypeDefinition,
		fmt.Sprintf("duplicate type definition %q", name),
		locNote("first defined here", def1))
}

func errDuplicateDirectiveDefinition(name string, def1, def2 position.SourceLocation) error {
	return newBuildError(def2.Span, diag.CodeDuplicateDirectiveDefinition,
		fmt.Sprintf("duplicate directive definition \"@%s\"", name),
		locNote("first defined here", def1))
}

func errDuplicateFieldNameDefinition(typeName, fieldName string, def1, def2 position.SourceLocation) error {
	return newBuildError(def2.Span, diag.CodeDuplicateFieldNameDefinition,
		fmt.Sprintf("field %q is already defined on type %q", fieldName, typeName),
		locNote("first defined here", def1))
}

func errDuplicateEnumValueDefinition(typeName, valueName string, def1, def2 position.SourceLocation) error {
	return newBuildError(def2.Span, diag.CodeDuplicateEnumValueDefinition,
		fmt.Sprintf("enum value %q is already defined on enum %q", valueName, typeName),
		locNote("first defined here", def1))
}

func errDuplicatedUnionMember(unionName, memberName string, def1, def2 position.SourceLocation) error {
	return newBuildError(def2.Span, diag.CodeDuplicatedUnionMember,
		fmt.Sprintf("member %q is already part of union %q", memberName, unionName),
		locNote("first listed here", def1))
}

func errDuplicateOperationDefinition(opType string, def1, def2 position.SourceLocation) error {
	return newBuildError(def2.Span, diag.CodeDuplicateOperationDefinition,
		fmt.Sprintf("%s root operation type is already assigned", opType),
		locNote("first assigned here", def1))
}

func errDuplicateInterfaceImplementsDeclaration(typeName, ifaceName string, def1, def2 position.SourceLocation) error {
	return newBuildError(def2.Span, diag.CodeDuplicateInterfaceImplementsDeclaration,
		fmt.Sprintf("type %q already declares that it implements %q", typeName, ifaceName),
		locNote("first declared here", def1))
}

func errExtensionOfUndefinedType(name string, extLoc position.SourceLocation) error {
	return newBuildError(extLoc.Span, diag.CodeExtensionOfUndefinedType,
		fmt.Sprintf("cannot extend type %q: no definition was ever provided", name))
}

func errInvalidExtensionType(name string, existingKind Kind, extLoc position.SourceLocation) error {
	return newBuildError(extLoc.Span, diag.CodeInvalidExtensionType,
		fmt.Sprintf("cannot extend %q as if it were a(n) %s: it is already defined as a(n) %s", name, "different kind", existingKind))
}

func errInvalidDunderPrefixed(code diag.Code, kind, name string, loc position.SourceLocation) error {
	return newBuildError(loc.Span, code,
		fmt.Sprintf("%s %q must not begin with \"__\", which is reserved for GraphQL introspection", kind, name))
}

func errInvalidSelfImplementingInterface(name string, loc position.SourceLocation) error {
	return newBuildError(loc.Span, diag.CodeInvalidSelfImplementingInterface,
		fmt.Sprintf("interface %q cannot implement itself", name))
}

func errNoQueryOperationTypeDefined() error {
	return newBuildError(position.Span{}, diag.CodeNoQueryOperationTypeDefined,
		"schema must define a query root operation type")
}

func errNonUniqueOperationTypes(typeName string, locs []position.SourceLocation) error {
	notes := make([]diag.Note, 0, len(locs))
	for _, l := range locs {
		notes = append(notes, locNote("assigned as root here", l))
	}
	span := position.Span{}
	if len(locs) > 0 {
		span = locs[len(locs)-1].Span
	}
	return newBuildError(span, diag.CodeNonUniqueOperationTypes,
		fmt.Sprintf("type %q cannot be assigned to more than one root operation", typeName), notes...)
}

func errRedefinitionOfBuiltinDirective(name string, loc position.SourceLocation) error {
	return newBuildError(loc.Span, diag.CodeRedefinitionOfBuiltinDirective,
		fmt.Sprintf("\"@%s\" is a built-in directive and cannot be redefined", name))
}

func errEnumWithNoVariants(name string, loc position.SourceLocation) error {
	return newBuildError(loc.Span, diag.CodeEnumWithNoVariants,
		fmt.Sprintf("enum %q must define at least one value", name))
}

func errSchemaFileReadError(path string, cause error) error {
	return newBuildError(position.Span{File: path}, diag.CodeSchemaFileReadError,
		fmt.Sprintf("failed to read schema file %q: %s", path, cause))
}

// ---- Type-validation errors --------------------------------------------

func errUndefinedTypeName(name string, loc position.SourceLocation, suggestions []string) error {
	msg := fmt.Sprintf("type %q is not defined", name)
	var notes []diag.Note
	if len(suggestions) > 0 {
		var b strings.Builder
		util.OrList(&b, suggestions, 5, true)
		notes = append(notes, diag.HelpNote("did you mean "+b.String()+"?"))
	}
	return newBuildError(loc.Span, diag.CodeUndefinedTypeName, msg, notes...)
}

func errInvalidInputFieldWithOutputType(typeName, fieldName, innerTypeName string, loc position.SourceLocation) error {
	return newBuildError(loc.Span, diag.CodeInvalidInputFieldWithOutputType,
		fmt.Sprintf("input field %q of %q has output-only type %q; input-object fields must be input types", fieldName, typeName, innerTypeName))
}

func errInvalidOutputFieldWithInputType(typeName, fieldName, innerTypeName string, loc position.SourceLocation) error {
	return newBuildError(loc.Span, diag.CodeInvalidOutputFieldWithInputType,
		fmt.Sprintf("field %q of %q has input-only type %q; object/interface fields must be output types", fieldName, typeName, innerTypeName))
}

func errInvalidParameterWithOutputOnlyType(ownerName, argName, innerTypeName string, loc position.SourceLocation) error {
	return newBuildError(loc.Span, diag.CodeInvalidParameterWithOutputOnlyType,
		fmt.Sprintf("parameter %q of %q has output-only type %q; parameters must be input types", argName, ownerName, innerTypeName))
}

func errCircularInputFieldChain(chain []string, loc position.SourceLocation) error {
	return newBuildError(loc.Span, diag.CodeCircularInputFieldChain,
		fmt.Sprintf("circular reference in input field chain: %s", strings.Join(chain, " → ")))
}

func errImplementsUndefinedInterface(typeName, ifaceName string, loc position.SourceLocation) error {
	return newBuildError(loc.Span, diag.CodeImplementsUndefinedInterface,
		fmt.Sprintf("%q declares that it implements undefined interface %q", typeName, ifaceName))
}

func errImplementsNonInterfaceType(typeName, ifaceName string, actual Kind, loc position.SourceLocation) error {
	return newBuildError(loc.Span, diag.CodeImplementsNonInterfaceType,
		fmt.Sprintf("%q declares that it implements %q, but %q is a(n) %s, not an interface", typeName, ifaceName, ifaceName, actual))
}

func errMissingInterfaceSpecifiedField(typeName, ifaceName, fieldName string, loc position.SourceLocation) error {
	return newBuildError(loc.Span, diag.CodeMissingInterfaceSpecifiedField,
		fmt.Sprintf("%q implements %q but does not define required field %q", typeName, ifaceName, fieldName))
}

func errMissingInterfaceSpecifiedFieldParameter(typeName, ifaceName, fieldName, argName string, loc position.SourceLocation) error {
	return newBuildError(loc.Span, diag.CodeMissingInterfaceSpecifiedFieldParameter,
		fmt.Sprintf("%q.%q does not define parameter %q required by interface %q", typeName, fieldName, argName, ifaceName))
}

func errInvalidInterfaceSpecifiedFieldType(typeName, ifaceName, fieldName, have, want string, loc position.SourceLocation) error {
	return newBuildError(loc.Span, diag.CodeInvalidInterfaceSpecifiedFieldType,
		fmt.Sprintf("%q.%q has type %s, but interface %q requires a subtype of %s", typeName, fieldName, have, ifaceName, want))
}

func errInvalidInterfaceSpecifiedFieldParameterType(typeName, ifaceName, fieldName, argName, have, want string, loc position.SourceLocation) error {
	return newBuildError(loc.Span, diag.CodeInvalidInterfaceSpecifiedFieldParameterType,
		fmt.Sprintf("%q.%q(%s:) has type %s, but interface %q requires an equivalent of %s", typeName, fieldName, argName, have, ifaceName, want))
}

func errInvalidRequiredAdditionalParameterOnInterfaceSpecifiedField(typeName, fieldName, argName string, loc position.SourceLocation) error {
	return newBuildError(loc.Span, diag.CodeInvalidRequiredAdditionalParameterOnInterfaceSpecifiedField,
		fmt.Sprintf("%q.%q(%s:) is required, but it is not declared by the implemented interface; additional parameters must be nullable", typeName, fieldName, argName))
}

func errMissingRecursiveInterfaceImplementation(typeName, missingIface string, chain []string, loc position.SourceLocation) error {
	return newBuildError(loc.Span, diag.CodeMissingRecursiveInterfaceImplementation,
		fmt.Sprintf("%q must also declare \"implements %s\" (required transitively via %s)", typeName, missingIface, strings.Join(chain, " implements ")))
}

func errInvalidUnionMemberTypeKind(unionName, memberName string, actual Kind, loc position.SourceLocation) error {
	return newBuildError(loc.Span, diag.CodeInvalidUnionMemberTypeKind,
		fmt.Sprintf("union %q member %q must be an object type, but it is a(n) %s", unionName, memberName, actual))
}

func errRepeatedNonRepeatableDirective(ownerDesc, directiveName string, loc position.SourceLocation) error {
	return newBuildError(loc.Span, diag.CodeRepeatedNonRepeatableDirective,
		fmt.Sprintf("directive \"@%s\" is not repeatable, but is applied more than once on %s", directiveName, ownerDesc))
}

// ---- Aggregates ---------------------------------------------------------

// TypeValidationErrors aggregates every error produced by the cross-type
// validators for one Build call: every validation error is collected and
// surfaced as a single TypeValidationErrors failure if non-empty.
type TypeValidationErrors struct {
	Errors []error
}

func (e *TypeValidationErrors) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d type validation error(s):\n", len(e.Errors))
	for _, err := range e.Errors {
		b.WriteString(err.Error())
		b.WriteByte('\n')
	}
	return b.String()
}

// Diagnostic implements diag.Diagnosable by surfacing the first error;
// callers that want every diagnostic should range over Errors directly.
func (e *TypeValidationErrors) Diagnostic() diag.Diagnostic {
	if len(e.Errors) == 0 {
		return diag.Diagnostic{Message: e.Error(), Code: diag.CodeTypeValidationErrors}
	}
	if d, ok := e.Errors[0].(diag.Diagnosable); ok {
		diagnostic := d.Diagnostic()
		diagnostic.Code = diag.CodeTypeValidationErrors
		return diagnostic
	}
	return diag.Diagnostic{Message: e.Error(), Code: diag.CodeTypeValidationErrors}
}

var _ diag.Diagnosable = (*TypeValidationErrors)(nil)

// BuildError aggregates every schema-build error (duplicate definitions,
// dunder-prefix violations, invalid extensions, and the like) collected
// across every loaded source when WithCollectAllErrors is in effect;
// the default, first-error-wins mode never constructs one of these,
// surfacing the lone error directly instead.
type BuildError struct {
	Errors []error
}

func (e *BuildError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d schema-build error(s):\n", len(e.Errors))
	for _, err := range e.Errors {
		b.WriteString(err.Error())
		b.WriteByte('\n')
	}
	return b.String()
}

// Diagnostic implements diag.Diagnosable by surfacing the first error;
// callers that want every diagnostic should range over Errors directly.
func (e *BuildError) Diagnostic() diag.Diagnostic {
	if len(e.Errors) == 0 {
		return diag.Diagnostic{Message: e.Error(), Code: diag.CodeBuildErrors}
	}
	if d, ok := e.Errors[0].(diag.Diagnosable); ok {
		diagnostic := d.Diagnostic()
		diagnostic.Code = diag.CodeBuildErrors
		return diagnostic
	}
	return diag.Diagnostic{Message: e.Error(), Code: diag.CodeBuildErrors}
}

var _ diag.Diagnosable = (*BuildError)(nil)

// ParseError wraps one or more parser diagnostics that aborted a source's
// contribution to a Build: a failed parse of a whole source aborts that
// source's contribution entirely.
type ParseError struct {
	File   string
	Errors []error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%d parse error(s) in %q", len(e.Errors), e.File)
}

func (e *ParseError) Diagnostic() diag.Diagnostic {
	if len(e.Errors) == 0 {
		return diag.Diagnostic{Message: e.Error(), Code: diag.CodeParseError}
	}
	if d, ok := e.Errors[0].(diag.Diagnosable); ok {
		diagnostic := d.Diagnostic()
		diagnostic.Code = diag.CodeParseError
		return diagnostic
	}
	return diag.Diagnostic{Message: e.Error(), Code: diag.CodeParseError}
}

var _ diag.Diagnosable = (*ParseError)(nil)
