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
	"github.com/hexgql/schema/graphql/ast"
	"github.com/hexgql/schema/graphql/diag"
)

// directiveBuilder registers "directive @name(args) on LOCATIONS"
// definitions. GraphQL has no extension grammar for directives, so this
// builder does not implement typeBuilder: it has no extension buffer and
// no finalize step, only visitDirectiveDef for user definitions and
// injectBuiltins for the four built-ins.
type directiveBuilder struct {
	directives *DirectiveMap
}

func newDirectiveBuilder(directives *DirectiveMap) *directiveBuilder {
	return &directiveBuilder{directives: directives}
}

func (b *directiveBuilder) visitDirectiveDef(loc locFunc, def *ast.DirectiveDefinition) error {
	name := def.Name.Value
	defLoc := loc(def.Name.NameSpan)
	if IsBuiltinDirectiveName(name) {
		return errRedefinitionOfBuiltinDirective(name, defLoc)
	}
	if existing, ok := b.directives.Lookup(name); ok {
		return errDuplicateDirectiveDefinition(name, existing.Location, defLoc)
	}
	if isDunderPrefixed(name) {
		return errInvalidDunderPrefixed(diag.CodeInvalidDunderPrefixedDirectiveName, "directive", name, defLoc)
	}
	locations := make([]string, len(def.Locations))
	for i, l := range def.Locations {
		locations[i] = string(l)
	}
	b.directives.Add(&Directive{
		Name:       name,
		Desc:       convertDescription(def.Description),
		Arguments:  convertArguments(def.Arguments, loc),
		Repeatable: def.Repeatable,
		Locations:  locations,
		Location:   defLoc,
	})
	return nil
}

// injectBuiltins adds the four always-present directives if the user
// hasn't already defined one with the same name. Duplicate user
// definitions were already rejected by visitDirectiveDef before this
// runs, since built-ins are only injected at finalize.
func (b *directiveBuilder) injectBuiltins() {
	for _, d := range builtinDirectives() {
		if _, ok := b.directives.Lookup(d.Name); !ok {
			b.directives.Add(d)
		}
	}
}
