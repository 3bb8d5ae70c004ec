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

import "github.com/hexgql/schema/graphql/ast"

// typeBuilder is the protocol shared by every per-kind type builder:
// register definitions, merge or buffer extensions, and drain buffered
// extensions once every source has been loaded. The
// two-phase buffer-then-finalize design is what makes schema loading
// order-independent: "extend type Foo" may arrive before "type Foo" ever
// does, and only fails if the definition never shows up by finalize.
type typeBuilder interface {
	// visitTypeDef registers a new type definition. def is always the
	// concrete *ast.XxxTypeDefinition for this builder's kind.
	visitTypeDef(m *TypeMap, loc locFunc, def ast.Definition) error
	// visitTypeExtension merges ext into an already-defined type of this
	// kind, or buffers it if the target doesn't exist yet.
	visitTypeExtension(m *TypeMap, loc locFunc, ext ast.Definition) error
	// finalize drains buffered extensions, now that every source has been
	// loaded, and returns every error encountered (callers collect these
	// rather than aborting, since by this point load has already
	// succeeded).
	finalize(m *TypeMap) []error
}

// dedupeRefs appends src onto dst, skipping any ref whose name already
// appears in dst, and reports the first duplicate found (if any) via the
// supplied report callback. Used for merging "implements" lists and union
// member lists, both of which deduplicate by name.
func dedupeRefs(dst []NamedTypeRef, src []NamedTypeRef, report func(existing, dup NamedTypeRef)) []NamedTypeRef {
	for _, s := range src {
		if existing, ok := findRef(dst, s.Name); ok {
			if report != nil {
				report(existing, s)
			}
			continue
		}
		dst = append(dst, s)
	}
	return dst
}

func findRef(refs []NamedTypeRef, name string) (NamedTypeRef, bool) {
	for _, r := range refs {
		if r.Name == name {
			return r, true
		}
	}
	return NamedTypeRef{}, false
}

func findField(fields []*Field, name string) (*Field, bool) {
	for _, f := range fields {
		if f.Name == name {
			return f, true
		}
	}
	return nil, false
}

func findArgument(args []*Argument, name string) (*Argument, bool) {
	for _, a := range args {
		if a.Name == name {
			return a, true
		}
	}
	return nil, false
}

func findEnumValue(values []*EnumValue, name string) (*EnumValue, bool) {
	for _, v := range values {
		if v.Name == name {
			return v, true
		}
	}
	return nil, false
}
