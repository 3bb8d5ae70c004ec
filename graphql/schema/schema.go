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

// Schema is the fully-resolved, cross-referenced, validated GraphQL type
// system produced by Builder.Build. It exclusively owns its TypeMap and
// DirectiveMap. Once built, a Schema is immutable and every reference
// inside it is guaranteed valid for as long as it is alive.
type Schema struct {
	Types        *TypeMap
	Directives   *DirectiveMap
	Query        *ObjectType
	Mutation     *ObjectType
	Subscription *ObjectType
}

// TypeByName looks up a type by name.
func (s *Schema) TypeByName(name string) (Type, bool) {
	return s.Types.Lookup(name)
}

// DirectiveByName looks up a directive definition by name.
func (s *Schema) DirectiveByName(name string) (*Directive, bool) {
	return s.Directives.Lookup(name)
}

// Build is a convenience wrapper: it creates a Builder, loads every
// (path, isFile) pair in sources in order, and builds the result. Use
// NewBuilder directly when sources need to be loaded incrementally or
// inspected between loads.
func Build(sources []Source, opts ...BuildOption) (*Schema, error) {
	b := NewBuilder(opts...)
	for _, src := range sources {
		var err error
		if src.IsFile {
			err = b.LoadFile(src.Path)
		} else {
			err = b.LoadString(src.Body, src.Path)
		}
		if err != nil && !b.opts.collectAllErrors {
			return nil, err
		}
	}
	return b.Build()
}

// Source names one schema input: either a file to be read once, or an
// in-memory string with an optional synthetic name.
type Source struct {
	// Path is a file path when IsFile is true, otherwise an optional name
	// used in diagnostics (a synthetic "str://N" is generated if empty).
	Path   string
	Body   string
	IsFile bool
}

// FileSource builds a Source naming a file to be read once at Build time.
func FileSource(path string) Source {
	return Source{Path: path, IsFile: true}
}

// StringSource builds a Source over an in-memory string, optionally named.
func StringSource(body, name string) Source {
	return Source{Path: name, Body: body}
}
