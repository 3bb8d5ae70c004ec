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

import "github.com/spf13/pflag"

// SpecVersion selects which dated edition of the GraphQL specification a
// Builder enforces. The two editions referenced throughout differ
// only in a handful of validation details (e.g. September 2025 loosens
// some directive-location restrictions); both are accepted today since
// this library's validator does not yet special-case the difference —
// SpecVersion is threaded through so a future validator rule can.
type SpecVersion string

// Enumeration of SpecVersion.
const (
	SpecOctober2021   SpecVersion = "October2021"
	SpecSeptember2025 SpecVersion = "September2025"
)

// BuildOptions configures a Builder through the functional options
// (BuildOption) below.
type BuildOptions struct {
	specVersion      SpecVersion
	collectAllErrors bool
}

func defaultBuildOptions() BuildOptions {
	return BuildOptions{specVersion: SpecSeptember2025, collectAllErrors: false}
}

// BuildOption configures a Builder at construction time.
type BuildOption func(*BuildOptions)

// WithSpecVersion selects the GraphQL specification edition to validate
// against.
func WithSpecVersion(v SpecVersion) BuildOption {
	return func(o *BuildOptions) { o.specVersion = v }
}

// WithCollectAllErrors switches the Builder from "first schema-build
// error wins" (the default) to collecting every builder error across
// every source before reporting. Validator errors are always collected
// regardless of this option.
func WithCollectAllErrors(collect bool) BuildOption {
	return func(o *BuildOptions) { o.collectAllErrors = collect }
}

// OptionsFromFlags wires a host CLI's flag set into BuildOptions: a
// "--spec-version" string flag and a "--collect-all-errors" bool flag.
// The CLI binary itself is out of scope; this is only
// the integration seam a host would call into.
func OptionsFromFlags(fs *pflag.FlagSet) []BuildOption {
	var opts []BuildOption

	if fs.Lookup("spec-version") == nil {
		fs.String("spec-version", string(SpecSeptember2025), "GraphQL specification edition to validate against")
	}
	if v, err := fs.GetString("spec-version"); err == nil && v != "" {
		opts = append(opts, WithSpecVersion(SpecVersion(v)))
	}

	if fs.Lookup("collect-all-errors") == nil {
		fs.Bool("collect-all-errors", false, "collect every schema-build error instead of stopping at the first")
	}
	if collect, err := fs.GetBool("collect-all-errors"); err == nil && collect {
		opts = append(opts, WithCollectAllErrors(true))
	}

	return opts
}
