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
	"os"

	"github.com/goccy/go-yaml"
)

// Manifest lists the source files a multi-file project feeds the loader,
// separated into the type-system sources that build a Schema and the
// executable-document sources that are later loaded against it.
type Manifest struct {
	Schema     []string `yaml:"schema"`
	Executable []string `yaml:"executable"`
}

// LoadManifest reads a small YAML manifest naming the schema and
// executable-document source files for a multi-file project — the
// GraphQL-land equivalent of a build file listing inputs.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest %q: %w", path, err)
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing manifest %q: %w", path, err)
	}
	return &m, nil
}

// Sources converts the manifest's Schema file list into Source values
// ready for Build.
func (m *Manifest) Sources() []Source {
	out := make([]Source, len(m.Schema))
	for i, path := range m.Schema {
		out[i] = FileSource(path)
	}
	return out
}

// ExecutableSources converts the manifest's Executable file list into
// Source values naming the operation/fragment documents to be read and
// loaded against an already-built Schema via LoadExecutableDocument.
func (m *Manifest) ExecutableSources() []Source {
	out := make([]Source, len(m.Executable))
	for i, path := range m.Executable {
		out[i] = FileSource(path)
	}
	return out
}
