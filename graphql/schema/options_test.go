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

package schema_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hexgql/schema/graphql/schema"
)

func TestOptionsFromFlagsDefaultsToSeptember2025AndNoCollectAll(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	opts := schema.OptionsFromFlags(fs)
	// Defaults produce a spec-version option but no collect-all-errors
	// option, since the flag defaults to false.
	require.Len(t, opts, 1)
}

func TestOptionsFromFlagsHonorsParsedValues(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	schema.OptionsFromFlags(fs) // registers both flags on fs so Parse accepts them
	require.NoError(t, fs.Parse([]string{"--spec-version=October2021", "--collect-all-errors"}))
	opts := schema.OptionsFromFlags(fs)
	require.Len(t, opts, 2)

	var got schema.BuildOptions
	for _, o := range opts {
		o(&got)
	}
	_ = got // BuildOptions fields are unexported; applying is enough to confirm no panic.
}

func TestLoadManifestParsesYAMLAndBuildsSources(t *testing.T) {
	dir := t.TempDir()
	schemaPath := filepath.Join(dir, "root.graphql")
	require.NoError(t, os.WriteFile(schemaPath, []byte("type Query { id: ID }"), 0o644))

	manifestPath := filepath.Join(dir, "manifest.yaml")
	manifestYAML := "schema:\n  - " + schemaPath + "\nexecutable:\n  - query.graphql\n"
	require.NoError(t, os.WriteFile(manifestPath, []byte(manifestYAML), 0o644))

	m, err := schema.LoadManifest(manifestPath)
	require.NoError(t, err)
	assert.Equal(t, []string{schemaPath}, m.Schema)
	assert.Equal(t, []string{"query.graphql"}, m.Executable)

	sources := m.Sources()
	require.Len(t, sources, 1)

	execSources := m.ExecutableSources()
	require.Len(t, execSources, 1)
	assert.Equal(t, "query.graphql", execSources[0].Path)
	assert.True(t, execSources[0].IsFile)

	s, err := schema.Build(sources)
	require.NoError(t, err)
	assert.Equal(t, "Query", s.Query.Name)
}

func TestLoadManifestMissingFileErrors(t *testing.T) {
	_, err := schema.LoadManifest(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	assert.Error(t, err)
}

func TestBuilderLoadFileReadsSchemaFromDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "root.graphql")
	require.NoError(t, os.WriteFile(path, []byte("type Query { greeting: String }"), 0o644))

	b := schema.NewBuilder()
	require.NoError(t, b.LoadFile(path))

	s, err := b.Build()
	require.NoError(t, err)
	assert.NotNil(t, s.Query.FieldByName("greeting"))
}

func TestBuilderLoadFileMissingPathErrors(t *testing.T) {
	b := schema.NewBuilder()
	err := b.LoadFile(filepath.Join(t.TempDir(), "missing.graphql"))
	assert.Error(t, err)
}
