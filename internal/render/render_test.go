// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package render

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	yaml "gopkg.in/yaml.v2"

	"github.com/lockdiff/lockdiff/internal/diff"
	"github.com/lockdiff/lockdiff/internal/differ"
	"github.com/lockdiff/lockdiff/internal/lockfile"
)

func strptr(s string) *string { return &s }

func sampleDiff() differ.LockDiff {
	a := lockfile.Lock{
		Version: 3,
		Packages: []lockfile.Package{
			{
				Name:         "tokio",
				Version:      "1.15.0",
				Source:       strptr("registry+https://github.com/rust-lang/crates.io-index"),
				Checksum:     strptr("fbbf1c77"),
				Dependencies: []string{"bytes", "memchr"},
			},
			{Name: "bytes", Version: "1.5.0"},
		},
	}
	b := lockfile.Lock{
		Version: 3,
		Packages: []lockfile.Package{
			{
				Name:         "tokio",
				Version:      "1.34.0",
				Source:       strptr("registry+https://github.com/rust-lang/crates.io-index"),
				Checksum:     strptr("d0c01476"),
				Dependencies: []string{"bytes", "socket2"},
			},
			{Name: "bytes", Version: "1.5.0"},
		},
	}
	return differ.Locks(a, b)
}

func TestRenderer_Lock(t *testing.T) {
	var buf bytes.Buffer
	err := New(&buf, Options{}).Lock(sampleDiff())
	require.NoError(t, err)

	want := ` version = 3

 [[package]]
 name = "tokio"
-version = "1.15.0"
+version = "1.34.0" (upgrade)
 source = "registry+https://github.com/rust-lang/crates.io-index"
-checksum = "fbbf1c77"
+checksum = "d0c01476"
 dependencies = [
- "memchr",
+ "socket2",
 ]
`
	assert.Equal(t, want, buf.String())
}

func TestRenderer_UnchangedBlocksSuppressed(t *testing.T) {
	var buf bytes.Buffer
	err := New(&buf, Options{}).Lock(sampleDiff())
	require.NoError(t, err)

	// bytes did not change, so no block for it.
	assert.NotContains(t, buf.String(), `name = "bytes"`)
}

func TestRenderer_Verbose(t *testing.T) {
	var buf bytes.Buffer
	err := New(&buf, Options{Verbose: true}).Lock(sampleDiff())
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "  \"bytes\",\n")
}

func TestRenderer_Summary(t *testing.T) {
	var buf bytes.Buffer
	err := New(&buf, Options{Summary: true}).Lock(sampleDiff())
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "1 package changed, 0 packages added, 0 packages removed")
}

func TestRenderer_ModifiedVersionLine(t *testing.T) {
	d := differ.LockDiff{Version: diff.Modified(3, 4)}

	var buf bytes.Buffer
	err := New(&buf, Options{}).Lock(d)
	require.NoError(t, err)

	assert.Equal(t, "-version = 3\n+version = 4\n", buf.String())
}

func TestRenderer_UnexpectedVersionDifference(t *testing.T) {
	// The format version is present on both sides of any loaded snapshot
	// pair, so a one-sided difference means the diff was built by hand.
	d := differ.LockDiff{Version: diff.Added(3)}

	var buf bytes.Buffer
	err := New(&buf, Options{}).Lock(d)
	assert.Error(t, err)
}

func TestRenderer_OneSidedBlocks(t *testing.T) {
	a := lockfile.Lock{Version: 3, Packages: []lockfile.Package{
		{Name: "rand", Version: "0.8.5", Dependencies: []string{"libc"}},
	}}
	b := lockfile.Lock{Version: 3, Packages: []lockfile.Package{
		{Name: "anyhow", Version: "1.0.75"},
	}}

	var buf bytes.Buffer
	err := New(&buf, Options{}).Lock(differ.Locks(a, b))
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "+version = \"1.0.75\"\n")
	assert.Contains(t, out, "-version = \"0.8.5\"\n")
	assert.Contains(t, out, "- \"libc\",\n")
	// Absent optional fields produce no lines at all.
	assert.NotContains(t, out, "source")
	assert.NotContains(t, out, "checksum")
}

func TestVersionNote(t *testing.T) {
	tests := []struct {
		name string
		d    diff.Difference[string]
		want string
	}{
		{name: "upgrade", d: diff.Modified("1.15.0", "1.34.0"), want: "upgrade"},
		{name: "downgrade", d: diff.Modified("2.0.0", "1.9.9"), want: "downgrade"},
		{name: "not semver", d: diff.Modified("abc", "def"), want: ""},
		{name: "equal is not annotated", d: diff.Equal("1.0.0"), want: ""},
		{name: "added is not annotated", d: diff.Added("1.0.0"), want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, versionNote(tt.d))
		})
	}
}

func TestEmitJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, EmitJSON(&buf, sampleDiff()))

	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))

	version := doc["version"].(map[string]interface{})
	assert.Equal(t, "equal", version["kind"])

	pkgs := doc["packages"].([]interface{})
	require.Len(t, pkgs, 1)
	tokio := pkgs[0].(map[string]interface{})
	assert.Equal(t, "tokio", tokio["name"])
	assert.Equal(t, "modified", tokio["version"].(map[string]interface{})["kind"])
}

func TestEmitYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, EmitYAML(&buf, sampleDiff()))

	var doc struct {
		Packages []struct {
			Name    string `yaml:"name"`
			Version struct {
				Kind string `yaml:"kind"`
				Old  string `yaml:"old"`
				New  string `yaml:"new"`
			} `yaml:"version"`
		} `yaml:"packages"`
	}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &doc))

	require.Len(t, doc.Packages, 1)
	assert.Equal(t, "tokio", doc.Packages[0].Name)
	assert.Equal(t, "modified", doc.Packages[0].Version.Kind)
	assert.Equal(t, "1.15.0", doc.Packages[0].Version.Old)
	assert.Equal(t, "1.34.0", doc.Packages[0].Version.New)
}

func TestTable(t *testing.T) {
	lock := lockfile.Lock{
		Version: 3,
		Packages: []lockfile.Package{
			{Name: "zebra", Version: "2.0.0", Dependencies: []string{"a", "b"}},
			{Name: "alpha", Version: "1.0.0", Source: strptr("registry")},
		},
	}

	var buf bytes.Buffer
	Table(&buf, lock, TableOptions{Titles: true})

	out := buf.String()
	assert.Contains(t, out, "name")
	assert.Contains(t, out, "alpha")
	assert.Contains(t, out, "zebra")
	// Default sort is by name.
	assert.Less(t, strings.Index(out, "alpha"), strings.Index(out, "zebra"))
}

func TestTable_SortDescending(t *testing.T) {
	lock := lockfile.Lock{
		Packages: []lockfile.Package{
			{Name: "alpha", Version: "1.0.0"},
			{Name: "zebra", Version: "2.0.0"},
		},
	}

	var buf bytes.Buffer
	Table(&buf, lock, TableOptions{Sort: "-name"})

	out := buf.String()
	assert.Less(t, strings.Index(out, "zebra"), strings.Index(out, "alpha"))
}

func TestTable_Empty(t *testing.T) {
	var buf bytes.Buffer
	Table(&buf, lockfile.Lock{}, TableOptions{})
	assert.Empty(t, buf.String())
}
