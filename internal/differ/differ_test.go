// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package differ

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lockdiff/lockdiff/internal/diff"
	"github.com/lockdiff/lockdiff/internal/lockfile"
)

func strptr(s string) *string { return &s }

func tokio1150() lockfile.Package {
	return lockfile.Package{
		Name:     "tokio",
		Version:  "1.15.0",
		Source:   strptr("registry+https://github.com/rust-lang/crates.io-index"),
		Checksum: strptr("fbbf1c778ec206785635ce8ad57fe52b3009ae9e0c9f574a728f3049d3e55838"),
		Dependencies: []string{
			"bytes",
			"libc",
			"memchr",
			"mio",
			"num_cpus",
			"once_cell",
			"parking_lot",
			"pin-project-lite",
			"signal-hook-registry",
			"tokio-macros",
			"winapi",
		},
	}
}

func tokio1340() lockfile.Package {
	return lockfile.Package{
		Name:     "tokio",
		Version:  "1.34.0",
		Source:   strptr("registry+https://github.com/rust-lang/crates.io-index"),
		Checksum: strptr("d0c014766411e834f7af5b8f4cf46257aab4036ca95e9d2c144a10f59ad6f5b9"),
		Dependencies: []string{
			"backtrace",
			"bytes",
			"libc",
			"mio",
			"num_cpus",
			"parking_lot",
			"pin-project-lite",
			"signal-hook-registry",
			"socket2",
			"tokio-macros",
			"windows-sys 0.48.0",
		},
	}
}

func tokioDiff() PackageDiff {
	return PackageDiff{
		Name:     "tokio",
		Version:  diff.Modified("1.15.0", "1.34.0"),
		Source:   diff.Equal("registry+https://github.com/rust-lang/crates.io-index"),
		Checksum: diff.Modified(
			"fbbf1c778ec206785635ce8ad57fe52b3009ae9e0c9f574a728f3049d3e55838",
			"d0c014766411e834f7af5b8f4cf46257aab4036ca95e9d2c144a10f59ad6f5b9",
		),
		Dependencies: []diff.Difference[string]{
			diff.Removed("memchr"),
			diff.Removed("once_cell"),
			diff.Removed("winapi"),
			diff.Equal("bytes"),
			diff.Equal("libc"),
			diff.Equal("mio"),
			diff.Equal("num_cpus"),
			diff.Equal("parking_lot"),
			diff.Equal("pin-project-lite"),
			diff.Equal("signal-hook-registry"),
			diff.Equal("tokio-macros"),
			diff.Added("backtrace"),
			diff.Added("socket2"),
			diff.Added("windows-sys 0.48.0"),
		},
	}
}

func TestPackages(t *testing.T) {
	got := Packages(tokio1150(), tokio1340())
	assert.Equal(t, tokioDiff(), got)
	assert.False(t, got.Unchanged())
}

func TestPackages_Self(t *testing.T) {
	got := Packages(tokio1150(), tokio1150())

	assert.True(t, got.Version.IsEqual())
	assert.True(t, got.Source.IsEqual())
	assert.True(t, got.Checksum.IsEqual())
	for _, dep := range got.Dependencies {
		assert.True(t, dep.IsEqual())
	}
	assert.True(t, got.Unchanged())
}

func TestPackages_MismatchedNamesPanics(t *testing.T) {
	a := tokio1150()
	b := tokio1340()
	b.Name = "hyper"

	assert.Panics(t, func() { Packages(a, b) })
}

func TestAddedPackage(t *testing.T) {
	got := AddedPackage(tokio1340())

	assert.Equal(t, diff.Added("1.34.0"), got.Version)
	assert.Equal(t, diff.Added("registry+https://github.com/rust-lang/crates.io-index"), got.Source)
	require.Len(t, got.Dependencies, 11)
	for _, dep := range got.Dependencies {
		assert.Equal(t, diff.KindAdded, dep.Kind())
	}
	assert.False(t, got.Unchanged())
}

func TestAddedPackage_AbsentOptionalsStayEmpty(t *testing.T) {
	got := AddedPackage(lockfile.Package{Name: "left-pad", Version: "1.3.0"})

	assert.Equal(t, diff.Added("1.3.0"), got.Version)
	assert.True(t, got.Source.IsEmpty())
	assert.True(t, got.Checksum.IsEmpty())
	assert.Empty(t, got.Dependencies)
}

func TestRemovedPackage(t *testing.T) {
	got := RemovedPackage(tokio1150())

	assert.Equal(t, diff.Removed("1.15.0"), got.Version)
	assert.Equal(t, diff.Removed("registry+https://github.com/rust-lang/crates.io-index"), got.Source)
	for _, dep := range got.Dependencies {
		assert.Equal(t, diff.KindRemoved, dep.Kind())
	}
	assert.False(t, got.Unchanged())
}

func TestLocks(t *testing.T) {
	a := lockfile.Lock{Version: 3, Packages: []lockfile.Package{tokio1150()}}
	b := lockfile.Lock{Version: 3, Packages: []lockfile.Package{tokio1340()}}

	got := Locks(a, b)

	assert.Equal(t, diff.Equal(3), got.Version)
	require.Len(t, got.Packages, 1)
	assert.Equal(t, tokioDiff(), got.Packages[0])
}

func TestLocks_AddedAndRemoved(t *testing.T) {
	a := lockfile.Lock{
		Version: 3,
		Packages: []lockfile.Package{
			{Name: "serde", Version: "1.0.0"},
			{Name: "rand", Version: "0.8.5"},
		},
	}
	b := lockfile.Lock{
		Version: 4,
		Packages: []lockfile.Package{
			{Name: "serde", Version: "1.0.0"},
			{Name: "anyhow", Version: "1.0.75"},
		},
	}

	got := Locks(a, b)

	assert.Equal(t, diff.Modified(3, 4), got.Version)
	require.Len(t, got.Packages, 3)

	// Sorted by package name, independent of input and map iteration order.
	assert.Equal(t, "anyhow", got.Packages[0].Name)
	assert.Equal(t, "rand", got.Packages[1].Name)
	assert.Equal(t, "serde", got.Packages[2].Name)

	assert.Equal(t, diff.Added("1.0.75"), got.Packages[0].Version)
	assert.Equal(t, diff.Removed("0.8.5"), got.Packages[1].Version)
	assert.Equal(t, diff.Equal("1.0.0"), got.Packages[2].Version)

	assert.False(t, got.Unchanged())
}

func TestLocks_DuplicateNamesLastWins(t *testing.T) {
	a := lockfile.Lock{
		Version: 3,
		Packages: []lockfile.Package{
			{Name: "serde", Version: "0.9.0"},
			{Name: "serde", Version: "1.0.0"},
		},
	}
	b := lockfile.Lock{
		Version:  3,
		Packages: []lockfile.Package{{Name: "serde", Version: "1.0.0"}},
	}

	got := Locks(a, b)

	require.Len(t, got.Packages, 1)
	assert.Equal(t, diff.Equal("1.0.0"), got.Packages[0].Version)
	assert.True(t, got.Unchanged())
}

func TestLocks_Unchanged(t *testing.T) {
	a := lockfile.Lock{Version: 3, Packages: []lockfile.Package{tokio1150()}}

	got := Locks(a, a)

	assert.True(t, got.Unchanged())
	for _, p := range got.Packages {
		assert.True(t, p.Unchanged())
	}
}
