// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package differ

import (
	"fmt"
	"slices"
	"strings"

	"github.com/lockdiff/lockdiff/internal/diff"
	"github.com/lockdiff/lockdiff/internal/lockfile"
	"github.com/lockdiff/lockdiff/internal/log"
)

// PackageDiff is the diff of two packages sharing the same name: one
// difference per scalar field plus the dependency set differences, sorted by
// the canonical order.
type PackageDiff struct {
	Name         string
	Version      diff.Difference[string]
	Source       diff.Difference[string]
	Checksum     diff.Difference[string]
	Dependencies []diff.Difference[string]
}

// Packages diffs two packages with equal identity. Diffing unrelated packages
// has no defined semantics, so a name mismatch is a caller bug and panics.
func Packages(a, b lockfile.Package) PackageDiff {
	if a.Name != b.Name {
		panic(fmt.Sprintf("differ: cannot diff unrelated packages %q and %q", a.Name, b.Name))
	}
	return PackageDiff{
		Name:         a.Name,
		Version:      diff.Values(a.Version, b.Version),
		Source:       diff.Optional(a.Source, b.Source),
		Checksum:     diff.Optional(a.Checksum, b.Checksum),
		Dependencies: diff.Set(a.Dependencies, b.Dependencies),
	}
}

// AddedPackage builds the one-sided diff for a package present only in the
// new snapshot. Absent optional fields stay Empty rather than becoming an
// Added zero value.
func AddedPackage(p lockfile.Package) PackageDiff {
	d := PackageDiff{
		Name:     p.Name,
		Version:  diff.Added(p.Version),
		Source:   diff.Empty[string](),
		Checksum: diff.Empty[string](),
	}
	if p.Source != nil {
		d.Source = diff.Added(*p.Source)
	}
	if p.Checksum != nil {
		d.Checksum = diff.Added(*p.Checksum)
	}
	for _, dep := range p.Dependencies {
		d.Dependencies = append(d.Dependencies, diff.Added(dep))
	}
	return d
}

// RemovedPackage builds the one-sided diff for a package present only in the
// old snapshot.
func RemovedPackage(p lockfile.Package) PackageDiff {
	d := PackageDiff{
		Name:     p.Name,
		Version:  diff.Removed(p.Version),
		Source:   diff.Empty[string](),
		Checksum: diff.Empty[string](),
	}
	if p.Source != nil {
		d.Source = diff.Removed(*p.Source)
	}
	if p.Checksum != nil {
		d.Checksum = diff.Removed(*p.Checksum)
	}
	for _, dep := range p.Dependencies {
		d.Dependencies = append(d.Dependencies, diff.Removed(dep))
	}
	return d
}

// Unchanged reports whether every field is equal or absent on both sides.
// The renderer uses it to suppress no-op package blocks.
func (d PackageDiff) Unchanged() bool {
	if !d.Version.IsEqual() {
		return false
	}
	if !d.Source.IsEqual() && !d.Source.IsEmpty() {
		return false
	}
	if !d.Checksum.IsEqual() && !d.Checksum.IsEmpty() {
		return false
	}
	for _, dep := range d.Dependencies {
		if !dep.IsEqual() && !dep.IsEmpty() {
			return false
		}
	}
	return true
}

// LockDiff is the aggregate diff of two lock file snapshots: the lock format
// version difference plus the per-package diffs sorted by package name.
type LockDiff struct {
	Version  diff.Difference[int]
	Packages []PackageDiff
}

// Locks joins two snapshots by package name and diffs the result. Matched
// names produce a two-sided diff, unmatched ones a one-sided diff. Duplicate
// names within one snapshot collapse to the last-seen entry; the collision is
// logged but not rejected, matching the lock formats where duplicates do not
// legitimately occur.
func Locks(a, b lockfile.Lock) LockDiff {
	out := LockDiff{Version: diff.Values(a.Version, b.Version)}

	olds := keyed(a.Packages)
	news := keyed(b.Packages)

	out.Packages = make([]PackageDiff, 0, max(len(olds), len(news)))
	for name, op := range olds {
		if np, ok := news[name]; ok {
			out.Packages = append(out.Packages, Packages(op, np))
		} else {
			out.Packages = append(out.Packages, RemovedPackage(op))
		}
	}
	for name, np := range news {
		if _, ok := olds[name]; !ok {
			out.Packages = append(out.Packages, AddedPackage(np))
		}
	}

	// Map iteration order is random; the report must not be.
	slices.SortFunc(out.Packages, func(x, y PackageDiff) int {
		return strings.Compare(x.Name, y.Name)
	})

	return out
}

// Unchanged reports whether the two snapshots were identical.
func (d LockDiff) Unchanged() bool {
	if !d.Version.IsEqual() {
		return false
	}
	for _, p := range d.Packages {
		if !p.Unchanged() {
			return false
		}
	}
	return true
}

func keyed(pkgs []lockfile.Package) map[string]lockfile.Package {
	m := make(map[string]lockfile.Package, len(pkgs))
	for _, p := range pkgs {
		if _, ok := m[p.Name]; ok {
			log.Warnf("duplicate package %q in lock file, keeping the last entry", p.Name)
		}
		m[p.Name] = p
	}
	return m
}
