// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package diff

import (
	"cmp"
	"fmt"
	"slices"
)

// Kind identifies the outcome of comparing the old and new occurrence of a
// value. The declared order is the canonical render order: removals and
// additions are what the reader scans for, so Removed sorts ahead of Equal.
type Kind int8

const (
	KindEmpty Kind = iota
	KindRemoved
	KindEqual
	KindModified
	KindAdded
)

// String returns the lowercase kind name.
func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindRemoved:
		return "removed"
	case KindEqual:
		return "equal"
	case KindModified:
		return "modified"
	case KindAdded:
		return "added"
	default:
		return fmt.Sprintf("kind(%d)", int8(k))
	}
}

// Difference is the result of comparing the old and new occurrence of a single
// value slot. Exactly one Kind describes any combination of presence and
// equality, so every comparison is total. Values are immutable once built.
type Difference[T cmp.Ordered] struct {
	kind Kind
	old  T
	new  T
}

// Empty reports a value absent on both sides. Only meaningful for optional
// slots.
func Empty[T cmp.Ordered]() Difference[T] {
	return Difference[T]{kind: KindEmpty}
}

// Removed reports a value present on the old side only.
func Removed[T cmp.Ordered](v T) Difference[T] {
	return Difference[T]{kind: KindRemoved, old: v}
}

// Equal reports a value present and identical on both sides.
func Equal[T cmp.Ordered](v T) Difference[T] {
	return Difference[T]{kind: KindEqual, old: v, new: v}
}

// Modified reports a value present on both sides with different content. The
// representation keeps direction: old is the left snapshot, new the right.
func Modified[T cmp.Ordered](old, new T) Difference[T] {
	return Difference[T]{kind: KindModified, old: old, new: new}
}

// Added reports a value present on the new side only.
func Added[T cmp.Ordered](v T) Difference[T] {
	return Difference[T]{kind: KindAdded, new: v}
}

// Kind returns the comparison outcome.
func (d Difference[T]) Kind() Kind { return d.kind }

// Old returns the old-side value. Zero for Empty and Added.
func (d Difference[T]) Old() T { return d.old }

// New returns the new-side value. Zero for Empty and Removed.
func (d Difference[T]) New() T { return d.new }

// Value returns the single wrapped value for Equal, Removed and Added. For
// Modified it returns the old value; callers wanting both sides use Old/New.
func (d Difference[T]) Value() T {
	if d.kind == KindAdded {
		return d.new
	}
	return d.old
}

// IsEqual reports whether the value is identical on both sides.
func (d Difference[T]) IsEqual() bool { return d.kind == KindEqual }

// IsEmpty reports whether the value is absent on both sides.
func (d Difference[T]) IsEmpty() bool { return d.kind == KindEmpty }

// Compare orders two differences by the canonical total order: kind first,
// then old value, then new value. Used wherever a collection of differences
// must serialize deterministically.
func (d Difference[T]) Compare(other Difference[T]) int {
	if c := cmp.Compare(d.kind, other.kind); c != 0 {
		return c
	}
	if c := cmp.Compare(d.old, other.old); c != 0 {
		return c
	}
	return cmp.Compare(d.new, other.new)
}

// Values compares two mandatory-present values. The outcome is always Equal
// or Modified.
func Values[T cmp.Ordered](a, b T) Difference[T] {
	if a == b {
		return Equal(a)
	}
	return Modified(a, b)
}

// Optional compares two optional values, nil meaning absent. Covers all four
// presence combinations.
func Optional[T cmp.Ordered](a, b *T) Difference[T] {
	switch {
	case a == nil && b == nil:
		return Empty[T]()
	case a == nil:
		return Added(*b)
	case b == nil:
		return Removed(*a)
	default:
		return Values(*a, *b)
	}
}

// Set compares two unordered collections. Element order and duplicates in the
// inputs carry no meaning; both collapse into sets. Every element of the
// union appears exactly once in the result, which is sorted by the canonical
// order so the output is independent of input ordering and map iteration.
func Set[T cmp.Ordered](a, b []T) []Difference[T] {
	as := make(map[T]struct{}, len(a))
	for _, v := range a {
		as[v] = struct{}{}
	}
	bs := make(map[T]struct{}, len(b))
	for _, v := range b {
		bs[v] = struct{}{}
	}

	out := make([]Difference[T], 0, max(len(as), len(bs)))
	for v := range as {
		if _, ok := bs[v]; ok {
			out = append(out, Equal(v))
		} else {
			out = append(out, Removed(v))
		}
	}
	for v := range bs {
		if _, ok := as[v]; !ok {
			out = append(out, Added(v))
		}
	}

	slices.SortFunc(out, Difference[T].Compare)
	return out
}
