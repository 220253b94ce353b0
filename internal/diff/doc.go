// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package diff implements the generic difference algebra used to compare two
// versions of a value, and the set comparison built on top of it.
package diff
