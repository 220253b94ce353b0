// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package differ composes per-package and whole-lockfile diffs from two
// loaded snapshots, and provides a raw structural diff for JSON lock files.
package differ
