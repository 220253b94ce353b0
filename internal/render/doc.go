// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package render turns lock diffs and lock snapshots into terminal output:
// the line-oriented change report, json/yaml emission, a package table, and
// an optional pager.
package render
