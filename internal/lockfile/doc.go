// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package lockfile loads dependency lock files into an in-memory snapshot
// model. Cargo.lock (TOML) and package-lock.json (npm v2/v3) are supported.
package lockfile
