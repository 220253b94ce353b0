// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/lockdiff/lockdiff/internal/lockfile"
	"github.com/lockdiff/lockdiff/internal/meta"
)

// GetMeta returns the meta.Meta stored in the command's Metadata. If missing
// or of an unexpected type, it returns the zero value.
func GetMeta(cmd *cli.Command) meta.Meta {
	if cmd == nil || cmd.Metadata == nil {
		return meta.Meta{}
	}
	if m, ok := cmd.Metadata["meta"].(meta.Meta); ok {
		return m
	}
	return meta.Meta{}
}

// flagFormat maps the --format flag value to a lockfile.Format, empty meaning
// detect.
func flagFormat(cmd *cli.Command) lockfile.Format {
	switch cmd.String("format") {
	case "cargo":
		return lockfile.FormatCargo
	case "npm":
		return lockfile.FormatNPM
	default:
		return ""
	}
}

// loadPair loads the two positional lock files with a shared format policy.
// Mixing dialects is rejected since a cross-ecosystem diff has no meaning.
func loadPair(cmd *cli.Command, oldPath, newPath string) (lockfile.Lock, lockfile.Lock, error) {
	format := flagFormat(cmd)

	oldLock, err := lockfile.Load(oldPath, format)
	if err != nil {
		return lockfile.Lock{}, lockfile.Lock{}, fmt.Errorf("%s: %w", oldPath, err)
	}

	newLock, err := lockfile.Load(newPath, format)
	if err != nil {
		return lockfile.Lock{}, lockfile.Lock{}, fmt.Errorf("%s: %w", newPath, err)
	}

	if oldLock.Format != newLock.Format {
		return lockfile.Lock{}, lockfile.Lock{},
			fmt.Errorf("cannot diff %s lock against %s lock", oldLock.Format, newLock.Format)
	}

	return oldLock, newLock, nil
}
