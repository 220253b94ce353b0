// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package lockfile

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/lockdiff/lockdiff/internal/log"
)

// Format identifies the on-disk lock file dialect.
type Format string

const (
	FormatCargo Format = "cargo"
	FormatNPM   Format = "npm"
)

// Package is one resolved dependency entry. Name is the identity key used to
// match entries across two snapshots. Source and Checksum are optional; nil
// means the field is absent in the lock file, not empty.
type Package struct {
	Name         string   `json:"name" yaml:"name"`
	Version      string   `json:"version" yaml:"version"`
	Source       *string  `json:"source,omitempty" yaml:"source,omitempty"`
	Checksum     *string  `json:"checksum,omitempty" yaml:"checksum,omitempty"`
	Dependencies []string `json:"dependencies,omitempty" yaml:"dependencies,omitempty"`
}

// Lock is one fully loaded lock file snapshot: the lock format version plus
// the ordered package list as it appeared on disk.
type Lock struct {
	Version  int       `json:"version" yaml:"version"`
	Packages []Package `json:"packages" yaml:"packages"`
	Format   Format    `json:"format" yaml:"format"`
}

// Load reads and parses the lock file at path. If format is empty the dialect
// is detected from the file name and content.
func Load(path string, format Format) (Lock, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Lock{}, fmt.Errorf("failed to read lock file: %w", err)
	}

	if format == "" {
		format, err = Detect(path, data)
		if err != nil {
			return Lock{}, err
		}
	}
	log.Debugf("loading %s as %s", path, format)

	switch format {
	case FormatCargo:
		return parseCargo(data)
	case FormatNPM:
		return parseNPM(data)
	default:
		return Lock{}, fmt.Errorf("unsupported lock format: %s", format)
	}
}

// Detect sniffs the lock dialect from the file name, falling back to the
// leading content byte (package-lock.json is a JSON object, Cargo.lock is
// TOML).
func Detect(path string, data []byte) (Format, error) {
	switch base := filepath.Base(path); {
	case base == "Cargo.lock":
		return FormatCargo, nil
	case base == "package-lock.json" || strings.HasSuffix(base, ".json"):
		return FormatNPM, nil
	}

	if trimmed := strings.TrimLeft(string(data), " \t\r\n"); strings.HasPrefix(trimmed, "{") {
		return FormatNPM, nil
	}
	if strings.Contains(string(data), "[[package]]") {
		return FormatCargo, nil
	}

	return "", fmt.Errorf("unable to detect lock format of %s", path)
}
