// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package lockfile

import (
	"fmt"

	"github.com/pelletier/go-toml/v2"
)

// cargoLock mirrors the Cargo.lock TOML schema. Dependency entries may carry
// a version qualifier ("windows-sys 0.48.0") which is kept verbatim since it
// is part of the identity within the dependency set.
type cargoLock struct {
	Version int            `toml:"version"`
	Package []cargoPackage `toml:"package"`
}

type cargoPackage struct {
	Name         string   `toml:"name"`
	Version      string   `toml:"version"`
	Source       string   `toml:"source"`
	Checksum     string   `toml:"checksum"`
	Dependencies []string `toml:"dependencies"`
}

func parseCargo(data []byte) (Lock, error) {
	var raw cargoLock
	if err := toml.Unmarshal(data, &raw); err != nil {
		return Lock{}, fmt.Errorf("failed to parse Cargo.lock: %w", err)
	}

	lock := Lock{
		Version:  raw.Version,
		Packages: make([]Package, 0, len(raw.Package)),
		Format:   FormatCargo,
	}
	for _, p := range raw.Package {
		lock.Packages = append(lock.Packages, Package{
			Name:         p.Name,
			Version:      p.Version,
			Source:       optional(p.Source),
			Checksum:     optional(p.Checksum),
			Dependencies: p.Dependencies,
		})
	}

	return lock, nil
}

// optional maps the TOML zero value to an absent field.
func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
