// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package lockfile

import (
	"fmt"
	"sort"
	"strings"

	"github.com/tidwall/gjson"
)

// parseNPM loads a package-lock.json v2/v3 document. Entries come from the
// "packages" map; the map key is a node_modules path, so the package name is
// the segment after the last "node_modules/". The root "" entry describes the
// project itself and is skipped.
func parseNPM(data []byte) (Lock, error) {
	doc := gjson.ParseBytes(data)
	if !doc.IsObject() {
		return Lock{}, fmt.Errorf("failed to parse package-lock.json: not a JSON object")
	}

	version := doc.Get("lockfileVersion")
	if !version.Exists() {
		return Lock{}, fmt.Errorf("failed to parse package-lock.json: missing lockfileVersion")
	}

	lock := Lock{
		Version: int(version.Int()),
		Format:  FormatNPM,
	}

	doc.Get("packages").ForEach(func(key, value gjson.Result) bool {
		path := key.String()
		if path == "" {
			return true
		}

		pkg := Package{
			Name:     npmName(path),
			Version:  value.Get("version").String(),
			Source:   optional(value.Get("resolved").String()),
			Checksum: optional(value.Get("integrity").String()),
		}

		value.Get("dependencies").ForEach(func(dep, _ gjson.Result) bool {
			pkg.Dependencies = append(pkg.Dependencies, dep.String())
			return true
		})
		// JSON object iteration order is whatever the document says; the
		// dependency list is treated as a set downstream, but keep the model
		// deterministic anyway.
		sort.Strings(pkg.Dependencies)

		lock.Packages = append(lock.Packages, pkg)
		return true
	})

	return lock, nil
}

// npmName extracts the package name from a node_modules path key, keeping
// scopes intact ("node_modules/@types/node" -> "@types/node").
func npmName(path string) string {
	if idx := strings.LastIndex(path, "node_modules/"); idx != -1 {
		return path[idx+len("node_modules/"):]
	}
	return path
}
