// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package render

import (
	"encoding/json"
	"fmt"
	"io"

	yaml "gopkg.in/yaml.v2"

	"github.com/lockdiff/lockdiff/internal/diff"
	"github.com/lockdiff/lockdiff/internal/differ"
)

// fieldDoc is the serialized form of a single difference. Old/New are
// pointers so absent sides stay out of the document instead of showing up as
// empty strings.
type fieldDoc struct {
	Kind string  `json:"kind" yaml:"kind"`
	Old  *string `json:"old,omitempty" yaml:"old,omitempty"`
	New  *string `json:"new,omitempty" yaml:"new,omitempty"`
}

type packageDoc struct {
	Name         string     `json:"name" yaml:"name"`
	Version      fieldDoc   `json:"version" yaml:"version"`
	Source       *fieldDoc  `json:"source,omitempty" yaml:"source,omitempty"`
	Checksum     *fieldDoc  `json:"checksum,omitempty" yaml:"checksum,omitempty"`
	Dependencies []fieldDoc `json:"dependencies,omitempty" yaml:"dependencies,omitempty"`
}

type lockDoc struct {
	Version struct {
		Kind string `json:"kind" yaml:"kind"`
		Old  int    `json:"old" yaml:"old"`
		New  int    `json:"new" yaml:"new"`
	} `json:"version" yaml:"version"`
	Packages []packageDoc `json:"packages" yaml:"packages"`
}

// EmitJSON writes the lock diff as an indented JSON document. Unchanged
// package blocks are dropped, same as the text report.
func EmitJSON(w io.Writer, d differ.LockDiff) error {
	out, err := json.MarshalIndent(buildDoc(d), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal diff: %w", err)
	}
	_, err = fmt.Fprintln(w, string(out))
	return err
}

// EmitYAML writes the lock diff as a YAML document.
func EmitYAML(w io.Writer, d differ.LockDiff) error {
	out, err := yaml.Marshal(buildDoc(d))
	if err != nil {
		return fmt.Errorf("failed to marshal diff: %w", err)
	}
	_, err = w.Write(out)
	return err
}

func buildDoc(d differ.LockDiff) lockDoc {
	var doc lockDoc
	doc.Version.Kind = d.Version.Kind().String()
	doc.Version.Old = d.Version.Old()
	doc.Version.New = d.Version.New()

	for _, p := range d.Packages {
		if p.Unchanged() {
			continue
		}

		pd := packageDoc{
			Name:     p.Name,
			Version:  field(p.Version),
			Source:   optionalField(p.Source),
			Checksum: optionalField(p.Checksum),
		}
		for _, dep := range p.Dependencies {
			pd.Dependencies = append(pd.Dependencies, field(dep))
		}

		doc.Packages = append(doc.Packages, pd)
	}

	return doc
}

func field(d diff.Difference[string]) fieldDoc {
	f := fieldDoc{Kind: d.Kind().String()}
	switch d.Kind() {
	case diff.KindRemoved:
		old := d.Old()
		f.Old = &old
	case diff.KindEqual, diff.KindModified:
		old, updated := d.Old(), d.New()
		f.Old = &old
		f.New = &updated
	case diff.KindAdded:
		updated := d.New()
		f.New = &updated
	}
	return f
}

func optionalField(d diff.Difference[string]) *fieldDoc {
	if d.IsEmpty() {
		return nil
	}
	f := field(d)
	return &f
}
