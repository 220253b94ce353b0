// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package render

import (
	"fmt"
	"image/color"
	"io"
	"os"

	"github.com/Masterminds/semver/v3"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/dustin/go-humanize/english"

	"github.com/lockdiff/lockdiff/internal/config"
	"github.com/lockdiff/lockdiff/internal/diff"
	"github.com/lockdiff/lockdiff/internal/differ"
)

// Options is the rendering configuration. It is passed explicitly; nothing in
// this package reads ambient formatting state.
type Options struct {
	// Verbose includes unchanged dependency lines in each package block.
	Verbose bool
	// Color enables ANSI-styled output.
	Color bool
	// Summary appends a footer with package change counts.
	Summary bool
}

// Renderer writes the line-oriented change report for a lock diff.
type Renderer struct {
	w       io.Writer
	opts    Options
	removed lipgloss.Style
	added   lipgloss.Style
	note    lipgloss.Style
}

// New constructs a Renderer writing to w. If w is nil, os.Stdout is used.
func New(w io.Writer, opts Options) *Renderer {
	if w == nil {
		w = os.Stdout
	}

	r := &Renderer{
		w:       w,
		opts:    opts,
		removed: lipgloss.NewStyle(),
		added:   lipgloss.NewStyle(),
		note:    lipgloss.NewStyle(),
	}

	if opts.Color {
		removed, added := diffColors("colors")
		r.removed = r.removed.Foreground(removed)
		r.added = r.added.Foreground(added)
		r.note = r.note.Faint(true)
	}

	return r
}

// Lock writes the whole report: the format-version line, then one block per
// changed package, then the optional summary footer. The format version is
// always present on both sides, so any version difference other than Equal or
// Modified means the diff was not built from two loaded snapshots.
func (r *Renderer) Lock(d differ.LockDiff) error {
	switch d.Version.Kind() {
	case diff.KindEqual:
		fmt.Fprintf(r.w, " version = %d\n", d.Version.Value())
	case diff.KindModified:
		fmt.Fprintln(r.w, r.removed.Render(fmt.Sprintf("-version = %d", d.Version.Old())))
		fmt.Fprintln(r.w, r.added.Render(fmt.Sprintf("+version = %d", d.Version.New())))
	default:
		return fmt.Errorf("unexpected format version difference: %s", d.Version.Kind())
	}

	var added, removed, changed int
	for _, p := range d.Packages {
		if p.Unchanged() {
			continue
		}

		switch p.Version.Kind() {
		case diff.KindAdded:
			added++
		case diff.KindRemoved:
			removed++
		default:
			changed++
		}

		fmt.Fprintln(r.w)
		r.pkg(p)
	}

	if r.opts.Summary {
		fmt.Fprintln(r.w)
		fmt.Fprintln(r.w, r.note.Render(fmt.Sprintf("%s changed, %s added, %s removed",
			english.Plural(changed, "package", ""),
			english.Plural(added, "package", ""),
			english.Plural(removed, "package", ""))))
	}

	return nil
}

// pkg writes one package block.
func (r *Renderer) pkg(p differ.PackageDiff) {
	fmt.Fprintln(r.w, " [[package]]")
	fmt.Fprintf(r.w, " name = %q\n", p.Name)

	r.field("version", p.Version, versionNote(p.Version))
	r.field("source", p.Source, "")
	r.field("checksum", p.Checksum, "")

	fmt.Fprintln(r.w, " dependencies = [")
	for _, dep := range p.Dependencies {
		switch dep.Kind() {
		case diff.KindRemoved:
			fmt.Fprintln(r.w, r.removed.Render(fmt.Sprintf("- %q,", dep.Value())))
		case diff.KindEqual:
			if r.opts.Verbose {
				fmt.Fprintf(r.w, "  %q,\n", dep.Value())
			}
		case diff.KindModified:
			fmt.Fprintln(r.w, r.removed.Render(fmt.Sprintf("- %q,", dep.Old())))
			fmt.Fprintln(r.w, r.added.Render(fmt.Sprintf("+ %q,", dep.New())))
		case diff.KindAdded:
			fmt.Fprintln(r.w, r.added.Render(fmt.Sprintf("+ %q,", dep.Value())))
		}
	}
	fmt.Fprintln(r.w, " ]")
}

// field writes one scalar field line (or pair of lines for Modified). Empty
// fields are omitted. A non-empty note is appended to the new-side line.
func (r *Renderer) field(name string, d diff.Difference[string], note string) {
	suffix := ""
	if note != "" {
		suffix = " " + r.note.Render("("+note+")")
	}

	switch d.Kind() {
	case diff.KindRemoved:
		fmt.Fprintln(r.w, r.removed.Render(fmt.Sprintf("-%s = %q", name, d.Value())))
	case diff.KindEqual:
		fmt.Fprintf(r.w, " %s = %q\n", name, d.Value())
	case diff.KindModified:
		fmt.Fprintln(r.w, r.removed.Render(fmt.Sprintf("-%s = %q", name, d.Old())))
		fmt.Fprintln(r.w, r.added.Render(fmt.Sprintf("+%s = %q", name, d.New()))+suffix)
	case diff.KindAdded:
		fmt.Fprintln(r.w, r.added.Render(fmt.Sprintf("+%s = %q", name, d.Value())))
	}
}

// versionNote classifies a modified version as an upgrade or downgrade when
// both sides parse as semver. Lock files may carry versions semver cannot
// parse; those just get no note.
func versionNote(d diff.Difference[string]) string {
	if d.Kind() != diff.KindModified {
		return ""
	}
	before, err := semver.NewVersion(d.Old())
	if err != nil {
		return ""
	}
	after, err := semver.NewVersion(d.New())
	if err != nil {
		return ""
	}
	switch {
	case after.GreaterThan(before):
		return "upgrade"
	case after.LessThan(before):
		return "downgrade"
	default:
		return ""
	}
}

// diffColors resolves the removed/added colors from the config file, falling
// back to defaults chosen for the detected terminal background. An explicit
// config value always wins so users can match their theme.
func diffColors(key string) (removed, added color.Color) {
	isDark := lipgloss.HasDarkBackground(os.Stdin, os.Stdout)

	resolveColor := func(key string, light string, dark string) color.Color {
		colorCfg, err := config.GetString(key)
		if err == nil {
			return lipgloss.Color(colorCfg)
		}

		if isDark {
			return lipgloss.Color(dark)
		}
		return lipgloss.Color(light)
	}

	removed = resolveColor(key+".removed", "#a01010", "#ff5f5f")
	added = resolveColor(key+".added", "#107010", "#5fdf5f")

	return
}
