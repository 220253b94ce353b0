// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package render

import (
	"fmt"
	"image/color"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/charmbracelet/lipgloss/v2/table"

	"github.com/lockdiff/lockdiff/internal/config"
	"github.com/lockdiff/lockdiff/internal/lockfile"
)

// TableOptions configures the package listing produced by Table.
type TableOptions struct {
	// Sort is the column to order by; a leading "-" reverses. Defaults to
	// "name".
	Sort string
	// Titles adds a header row.
	Titles bool
	// Color styles the output.
	Color bool
	// Padding is the inter-column padding.
	Padding int
}

// Table renders the packages of one lock snapshot in tabular form. Output is
// written to w. If w is nil, os.Stdout is used.
func Table(w io.Writer, lock lockfile.Lock, opts TableOptions) {
	if w == nil {
		w = os.Stdout
	}

	if len(lock.Packages) == 0 {
		return
	}

	headerStyle := lipgloss.NewStyle().Align(lipgloss.Left).Bold(true)
	cellStyle := lipgloss.NewStyle().Padding(0, 0).Align(lipgloss.Left)
	evenRowStyle := cellStyle
	oddRowStyle := cellStyle

	if opts.Color {
		headerColor, evenColor, oddColor := tableColors("colors")

		headerStyle = headerStyle.Foreground(headerColor)
		evenRowStyle = evenRowStyle.Foreground(evenColor)
		oddRowStyle = oddRowStyle.Foreground(oddColor)
	}

	pkgs := make([]lockfile.Package, len(lock.Packages))
	copy(pkgs, lock.Packages)
	sortPackages(pkgs, opts.Sort)

	var rows [][]string
	for _, p := range pkgs {
		source := "-"
		if p.Source != nil {
			source = *p.Source
		}
		rows = append(rows, []string{
			p.Name,
			p.Version,
			strconv.Itoa(len(p.Dependencies)),
			source,
		})
	}

	t := table.New().
		BorderBottom(false).
		BorderTop(false).
		BorderLeft(false).
		BorderRight(false).
		Border(lipgloss.HiddenBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			var style lipgloss.Style
			switch {
			case row == table.HeaderRow:
				style = headerStyle
			case row%2 == 0:
				style = evenRowStyle
			default:
				style = oddRowStyle
			}

			if col > 0 {
				style = style.PaddingLeft(opts.Padding)
			}

			return style
		}).
		Headers().
		Rows(rows...)

	if opts.Titles {
		// https://github.com/charmbracelet/lipgloss/issues/261
		t = t.Headers("name", "version", "deps", "source").BorderHeader(false)
	}
	fmt.Fprintln(w, t)
}

// sortPackages orders the listing by the requested column. Unknown specs fall
// back to name order.
func sortPackages(pkgs []lockfile.Package, spec string) {
	desc := strings.HasPrefix(spec, "-")
	col := strings.TrimPrefix(spec, "-")

	less := func(a, b lockfile.Package) bool { return a.Name < b.Name }
	switch col {
	case "version":
		less = func(a, b lockfile.Package) bool { return a.Version < b.Version }
	case "deps":
		less = func(a, b lockfile.Package) bool { return len(a.Dependencies) < len(b.Dependencies) }
	}

	sort.SliceStable(pkgs, func(i, j int) bool {
		if desc {
			return less(pkgs[j], pkgs[i])
		}
		return less(pkgs[i], pkgs[j])
	})
}

// tableColors returns configured color values for table rendering, selected
// based on terminal background so output stays visible for all(?) themes.
func tableColors(key string) (header, even, odd color.Color) {
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

	header = resolveColor(key+".title", "#b08800", "#f6be00")
	even = resolveColor(key+".even", "#333333", "#ffffff")
	odd = resolveColor(key+".odd", "#0088a0", "#00c8f0")

	return
}
