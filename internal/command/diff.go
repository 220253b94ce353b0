// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/lockdiff/lockdiff/internal/config"
	"github.com/lockdiff/lockdiff/internal/differ"
	"github.com/lockdiff/lockdiff/internal/lockfile"
	"github.com/lockdiff/lockdiff/internal/meta"
	"github.com/lockdiff/lockdiff/internal/render"
)

// diffCommandAction is the action handler for the "diff" subcommand. It loads
// the two lock file snapshots, composes the diff, and emits it per the common
// output flags.
func diffCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args[1:])

	config.Config.Namespace = "diff"

	args := cmd.Args().Slice()
	if len(args) != 2 {
		return fmt.Errorf("usage: lockdiff diff OLD NEW")
	}
	oldPath, newPath := args[0], args[1]

	// Short circuit raw mode, which compares the documents structurally
	// without going through the snapshot model.
	if cmd.String("output") == "raw" {
		return rawDiff(cmd, oldPath, newPath)
	}

	oldLock, newLock, err := loadPair(cmd, oldPath, newPath)
	if err != nil {
		return err
	}

	d := differ.Locks(oldLock, newLock)
	log.Debugf("diffed %d packages", len(d.Packages))

	switch cmd.String("output") {
	case "json":
		return render.EmitJSON(os.Stdout, d)
	case "yaml":
		return render.EmitYAML(os.Stdout, d)
	}

	opts := render.Options{
		Verbose: cmd.Bool("verbose"),
		Color:   cmd.Bool("color"),
		Summary: cmd.Bool("summary"),
	}

	if cmd.Bool("pager") {
		var buf bytes.Buffer
		if err := render.New(&buf, opts).Lock(d); err != nil {
			return err
		}
		return render.Page(buf.String())
	}

	return render.New(os.Stdout, opts).Lock(d)
}

// rawDiff reads both documents verbatim and hands them to the structural
// differ.
func rawDiff(cmd *cli.Command, oldPath, newPath string) error {
	oldData, err := os.ReadFile(oldPath)
	if err != nil {
		return fmt.Errorf("failed to read lock file: %w", err)
	}
	newData, err := os.ReadFile(newPath)
	if err != nil {
		return fmt.Errorf("failed to read lock file: %w", err)
	}

	format := flagFormat(cmd)
	if format == "" {
		if format, err = lockfile.Detect(oldPath, oldData); err != nil {
			return err
		}
	}

	return differ.Raw(os.Stdout, format, oldData, newData, cmd.Bool("color"))
}

// newDiffFormatFlag wires the format flag with config file sources when a
// config file is actually present.
func newDiffFormatFlag() *cli.StringFlag {
	if cf := configFile(); cf != "" {
		return NewFormatFlag("diff", cf)
	}
	return NewFormatFlag("diff")
}

// diffCommandBuilder constructs the cli.Command for "diff", wiring metadata,
// flags, and action handlers.
func diffCommandBuilder(meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "diff",
		Usage:     "compare two lock files",
		UsageText: "lockdiff diff OLD NEW [options]",
		Metadata: map[string]any{
			"meta": meta,
		},
		Flags: append([]cli.Flag{
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"V"},
				Usage:   "include unchanged dependency lines",
				Value:   false,
			},
			&cli.BoolFlag{
				Name:  "summary",
				Usage: "append package change counts",
				Value: false,
			},
			newDiffFormatFlag(),
		}, NewGlobalFlags("diff")...),
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			return ctx, GlobalFlagsValidator(ctx, cmd)
		},
		Action: diffCommandAction,
	}
}
