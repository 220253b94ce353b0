// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"
	yaml "gopkg.in/yaml.v2"

	"github.com/lockdiff/lockdiff/internal/config"
	"github.com/lockdiff/lockdiff/internal/lockfile"
	"github.com/lockdiff/lockdiff/internal/meta"
	"github.com/lockdiff/lockdiff/internal/render"
)

// showCommandAction is the action handler for the "show" subcommand. It loads
// a single lock file and lists its packages.
func showCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args[1:])

	config.Config.Namespace = "show"

	args := cmd.Args().Slice()
	if len(args) != 1 {
		return fmt.Errorf("usage: lockdiff show LOCKFILE")
	}

	lock, err := lockfile.Load(args[0], flagFormat(cmd))
	if err != nil {
		return fmt.Errorf("%s: %w", args[0], err)
	}

	switch cmd.String("output") {
	case "json":
		out, err := json.MarshalIndent(lock, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal lock file: %w", err)
		}
		fmt.Fprintln(os.Stdout, string(out))
		return nil
	case "yaml":
		out, err := yaml.Marshal(lock)
		if err != nil {
			return fmt.Errorf("failed to marshal lock file: %w", err)
		}
		os.Stdout.Write(out)
		return nil
	case "raw":
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read lock file: %w", err)
		}
		os.Stdout.Write(data)
		return nil
	}

	pad, _ := config.GetInt("padding", 2)
	render.Table(os.Stdout, lock, render.TableOptions{
		Sort:    cmd.String("sort"),
		Titles:  cmd.Bool("titles"),
		Color:   cmd.Bool("color"),
		Padding: pad,
	})

	return nil
}

// showCommandBuilder constructs the cli.Command for "show".
func showCommandBuilder(meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "show",
		Usage:     "list the packages of a lock file",
		UsageText: "lockdiff show LOCKFILE [options]",
		Metadata: map[string]any{
			"meta": meta,
		},
		Flags: append([]cli.Flag{
			&cli.StringFlag{
				Name:    "sort",
				Aliases: []string{"s"},
				Usage:   "column to sort by (name, version, deps); prefix - to reverse",
				Value:   "name",
			},
			&cli.BoolFlag{
				Name:    "titles",
				Aliases: []string{"t"},
				Usage:   "show titles with text output",
				Value:   false,
			},
			NewFormatFlag("show"),
		}, NewGlobalFlags("show")...),
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			return ctx, GlobalFlagsValidator(ctx, cmd)
		},
		Action: showCommandAction,
	}
}
