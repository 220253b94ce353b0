// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"os"

	altsrc "github.com/urfave/cli-altsrc/v3"
	yaml "github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/lockdiff/lockdiff/internal/config"
)

func NewGlobalFlags(params ...string) (flags []cli.Flag) {
	flags = []cli.Flag{
		&cli.BoolFlag{
			Name:    "color",
			Aliases: []string{"c"},
			Usage:   "enable colored text output",
			// Color is opt-out only when we're actually on a terminal.
			Value: term.IsTerminal(int(os.Stdout.Fd())),
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "output format",
			Value:   "text",
			Validator: func(value string) error {
				return FlagValidators(value, OutputValidator)
			},
		},
		&cli.BoolFlag{
			Name:    "pager",
			Aliases: []string{"p"},
			Usage:   "page text output",
			Value:   false,
		},
	}

	return
}

// NewFormatFlag constructs the "format" flag used to force a lock file
// dialect instead of detecting it. params[1], when present, is the config
// file used as a fallback value source.
func NewFormatFlag(params ...string) (flag *cli.StringFlag) {
	flag = &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"f"},
		Usage:   "lock file format (auto, cargo, npm)",
		Sources: cli.NewValueSourceChain(
			cli.EnvVar("LOCKDIFF_FORMAT"),
		),
		Value: "auto",
		Validator: func(value string) error {
			return FlagValidators(value, FormatValidator)
		},
	}

	if len(params) == 2 {
		flag = NameSpacedValueChainFlagFromConfigFile(params[0], params[1], flag)
	}

	return
}

// NameSpacedValueChainFlagFromConfigFile adds namespaced and global config file
// sources to the given flag's Sources chain.
func NameSpacedValueChainFlagFromConfigFile(ns string, path string, flag *cli.StringFlag) *cli.StringFlag {
	src := yaml.YAML(ns+"."+flag.Name, altsrc.StringSourcer(path))
	flag.Sources.Chain = append(flag.Sources.Chain, src)

	src = yaml.YAML(flag.Name, altsrc.StringSourcer(path))
	flag.Sources.Chain = append(flag.Sources.Chain, src)

	return flag
}

// configFile returns the loaded config file path, or empty when no config
// file was found. Used to decide whether flags get config file sources.
func configFile() string {
	return config.Config.Source
}
