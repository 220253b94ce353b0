// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/lockdiff/lockdiff/internal/meta"
)

const bashCompletionScript = `# bash completion for lockdiff
# Fallback if bash-completion is not installed
if ! declare -F _get_comp_words_by_ref >/dev/null 2>&1; then
  _get_comp_words_by_ref() {
    cur=${COMP_WORDS[COMP_CWORD]}
    prev=${COMP_WORDS[COMP_CWORD-1]}
  }
fi

_lockdiff()
{
    local cur prev cmd
    COMPREPLY=()
    _get_comp_words_by_ref -n : cur prev

    if [[ ${COMP_CWORD} -eq 1 ]]; then
        COMPREPLY=( $(compgen -W "diff show completion --help --version" -- "$cur") )
        return 0
    fi

    cmd=${COMP_WORDS[1]}
    local common="--color -c --output -o --pager -p --format -f"

    case "$cmd" in
    diff)
        local opts="$common --verbose -V --summary"
        ;;
    show)
        local opts="$common --sort -s --titles -t"
        ;;
    completion)
        local opts="bash zsh"
        COMPREPLY=( $(compgen -W "$opts" -- "$cur") )
        return 0
        ;;
    *)
        local opts="$common"
        ;;
    esac

    if [[ "$prev" == "--output" || "$prev" == "-o" ]]; then
        COMPREPLY=( $(compgen -W "text json raw yaml" -- "$cur") )
        return 0
    fi

    if [[ "$prev" == "--format" || "$prev" == "-f" ]]; then
        COMPREPLY=( $(compgen -W "auto cargo npm" -- "$cur") )
        return 0
    fi

    if [[ "$cur" == -* ]]; then
        COMPREPLY=( $(compgen -W "$opts" -- "$cur") )
        return 0
    fi

    # Otherwise we're on a lock file positional.
    COMPREPLY=( $(compgen -o default -- "$cur") )
    return 0
}

complete -F _lockdiff lockdiff
`

const zshCompletionScript = `#compdef lockdiff

_lockdiff() {
  local -a cmds
  cmds=(
    'diff:compare two lock files'
    'show:list the packages of a lock file'
    'completion:generate shell completion script'
  )

  local -a common
  common=(
  '(-c --color)'{-c,--color}'[enable colored text]'
  '(-o --output)'{-o,--output}'[output format]:format:(text json raw yaml)'
  '(-p --pager)'{-p,--pager}'[page text output]'
  '(-f --format)'{-f,--format}'[lock file format]:format:(auto cargo npm)'
  )

  if (( CURRENT == 2 )); then
    _describe -t commands 'lockdiff commands' cmds
    return
  fi

  case $words[2] in
    diff)
      _arguments -C \
        $common \
        '(-V --verbose)'{-V,--verbose}'[include unchanged dependency lines]' \
        '--summary[append package change counts]' \
        '1:old lock file:_files' \
        '2:new lock file:_files'
      ;;
    show)
      _arguments -C \
        $common \
        '(-s --sort)'{-s,--sort}'[column to sort by]:column:(name version deps)' \
        '(-t --titles)'{-t,--titles}'[show titles]' \
        '1:lock file:_files'
      ;;
    completion)
      _arguments '1: :((bash zsh))'
      ;;
    *)
      _arguments -C $common '*:lock file:_files'
      ;;
  esac
}

# If this file is sourced directly (not autoloaded via fpath), ensure compsys
# is initialized and register the completion
if ! typeset -f compdef >/dev/null 2>&1; then
  autoload -Uz compinit && compinit -i
fi
compdef _lockdiff lockdiff lockdiff
`

func completionCommandAction(ctx context.Context, cmd *cli.Command) error {
	shell := ""
	if args := cmd.Args().Slice(); len(args) > 0 {
		shell = args[0]
	}
	switch shell {
	case "bash":
		fmt.Fprint(os.Stdout, bashCompletionScript)
	case "zsh":
		fmt.Fprint(os.Stdout, zshCompletionScript)
	default:
		// Try to detect from SHELL or print help
		sh := os.Getenv("SHELL")
		switch {
		case strings.HasSuffix(sh, "zsh"):
			fmt.Fprint(os.Stdout, zshCompletionScript)
		case strings.HasSuffix(sh, "bash"):
			fmt.Fprint(os.Stdout, bashCompletionScript)
		default:
			fmt.Fprintln(os.Stderr, "usage: lockdiff completion [bash|zsh]")
			return nil
		}
	}
	return nil
}

func completionCommandBuilder(meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "completion",
		Usage:     "generate shell completion script",
		UsageText: "lockdiff completion [bash|zsh]",
		Metadata: map[string]any{
			"meta": meta,
		},
		Action: completionCommandAction,
	}
}
