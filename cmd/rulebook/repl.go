package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rulelang/rulelang"
)

const replHelp = `rulebook interactive REPL

Commands:
  load <name> <file>   Load a rule source file as a named ruleset
  unload <name>        Remove a loaded ruleset
  list                 List all loaded rulesets
  use <name>           Set the active ruleset for evaluation
  data <file>          Load a JSON data file to evaluate against
  trace on|off         Toggle execution trace in the response
  eval                 Evaluate the active ruleset against the active data
  help                 Show this help message
  exit / quit          Exit the REPL
`

func newReplCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "interactive REPL for loading rule sources and evaluating data",
		RunE: func(cmd *cobra.Command, args []string) error {
			runRepl(cmd.InOrStdin(), cmd.OutOrStdout())
			return nil
		},
	}
}

func runRepl(in io.Reader, out io.Writer) {
	rulesets := make(map[string]*rulelang.RuleSet)
	var active string
	var data any
	trace := false

	scanner := bufio.NewScanner(in)
	fmt.Fprintln(out, "rulebook — a policy engine for human-readable business rules")
	fmt.Fprintln(out, `Type "help" for available commands.`)
	fmt.Fprintln(out)

	for {
		if active != "" {
			fmt.Fprintf(out, "[%s]> ", active)
		} else {
			fmt.Fprint(out, "> ")
		}

		if !scanner.Scan() {
			break
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		parts := strings.Fields(line)
		cmd := strings.ToLower(parts[0])

		switch cmd {
		case "exit", "quit":
			return

		case "help":
			fmt.Fprint(out, replHelp)

		case "list":
			if len(rulesets) == 0 {
				fmt.Fprintln(out, "(no rulesets loaded)")
				continue
			}
			for name := range rulesets {
				marker := " "
				if name == active {
					marker = "*"
				}
				fmt.Fprintf(out, "  %s %s\n", marker, name)
			}

		case "load":
			if len(parts) < 3 {
				fmt.Fprintln(os.Stderr, "usage: load <name> <file>")
				continue
			}
			name, path := parts[1], parts[2]
			rs, err := rulelang.ParseFile(path)
			if err != nil {
				fmt.Fprintf(os.Stderr, "error loading %q: %v\n", path, err)
				continue
			}
			rulesets[name] = rs
			if active == "" {
				active = name
			}
			fmt.Fprintf(out, "loaded %q (%d rules)\n", name, len(rs.Rules()))

		case "unload":
			if len(parts) < 2 {
				fmt.Fprintln(os.Stderr, "usage: unload <name>")
				continue
			}
			name := parts[1]
			if _, ok := rulesets[name]; !ok {
				fmt.Fprintf(os.Stderr, "no ruleset named %q\n", name)
				continue
			}
			delete(rulesets, name)
			if active == name {
				active = ""
			}
			fmt.Fprintf(out, "unloaded %q\n", name)

		case "use":
			if len(parts) < 2 {
				fmt.Fprintln(os.Stderr, "usage: use <name>")
				continue
			}
			name := parts[1]
			if _, ok := rulesets[name]; !ok {
				fmt.Fprintf(os.Stderr, "no ruleset named %q\n", name)
				continue
			}
			active = name
			fmt.Fprintf(out, "active ruleset set to %q\n", name)

		case "data":
			if len(parts) < 2 {
				fmt.Fprintln(os.Stderr, "usage: data <file>")
				continue
			}
			b, err := os.ReadFile(parts[1])
			if err != nil {
				fmt.Fprintf(os.Stderr, "error reading %q: %v\n", parts[1], err)
				continue
			}
			if err := json.Unmarshal(b, &data); err != nil {
				fmt.Fprintf(os.Stderr, "error parsing %q: %v\n", parts[1], err)
				continue
			}
			fmt.Fprintf(out, "loaded data from %q\n", parts[1])

		case "trace":
			if len(parts) < 2 || (parts[1] != "on" && parts[1] != "off") {
				fmt.Fprintln(os.Stderr, "usage: trace on|off")
				continue
			}
			trace = parts[1] == "on"
			fmt.Fprintf(out, "trace %s\n", parts[1])

		case "eval":
			if active == "" {
				fmt.Fprintln(os.Stderr, "no active ruleset — use 'load' or 'use' first")
				continue
			}
			resp, err := rulesets[active].Evaluate(context.Background(), data, trace)
			if err != nil {
				fmt.Fprintf(os.Stderr, "evaluation error: %v\n", err)
				continue
			}
			b, _ := json.MarshalIndent(resp, "", "  ")
			fmt.Fprintln(out, string(b))

		default:
			fmt.Fprintf(os.Stderr, "unrecognized command %q — type \"help\" for a list\n", cmd)
		}
	}
}
