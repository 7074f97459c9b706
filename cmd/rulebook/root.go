package main

import (
	"github.com/spf13/cobra"
)

// NewRootCmd builds the rulebook root command.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rulebook",
		Short: "rulebook — a policy engine for human-readable business rules",
		Long: `rulebook evaluates rules written in a constrained natural-language DSL
against structured JSON data, serving them over HTTP, from a single
invocation, or interactively.`,
	}

	cmd.AddCommand(newServeCmd())
	cmd.AddCommand(newEvalCmd())
	cmd.AddCommand(newReplCmd())

	return cmd
}
