package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rulelang/rulelang"
)

func newEvalCmd() *cobra.Command {
	var ruleFile, dataFile string
	var wantTrace bool

	cmd := &cobra.Command{
		Use:   "eval",
		Short: "evaluate a rule file against a data file and print the response",
		RunE: func(cmd *cobra.Command, args []string) error {
			ruleBytes, err := os.ReadFile(ruleFile)
			if err != nil {
				return fmt.Errorf("reading rule file: %w", err)
			}
			dataBytes, err := os.ReadFile(dataFile)
			if err != nil {
				return fmt.Errorf("reading data file: %w", err)
			}

			var data any
			if err := json.Unmarshal(dataBytes, &data); err != nil {
				return fmt.Errorf("parsing data file: %w", err)
			}

			resp := rulelang.Evaluate(context.Background(), string(ruleBytes), data, wantTrace)
			out, err := json.MarshalIndent(resp, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(out))
			return nil
		},
	}

	cmd.Flags().StringVar(&ruleFile, "rule", "", "path to a rule source file")
	cmd.Flags().StringVar(&dataFile, "data", "", "path to a JSON data file")
	cmd.Flags().BoolVar(&wantTrace, "trace", false, "include the execution trace in the response")
	cmd.MarkFlagRequired("rule")
	cmd.MarkFlagRequired("data")

	return cmd
}
