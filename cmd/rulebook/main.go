// Command rulebook is the rulelang CLI: serve the HTTP transport, evaluate
// a single rule from the shell, or drive an interactive REPL.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
