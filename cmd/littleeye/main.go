// Package main provides the CLI entrypoint for littleeye.
//
// littleeye prints a short structural summary of a JSON or YAML document:
//   - how many elements each container holds
//   - whether the elements share one kind, and of which size
//   - which keys a mapping uses, e.g. a sequential integer range
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
