// Package main is the entry point for skuforge.
package main

import (
	"fmt"
	"os"

	"github.com/skuforge/skuforge/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
