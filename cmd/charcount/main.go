// Package main is the entry point for the charcount CLI.
package main

import (
	"os"

	"github.com/f3rmion/charcount/cmd/charcount/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
