// Package main is the entry point for the clams CLI.
package main

import (
	"fmt"
	"os"

	"github.com/clams-bin/clams/cmd/clams/commands"
	"github.com/clams-bin/clams/internal/errors"
)

func main() {
	err := commands.Execute()
	if err == nil {
		return
	}

	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	var exitErr *errors.ExitError
	if errors.As(err, &exitErr) && exitErr.Suggestion != "" {
		fmt.Fprintln(os.Stderr, exitErr.Suggestion)
	}
	os.Exit(errors.ExitCode(err))
}
