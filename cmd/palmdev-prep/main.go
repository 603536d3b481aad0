// Package main is the entry point for the palmdev-prep CLI.
package main

import (
	"fmt"
	"os"

	"github.com/palmdev/palmdev-prep/cmd/palmdev-prep/commands"
	"github.com/palmdev/palmdev-prep/internal/errors"
)

func main() {
	err := commands.Execute()
	if err == nil {
		return
	}

	var exitErr *errors.ExitError
	if errors.As(err, &exitErr) {
		// A bare ExitError only carries the status of problems already reported.
		if exitErr.Err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", commands.ProgName, exitErr.Err)
		}
		if hint := exitErr.Hint(); hint != "" {
			fmt.Fprintln(os.Stderr, hint)
		}
	} else {
		fmt.Fprintf(os.Stderr, "%s: %v\n", commands.ProgName, err)
	}

	os.Exit(errors.CodeOf(err))
}
