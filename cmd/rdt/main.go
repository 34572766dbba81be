// Package main is the entry point for the rdt CLI.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/rdt-dev/rdt/internal/cmd"
	oerrors "github.com/rdt-dev/rdt/internal/errors"
)

func main() {
	rootCmd := cmd.NewRootCmd()

	if err := rootCmd.Execute(); err != nil {
		var exitErr *oerrors.ExitError
		if errors.As(err, &exitErr) {
			// Only print if the command layer hasn't already printed it
			if !exitErr.Printed {
				printError(err)
			}
			os.Exit(exitErr.Code)
		}
		printError(err)
		os.Exit(cmd.ExitCodeFromError(err))
	}
}

func printError(err error) {
	var detail *oerrors.DetailError
	if errors.As(err, &detail) {
		fmt.Fprintln(os.Stderr, detail.Details())
		return
	}
	fmt.Fprintln(os.Stderr, "Error:", err)
}
