// Package main is the entry point for the moduledev CLI.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/moduledev/cli/internal/cmd"
	oerrors "github.com/moduledev/cli/internal/errors"
)

func main() {
	err := cmd.NewRootCmd().Execute()
	if err == nil {
		return
	}

	code := oerrors.ExitCodeFromError(err)
	printed := false
	var exitErr *oerrors.ExitError
	if errors.As(err, &exitErr) {
		code = exitErr.Code
		printed = exitErr.Printed
	}

	// Commands that logged their own failure set Printed.
	if !printed {
		fmt.Fprintln(os.Stderr, err)
	}
	os.Exit(code)
}
