// Package main provides the ticklist CLI.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/mesh-intelligence/ticklist/pkg/types"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "ticklist:", err)
		os.Exit(exitCode(err))
	}
}

// exitCode classifies an error: mistakes the user can fix themselves exit 1,
// everything else (I/O, corrupt data, backend failures) exits 2.
func exitCode(err error) int {
	userErrors := []error{
		types.ErrNotFound,
		types.ErrInvalidID,
		types.ErrInvalidTitle,
		types.ErrInvalidTask,
		types.ErrDuplicateTask,
		types.ErrTaskNotFound,
		types.ErrInvalidTheme,
		types.ErrLockHeld,
		types.ErrNotLockHolder,
		types.ErrBackendUnknown,
	}
	for _, ue := range userErrors {
		if errors.Is(err, ue) {
			return exitUserError
		}
	}
	return exitSysError
}
