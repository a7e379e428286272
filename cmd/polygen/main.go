package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Exit codes for different failure modes
const (
	ExitSuccess = 0 // Requested operation completed
	ExitNoMatch = 1 // No language profile could satisfy the query
	ExitError   = 2 // Configuration or runtime error
)

// NoMatchError indicates that ranking ran successfully, but the registry had
// no profile to offer.
type NoMatchError struct {
	Message string
}

func (e *NoMatchError) Error() string {
	return e.Message
}

func main() {
	// A .env file is optional; absence is not an error.
	_ = godotenv.Load()

	if err := execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)

		var noMatchErr *NoMatchError
		if errors.As(err, &noMatchErr) {
			os.Exit(ExitNoMatch)
		}

		// All other errors are configuration/runtime errors
		os.Exit(ExitError)
	}
}
