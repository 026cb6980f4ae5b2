package errors

import (
	stderrors "errors"
	"fmt"
	"os"

	"github.com/julianstephens/resurs/internal/logger"
)

// Process exit codes, so cron and systemd timers can tell failures apart.
const (
	ExitFailure       = 1
	ExitInvalidInput  = 2
	ExitStorage       = 3
	ExitNotOnboarded  = 4
	exitStatusSuccess = 0
)

// exit is swapped out in tests
var exit = os.Exit

// Format formats an error message with a consistent "Error: " prefix
func Format(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Error: %v", err)
}

// Formatf formats an error message with a consistent "Error: " prefix using a format string
func Formatf(format string, args ...interface{}) string {
	return fmt.Sprintf("Error: "+format, args...)
}

// ExitCode maps err onto the exit status Fatal uses for it.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return exitStatusSuccess
	case stderrors.Is(err, ErrNotOnboarded):
		return ExitNotOnboarded
	case IsValidation(err):
		return ExitInvalidInput
	case IsStorage(err):
		return ExitStorage
	}
	return ExitFailure
}

// Fatal logs an error, prints it to stderr and exits with its ExitCode.
// A nil error is a no-op.
func Fatal(err error) {
	if err == nil {
		return
	}
	code := ExitCode(err)
	logger.Error("Command execution failed", "error", err, "exit_code", code)
	fmt.Fprintf(os.Stderr, "%s\n", Format(err))
	exit(code)
}
