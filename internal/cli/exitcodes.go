package cli

import (
	"errors"

	"github.com/yaklabco/mdconv/pkg/runner"
)

// Exit codes for mdconv.
const (
	// ExitSuccess indicates successful execution with no failures.
	ExitSuccess = 0

	// ExitConversionErrors indicates the run completed but one or more
	// files failed to convert.
	ExitConversionErrors = 1

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 65

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)

// Sentinel errors commands attach to failures so main can recover the
// exit code after Execute returns.
var (
	// ErrConfiguration marks configuration loading or validation failures.
	ErrConfiguration = errors.New("configuration error")

	// ErrUsage marks command-line misuse detected after flag parsing.
	ErrUsage = errors.New("invalid usage")

	// ErrIO marks file read or write failures.
	ErrIO = errors.New("i/o error")
)

// ExitCodeFromError maps a command error to a process exit code. Cobra
// reports flag and argument misuse as plain errors, so anything not carrying
// one of the sentinels falls back to the usage code.
func ExitCodeFromError(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, ErrConversionFailed):
		return ExitConversionErrors
	case errors.Is(err, ErrConfiguration):
		return ExitConfigError
	case errors.Is(err, ErrIO):
		return ExitIOError
	default:
		return ExitInvalidUsage
	}
}

// ExitCodeFromResult determines the exit code based on a run result.
func ExitCodeFromResult(result *runner.Result) int {
	if result.HasFailures() {
		return ExitConversionErrors
	}
	return ExitSuccess
}
