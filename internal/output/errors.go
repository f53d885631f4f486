package output

import "fmt"

// Exit codes. User-facing failures (bad input, precondition not met,
// unusable secret) all exit 1; persistence failures exit 2 so broken
// storage is distinguishable from a typo in a script.
const (
	ExitOK          = 0
	ExitFailure     = 1
	ExitPersistence = 2
)

// CLIError is a structured error carrying an exit code and an optional
// user-facing hint.
type CLIError struct {
	ExitCode int
	Message  string
	Hint     string
}

// Error implements the error interface.
func (e *CLIError) Error() string {
	return e.Message
}

// WithHint adds a user-facing hint to the error.
func (e *CLIError) WithHint(hint string) *CLIError {
	e.Hint = hint
	return e
}

// UserInput reports missing or empty required input. No state was
// mutated.
func UserInput(format string, args ...any) *CLIError {
	return &CLIError{ExitCode: ExitFailure, Message: fmt.Sprintf(format, args...)}
}

// Precondition reports a command whose existence check failed
// (already-exists, not-found). No state was mutated.
func Precondition(format string, args ...any) *CLIError {
	return &CLIError{ExitCode: ExitFailure, Message: fmt.Sprintf(format, args...)}
}

// Generation reports a failure to produce a code: invalid base32 or an
// engine failure.
func Generation(format string, args ...any) *CLIError {
	return &CLIError{ExitCode: ExitFailure, Message: fmt.Sprintf(format, args...)}
}

// Persistence reports an unreadable or unwritable index file, or an
// unavailable credential store. Fatal for the invocation; the two
// stores may be left diverged if it struck between their updates.
func Persistence(format string, args ...any) *CLIError {
	return &CLIError{ExitCode: ExitPersistence, Message: fmt.Sprintf(format, args...)}
}
