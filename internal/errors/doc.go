// Package errors provides error handling conventions for riderctl.
//
// It re-exports the constructors and inspectors of
// github.com/cockroachdb/errors so callers import a single package, defines
// sentinel errors for the failure conditions that cross package boundaries,
// and provides an ExitError type for CLI exit code handling.
//
// # Sentinel Errors
//
// Sentinel errors allow callers to check for specific error conditions
// using [Is]:
//
//	if errors.Is(err, errors.ErrNotAvailable) {
//	    // the install disappeared since discovery
//	}
//
// # Exit Codes
//
//   - ExitSuccess (0): Command completed successfully
//   - ExitUser (1): User-related error (invalid input, configuration, etc.)
//   - ExitSystem (2): System-related error (launch failure, I/O, etc.)
//
// # ExitError
//
// [ExitError] wraps an underlying error with an exit code and optional
// suggestion. It supports unwrapping via [Unwrap] and [As]:
//
//	err := errors.NewUserError(errors.ErrNoInstalls, "Run: riderctl doctor")
//	var exitErr *errors.ExitError
//	if errors.As(err, &exitErr) {
//	    os.Exit(exitErr.Code)
//	}
package errors
