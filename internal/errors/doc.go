// Package errors provides error handling conventions for the clams CLI.
//
// It forwards the commonly used constructors of github.com/cockroachdb/errors
// (New, Newf, Wrap, Wrapf, Mark, Is, As) and defines an ExitError type that
// carries a process exit code and an optional suggestion for the user.
//
// # Exit Codes
//
//   - ExitSuccess (0): Command completed successfully
//   - ExitUser (1): User-related error (invalid input, configuration, etc.)
//   - ExitSystem (2): System-related error (I/O, permissions, etc.)
//
// # ExitError
//
//	err := errors.NewUserError(errors.ErrNotADirectory, "Create the directory first")
//	var exitErr *errors.ExitError
//	if errors.As(err, &exitErr) {
//	    fmt.Println("Suggestion:", exitErr.Suggestion)
//	    os.Exit(exitErr.Code)
//	}
package errors
