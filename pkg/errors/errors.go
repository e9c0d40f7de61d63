package errors

// Per-file status messages printed as [<path>][<message>]
const (
	StatusDone       = "done"
	StatusNoIncludes = "no includes found"
	StatusReadFailed = "failed to read from file"
)

// Batch-level error messages
const (
	ErrMsgNoGoFiles         = "no go files to order includes"
	ErrMsgUnexpected        = "unexpected error occured"
	ErrMsgFailedToCheckPath = "failed to check path"
	ErrMsgFailedToWriteFile = "failed to write to file"
	ErrMsgBlockBoundsMoved  = "import block bounds changed during sort"
)

// Process exit codes
const (
	ExitCodeOK         = 0
	ExitCodeUsage      = -1
	ExitCodeUnexpected = -2
	ExitCodeNoGoFiles  = -3
)

// ExitError carries a process exit code alongside the error message
type ExitError struct {
	Code    int
	Message string
}

func (e *ExitError) Error() string {
	return e.Message
}

// NewExitError creates an ExitError with the given code and message
func NewExitError(code int, message string) *ExitError {
	return &ExitError{Code: code, Message: message}
}

// ExitCode extracts the exit code from err. A nil error maps to
// ExitCodeOK, an untyped error to ExitCodeUnexpected.
func ExitCode(err error) int {
	if err == nil {
		return ExitCodeOK
	}
	if exitErr, ok := err.(*ExitError); ok {
		return exitErr.Code
	}
	return ExitCodeUnexpected
}
