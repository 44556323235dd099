package errors

import (
	stderrors "errors"
	"fmt"
	"os"

	"github.com/julianstephens/habitual/internal/constants"
	"github.com/julianstephens/habitual/internal/logger"
)

// ErrRemoteCall matches every RemoteError via errors.Is.
var ErrRemoteCall = stderrors.New("remote call failed")

// Op identifies which user action a remote call belonged to.
type Op string

const (
	OpLoadHabits  Op = "load_habits"
	OpLoadSummary Op = "load_summary"
	OpUpdateHabit Op = "update_habit"
	OpCreateHabit Op = "create_habit"
)

// RemoteError is the only error kind the habits client produces: a network
// failure, a non-2xx response, or a payload that could not be accepted.
type RemoteError struct {
	Op         Op
	StatusCode int // zero when no response was received
	Err        error
}

func (e *RemoteError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: %s (status %d): %v", ErrRemoteCall, e.Op, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s: %s: %v", ErrRemoteCall, e.Op, e.Err)
}

func (e *RemoteError) Unwrap() error {
	return e.Err
}

func (e *RemoteError) Is(target error) bool {
	return target == ErrRemoteCall
}

// Remote wraps err as a RemoteError for op.
func Remote(op Op, statusCode int, err error) error {
	if err == nil {
		return nil
	}
	return &RemoteError{Op: op, StatusCode: statusCode, Err: err}
}

// Alert returns the notification title and message for a failed call. Only
// the operation context is distinguished, never the status code.
func Alert(err error) (string, string) {
	var remote *RemoteError
	if !stderrors.As(err, &remote) {
		return constants.AlertTitle, constants.AlertRemoteFailed
	}

	switch remote.Op {
	case OpLoadHabits:
		return constants.AlertTitle, constants.AlertLoadHabits
	case OpLoadSummary:
		return constants.AlertTitle, constants.AlertLoadSummary
	case OpUpdateHabit:
		return constants.AlertTitle, constants.AlertUpdateHabit
	case OpCreateHabit:
		return constants.AlertTitle, constants.AlertCreateHabit
	default:
		return constants.AlertTitle, constants.AlertRemoteFailed
	}
}

// Report logs err and returns the alert line a caller should show the user.
func Report(err error) string {
	if err == nil {
		return ""
	}
	logger.Error("Remote call failed", "error", err)
	title, msg := Alert(err)
	return fmt.Sprintf("%s: %s", title, msg)
}

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

// Fatal logs an error and exits the program with exit code 1. Remote errors
// are shown as their alert text.
func Fatal(err error) {
	if err == nil {
		return
	}
	if stderrors.Is(err, ErrRemoteCall) {
		fmt.Fprintf(os.Stderr, "%s\n", Report(err))
		os.Exit(1)
	}
	logger.Error("Command execution failed", "error", err)
	fmt.Fprintf(os.Stderr, "%s\n", Format(err))
	os.Exit(1)
}

// Fatalf logs and formats an error message, then exits the program with exit code 1
func Fatalf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	logger.Error("Command execution failed", "error", msg)
	fmt.Fprintf(os.Stderr, "%s\n", Formatf(format, args...))
	os.Exit(1)
}
