package logger

import (
	"errors"
	"fmt"
	"io"
	"os"
)

var (
	// ErrAppNameIsEmpty is returned if Log.AppName was not defined.
	ErrAppNameIsEmpty = errors.New("config Log.AppName can not be empty")

	// ErrServiceNameIsEmpty is returned if Log.ServiceName was not defined.
	ErrServiceNameIsEmpty = errors.New("config Log.ServiceName can not be empty")
)

// errorOutput receives write failures of the logger itself.
var errorOutput io.Writer = os.Stderr //nolint:gochecknoglobals

// ErrorHandler is installed as zerolog.ErrorHandler. It counts the failed
// write and reports it on stderr.
func ErrorHandler(err error) {
	if writeErrors != nil {
		writeErrors.Inc()
	}

	_, _ = fmt.Fprintf(errorOutput, "zerolog: could not write event: %v\n", err)
}
