package errors

import (
	stderr "errors"
	"fmt"
)

// New returns an error that formats as the given text.
// Each call to New returns a distinct error value even if the text is identical.
func New(msg string) error {
	return stderr.New(msg)
}

var (
	// EmptyFrameError reports a connection that closed before any byte of a frame arrived.
	EmptyFrameError = New("connection closed before a frame was sent")
	// FrameTooLargeError reports a length prefix above the accepted maximum.
	FrameTooLargeError = New("frame exceeds maximum payload size")
	// NoHandlerError reports a request that arrived before a handler was registered.
	NoHandlerError = New("no request handler registered")
)

// FramingError reports a frame that could not be read off the stream.
type FramingError struct {
	Err error
}

// Error is an implementation of the error interface.
func (e *FramingError) Error() string {
	return fmt.Sprintf("reading frame: %v", e.Err)
}

func (e *FramingError) Unwrap() error { return e.Err }

// DecodeError reports a payload whose encoding does not match the expected type.
type DecodeError struct {
	Type string
	Err  error
}

// Error is an implementation of the error interface.
func (e *DecodeError) Error() string {
	return fmt.Sprintf("decoding %s: %v", e.Type, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// BindError reports a listening address that could not be bound.
type BindError struct {
	Address string
	Err     error
}

// Error is an implementation of the error interface.
func (e *BindError) Error() string {
	return fmt.Sprintf("binding %q: %v", e.Address, e.Err)
}

func (e *BindError) Unwrap() error { return e.Err }

// TableInitError reports a name table file that could not be created.
type TableInitError struct {
	Path string
	Err  error
}

// Error is an implementation of the error interface.
func (e *TableInitError) Error() string {
	return fmt.Sprintf("initializing name table %q: %v", e.Path, e.Err)
}

func (e *TableInitError) Unwrap() error { return e.Err }

// SpawnError reports an editor process that could not be started.
type SpawnError struct {
	Binary string
	Err    error
}

// Error is an implementation of the error interface.
func (e *SpawnError) Error() string {
	return fmt.Sprintf("starting %q: %v", e.Binary, e.Err)
}

func (e *SpawnError) Unwrap() error { return e.Err }

// Stage names the step of request handling an error belongs to.
// It is used to tag metrics and log lines.
func Stage(e error) string {
	var (
		framing *FramingError
		decode  *DecodeError
		spawn   *SpawnError
	)
	switch {
	case stderr.As(e, &framing):
		return "framing"
	case stderr.As(e, &decode):
		return "decode"
	case stderr.As(e, &spawn):
		return "spawn"
	default:
		return "dispatch"
	}
}
