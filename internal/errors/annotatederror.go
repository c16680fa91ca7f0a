// Package errors provides error wrapping that carries structured [slog.Attr]
// annotations and the source location of the wrap, so errors log with full
// context without stack traces.
package errors

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"runtime"
	"strings"
)

// AnnotatedError wraps an error with a message, structured attributes, and
// the source location where it was created.
type AnnotatedError struct {
	msg   string
	attrs []slog.Attr
	cause error
	file  string
	line  int
}

// NewSentinel creates a root error with no cause, suitable for package-level
// sentinel values.
func NewSentinel(msg string, attrs ...slog.Attr) *AnnotatedError {
	file, line := callerSource()
	return &AnnotatedError{msg: msg, attrs: attrs, cause: nil, file: file, line: line}
}

// Wrap annotates err with a message and optional attributes. It returns nil
// when err is nil.
func Wrap(err error, msg string, attrs ...slog.Attr) error {
	if err == nil {
		return nil
	}
	file, line := callerSource()
	return &AnnotatedError{msg: msg, attrs: attrs, cause: err, file: file, line: line}
}

// DecoratePanic converts a recovered panic value into an annotated error
// whose source points at the panic site rather than the recover site.
func DecoratePanic(excp any) error {
	if excp == nil {
		return nil
	}

	var pcs [64]uintptr
	n := runtime.Callers(2, pcs[:]) //nolint:mnd // skip Callers and DecoratePanic.
	frames := runtime.CallersFrames(pcs[:n])

	var (
		file      string
		line      int
		seenPanic bool
	)
	for {
		frame, more := frames.Next()
		if seenPanic && !strings.HasPrefix(frame.Function, "runtime.") {
			file, line = frame.File, frame.Line
			break
		}
		if frame.Function == "runtime.gopanic" {
			seenPanic = true
		}
		if !more {
			break
		}
	}

	return &AnnotatedError{
		msg:   fmt.Sprintf("panic: %v", excp),
		attrs: nil,
		cause: nil,
		file:  file,
		line:  line,
	}
}

// callerSource records the file and line of the caller's caller.
func callerSource() (file string, line int) {
	_, file, line, ok := runtime.Caller(2) //nolint:mnd // skip callerSource and its caller.
	if !ok {
		return "", 0
	}
	return file, line
}

// Error implements the error interface by joining the message chain.
func (e *AnnotatedError) Error() string {
	if e.cause == nil {
		return e.msg
	}
	return e.msg + ": " + e.cause.Error()
}

// Unwrap exposes the cause for [errors.Is] and [errors.As].
func (e *AnnotatedError) Unwrap() error {
	return e.cause
}

// allAttrs returns the attributes collected along the whole error chain.
func (e *AnnotatedError) allAttrs() []slog.Attr {
	attrs := append([]slog.Attr(nil), e.attrs...)
	var annotated *AnnotatedError
	if errors.As(e.cause, &annotated) {
		attrs = append(attrs, annotated.allAttrs()...)
	}
	return attrs
}

// SlogError converts an error into a [slog.Attr] for logging. Annotated
// errors contribute their collected attributes in an annotations group plus
// the source location of the outermost wrap.
func SlogError(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}

	args := []any{slog.String("message", err.Error())}

	var annotated *AnnotatedError
	if errors.As(err, &annotated) {
		if attrs := annotated.allAttrs(); len(attrs) > 0 {
			groupArgs := make([]any, len(attrs))
			for i, attr := range attrs {
				groupArgs[i] = attr
			}
			args = append(args, slog.Group("annotations", groupArgs...))
		}
		if annotated.file != "" {
			args = append(args, slog.String("source",
				fmt.Sprintf("%s:%d", filepath.Base(annotated.file), annotated.line)))
		}
	}

	return slog.Group("error", args...)
}

// New returns a new error with the given message, mirroring [errors.New] so
// callers need only one errors import.
func New(msg string) error {
	return errors.New(msg)
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// Unwrap returns the result of calling the Unwrap method on err, if any.
func Unwrap(err error) error {
	return errors.Unwrap(err)
}

// Join wraps [errors.Join].
func Join(errs ...error) error {
	return errors.Join(errs...)
}
