package pdf

import (
	"errors"
	"fmt"
)

// Kind classifies navigator errors so handlers and tests can distinguish
// validation failures without matching on message text.
type Kind int

const (
	KindNotFound Kind = iota + 1
	KindNotAPDF
	KindDecodeFailure
	KindPageOutOfRange
	KindInvalidRange
	KindInvalidArgument
	KindUnsupportedReader
	KindResultNotFound
	KindViewerLaunchFailure
)

// Error is the error type returned by every core navigator operation.
// The message is exactly what callers see in the tool response.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// KindOf returns the Kind of err, or 0 if err is not a navigator error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

// NotFoundError reports a path that does not exist.
func NotFoundError(path string) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf("PDF file not found: %s", path)}
}

// NotAPDFError reports a path without a .pdf extension.
func NotAPDFError(path string) *Error {
	return &Error{Kind: KindNotAPDF, Message: fmt.Sprintf("File is not a PDF: %s", path)}
}

// DecodeError reports a file that exists but cannot be opened as a PDF.
func DecodeError(path string, err error) *Error {
	return &Error{Kind: KindDecodeFailure, Message: fmt.Sprintf("failed to read PDF %s", path), Err: err}
}

// PageOutOfRangeError reports a page index outside [1, total]. The label names
// which argument was out of range ("Page", "Start page" or "End page").
func PageOutOfRangeError(label string, page, total int) *Error {
	return &Error{
		Kind:    KindPageOutOfRange,
		Message: fmt.Sprintf("%s %d out of range (1-%d)", label, page, total),
	}
}

// InvalidRangeError reports a start page greater than the end page.
func InvalidRangeError(start, end int) *Error {
	return &Error{
		Kind:    KindInvalidRange,
		Message: fmt.Sprintf("Start page %d cannot be greater than end page %d", start, end),
	}
}

// InvalidArgumentError reports a malformed tool argument.
func InvalidArgumentError(msg string) *Error {
	return &Error{Kind: KindInvalidArgument, Message: msg}
}

// UnsupportedReaderError reports a configured viewer name outside the known set.
func UnsupportedReaderError(reader string) *Error {
	return &Error{Kind: KindUnsupportedReader, Message: fmt.Sprintf("Unsupported PDF reader: %s", reader)}
}

// ResultNotFoundError reports a result index with no corresponding rendered line.
func ResultNotFoundError(index int) *Error {
	return &Error{
		Kind:    KindResultNotFound,
		Message: fmt.Sprintf("Result %d not found. Check search results first.", index),
	}
}

// ViewerLaunchError reports a failed viewer process invocation.
func ViewerLaunchError(name string, err error) *Error {
	return &Error{Kind: KindViewerLaunchFailure, Message: fmt.Sprintf("failed to launch %s", name), Err: err}
}
