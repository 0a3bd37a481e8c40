package convert

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/mtuoc/MTUOC-TBX/pkg/log"
)

type ErrorType int

const (
	ErrFileNotFound ErrorType = iota
	ErrFileRead
	ErrParse
	ErrFileWrite
	ErrValidation
	ErrUnknown
)

func (t ErrorType) String() string {
	switch t {
	case ErrFileNotFound:
		return "FileNotFound"
	case ErrFileRead:
		return "FileRead"
	case ErrParse:
		return "Parse"
	case ErrFileWrite:
		return "FileWrite"
	case ErrValidation:
		return "Validation"
	default:
		return "Unknown"
	}
}

// Error is the single failure a conversion reports.
type Error struct {
	Type    ErrorType
	Message string
	Context map[string]any
	Cause   error
}

func NewError(errorType ErrorType, message string) *Error {
	return &Error{
		Type:    errorType,
		Message: message,
		Context: make(map[string]any),
	}
}

func WrapError(err error, errorType ErrorType, message string) *Error {
	e := NewError(errorType, message)
	e.Cause = err
	return e
}

func (e *Error) Error() string {
	parts := []string{fmt.Sprintf("[%s] %s", e.Type, e.Message)}

	if len(e.Context) > 0 {
		keys := make([]string, 0, len(e.Context))
		for k := range e.Context {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		ctxParts := make([]string, 0, len(keys))
		for _, k := range keys {
			ctxParts = append(ctxParts, fmt.Sprintf("%s=%v", k, e.Context[k]))
		}
		parts = append(parts, "context: "+strings.Join(ctxParts, ", "))
	}

	if e.Cause != nil {
		parts = append(parts, fmt.Sprintf("cause: %v", e.Cause))
	}

	return strings.Join(parts, " | ")
}

func (e *Error) Unwrap() error {
	return e.Cause
}

func (e *Error) WithContext(key string, value any) *Error {
	e.Context[key] = value
	return e
}

// IsErrorType reports whether err wraps an *Error of errorType.
func IsErrorType(err error, errorType ErrorType) bool {
	var convErr *Error
	if errors.As(err, &convErr) {
		return convErr.Type == errorType
	}
	return false
}

type ErrorHandler interface {
	Handle(err error) bool
	GetAdvice(err *Error) string
}

type DefaultErrorHandler struct{}

func NewDefaultErrorHandler() ErrorHandler {
	return &DefaultErrorHandler{}
}

// Handle logs err with advice. Errors that did not come from a conversion,
// such as command-line usage errors, are reported as ErrUnknown and make
// Handle return false.
func (h *DefaultErrorHandler) Handle(err error) bool {
	var convErr *Error
	known := errors.As(err, &convErr)
	if !known {
		convErr = WrapError(err, ErrUnknown, "command failed")
		err = convErr
	}

	log.Error("Conversion failed: %v", err)
	log.Error("Advice: %s", h.GetAdvice(convErr))
	return known
}

func (h *DefaultErrorHandler) GetAdvice(err *Error) string {
	switch err.Type {
	case ErrFileNotFound:
		return "Check that the input path is correct and the file exists"
	case ErrFileRead:
		return "Check that the input file is readable"
	case ErrParse:
		return "Check the input format: workbooks need a header row on the first sheet, TSV files a tab-separated header line, TBX and TERMCAT files well-formed XML"
	case ErrFileWrite:
		return "Check that the output directory exists and is writable"
	case ErrValidation:
		return "Check the input and output paths: both are required and must differ"
	default:
		return "Run tbxconv --help to check the command and its flags"
	}
}
