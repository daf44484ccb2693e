package pipeline

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MimeLyc/bilingual-sub-muxer/internal/media"
)

type ErrorType int

const (
	ErrMissingInput ErrorType = iota
	ErrToolNotAvailable
	ErrConversion
	ErrTranslation
	ErrFileRead
	ErrFileWrite
	ErrParse
	ErrMux
	ErrUnknown
)

func (t ErrorType) String() string {
	switch t {
	case ErrMissingInput:
		return "MissingInput"
	case ErrToolNotAvailable:
		return "ToolNotAvailable"
	case ErrConversion:
		return "Conversion"
	case ErrTranslation:
		return "Translation"
	case ErrFileRead:
		return "FileRead"
	case ErrFileWrite:
		return "FileWrite"
	case ErrParse:
		return "Parse"
	case ErrMux:
		return "Mux"
	default:
		return "Unknown"
	}
}

// PipelineError carries the failing step and its detail through job processing.
type PipelineError struct {
	Type    ErrorType
	Message string
	Context map[string]any
	Cause   error
}

func WrapError(err error, errorType ErrorType, message string) *PipelineError {
	return &PipelineError{
		Type:    errorType,
		Message: message,
		Context: make(map[string]any),
		Cause:   err,
	}
}

func (e *PipelineError) Error() string {
	var parts []string
	parts = append(parts, fmt.Sprintf("[%s] %s", e.Type.String(), e.Message))

	if len(e.Context) > 0 {
		var ctxParts []string
		for k, v := range e.Context {
			ctxParts = append(ctxParts, fmt.Sprintf("%s=%v", k, v))
		}
		parts = append(parts, fmt.Sprintf("context: %s", strings.Join(ctxParts, ", ")))
	}

	if e.Cause != nil {
		parts = append(parts, fmt.Sprintf("cause: %v", e.Cause))
	}

	return strings.Join(parts, " | ")
}

func (e *PipelineError) Unwrap() error {
	return e.Cause
}

func (e *PipelineError) WithContext(key string, value any) *PipelineError {
	e.Context[key] = value
	return e
}

func IsErrorType(err error, errorType ErrorType) bool {
	var pipeErr *PipelineError
	if errors.As(err, &pipeErr) {
		return pipeErr.Type == errorType
	}
	return false
}

// classifyToolError maps a media-layer error onto the taxonomy, with
// fallbackType covering plain tool failures.
func classifyToolError(err error, fallbackType ErrorType, message string) *PipelineError {
	var missing *media.MissingInputError
	if errors.As(err, &missing) {
		return WrapError(err, ErrMissingInput, message)
	}
	var notAvailable *media.ToolNotAvailableError
	if errors.As(err, &notAvailable) {
		return WrapError(err, ErrToolNotAvailable, message)
	}
	return WrapError(err, fallbackType, message)
}
