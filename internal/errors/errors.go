package errors

import (
	"errors"
	"fmt"
	"net/http"

	goerrors "github.com/go-errors/errors"
	"go.uber.org/zap"
)

type ErrorType string

const (
	ErrTypeNotFound     ErrorType = "NOT_FOUND"
	ErrTypeInvalidInput ErrorType = "INVALID_INPUT"
	// ErrTypeInternal covers persistence and other dependency failures.
	ErrTypeInternal ErrorType = "INTERNAL"
	// ErrTypeUnavailable is an optional collaborator that is missing or down.
	ErrTypeUnavailable ErrorType = "UNAVAILABLE"
)

var httpStatus = map[ErrorType]int{
	ErrTypeNotFound:     http.StatusNotFound,
	ErrTypeInvalidInput: http.StatusBadRequest,
	ErrTypeInternal:     http.StatusInternalServerError,
	ErrTypeUnavailable:  http.StatusServiceUnavailable,
}

// DomainError is a classified failure. Message names the operation that
// failed; Err is the cause and stays reachable through errors.Is and
// errors.As.
type DomainError struct {
	Type    ErrorType
	Message string
	Err     error

	trace *goerrors.Error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// StackTrace is the stack where the error was classified, or where the
// cause was created when it already carried one.
func (e *DomainError) StackTrace() []byte {
	return e.trace.Stack()
}

func New(errType ErrorType, message string, err error) *DomainError {
	var trace *goerrors.Error
	if !errors.As(err, &trace) {
		// skip New and the exported constructor
		trace = goerrors.Wrap(message, 2)
	}
	return &DomainError{
		Type:    errType,
		Message: message,
		Err:     err,
		trace:   trace,
	}
}

func NotFound(message string, err error) *DomainError {
	return New(ErrTypeNotFound, message, err)
}

func InvalidInput(message string, err error) *DomainError {
	return New(ErrTypeInvalidInput, message, err)
}

func Internal(message string, err error) *DomainError {
	return New(ErrTypeInternal, message, err)
}

func Unavailable(message string, err error) *DomainError {
	return New(ErrTypeUnavailable, message, err)
}

// TypeOf reports the ErrorType of the first DomainError in err's chain, or
// ErrTypeInternal when there is none.
func TypeOf(err error) ErrorType {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Type
	}
	return ErrTypeInternal
}

// HTTPStatus is the response status for err.
func HTTPStatus(err error) int {
	return httpStatus[TypeOf(err)]
}

// LogFields describes err for a zap log line. Internal failures include the
// stack.
func LogFields(err error) []zap.Field {
	fields := []zap.Field{
		zap.Error(err),
		zap.String("error_type", string(TypeOf(err))),
	}
	var de *DomainError
	if errors.As(err, &de) && de.Type == ErrTypeInternal {
		fields = append(fields, zap.ByteString("stack", de.StackTrace()))
	}
	return fields
}
