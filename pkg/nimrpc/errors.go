package nimrpc

import (
	"fmt"
)

type (
	// Error represents a JSON-RPC 2.0 error object returned by the remote
	// node. It is surfaced to callers verbatim, the client never retries or
	// reinterprets it.
	Error struct {
		Code    int64  `json:"code"`
		Message string `json:"message"`
		Data    string `json:"data,omitempty"`
	}

	// DecodeError is returned when a result payload cannot be interpreted
	// as the expected typed value: a required field is missing or mistyped,
	// a number doesn't fit the declared width, or no candidate variant of a
	// polymorphic type matches.
	DecodeError struct {
		// Type names the target type the payload was decoded into.
		Type string
		Err  error
	}
)

// Standard JSON-RPC 2.0 error codes.
const (
	ParseErrorCode     = -32700
	InvalidRequestCode = -32600
	MethodNotFoundCode = -32601
	InvalidParamsCode  = -32602
	InternalErrorCode  = -32603
)

// NewError is an Error constructor that takes Error contents from its
// parameters.
func NewError(code int64, message string, data string) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Data:    data,
	}
}

// NewParseError creates a new error with code -32700.
func NewParseError(data string) *Error {
	return NewError(ParseErrorCode, "Parse Error", data)
}

// NewInvalidRequestError creates a new error with code -32600.
func NewInvalidRequestError(data string) *Error {
	return NewError(InvalidRequestCode, "Invalid Request", data)
}

// NewMethodNotFoundError creates a new error with code -32601.
func NewMethodNotFoundError(data string) *Error {
	return NewError(MethodNotFoundCode, "Method not found", data)
}

// NewInvalidParamsError creates a new error with code -32602.
func NewInvalidParamsError(data string) *Error {
	return NewError(InvalidParamsCode, "Invalid Params", data)
}

// NewInternalServerError creates a new error with code -32603.
func NewInternalServerError(data string) *Error {
	return NewError(InternalErrorCode, "Internal error", data)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if len(e.Data) == 0 {
		return fmt.Sprintf("%s (%d)", e.Message, e.Code)
	}
	return fmt.Sprintf("%s (%d) - %s", e.Message, e.Code, e.Data)
}

// NewDecodeError wraps err as a decoding failure of the named type.
func NewDecodeError(typ string, err error) *DecodeError {
	return &DecodeError{Type: typ, Err: err}
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	return fmt.Sprintf("decoding %s: %s", e.Type, e.Err)
}

// Unwrap returns the underlying reason of the decoding failure.
func (e *DecodeError) Unwrap() error {
	return e.Err
}
