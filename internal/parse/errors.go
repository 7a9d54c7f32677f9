package parse

import "fmt"

// Stable error codes attached to parse failures. The message alongside a code
// is what tool envelopes surface to the conversational layer; the code is for
// telemetry and tests.
const (
	ErrCodeNoValue   = "ERR_NO_VALUE"
	ErrCodeBadFormat = "ERR_BAD_FORMAT"
	ErrCodeNotFinite = "ERR_NOT_FINITE"
	ErrCodeBadJSON   = "ERR_BAD_JSON"
	ErrCodeNotObject = "ERR_NOT_OBJECT"
	ErrCodeBadItem   = "ERR_BAD_ITEM"
	ErrCodeNoItems   = "ERR_NO_ITEMS"
	ErrCodeNegative  = "ERR_NEGATIVE"
	ErrCodeBadFlag   = "ERR_BAD_FLAG"
)

// Error is a machine-readable parse failure.
type Error struct {
	Code    string
	Message string
}

func (e *Error) Error() string { return e.Message }

func errf(code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// CodeOf returns the parse error code for err, or "" when err is nil or not
// a parse error.
func CodeOf(err error) string {
	if pe, ok := err.(*Error); ok {
		return pe.Code
	}
	return ""
}
