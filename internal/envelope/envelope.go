// Package envelope implements the two-shape success/error contract returned
// by every parsing and validation tool.
//
// Wire shapes:
//
//	{"status": "success", "data": "<compact JSON object>"}
//	{"status": "error", "error_message": "..."}
//
// The success payload is a JSON-encoded string inside the envelope (the
// consuming agent layer re-parses it), matching the contract the downstream
// pipeline already speaks.
package envelope

import (
	"encoding/json"
	"fmt"
)

// Result is a tagged success-or-error value. Construct it with Success or
// Error; the zero value is an error with an empty message.
type Result struct {
	success bool
	data    map[string]any
	message string
}

// Success wraps normalized field values into a success result.
func Success(data map[string]any) Result {
	if data == nil {
		data = map[string]any{}
	}
	return Result{success: true, data: data}
}

// Error wraps a human-readable failure message into an error result.
func Error(message string) Result {
	return Result{message: message}
}

// Errorf is Error with formatting.
func Errorf(format string, args ...any) Result {
	return Result{message: fmt.Sprintf(format, args...)}
}

func (r Result) IsSuccess() bool { return r.success }

// Data returns the normalized field mapping of a success result, nil for
// errors.
func (r Result) Data() map[string]any {
	if !r.success {
		return nil
	}
	return r.data
}

// Message returns the failure message of an error result, "" for successes.
func (r Result) Message() string { return r.message }

// wire is the serialized envelope shape.
type wire struct {
	Status       string `json:"status"`
	Data         string `json:"data,omitempty"`
	ErrorMessage string `json:"error_message,omitempty"`
}

// Encode serializes the result into its envelope JSON string.
func (r Result) Encode() (string, error) {
	w := wire{Status: "error", ErrorMessage: r.message}
	if r.success {
		payload, err := json.Marshal(r.data)
		if err != nil {
			return "", fmt.Errorf("encode envelope data: %w", err)
		}
		w = wire{Status: "success", Data: string(payload)}
	}
	b, err := json.Marshal(w)
	if err != nil {
		return "", fmt.Errorf("encode envelope: %w", err)
	}
	return string(b), nil
}

// MustEncode is Encode for payloads known to be JSON-serializable (plain
// numbers, strings, bools, and line-item slices). Encoding those cannot fail.
func (r Result) MustEncode() string {
	s, err := r.Encode()
	if err != nil {
		panic(err)
	}
	return s
}

// Decode parses an envelope JSON string back into a Result. Success data is
// re-parsed from its embedded JSON encoding.
func Decode(s string) (Result, error) {
	var w wire
	if err := json.Unmarshal([]byte(s), &w); err != nil {
		return Result{}, fmt.Errorf("decode envelope: %w", err)
	}
	switch w.Status {
	case "success":
		var data map[string]any
		if err := json.Unmarshal([]byte(w.Data), &data); err != nil {
			return Result{}, fmt.Errorf("decode envelope data: %w", err)
		}
		return Success(data), nil
	case "error":
		return Error(w.ErrorMessage), nil
	default:
		return Result{}, fmt.Errorf("unknown envelope status %q", w.Status)
	}
}
