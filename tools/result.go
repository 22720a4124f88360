package tools

import (
	"github.com/cockroachdb/errors"
)

var (
	// ErrToolNotFound is returned by Registry.Call for a name outside the catalogue.
	ErrToolNotFound = errors.New("tool not found")
	// ErrInvalidArguments is returned by Registry.Call when the arguments
	// can not be bound to the tool input, the tool is not invoked.
	ErrInvalidArguments = errors.New("invalid arguments")
)

// ErrorEnvelope is returned instead of the value when the tool call fails.
type ErrorEnvelope struct {
	Error string `json:"error"`
}

// SuccessEnvelope is returned by tools whose client call has no payload.
type SuccessEnvelope struct {
	Success bool `json:"success"`
}

// Success is the result of a succeeded command
var Success = SuccessEnvelope{Success: true}

// Outcome returns the value, or ErrorEnvelope with the error message.
func Outcome(value any, err error) any {
	if err != nil {
		return ErrorEnvelope{Error: err.Error()}
	}
	return value
}

// IsError returns the message if res is ErrorEnvelope
func IsError(res any) (string, bool) {
	switch v := res.(type) {
	case ErrorEnvelope:
		return v.Error, true
	case *ErrorEnvelope:
		if v != nil {
			return v.Error, true
		}
	}
	return "", false
}
