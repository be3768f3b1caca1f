package goalsapi

import (
	"errors"

	"github.com/theirongolddev/goaltrack/internal/model"
)

var (
	// ErrNetwork indicates the request never produced a response.
	ErrNetwork = errors.New("goalsapi: network failure")
	// ErrDecode indicates a response body that is not the expected JSON.
	ErrDecode = errors.New("goalsapi: malformed response")
	// ErrNotFound indicates the service has no such goal or user.
	ErrNotFound = errors.New("goalsapi: not found")
	// ErrUnexpectedStatus indicates any other non-2xx response.
	ErrUnexpectedStatus = errors.New("goalsapi: unexpected status")
)

// Kind names the failure class of err for logs and status lines.
func Kind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, model.ErrStepsParse):
		return "steps_parse"
	case errors.Is(err, model.ErrInvalidGoal):
		return "invalid_goal"
	case errors.Is(err, ErrDecode):
		return "decode"
	case errors.Is(err, ErrNetwork):
		return "network"
	case errors.Is(err, ErrNotFound):
		return "not_found"
	case errors.Is(err, ErrUnexpectedStatus):
		return "status"
	}
	return "unknown"
}
