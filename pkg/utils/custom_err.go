package utils

import "errors"

var (
	ErrEmptyPrompt         = errors.New("prompt must not be empty")
	ErrUnsupportedProvider = errors.New("unsupported llm provider")
	ErrMissingAPIKey       = errors.New("llm api key is not configured")
	ErrModelInvocation     = errors.New("model invocation failed")
	ErrNoCompletion        = errors.New("model returned no completion")
	ErrMaxTurnsExceeded    = errors.New("agent exceeded max turns")
	ErrUnknownTool         = errors.New("model requested an unknown tool")
)

// IsModelError reports whether err came from talking to the model rather
// than from the caller's input.
func IsModelError(err error) bool {
	return errors.Is(err, ErrModelInvocation) ||
		errors.Is(err, ErrNoCompletion) ||
		errors.Is(err, ErrMaxTurnsExceeded) ||
		errors.Is(err, ErrUnknownTool)
}
