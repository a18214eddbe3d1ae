package claude

import "time"

const (
	// DefaultModel is the default Claude model
	DefaultModel = "claude-3-5-haiku-latest"

	// DefaultMaxTokens is sent when the request leaves MaxTokens unset; the API requires one
	DefaultMaxTokens = 1024

	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 60 * time.Second
)
