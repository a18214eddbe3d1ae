package openai

import "time"

const (
	// DefaultModel matches the model the coaching prompts were tuned against
	DefaultModel = "gpt-3.5-turbo"

	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 60 * time.Second
)
