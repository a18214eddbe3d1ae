package gemini

import "time"

const (
	// DefaultModel is the default Gemini model
	DefaultModel = "gemini-2.5-flash"

	// DefaultTimeout bounds a single generateContent call
	DefaultTimeout = 30 * time.Second

	roleAssistant = "assistant"
)
