package gemini

import (
	"fmt"
	"net/http"

	"google.golang.org/genai"
)

// Config holds Gemini client configuration.
// BaseURL overrides the SDK's default endpoint, mostly for tests and proxies.
type Config struct {
	APIKey     string
	Model      string
	BaseURL    string
	HTTPClient *http.Client
}

// Validate validates the configuration and fills defaults
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("gemini: APIKey is required")
	}
	if c.Model == "" {
		c.Model = DefaultModel
	}
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: DefaultTimeout}
	}
	return nil
}

type geminiImpl struct {
	client *genai.Client
	model  string
}

// Request is a text generation request
type Request struct {
	SystemInstruction string
	Messages          []Content
	Temperature       float64
	MaxTokens         int
}

// Content is one conversation turn. Role is "user" or "assistant";
// "model" is accepted as a synonym for "assistant".
type Content struct {
	Role string
	Text string
}

// Response is the first candidate's text with usage
type Response struct {
	Text  string
	Usage Usage
}

// Usage tracks token consumption
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
