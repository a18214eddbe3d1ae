package claude

import (
	"fmt"
	"net/http"

	"github.com/anthropics/anthropic-sdk-go"
)

// Config holds Claude client configuration
type Config struct {
	APIKey     string
	Model      string
	BaseURL    string
	HTTPClient *http.Client
}

// Validate validates the configuration and fills defaults
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("claude: APIKey is required")
	}
	if c.Model == "" {
		c.Model = DefaultModel
	}
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: DefaultTimeout}
	}
	return nil
}

type claudeImpl struct {
	client anthropic.Client
	model  string
}

// Request is a Messages API request
type Request struct {
	SystemInstruction string
	Messages          []Message
	Temperature       float64
	MaxTokens         int
}

// Message is one turn ("user" or "assistant")
type Message struct {
	Role string
	Text string
}

// Response holds the concatenated text blocks
type Response struct {
	Text  string
	Usage Usage
}

// Usage tracks token consumption
type Usage struct {
	InputTokens  int
	OutputTokens int
}
