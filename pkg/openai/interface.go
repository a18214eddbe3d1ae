package openai

import "context"

// IOpenAI is a chat-completions client for OpenAI and OpenAI-compatible APIs.
// Implementations are safe for concurrent use.
type IOpenAI interface {
	GenerateContent(ctx context.Context, req *Request) (*Response, error)
	Model() string
}

// New creates a client. BaseURL selects a compatible vendor (DeepSeek, Qwen...);
// empty means api.openai.com.
func New(cfg Config) (IOpenAI, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newOpenAIImpl(cfg), nil
}
