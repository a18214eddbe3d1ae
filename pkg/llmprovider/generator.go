package llmprovider

import (
	"context"
	"strings"
)

// Generator turns a rendered prompt into generated text.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// ContentGenerator is satisfied by Manager and by every Provider.
type ContentGenerator interface {
	GenerateContent(ctx context.Context, req *Request) (*Response, error)
}

// GenerateOptions are the sampling settings applied to every prompt.
type GenerateOptions struct {
	Temperature float64
	MaxTokens   int
}

// TextGenerator adapts a ContentGenerator to the single-prompt Generator contract.
type TextGenerator struct {
	llm  ContentGenerator
	opts GenerateOptions
}

var _ Generator = (*TextGenerator)(nil)

// NewGenerator binds sampling options to llm.
func NewGenerator(llm ContentGenerator, opts GenerateOptions) *TextGenerator {
	return &TextGenerator{llm: llm, opts: opts}
}

// Generate sends prompt as one user message and returns the text verbatim.
// A response without any text is ErrEmptyResponse.
func (g *TextGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := g.llm.GenerateContent(ctx, &Request{
		Messages:    []Message{{Role: RoleUser, Text: prompt}},
		Temperature: g.opts.Temperature,
		MaxTokens:   g.opts.MaxTokens,
	})
	if err != nil {
		return "", err
	}
	if resp == nil || strings.TrimSpace(resp.Text) == "" {
		return "", ErrEmptyResponse
	}
	return resp.Text, nil
}
