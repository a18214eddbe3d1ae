package chain

import (
	"context"
	"fmt"

	"golf-coach/internal/prompt"
	"golf-coach/pkg/llmprovider"
)

// Chain binds one prompt template to a generator.
// It holds no per-request state and is safe for concurrent use.
type Chain struct {
	name     string
	template string
	gen      llmprovider.Generator
}

// New validates template and binds it to gen.
func New(name, template string, gen llmprovider.Generator) (*Chain, error) {
	if err := prompt.ValidateTemplate(template); err != nil {
		return nil, fmt.Errorf("chain %q: %w", name, err)
	}
	return &Chain{name: name, template: template, gen: gen}, nil
}

// NewDefault builds the pass-through chain used when routing selects no persona.
func NewDefault(gen llmprovider.Generator) *Chain {
	return &Chain{name: prompt.DefaultDestination, template: prompt.PassThroughTemplate, gen: gen}
}

func (c *Chain) Name() string {
	return c.name
}

// Run renders the template with input and returns the generated text verbatim.
// Generator errors are wrapped; there is no retry.
func (c *Chain) Run(ctx context.Context, input string) (string, error) {
	out, err := c.gen.Generate(ctx, prompt.Render(c.template, input))
	if err != nil {
		return "", fmt.Errorf("chain %s: %w", c.name, err)
	}
	return out, nil
}

// BuildDestinations builds one chain per registry entry, keyed by name.
func BuildDestinations(r *prompt.Registry, gen llmprovider.Generator) (map[string]*Chain, error) {
	chains := make(map[string]*Chain, r.Len())
	for _, s := range r.All() {
		c, err := New(s.Name, s.Template, gen)
		if err != nil {
			return nil, err
		}
		chains[s.Name] = c
	}
	return chains, nil
}
