package router

import (
	"context"
	"strings"

	"golf-coach/internal/prompt"
	"golf-coach/pkg/llmprovider"
	"golf-coach/pkg/log"
)

// Router is the interface for destination routing
type Router interface {
	Route(ctx context.Context, input string) (Decision, error)
}

// SemanticRouter asks the model which registered prompt should answer.
// It is immutable after New and safe for concurrent use.
type SemanticRouter struct {
	gen      llmprovider.Generator
	registry *prompt.Registry
	l        log.Logger

	// the rendered template split around the input slot
	head string
	tail string
}

var _ Router = (*SemanticRouter)(nil)

// New creates a new SemanticRouter over registry's destinations.
func New(gen llmprovider.Generator, registry *prompt.Registry, l log.Logger) *SemanticRouter {
	head, tail, _ := strings.Cut(PromptRouterTemplate, prompt.Placeholder)
	head = strings.Replace(head, placeholderDestinations, registry.DestinationsBlock(), 1)

	return &SemanticRouter{
		gen:      gen,
		registry: registry,
		l:        l,
		head:     head,
		tail:     tail,
	}
}

// Prompt renders the classification prompt for input.
func (r *SemanticRouter) Prompt(input string) string {
	return r.head + input + r.tail
}
