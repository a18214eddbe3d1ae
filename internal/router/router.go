package router

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golf-coach/internal/metrics"
	"golf-coach/internal/prompt"
)

// Route makes one generator call and turns the reply into a Decision.
// Only generator errors are returned; unparseable or unknown output routes to DEFAULT.
func (r *SemanticRouter) Route(ctx context.Context, input string) (Decision, error) {
	start := time.Now()
	text, err := r.gen.Generate(ctx, r.Prompt(input))
	metrics.GatewayLatency.WithLabelValues(metrics.StageRoute).Observe(time.Since(start).Seconds())
	if err != nil {
		return Decision{}, fmt.Errorf("%s: %s: %w", LogPrefixRoute, ErrMsgLLMCallFailed, err)
	}

	d := r.decide(ctx, text, input)
	metrics.RoutingDecisions.WithLabelValues(d.Destination, string(d.Source)).Inc()
	r.l.Infof(ctx, "%s: routed to %s (source: %s)", LogPrefixRoute, d.Destination, d.Source)

	return d, nil
}

func (r *SemanticRouter) decide(ctx context.Context, text, input string) Decision {
	raw, source, ok := parse(text)
	if !ok {
		r.l.Warnf(ctx, "%s: %s", LogPrefixRoute, ErrMsgParseFailed)
		return Decision{Destination: prompt.DefaultDestination, NextInput: input, Source: SourceFallback}
	}

	d := Decision{
		Destination: strings.TrimSpace(raw.destination),
		NextInput:   raw.nextInputs,
		Source:      source,
	}
	if strings.TrimSpace(d.NextInput) == "" {
		d.NextInput = input
	}
	if !r.registry.Has(d.Destination) {
		if d.Destination != prompt.DefaultDestination {
			r.l.Warnf(ctx, "%s: %s: %q", LogPrefixRoute, ErrMsgUnknownDestDef, d.Destination)
		}
		d.Destination = prompt.DefaultDestination
	}
	return d
}
