package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golf-coach/internal/chain"
	"golf-coach/internal/coach"
	"golf-coach/internal/metrics"
)

// Answer routes input.Text and runs the chosen chain, or the default chain
// when the destination has none. No step is retried.
func (uc *implUseCase) Answer(ctx context.Context, input coach.AnswerInput) (coach.AnswerOutput, error) {
	uc.transition(ctx, coach.StateReceived)
	if strings.TrimSpace(input.Text) == "" {
		uc.transition(ctx, coach.StateFailed)
		return coach.AnswerOutput{}, coach.ErrEmptyText
	}

	uc.transition(ctx, coach.StateRouting)
	decision, err := uc.router.Route(ctx, input.Text)
	if err != nil {
		uc.transition(ctx, coach.StateFailed)
		uc.l.Errorf(ctx, "%s: router.Route: %v", logPrefixAnswer, err)
		metrics.Answers.WithLabelValues("", metrics.OutcomeError).Inc()
		return coach.AnswerOutput{}, fmt.Errorf("routing: %w", err)
	}

	c := uc.selectChain(ctx, decision.Destination)

	start := time.Now()
	text, err := c.Run(ctx, decision.NextInput)
	metrics.GatewayLatency.WithLabelValues(metrics.StageAnswer).Observe(time.Since(start).Seconds())
	if err != nil {
		uc.transition(ctx, coach.StateFailed)
		uc.l.Errorf(ctx, "%s: chain %s: %v", logPrefixAnswer, c.Name(), err)
		metrics.Answers.WithLabelValues(c.Name(), metrics.OutcomeError).Inc()
		return coach.AnswerOutput{}, fmt.Errorf("answering: %w", err)
	}

	uc.transition(ctx, coach.StateDone)
	metrics.Answers.WithLabelValues(c.Name(), metrics.OutcomeOK).Inc()

	return coach.AnswerOutput{
		Text:        text,
		Destination: c.Name(),
		NextInput:   decision.NextInput,
	}, nil
}

// selectChain falls back to the default chain for any name without a chain.
func (uc *implUseCase) selectChain(ctx context.Context, destination string) *chain.Chain {
	if c, ok := uc.chains[destination]; ok {
		uc.transition(ctx, coach.StateAnsweringDestination)
		return c
	}
	uc.transition(ctx, coach.StateAnsweringDefault)
	return uc.defaultChain
}

func (uc *implUseCase) transition(ctx context.Context, s coach.State) {
	uc.l.Debugf(ctx, "%s: state=%s", logPrefixAnswer, s)
}
