package usecase

import (
	"context"
	"fmt"
	"strings"

	"golf-coach/internal/coach"
)

// Route classifies input.Text without answering it.
func (uc *implUseCase) Route(ctx context.Context, input coach.RouteInput) (coach.RouteOutput, error) {
	if strings.TrimSpace(input.Text) == "" {
		return coach.RouteOutput{}, coach.ErrEmptyText
	}

	d, err := uc.router.Route(ctx, input.Text)
	if err != nil {
		uc.l.Errorf(ctx, "%s: router.Route: %v", logPrefixRoute, err)
		return coach.RouteOutput{}, fmt.Errorf("routing: %w", err)
	}

	return coach.RouteOutput{
		Destination: d.Destination,
		NextInput:   d.NextInput,
		Source:      string(d.Source),
	}, nil
}
