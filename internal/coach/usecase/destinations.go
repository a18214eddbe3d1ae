package usecase

import (
	"context"

	"golf-coach/internal/coach"
	"golf-coach/internal/prompt"
)

// Destinations lists the registered personas in menu order.
func (uc *implUseCase) Destinations(ctx context.Context) coach.DestinationsOutput {
	specs := uc.registry.All()
	out := coach.DestinationsOutput{
		Destinations: make([]coach.Destination, len(specs)),
		Default:      prompt.DefaultDestination,
	}
	for i, s := range specs {
		out.Destinations[i] = coach.Destination{Name: s.Name, Description: s.Description}
	}
	return out
}
