package coach

import "context"

type UseCase interface {
	// Answer routes the question and runs exactly one coaching chain.
	Answer(ctx context.Context, input AnswerInput) (AnswerOutput, error)
	// Route only classifies; no answering call is made.
	Route(ctx context.Context, input RouteInput) (RouteOutput, error)
	Destinations(ctx context.Context) DestinationsOutput
}
