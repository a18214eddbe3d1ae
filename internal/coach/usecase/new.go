package usecase

import (
	"golf-coach/internal/chain"
	"golf-coach/internal/coach"
	"golf-coach/internal/prompt"
	"golf-coach/internal/router"
	"golf-coach/pkg/log"
)

// implUseCase is the private implementation of coach.UseCase.
// Every field is built once at startup and only read afterwards.
type implUseCase struct {
	l            log.Logger
	router       router.Router
	registry     *prompt.Registry
	chains       map[string]*chain.Chain
	defaultChain *chain.Chain
}

var _ coach.UseCase = (*implUseCase)(nil)

// New creates a new coach UseCase implementation.
func New(l log.Logger, r router.Router, registry *prompt.Registry, chains map[string]*chain.Chain, defaultChain *chain.Chain) *implUseCase {
	return &implUseCase{
		l:            l,
		router:       r,
		registry:     registry,
		chains:       chains,
		defaultChain: defaultChain,
	}
}
