package http

import (
	"github.com/gin-gonic/gin"

	"golf-coach/internal/coach"
	"golf-coach/pkg/log"
)

// Handler is the public interface for the coach HTTP delivery layer.
type Handler interface {
	Process(c *gin.Context)
	Answer(c *gin.Context)
	Route(c *gin.Context)
	Destinations(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc coach.UseCase
}

var _ Handler = (*handler)(nil)

// New creates a new HTTP handler for the coach domain.
func New(l log.Logger, uc coach.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
