package http

import (
	"github.com/gin-gonic/gin"

	"golf-coach/internal/middleware"
)

// RegisterRoutes maps the v1 coach API under rg. Model-backed routes are rate limited.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	rg.POST("/answer", mw.RateLimit(), h.Answer)
	rg.POST("/route", mw.RateLimit(), h.Route)
	rg.GET("/destinations", h.Destinations)
}

// RegisterLegacyRoutes maps the contract the React frontend posts to, at the engine root.
func RegisterLegacyRoutes(r gin.IRoutes, h Handler, mw middleware.Middleware) {
	r.POST("/process/", mw.RateLimit(), h.Process)
	r.POST("/process", mw.RateLimit(), h.Process)
}
