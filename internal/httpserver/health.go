package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"golf-coach/pkg/response"
)

const (
	HealthVersion = "1.0.0"
	ServiceName   = "golf-coach"
)

func statusBody(status string) gin.H {
	return gin.H{
		"status":  status,
		"version": HealthVersion,
		"service": ServiceName,
	}
}

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp "API is healthy"
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, statusBody("healthy"))
}

// readyCheck is ready when at least one coaching destination is registered.
// @Summary Readiness Check
// @Description Check if the API is ready to serve traffic
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp "API is ready"
// @Failure 503 {object} response.Resp "No destinations registered"
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	out := srv.coachUC.Destinations(c.Request.Context())
	if len(out.Destinations) == 0 {
		c.JSON(http.StatusServiceUnavailable, response.Resp{
			ErrorCode: http.StatusServiceUnavailable,
			Message:   "no coaching destinations registered",
		})
		return
	}

	body := statusBody("ready")
	body["destinations"] = len(out.Destinations)
	response.OK(c, body)
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Description Check if the API process is alive
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp "API is alive"
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, statusBody("alive"))
}
