package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	coachHTTP "golf-coach/internal/coach/delivery/http"
)

// setupCoachDomain registers the coach routes:
//   - POST /process/ and /process (legacy frontend contract)
//   - /api/v1/coach/{answer,route,destinations}
func (srv HTTPServer) setupCoachDomain(ctx context.Context, api *gin.RouterGroup) error {
	h := coachHTTP.New(srv.l, srv.coachUC)

	coachHTTP.RegisterLegacyRoutes(srv.gin, h, srv.mw)
	coachHTTP.RegisterRoutes(api.Group("/coach"), h, srv.mw)

	srv.l.Infof(ctx, "Coach domain registered")
	return nil
}
