package httpserver

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"backoffice-dashboard/pkg/response"
)

// Health response constants (single source for version and service identity).
const (
	HealthMessage = "Backoffice dashboard is up"
	HealthVersion = "1.0.0"
	ServiceName   = "backoffice-dashboard"
)

const readyTimeout = 3 * time.Second

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the dashboard is healthy
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp "Dashboard is healthy"
// @Router /health [get]
func (srv *HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, srv.status("healthy"))
}

// readyCheck reports ready only while the backoffice API answers.
// @Summary Readiness Check
// @Description Check that the backoffice API is reachable
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp "Dashboard is ready"
// @Failure 503 {object} response.Resp "Backoffice API unreachable"
// @Router /ready [get]
func (srv *HTTPServer) readyCheck(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), readyTimeout)
	defer cancel()

	if err := srv.client.Ping(ctx); err != nil {
		srv.l.Warnf(ctx, "httpserver.readyCheck client.Ping: %v", err)
		response.Unavailable(c, err, srv.status("not ready"))
		return
	}
	response.OK(c, srv.status("ready"))
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Description Check if the dashboard process is alive
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp "Dashboard is alive"
// @Router /live [get]
func (srv *HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, srv.status("alive"))
}

func (srv *HTTPServer) status(s string) gin.H {
	return gin.H{
		"status":  s,
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
		"backend": srv.client.BaseURL(),
		"time":    response.DateTime(time.Now()),
	}
}
