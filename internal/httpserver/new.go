package httpserver

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"backoffice-dashboard/config"
	"backoffice-dashboard/pkg/log"
	"backoffice-dashboard/pkg/restapi"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	corsOrigins []string

	// Backoffice API
	client *restapi.Client

	// Dashboard
	cache        config.CacheConfig
	rateLimit    config.RateLimitConfig
	dismissAfter time.Duration
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string
	CORSOrigins []string

	Client       *restapi.Client
	Cache        config.CacheConfig
	RateLimit    config.RateLimitConfig
	DismissAfter time.Duration
}

// New creates a new HTTPServer instance with every route mapped.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:            logger,
		gin:          gin.New(),
		port:         cfg.Port,
		mode:         cfg.Mode,
		environment:  cfg.Environment,
		corsOrigins:  cfg.CORSOrigins,
		client:       cfg.Client,
		cache:        cfg.Cache,
		rateLimit:    cfg.RateLimit,
		dismissAfter: cfg.DismissAfter,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	srv.mapHandlers()
	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.client == nil {
		return errors.New("backoffice client is required")
	}
	return nil
}
