package middleware

import (
	"backoffice-dashboard/config"
	"backoffice-dashboard/pkg/log"
)

type Middleware struct {
	l       log.Logger
	limiter *rateLimiter
}

// New builds the shared middleware set. A disabled rate limit lets every request through.
func New(l log.Logger, cfg config.RateLimitConfig) Middleware {
	m := Middleware{l: l}
	if cfg.Enabled {
		m.limiter = newRateLimiter(cfg.PerMin)
	}
	return m
}
