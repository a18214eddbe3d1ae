package middleware

import (
	"golf-coach/config"
	"golf-coach/pkg/log"
)

type Middleware struct {
	l       log.Logger
	origins map[string]bool
	limiter *rateLimiter
}

// New builds the middleware set. A nil limiter disables rate limiting.
func New(l log.Logger, cors config.CORSConfig, rl config.RateLimitConfig) Middleware {
	origins := make(map[string]bool, len(cors.AllowedOrigins))
	for _, o := range cors.AllowedOrigins {
		origins[o] = true
	}

	var limiter *rateLimiter
	if rl.Enabled && rl.RequestsPerMin > 0 {
		limiter = newRateLimiter(rl.RequestsPerMin)
	}

	return Middleware{
		l:       l,
		origins: origins,
		limiter: limiter,
	}
}
