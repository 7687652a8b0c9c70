package middleware

import (
	"property-listing-service/pkg/log"
)

// Config holds middleware settings.
type Config struct {
	// RateLimitPerMin caps mutation requests per client per minute.
	RateLimitPerMin int
}

type Middleware struct {
	l       log.Logger
	limiter *clientLimiter
}

func New(l log.Logger, cfg Config) Middleware {
	perMin := cfg.RateLimitPerMin
	if perMin <= 0 {
		perMin = 60
	}
	return Middleware{
		l:       l,
		limiter: newClientLimiter(perMin),
	}
}
