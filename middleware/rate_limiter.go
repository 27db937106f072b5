// middleware/rate_limiter.go
package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"

	"github.com/egypay/fawaterak_backend/models"
)

type endpointLimit struct {
	limit rate.Limit
	burst int
}

// RateLimiter throttles clients per IP and path, with stricter limits on the
// endpoints that hit the payment gateway.
type RateLimiter struct {
	mu             sync.Mutex
	visitors       map[string]*rate.Limiter
	defaultLimit   rate.Limit
	defaultBurst   int
	endpointLimits map[string]endpointLimit
}

func NewRateLimiter() *RateLimiter {
	return &RateLimiter{
		visitors:     make(map[string]*rate.Limiter),
		defaultLimit: rate.Every(100 * time.Millisecond), // 10 requests per second
		defaultBurst: 20,
		endpointLimits: map[string]endpointLimit{
			// Payment initiation performs two upstream calls; keep it slow
			"/api/fawaterak/pay":      {limit: rate.Every(time.Second), burst: 5},
			"/api/fawaterak/invoices": {limit: rate.Every(500 * time.Millisecond), burst: 10},
			"/api/orders":             {limit: rate.Every(time.Second), burst: 5},
		},
	}
}

func (r *RateLimiter) RateLimit() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			path := c.Path()
			if path == "/" || path == "/health" {
				return next(c)
			}

			limit := r.defaultLimit
			burst := r.defaultBurst
			if el, ok := r.endpointLimits[path]; ok {
				limit = el.limit
				burst = el.burst
			}

			if !r.limiterFor(c.RealIP()+path, limit, burst).Allow() {
				return c.JSON(http.StatusTooManyRequests, models.Response{
					Status:  http.StatusTooManyRequests,
					Message: "Too many requests",
				})
			}
			return next(c)
		}
	}
}

func (r *RateLimiter) limiterFor(key string, limit rate.Limit, burst int) *rate.Limiter {
	r.mu.Lock()
	defer r.mu.Unlock()

	limiter, exists := r.visitors[key]
	if !exists {
		limiter = rate.NewLimiter(limit, burst)
		r.visitors[key] = limiter
	}
	return limiter
}
