package middleware

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/guttosm/awardpulse/internal/domain/dto"
	"github.com/guttosm/awardpulse/internal/logger"
)

// RequestLogger is a Gin middleware that logs method, route, path, status
// code, latency and request ID (if available).
//
// Server errors are logged at error level, client errors at warn, the rest at info.
//
// Usage:
//
//	router := gin.New()
//	router.Use(middleware.RequestID(), middleware.RequestLogger())
//
// Example log output:
//
//	{"level":"info","component":"http","request_id":"123e4567-...","method":"GET","route":"/api/v1/chart","path":"/api/v1/chart","status":200,"latency_ms":3,"message":"http_request"}
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		method := c.Request.Method
		path := c.Request.URL.Path

		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()
		rid, _ := c.Get(RequestIDKey)

		log := logger.Component("http")
		var ev *zerolog.Event
		switch {
		case status >= http.StatusInternalServerError:
			ev = log.Error()
		case status >= http.StatusBadRequest:
			ev = log.Warn()
		default:
			ev = log.Info()
		}
		ev.
			Str("request_id", toString(rid)).
			Str("method", method).
			Str("route", c.FullPath()).
			Str("path", path).
			Int("status", status).
			Int64("latency_ms", latency.Milliseconds()).
			Str("client_ip", c.ClientIP()).
			Msg("http_request")
	}
}

func toString(v any) string {
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}

// client represents a rate-limited client with request count and window start.
type client struct {
	windowStart time.Time
	count       int
}

// rateLimiter holds per-IP windows. Clients whose window has elapsed are
// swept at most once per window, so idle addresses do not accumulate.
type rateLimiter struct {
	mu        sync.Mutex
	clients   map[string]*client
	perWindow int
	window    time.Duration
	lastSweep time.Time
}

func newRateLimiter(perWindow int, window time.Duration) *rateLimiter {
	return &rateLimiter{
		clients:   make(map[string]*client),
		perWindow: perWindow,
		window:    window,
		lastSweep: time.Now(),
	}
}

// allow counts one request from ip at now. When the limit is exceeded it
// returns false and how long until the client's window ends.
func (rl *rateLimiter) allow(ip string, now time.Time) (bool, time.Duration) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	if now.Sub(rl.lastSweep) > rl.window {
		for k, cl := range rl.clients {
			if now.Sub(cl.windowStart) > rl.window {
				delete(rl.clients, k)
			}
		}
		rl.lastSweep = now
	}

	cl, ok := rl.clients[ip]
	if !ok || now.Sub(cl.windowStart) > rl.window {
		cl = &client{windowStart: now}
		rl.clients[ip] = cl
	}
	cl.count++
	if cl.count > rl.perWindow {
		return false, cl.windowStart.Add(rl.window).Sub(now)
	}
	return true, 0
}

func (rl *rateLimiter) size() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	return len(rl.clients)
}

// RateLimiter is an in-memory middleware that limits requests per client IP.
//
// Behavior:
//   - Allows up to perWindow requests per window for each client IP.
//   - A client's counter resets once its window has elapsed.
//   - Expired clients are dropped on a later request.
//   - If the limit is exceeded, responds 429 Too Many Requests with the
//     standard error body.
//
// Each call returns a limiter with its own state, so separate routers do not
// share counters. State is per process.
//
// Usage:
//
//	router := gin.New()
//	router.Use(middleware.RateLimiter(120, time.Minute))
func RateLimiter(perWindow int, window time.Duration) gin.HandlerFunc {
	rl := newRateLimiter(perWindow, window)

	return func(c *gin.Context) {
		ok, wait := rl.allow(c.ClientIP(), time.Now())
		if !ok {
			c.Header("Retry-After", retryAfter(wait))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, dto.NewErrorResponse("rate limit exceeded", nil))
			return
		}

		c.Next()
	}
}

// retryAfter formats d as whole seconds, never less than one.
func retryAfter(d time.Duration) string {
	secs := int64(d.Seconds())
	if secs < 1 {
		secs = 1
	}
	return strconv.FormatInt(secs, 10)
}
