package http

import (
	"context"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/time/rate"

	"github.com/jhoicas/carneiro-api/internal/application/dto"
)

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// LoginLimiter limita los intentos de login por IP (token bucket por visitante).
type LoginLimiter struct {
	mu       sync.Mutex
	visitors map[string]*clientLimiter
	limit    rate.Limit
	burst    int
	ttl      time.Duration
}

// NewLoginLimiter permite perMinute intentos por minuto por IP, con ráfaga igual a perMinute.
func NewLoginLimiter(perMinute int) *LoginLimiter {
	if perMinute <= 0 {
		perMinute = 10
	}
	return &LoginLimiter{
		visitors: make(map[string]*clientLimiter),
		limit:    rate.Every(time.Minute / time.Duration(perMinute)),
		burst:    perMinute,
		ttl:      5 * time.Minute,
	}
}

func (l *LoginLimiter) visitor(ip string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	v, ok := l.visitors[ip]
	if !ok {
		v = &clientLimiter{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.visitors[ip] = v
	}
	v.lastSeen = time.Now()
	return v.limiter
}

// Handler middleware Fiber: 429 cuando la IP agotó su cupo.
func (l *LoginLimiter) Handler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !l.visitor(c.IP()).Allow() {
			return c.Status(fiber.StatusTooManyRequests).JSON(dto.ErrorResponse{Code: "RATE_LIMITED", Message: "demasiados intentos, espere un minuto"})
		}
		return c.Next()
	}
}

// Cleanup elimina visitantes inactivos cada minuto hasta que ctx se cancele.
func (l *LoginLimiter) Cleanup(ctx context.Context) {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			l.evict(time.Now())
		}
	}
}

func (l *LoginLimiter) evict(now time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for ip, v := range l.visitors {
		if now.Sub(v.lastSeen) > l.ttl {
			delete(l.visitors, ip)
		}
	}
}
