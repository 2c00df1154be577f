package limiter

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// Visitors keeps one token bucket per client IP. Buckets idle for longer
// than ttl are evicted.
type Visitors struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	rps      rate.Limit
	burst    int
	ttl      time.Duration
	now      func() time.Time
}

func NewVisitors(rps int, burst int, ttl time.Duration) *Visitors {
	return &Visitors{
		visitors: make(map[string]*visitor),
		rps:      rate.Limit(rps),
		burst:    burst,
		ttl:      ttl,
		now:      time.Now,
	}
}

func (v *Visitors) Allow(ip string) bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	now := v.now()
	vis, ok := v.visitors[ip]
	if !ok {
		vis = &visitor{limiter: rate.NewLimiter(v.rps, v.burst)}
		v.visitors[ip] = vis
	}
	vis.lastSeen = now

	return vis.limiter.AllowN(now, 1)
}

// Cleanup drops visitors that have not been seen within ttl.
func (v *Visitors) Cleanup() {
	v.mu.Lock()
	defer v.mu.Unlock()

	now := v.now()
	for ip, vis := range v.visitors {
		if now.Sub(vis.lastSeen) > v.ttl {
			delete(v.visitors, ip)
		}
	}
}

func (v *Visitors) Len() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return len(v.visitors)
}

// Run calls Cleanup every interval until ctx is done.
func (v *Visitors) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			v.Cleanup()
		}
	}
}

// Limit returns a gin middleware answering 429 once a client IP exhausts its
// bucket. Idle buckets are evicted until ctx is done.
func Limit(ctx context.Context, rps int, burst int, ttl time.Duration) gin.HandlerFunc {
	visitors := NewVisitors(rps, burst, ttl)

	if ttl > 0 {
		go visitors.Run(ctx, ttl)
	}

	return Middleware(visitors)
}

func Middleware(visitors *Visitors) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !visitors.Allow(c.ClientIP()) {
			c.AbortWithStatus(http.StatusTooManyRequests)
			return
		}

		c.Next()
	}
}
