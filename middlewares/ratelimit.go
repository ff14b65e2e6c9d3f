package middlewares

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	lru "github.com/hashicorp/golang-lru"
	"golang.org/x/time/rate"
)

// RateLimiter 按客户端 IP 限流，limiter 存放在 LRU 中避免无限增长
type RateLimiter struct {
	mu       sync.Mutex
	limiters *lru.Cache
	limit    rate.Limit
	burst    int
}

func NewRateLimiter(requests int, window time.Duration, clients int) (*RateLimiter, error) {
	cache, err := lru.New(clients)
	if err != nil {
		return nil, err
	}
	return &RateLimiter{
		limiters: cache,
		limit:    rate.Limit(float64(requests) / window.Seconds()),
		burst:    requests,
	}, nil
}

func (r *RateLimiter) limiter(key string) *rate.Limiter {
	r.mu.Lock()
	defer r.mu.Unlock()

	if v, ok := r.limiters.Get(key); ok {
		return v.(*rate.Limiter)
	}
	l := rate.NewLimiter(r.limit, r.burst)
	r.limiters.Add(key, l)
	return l
}

func (r *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !r.limiter(c.ClientIP()).Allow() {
			RecordOperation("rate_limited", false)
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "Слишком много запросов"})
			return
		}
		c.Next()
	}
}
