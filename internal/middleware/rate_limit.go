package middleware

import (
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"go-hrm/internal/shared/response"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

const limiterIdleTTL = 10 * time.Minute

type keyedLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// KeyedRateLimiter holds one token bucket per caller. Buckets idle for
// longer than idleTTL are dropped on the next sweep.
type KeyedRateLimiter struct {
	mu        sync.Mutex
	buckets   map[string]*keyedLimiter
	r         rate.Limit // request per detik
	b         int        // burst
	idleTTL   time.Duration
	lastSweep time.Time
	now       func() time.Time
}

func NewKeyedRateLimiter(r rate.Limit, b int) *KeyedRateLimiter {
	return &KeyedRateLimiter{
		buckets: make(map[string]*keyedLimiter),
		r:       r,
		b:       b,
		idleTTL: limiterIdleTTL,
		now:     time.Now,
	}
}

// Reserve takes one token for key. ok is false when the bucket is empty;
// retryAfter then says how long until the next token.
func (l *KeyedRateLimiter) Reserve(key string) (ok bool, retryAfter time.Duration) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	l.sweep(now)

	entry, exists := l.buckets[key]
	if !exists {
		entry = &keyedLimiter{limiter: rate.NewLimiter(l.r, l.b)}
		l.buckets[key] = entry
	}
	entry.lastSeen = now

	res := entry.limiter.ReserveN(now, 1)
	if !res.OK() {
		return false, time.Second
	}
	if delay := res.DelayFrom(now); delay > 0 {
		res.CancelAt(now)
		return false, delay
	}
	return true, 0
}

// Len reports the number of live buckets.
func (l *KeyedRateLimiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.buckets)
}

func (l *KeyedRateLimiter) sweep(now time.Time) {
	if now.Sub(l.lastSweep) < l.idleTTL {
		return
	}
	for key, entry := range l.buckets {
		if now.Sub(entry.lastSeen) > l.idleTTL {
			delete(l.buckets, key)
		}
	}
	l.lastSweep = now
}

// RateLimitByUser limits each authenticated caller, keyed by employee_id and
// falling back to user_id. r = request per detik, b = burst.
func RateLimitByUser(r rate.Limit, b int) gin.HandlerFunc {
	return RateLimitWith(NewKeyedRateLimiter(r, b))
}

func RateLimitWith(limiter *KeyedRateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetString("employee_id")
		if key == "" {
			key = c.GetString("user_id")
		}
		if key == "" {
			// belum login, auth middleware yang menolak
			c.Next()
			return
		}

		ok, wait := limiter.Reserve(key)
		if !ok {
			secs := int(math.Ceil(wait.Seconds()))
			if secs < 1 {
				secs = 1
			}
			c.Header("Retry-After", strconv.Itoa(secs))
			response.Error(c, http.StatusTooManyRequests, "RATE_LIMITED", "Terlalu banyak permintaan, coba lagi nanti", nil)
			c.Abort()
			return
		}
		c.Next()
	}
}
