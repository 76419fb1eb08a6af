package middleware

import (
	"math"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/heartmarshall/vitalog-backend/internal/domain"
	"github.com/heartmarshall/vitalog-backend/pkg/ctxutil"
)

const idleLimiterTTL = 10 * time.Minute

// RateLimiter throttles callers per minute. Authenticated callers are keyed
// by account, anonymous ones by client host.
type RateLimiter struct {
	mu      sync.Mutex
	callers map[string]*callerLimit
	now     func() time.Time
	done    chan struct{}
	once    sync.Once
}

type callerLimit struct {
	lim  *rate.Limiter
	seen time.Time
}

// NewRateLimiter starts a limiter that forgets idle callers every sweep.
// Stop must be called on shutdown.
func NewRateLimiter(sweep time.Duration) *RateLimiter {
	rl := &RateLimiter{
		callers: make(map[string]*callerLimit),
		now:     time.Now,
		done:    make(chan struct{}),
	}
	go rl.sweepLoop(sweep)
	return rl
}

func (rl *RateLimiter) Stop() {
	rl.once.Do(func() { close(rl.done) })
}

// Limit allows perMinute requests per caller with a burst of the same size.
// perMinute <= 0 turns limiting off.
func (rl *RateLimiter) Limit(perMinute int) Middleware {
	return func(next http.Handler) http.Handler {
		if perMinute <= 0 {
			return next
		}
		every := rate.Every(time.Minute / time.Duration(perMinute))

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if wait, ok := rl.take(callerKey(r), every, perMinute); !ok {
				w.Header().Set("Retry-After", strconv.Itoa(retrySeconds(wait)))
				WriteEnvelope(w, http.StatusTooManyRequests, Envelope{
					Code:    domain.StatusRateLimited,
					Message: "rate limit exceeded",
				})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// take consumes one token for key. On refusal it returns how long until a
// token is available.
func (rl *RateLimiter) take(key string, every rate.Limit, burst int) (time.Duration, bool) {
	now := rl.now()

	rl.mu.Lock()
	c, ok := rl.callers[key]
	if !ok {
		c = &callerLimit{lim: rate.NewLimiter(every, burst)}
		rl.callers[key] = c
	}
	c.seen = now
	rl.mu.Unlock()

	res := c.lim.ReserveN(now, 1)
	if d := res.DelayFrom(now); d > 0 {
		res.CancelAt(now)
		return d, false
	}
	return 0, true
}

func retrySeconds(d time.Duration) int {
	return max(1, int(math.Ceil(d.Seconds())))
}

func callerKey(r *http.Request) string {
	if id, ok := ctxutil.UserIDFromCtx(r.Context()); ok {
		return "account:" + id.String()
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}
	return "ip:" + host
}

func (rl *RateLimiter) sweepLoop(every time.Duration) {
	t := time.NewTicker(every)
	defer t.Stop()
	for {
		select {
		case <-rl.done:
			return
		case <-t.C:
			rl.forgetIdle()
		}
	}
}

func (rl *RateLimiter) forgetIdle() {
	cutoff := rl.now().Add(-idleLimiterTTL)
	rl.mu.Lock()
	defer rl.mu.Unlock()
	for key, c := range rl.callers {
		if c.seen.Before(cutoff) {
			delete(rl.callers, key)
		}
	}
}
