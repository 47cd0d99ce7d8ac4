package api

import (
	"strings"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
)

const defaultLimiterMaxKeys = 10000

// attemptLimiter counts recent failures per key. Stale keys are swept at most
// once per window, and the number of tracked keys never exceeds maxKeys.
type attemptLimiter struct {
	mu        sync.Mutex
	attempts  map[string][]time.Time
	maxKeys   int
	lastSweep time.Time
}

func newAttemptLimiter() *attemptLimiter {
	return &attemptLimiter{
		attempts: make(map[string][]time.Time),
		maxKeys:  defaultLimiterMaxKeys,
	}
}

func (limiter *attemptLimiter) tooManyRecent(key string, now time.Time, limit int, window time.Duration) bool {
	limiter.mu.Lock()
	defer limiter.mu.Unlock()

	pruned := limiter.pruneLocked(key, now, window)
	return len(pruned) >= limit
}

func (limiter *attemptLimiter) addFailure(key string, now time.Time, window time.Duration) {
	limiter.mu.Lock()
	defer limiter.mu.Unlock()

	if now.Sub(limiter.lastSweep) >= window {
		limiter.sweepLocked(now, window)
	}

	pruned := limiter.pruneLocked(key, now, window)
	if len(pruned) == 0 && len(limiter.attempts) >= limiter.maxKeys {
		limiter.sweepLocked(now, window)
		if len(limiter.attempts) >= limiter.maxKeys {
			limiter.evictOldestLocked()
		}
	}
	pruned = append(pruned, now)
	limiter.attempts[key] = pruned
}

func (limiter *attemptLimiter) sweepLocked(now time.Time, window time.Duration) {
	threshold := now.Add(-window)
	for key, values := range limiter.attempts {
		if len(values) == 0 || !values[len(values)-1].After(threshold) {
			delete(limiter.attempts, key)
		}
	}
	limiter.lastSweep = now
}

func (limiter *attemptLimiter) evictOldestLocked() {
	oldestKey := ""
	var oldest time.Time
	for key, values := range limiter.attempts {
		latest := values[len(values)-1]
		if oldestKey == "" || latest.Before(oldest) {
			oldestKey = key
			oldest = latest
		}
	}
	delete(limiter.attempts, oldestKey)
}

func (limiter *attemptLimiter) trackedKeys() int {
	limiter.mu.Lock()
	defer limiter.mu.Unlock()
	return len(limiter.attempts)
}

func (limiter *attemptLimiter) reset(key string) {
	limiter.mu.Lock()
	defer limiter.mu.Unlock()
	delete(limiter.attempts, key)
}

func (limiter *attemptLimiter) pruneLocked(key string, now time.Time, window time.Duration) []time.Time {
	values := limiter.attempts[key]
	if len(values) == 0 {
		return []time.Time{}
	}

	threshold := now.Add(-window)
	pruned := make([]time.Time, 0, len(values))
	for _, value := range values {
		if value.After(threshold) {
			pruned = append(pruned, value)
		}
	}

	if len(pruned) == 0 {
		delete(limiter.attempts, key)
		return []time.Time{}
	}

	limiter.attempts[key] = pruned
	return pruned
}

// loginLimiterKey scopes failed logins to one client and one account, so a
// noisy client cannot lock other people out.
func loginLimiterKey(c *fiber.Ctx, email string) string {
	ip := strings.TrimSpace(c.IP())
	if ip == "" {
		ip = "unknown"
	}
	return ip + "|" + strings.ToLower(strings.TrimSpace(email))
}
