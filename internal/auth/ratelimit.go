package auth

import (
	"sync"
	"time"
)

// loginLimiter: istemci başına 5 dakikada en fazla 5 giriş denemesi.
type loginLimiter struct {
	mu       sync.Mutex
	attempts map[string][]time.Time
	window   time.Duration
	limit    int
}

func newLoginLimiter() *loginLimiter {
	return &loginLimiter{
		attempts: make(map[string][]time.Time),
		window:   5 * time.Minute,
		limit:    5,
	}
}

// Allow: deneme hakkı varsa kaydedip true döner; limit dolmuşsa false.
func (l *loginLimiter) Allow(identifier string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	cutoff := now.Add(-l.window)

	recent := l.attempts[identifier][:0]
	for _, at := range l.attempts[identifier] {
		if at.After(cutoff) {
			recent = append(recent, at)
		}
	}

	if len(recent) >= l.limit {
		l.attempts[identifier] = recent
		return false
	}

	l.attempts[identifier] = append(recent, now)
	return true
}
