package ratelimit

import (
	"sync"
	"time"

	gerr "github.com/jekabolt/wholesale-portal/internal/errors"
)

// Limiter implements a simple in-memory sliding window rate limiter
type Limiter struct {
	mu       sync.RWMutex
	counters map[string]*counter
	window   time.Duration
	max      int
	done     chan struct{}
	stopOnce sync.Once
}

type counter struct {
	count     int
	expiresAt time.Time
}

// NewLimiter creates a new rate limiter with the specified window and max requests
func NewLimiter(window time.Duration, max int) *Limiter {
	l := &Limiter{
		counters: make(map[string]*counter),
		window:   window,
		max:      max,
		done:     make(chan struct{}),
	}
	go l.cleanup()
	return l
}

// Allow checks if a request for the given key is allowed
func (l *Limiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	c, exists := l.counters[key]

	if !exists || now.After(c.expiresAt) {
		l.counters[key] = &counter{
			count:     1,
			expiresAt: now.Add(l.window),
		}
		return true
	}

	if c.count >= l.max {
		return false
	}

	c.count++
	return true
}

// GetRemaining returns the number of remaining requests for the given key
func (l *Limiter) GetRemaining(key string) int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	now := time.Now()
	c, exists := l.counters[key]

	if !exists || now.After(c.expiresAt) {
		return l.max
	}

	remaining := l.max - c.count
	if remaining < 0 {
		return 0
	}
	return remaining
}

// cleanup periodically removes expired counters
func (l *Limiter) cleanup() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			l.mu.Lock()
			now := time.Now()
			for key, c := range l.counters {
				if now.After(c.expiresAt) {
					delete(l.counters, key)
				}
			}
			l.mu.Unlock()
		case <-l.done:
			return
		}
	}
}

// Stop ends the cleanup goroutine.
func (l *Limiter) Stop() {
	l.stopOnce.Do(func() { close(l.done) })
}

// Config holds per retailer limits. Zero values fall back to defaults.
type Config struct {
	OrdersPerHour   int `mapstructure:"orders_per_hour"`
	MessagesPerHour int `mapstructure:"messages_per_hour"`
	SamplesPerDay   int `mapstructure:"samples_per_day"`
	LoginsPerMinute int `mapstructure:"logins_per_minute"`
}

const (
	keyOrder   = "retailer_order"
	keyMessage = "retailer_message"
	keySample  = "retailer_sample"
)

func orDefault(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}

// MultiKeyLimiter throttles retailer actions that trigger email to the vendor team.
type MultiKeyLimiter struct {
	limiters        map[string]*Limiter
	loginsPerMinute int
}

// NewMultiKeyLimiter creates a multi-key limiter from config
func NewMultiKeyLimiter(c *Config) *MultiKeyLimiter {
	if c == nil {
		c = &Config{}
	}
	return &MultiKeyLimiter{
		limiters: map[string]*Limiter{
			keyOrder:   NewLimiter(time.Hour, orDefault(c.OrdersPerHour, 20)),
			keyMessage: NewLimiter(time.Hour, orDefault(c.MessagesPerHour, 30)),
			keySample:  NewLimiter(24*time.Hour, orDefault(c.SamplesPerDay, 3)),
		},
		loginsPerMinute: orDefault(c.LoginsPerMinute, 10),
	}
}

// LoginsPerMinute is the per IP budget for the auth routes. Those are
// throttled by the router since there is no retailer to key on yet.
func (m *MultiKeyLimiter) LoginsPerMinute() int {
	return m.loginsPerMinute
}

func (m *MultiKeyLimiter) check(kind, key string) error {
	if !m.limiters[kind].Allow(key) {
		return gerr.TooManyRequests
	}
	return nil
}

// CheckOrderCreation verifies a retailer may place another order.
func (m *MultiKeyLimiter) CheckOrderCreation(retailerKey string) error {
	return m.check(keyOrder, retailerKey)
}

// CheckMessage verifies a retailer may post another message.
func (m *MultiKeyLimiter) CheckMessage(retailerKey string) error {
	return m.check(keyMessage, retailerKey)
}

// CheckSampleRequest verifies a retailer may file another sample request.
func (m *MultiKeyLimiter) CheckSampleRequest(retailerKey string) error {
	return m.check(keySample, retailerKey)
}

// RemainingOrders is how many more orders a retailer may place in the
// current window.
func (m *MultiKeyLimiter) RemainingOrders(retailerKey string) int {
	return m.limiters[keyOrder].GetRemaining(retailerKey)
}

func (m *MultiKeyLimiter) Stop() {
	for _, l := range m.limiters {
		l.Stop()
	}
}
