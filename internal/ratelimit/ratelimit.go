package ratelimit

import (
	"fmt"
	"sync"
	"time"
)

// Limiter implements a simple in-memory fixed window rate limiter
type Limiter struct {
	mu       sync.RWMutex
	counters map[string]*counter
	window   time.Duration
	max      int
	stop     chan struct{}
	once     sync.Once
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
		stop:     make(chan struct{}),
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

	c, exists := l.counters[key]
	if !exists || time.Now().After(c.expiresAt) {
		return l.max
	}

	return max(l.max-c.count, 0)
}

// Stop ends the cleanup goroutine. Allow keeps working afterwards.
func (l *Limiter) Stop() {
	l.once.Do(func() { close(l.stop) })
}

// cleanup periodically removes expired counters
func (l *Limiter) cleanup() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-l.stop:
			return
		case <-ticker.C:
			l.mu.Lock()
			now := time.Now()
			for key, c := range l.counters {
				if now.After(c.expiresAt) {
					delete(l.counters, key)
				}
			}
			l.mu.Unlock()
		}
	}
}

// Config sets per minute budgets for report requests. Zero disables a limit.
type Config struct {
	IPPerMinute        int `mapstructure:"ip_per_minute"`
	PublisherPerMinute int `mapstructure:"publisher_per_minute"`
}

// MultiKeyLimiter applies independent limits per client IP and per publisher
type MultiKeyLimiter struct {
	ip        *Limiter
	publisher *Limiter
}

func NewMultiKeyLimiter(c Config) *MultiKeyLimiter {
	m := &MultiKeyLimiter{}
	if c.IPPerMinute > 0 {
		m.ip = NewLimiter(time.Minute, c.IPPerMinute)
	}
	if c.PublisherPerMinute > 0 {
		m.publisher = NewLimiter(time.Minute, c.PublisherPerMinute)
	}
	return m
}

// CheckReport verifies a report request from ip on behalf of publisher ("" for admin requests).
func (m *MultiKeyLimiter) CheckReport(ip, publisher string) error {
	if m.ip != nil && !m.ip.Allow(ip) {
		return fmt.Errorf("too many report requests from this IP address, please slow down")
	}
	if publisher != "" && m.publisher != nil && !m.publisher.Allow(publisher) {
		return fmt.Errorf("too many report requests for this publisher, please slow down")
	}
	return nil
}

func (m *MultiKeyLimiter) Stop() {
	if m.ip != nil {
		m.ip.Stop()
	}
	if m.publisher != nil {
		m.publisher.Stop()
	}
}
