package ratelimit

import (
	"context"
	"sync"
	"time"
)

// Limiter is the check-and-record contract sensitive endpoints depend on.
// Allow records the attempt and reports whether it is within the window; when
// denied, resetAt says when the caller may try again. Implementations may be
// process-local (best effort) or backed by a shared store (strict across
// instances) - callers only see this interface.
type Limiter interface {
	Allow(ctx context.Context, key string) (allowed bool, resetAt time.Time, err error)
}

// Memory is a single-instance sliding-window limiter. Good enough for one
// process and for tests; use the Redis limiter when running more than one
// instance.
type Memory struct {
	limit  int
	window time.Duration
	now    func() time.Time

	mu      sync.Mutex
	entries map[string][]time.Time
}

func NewMemory(limit int, window time.Duration) *Memory {
	return &Memory{
		limit:   limit,
		window:  window,
		now:     time.Now,
		entries: make(map[string][]time.Time),
	}
}

func (m *Memory) Allow(_ context.Context, key string) (bool, time.Time, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	cutoff := now.Add(-m.window)

	kept := m.entries[key][:0]
	for _, t := range m.entries[key] {
		if t.After(cutoff) {
			kept = append(kept, t)
		}
	}
	kept = append(kept, now)
	m.entries[key] = kept

	if len(kept) > m.limit {
		// Oldest recorded attempt leaving the window frees a slot
		return false, kept[0].Add(m.window), nil
	}
	return true, time.Time{}, nil
}
