package token_bucket

import (
	"sync"
	"time"
)

/*
Отдельное ведро на каждый ключ (клиента). Токены копятся дробно, поэтому медленный
refillRate (меньше одного токена в секунду) тоже работает.
*/

type Limiter interface {
	Allow(key string) bool
}

const sweepInterval = time.Minute

type bucket struct {
	tokens     float64
	lastRefill time.Time
}

type TokenBucket struct {
	capacity   float64
	refillRate float64
	buckets    map[string]*bucket
	lastSweep  time.Time
	now        func() time.Time
	mu         sync.Mutex
}

func NewTokenBucket(capacity int, refillRate float64) *TokenBucket {
	return newTokenBucket(capacity, refillRate, time.Now)
}

func newTokenBucket(capacity int, refillRate float64, now func() time.Time) *TokenBucket {
	return &TokenBucket{
		capacity:   float64(capacity),
		refillRate: refillRate,
		buckets:    make(map[string]*bucket),
		lastSweep:  now(),
		now:        now,
	}
}

func (t *TokenBucket) Allow(key string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.now()
	t.sweep(now)

	b, ok := t.buckets[key]
	if !ok {
		b = &bucket{tokens: t.capacity, lastRefill: now}
		t.buckets[key] = b
	}
	t.refill(b, now)

	if b.tokens >= 1 {
		b.tokens--
		return true
	}
	return false
}

// Len возвращает число отслеживаемых ключей.
func (t *TokenBucket) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	return len(t.buckets)
}

func (t *TokenBucket) refill(b *bucket, now time.Time) {
	elapsed := now.Sub(b.lastRefill).Seconds()
	if elapsed <= 0 {
		return
	}

	b.tokens += elapsed * t.refillRate
	if b.tokens > t.capacity {
		b.tokens = t.capacity
	}
	b.lastRefill = now
}

// sweep удаляет ведра, которые уже успели наполниться: новое ведро для того же ключа будет таким же.
func (t *TokenBucket) sweep(now time.Time) {
	if now.Sub(t.lastSweep) < sweepInterval {
		return
	}
	t.lastSweep = now

	for key, b := range t.buckets {
		if b.tokens+now.Sub(b.lastRefill).Seconds()*t.refillRate >= t.capacity {
			delete(t.buckets, key)
		}
	}
}
