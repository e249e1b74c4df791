// Package lock serializes work on a single order across requests.
package lock

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/bsm/redislock"
)

// ErrNotObtained is returned when a lock could not be acquired in time
var ErrNotObtained = errors.New("lock not obtained")

// Locker hands out exclusive locks by key
type Locker interface {
	Lock(ctx context.Context, key string) (unlock func(), err error)
}

var (
	_ Locker = (*RedisLocker)(nil)
	_ Locker = (*LocalLocker)(nil)
)

// RedisLocker holds locks in Redis so every API replica sees them
type RedisLocker struct {
	client  *redislock.Client
	prefix  string
	ttl     time.Duration
	timeout time.Duration
	backoff time.Duration
}

// NewRedisLocker creates a locker on top of a Redis client. ttl bounds how
// long a crashed holder keeps the lock, timeout how long Lock waits.
func NewRedisLocker(client redislock.RedisClient, ttl, timeout time.Duration) *RedisLocker {
	return &RedisLocker{
		client:  redislock.New(client),
		prefix:  "erp:lock:",
		ttl:     ttl,
		timeout: timeout,
		backoff: 50 * time.Millisecond,
	}
}

func (l *RedisLocker) Lock(ctx context.Context, key string) (func(), error) {
	obtainCtx, cancel := context.WithTimeout(ctx, l.timeout)
	defer cancel()

	lk, err := l.client.Obtain(obtainCtx, l.prefix+key, l.ttl, &redislock.Options{
		RetryStrategy: redislock.LinearBackoff(l.backoff),
	})
	if errors.Is(err, redislock.ErrNotObtained) || errors.Is(err, context.DeadlineExceeded) {
		return nil, fmt.Errorf("%w: %s", ErrNotObtained, key)
	}
	if err != nil {
		return nil, err
	}

	return func() {
		_ = lk.Release(context.Background())
	}, nil
}

// LocalLocker is an in-process keyed mutex for single-replica deployments
type LocalLocker struct {
	mu    sync.Mutex
	locks map[string]*localEntry
}

type localEntry struct {
	sem  chan struct{}
	refs int
}

// NewLocalLocker creates an in-process locker
func NewLocalLocker() *LocalLocker {
	return &LocalLocker{locks: make(map[string]*localEntry)}
}

func (l *LocalLocker) Lock(ctx context.Context, key string) (func(), error) {
	l.mu.Lock()
	e, ok := l.locks[key]
	if !ok {
		e = &localEntry{sem: make(chan struct{}, 1)}
		l.locks[key] = e
	}
	e.refs++
	l.mu.Unlock()

	select {
	case e.sem <- struct{}{}:
		var once sync.Once
		return func() {
			once.Do(func() {
				<-e.sem
				l.release(key, e)
			})
		}, nil
	case <-ctx.Done():
		l.release(key, e)
		return nil, fmt.Errorf("%w: %s: %v", ErrNotObtained, key, ctx.Err())
	}
}

func (l *LocalLocker) release(key string, e *localEntry) {
	l.mu.Lock()
	defer l.mu.Unlock()
	e.refs--
	if e.refs == 0 {
		delete(l.locks, key)
	}
}

// Held returns the number of keys currently locked or waited on
func (l *LocalLocker) Held() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.locks)
}
