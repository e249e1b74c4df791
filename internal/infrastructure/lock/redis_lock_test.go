package lock

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedisLocker(t *testing.T, timeout time.Duration) (*RedisLocker, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisLocker(client, 10*time.Second, timeout), mr
}

func TestRedisLocker(t *testing.T) {
	ctx := context.Background()

	t.Run("held key is not obtained until released", func(t *testing.T) {
		l, mr := newTestRedisLocker(t, 150*time.Millisecond)

		unlock, err := l.Lock(ctx, "acknowledgement:1")
		require.NoError(t, err)
		assert.True(t, mr.Exists("erp:lock:acknowledgement:1"))
		assert.Greater(t, mr.TTL("erp:lock:acknowledgement:1"), time.Duration(0))

		_, err = l.Lock(ctx, "acknowledgement:1")
		assert.ErrorIs(t, err, ErrNotObtained)

		unlock()
		assert.False(t, mr.Exists("erp:lock:acknowledgement:1"))

		again, err := l.Lock(ctx, "acknowledgement:1")
		require.NoError(t, err)
		again()
	})

	t.Run("keys are independent", func(t *testing.T) {
		l, _ := newTestRedisLocker(t, 150*time.Millisecond)

		first, err := l.Lock(ctx, "acknowledgement:1")
		require.NoError(t, err)
		defer first()

		second, err := l.Lock(ctx, "purchase_order:1")
		require.NoError(t, err)
		second()
	})

	t.Run("waiter gets the lock once it is released", func(t *testing.T) {
		l, _ := newTestRedisLocker(t, 2*time.Second)

		unlock, err := l.Lock(ctx, "invoice:1")
		require.NoError(t, err)
		go func() {
			time.Sleep(100 * time.Millisecond)
			unlock()
		}()

		next, err := l.Lock(ctx, "invoice:1")
		require.NoError(t, err)
		next()
	})
}
