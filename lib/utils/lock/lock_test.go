package lock

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestWithDelay(t *testing.T) {
	t.Run(`free lock runs code`, func(t *testing.T) {
		executed := false
		success, err := WithDelay(context.Background(), "key-1", time.Second, func() error {
			executed = true
			return nil
		})
		require.Nil(t, err)
		require.True(t, success)
		require.True(t, executed)
	})

	t.Run(`busy lock times out`, func(t *testing.T) {
		started := make(chan struct{})
		release := make(chan struct{})
		go func() {
			_, _ = WithDelay(context.Background(), "key-2", time.Second, func() error {
				close(started)
				<-release
				return nil
			})
		}()
		<-started
		success, err := WithDelay(context.Background(), "key-2", 100*time.Millisecond, func() error {
			return nil
		})
		close(release)
		require.Nil(t, err)
		require.False(t, success)
	})

	t.Run(`concurrent callers are serialized`, func(t *testing.T) {
		var inFlight, maxInFlight int32
		wg := sync.WaitGroup{}
		for i := 0; i < 5; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, _ = WithDelay(context.Background(), "key-3", time.Second, func() error {
					current := atomic.AddInt32(&inFlight, 1)
					if current > atomic.LoadInt32(&maxInFlight) {
						atomic.StoreInt32(&maxInFlight, current)
					}
					time.Sleep(10 * time.Millisecond)
					atomic.AddInt32(&inFlight, -1)
					return nil
				})
			}()
		}
		wg.Wait()
		require.Equal(t, int32(1), atomic.LoadInt32(&maxInFlight))
	})
}
