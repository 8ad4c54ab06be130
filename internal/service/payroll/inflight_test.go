package payroll

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInflightGuard_SecondAcquireRefused(t *testing.T) {
	g := newInflightGuard()

	assert.True(t, g.TryAcquire("emp-1", "per-1"))
	assert.False(t, g.TryAcquire("emp-1", "per-1"))

	// Different employee or period is an independent slot.
	assert.True(t, g.TryAcquire("emp-2", "per-1"))
	assert.True(t, g.TryAcquire("emp-1", "per-2"))
}

func TestInflightGuard_ReleaseReopensSlot(t *testing.T) {
	g := newInflightGuard()

	assert.True(t, g.TryAcquire("emp-1", "per-1"))
	g.Release("emp-1", "per-1")
	assert.True(t, g.TryAcquire("emp-1", "per-1"))
}

func TestInflightGuard_ExactlyOneConcurrentWinner(t *testing.T) {
	g := newInflightGuard()

	var wins int64
	var wg sync.WaitGroup
	start := make(chan struct{})

	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			if g.TryAcquire("emp-1", "per-1") {
				atomic.AddInt64(&wins, 1)
			}
		}()
	}

	close(start)
	wg.Wait()

	assert.Equal(t, int64(1), atomic.LoadInt64(&wins))
}
