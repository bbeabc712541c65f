package snowflake

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestInit mutates the package node and must not run in parallel.
func TestInit(t *testing.T) {
	require.NoError(t, Init(1))
	require.Error(t, Init(-1))
	require.Error(t, Init(1024))
	require.NoError(t, Init(0))
}

func TestNextID_MonotonicAndUnique(t *testing.T) {
	require.NoError(t, Init(0))

	seen := make(map[int64]struct{}, 2000)
	prev := NextID()
	for i := 0; i < 2000; i++ {
		id := NextID()
		require.Greater(t, id, prev)
		_, dup := seen[id]
		require.False(t, dup, "duplicate id %d", id)
		seen[id] = struct{}{}
		prev = id
	}
}

func TestNextID_Concurrent(t *testing.T) {
	require.NoError(t, Init(0))

	const goroutines = 8
	const perGoroutine = 500

	var wg sync.WaitGroup
	var mu sync.Mutex
	ids := make(map[int64]struct{}, goroutines*perGoroutine)

	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			local := make([]int64, 0, perGoroutine)
			for i := 0; i < perGoroutine; i++ {
				local = append(local, NextID())
			}
			mu.Lock()
			for _, id := range local {
				ids[id] = struct{}{}
			}
			mu.Unlock()
		}()
	}
	wg.Wait()

	require.Len(t, ids, goroutines*perGoroutine)
}
