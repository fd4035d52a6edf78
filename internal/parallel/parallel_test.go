package parallel

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFor_CoversRangeOnce(t *testing.T) {
	cfg := Config{Enabled: true, NumWorkers: 4, MinWork: 8}

	n := 1000
	seen := make([]int32, n)
	For(n, 1, cfg, func(start, end int) {
		for i := start; i < end; i++ {
			atomic.AddInt32(&seen[i], 1)
		}
	})

	for i, c := range seen {
		require.Equal(t, int32(1), c, "index %d", i)
	}
}

func TestFor_SplitsLargeWork(t *testing.T) {
	cfg := Config{Enabled: true, NumWorkers: 4, MinWork: 10}

	var calls int32
	For(8, 100, cfg, func(start, end int) {
		atomic.AddInt32(&calls, 1)
	})

	assert.Equal(t, int32(4), calls)
}

func TestFor_Sequential(t *testing.T) {
	cfg := Config{Enabled: false}

	var calls int
	For(100, 1<<20, cfg, func(start, end int) {
		calls++
		assert.Equal(t, 0, start)
		assert.Equal(t, 100, end)
	})

	assert.Equal(t, 1, calls)
}

func TestFor_SmallWork(t *testing.T) {
	// Too little work falls back to a single call.
	cfg := DefaultConfig()
	cfg.Enabled = true
	cfg.NumWorkers = 8

	var calls int
	For(3, 10, cfg, func(start, end int) {
		calls++
	})

	assert.Equal(t, 1, calls)
}

func TestFor_Empty(t *testing.T) {
	For(0, 1, DefaultConfig(), func(start, end int) {
		t.Fatal("f must not be called for an empty range")
	})
}

func TestFor_PanicReachesCaller(t *testing.T) {
	cfg := Config{Enabled: true, NumWorkers: 4, MinWork: 1}

	var done int32
	assert.PanicsWithError(t, "parallel.For: range [6, 8): boom", func() {
		For(8, 1, cfg, func(start, end int) {
			if start == 6 {
				panic("boom")
			}
			atomic.AddInt32(&done, 1)
		})
	})
	assert.Equal(t, int32(3), atomic.LoadInt32(&done), "the other ranges still complete")
}
