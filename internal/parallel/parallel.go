// Package parallel splits independent kernel work across goroutines.
//
// It is an implementation detail of individual kernels: callers see a
// synchronous function that returns once all work is done.
package parallel

import (
	"runtime"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// Config controls parallel execution behavior.
type Config struct {
	Enabled    bool // Whether parallel execution is enabled.
	NumWorkers int  // Maximum number of concurrent goroutines.
	MinWork    int  // Minimum work (in elements) per goroutine to avoid overhead.
}

// DefaultConfig returns sensible defaults based on CPU count.
func DefaultConfig() Config {
	n := runtime.NumCPU()
	return Config{
		Enabled:    n > 1,
		NumWorkers: n,
		MinWork:    1 << 14,
	}
}

// For calls f on contiguous ranges covering [0, n). costPerItem is the amount
// of work of one item and decides whether splitting pays off; with too little
// work f is called once with the full range on the calling goroutine.
//
// f must only write state owned by its range. A panic in f is re-raised on
// the calling goroutine once every range has finished.
func For(n, costPerItem int, cfg Config, f func(start, end int)) {
	if n <= 0 {
		return
	}
	costPerItem = max(costPerItem, 1)
	if !cfg.Enabled || cfg.NumWorkers < 2 || n < 2 || n*costPerItem < 2*cfg.MinWork {
		f(0, n)
		return
	}

	chunk := max((n+cfg.NumWorkers-1)/cfg.NumWorkers, (cfg.MinWork+costPerItem-1)/costPerItem, 1)
	var g errgroup.Group
	g.SetLimit(cfg.NumWorkers)
	for start := 0; start < n; start += chunk {
		end := min(start+chunk, n)
		g.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = errors.Errorf("parallel.For: range [%d, %d): %v", start, end, r)
				}
			}()
			f(start, end)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		panic(err)
	}
}
