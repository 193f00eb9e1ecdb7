package sim

import (
	"context"
	"sync"
)

// Sweep runs one independent simulator per time factor concurrently. Each
// simulator owns its own system, so nothing is shared between goroutines.
// Results are returned in the order of factors.
func Sweep(ctx context.Context, factors []float64, cfg Config, build func(tf float64) (*Simulator, error)) ([]*Result, error) {
	results := make([]*Result, len(factors))
	errs := make([]error, len(factors))

	var wg sync.WaitGroup
	for i, tf := range factors {
		wg.Add(1)
		go func(idx int, tf float64) {
			defer wg.Done()

			s, err := build(tf)
			if err != nil {
				errs[idx] = err
				return
			}
			defer s.System().Cleanup()
			results[idx], errs[idx] = s.Run(ctx, cfg)
		}(i, tf)
	}

	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return results, nil
}
