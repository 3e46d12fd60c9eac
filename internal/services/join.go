// Package services: concurrent check join.
//
// Mutations in this API depend on one or more independent existence checks
// (does the article exist? the author? the topic?) that are issued together
// with, or immediately before, the primary statement. runAll is the fan-out/
// fan-in primitive behind that: it spawns every function, waits for all of
// them to settle, and only then resolves the aggregate outcome.
package services

import (
	"context"
	"sync"
)

// runAll executes fns concurrently and waits for every one of them to finish.
// The returned error is the one from the lowest-indexed failing fn, so
// callers encode fault priority by argument order (existence checks first).
// This keeps the reported fault deterministic across repeated identical
// requests even when several checks fail, and keeps latency bounded by the
// slowest check rather than their sum.
//
// Partial completion is never observable: even after one fn has failed, the
// others run to completion before any outcome is returned.
func runAll(ctx context.Context, fns ...func(context.Context) error) error {
	if len(fns) == 1 {
		return fns[0](ctx)
	}

	errs := make([]error, len(fns))
	var wg sync.WaitGroup
	wg.Add(len(fns))
	for i, fn := range fns {
		go func(i int, fn func(context.Context) error) {
			defer wg.Done()
			errs[i] = fn(ctx)
		}(i, fn)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
