package syncs

import (
	"context"
	"errors"
	"sync"
)

// Semaphore bounds the number of concurrent holders to its capacity.
type Semaphore chan struct{}

func NewSemaphore(n int) Semaphore {
	if n < 1 {
		n = 1
	}
	return make(chan struct{}, n)
}

// Acquire blocks until a slot is free or ctx is done.
func (s Semaphore) Acquire(ctx context.Context) error {
	select {
	case s <- struct{}{}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s Semaphore) Release() {
	<-s
}

// Each calls fn on every item, at most cap(s) at a time, and returns the
// errors joined in item order.
func Each[T any](ctx context.Context, s Semaphore, items []T, fn func(ctx context.Context, i int, item T) error) error {
	errs := make([]error, len(items))
	var wg sync.WaitGroup
	for i, item := range items {
		if err := s.Acquire(ctx); err != nil {
			errs[i] = err
			continue
		}
		wg.Go(func() {
			defer s.Release()
			errs[i] = fn(ctx, i, item)
		})
	}
	wg.Wait()
	return errors.Join(errs...)
}
