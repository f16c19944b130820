package puzzler

import (
	"context"
	"sync"
)

func feed[T any](ctx context.Context, items []T) (<-chan T, <-chan error) {
	out := make(chan T)
	errc := make(chan error, 1)
	go func() {
		defer close(out)
		defer close(errc)
		for _, item := range items {
			select {
			case out <- item:
			case <-ctx.Done():
				errc <- ctx.Err()
				return
			}
		}
	}()
	return out, errc
}

func worker[T any](ctx context.Context, in <-chan T, fn func(T) error) <-chan error {
	errc := make(chan error, 1)
	go func() {
		defer close(errc)
		for item := range in {
			if err := ctx.Err(); err != nil {
				errc <- err
				return
			}
			if err := fn(item); err != nil {
				errc <- err
				return
			}
		}
	}()
	return errc
}

// run feeds items to n workers calling fn and returns the first error. Any
// error cancels the remaining work.
func run[T any](ctx context.Context, items []T, n int, fn func(T) error) error {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	if n < 1 {
		n = 1
	}

	in, errc := feed(ctx, items)
	errcList := []<-chan error{errc}

	for i := 0; i < n; i++ {
		errcList = append(errcList, worker(ctx, in, fn))
	}

	return waitForPipeline(cancelFunc, errcList...)
}

// waitForPipeline drains every stage so nothing is still writing once it
// returns. The first error cancels the pipeline and is the one reported.
func waitForPipeline(cancelFunc context.CancelFunc, errs ...<-chan error) error {
	var first error
	for err := range mergeErrors(errs...) {
		if err != nil && first == nil {
			first = err
			cancelFunc()
		}
	}
	return first
}

func mergeErrors(cs ...<-chan error) <-chan error {
	var wg sync.WaitGroup
	out := make(chan error, len(cs))
	wg.Add(len(cs))
	for _, c := range cs {
		go func(c <-chan error) {
			for n := range c {
				out <- n
			}
			wg.Done()
		}(c)
	}
	go func() {
		wg.Wait()
		close(out)
	}()
	return out
}
