package request

import "context"

// bulkhead caps the number of in-flight requests sharing one executor.
// A nil bulkhead admits everything.
type bulkhead struct {
	sem chan struct{}
}

func newBulkhead(maxConcurrent int) *bulkhead {
	if maxConcurrent <= 0 {
		return nil
	}
	return &bulkhead{sem: make(chan struct{}, maxConcurrent)}
}

// acquire blocks until a slot frees up or the context ends.
func (b *bulkhead) acquire(ctx context.Context) error {
	if b == nil {
		return nil
	}
	select {
	case b.sem <- struct{}{}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (b *bulkhead) release() {
	if b == nil {
		return
	}
	<-b.sem
}
