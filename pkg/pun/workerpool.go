package pun

import (
	"context"
	"sync"
)

// job is a unit of work submitted to the workerPool.
type job func(ctx context.Context)

// workerPool runs jobs on a fixed number of goroutines. The matcher uses
// it to spread the candidate-versus-idiom comparison loop across CPUs;
// jobs write into pre-sized result slots, so no ordering is needed until
// the final sort.
type workerPool struct {
	jobs    chan job
	wg      sync.WaitGroup
	workers int
	closeMu sync.Mutex
	closed  bool
}

func newWorkerPool(workers int) *workerPool {
	if workers <= 0 {
		workers = 1
	}
	return &workerPool{
		jobs:    make(chan job, workers*2),
		workers: workers,
	}
}

// start begins the worker goroutines; they run until ctx is done or
// close is called.
func (p *workerPool) start(ctx context.Context) {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go func() {
			defer p.wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case j, ok := <-p.jobs:
					if !ok {
						return
					}
					j(ctx)
				}
			}
		}()
	}
}

// submit enqueues a job, returning false if the pool is closed or ctx is
// canceled while waiting for queue space.
func (p *workerPool) submit(ctx context.Context, j job) bool {
	p.closeMu.Lock()
	defer p.closeMu.Unlock()
	if p.closed {
		return false
	}
	select {
	case p.jobs <- j:
		return true
	case <-ctx.Done():
		return false
	}
}

// close stops accepting jobs and waits for workers to drain the queue.
func (p *workerPool) close() {
	p.closeMu.Lock()
	if p.closed {
		p.closeMu.Unlock()
		return
	}
	p.closed = true
	close(p.jobs)
	p.closeMu.Unlock()
	p.wg.Wait()
}
