// Package pool fans scan tasks out over a fixed set of workers.
package pool

import (
	"context"
	"runtime"
	"sync"
)

// Task represents a unit of work for the pool.
type Task func(ctx context.Context)

// Pool runs tasks on a fixed number of workers. Results never depend on
// the worker count; callers collect into position-indexed slots.
type Pool struct {
	size    int
	tasks   chan Task
	workers sync.WaitGroup
	pending sync.WaitGroup

	mu    sync.Mutex
	stats Stats
}

// Stats holds runtime counters for the pool.
type Stats struct {
	Workers        int
	TasksCompleted int64
}

// New creates a pool of size workers. Size 0 or less means one worker
// per available CPU. Size 1 runs tasks sequentially in submission
// order.
func New(size int) *Pool {
	if size < 1 {
		size = runtime.GOMAXPROCS(0)
	}
	return &Pool{
		size:  size,
		tasks: make(chan Task, 256),
	}
}

// Start launches the workers.
func (p *Pool) Start(ctx context.Context) {
	for i := 0; i < p.size; i++ {
		p.workers.Add(1)
		go p.worker(ctx)
	}
}

// Submit queues one task. Call only between Start and Stop.
func (p *Pool) Submit(t Task) {
	p.pending.Add(1)
	p.tasks <- t
}

// Wait blocks until every submitted task has completed.
func (p *Pool) Wait() {
	p.pending.Wait()
}

// Stop shuts the pool down and waits for the workers to exit. No
// Submit may follow.
func (p *Pool) Stop() {
	close(p.tasks)
	p.workers.Wait()
}

// GetStats returns current pool counters.
func (p *Pool) GetStats() Stats {
	p.mu.Lock()
	defer p.mu.Unlock()
	s := p.stats
	s.Workers = p.size
	return s
}

func (p *Pool) worker(ctx context.Context) {
	defer p.workers.Done()
	for task := range p.tasks {
		task(ctx)
		p.mu.Lock()
		p.stats.TasksCompleted++
		p.mu.Unlock()
		p.pending.Done()
	}
}
