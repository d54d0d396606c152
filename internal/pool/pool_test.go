package pool

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
)

func TestPoolRunsEveryTask(t *testing.T) {
	p := New(4)
	p.Start(context.Background())

	var ran int64
	for i := 0; i < 100; i++ {
		p.Submit(func(ctx context.Context) {
			atomic.AddInt64(&ran, 1)
		})
	}
	p.Wait()
	p.Stop()

	if ran != 100 {
		t.Errorf("expected 100 tasks to run, got %d", ran)
	}
	if stats := p.GetStats(); stats.TasksCompleted != 100 {
		t.Errorf("expected 100 completed in stats, got %d", stats.TasksCompleted)
	}
}

func TestPoolBoundsConcurrency(t *testing.T) {
	p := New(3)
	p.Start(context.Background())

	var mu sync.Mutex
	active, peak := 0, 0
	gate := make(chan struct{})
	for i := 0; i < 30; i++ {
		p.Submit(func(ctx context.Context) {
			mu.Lock()
			active++
			if active > peak {
				peak = active
			}
			mu.Unlock()

			<-gate

			mu.Lock()
			active--
			mu.Unlock()
		})
	}
	close(gate)
	p.Wait()
	p.Stop()

	if peak > 3 {
		t.Errorf("observed %d concurrent tasks, want at most 3", peak)
	}
}

func TestSingleWorkerPreservesOrder(t *testing.T) {
	p := New(1)
	p.Start(context.Background())

	var got []int
	for i := 0; i < 50; i++ {
		i := i
		p.Submit(func(ctx context.Context) {
			got = append(got, i)
		})
	}
	p.Wait()
	p.Stop()

	for i, v := range got {
		if v != i {
			t.Fatalf("task %d ran out of order (position %d)", v, i)
		}
	}
}

func TestDefaultSize(t *testing.T) {
	if New(0).GetStats().Workers < 1 {
		t.Error("expected at least one worker for size 0")
	}
	if got := New(7).GetStats().Workers; got != 7 {
		t.Errorf("expected 7 workers, got %d", got)
	}
}
