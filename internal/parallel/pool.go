package parallel

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// minQueueDepth bounds how small a worker queue may be.
const minQueueDepth = 8

// task is one unit of a stage. done is the stage's completion counter.
type task struct {
	fn   func()
	done *sync.WaitGroup
}

func (t task) run() {
	defer t.done.Done()
	t.fn()
}

// WorkerPool is a fixed-size pool of goroutines for data-parallel stages.
//
// Each worker owns a queue. ExecuteAll deals tasks round-robin across the
// queues; an idle worker takes from its own queue first and steals from the
// others before it blocks, so a slow row or tile does not stall the stage.
//
// Thread safety: WorkerPool is safe for concurrent use.
type WorkerPool struct {
	workers int
	queues  []chan task
	quit    chan struct{}
	wg      sync.WaitGroup

	// gate is held for reading by every ExecuteAll in flight and for writing
	// by Close, so a stage is never split between workers and the caller.
	gate    sync.RWMutex
	running atomic.Bool
}

// NewWorkerPool starts a pool with the given number of workers.
// If workers is 0 or negative, GOMAXPROCS is used.
func NewWorkerPool(workers int) *WorkerPool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	depth := max(workers*4, minQueueDepth)

	p := &WorkerPool{
		workers: workers,
		queues:  make([]chan task, workers),
		quit:    make(chan struct{}),
	}
	for i := range p.queues {
		p.queues[i] = make(chan task, depth)
	}
	p.running.Store(true)

	p.wg.Add(workers)
	for id := range workers {
		go p.worker(id)
	}
	return p
}

func (p *WorkerPool) worker(id int) {
	defer p.wg.Done()
	for {
		t, ok := p.next(id)
		if !ok {
			return
		}
		t.run()
	}
}

// next returns the next task for worker id: its own queue first, then any
// other queue, then it blocks on its own queue. It reports false once the
// pool is closed and the worker's queue is empty.
func (p *WorkerPool) next(id int) (task, bool) {
	own := p.queues[id]
	select {
	case t := <-own:
		return t, true
	default:
	}

	for off := 1; off < p.workers; off++ {
		select {
		case t := <-p.queues[(id+off)%p.workers]:
			return t, true
		default:
		}
	}

	select {
	case t := <-own:
		return t, true
	case <-p.quit:
		select {
		case t := <-own:
			return t, true
		default:
			return task{}, false
		}
	}
}

// ExecuteAll runs every function in work and returns when all of them have
// finished. It is the barrier between two pipeline stages: on return, all
// writes made by work are visible to the caller.
//
// On a closed pool the functions run on the calling goroutine, in order.
func (p *WorkerPool) ExecuteAll(work []func()) {
	if len(work) == 0 {
		return
	}

	p.gate.RLock()
	defer p.gate.RUnlock()

	if !p.running.Load() {
		for _, fn := range work {
			fn()
		}
		return
	}

	var done sync.WaitGroup
	done.Add(len(work))
	for i, fn := range work {
		p.queues[i%p.workers] <- task{fn: fn, done: &done}
	}
	done.Wait()
}

// Close stops the workers. It waits for stages already running to finish.
// Close is safe to call multiple times.
func (p *WorkerPool) Close() {
	p.gate.Lock()
	defer p.gate.Unlock()

	if !p.running.CompareAndSwap(true, false) {
		return
	}
	close(p.quit)
	p.wg.Wait()
}

// Workers returns the number of workers in the pool.
func (p *WorkerPool) Workers() int {
	return p.workers
}

// IsRunning reports whether work is still dispatched to the workers.
func (p *WorkerPool) IsRunning() bool {
	return p.running.Load()
}
