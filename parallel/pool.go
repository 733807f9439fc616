package parallel

import (
	"fmt"
	"log/slog"
	"runtime"
	"sync"
	"sync/atomic"
)

// Job processes one file. The returned error is logged and counted, never fatal to the pool.
type Job func() error

// Pool runs jobs inline when it has a single worker and on a fixed set of goroutines
// otherwise.
type Pool struct {
	wg       sync.WaitGroup
	work     chan func()
	stop     func()
	done     atomic.Uint64
	failures atomic.Uint64
}

func Start(numWorkers int) *Pool {
	if numWorkers < 1 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	pool := &Pool{stop: func() {}}
	if numWorkers > 1 {
		pool.work = make(chan func(), numWorkers)
		for range numWorkers {
			pool.wg.Go(func() {
				for f := range pool.work {
					f()
				}
			})
		}
		pool.stop = sync.OnceFunc(func() { close(pool.work) })
	}

	return pool
}

// Do schedules job under name. It must not be called after Wait.
func (p *Pool) Do(name string, job Job) {
	run := func() {
		if err := job(); err != nil {
			p.failures.Add(1)
			slog.Error("job failed", "job", name, "error", err)
			return
		}
		p.done.Add(1)
	}

	if p.work == nil {
		run()
		return
	}
	p.work <- run
}

// Wait stops accepting jobs, waits for the scheduled ones and logs the totals. It reports an
// error when any job failed.
func (p *Pool) Wait() error {
	p.stop()
	p.wg.Wait()

	processed, errors := p.done.Load(), p.failures.Load()
	slog.Info("stats", "processed", processed, "errors", errors, "total", processed+errors)

	if errors > 0 {
		return fmt.Errorf("error processing %d files", errors)
	}
	return nil
}
