package worker

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/osse101/CraftMarket_Go/internal/logger"
)

// Job represents a task to be executed by a worker
type Job interface {
	Process(ctx context.Context) error
}

// Named jobs are logged under their name
type Named interface {
	Name() string
}

// Pool represents a worker pool
type Pool struct {
	workers    int
	jobTimeout time.Duration
	jobQueue   chan Job
	wg         sync.WaitGroup
	quit       chan struct{}
	stopOnce   sync.Once
}

// Option configures a Pool
type Option func(*Pool)

// WithJobTimeout sets the deadline applied to each job
func WithJobTimeout(d time.Duration) Option {
	return func(p *Pool) {
		if d > 0 {
			p.jobTimeout = d
		}
	}
}

// NewPool creates a new worker pool
func NewPool(workers int, queueSize int, opts ...Option) *Pool {
	p := &Pool{
		workers:    workers,
		jobTimeout: DefaultJobTimeout,
		jobQueue:   make(chan Job, queueSize),
		quit:       make(chan struct{}),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Start starts the workers
func (p *Pool) Start() {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

func (p *Pool) worker() {
	defer p.wg.Done()
	for {
		select {
		case job := <-p.jobQueue:
			p.run(job)
		case <-p.quit:
			return
		}
	}
}

// run executes one job with its own deadline and request ID. A panicking job does not kill the worker.
func (p *Pool) run(job Job) {
	ctx, cancel := context.WithTimeout(context.Background(), p.jobTimeout)
	defer cancel()
	ctx = logger.WithRequestID(ctx, logger.GenerateRequestID())
	log := logger.FromContext(ctx).With("job", jobName(job))

	defer func() {
		if r := recover(); r != nil {
			log.Error(LogMsgWorkerPanic, "panic", r)
		}
	}()

	start := time.Now()
	if err := job.Process(ctx); err != nil {
		log.Error(LogMsgWorkerJobFailed, "error", err, "duration", time.Since(start))
		return
	}
	log.Debug(LogMsgWorkerJobComplete, "duration", time.Since(start))
}

func jobName(job Job) string {
	if n, ok := job.(Named); ok {
		return n.Name()
	}
	return fmt.Sprintf("%T", job)
}

// Enqueue adds a job to the queue, blocking while the queue is full
func (p *Pool) Enqueue(job Job) {
	select {
	case p.jobQueue <- job:
	case <-p.quit:
	}
}

// TryEnqueue adds a job without blocking. It reports false when the queue is full or the pool stopped.
func (p *Pool) TryEnqueue(job Job) bool {
	select {
	case <-p.quit:
		return false
	default:
	}
	select {
	case p.jobQueue <- job:
		return true
	default:
		return false
	}
}

// Stop stops the workers and waits for running jobs to finish. Queued jobs are dropped.
func (p *Pool) Stop() {
	p.stopOnce.Do(func() {
		close(p.quit)
	})
	p.wg.Wait()
}
